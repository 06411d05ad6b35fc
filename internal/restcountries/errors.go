package restcountries

import (
	"errors"
	"fmt"
)

// Sentinel errors for the two request kinds. Callers match with errors.Is.
var (
	// ErrNetwork means the country list could not be loaded: transport
	// failure, non-2xx status or an undecodable body.
	ErrNetwork = errors.New("country list request failed")

	// ErrDetailFetch means a country's details could not be loaded.
	ErrDetailFetch = errors.New("country detail request failed")

	// ErrNoMatch means the detail endpoint answered with an empty array.
	// It also matches ErrDetailFetch.
	ErrNoMatch = fmt.Errorf("%w: no country matched", ErrDetailFetch)
)

// StatusError reports a non-2xx HTTP response.
type StatusError struct {
	Method     string
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s %s: HTTP %d", e.Method, e.URL, e.StatusCode)
}
