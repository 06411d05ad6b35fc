// Package restcountries is the client for the REST Countries API: one call
// for the country list and one for a single country's details.
package restcountries

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rshade/countrydex/internal/config"
	"github.com/rshade/countrydex/internal/country"
	"github.com/rshade/countrydex/internal/logging"
)

const (
	// summaryFields are requested from the list endpoint.
	summaryFields = "name,flags,region,population"
	// detailFields are requested from the detail endpoint.
	detailFields = "name,capital,languages,currencies,timezones,maps,flags"

	// maxResponseBytes bounds how much of a response body is read.
	maxResponseBytes = 16 << 20

	userAgent = "countrydex"
)

// Client fetches countries from a REST Countries compatible server.
type Client struct {
	BaseURL    string
	APIVersion string
	HTTPClient *http.Client
}

// NewClient creates a client from the API section of the configuration.
func NewClient(cfg config.APIConfig) *Client {
	return &Client{
		BaseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		APIVersion: cfg.Version,
		HTTPClient: &http.Client{Timeout: cfg.Timeout},
	}
}

// AllCountriesURL returns the list endpoint URL.
func (c *Client) AllCountriesURL() string {
	return c.endpoint("all") + "?fields=" + summaryFields
}

// CountryDetailsURL returns the detail endpoint URL for an exact name match.
func (c *Client) CountryDetailsURL(name string) string {
	return c.endpoint("name/"+url.PathEscape(name)) + "?fullText=true&fields=" + detailFields
}

func (c *Client) endpoint(path string) string {
	return c.BaseURL + "/" + config.APIPathVersion(c.APIVersion) + "/" + path
}

// FetchAllCountries returns every country's summary in API order.
// Failures wrap ErrNetwork.
func (c *Client) FetchAllCountries(ctx context.Context) ([]country.Summary, error) {
	log := logging.FromContext(ctx)
	start := time.Now()

	var payload []summaryPayload
	if err := c.getJSON(ctx, c.AllCountriesURL(), &payload); err != nil {
		log.Error().Ctx(ctx).
			Str("component", "restcountries").
			Err(err).
			Msg("failed to fetch countries")
		return nil, fmt.Errorf("%w: %w", ErrNetwork, err)
	}

	summaries := make([]country.Summary, 0, len(payload))
	for _, p := range payload {
		summaries = append(summaries, p.toSummary())
	}

	log.Debug().Ctx(ctx).
		Str("component", "restcountries").
		Int("count", len(summaries)).
		Dur("elapsed", time.Since(start)).
		Msg("fetched country list")

	return summaries, nil
}

// FetchCountryDetails returns the first country whose full name is name.
// Failures wrap ErrDetailFetch; an empty answer is ErrNoMatch.
func (c *Client) FetchCountryDetails(ctx context.Context, name string) (*country.Detail, error) {
	log := logging.FromContext(ctx)

	var payload []detailPayload
	if err := c.getJSON(ctx, c.CountryDetailsURL(name), &payload); err != nil {
		log.Error().Ctx(ctx).
			Str("component", "restcountries").
			Str("country", name).
			Err(err).
			Msg("error fetching country details")
		return nil, fmt.Errorf("%w: %s: %w", ErrDetailFetch, name, err)
	}

	if len(payload) == 0 {
		log.Warn().Ctx(ctx).
			Str("component", "restcountries").
			Str("country", name).
			Msg("detail endpoint returned no match")
		return nil, fmt.Errorf("%w: %s", ErrNoMatch, name)
	}

	detail := payload[0].toDetail()
	return &detail, nil
}

func (c *Client) getJSON(ctx context.Context, rawURL string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	client := c.HTTPClient
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxResponseBytes))
		return &StatusError{Method: req.Method, URL: rawURL, StatusCode: resp.StatusCode}
	}

	if decodeErr := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(out); decodeErr != nil {
		return fmt.Errorf("decoding response: %w", decodeErr)
	}
	return nil
}
