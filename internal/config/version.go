package config

import (
	"fmt"

	"github.com/Masterminds/semver/v3"
)

// SupportedAPIVersions is the REST Countries API range whose field filters
// and response shapes countrydex understands.
const SupportedAPIVersions = ">= 3.1, < 4"

// ValidateAPIVersion checks that version (e.g. "3.1") is supported.
func ValidateAPIVersion(version string) error {
	v, err := semver.NewVersion(version)
	if err != nil {
		return fmt.Errorf("api.version %q is not a valid version: %w", version, err)
	}

	constraint, err := semver.NewConstraint(SupportedAPIVersions)
	if err != nil {
		return fmt.Errorf("parsing supported API range: %w", err)
	}

	if !constraint.Check(v) {
		return fmt.Errorf("api.version %s is not supported (need %s)", version, SupportedAPIVersions)
	}
	return nil
}

// APIPathVersion returns the path segment for version, e.g. "v3.1".
// The original spelling is kept so "3.1" does not become "3.1.0".
func APIPathVersion(version string) string {
	return "v" + version
}
