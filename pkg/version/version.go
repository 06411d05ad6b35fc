// Package version reports the countrydex build version.
package version

// version is set at build time:
//
//	go build -ldflags "-X github.com/rshade/countrydex/pkg/version.version=v1.2.3"
//
//nolint:gochecknoglobals // Overridden by the linker.
var version = "dev"

// GetVersion returns the build version, "dev" for local builds.
func GetVersion() string {
	return version
}
