// Package version provides build-time version information,
// set via -ldflags "-X github.com/decorator-app/bumpver/internal/version.version=x.y.z".
package version

var version = "0.1.0"

// GetVersion returns the build version of bumpver itself.
func GetVersion() string {
	return version
}
