// Package version carries the build version of beangen. It is written into
// the generated-by marker of every emitted class.
package version

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Version is set via ldflags at build time: -ldflags "-X github.com/Alia5/beangen/internal/version.Version=x.y.z"
var Version = ""

// Dev is reported by builds without a version.
const Dev = "0.0.1-dev"

// GetVersion returns the version string that was set at build time via ldflags.
// Returns Dev if Version is empty (development builds only).
func GetVersion() (string, error) {
	if Version == "" {
		return Dev, nil
	}
	v, err := semver.NewVersion(Version)
	if err != nil {
		return "", fmt.Errorf("invalid version format: %s (expected x.y.z): %w", Version, err)
	}
	if !strings.Contains(strings.SplitN(strings.TrimPrefix(Version, "v"), "-", 2)[0], ".") {
		return "", fmt.Errorf("invalid version format: %s (expected x.y.z)", Version)
	}
	return v.String(), nil
}

// ParseVersion extracts major, minor, patch from version string like "1.2.3" or "1.2.3-dirty".
// Unparsable input yields zeros.
func ParseVersion(version string) (major, minor, patch uint64) {
	v, err := semver.NewVersion(version)
	if err != nil {
		return 0, 0, 0
	}
	return v.Major(), v.Minor(), v.Patch()
}
