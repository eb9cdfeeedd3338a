package projectfile

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// DevVersion is the version reported by builds without ldflags.
const DevVersion = "dev"

// CheckVersion reports an error when current does not satisfy the semver
// constraint. An empty constraint and development builds always pass.
func CheckVersion(constraint, current string) error {
	if constraint == "" || current == DevVersion {
		return nil
	}
	c, err := semver.NewConstraint(constraint)
	if err != nil {
		return fmt.Errorf("parsing required_version %q: %w", constraint, err)
	}
	v, err := parseSemver(current)
	if err != nil {
		return fmt.Errorf("parsing current version %q: %w", current, err)
	}
	if !c.Check(v) {
		return fmt.Errorf("project requires version %s, running %s", constraint, current)
	}
	return nil
}

// parseSemver strips a leading "v" and parses the version string.
func parseSemver(version string) (*semver.Version, error) {
	version = strings.TrimPrefix(version, "v")
	return semver.NewVersion(version)
}
