package manifest

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/spf13/afero"

	"github.com/trellis-dev/trellis/internal/paths"
)

// InstalledVersion reads the version marker at the global root.
// Returns "" when no marker has been written yet.
func InstalledVersion(fs afero.Fs, cursorRoot string) string {
	data, err := afero.ReadFile(fs, paths.VersionMarkerPath(cursorRoot))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}

// WriteInstalledVersion records the bundle version at the global root.
func WriteInstalledVersion(fs afero.Fs, cursorRoot, version string) error {
	path := paths.VersionMarkerPath(cursorRoot)
	if err := afero.WriteFile(fs, path, []byte(version+"\n"), paths.FilePerm); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// IsNewer reports whether bundleVersion is strictly newer than installed.
// An empty or unparsable installed version counts as older; an unparsable
// bundle version is an error.
func IsNewer(bundleVersion, installed string) (bool, error) {
	bv, err := parseSemver(bundleVersion)
	if err != nil {
		return false, fmt.Errorf("parsing bundle version %q: %w", bundleVersion, err)
	}
	iv, err := parseSemver(installed)
	if err != nil {
		return true, nil
	}
	return bv.GreaterThan(iv), nil
}

// parseSemver strips a leading "v" and parses the version string.
func parseSemver(version string) (*semver.Version, error) {
	version = strings.TrimPrefix(version, "v")
	return semver.NewVersion(version)
}
