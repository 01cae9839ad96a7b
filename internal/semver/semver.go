// Package semver validates release version strings for tagrel.
// Only the bare MAJOR.MINOR.PATCH form is accepted: no "v" prefix,
// no pre-release or build metadata suffixes. The tag name is always
// derived from a validated version, never the other way around.
package semver

import (
	"fmt"
	"regexp"
)

// versionPattern matches exactly three dot-separated non-negative
// integer groups, anchored at both ends.
var versionPattern = regexp.MustCompile(`^\d+\.\d+\.\d+$`)

// IsValid reports whether v is a bare X.Y.Z version string.
func IsValid(v string) bool {
	return versionPattern.MatchString(v)
}

// Validate returns a descriptive error when v is not a bare X.Y.Z
// version string.
func Validate(v string) error {
	if !IsValid(v) {
		return fmt.Errorf("version '%s' is not in valid semver format (X.Y.Z)", v)
	}
	return nil
}

// TagName returns the tag name for a version using the given prefix
// (conventionally "v").
func TagName(prefix, version string) string {
	return prefix + version
}
