// Package manifest reads the version declared in a project manifest
// (Cargo.toml style) and cross-checks it against a requested release
// version. Parsing is deliberately a line scanner rather than a full
// TOML parser: the tool only honors the first version = "..." line in
// the first [package] section, matching the established release
// workflow, and a structural parser would silently change which value
// wins when a manifest carries duplicate sections.
package manifest

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"
)

// sectionState tracks whether the scanner is inside the [package]
// section. Any other bracketed header closes it.
type sectionState int

const (
	outsidePackage sectionState = iota
	insidePackage
)

var versionLine = regexp.MustCompile(`^version\s*=\s*"(.*?)"`)

// Version extracts the version declared in the [package] section of
// the manifest at path. Returns an error when the file is missing or
// no version line exists inside the section.
func Version(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("manifest %s not found", path)
		}
		return "", fmt.Errorf("opening manifest %s: %w", path, err)
	}
	defer f.Close()

	version, err := scanVersion(f)
	if err != nil {
		return "", fmt.Errorf("reading manifest %s: %w", path, err)
	}
	if version == "" {
		return "", fmt.Errorf("could not find version in [package] section of %s", path)
	}
	return version, nil
}

// scanVersion runs the two-state section scanner over the manifest
// body. The first matching version line inside [package] wins and
// scanning stops there.
func scanVersion(r io.Reader) (string, error) {
	state := outsidePackage

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		switch {
		case line == "[package]":
			state = insidePackage
		case strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]"):
			state = outsidePackage
		}

		if state != insidePackage {
			continue
		}
		if m := versionLine.FindStringSubmatch(line); m != nil {
			return m[1], nil
		}
	}
	return "", scanner.Err()
}

// CheckVersionMatch fails when the manifest's declared version does
// not exactly equal the requested release version.
func CheckVersionMatch(path, version string) error {
	declared, err := Version(path)
	if err != nil {
		return err
	}
	if declared != version {
		return fmt.Errorf("provided version '%s' does not match %s version '%s'", version, path, declared)
	}
	return nil
}
