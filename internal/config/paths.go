package config

import (
	"os"
	"path/filepath"
)

// UserConfigPath returns the path to the user-level config file.
// This follows the XDG Base Directory Specification:
// - Linux: ~/.config/tagrel/config.yml
// - macOS: ~/Library/Application Support/tagrel/config.yml
// - Windows: %APPDATA%\tagrel\config.yml
func UserConfigPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "tagrel", "config.yml"), nil
}

// ProjectConfigPath returns the path to the project-level config file,
// relative to the current directory.
func ProjectConfigPath() string {
	return filepath.Join(".tagrel", "config.yml")
}

// LegacyProjectConfigPath returns the path to the legacy project-level
// JSON config file.
func LegacyProjectConfigPath() string {
	return filepath.Join(".tagrel", "config.json")
}
