// Package config provides hierarchical configuration management for
// tagrel using koanf. Configuration is loaded with priority:
// environment variables > project config (.tagrel/config.yml) > user
// config (~/.config/tagrel/config.yml) > defaults. Legacy JSON config
// files (.tagrel/config.json) are still read, with a deprecation
// warning.
package config

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Configuration represents the tagrel CLI tool configuration.
type Configuration struct {
	// Editor is the command used to edit the tag message. The EDITOR
	// environment variable takes precedence; the fallback default is
	// "vim".
	Editor string `koanf:"editor"`

	// Remote is the git remote the tag is pushed to.
	Remote string `koanf:"remote"`

	// Manifest is the path of the manifest file carrying the
	// authoritative version, relative to the repository root unless
	// absolute.
	Manifest string `koanf:"manifest"`

	// TagPrefix is prepended to the version to form the tag name.
	TagPrefix string `koanf:"tag_prefix"`

	// SkipConfirmations skips the create-and-push prompt. Can also be
	// set via the TAGREL_YES env var or the --yes flag.
	SkipConfirmations bool `koanf:"skip_confirmations"`

	// Debug enables debug logging for git operations.
	Debug bool `koanf:"debug"`
}

// LoadOptions configures how configuration is loaded.
type LoadOptions struct {
	// ProjectConfigPath overrides the project config path
	// (default: .tagrel/config.yml).
	ProjectConfigPath string
	// WarningWriter receives deprecation warnings (default: os.Stderr).
	WarningWriter io.Writer
	// SkipWarnings suppresses deprecation warnings.
	SkipWarnings bool
}

// Load loads configuration from user, project, and environment sources.
// Priority: Environment variables > Project config > User config > Defaults.
func Load() (*Configuration, error) {
	return LoadWithOptions(LoadOptions{})
}

// LoadWithOptions loads configuration with custom options.
func LoadWithOptions(opts LoadOptions) (*Configuration, error) {
	k := koanf.New(".")
	warningWriter := getWarningWriter(opts.WarningWriter)

	loadDefaults(k)

	if err := loadUserConfig(k); err != nil {
		return nil, err
	}

	if err := loadProjectConfig(k, opts.ProjectConfigPath, warningWriter, opts.SkipWarnings); err != nil {
		return nil, err
	}

	if err := loadEnvironmentConfig(k); err != nil {
		return nil, err
	}

	return finalizeConfig(k)
}

// getWarningWriter returns the warning writer or defaults to stderr.
func getWarningWriter(w io.Writer) io.Writer {
	if w == nil {
		return os.Stderr
	}
	return w
}

// loadDefaults applies default configuration values.
func loadDefaults(k *koanf.Koanf) {
	for key, value := range GetDefaults() {
		k.Set(key, value)
	}
}

// loadUserConfig loads the user-level YAML config when present.
func loadUserConfig(k *koanf.Koanf) error {
	path, err := UserConfigPath()
	if err != nil || !fileExists(path) {
		return nil
	}
	return loadYAMLConfig(k, path, "user")
}

// loadProjectConfig loads project-level config (YAML preferred, legacy
// JSON supported with a deprecation warning). A custom path overrides
// the default location, mainly for testing.
func loadProjectConfig(k *koanf.Koanf, customPath string, warningWriter io.Writer, skipWarnings bool) error {
	yamlPath := ProjectConfigPath()
	if customPath != "" {
		yamlPath = customPath
	}
	legacyPath := LegacyProjectConfigPath()

	switch {
	case fileExists(yamlPath):
		if err := loadYAMLConfig(k, yamlPath, "project"); err != nil {
			return fmt.Errorf("loading project YAML config: %w", err)
		}
	case customPath == "" && fileExists(legacyPath):
		if !skipWarnings {
			fmt.Fprintf(warningWriter, "Warning: %s is deprecated, move settings to %s\n", legacyPath, yamlPath)
		}
		if err := k.Load(file.Provider(legacyPath), json.Parser()); err != nil {
			return fmt.Errorf("loading legacy project JSON config %s: %w", legacyPath, err)
		}
	}
	return nil
}

// loadYAMLConfig validates and loads a YAML config file.
func loadYAMLConfig(k *koanf.Koanf, path, configType string) error {
	if err := ValidateYAMLSyntax(path); err != nil {
		return fmt.Errorf("validating YAML syntax for %s config: %w", configType, err)
	}
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return fmt.Errorf("failed to load %s config %s: %w", configType, path, err)
	}
	return nil
}

// loadEnvironmentConfig loads environment variable overrides.
func loadEnvironmentConfig(k *koanf.Koanf) error {
	if err := k.Load(env.Provider("TAGREL_", ".", envTransform), nil); err != nil {
		return fmt.Errorf("failed to load environment config: %w", err)
	}
	return nil
}

// finalizeConfig unmarshals and applies final transformations.
func finalizeConfig(k *koanf.Koanf) (*Configuration, error) {
	var cfg Configuration
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// EDITOR wins over any configured editor; the documented default
	// covers the case where neither is set.
	if editorEnv := os.Getenv("EDITOR"); editorEnv != "" {
		cfg.Editor = editorEnv
	}
	if cfg.Editor == "" {
		cfg.Editor = DefaultEditor
	}

	if os.Getenv("TAGREL_YES") != "" {
		cfg.SkipConfirmations = true
	}

	return &cfg, nil
}

// fileExists returns true if the file exists and is readable.
func fileExists(path string) bool {
	if path == "" {
		return false
	}
	_, err := os.Stat(path)
	return err == nil
}

// envTransform converts environment variable names to config keys.
// Example: TAGREL_TAG_PREFIX -> tag_prefix
func envTransform(s string) string {
	return strings.ToLower(strings.TrimPrefix(s, "TAGREL_"))
}
