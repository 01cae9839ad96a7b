package config

// DefaultEditor is the editor used when neither EDITOR nor the config
// names one.
const DefaultEditor = "vim"

// GetDefaults returns the default configuration values.
func GetDefaults() map[string]any {
	return map[string]any{
		"editor":             "",
		"remote":             "origin",
		"manifest":           "Cargo.toml",
		"tag_prefix":         "v",
		"skip_confirmations": false,
		"debug":              false,
	}
}
