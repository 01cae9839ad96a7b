package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// ValidationError represents a configuration validation error with context.
type ValidationError struct {
	FilePath string
	Message  string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.FilePath, e.Message)
}

// ValidateYAMLSyntax checks if the YAML file has valid syntax before
// koanf parses it, so syntax problems surface with the file path
// attached. A missing or empty file is valid - defaults apply.
func ValidateYAMLSyntax(filePath string) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return &ValidationError{FilePath: filePath, Message: err.Error()}
	}

	if len(strings.TrimSpace(string(data))) == 0 {
		return nil
	}

	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return &ValidationError{FilePath: filePath, Message: err.Error()}
	}
	return nil
}
