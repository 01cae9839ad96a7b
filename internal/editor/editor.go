// Package editor opens a draft message in the user's text editor and
// returns the edited result. This is the only point in the release
// flow that blocks on human interaction.
package editor

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// DefaultEditor is used when neither EDITOR nor the config names one.
const DefaultEditor = "vim"

// Editor launches a configured editor command against a temporary
// file. The command is resolved once at startup (flag > EDITOR env >
// config > default) and passed in explicitly.
type Editor struct {
	// Command is the editor invocation. It may carry arguments
	// ("code --wait"); the temp file path is appended last.
	Command string
}

// New returns an Editor for the given command, falling back to
// DefaultEditor when the command is empty.
func New(command string) Editor {
	if strings.TrimSpace(command) == "" {
		command = DefaultEditor
	}
	return Editor{Command: command}
}

// Edit writes initial to a uniquely named temporary file, runs the
// editor as a blocking foreground subprocess on it, and returns the
// file's trimmed contents afterwards. The temporary file is removed
// regardless of outcome.
func (e Editor) Edit(initial string) (string, error) {
	tmp, err := os.CreateTemp("", "tagrel-*.txt")
	if err != nil {
		return "", fmt.Errorf("creating temp file: %w", err)
	}
	path := tmp.Name()
	defer os.Remove(path)

	if _, err := tmp.WriteString(initial); err != nil {
		tmp.Close()
		return "", fmt.Errorf("writing draft to %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("closing %s: %w", path, err)
	}

	fields := strings.Fields(e.Command)
	if len(fields) == 0 {
		fields = []string{DefaultEditor}
	}
	args := append(fields[1:], path)

	cmd := exec.Command(fields[0], args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("editor %q failed: %w", e.Command, err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading edited file %s: %w", path, err)
	}

	return strings.TrimSpace(string(content)), nil
}
