// Package output provides terminal output formatting utilities for
// the tagrel CLI. This package is designed to have minimal
// dependencies to avoid import cycles.
package output

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// GetTerminalWidth returns the terminal width, defaulting to 80 if unavailable.
func GetTerminalWidth() int {
	if width, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && width > 0 {
		return width
	}
	return 80
}

// PrintTagMessage prints the final tag message framed by labeled
// separator lines sized to the terminal.
func PrintTagMessage(out io.Writer, message string) {
	cyan := color.New(color.FgCyan, color.Faint).SprintFunc()

	top := separatorLine(" Tag Message ")
	bottom := separatorLine("")

	fmt.Fprintf(out, "\n%s\n%s\n%s\n\n", cyan(top), message, cyan(bottom))
}

// separatorLine builds a full-width horizontal rule with an optional
// centered label.
func separatorLine(label string) string {
	width := GetTerminalWidth()
	if width > 100 {
		width = 100
	}

	lineLen := (width - len(label)) / 2
	if lineLen < 3 {
		lineLen = 3
	}

	line := strings.Repeat("─", lineLen)
	return line + label + line
}

// PrintSuccess prints a green checkmark line for a completed step.
func PrintSuccess(out io.Writer, message string) {
	green := color.New(color.FgGreen, color.Bold).SprintFunc()
	fmt.Fprintf(out, "%s %s\n", green("✓"), message)
}

// PrintDryRun prints a step that would have run outside dry-run mode.
// Uses a yellow label so simulated steps stand out from real ones.
func PrintDryRun(out io.Writer, message string) {
	yellow := color.New(color.FgYellow, color.Bold).SprintFunc()
	fmt.Fprintf(out, "%s %s\n", yellow("[DRY-RUN]"), message)
}

// PrintInfo prints an informational line.
func PrintInfo(out io.Writer, format string, args ...any) {
	fmt.Fprintf(out, format+"\n", args...)
}
