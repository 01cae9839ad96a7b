// Package prompt reads yes/no confirmations from the user.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Confirm prints question to out and reads one reply line from in.
// Only a case-insensitive "y" counts as confirmation; any other reply
// (including EOF) declines.
func Confirm(in io.Reader, out io.Writer, question string) (bool, error) {
	if _, err := fmt.Fprint(out, question); err != nil {
		return false, err
	}

	reader := bufio.NewReader(in)
	line, err := reader.ReadString('\n')
	if err != nil && err != io.EOF {
		return false, fmt.Errorf("reading confirmation: %w", err)
	}

	return strings.EqualFold(strings.TrimSpace(line), "y"), nil
}
