package changelog

import (
	"fmt"
	"io"
	"strings"
)

// Render writes the draft tag message. The layout is:
//
//	Release v<version>
//
//	Pull Requests:
//	- <entry> in #<n>
//
//	Other Changes:
//	- <entry>
//
// Empty sections are omitted entirely. The function is idempotent:
// the same draft always produces identical output.
func Render(d Draft, w io.Writer) error {
	if _, err := fmt.Fprintf(w, "Release %s\n\n", d.TagName); err != nil {
		return err
	}

	if len(d.PullRequests) > 0 {
		if err := renderSection(w, "Pull Requests:", d.PullRequests); err != nil {
			return err
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}

	if len(d.Other) > 0 {
		if err := renderSection(w, "Other Changes:", d.Other); err != nil {
			return err
		}
	}

	return nil
}

// RenderString is a convenience wrapper that renders to a string.
func RenderString(d Draft) string {
	var b strings.Builder
	// strings.Builder writes cannot fail.
	_ = Render(d, &b)
	return b.String()
}

func renderSection(w io.Writer, header string, entries []string) error {
	if _, err := io.WriteString(w, header+"\n"); err != nil {
		return err
	}
	for _, entry := range entries {
		if _, err := io.WriteString(w, "- "+entry+"\n"); err != nil {
			return err
		}
	}
	return nil
}
