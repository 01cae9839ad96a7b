package git

import (
	"fmt"
	"strings"
)

// logFormat renders each commit as "subject|author" for the changelog
// parser.
const logFormat = "--pretty=format:%s|%an"

// Repo exposes the release-flow git operations over a Runner.
type Repo struct {
	runner Runner
}

// NewRepo returns a Repo backed by the given runner.
func NewRepo(runner Runner) *Repo {
	return &Repo{runner: runner}
}

// LatestTag returns the most recent tag reachable from HEAD. A
// repository with no tags yet is a normal condition, reported as
// ok=false rather than an error.
func (r *Repo) LatestTag() (tag string, ok bool) {
	out, err := r.runner.Run("describe", "--tags", "--abbrev=0")
	if err != nil {
		logDebug("[git] LatestTag: no reachable tag: %v", err)
		return "", false
	}
	return out, out != ""
}

// TagNames returns the names of all existing tags.
func (r *Repo) TagNames() ([]string, error) {
	out, err := r.runner.Run("tag")
	if err != nil {
		return nil, fmt.Errorf("listing tags: %w", err)
	}
	if out == "" {
		return nil, nil
	}
	return splitLines(out), nil
}

// LogSince returns the raw "subject|author" log lines for every
// commit after sinceTag up to HEAD. An empty sinceTag means the
// entire history.
func (r *Repo) LogSince(sinceTag string) (string, error) {
	args := []string{"log"}
	if sinceTag != "" {
		args = append(args, sinceTag+"..HEAD")
	}
	args = append(args, logFormat)

	out, err := r.runner.Run(args...)
	if err != nil {
		return "", fmt.Errorf("reading commit log: %w", err)
	}
	return out, nil
}

// CreateAnnotatedTag creates an annotated tag with the given message.
func (r *Repo) CreateAnnotatedTag(name, message string) error {
	if _, err := r.runner.Run("tag", "-a", name, "-m", message); err != nil {
		return fmt.Errorf("creating tag %s: %w", name, err)
	}
	return nil
}

// PushTag pushes exactly one tag to the named remote.
func (r *Repo) PushTag(remote, name string) error {
	if _, err := r.runner.Run("push", remote, name); err != nil {
		return fmt.Errorf("pushing tag %s to %s: %w", name, remote, err)
	}
	return nil
}

func splitLines(s string) []string {
	var lines []string
	for _, line := range strings.Split(s, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
