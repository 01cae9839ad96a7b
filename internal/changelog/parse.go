package changelog

import (
	"fmt"
	"regexp"
	"strings"
)

// prRef matches a parenthesized pull-request reference in a commit
// subject, capturing the PR number.
var prRef = regexp.MustCompile(`\(#(\d+)\)`)

// prRefWithSpace additionally swallows whitespace immediately before
// the reference so stripping it leaves no double spaces behind.
var prRefWithSpace = regexp.MustCompile(`\s*\(#\d+\)`)

// ParseCommits splits raw "subject|author" log lines into commits.
// Empty lines and lines with fewer than two fields are skipped; they
// are artifacts of the log format, not data.
func ParseCommits(raw string) []Commit {
	var commits []Commit
	for _, line := range strings.Split(raw, "\n") {
		if line == "" {
			continue
		}
		parts := strings.Split(line, "|")
		if len(parts) < 2 {
			continue
		}
		commits = append(commits, Commit{Subject: parts[0], Author: parts[1]})
	}
	return commits
}

// Classify buckets commits into a draft for the given tag name.
// Subjects containing a (#n) reference are cleaned and rewritten as
// "<subject> in #<n>"; the rest pass through verbatim.
func Classify(tagName string, commits []Commit) Draft {
	draft := Draft{TagName: tagName}

	for _, c := range commits {
		m := prRef.FindStringSubmatch(c.Subject)
		if m == nil {
			draft.Other = append(draft.Other, c.Subject)
			continue
		}

		clean := strings.TrimSpace(prRefWithSpace.ReplaceAllString(c.Subject, ""))
		draft.PullRequests = append(draft.PullRequests, fmt.Sprintf("%s in #%s", clean, m[1]))
	}

	return draft
}
