package changelog

// Commit is one entry from the git log range, split from the
// "subject|author" wire format. The author is parsed for completeness
// but does not appear in the rendered draft.
type Commit struct {
	Subject string
	Author  string
}

// Draft is the classified changelog for one release. Entries in each
// bucket keep the order in which their commits were encountered.
type Draft struct {
	// TagName is the full tag name (e.g., "v0.21.0") used in the
	// draft header.
	TagName string
	// PullRequests holds cleaned subjects with an " in #<n>" suffix.
	PullRequests []string
	// Other holds subjects without a PR reference, verbatim.
	Other []string
}

// IsEmpty reports whether the draft has no entries in either bucket.
func (d Draft) IsEmpty() bool {
	return len(d.PullRequests) == 0 && len(d.Other) == 0
}

// Count returns the total number of classified entries.
func (d Draft) Count() int {
	return len(d.PullRequests) + len(d.Other)
}
