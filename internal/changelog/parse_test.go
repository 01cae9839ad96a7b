package changelog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCommits(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		raw  string
		want []Commit
	}{
		"single commit": {
			raw:  "Fix bug (#42)|Alice",
			want: []Commit{{Subject: "Fix bug (#42)", Author: "Alice"}},
		},
		"multiple commits keep order": {
			raw: "First change|Alice\nSecond change|Bob",
			want: []Commit{
				{Subject: "First change", Author: "Alice"},
				{Subject: "Second change", Author: "Bob"},
			},
		},
		"malformed line without separator skipped": {
			raw: "First change|Alice\nno separator here\nSecond change|Bob",
			want: []Commit{
				{Subject: "First change", Author: "Alice"},
				{Subject: "Second change", Author: "Bob"},
			},
		},
		"empty lines skipped": {
			raw:  "\n\nOnly change|Alice\n",
			want: []Commit{{Subject: "Only change", Author: "Alice"}},
		},
		"extra separators keep first two fields": {
			raw:  "Subject|Alice|extra",
			want: []Commit{{Subject: "Subject", Author: "Alice"}},
		},
		"empty input": {
			raw:  "",
			want: nil,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, ParseCommits(tt.raw))
		})
	}
}

func TestClassify(t *testing.T) {
	t.Parallel()

	commits := []Commit{
		{Subject: "Fix bug (#42)", Author: "Alice"},
		{Subject: "Update docs", Author: "Bob"},
		{Subject: "Add feature (#7)", Author: "Carol"},
	}

	draft := Classify("v1.0.0", commits)

	assert.Equal(t, "v1.0.0", draft.TagName)
	assert.Equal(t, []string{"Fix bug in #42", "Add feature in #7"}, draft.PullRequests)
	assert.Equal(t, []string{"Update docs"}, draft.Other)
	assert.Equal(t, 3, draft.Count())
}

func TestClassify_PRReferenceMidSubject(t *testing.T) {
	t.Parallel()

	draft := Classify("v1.0.0", []Commit{
		{Subject: "Revert \"Add feature (#7)\" for now", Author: "Alice"},
	})

	// The reference is stripped wherever it appears and the cleaned
	// subject still lands in the PR bucket.
	require.Len(t, draft.PullRequests, 1)
	assert.Equal(t, "Revert \"Add feature\" for now in #7", draft.PullRequests[0])
	assert.Empty(t, draft.Other)
}

func TestClassify_Empty(t *testing.T) {
	t.Parallel()

	draft := Classify("v1.0.0", nil)
	assert.True(t, draft.IsEmpty())
	assert.Zero(t, draft.Count())
}
