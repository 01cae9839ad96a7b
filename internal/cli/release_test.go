package cli

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alder-tools/tagrel/internal/config"
	tagrelerrors "github.com/alder-tools/tagrel/internal/errors"
)

// fakeGit implements gitOps for flow tests.
type fakeGit struct {
	latestTag   string
	hasLatest   bool
	tags        []string
	tagsErr     error
	log         string
	logErr      error
	createErr   error
	pushErr     error
	createdTag  string
	createdMsg  string
	pushedTo    string
	pushedTag   string
	logSinceArg *string
}

func (f *fakeGit) LatestTag() (string, bool) {
	return f.latestTag, f.hasLatest
}

func (f *fakeGit) TagNames() ([]string, error) {
	return f.tags, f.tagsErr
}

func (f *fakeGit) LogSince(sinceTag string) (string, error) {
	f.logSinceArg = &sinceTag
	return f.log, f.logErr
}

func (f *fakeGit) CreateAnnotatedTag(name, message string) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.createdTag = name
	f.createdMsg = message
	return nil
}

func (f *fakeGit) PushTag(remote, name string) error {
	if f.pushErr != nil {
		return f.pushErr
	}
	f.pushedTo = remote
	f.pushedTag = name
	return nil
}

// fakeEditor records the draft it was given and returns a scripted
// result, standing in for the interactive editor.
type fakeEditor struct {
	gotDraft string
	result   string
	err      error
	// passthrough returns the trimmed draft unchanged.
	passthrough bool
}

func (f *fakeEditor) Edit(initial string) (string, error) {
	f.gotDraft = initial
	if f.err != nil {
		return "", f.err
	}
	if f.passthrough {
		return strings.TrimSpace(initial), nil
	}
	return f.result, nil
}

// writeManifest drops a Cargo.toml declaring version into a temp dir.
func writeManifest(t *testing.T, version string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "Cargo.toml")
	content := "[package]\nname = \"demo\"\nversion = \"" + version + "\"\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func testConfig() *config.Configuration {
	return &config.Configuration{
		Editor:    "vim",
		Remote:    "origin",
		Manifest:  "Cargo.toml",
		TagPrefix: "v",
	}
}

func newFlow(t *testing.T, g *fakeGit, e *fakeEditor, replies string) (*releaseFlow, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	return &releaseFlow{
		cfg:          testConfig(),
		manifestPath: writeManifest(t, "0.21.0"),
		git:          g,
		editor:       e,
		in:           strings.NewReader(replies),
		out:          &out,
	}, &out
}

func TestRun_HappyPath(t *testing.T) {
	t.Parallel()

	g := &fakeGit{
		latestTag: "v0.20.0",
		hasLatest: true,
		tags:      []string{"v0.19.0", "v0.20.0"},
		log:       "Fix bug (#42)|Alice\nUpdate docs|Bob\nAdd feature (#7)|Carol",
	}
	e := &fakeEditor{passthrough: true}
	flow, out := newFlow(t, g, e, "y\n")

	require.NoError(t, flow.run("0.21.0"))

	// Draft handed to the editor has both sections in encounter order.
	assert.Equal(t, "Release v0.21.0\n\n"+
		"Pull Requests:\n"+
		"- Fix bug in #42\n"+
		"- Add feature in #7\n"+
		"\n"+
		"Other Changes:\n"+
		"- Update docs\n", e.gotDraft)

	require.NotNil(t, g.logSinceArg)
	assert.Equal(t, "v0.20.0", *g.logSinceArg)

	assert.Equal(t, "v0.21.0", g.createdTag)
	assert.Contains(t, g.createdMsg, "Pull Requests:")
	assert.Equal(t, "origin", g.pushedTo)
	assert.Equal(t, "v0.21.0", g.pushedTag)

	assert.Contains(t, out.String(), "Latest tag: v0.20.0")
	assert.Contains(t, out.String(), "Tag v0.21.0 created locally.")
	assert.Contains(t, out.String(), "Tag v0.21.0 pushed to origin.")
}

func TestRun_InvalidVersion(t *testing.T) {
	t.Parallel()

	flow, _ := newFlow(t, &fakeGit{}, &fakeEditor{}, "")

	for _, bad := range []string{"1.2", "1.2.3.4", "v1.2.3", "1.2.x"} {
		err := flow.run(bad)
		require.Error(t, err, "version %q should be rejected", bad)
		cliErr := tagrelerrors.AsCLIError(err)
		require.NotNil(t, cliErr)
		assert.Equal(t, tagrelerrors.Argument, cliErr.Category)
	}
}

func TestRun_ManifestMismatch(t *testing.T) {
	t.Parallel()

	g := &fakeGit{}
	flow, _ := newFlow(t, g, &fakeEditor{}, "")

	err := flow.run("0.22.0")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not match")
	// Fails before any git interaction.
	assert.Nil(t, g.logSinceArg)
}

func TestRun_MissingManifest(t *testing.T) {
	t.Parallel()

	flow, _ := newFlow(t, &fakeGit{}, &fakeEditor{}, "")
	flow.manifestPath = filepath.Join(t.TempDir(), "Cargo.toml")

	err := flow.run("0.21.0")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestRun_TagAlreadyExists(t *testing.T) {
	t.Parallel()

	g := &fakeGit{tags: []string{"v0.21.0"}}
	e := &fakeEditor{}
	flow, _ := newFlow(t, g, e, "")

	err := flow.run("0.21.0")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	// Fails fast: no log retrieval, no editor invocation.
	assert.Nil(t, g.logSinceArg)
	assert.Empty(t, e.gotDraft)
}

func TestRun_NoCommitsExitsCleanly(t *testing.T) {
	t.Parallel()

	g := &fakeGit{latestTag: "v0.20.0", hasLatest: true, log: ""}
	e := &fakeEditor{}
	flow, out := newFlow(t, g, e, "")

	require.NoError(t, flow.run("0.21.0"))
	assert.Contains(t, out.String(), "No commits since last tag.")
	assert.Empty(t, e.gotDraft)
	assert.Empty(t, g.createdTag)
}

func TestRun_NoPreviousTagUsesFullHistory(t *testing.T) {
	t.Parallel()

	g := &fakeGit{hasLatest: false, log: "Initial commit|Alice"}
	e := &fakeEditor{passthrough: true}
	flow, out := newFlow(t, g, e, "y\n")

	require.NoError(t, flow.run("0.21.0"))
	require.NotNil(t, g.logSinceArg)
	assert.Equal(t, "", *g.logSinceArg)
	assert.Contains(t, out.String(), "No existing tags found")
}

func TestRun_EmptyEditedMessage(t *testing.T) {
	t.Parallel()

	g := &fakeGit{log: "Some change|Alice"}
	e := &fakeEditor{result: ""}
	flow, _ := newFlow(t, g, e, "y\n")

	err := flow.run("0.21.0")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty")
	assert.Empty(t, g.createdTag)
}

func TestRun_UserDeclines(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"explicit no":       "n\n",
		"yes is not y":      "yes\n",
		"empty reply":       "\n",
		"arbitrary garbage": "whatever\n",
	}

	for name, reply := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			g := &fakeGit{log: "Some change|Alice"}
			e := &fakeEditor{passthrough: true}
			flow, out := newFlow(t, g, e, reply)

			require.NoError(t, flow.run("0.21.0"))
			assert.Contains(t, out.String(), "Aborted.")
			assert.Empty(t, g.createdTag)
			assert.Empty(t, g.pushedTag)
		})
	}
}

func TestRun_DryRun(t *testing.T) {
	t.Parallel()

	g := &fakeGit{log: "Some change|Alice"}
	e := &fakeEditor{passthrough: true}
	flow, out := newFlow(t, g, e, "y\n")
	flow.dryRun = true

	require.NoError(t, flow.run("0.21.0"))

	assert.Contains(t, out.String(), "Would create annotated tag: v0.21.0")
	assert.Contains(t, out.String(), "Would push tag v0.21.0 to origin.")
	assert.Empty(t, g.createdTag)
	assert.Empty(t, g.pushedTag)
}

func TestRun_SkipConfirmations(t *testing.T) {
	t.Parallel()

	g := &fakeGit{log: "Some change|Alice"}
	e := &fakeEditor{passthrough: true}
	flow, out := newFlow(t, g, e, "")
	flow.cfg.SkipConfirmations = true

	require.NoError(t, flow.run("0.21.0"))
	assert.Contains(t, out.String(), "Proceeding")
	assert.Equal(t, "v0.21.0", g.createdTag)
}

func TestRun_PushFailureKeepsLocalTag(t *testing.T) {
	t.Parallel()

	g := &fakeGit{log: "Some change|Alice", pushErr: errors.New("remote unreachable")}
	e := &fakeEditor{passthrough: true}
	flow, out := newFlow(t, g, e, "y\n")

	err := flow.run("0.21.0")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "remote unreachable")

	cliErr := tagrelerrors.AsCLIError(err)
	require.NotNil(t, cliErr)
	assert.Equal(t, tagrelerrors.Runtime, cliErr.Category)
	require.NotEmpty(t, cliErr.Remediation)
	assert.Contains(t, cliErr.Remediation[0], "git push origin v0.21.0")

	// Tag creation succeeded before the push failed.
	assert.Equal(t, "v0.21.0", g.createdTag)
	assert.Contains(t, out.String(), "Tag v0.21.0 created locally.")
}

func TestRun_MalformedLogLinesSkipped(t *testing.T) {
	t.Parallel()

	g := &fakeGit{log: "Good change|Alice\nmalformed line without separator\nAnother change|Bob"}
	e := &fakeEditor{passthrough: true}
	flow, _ := newFlow(t, g, e, "y\n")

	require.NoError(t, flow.run("0.21.0"))

	assert.Contains(t, e.gotDraft, "- Good change")
	assert.Contains(t, e.gotDraft, "- Another change")
	assert.NotContains(t, e.gotDraft, "malformed")
}

func TestRun_EditorFailure(t *testing.T) {
	t.Parallel()

	g := &fakeGit{log: "Some change|Alice"}
	e := &fakeEditor{err: errors.New("editor crashed")}
	flow, _ := newFlow(t, g, e, "")

	err := flow.run("0.21.0")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "editor crashed")
}
