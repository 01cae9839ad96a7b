package cli

import (
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	"github.com/briandowns/spinner"

	"github.com/alder-tools/tagrel/internal/changelog"
	"github.com/alder-tools/tagrel/internal/config"
	"github.com/alder-tools/tagrel/internal/editor"
	"github.com/alder-tools/tagrel/internal/errors"
	"github.com/alder-tools/tagrel/internal/manifest"
	"github.com/alder-tools/tagrel/internal/output"
	"github.com/alder-tools/tagrel/internal/prompt"
	"github.com/alder-tools/tagrel/internal/semver"
)

// gitOps is the capability surface the release flow needs from git,
// so tests can substitute a fake without spawning processes.
type gitOps interface {
	LatestTag() (tag string, ok bool)
	TagNames() ([]string, error)
	LogSince(sinceTag string) (string, error)
	CreateAnnotatedTag(name, message string) error
	PushTag(remote, name string) error
}

// messageEditor opens a draft for human review and returns the edited
// result.
type messageEditor interface {
	Edit(initial string) (string, error)
}

func newMessageEditor(command string) messageEditor {
	return editor.New(command)
}

// releaseFlow runs the linear release sequence: validate, inspect
// tags, collect commits, edit, confirm, publish. No step loops back.
type releaseFlow struct {
	cfg          *config.Configuration
	manifestPath string
	git          gitOps
	editor       messageEditor
	in           io.Reader
	out          io.Writer
	dryRun       bool
}

func (f *releaseFlow) run(versionArg string) error {
	if err := semver.Validate(versionArg); err != nil {
		return errors.NewArgumentError(
			err.Error(),
			"Pass a bare semver version like 0.21.0 (no 'v' prefix, no pre-release suffix)",
		)
	}

	if err := manifest.CheckVersionMatch(f.manifestPath, versionArg); err != nil {
		return errors.NewValidationError(
			err.Error(),
			fmt.Sprintf("Update the version in %s before tagging", f.manifestPath),
		)
	}

	tagName := semver.TagName(f.cfg.TagPrefix, versionArg)

	tags, err := f.git.TagNames()
	if err != nil {
		return errors.Wrap(err, errors.Runtime)
	}
	if slices.Contains(tags, tagName) {
		return errors.NewValidationError(
			fmt.Sprintf("tag '%s' already exists", tagName),
			"Bump the version in the manifest and try again",
		)
	}

	latestTag, hasPrevious := f.git.LatestTag()
	if hasPrevious {
		output.PrintInfo(f.out, "Latest tag: %s", latestTag)
	} else {
		output.PrintInfo(f.out, "No existing tags found, using entire history.")
	}

	raw, err := f.git.LogSince(latestTag)
	if err != nil {
		return errors.Wrap(err, errors.Runtime)
	}
	if strings.TrimSpace(raw) == "" {
		output.PrintInfo(f.out, "No commits since last tag.")
		return nil
	}

	draft := changelog.Classify(tagName, changelog.ParseCommits(raw))

	message, err := f.editor.Edit(changelog.RenderString(draft))
	if err != nil {
		return errors.Wrap(err, errors.Runtime)
	}
	if message == "" {
		return errors.NewValidationError(
			"tag message is empty, aborting",
			"Save a non-empty message in the editor to create the release",
		)
	}

	output.PrintTagMessage(f.out, message)

	confirmed, err := f.confirm(tagName)
	if err != nil {
		return errors.Wrap(err, errors.Runtime)
	}
	if !confirmed {
		output.PrintInfo(f.out, "Aborted.")
		return nil
	}

	return f.publish(tagName, message)
}

// confirm asks the user before mutating anything, unless confirmations
// are disabled by flag, env, or config.
func (f *releaseFlow) confirm(tagName string) (bool, error) {
	if f.cfg.SkipConfirmations {
		output.PrintInfo(f.out, "Proceeding (skip_confirmations enabled)...")
		return true, nil
	}
	question := fmt.Sprintf("Create and push tag %s? (y/n): ", tagName)
	return prompt.Confirm(f.in, f.out, question)
}

// publish creates and pushes the tag, or narrates what would happen in
// dry-run mode. There is no partial-failure recovery: if the push
// fails after the tag was created, the local tag is left in place.
func (f *releaseFlow) publish(tagName, message string) error {
	if f.dryRun {
		output.PrintDryRun(f.out, fmt.Sprintf("Would create annotated tag: %s", tagName))
		output.PrintDryRun(f.out, fmt.Sprintf("Would push tag %s to %s.", tagName, f.cfg.Remote))
		return nil
	}

	if err := f.git.CreateAnnotatedTag(tagName, message); err != nil {
		return errors.Wrap(err, errors.Runtime)
	}
	output.PrintSuccess(f.out, fmt.Sprintf("Tag %s created locally.", tagName))

	if err := f.pushWithSpinner(tagName); err != nil {
		return errors.Wrap(err, errors.Runtime,
			fmt.Sprintf("The tag exists locally; push it manually with: git push %s %s", f.cfg.Remote, tagName),
		)
	}
	output.PrintSuccess(f.out, fmt.Sprintf("Tag %s pushed to %s.", tagName, f.cfg.Remote))
	return nil
}

// pushWithSpinner shows progress during the only network-bound step.
func (f *releaseFlow) pushWithSpinner(tagName string) error {
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(f.out))
	s.Suffix = fmt.Sprintf(" Pushing %s to %s...", tagName, f.cfg.Remote)
	s.Start()
	defer s.Stop()

	return f.git.PushTag(f.cfg.Remote, tagName)
}
