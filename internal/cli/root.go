// Package cli wires the tagrel command line: flag parsing, config
// resolution, and the linear release flow from version validation to
// tag push.
package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/alder-tools/tagrel/internal/config"
	"github.com/alder-tools/tagrel/internal/errors"
	"github.com/alder-tools/tagrel/internal/git"
	"github.com/alder-tools/tagrel/internal/version"
)

var (
	dryRunFlag   bool
	yesFlag      bool
	debugFlag    bool
	manifestFlag string
	remoteFlag   string
	editorFlag   string
)

var rootCmd = &cobra.Command{
	Use:   "tagrel <version>",
	Short: "Create and push an annotated release tag with a generated changelog",
	Long: `tagrel automates the release tagging workflow for a single repository.

Given a bare semver version (X.Y.Z) it validates the version against the
project manifest, collects the commits since the previous tag, drafts a
changelog grouped into pull requests and other changes, opens the draft
in your editor for review, and on confirmation creates the annotated tag
and pushes it to the remote.

Examples:
  tagrel 0.21.0               # Tag and push v0.21.0
  tagrel 0.21.0 --dry-run     # Walk the whole flow without touching git
  tagrel 0.21.0 --yes         # Skip the confirmation prompt
  TAGREL_REMOTE=fork tagrel 0.21.0`,
	Args:          cobra.ExactArgs(1),
	Version:       fmt.Sprintf("%s (commit %s, built %s)", version.Version, version.Commit, version.BuildDate),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRelease(cmd, args[0])
	},
}

func init() {
	rootCmd.Flags().BoolVar(&dryRunFlag, "dry-run", false, "Simulate tag creation and push without mutating git state")
	rootCmd.Flags().BoolVarP(&yesFlag, "yes", "y", false, "Skip the confirmation prompt")
	rootCmd.Flags().BoolVar(&debugFlag, "debug", false, "Enable debug logging for git operations")
	rootCmd.Flags().StringVar(&manifestFlag, "manifest", "", "Manifest file carrying the authoritative version (default: Cargo.toml at the repo root)")
	rootCmd.Flags().StringVar(&remoteFlag, "remote", "", "Remote to push the tag to (default: origin)")
	rootCmd.Flags().StringVar(&editorFlag, "editor", "", "Editor for the tag message (default: $EDITOR or vim)")
}

// Execute runs the root command, printing structured errors to stderr.
// The caller translates a non-nil return into a non-zero exit status.
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		if cliErr := errors.AsCLIError(err); cliErr != nil {
			errors.PrintError(cliErr)
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		return err
	}
	return nil
}

// runRelease resolves configuration and dependencies, then hands off
// to the release flow.
func runRelease(cmd *cobra.Command, versionArg string) error {
	cfg, err := config.Load()
	if err != nil {
		return errors.WrapWithMessage(err, errors.Prerequisite, "loading configuration")
	}
	applyFlagOverrides(cfg)

	if cfg.Debug {
		git.SetDebugLogger(func(format string, args ...any) {
			fmt.Fprintf(cmd.ErrOrStderr(), format+"\n", args...)
		})
	}

	if !git.IsRepository() {
		return errors.NewPrerequisiteError(
			"not a git repository",
			"Run tagrel from inside the repository you want to tag",
		)
	}

	manifestPath, err := resolveManifestPath(cfg.Manifest)
	if err != nil {
		return errors.WrapWithMessage(err, errors.Prerequisite, "locating manifest")
	}

	flow := &releaseFlow{
		cfg:          cfg,
		manifestPath: manifestPath,
		git:          git.NewRepo(git.ExecRunner{}),
		editor:       newMessageEditor(cfg.Editor),
		in:           cmd.InOrStdin(),
		out:          cmd.OutOrStdout(),
		dryRun:       dryRunFlag,
	}
	return flow.run(versionArg)
}

// applyFlagOverrides lets explicit flags win over config and env.
func applyFlagOverrides(cfg *config.Configuration) {
	if manifestFlag != "" {
		cfg.Manifest = manifestFlag
	}
	if remoteFlag != "" {
		cfg.Remote = remoteFlag
	}
	if editorFlag != "" {
		cfg.Editor = editorFlag
	}
	if yesFlag {
		cfg.SkipConfirmations = true
	}
	if debugFlag {
		cfg.Debug = true
	}
}

// resolveManifestPath anchors a relative manifest path at the
// repository root, so tagrel works from any subdirectory.
func resolveManifestPath(path string) (string, error) {
	if filepath.IsAbs(path) {
		return path, nil
	}
	root, err := git.RepositoryRoot()
	if err != nil {
		return "", err
	}
	return filepath.Join(root, path), nil
}
