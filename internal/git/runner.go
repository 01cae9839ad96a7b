package git

import (
	"bytes"
	"os/exec"
	"strings"
)

// Runner executes a git subcommand and returns its trimmed standard
// output. Implementations capture stdout and stderr separately so
// failures can be reported with full context. The Repo type talks to
// git exclusively through this interface, which lets tests substitute
// a fake without spawning processes.
type Runner interface {
	Run(args ...string) (string, error)
}

// CommandError reports a git invocation that exited non-zero, carrying
// everything needed to diagnose it.
type CommandError struct {
	Args   []string
	Stdout string
	Stderr string
	Err    error
}

func (e *CommandError) Error() string {
	var b strings.Builder
	b.WriteString("git " + strings.Join(e.Args, " ") + ": " + e.Err.Error())
	if e.Stdout != "" {
		b.WriteString("\nstdout: " + e.Stdout)
	}
	if e.Stderr != "" {
		b.WriteString("\nstderr: " + e.Stderr)
	}
	return b.String()
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// ExecRunner runs git via os/exec in the given working directory.
// An empty Dir means the current working directory.
type ExecRunner struct {
	Dir string
}

// Run executes `git <args...>` synchronously and returns the trimmed
// stdout. On a non-zero exit it returns a *CommandError with the
// captured stdout and stderr.
func (r ExecRunner) Run(args ...string) (string, error) {
	logDebug("[git] exec: git %s", strings.Join(args, " "))

	cmd := exec.Command("git", args...)
	cmd.Dir = r.Dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return "", &CommandError{
			Args:   args,
			Stdout: strings.TrimSpace(stdout.String()),
			Stderr: strings.TrimSpace(stderr.String()),
			Err:    err,
		}
	}

	return strings.TrimSpace(stdout.String()), nil
}
