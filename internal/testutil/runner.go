// Package testutil provides test utilities and helpers for tagrel
// tests, chiefly a scriptable fake git runner.
package testutil

import (
	"fmt"
	"strings"
)

// CallRecord captures one invocation made against the fake runner.
type CallRecord struct {
	Args []string
}

// Response scripts the outcome of one expected git invocation.
type Response struct {
	Output string
	Err    error
}

// FakeRunner implements git.Runner with canned responses keyed by the
// joined argument string (e.g., "tag -a v1.0.0 -m msg" keys on
// "tag"). Lookup is by the first argument — the git subcommand — which
// keeps scripts readable while still recording full invocations.
type FakeRunner struct {
	// Responses maps a git subcommand ("describe", "tag", "log",
	// "push") to its scripted outcome. Unscripted subcommands fail
	// the call with a descriptive error.
	Responses map[string]Response

	// Calls records every invocation in order.
	Calls []CallRecord
}

// NewFakeRunner returns a FakeRunner with an empty script.
func NewFakeRunner() *FakeRunner {
	return &FakeRunner{Responses: make(map[string]Response)}
}

// Script sets the canned outcome for a git subcommand.
func (f *FakeRunner) Script(subcommand, output string, err error) {
	f.Responses[subcommand] = Response{Output: output, Err: err}
}

// Run records the call and returns the scripted response for the
// subcommand (the first argument).
func (f *FakeRunner) Run(args ...string) (string, error) {
	f.Calls = append(f.Calls, CallRecord{Args: args})

	if len(args) == 0 {
		return "", fmt.Errorf("fake runner: empty invocation")
	}

	resp, ok := f.Responses[args[0]]
	if !ok {
		return "", fmt.Errorf("fake runner: unscripted subcommand %q", args[0])
	}
	return resp.Output, resp.Err
}

// CalledSubcommands returns the subcommand of each recorded call, in
// order.
func (f *FakeRunner) CalledSubcommands() []string {
	subs := make([]string, 0, len(f.Calls))
	for _, c := range f.Calls {
		if len(c.Args) > 0 {
			subs = append(subs, c.Args[0])
		}
	}
	return subs
}

// CallStrings returns each recorded call as a single joined string,
// useful for asserting exact invocations.
func (f *FakeRunner) CallStrings() []string {
	out := make([]string, 0, len(f.Calls))
	for _, c := range f.Calls {
		out = append(out, strings.Join(c.Args, " "))
	}
	return out
}
