package cli

// Exit codes for the tagrel CLI. A declined confirmation and the
// "no commits since last tag" case both exit with success; every
// validation or external-command failure exits with failure.
const (
	// ExitSuccess indicates successful command execution, a clean
	// user abort, or the no-commits early exit.
	ExitSuccess = 0

	// ExitFailure indicates a validation failure, a pre-existing tag,
	// a missing manifest, an empty edited message, or a failed
	// external command.
	ExitFailure = 1
)
