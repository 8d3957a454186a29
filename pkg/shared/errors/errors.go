package errors

import (
	"github.com/scan-io-git/solint/pkg/shared"
)

// Exit codes returned by the CLI.
const (
	ExitOK       = 0
	ExitFindings = 1 // findings at or above the fail-on severity
	ExitFailure  = 2 // usage, configuration or IO error
)

// CommandError carries an exit code from a cobra RunE to main, with the launch results
// that were produced before the failure.
type CommandError struct {
	ExitCode    int
	CommonError string
	Result      shared.GenericLaunchesResult
}

// Error implements the error interface, returning the message from the common error.
func (e *CommandError) Error() string {
	return e.CommonError
}

// NewCommandError wraps err as a single failed launch for args.
func NewCommandError(args interface{}, result interface{}, err error, code int) *CommandError {
	return &CommandError{
		ExitCode:    code,
		CommonError: err.Error(),
		Result: shared.GenericLaunchesResult{
			Launches: []shared.GenericResult{
				{
					Args:    args,
					Result:  result,
					Status:  shared.StatusFailed,
					Message: err.Error(),
				},
			},
		},
	}
}

// NewCommandErrorWithResult creates a CommandError with pre-formed launches.
func NewCommandErrorWithResult(launches shared.GenericLaunchesResult, err error, code int) *CommandError {
	return &CommandError{
		ExitCode:    code,
		CommonError: err.Error(),
		Result:      launches,
	}
}
