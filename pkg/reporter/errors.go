// --- START OF FINAL REVISED FILE pkg/reporter/errors.go ---
package reporter

import "errors"

// --- Exported Error Variables ---
// These errors represent specific categories of issues that might be returned
// by GenerateReport, usually wrapped inside an *ExecutionError. Library users
// can check against these using errors.Is.

var (
	// ErrConfigValidation indicates that the provided Options struct failed validation checks
	// (missing collaborators, empty paths, invalid enum values).
	// Returned directly, not wrapped in an ExecutionError.
	ErrConfigValidation = errors.New("invalid configuration options provided")

	// ErrBuildFailed indicates that the aggregated test results reported by the builder
	// failed and the build-result check is enabled.
	ErrBuildFailed = errors.New("aggregated cucumber results indicate failure")

	// ErrLocateFailed indicates the traversal of the Cucumber output location failed,
	// e.g. a permission error on a nested directory.
	ErrLocateFailed = errors.New("failed to locate cucumber json files")

	// ErrMkdirFailed indicates a failure to create the report output directory.
	ErrMkdirFailed = errors.New("failed to create output directory")

	// ErrInvalidPattern indicates an exclude pattern is not a valid glob.
	ErrInvalidPattern = errors.New("invalid exclude pattern")
)

// Messages carried by ExecutionError. The build-failed message is a fixed diagnostic that
// CI log scrapers match on.
const (
	BuildFailedMessage = "BUILD FAILED - Check Report For Details"
	ErrorFoundMessage  = "Error Found"
)

// ExecutionError is a build-level failure: the host (CLI, CI step) reports it and halts
// the build. Cause is always preserved for errors.Is / errors.As.
type ExecutionError struct {
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *ExecutionError) Error() string {
	if e.Cause == nil {
		return e.Message
	}
	return e.Message + ": " + e.Cause.Error()
}

// Unwrap returns the original cause.
func (e *ExecutionError) Unwrap() error { return e.Cause }

// newBuildFailedError is returned when the check flag is on and the run failed.
func newBuildFailedError() *ExecutionError {
	return &ExecutionError{Message: BuildFailedMessage, Cause: ErrBuildFailed}
}

// wrapExecutionError wraps any internal failure with the "Error Found" context.
func wrapExecutionError(cause error) *ExecutionError {
	return &ExecutionError{Message: ErrorFoundMessage, Cause: cause}
}

// IsBuildFailure reports whether err is (or wraps) a build-result failure as opposed to
// an internal error.
func IsBuildFailure(err error) bool {
	return errors.Is(err, ErrBuildFailed)
}

// --- END OF FINAL REVISED FILE pkg/reporter/errors.go ---
