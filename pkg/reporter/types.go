// --- START OF FINAL REVISED FILE pkg/reporter/types.go ---
package reporter

// OutputFormat defines the format for the run summary printed to standard output.
type OutputFormat string

const (
	OutputFormatText OutputFormat = "text"
	OutputFormatJSON OutputFormat = "json"
	OutputFormatYAML OutputFormat = "yaml"
)

// Outcome is the final state of one GenerateReport run.
type Outcome string

// Constants representing the defined run outcomes.
const (
	// OutcomeNoInput: nothing was located, the builder was not invoked.
	OutcomeNoInput Outcome = "no_input"
	// OutcomePassed: the builder ran and reported passing results.
	OutcomePassed Outcome = "passed"
	// OutcomeFailedIgnored: the builder reported failing results but the check is disabled.
	OutcomeFailedIgnored Outcome = "failed_ignored"
	// OutcomeBuildFailed: failing results with the check enabled.
	OutcomeBuildFailed Outcome = "build_failed"
	// OutcomeError: an internal error stopped the run.
	OutcomeError Outcome = "error"
)

// --- END OF FINAL REVISED FILE pkg/reporter/types.go ---
