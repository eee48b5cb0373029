// --- START OF FINAL REVISED FILE pkg/reporter/builder/builder.go ---
package builder

import (
	"context"
	"errors"
	"fmt"
)

// --- Constants ---

// BuilderSchemaVersion indicates the version of the request/response protocol spoken with
// process-based report builders. Builders and the runner implementation MUST check this
// for compatibility.
const BuilderSchemaVersion = "1.0"

// --- Error Variables ---

// ErrBuilderExecution indicates a general failure while invoking the external report builder.
// Check logs for detailed stderr/reason. Implementations should return errors wrapping this
// or the more specific variants below where appropriate.
var ErrBuilderExecution = errors.New("report builder execution failed")

// ErrBuilderTimeout indicates that the builder was cancelled or exceeded a deadline
// controlled by the context passed to Generate.
// errors.Is(err, ErrBuilderExecution) will also be true for this error.
var ErrBuilderTimeout = errors.New("report builder cancelled or timed out")

// ErrBuilderNonZeroExit indicates that a builder process exited with a non-zero status code.
// errors.Is(err, ErrBuilderExecution) will also be true for this error.
var ErrBuilderNonZeroExit = errors.New("report builder exited non-zero")

// ErrBuilderBadOutput indicates that the builder produced invalid output (non-JSON, schema
// mismatch, empty stdout) or reported a functional error via the "error" field.
// errors.Is(err, ErrBuilderExecution) will also be true for this error.
var ErrBuilderBadOutput = errors.New("report builder returned invalid output or reported error")

// --- Data Structures ---

// Classification is a single free-form label/value pair attached to a report run.
// Labels may repeat; the builder receives every pair in order.
type Classification struct {
	Name  string `json:"name" yaml:"name"`
	Value string `json:"value" yaml:"value"`
}

// Configuration is the single value handed to the report builder for one run.
// Every optional setting is a named field; zero values mean "off" except where the
// config layer applies a default.
type Configuration struct {
	OutputDirectory string `json:"outputDirectory"` // Absolute directory the builder writes the report into.
	CucumberOutput  string `json:"cucumberOutput"`  // Absolute source path the JSON files were located under.
	ProjectName     string `json:"projectName"`
	BuildNumber     string `json:"buildNumber"`

	// Step statuses that count as failures when the builder aggregates results.
	SkippedFails   bool `json:"skippedFails"`
	PendingFails   bool `json:"pendingFails"`
	UndefinedFails bool `json:"undefinedFails"`
	MissingFails   bool `json:"missingFails"`

	// Rendering toggles, forwarded verbatim.
	FlashCharts    bool `json:"flashCharts"`
	HighCharts     bool `json:"highCharts"`
	RunWithJenkins bool `json:"runWithJenkins"`

	// ParallelTesting asks the builder to merge results from parallel runs. Not used locally.
	ParallelTesting bool `json:"parallelTesting"`

	Classifications []Classification `json:"classifications,omitempty"`
}

// Result is what a builder reports back after generating a report.
type Result struct {
	// Passed is the aggregated pass/fail status of the test results.
	Passed bool
	// ReportPath optionally points at the generated entry page.
	ReportPath string
}

// Request defines the structure sent TO a process builder via JSON stdin.
type Request struct {
	SchemaVersion string        `json:"$schemaVersion"`
	RunID         string        `json:"runId"`
	JSONFiles     []string      `json:"jsonFiles"`
	Configuration Configuration `json:"configuration"`
}

// Response defines the structure expected FROM a process builder via JSON stdout.
type Response struct {
	SchemaVersion string `json:"$schemaVersion"`
	Error         string `json:"error,omitempty"`
	Passed        bool   `json:"passed"`
	ReportPath    string `json:"reportPath,omitempty"`
}

// --- Interfaces ---

// ReportBuilder generates a report from located Cucumber JSON files as a side effect
// and returns the aggregated result.
//
// Implementations MUST return errors wrapping ErrBuilderExecution (or a specific variant
// via WrapBuilderError) for invocation failures, and MUST NOT encode a failing test run as
// an error: a failing run is Result{Passed: false} with a nil error.
type ReportBuilder interface {
	Generate(ctx context.Context, jsonFiles []string, cfg Configuration) (Result, error)
}

// RunIDFromContext returns the run identifier stored by WithRunID, or "".
func RunIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(runIDKey{}).(string)
	return id
}

// WithRunID attaches a run identifier that builders may forward to the external process.
func WithRunID(ctx context.Context, runID string) context.Context {
	return context.WithValue(ctx, runIDKey{}, runID)
}

type runIDKey struct{}

// Errorf returns a formatted error that wraps ErrBuilderExecution.
func Errorf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: "+format, append([]interface{}{ErrBuilderExecution}, args...)...)
}

// WrapBuilderError wraps a specific builder error (timeout, bad output, ...) with the
// general ErrBuilderExecution so both are visible to errors.Is.
func WrapBuilderError(specificError error, format string, args ...interface{}) error {
	baseMsg := fmt.Sprintf(format, args...)
	return fmt.Errorf("%w: %s: %w", ErrBuilderExecution, baseMsg, specificError)
}

// --- END OF FINAL REVISED FILE pkg/reporter/builder/builder.go ---
