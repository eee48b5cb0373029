// --- START OF FINAL REVISED FILE pkg/reporter/generator.go ---
package reporter

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/stackvity/cucumber-reporting/pkg/reporter/builder"
)

// GenerateReport is the main entry point for the library: locate the Cucumber JSON files,
// hand them to the report builder and gate the build on the result.
//
// Errors:
//   - ErrConfigValidation (unwrapped) when required options or collaborators are missing.
//   - *ExecutionError with BuildFailedMessage when CheckBuildResult is set and the builder
//     reports failing results.
//   - *ExecutionError with ErrorFoundMessage wrapping any other failure.
//
// Finding nothing to report is not an error. The returned RunReport is populated in
// every case where validation passed.
func GenerateReport(ctx context.Context, opts Options) (RunReport, error) {
	// --- Initial Validation ---
	if opts.Logger == nil {
		return RunReport{}, fmt.Errorf("%w: Logger implementation cannot be nil", ErrConfigValidation)
	}
	logger := slog.New(opts.Logger).With(slog.String("component", "generator"))

	if opts.EventHooks == nil {
		return RunReport{}, fmt.Errorf("%w: EventHooks implementation cannot be nil (use NoOpHooks if needed)", ErrConfigValidation)
	}
	if opts.ReportBuilder == nil {
		err := fmt.Errorf("%w: ReportBuilder implementation cannot be nil", ErrConfigValidation)
		logger.Error(err.Error())
		return RunReport{}, err
	}
	if opts.CucumberOutput == "" {
		err := fmt.Errorf("%w: cucumber output path cannot be empty", ErrConfigValidation)
		logger.Error(err.Error())
		return RunReport{}, err
	}
	if opts.OutputDirectory == "" {
		err := fmt.Errorf("%w: output directory cannot be empty", ErrConfigValidation)
		logger.Error(err.Error())
		return RunReport{}, err
	}

	startTime := time.Now()
	report := RunReport{
		SchemaVersion:    ReportSchemaVersion,
		RunID:            uuid.NewString(),
		ProjectName:      opts.ProjectName,
		BuildNumber:      opts.BuildNumber,
		CucumberOutput:   opts.CucumberOutput,
		OutputDirectory:  opts.OutputDirectory,
		ProfileUsed:      opts.ProfileName,
		ConfigFilePath:   opts.ConfigFilePath,
		JSONFiles:        []string{},
		CheckBuildResult: opts.CheckBuildResult,
		Timestamp:        startTime,
	}
	logger = logger.With(slog.String("runId", report.RunID))

	finish := func(outcome Outcome, err error) (RunReport, error) {
		report.Outcome = outcome
		report.DurationSeconds = time.Since(startTime).Seconds()
		if err != nil {
			report.Error = err.Error()
		}
		if hookErr := opts.EventHooks.OnRunComplete(report); hookErr != nil {
			logger.Warn("Error reported by OnRunComplete hook", slog.String("hookError", hookErr.Error()))
		}
		return report, err
	}

	// --- Output Directory ---
	if err := os.MkdirAll(opts.OutputDirectory, 0o755); err != nil {
		logger.Error("Cannot create output directory", slog.String("path", opts.OutputDirectory), slog.String("error", err.Error()))
		return finish(OutcomeError, wrapExecutionError(fmt.Errorf("%w: %q: %w", ErrMkdirFailed, opts.OutputDirectory, err)))
	}

	// --- Locate Inputs ---
	locator, err := NewLocator(&opts, opts.Logger)
	if err != nil {
		return finish(OutcomeError, wrapExecutionError(err))
	}
	files, err := locator.Locate(ctx)
	if err != nil {
		logger.Error("Locating cucumber json files failed", slog.String("error", err.Error()))
		return finish(OutcomeError, wrapExecutionError(err))
	}
	report.JSONFiles = files
	report.FileCount = len(files)

	if len(files) == 0 {
		logger.Warn("No cucumber json files found, report not generated", slog.String("path", absOrOriginal(opts.CucumberOutput)))
		return finish(OutcomeNoInput, nil)
	}

	// --- Invoke Builder ---
	cfg := NewConfiguration(&opts)
	logger.Info("About to generate Cucumber report.",
		slog.String("project", cfg.ProjectName),
		slog.String("build", cfg.BuildNumber),
		slog.Int("files", len(files)),
		slog.String("outputDirectory", cfg.OutputDirectory),
	)
	report.BuilderInvoked = true
	result, err := opts.ReportBuilder.Generate(builder.WithRunID(ctx, report.RunID), files, cfg)
	if err != nil {
		logger.Error("Report generation failed", slog.String("error", err.Error()))
		return finish(OutcomeError, wrapExecutionError(err))
	}
	if hookErr := opts.EventHooks.OnReportGenerated(result); hookErr != nil {
		logger.Warn("Event hook OnReportGenerated failed", slog.String("error", hookErr.Error()))
	}
	report.Passed = result.Passed
	report.ReportPath = result.ReportPath

	// --- Build-Result Gate ---
	if !result.Passed {
		if opts.CheckBuildResult {
			logger.Error(BuildFailedMessage, slog.String("reportPath", result.ReportPath))
			return finish(OutcomeBuildFailed, newBuildFailedError())
		}
		logger.Warn("Cucumber results are failing, build result check disabled", slog.String("reportPath", result.ReportPath))
		return finish(OutcomeFailedIgnored, nil)
	}

	logger.Info("Cucumber report generated", slog.String("reportPath", result.ReportPath))
	return finish(OutcomePassed, nil)
}

// absOrOriginal returns path made absolute, or path unchanged when the working
// directory cannot be resolved.
func absOrOriginal(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	return abs
}

// --- END OF FINAL REVISED FILE pkg/reporter/generator.go ---
