// --- START OF FINAL REVISED FILE internal/cli/cli.go ---
package cli

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/stackvity/cucumber-reporting/internal/cli/git"
	"github.com/stackvity/cucumber-reporting/internal/cli/hooks"
	"github.com/stackvity/cucumber-reporting/internal/cli/runner"
	"github.com/stackvity/cucumber-reporting/internal/cli/ui"
	"github.com/stackvity/cucumber-reporting/pkg/reporter"
)

// Run orchestrates the main application logic after configuration loading.
// It injects default implementations for dependencies the caller left nil, runs the
// report generation, prints the summary to out and returns the run's error.
func Run(ctx context.Context, opts reporter.Options, logger *slog.Logger, out io.Writer) error {
	injectDefaults(&opts, logger)
	applyGitBuildNumber(&opts, logger)

	report, runErr := reporter.GenerateReport(ctx, opts)

	// Validation failures happen before a run exists; there is nothing to summarize.
	if report.RunID != "" {
		logger.Debug("Run finished",
			slog.String("runId", report.RunID),
			slog.String("outcome", string(report.Outcome)),
			slog.Bool("failed", report.Failed()),
		)
		if err := ui.WriteSummary(out, report, opts.OutputFormat, ui.IsTerminal(out)); err != nil {
			logger.Warn("Failed to write run summary", slog.Any("error", err))
		}
	}

	if runErr != nil {
		logger.Debug("Core library execution failed", slog.Any("error", runErr), slog.Bool("buildFailure", reporter.IsBuildFailure(runErr)))
		return runErr
	}
	return nil
}

func injectDefaults(opts *reporter.Options, logger *slog.Logger) {
	if opts.Logger == nil {
		opts.Logger = logger.Handler()
	}
	if opts.EventHooks == nil {
		opts.EventHooks = hooks.NewCLIHooks(logger, opts.Verbose)
	}
	if opts.ReportBuilder == nil {
		opts.ReportBuilder = runner.NewExecReportBuilder(opts.Logger, opts.Builder.Command)
		logger.Debug("ReportBuilder not provided, using external process", slog.Any("command", opts.Builder.Command))
	}
	if opts.GitBuildNumber && opts.GitClient == nil {
		opts.GitClient = git.NewGoGitClient(opts.Logger)
	}
}

// applyGitBuildNumber replaces BuildNumber with the HEAD short hash of the repository
// containing the cucumber output. Failures keep the configured build number.
func applyGitBuildNumber(opts *reporter.Options, logger *slog.Logger) {
	if !opts.GitBuildNumber || opts.GitClient == nil {
		return
	}
	repoPath := opts.CucumberOutput
	if filepath.Ext(repoPath) == reporter.JSONExtension {
		repoPath = filepath.Dir(repoPath)
	}
	revision, err := opts.GitClient.HeadRevision(repoPath)
	if err != nil {
		logger.Warn("Could not derive build number from git, keeping configured value",
			slog.String("buildNumber", opts.BuildNumber), slog.Any("error", err))
		return
	}
	logger.Debug("Using git revision as build number", slog.String("revision", revision))
	opts.BuildNumber = revision
}

// --- END OF FINAL REVISED FILE internal/cli/cli.go ---
