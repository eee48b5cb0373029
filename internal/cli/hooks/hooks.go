// --- START OF FINAL REVISED FILE internal/cli/hooks/hooks.go ---
package hooks

import (
	"context"
	"log/slog"
	"sync"

	"github.com/stackvity/cucumber-reporting/pkg/reporter"
	"github.com/stackvity/cucumber-reporting/pkg/reporter/builder"
)

// CLIHooks implements the reporter.Hooks interface, bridging library events to the
// CLI logger. Located files are only logged in verbose mode but always counted;
// the final outcome is always logged along with that count.
type CLIHooks struct {
	logger         *slog.Logger
	verboseEnabled bool

	mu      sync.Mutex // Protects located
	located int
}

// NewCLIHooks creates a new CLIHooks instance.
func NewCLIHooks(logger *slog.Logger, verboseEnabled bool) *CLIHooks {
	return &CLIHooks{
		logger:         logger,
		verboseEnabled: verboseEnabled,
	}
}

// OnFileLocated handles the event when the locator accepts a Cucumber JSON file.
func (h *CLIHooks) OnFileLocated(path string) error {
	h.mu.Lock()
	h.located++
	h.mu.Unlock()
	if h.verboseEnabled {
		h.logger.Debug("Cucumber json file located", slog.String("path", path))
	}
	return nil // Library ignores hook errors
}

// OnReportGenerated handles the event when the builder returns.
func (h *CLIHooks) OnReportGenerated(result builder.Result) error {
	attrs := []any{slog.Bool("passed", result.Passed)}
	if result.ReportPath != "" {
		attrs = append(attrs, slog.String("reportPath", result.ReportPath))
	}
	h.logger.Debug("Report builder returned", attrs...)
	return nil
}

// OnRunComplete logs the outcome at a level matching its severity.
func (h *CLIHooks) OnRunComplete(report reporter.RunReport) error {
	logLevel := slog.LevelInfo
	switch report.Outcome {
	case reporter.OutcomeNoInput, reporter.OutcomeFailedIgnored:
		logLevel = slog.LevelWarn
	case reporter.OutcomeBuildFailed, reporter.OutcomeError:
		logLevel = slog.LevelError
	}
	h.mu.Lock()
	located := h.located
	h.mu.Unlock()
	h.logger.Log(context.Background(), logLevel, "Cucumber report run complete",
		slog.String("runId", report.RunID),
		slog.String("outcome", string(report.Outcome)),
		slog.Int("files", report.FileCount),
		slog.Int("located", located),
		slog.Float64("durationSeconds", report.DurationSeconds),
	)
	return nil
}

// --- END OF FINAL REVISED FILE internal/cli/hooks/hooks.go ---
