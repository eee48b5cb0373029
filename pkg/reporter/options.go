// --- START OF FINAL REVISED FILE pkg/reporter/options.go ---
package reporter

import (
	"log/slog"

	"github.com/stackvity/cucumber-reporting/pkg/reporter/builder"
)

// BuilderConfig holds settings for the external report builder process.
type BuilderConfig struct {
	// Command is executed directly (no shell): Command[0] with Command[1:] as arguments.
	Command []string `mapstructure:"command"`
}

// Hooks defines callbacks for progress events during a run.
// GenerateReport ignores hook errors apart from logging them.
type Hooks interface {
	OnFileLocated(path string) error
	OnReportGenerated(result builder.Result) error
	OnRunComplete(report RunReport) error
}

// NoOpHooks provides a default, do-nothing implementation of the Hooks interface.
type NoOpHooks struct{}

// OnFileLocated implements the Hooks interface. It performs no action.
func (h *NoOpHooks) OnFileLocated(path string) error { return nil }

// OnReportGenerated implements the Hooks interface. It performs no action.
func (h *NoOpHooks) OnReportGenerated(result builder.Result) error { return nil }

// OnRunComplete implements the Hooks interface. It performs no action.
func (h *NoOpHooks) OnRunComplete(report RunReport) error { return nil }

// GitClient resolves revision information for build numbering.
type GitClient interface {
	HeadRevision(repoPath string) (string, error)
}

// Options holds all configuration for a GenerateReport run.
type Options struct {
	// --- Build Parameters ---
	ProjectName     string `mapstructure:"projectName"`     // Required
	BuildNumber     string `mapstructure:"buildNumber"`     // Defaults to "1"
	OutputDirectory string `mapstructure:"outputDirectory"` // Absolute after config validation
	CucumberOutput  string `mapstructure:"cucumberOutput"`  // File or directory; absolute after config validation

	// --- Result Gate ---
	CheckBuildResult bool `mapstructure:"checkBuildResult"` // Fail the run when the builder reports failing results

	// --- Report Behaviour (forwarded to the builder) ---
	ParallelTesting bool              `mapstructure:"parallelTesting"`
	SkippedFails    bool              `mapstructure:"skippedFails"`
	PendingFails    bool              `mapstructure:"pendingFails"`
	UndefinedFails  bool              `mapstructure:"undefinedFails"`
	MissingFails    bool              `mapstructure:"missingFails"`
	FlashCharts     bool              `mapstructure:"enableFlashCharts"`
	HighCharts      bool              `mapstructure:"highCharts"`
	RunWithJenkins  bool              `mapstructure:"runWithJenkins"`
	Classifications map[string]string `mapstructure:"classifications"`

	// --- Locating ---
	ExcludePatterns []string `mapstructure:"exclude"` // doublestar globs relative to CucumberOutput

	// --- Builder & Output ---
	Builder        BuilderConfig `mapstructure:"builder"`
	OutputFormat   OutputFormat  `mapstructure:"outputFormat"`
	GitBuildNumber bool          `mapstructure:"gitBuildNumber"` // Replace BuildNumber with the HEAD short hash

	// --- Application Info ---
	AppVersion     string `mapstructure:"-"`
	ConfigFilePath string `mapstructure:"-"`
	ProfileName    string `mapstructure:"-"`
	Verbose        bool   `mapstructure:"verbose"`

	// --- Injected Dependencies ---
	EventHooks    Hooks                 `mapstructure:"-"` // Required: use NoOpHooks if needed
	Logger        slog.Handler          `mapstructure:"-"` // Required: logging backend
	ReportBuilder builder.ReportBuilder `mapstructure:"-"` // Required: external report generation
	GitClient     GitClient             `mapstructure:"-"` // Optional: used when GitBuildNumber is set
}

// --- END OF FINAL REVISED FILE pkg/reporter/options.go ---
