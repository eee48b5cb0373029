// --- START OF FINAL REVISED FILE pkg/reporter/constants.go ---
package reporter

// Constants defining default values for configuration options.
// These are used when setting up Viper defaults in the configuration loading process.
const (
	// DefaultBuildNumber mirrors the build tool default when no build number is supplied.
	DefaultBuildNumber = "1"
	// DefaultOutputDirectory is where the builder writes the report.
	DefaultOutputDirectory = "target/cucumber-reports"
	// DefaultCucumberOutput is the file or directory holding Cucumber JSON results.
	DefaultCucumberOutput = "target/cucumber.json"
	// DefaultCheckBuildResult controls whether failing results fail the build.
	DefaultCheckBuildResult = false
	// DefaultParallelTesting is forwarded to the builder only.
	DefaultParallelTesting = false
	// DefaultSkippedFails etc. decide which step statuses count as failures.
	DefaultSkippedFails   = false
	DefaultPendingFails   = false
	DefaultUndefinedFails = false
	DefaultMissingFails   = false
	// DefaultFlashCharts and DefaultHighCharts are chart rendering toggles.
	DefaultFlashCharts = true
	DefaultHighCharts  = false
	// DefaultRunWithJenkins tells the builder to emit Jenkins-relative links.
	DefaultRunWithJenkins = false
	// DefaultOutputFormat is the default format for the final summary.
	DefaultOutputFormat = OutputFormatText
	// DefaultGitBuildNumber enables deriving the build number from git HEAD.
	DefaultGitBuildNumber = false
	// DefaultVerbose is the default state for verbose logging.
	DefaultVerbose = false
	// DefaultBuilderCommand is the external report builder looked up on PATH.
	DefaultBuilderCommand = "cucumber-report-builder"
)

// JSONExtension is the suffix a file must carry to be picked up from a directory.
const JSONExtension = ".json"

// Constants related to report schema.
const (
	// ReportSchemaVersion indicates the version of the JSON/YAML run summary structure.
	ReportSchemaVersion = "1.0"
)

// --- END OF FINAL REVISED FILE pkg/reporter/constants.go ---
