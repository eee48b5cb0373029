// --- START OF FINAL REVISED FILE cmd/cucumber-reporter/root.go ---
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/stackvity/cucumber-reporting/internal/cli"
	"github.com/stackvity/cucumber-reporting/internal/cli/config"
	"github.com/stackvity/cucumber-reporting/pkg/reporter"
)

var (
	// These are set during build time using -ldflags
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = newRootCmd()

// newRootCmd builds the root command with all flags registered. Tests use it to get a
// command with fresh flag state.
func newRootCmd() *cobra.Command {
	var (
		cfgFile     string
		profileName string
		verbose     bool
	)

	cmd := &cobra.Command{
		Use:   "cucumber-reporter --project-name <name> -i <cucumberOutput> -o <outputDir>",
		Short: "Generates an HTML report from Cucumber JSON results and gates the build on them.",
		Long: `cucumber-reporter locates Cucumber JSON result files (a single file or every *.json
below a directory), hands them with the build parameters to an external report
builder and reports the outcome.

When --check-build-result is set and the builder reports failing results, the
command exits non-zero with "BUILD FAILED - Check Report For Details".
Finding no result files is not an error: the report is skipped with a warning.`,
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer cancel()

			opts, logger, err := config.LoadAndValidate(cfgFile, profileName, version, verbose, cmd.Flags())
			if err != nil {
				return err
			}
			// Past flag parsing, errors are run failures, not usage mistakes.
			cmd.SilenceUsage = true

			return cli.Run(ctx, opts, logger, cmd.OutOrStdout())
		},
	}
	cmd.SetVersionTemplate(`{{.Use}} version {{.Version}}` + "\n")

	// Persistent flags
	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Configuration file path (default is search ., $HOME/.config/cucumber-reporter/)")
	cmd.PersistentFlags().StringVar(&profileName, "profile", "", "Name of configuration profile to use")
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose (debug) logging output")

	// Build parameters
	cmd.Flags().String("project-name", "", "Project name shown in the report (or PROJECT_NAME)")
	cmd.Flags().String("build-number", reporter.DefaultBuildNumber, "Build number shown in the report (or BUILD_NUMBER)")
	cmd.Flags().StringP("output-dir", "o", reporter.DefaultOutputDirectory, "Directory the report is written to")
	cmd.Flags().StringP("cucumber-output", "i", reporter.DefaultCucumberOutput, "Cucumber JSON file, or directory searched recursively for *.json")

	// Result gate
	cmd.Flags().Bool("check-build-result", reporter.DefaultCheckBuildResult, "Fail the build when the Cucumber results are failing")

	// Report behaviour forwarded to the builder
	cmd.Flags().Bool("parallel-testing", reporter.DefaultParallelTesting, "Results come from parallel test runs")
	cmd.Flags().Bool("skipped-fails", reporter.DefaultSkippedFails, "Count skipped steps as failures")
	cmd.Flags().Bool("pending-fails", reporter.DefaultPendingFails, "Count pending steps as failures")
	cmd.Flags().Bool("undefined-fails", reporter.DefaultUndefinedFails, "Count undefined steps as failures")
	cmd.Flags().Bool("missing-fails", reporter.DefaultMissingFails, "Count missing steps as failures")
	cmd.Flags().Bool("flash-charts", reporter.DefaultFlashCharts, "Render Flash charts")
	cmd.Flags().Bool("high-charts", reporter.DefaultHighCharts, "Render Highcharts charts")
	cmd.Flags().Bool("run-with-jenkins", reporter.DefaultRunWithJenkins, "Produce Jenkins-relative links")
	cmd.Flags().StringToString("classification", map[string]string{}, "Extra report metadata as name=value (repeatable)")

	// Locating
	cmd.Flags().StringArray("exclude", []string{}, "Glob patterns (relative to --cucumber-output) to skip (repeatable)")

	// Builder & output
	cmd.Flags().String("builder-command", reporter.DefaultBuilderCommand, "External report builder command line")
	cmd.Flags().String("output-format", string(reporter.DefaultOutputFormat), `Run summary format ("text", "json", "yaml")`)
	cmd.Flags().Bool("git-build-number", reporter.DefaultGitBuildNumber, "Use the short git HEAD hash as build number")

	return cmd
}

// Execute runs the root command and exits non-zero on failure.
// Cobra has already printed the error by then.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// --- END OF FINAL REVISED FILE cmd/cucumber-reporter/root.go ---
