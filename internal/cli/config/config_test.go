// --- START OF FINAL REVISED FILE internal/cli/config/config_test.go ---
package config

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stackvity/cucumber-reporting/pkg/reporter"
)

// Helper function to create a temporary config file
func createTempConfigFile(t *testing.T, content string, format string) string {
	t.Helper()
	filePath := filepath.Join(t.TempDir(), fmt.Sprintf("config.%s", format))
	require.NoError(t, os.WriteFile(filePath, []byte(content), 0644))
	return filePath
}

// isolateEnv clears variables that CI servers set and that would leak into the tests.
func isolateEnv(t *testing.T) {
	t.Helper()
	for _, name := range []string{
		"BUILD_NUMBER", "PROJECT_NAME",
		"CUCUMBER_REPORTER_BUILDNUMBER", "CUCUMBER_REPORTER_PROJECTNAME",
		"CUCUMBER_REPORTER_CHECKBUILDRESULT", "CUCUMBER_REPORTER_OUTPUTFORMAT",
	} {
		t.Setenv(name, "")
	}
	// Keep .env and config-file discovery away from the package directory.
	chdir(t, t.TempDir())
}

// defineAllFlags mirrors the flag definitions of the root command.
func defineAllFlags(flags *pflag.FlagSet) {
	flags.String("config", "", "Config file")
	flags.String("profile", "", "Config profile")
	flags.BoolP("verbose", "v", false, "Verbose logging")

	flags.String("project-name", "", "Project name")
	flags.String("build-number", reporter.DefaultBuildNumber, "Build number")
	flags.StringP("output-dir", "o", reporter.DefaultOutputDirectory, "Output directory")
	flags.StringP("cucumber-output", "i", reporter.DefaultCucumberOutput, "Cucumber JSON file or directory")
	flags.Bool("check-build-result", reporter.DefaultCheckBuildResult, "Fail on failing results")
	flags.Bool("parallel-testing", reporter.DefaultParallelTesting, "Parallel testing")
	flags.Bool("skipped-fails", reporter.DefaultSkippedFails, "Skipped fails")
	flags.Bool("pending-fails", reporter.DefaultPendingFails, "Pending fails")
	flags.Bool("undefined-fails", reporter.DefaultUndefinedFails, "Undefined fails")
	flags.Bool("missing-fails", reporter.DefaultMissingFails, "Missing fails")
	flags.Bool("flash-charts", reporter.DefaultFlashCharts, "Flash charts")
	flags.Bool("high-charts", reporter.DefaultHighCharts, "High charts")
	flags.Bool("run-with-jenkins", reporter.DefaultRunWithJenkins, "Run with Jenkins")
	flags.StringToString("classification", map[string]string{}, "Classifications")
	flags.StringArray("exclude", []string{}, "Exclude patterns")
	flags.String("builder-command", reporter.DefaultBuilderCommand, "Builder command")
	flags.String("output-format", string(reporter.DefaultOutputFormat), "Summary format")
	flags.Bool("git-build-number", reporter.DefaultGitBuildNumber, "Git build number")
}

func newFlags(t *testing.T, set map[string]string) *pflag.FlagSet {
	t.Helper()
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	defineAllFlags(flags)
	for name, value := range set {
		require.NoError(t, flags.Set(name, value), "setting flag %s", name)
	}
	return flags
}

func TestLoadAndValidate_Defaults(t *testing.T) {
	isolateEnv(t)
	flags := newFlags(t, map[string]string{"project-name": "shop"})

	opts, logger, err := LoadAndValidate("", "", "1.2.3", false, flags)
	require.NoError(t, err)
	require.NotNil(t, logger)
	require.NotNil(t, opts.Logger)

	assert.Equal(t, "shop", opts.ProjectName)
	assert.Equal(t, reporter.DefaultBuildNumber, opts.BuildNumber)
	assert.True(t, filepath.IsAbs(opts.OutputDirectory))
	assert.True(t, filepath.IsAbs(opts.CucumberOutput))
	assert.Equal(t, filepath.Base(reporter.DefaultCucumberOutput), filepath.Base(opts.CucumberOutput))
	assert.False(t, opts.CheckBuildResult)
	assert.True(t, opts.FlashCharts)
	assert.False(t, opts.HighCharts)
	assert.Equal(t, reporter.OutputFormatText, opts.OutputFormat)
	assert.Equal(t, []string{reporter.DefaultBuilderCommand}, opts.Builder.Command)
	assert.Equal(t, "1.2.3", opts.AppVersion)
	assert.Empty(t, opts.ConfigFilePath)
}

func TestLoadAndValidate_MissingProjectName(t *testing.T) {
	isolateEnv(t)
	_, _, err := LoadAndValidate("", "", "dev", false, newFlags(t, nil))
	require.Error(t, err)
	assert.ErrorIs(t, err, reporter.ErrConfigValidation)
	assert.Contains(t, err.Error(), "project name is required")
}

func TestLoadAndValidate_ConfigFile(t *testing.T) {
	isolateEnv(t)
	cfg := createTempConfigFile(t, `
projectName: from-file
buildNumber: "77"
cucumberOutput: results
outputDirectory: reports
checkBuildResult: true
enableFlashCharts: false
classifications:
  platform: linux
  browser: firefox
exclude:
  - "rerun/**"
builder:
  command: ["java", "-jar", "builder.jar"]
`, "yaml")

	opts, _, err := LoadAndValidate(cfg, "", "dev", false, newFlags(t, nil))
	require.NoError(t, err)

	assert.Equal(t, cfg, opts.ConfigFilePath)
	assert.Equal(t, "from-file", opts.ProjectName)
	assert.Equal(t, "77", opts.BuildNumber)
	assert.True(t, opts.CheckBuildResult)
	assert.False(t, opts.FlashCharts)
	assert.Equal(t, "results", filepath.Base(opts.CucumberOutput))
	assert.Equal(t, map[string]string{"platform": "linux", "browser": "firefox"}, opts.Classifications)
	assert.Equal(t, []string{"rerun/**"}, opts.ExcludePatterns)
	assert.Equal(t, []string{"java", "-jar", "builder.jar"}, opts.Builder.Command)
}

func TestLoadAndValidate_FlagsOverrideConfig(t *testing.T) {
	isolateEnv(t)
	cfg := createTempConfigFile(t, `
projectName: from-file
buildNumber: "77"
checkBuildResult: false
classifications:
  platform: linux
`, "yaml")
	flags := newFlags(t, map[string]string{
		"project-name":       "from-flag",
		"check-build-result": "true",
		"classification":     "platform=mac,branch=main",
		"builder-command":    "node build-report.js --quiet",
	})

	opts, _, err := LoadAndValidate(cfg, "", "dev", false, flags)
	require.NoError(t, err)

	assert.Equal(t, "from-flag", opts.ProjectName)
	assert.Equal(t, "77", opts.BuildNumber)
	assert.True(t, opts.CheckBuildResult)
	assert.Equal(t, map[string]string{"platform": "mac", "branch": "main"}, opts.Classifications)
	assert.Equal(t, []string{"node", "build-report.js", "--quiet"}, opts.Builder.Command)
}

func TestLoadAndValidate_EnvAliases(t *testing.T) {
	isolateEnv(t)
	t.Setenv("BUILD_NUMBER", "1234")
	t.Setenv("PROJECT_NAME", "ci-project")

	opts, _, err := LoadAndValidate("", "", "dev", false, newFlags(t, nil))
	require.NoError(t, err)
	assert.Equal(t, "1234", opts.BuildNumber)
	assert.Equal(t, "ci-project", opts.ProjectName)
}

func TestLoadAndValidate_PrefixedEnv(t *testing.T) {
	isolateEnv(t)
	t.Setenv("CUCUMBER_REPORTER_PROJECTNAME", "prefixed")
	t.Setenv("CUCUMBER_REPORTER_OUTPUTFORMAT", "yaml")

	opts, _, err := LoadAndValidate("", "", "dev", false, newFlags(t, nil))
	require.NoError(t, err)
	assert.Equal(t, "prefixed", opts.ProjectName)
	assert.Equal(t, reporter.OutputFormatYAML, opts.OutputFormat)
}

func TestLoadAndValidate_DotEnv(t *testing.T) {
	isolateEnv(t)
	require.NoError(t, os.WriteFile(".env", []byte("CUCUMBER_REPORTER_PROJECTNAME=dotenv-project\n"), 0644))
	t.Cleanup(func() { _ = os.Unsetenv("CUCUMBER_REPORTER_PROJECTNAME") })
	// An empty value set by isolateEnv counts as present for godotenv; remove it.
	require.NoError(t, os.Unsetenv("CUCUMBER_REPORTER_PROJECTNAME"))

	opts, _, err := LoadAndValidate("", "", "dev", false, newFlags(t, nil))
	require.NoError(t, err)
	assert.Equal(t, "dotenv-project", opts.ProjectName)
}

func TestLoadAndValidate_Profile(t *testing.T) {
	isolateEnv(t)
	cfg := createTempConfigFile(t, `
projectName: base
checkBuildResult: false
profiles:
  ci:
    checkBuildResult: true
    runWithJenkins: true
    outputFormat: json
`, "yaml")

	opts, _, err := LoadAndValidate(cfg, "ci", "dev", false, newFlags(t, nil))
	require.NoError(t, err)
	assert.Equal(t, "ci", opts.ProfileName)
	assert.Equal(t, "base", opts.ProjectName)
	assert.True(t, opts.CheckBuildResult)
	assert.True(t, opts.RunWithJenkins)
	assert.Equal(t, reporter.OutputFormatJSON, opts.OutputFormat)
}

func TestLoadAndValidate_ProfileNotFound(t *testing.T) {
	isolateEnv(t)
	cfg := createTempConfigFile(t, "projectName: base\n", "yaml")

	_, _, err := LoadAndValidate(cfg, "missing", "dev", false, newFlags(t, nil))
	require.Error(t, err)
	assert.ErrorIs(t, err, reporter.ErrConfigValidation)
	assert.Contains(t, err.Error(), "profile 'missing' not found")
}

func TestLoadAndValidate_ExplicitConfigMissing(t *testing.T) {
	isolateEnv(t)
	_, _, err := LoadAndValidate(filepath.Join(t.TempDir(), "nope.yaml"), "", "dev", false, newFlags(t, nil))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading config file")
}

func TestLoadAndValidate_TOMLConfig(t *testing.T) {
	isolateEnv(t)
	cfg := createTempConfigFile(t, "projectName = \"toml-project\"\nhighCharts = true\n", "toml")

	opts, _, err := LoadAndValidate(cfg, "", "dev", false, newFlags(t, nil))
	require.NoError(t, err)
	assert.Equal(t, "toml-project", opts.ProjectName)
	assert.True(t, opts.HighCharts)
}

func TestLoadAndValidate_ValidationErrors(t *testing.T) {
	testCases := []struct {
		name    string
		flags   map[string]string
		wantMsg string
	}{
		{
			name:    "invalid output format",
			flags:   map[string]string{"project-name": "p", "output-format": "xml"},
			wantMsg: "invalid value 'xml' for key 'outputFormat'",
		},
		{
			name:    "empty builder command",
			flags:   map[string]string{"project-name": "p", "builder-command": "   "},
			wantMsg: "builder command cannot be empty",
		},
		{
			name:    "invalid exclude pattern",
			flags:   map[string]string{"project-name": "p", "exclude": "[unclosed"},
			wantMsg: "invalid exclude pattern",
		},
		{
			name:    "empty cucumber output",
			flags:   map[string]string{"project-name": "p", "cucumber-output": ""},
			wantMsg: "'cucumberOutput' cannot be empty",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			isolateEnv(t)
			_, _, err := LoadAndValidate("", "", "dev", false, newFlags(t, tc.flags))
			require.Error(t, err)
			assert.ErrorIs(t, err, reporter.ErrConfigValidation)
			assert.Contains(t, err.Error(), tc.wantMsg)
		})
	}
}

func TestLoadAndValidate_BlankBuildNumberFallsBack(t *testing.T) {
	isolateEnv(t)
	flags := newFlags(t, map[string]string{"project-name": "p", "build-number": " "})

	opts, _, err := LoadAndValidate("", "", "dev", false, flags)
	require.NoError(t, err)
	assert.Equal(t, reporter.DefaultBuildNumber, opts.BuildNumber)
}

func TestLoadAndValidate_VerboseFlag(t *testing.T) {
	isolateEnv(t)
	flags := newFlags(t, map[string]string{"project-name": "p", "verbose": "true"})

	opts, logger, err := LoadAndValidate("", "", "dev", true, flags)
	require.NoError(t, err)
	assert.True(t, opts.Verbose)
	assert.True(t, logger.Enabled(context.Background(), slog.LevelDebug))
}

// --- END OF FINAL REVISED FILE internal/cli/config/config_test.go ---
