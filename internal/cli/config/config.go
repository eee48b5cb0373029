// --- START OF FINAL REVISED FILE internal/cli/config/config.go ---
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/stackvity/cucumber-reporting/pkg/reporter"
	"github.com/stackvity/cucumber-reporting/pkg/util"
)

const (
	EnvPrefix         = "CUCUMBER_REPORTER"
	DefaultConfigName = "cucumber-reporter"
)

// flagKeys maps CLI flag names to the config keys they override.
// Flags handled explicitly after Unmarshal (classification, builder-command) are not listed.
var flagKeys = map[string]string{
	"project-name":       "projectName",
	"build-number":       "buildNumber",
	"output-dir":         "outputDirectory",
	"cucumber-output":    "cucumberOutput",
	"check-build-result": "checkBuildResult",
	"parallel-testing":   "parallelTesting",
	"skipped-fails":      "skippedFails",
	"pending-fails":      "pendingFails",
	"undefined-fails":    "undefinedFails",
	"missing-fails":      "missingFails",
	"flash-charts":       "enableFlashCharts",
	"high-charts":        "highCharts",
	"run-with-jenkins":   "runWithJenkins",
	"exclude":            "exclude",
	"output-format":      "outputFormat",
	"git-build-number":   "gitBuildNumber",
	"verbose":            "verbose",
}

// envAliases lists unprefixed environment variables CI servers commonly export.
var envAliases = map[string]string{
	"buildNumber": "BUILD_NUMBER",
	"projectName": "PROJECT_NAME",
}

// LoadAndValidate loads configuration from all sources (defaults, .env, file, profile, env, flags),
// validates the merged configuration and derives absolute paths.
// It sets up the logger and injects its handler into Options; other dependencies
// (report builder, hooks, git client) are injected by the caller.
func LoadAndValidate(cfgFile, profileName, appVersion string, verbose bool, flags *pflag.FlagSet) (reporter.Options, *slog.Logger, error) {
	var opts reporter.Options
	v := viper.New()

	// Temporary logger for errors before the final level is known
	tempLogHandler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo})
	if verbose {
		tempLogHandler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})
	}
	tempLogger := slog.New(tempLogHandler)

	// A missing .env is normal; existing environment variables win.
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		tempLogger.Warn("Failed to read .env file", slog.Any("error", err))
	}

	setDefaults(v)

	// --- Load Config File ---
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			tempLogger.Error("Failed to get user home directory", slog.Any("error", err))
			return opts, tempLogger, fmt.Errorf("failed to get user home directory: %w", err)
		}
		v.SetConfigName(DefaultConfigName)
		v.AddConfigPath(".")
		v.AddConfigPath(filepath.Join(home, ".config", DefaultConfigName))
		v.AddConfigPath(filepath.Join(home, "."+DefaultConfigName))
	}

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if errors.As(err, &configFileNotFoundError) && cfgFile == "" {
			tempLogger.Debug("No configuration file found, using defaults/env/flags.")
		} else {
			configFileUsed := cfgFile
			if configFileUsed == "" {
				configFileUsed = fmt.Sprintf("searched locations for %s.yaml/json/toml", DefaultConfigName)
			}
			tempLogger.Error("Error reading configuration file", slog.String("path", configFileUsed), slog.Any("error", err))
			return opts, tempLogger, fmt.Errorf("error reading config file '%s': %w", configFileUsed, err)
		}
	} else {
		opts.ConfigFilePath = v.ConfigFileUsed()
		tempLogger.Debug("Using configuration file", slog.String("path", opts.ConfigFilePath))
	}

	// --- Apply Profile ---
	opts.ProfileName = profileName
	if profileName != "" {
		profileKey := "profiles." + profileName
		if !v.IsSet(profileKey) {
			configPath := v.ConfigFileUsed()
			if configPath == "" {
				configPath = "(no config file found)"
			}
			err := fmt.Errorf("%w: profile '%s' not found in config file '%s'", reporter.ErrConfigValidation, profileName, configPath)
			tempLogger.Error(err.Error())
			return opts, tempLogger, err
		}
		profileSettings := v.Sub(profileKey)
		if profileSettings == nil {
			err := fmt.Errorf("failed to load profile '%s' settings from config file '%s'", profileName, v.ConfigFileUsed())
			tempLogger.Error(err.Error())
			return opts, tempLogger, err
		}
		if err := v.MergeConfigMap(profileSettings.AllSettings()); err != nil {
			tempLogger.Error("Error merging profile", slog.String("profile", profileName), slog.Any("error", err))
			return opts, tempLogger, fmt.Errorf("error merging profile '%s': %w", profileName, err)
		}
		tempLogger.Debug("Applied configuration profile", slog.String("profile", profileName))
	}

	// --- Bind Environment Variables ---
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	for key, alias := range envAliases {
		prefixed := EnvPrefix + "_" + strings.ToUpper(key)
		if err := v.BindEnv(key, prefixed, alias); err != nil {
			return opts, tempLogger, fmt.Errorf("error binding environment variable '%s': %w", alias, err)
		}
	}

	// --- Bind Flags (Highest Priority) ---
	for flagName, key := range flagKeys {
		flag := flags.Lookup(flagName)
		if flag == nil {
			tempLogger.Debug("Flag lookup failed during binding", slog.String("flag", flagName))
			continue
		}
		if err := v.BindPFlag(key, flag); err != nil {
			tempLogger.Error("Error binding flag", slog.String("flag", flagName), slog.Any("error", err))
			return opts, tempLogger, fmt.Errorf("error binding flag '--%s': %w", flagName, err)
		}
	}

	// --- Unmarshal Final Configuration ---
	opts.AppVersion = appVersion
	if err := v.Unmarshal(&opts); err != nil {
		tempLogger.Error("Error unmarshalling configuration", slog.Any("error", err))
		return opts, tempLogger, fmt.Errorf("error unmarshalling configuration: %w", err)
	}

	// --- Explicit Flag Overrides ---
	if flags.Changed("verbose") {
		opts.Verbose, _ = flags.GetBool("verbose")
	}
	if flags.Changed("classification") {
		fromFlag, _ := flags.GetStringToString("classification")
		if opts.Classifications == nil {
			opts.Classifications = make(map[string]string, len(fromFlag))
		}
		for name, value := range fromFlag {
			opts.Classifications[name] = value
		}
	}
	if flags.Changed("builder-command") {
		raw, _ := flags.GetString("builder-command")
		opts.Builder.Command = strings.Fields(raw)
	}
	// A single string from env or config is split like a command line.
	if len(opts.Builder.Command) == 1 {
		opts.Builder.Command = strings.Fields(opts.Builder.Command[0])
	}

	// --- Setup Final Logger ---
	logLevel := slog.LevelInfo
	if opts.Verbose {
		logLevel = slog.LevelDebug
	}
	logHandler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel})
	logger := slog.New(logHandler)
	opts.Logger = logHandler

	if err := validateAndDeriveOptions(&opts, logger); err != nil {
		return opts, logger, err
	}

	logger.Debug("Configuration loading and validation complete",
		slog.String("configFile", opts.ConfigFilePath),
		slog.String("profile", opts.ProfileName),
		slog.Bool("verbose", opts.Verbose),
		slog.String("logLevel", logLevel.String()),
	)
	return opts, logger, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("projectName", "")
	v.SetDefault("buildNumber", reporter.DefaultBuildNumber)
	v.SetDefault("outputDirectory", reporter.DefaultOutputDirectory)
	v.SetDefault("cucumberOutput", reporter.DefaultCucumberOutput)

	v.SetDefault("checkBuildResult", reporter.DefaultCheckBuildResult)
	v.SetDefault("parallelTesting", reporter.DefaultParallelTesting)
	v.SetDefault("skippedFails", reporter.DefaultSkippedFails)
	v.SetDefault("pendingFails", reporter.DefaultPendingFails)
	v.SetDefault("undefinedFails", reporter.DefaultUndefinedFails)
	v.SetDefault("missingFails", reporter.DefaultMissingFails)
	v.SetDefault("enableFlashCharts", reporter.DefaultFlashCharts)
	v.SetDefault("highCharts", reporter.DefaultHighCharts)
	v.SetDefault("runWithJenkins", reporter.DefaultRunWithJenkins)
	v.SetDefault("classifications", map[string]string{})

	v.SetDefault("exclude", []string{})
	v.SetDefault("builder.command", []string{reporter.DefaultBuilderCommand})
	v.SetDefault("outputFormat", string(reporter.DefaultOutputFormat))
	v.SetDefault("gitBuildNumber", reporter.DefaultGitBuildNumber)
	v.SetDefault("verbose", reporter.DefaultVerbose)
}

func isValidEnumValue[T ~string](value T, allowedValues []T) bool {
	return slices.Contains(allowedValues, value)
}

// validateAndDeriveOptions checks the merged options and resolves paths to absolute form.
// Every returned error wraps reporter.ErrConfigValidation.
func validateAndDeriveOptions(opts *reporter.Options, logger *slog.Logger) error {
	if strings.TrimSpace(opts.ProjectName) == "" {
		err := fmt.Errorf("%w: project name is required (--project-name, projectName, PROJECT_NAME)", reporter.ErrConfigValidation)
		logger.Error(err.Error(), slog.String("key", "projectName"))
		return err
	}
	if strings.TrimSpace(opts.BuildNumber) == "" {
		opts.BuildNumber = reporter.DefaultBuildNumber
	}

	// Paths
	for _, p := range []struct {
		key   string
		value *string
	}{
		{"cucumberOutput", &opts.CucumberOutput},
		{"outputDirectory", &opts.OutputDirectory},
	} {
		if *p.value == "" {
			err := fmt.Errorf("%w: '%s' cannot be empty", reporter.ErrConfigValidation, p.key)
			logger.Error(err.Error(), slog.String("key", p.key))
			return err
		}
		abs, err := filepath.Abs(*p.value)
		if err != nil {
			err = fmt.Errorf("%w: cannot resolve absolute path for '%s' ('%s'): %w", reporter.ErrConfigValidation, p.key, *p.value, err)
			logger.Error(err.Error(), slog.String("key", p.key), slog.String("value", *p.value))
			return err
		}
		*p.value = abs
	}
	logger.Debug("Resolved paths", slog.String("cucumberOutput", opts.CucumberOutput), slog.String("outputDirectory", opts.OutputDirectory))

	allowedOutputFormat := []reporter.OutputFormat{reporter.OutputFormatText, reporter.OutputFormatJSON, reporter.OutputFormatYAML}
	if !isValidEnumValue(opts.OutputFormat, allowedOutputFormat) {
		err := fmt.Errorf("%w: invalid value '%s' for key 'outputFormat' (flag --output-format). Allowed: %v", reporter.ErrConfigValidation, opts.OutputFormat, allowedOutputFormat)
		logger.Error(err.Error(), slog.String("key", "outputFormat"), slog.String("value", string(opts.OutputFormat)))
		return err
	}

	if len(opts.Builder.Command) == 0 || opts.Builder.Command[0] == "" {
		err := fmt.Errorf("%w: builder command cannot be empty (key 'builder.command', flag --builder-command)", reporter.ErrConfigValidation)
		logger.Error(err.Error(), slog.String("key", "builder.command"))
		return err
	}

	for _, pattern := range opts.ExcludePatterns {
		if !util.ValidPattern(pattern) {
			err := fmt.Errorf("%w: invalid exclude pattern '%s'", reporter.ErrConfigValidation, pattern)
			logger.Error(err.Error(), slog.String("key", "exclude"), slog.String("value", pattern))
			return err
		}
	}

	for name := range opts.Classifications {
		if strings.TrimSpace(name) == "" {
			err := fmt.Errorf("%w: classification names cannot be empty", reporter.ErrConfigValidation)
			logger.Error(err.Error(), slog.String("key", "classifications"))
			return err
		}
	}
	return nil
}

// --- END OF FINAL REVISED FILE internal/cli/config/config.go ---
