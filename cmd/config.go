package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	configVersionKey     = "version"
	currentConfigVersion = 1

	configBaseName   = "covsight"
	configFileName   = configBaseName + ".yaml"
	configFolderPath = "."

	outputFlagName      = "output"
	logFileFlagName     = "log-file"
	verboseFlagName     = "verbose"
	formatFlagName      = "format"
	rootFlagName        = "root"
	ciServerFlagName    = "ciserver"
	summaryFlagName     = "summary"
	stripPrefixFlagName = "strip-prefix"

	reportFormatKey      = "report.format"
	reportDefaultNameKey = "report.default_name"
	reportRootKey        = "report.root"
	reportCiServerKey    = "report.ciserver"
	reportSummaryKey     = "report.summary"
	reportStripPrefixKey = "report.strip_prefix"

	defaultOutput      = ""
	defaultFormat      = "html"
	defaultReportName  = "covsight-report.html"
	defaultShowSummary = false

	envPrefix = "COVSIGHT"

	logFilenameKey   = "log.filename"
	logLevelKey      = "log.level"
	logVerboseKey    = "log.verbose"
	logMaxSizeKey    = "log.max_size"
	logMaxBackupsKey = "log.max_backups"
	logMaxAgeKey     = "log.max_age"
	logCompressKey   = "log.compress"

	defaultLogFilename   = ".covsight.log"
	defaultLogLevel      = int(slog.LevelInfo)
	defaultLogVerbose    = false
	defaultLogMaxSize    = 10
	defaultLogMaxBackups = 3
	defaultLogMaxAge     = 28
	defaultLogCompress   = true
)

var globalLogger *slog.Logger

func init() {
	viper.SetConfigName(configBaseName)
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configFolderPath)
	viper.SetConfigFile(filepath.Join(configFolderPath, configFileName))
	viper.AutomaticEnv()
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	viper.SetDefault(configVersionKey, currentConfigVersion)
	viper.SetDefault(outputFlagName, defaultOutput)
	viper.SetDefault(reportFormatKey, defaultFormat)
	viper.SetDefault(reportDefaultNameKey, defaultReportName)
	viper.SetDefault(reportRootKey, "")
	viper.SetDefault(reportCiServerKey, "")
	viper.SetDefault(reportSummaryKey, defaultShowSummary)
	viper.SetDefault(reportStripPrefixKey, "")

	// Logging defaults (used by config/env and as fallbacks for flags).
	viper.SetDefault(logFilenameKey, defaultLogFilename)
	viper.SetDefault(logLevelKey, defaultLogLevel)
	viper.SetDefault(logVerboseKey, defaultLogVerbose)
	viper.SetDefault(logMaxSizeKey, defaultLogMaxSize)
	viper.SetDefault(logMaxBackupsKey, defaultLogMaxBackups)
	viper.SetDefault(logMaxAgeKey, defaultLogMaxAge)
	viper.SetDefault(logCompressKey, defaultLogCompress)

	if err := viper.ReadInConfig(); err != nil {
		// SetConfigFile makes a missing file surface as a plain fs error.
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			fmt.Fprintf(os.Stderr, "covsight: ignoring config file: %v\n", err)
		}
	}
}

// parseSlogLevel accepts slog level names ("debug", "warn+2", ...), the
// "warning" alias and raw numeric levels.
func parseSlogLevel(value string, fallback slog.Level) slog.Level {
	value = strings.TrimSpace(value)
	if value == "" {
		return fallback
	}

	if n, err := strconv.Atoi(value); err == nil {
		return slog.Level(n)
	}

	if strings.EqualFold(value, "warning") {
		return slog.LevelWarn
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(value)); err != nil {
		return fallback
	}

	return level
}

// logSettings is the resolved logging configuration.
type logSettings struct {
	path       string
	level      slog.Level
	maxSize    int
	maxBackups int
	maxAge     int
	compress   bool
}

// loadLogSettings merges the log flags with the log.* config keys. An empty
// logPath falls back to the config value, then to the default file name.
func loadLogSettings(logPath string, verbose bool) logSettings {
	settings := logSettings{
		path:       strings.TrimSpace(logPath),
		level:      parseSlogLevel(viper.GetString(logLevelKey), slog.LevelInfo),
		maxSize:    viper.GetInt(logMaxSizeKey),
		maxBackups: viper.GetInt(logMaxBackupsKey),
		maxAge:     viper.GetInt(logMaxAgeKey),
		compress:   viper.GetBool(logCompressKey),
	}

	if settings.path == "" {
		settings.path = strings.TrimSpace(viper.GetString(logFilenameKey))
	}

	if settings.path == "" {
		settings.path = defaultLogFilename
	}

	if verbose {
		settings.level = slog.LevelDebug
	}

	return settings
}

// configureLogger installs a text slog handler over a rotating log file as
// the process-wide default logger.
func configureLogger(logPath string, verbose bool) *lumberjack.Logger {
	settings := loadLogSettings(logPath, verbose)

	logWriter := &lumberjack.Logger{
		Filename:   settings.path,
		MaxSize:    settings.maxSize,
		MaxBackups: settings.maxBackups,
		MaxAge:     settings.maxAge,
		Compress:   settings.compress,
	}

	handler := slog.NewTextHandler(logWriter, &slog.HandlerOptions{
		AddSource: true,
		Level:     settings.level,
	})

	globalLogger = slog.New(handler).With("app", configBaseName)
	slog.SetDefault(globalLogger)

	return logWriter
}
