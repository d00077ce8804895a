package cmd

import (
	"errors"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	configVersionKey     = "version"
	currentConfigVersion = 1

	configBaseName   = "navhdr"
	configFileName   = configBaseName + ".yaml"
	configFolderPath = "."

	rootFlagName        = "root"
	excludeFlagName     = "exclude"
	parallelFlagName    = "parallel"
	variantFlagName     = "variant"
	scriptFlagName      = "script"
	baseFlagName        = "base"
	navigationFlagName  = "navigation"
	verboseFlagName     = "verbose"
	logFileFlagName     = "log-file"
	outFlagName         = "out"
	dryRunFlagName      = "dry-run"
	stripScriptFlagName = "strip-script"
	dedupeFlagName      = "dedupe"
	srcFlagName         = "src"
	imagesFlagName      = "images"
	thumbsFlagName      = "thumbs"
	heightFlagName      = "height"
	qualityFlagName     = "quality"
	backupFlagName      = "backup"
	maxFlagName         = "max"

	siteRootKey          = "site.root"
	excludeConfigKey     = "paths.exclude"
	parallelConfigKey    = "parallel"
	headerVariantKey     = "header.variant"
	headerScriptKey      = "header.script"
	headerBaseKey        = "header.base"
	headerNavigationKey  = "header.navigation"
	headerStripScriptKey = "header.strip_script"
	headerDedupeKey      = "header.dedupe"
	injectOutKey         = "inject.out"
	injectDryRunKey      = "inject.dry_run"
	imagesDirKey         = "images.dir"
	imagesThumbsDirKey   = "images.thumbs_dir"
	imagesBackupDirKey   = "images.backup_dir"
	imagesThumbHeightKey = "images.thumb_height"
	imagesThumbQualKey   = "images.thumb_quality"
	imagesMaxDimKey      = "images.max_dimension"
	imagesQualityKey     = "images.quality"

	defaultSiteRoot     = "."
	defaultParallel     = 4
	defaultVariant      = "a"
	defaultScript       = "header.js"
	defaultStripScript  = true
	defaultDedupe       = false
	defaultImagesDir    = "images"
	defaultThumbsDir    = "thumbs"
	defaultBackupDir    = "images_backup"
	defaultThumbHeight  = 250
	defaultThumbQuality = 85
	defaultMaxDimension = 3000
	defaultWebQuality   = 80

	envPrefix = "NAVHDR"

	logFilenameKey   = "log.filename"
	logLevelKey      = "log.level"
	logVerboseKey    = "log.verbose"
	logMaxSizeKey    = "log.max_size"
	logMaxBackupsKey = "log.max_backups"
	logMaxAgeKey     = "log.max_age"
	logCompressKey   = "log.compress"

	defaultLogFilename   = ".navhdr.log"
	defaultLogLevel      = "info"
	defaultLogVerbose    = false
	defaultLogMaxSize    = 10
	defaultLogMaxBackups = 3
	defaultLogMaxAge     = 28
	defaultLogCompress   = true
)

var globalLogger *slog.Logger

func init() {
	setupConfig()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			slog.Warn("Failed to read config file", "error", err)
		}
	}
}

// setupConfig points viper at navhdr.yaml and the NAVHDR_ environment and
// registers the defaults.
func setupConfig() {
	viper.SetConfigName(configBaseName)
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configFolderPath)
	viper.SetConfigFile(filepath.Join(configFolderPath, configFileName))
	viper.AutomaticEnv()
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	setDefaults()
}

// setDefaults registers every default. header.base has none: an unset base is
// derived from the script source.
func setDefaults() {
	viper.SetDefault(configVersionKey, currentConfigVersion)
	viper.SetDefault(siteRootKey, defaultSiteRoot)
	viper.SetDefault(excludeConfigKey, []string{})
	viper.SetDefault(parallelConfigKey, defaultParallel)

	viper.SetDefault(headerVariantKey, defaultVariant)
	viper.SetDefault(headerScriptKey, defaultScript)
	viper.SetDefault(headerNavigationKey, "")
	viper.SetDefault(headerStripScriptKey, defaultStripScript)
	viper.SetDefault(headerDedupeKey, defaultDedupe)
	viper.SetDefault(injectOutKey, "")
	viper.SetDefault(injectDryRunKey, false)

	viper.SetDefault(imagesDirKey, defaultImagesDir)
	viper.SetDefault(imagesThumbsDirKey, defaultThumbsDir)
	viper.SetDefault(imagesBackupDirKey, defaultBackupDir)
	viper.SetDefault(imagesThumbHeightKey, defaultThumbHeight)
	viper.SetDefault(imagesThumbQualKey, defaultThumbQuality)
	viper.SetDefault(imagesMaxDimKey, defaultMaxDimension)
	viper.SetDefault(imagesQualityKey, defaultWebQuality)

	// Logging defaults (used by config/env and as fallbacks for flags).
	viper.SetDefault(logFilenameKey, defaultLogFilename)
	viper.SetDefault(logLevelKey, defaultLogLevel)
	viper.SetDefault(logVerboseKey, defaultLogVerbose)
	viper.SetDefault(logMaxSizeKey, defaultLogMaxSize)
	viper.SetDefault(logMaxBackupsKey, defaultLogMaxBackups)
	viper.SetDefault(logMaxAgeKey, defaultLogMaxAge)
	viper.SetDefault(logCompressKey, defaultLogCompress)
}

func parseSlogLevel(value string, defaultLevel slog.Level) slog.Level {
	level := strings.ToLower(strings.TrimSpace(value))
	if level == "" {
		return defaultLevel
	}

	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}

	// Allow numeric slog levels as well (e.g. -4 for debug).
	if n, err := strconv.Atoi(level); err == nil {
		return slog.Level(n)
	}

	return defaultLevel
}

// configureLogger configures the global slog logger.
//
// By default it logs at Info; if verbose is true it logs at Debug.
func configureLogger(logPath string, verbose bool) {
	if strings.TrimSpace(logPath) == "" {
		logPath = viper.GetString(logFilenameKey)
	}

	if strings.TrimSpace(logPath) == "" {
		logPath = defaultLogFilename
	}

	var logLevel slog.Level
	if verbose {
		logLevel = slog.LevelDebug
	} else {
		logLevel = parseSlogLevel(viper.GetString(logLevelKey), slog.LevelInfo)
	}

	logWriter := &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    viper.GetInt(logMaxSizeKey),
		MaxBackups: viper.GetInt(logMaxBackupsKey),
		MaxAge:     viper.GetInt(logMaxAgeKey),
		Compress:   viper.GetBool(logCompressKey),
	}

	handler := slog.NewTextHandler(logWriter, &slog.HandlerOptions{
		AddSource: true,
		Level:     logLevel,
	})

	globalLogger = slog.New(handler)
	slog.SetDefault(globalLogger)
}
