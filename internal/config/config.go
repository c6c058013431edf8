// Package config resolves server settings from defaults, an optional config
// file, .env files, the environment and command-line flags.
package config

import (
	"errors"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"editfolio.dev/internal/logging"
)

const (
	AppName   = "editfolio"
	EnvPrefix = "EDITFOLIO"
)

// Keys
const (
	ServerAddr             = "server.addr"
	ContentPath            = "content.path"
	ContentWatch           = "content.watch"
	LogLevel               = "log.level"
	LogFormat              = "log.format"
	LogFile                = "log.file"
	LogMaxSizeMB           = "log.max_size_mb"
	LogMaxBackups          = "log.max_backups"
	LogMaxAgeDays          = "log.max_age_days"
	LogCompress            = "log.compress"
	AnalyticsDB            = "analytics.db"
	AnalyticsRetentionDays = "analytics.retention_days"
	AnalyticsSalt          = "analytics.salt"
	ShutdownTimeout        = "server.shutdown_timeout"
)

// Default holds the factory value of every key
var Default = map[string]any{
	ServerAddr:             ":8080",
	ContentPath:            "data/site.yaml",
	ContentWatch:           false,
	LogLevel:               "info",
	LogFormat:              "text",
	LogFile:                "",
	LogMaxSizeMB:           10,
	LogMaxBackups:          3,
	LogMaxAgeDays:          28,
	LogCompress:            false,
	AnalyticsDB:            "",
	AnalyticsRetentionDays: 365,
	AnalyticsSalt:          "",
	ShutdownTimeout:        5 * time.Second,
}

// EnvKeyReplacer maps config keys onto environment variable names
var EnvKeyReplacer = strings.NewReplacer(".", "_")

// Config holds all application configuration
type Config struct {
	ServerAddr      string
	ShutdownTimeout time.Duration
	ContentPath     string
	WatchContent    bool
	Log             logging.Config
	Analytics       AnalyticsConfig
}

// AnalyticsConfig holds visitor tracking settings. An empty DBPath disables tracking.
type AnalyticsConfig struct {
	DBPath    string
	Retention time.Duration
	Salt      string
}

// Enabled reports whether visitor tracking is switched on
func (a AnalyticsConfig) Enabled() bool {
	return a.DBPath != ""
}

// Setup registers defaults, environment bindings and the optional config file.
// A missing config file or .env file is not an error.
func Setup() error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}

	viper.SetConfigName(AppName)
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")

	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(EnvKeyReplacer)
	viper.AutomaticEnv()

	viper.SetTypeByDefaultValue(true)
	for name, value := range Default {
		viper.SetDefault(name, value)
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return err
	}
	return nil
}

// Load builds a Config from the current viper state
func Load() *Config {
	return &Config{
		ServerAddr:      serverAddr(),
		ShutdownTimeout: viper.GetDuration(ShutdownTimeout),
		ContentPath:     viper.GetString(ContentPath),
		WatchContent:    viper.GetBool(ContentWatch),
		Log: logging.Config{
			Level:      viper.GetString(LogLevel),
			Format:     viper.GetString(LogFormat),
			File:       viper.GetString(LogFile),
			MaxSizeMB:  viper.GetInt(LogMaxSizeMB),
			MaxBackups: viper.GetInt(LogMaxBackups),
			MaxAgeDays: viper.GetInt(LogMaxAgeDays),
			Compress:   viper.GetBool(LogCompress),
		},
		Analytics: AnalyticsConfig{
			DBPath:    viper.GetString(AnalyticsDB),
			Retention: time.Duration(viper.GetInt(AnalyticsRetentionDays)) * 24 * time.Hour,
			Salt:      viper.GetString(AnalyticsSalt),
		},
	}
}

// serverAddr prefers an explicitly set server.addr, then the plain SERVER_ADDR
// and PORT variables common on hosting platforms.
func serverAddr() string {
	if viper.IsSet(ServerAddr) && viper.GetString(ServerAddr) != Default[ServerAddr] {
		return viper.GetString(ServerAddr)
	}
	if addr := os.Getenv("SERVER_ADDR"); addr != "" {
		return addr
	}
	if port := os.Getenv("PORT"); port != "" {
		return ":" + port
	}
	return viper.GetString(ServerAddr)
}
