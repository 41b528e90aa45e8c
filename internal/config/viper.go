// Package config provides Viper-based hierarchical configuration management
package config

import (
	"errors"
	"fmt"
	"strings"

	"fjacquet/orcamento/internal/logging"
	"fjacquet/orcamento/internal/store"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable read by the configuration.
const EnvPrefix = "ORCAMENTO"

// LogConfig configures the process logger.
type LogConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// CSVConfig configures reading bank exports and writing transaction files.
type CSVConfig struct {
	Delimiter          string `mapstructure:"delimiter" yaml:"delimiter"`
	DateFormat         string `mapstructure:"date_format" yaml:"date_format"`
	DefaultDescription string `mapstructure:"default_description" yaml:"default_description"`
}

// SettingsConfig selects where rules and search history are kept.
type SettingsConfig struct {
	Backend string `mapstructure:"backend" yaml:"backend"`
	Path    string `mapstructure:"path" yaml:"path"`
}

// SearchConfig configures search history.
type SearchConfig struct {
	HistoryLimit int `mapstructure:"history_limit" yaml:"history_limit"`
}

// Config represents the complete application configuration
type Config struct {
	Log      LogConfig      `mapstructure:"log" yaml:"log"`
	CSV      CSVConfig      `mapstructure:"csv" yaml:"csv"`
	Settings SettingsConfig `mapstructure:"settings" yaml:"settings"`
	Search   SearchConfig   `mapstructure:"search" yaml:"search"`
}

// Delimiter returns the CSV delimiter as a rune.
func (c *Config) Delimiter() rune {
	if c.CSV.Delimiter == "" {
		return ','
	}
	return []rune(c.CSV.Delimiter)[0]
}

// InitializeConfig initializes Viper configuration with hierarchical loading:
// defaults, then config.yaml from $HOME/.orcamento, .orcamento or the working
// directory, then ORCAMENTO_* environment variables.
func InitializeConfig() (*Config, error) {
	return InitializeConfigFromFile("")
}

// InitializeConfigFromFile is InitializeConfig reading configFile instead of
// searching the default locations. An explicit file that cannot be read is
// an error.
func InitializeConfigFromFile(configFile string) (*Config, error) {
	v := viper.New()

	// 1. Set defaults
	setDefaults(v)

	// 2. Config file locations
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("$HOME/.orcamento")
		v.AddConfigPath(".orcamento")
		v.AddConfigPath(".")
	}

	// 3. Environment variables
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// 4. Read config file (optional unless given explicitly)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file %s: %w", v.ConfigFileUsed(), err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// 5. Validate configuration
	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("csv.delimiter", ",")
	v.SetDefault("csv.date_format", "2006-01-02")
	v.SetDefault("csv.default_description", "Sem descrição")

	v.SetDefault("settings.backend", store.BackendFile)
	v.SetDefault("settings.path", "")

	v.SetDefault("search.history_limit", 10)
}

// validateConfig validates the configuration values
func validateConfig(config *Config) error {
	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}

	if config.Log.Format != "text" && config.Log.Format != "json" {
		return fmt.Errorf("invalid log format: %s (must be 'text' or 'json')", config.Log.Format)
	}

	if len([]rune(config.CSV.Delimiter)) != 1 {
		return fmt.Errorf("CSV delimiter must be a single character, got: %s", config.CSV.Delimiter)
	}

	if config.CSV.DateFormat == "" {
		return fmt.Errorf("csv.date_format must not be empty")
	}

	switch strings.ToLower(config.Settings.Backend) {
	case store.BackendMemory, store.BackendFile, store.BackendSQLite:
	default:
		return fmt.Errorf("invalid settings backend: %s (must be 'memory', 'file' or 'sqlite')", config.Settings.Backend)
	}

	if config.Search.HistoryLimit < 1 {
		return fmt.Errorf("search.history_limit must be positive, got: %d", config.Search.HistoryLimit)
	}

	return nil
}

// ConfigureLoggingFromConfig builds the process logger from the Config struct
func ConfigureLoggingFromConfig(config *Config) logging.Logger {
	return logging.NewLogrusAdapter(strings.ToLower(config.Log.Level), strings.ToLower(config.Log.Format))
}
