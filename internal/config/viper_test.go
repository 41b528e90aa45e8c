package config

import (
	"os"
	"path/filepath"
	"testing"

	"fjacquet/orcamento/internal/logging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points HOME and the working directory at empty temp directories
// and clears every ORCAMENTO_ variable.
func isolate(t *testing.T) string {
	t.Helper()
	for _, key := range []string{
		"ORCAMENTO_LOG_LEVEL", "ORCAMENTO_LOG_FORMAT",
		"ORCAMENTO_CSV_DELIMITER", "ORCAMENTO_CSV_DATE_FORMAT", "ORCAMENTO_CSV_DEFAULT_DESCRIPTION",
		"ORCAMENTO_SETTINGS_BACKEND", "ORCAMENTO_SETTINGS_PATH",
		"ORCAMENTO_SEARCH_HISTORY_LIMIT",
	} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}

	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	return dir
}

func TestInitializeConfig_Defaults(t *testing.T) {
	isolate(t)

	config, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "info", config.Log.Level)
	assert.Equal(t, "text", config.Log.Format)
	assert.Equal(t, ",", config.CSV.Delimiter)
	assert.Equal(t, ',', config.Delimiter())
	assert.Equal(t, "2006-01-02", config.CSV.DateFormat)
	assert.Equal(t, "Sem descrição", config.CSV.DefaultDescription)
	assert.Equal(t, "file", config.Settings.Backend)
	assert.Equal(t, "", config.Settings.Path)
	assert.Equal(t, 10, config.Search.HistoryLimit)
}

func TestInitializeConfig_EnvironmentVariables(t *testing.T) {
	isolate(t)

	t.Setenv("ORCAMENTO_LOG_LEVEL", "debug")
	t.Setenv("ORCAMENTO_LOG_FORMAT", "json")
	t.Setenv("ORCAMENTO_CSV_DELIMITER", ";")
	t.Setenv("ORCAMENTO_SETTINGS_BACKEND", "sqlite")
	t.Setenv("ORCAMENTO_SETTINGS_PATH", "/tmp/orcamento.db")
	t.Setenv("ORCAMENTO_SEARCH_HISTORY_LIMIT", "25")

	config, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "debug", config.Log.Level)
	assert.Equal(t, "json", config.Log.Format)
	assert.Equal(t, ';', config.Delimiter())
	assert.Equal(t, "sqlite", config.Settings.Backend)
	assert.Equal(t, "/tmp/orcamento.db", config.Settings.Path)
	assert.Equal(t, 25, config.Search.HistoryLimit)
}

func TestInitializeConfig_ConfigFile(t *testing.T) {
	dir := isolate(t)

	content := `
log:
  level: "warn"
csv:
  delimiter: "|"
  date_format: "02/01/2006"
settings:
  backend: memory
search:
  history_limit: 5
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0600))

	config, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "warn", config.Log.Level)
	assert.Equal(t, "text", config.Log.Format)
	assert.Equal(t, "|", config.CSV.Delimiter)
	assert.Equal(t, "02/01/2006", config.CSV.DateFormat)
	assert.Equal(t, "memory", config.Settings.Backend)
	assert.Equal(t, 5, config.Search.HistoryLimit)
}

func TestInitializeConfig_HierarchicalPrecedence(t *testing.T) {
	dir := isolate(t)

	content := "log:\n  level: warn\nsearch:\n  history_limit: 5\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0600))
	t.Setenv("ORCAMENTO_LOG_LEVEL", "error")

	config, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "error", config.Log.Level)
	assert.Equal(t, 5, config.Search.HistoryLimit)
}

func TestInitializeConfigFromFile(t *testing.T) {
	dir := isolate(t)

	path := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("settings:\n  backend: sqlite\n"), 0600))

	config, err := InitializeConfigFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "sqlite", config.Settings.Backend)

	_, err = InitializeConfigFromFile(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestInitializeConfig_InvalidFile(t *testing.T) {
	dir := isolate(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("settings:\n  backend: redis\n"), 0600))

	_, err := InitializeConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid settings backend")
}

func validConfig() *Config {
	return &Config{
		Log:      LogConfig{Level: "info", Format: "text"},
		CSV:      CSVConfig{Delimiter: ",", DateFormat: "2006-01-02"},
		Settings: SettingsConfig{Backend: "file"},
		Search:   SearchConfig{HistoryLimit: 10},
	}
}

func TestValidateConfig_InvalidValues(t *testing.T) {
	tests := []struct {
		name         string
		modifyConfig func(*Config)
		expectError  string
	}{
		{
			name:         "invalid log level",
			modifyConfig: func(c *Config) { c.Log.Level = "invalid" },
			expectError:  "invalid log level",
		},
		{
			name:         "invalid log format",
			modifyConfig: func(c *Config) { c.Log.Format = "xml" },
			expectError:  "invalid log format",
		},
		{
			name:         "invalid CSV delimiter",
			modifyConfig: func(c *Config) { c.CSV.Delimiter = "ab" },
			expectError:  "CSV delimiter must be a single character",
		},
		{
			name:         "empty date format",
			modifyConfig: func(c *Config) { c.CSV.DateFormat = "" },
			expectError:  "csv.date_format must not be empty",
		},
		{
			name:         "unknown backend",
			modifyConfig: func(c *Config) { c.Settings.Backend = "redis" },
			expectError:  "invalid settings backend",
		},
		{
			name:         "non-positive history limit",
			modifyConfig: func(c *Config) { c.Search.HistoryLimit = 0 },
			expectError:  "search.history_limit must be positive",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := validConfig()
			tt.modifyConfig(config)
			err := validateConfig(config)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.expectError)
		})
	}

	assert.NoError(t, validateConfig(validConfig()))
}

func TestConfigureLoggingFromConfig(t *testing.T) {
	for _, format := range []string{"text", "json"} {
		t.Run(format, func(t *testing.T) {
			config := validConfig()
			config.Log.Format = format
			config.Log.Level = "DEBUG"
			logger := ConfigureLoggingFromConfig(config)
			require.NotNil(t, logger)
			_, ok := logger.(*logging.LogrusAdapter)
			assert.True(t, ok)
		})
	}
}

func TestLoadEnv(t *testing.T) {
	dir := isolate(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("ORCAMENTO_TEST_VALUE=from-file\n"), 0600))
	t.Setenv("ORCAMENTO_TEST_VALUE", "")
	require.NoError(t, os.Unsetenv("ORCAMENTO_TEST_VALUE"))

	LoadEnv(logging.NewMockLogger())
	assert.Equal(t, "from-file", GetEnv("ORCAMENTO_TEST_VALUE", "fallback"))
	assert.Equal(t, "fallback", GetEnv("ORCAMENTO_UNSET_VALUE", "fallback"))
}
