package container

import (
	"errors"
	"path/filepath"
	"testing"

	"fjacquet/orcamento/internal/config"
	"fjacquet/orcamento/internal/logging"
	"fjacquet/orcamento/internal/models"
	"fjacquet/orcamento/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(backend, path string) *config.Config {
	return &config.Config{
		Log:      config.LogConfig{Level: "error", Format: "text"},
		CSV:      config.CSVConfig{Delimiter: ";", DateFormat: "2006-01-02", DefaultDescription: "Sem descrição"},
		Settings: config.SettingsConfig{Backend: backend, Path: path},
		Search:   config.SearchConfig{HistoryLimit: 3},
	}
}

func TestNewContainer(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name        string
		config      *config.Config
		expectError string
	}{
		{name: "nil config", config: nil, expectError: "configuration cannot be nil"},
		{name: "memory backend", config: testConfig(store.BackendMemory, "")},
		{name: "file backend", config: testConfig(store.BackendFile, filepath.Join(dir, "files"))},
		{name: "sqlite backend", config: testConfig(store.BackendSQLite, filepath.Join(dir, "settings.db"))},
		{name: "unknown backend", config: testConfig("redis", ""), expectError: "failed to open settings store"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewContainer(tt.config)
			if tt.expectError != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectError)
				return
			}
			require.NoError(t, err)
			defer func() { assert.NoError(t, c.Close()) }()

			assert.NotNil(t, c.GetLogger())
			assert.Same(t, tt.config, c.GetConfig())
			assert.NotNil(t, c.GetSettings())
			assert.NotNil(t, c.GetRuleStore())
			assert.NotNil(t, c.GetCategorizer())
			assert.NotNil(t, c.GetImporter())
			assert.NotNil(t, c.GetHistory())
			assert.NotNil(t, c.GetSavedSearches())
			assert.NotNil(t, c.GetReportGenerator())
		})
	}
}

func TestContainer_SharedSettings(t *testing.T) {
	settings := store.NewMemoryStore()
	c, err := NewContainerWithStore(testConfig(store.BackendMemory, ""), settings, logging.NewMockLogger())
	require.NoError(t, err)

	require.True(t, c.GetRuleStore().AddKeyword("Pets", "petshop"))
	category, err := c.GetCategorizer().CategorizeTitle("PETSHOP DO BAIRRO")
	require.NoError(t, err)
	assert.Equal(t, "Pets", category)

	for _, term := range []string{"a1", "a2", "a3", "a4"} {
		_, err := c.GetHistory().Add(term, models.StructuredFilters{})
		require.NoError(t, err)
	}
	assert.Len(t, c.GetHistory().Load(), 3, "history limit comes from config")

	_, found, err := settings.Get(models.SettingsKeyRecentSearches)
	require.NoError(t, err)
	assert.True(t, found)
}

func TestNewContainerWithStore_Errors(t *testing.T) {
	_, err := NewContainerWithStore(nil, store.NewMemoryStore(), nil)
	assert.Error(t, err)

	_, err = NewContainerWithStore(testConfig(store.BackendMemory, ""), nil, nil)
	assert.Error(t, err)
}

type failingCloser struct{ *store.MemoryStore }

func (failingCloser) Close() error { return errors.New("busy") }

func TestContainer_CloseError(t *testing.T) {
	c, err := NewContainerWithStore(testConfig(store.BackendMemory, ""), failingCloser{store.NewMemoryStore()}, logging.NewMockLogger())
	require.NoError(t, err)
	assert.Error(t, c.Close())
}
