// Package container provides dependency injection for the orcamento
// application. It centralizes the creation and wiring of all application
// dependencies, making them explicit and testable.
package container

import (
	"fmt"

	"fjacquet/orcamento/internal/categorizer"
	"fjacquet/orcamento/internal/config"
	"fjacquet/orcamento/internal/ingest"
	"fjacquet/orcamento/internal/logging"
	"fjacquet/orcamento/internal/report"
	"fjacquet/orcamento/internal/rules"
	"fjacquet/orcamento/internal/store"
	"fjacquet/orcamento/internal/suggest"
)

// Container holds all application dependencies and provides methods to access them.
// It is immutable after creation; dependencies are reached through getters.
type Container struct {
	logger      logging.Logger
	config      *config.Config
	settings    store.Store
	rules       *rules.RuleStore
	categorizer *categorizer.Categorizer
	importer    *ingest.Importer
	history     *suggest.History
	saved       *suggest.SavedSearches
	reports     *report.ReportGenerator
}

// NewContainer creates and wires all application dependencies, opening the
// settings backend named in cfg.
func NewContainer(cfg *config.Config) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}

	logger := config.ConfigureLoggingFromConfig(cfg)

	settings, err := store.Open(cfg.Settings.Backend, cfg.Settings.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open settings store: %w", err)
	}

	c, err := NewContainerWithStore(cfg, settings, logger)
	if err != nil {
		_ = store.Close(settings)
		return nil, err
	}
	return c, nil
}

// NewContainerWithStore wires the dependencies around an existing settings
// store and logger.
func NewContainerWithStore(cfg *config.Config, settings store.Store, logger logging.Logger) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}
	if settings == nil {
		return nil, fmt.Errorf("settings store cannot be nil")
	}
	if logger == nil {
		logger = config.ConfigureLoggingFromConfig(cfg)
	}

	ruleStore := rules.NewRuleStore(settings, logger)
	cat := categorizer.NewCategorizer(ruleStore, logger)

	// Imported rows are classified by the categorizer, one rule snapshot per file.
	importer := ingest.NewImporter(nil, ingest.Options{
		DateLayout:         cfg.CSV.DateFormat,
		DefaultDescription: cfg.CSV.DefaultDescription,
		Delimiter:          cfg.Delimiter(),
	}, logger)

	logger.Debug("Container initialized successfully",
		logging.Field{Key: logging.FieldBackend, Value: cfg.Settings.Backend})

	return &Container{
		logger:      logger,
		config:      cfg,
		settings:    settings,
		rules:       ruleStore,
		categorizer: cat,
		importer:    importer,
		history:     suggest.NewHistory(settings, cfg.Search.HistoryLimit, logger),
		saved:       suggest.NewSavedSearches(settings, logger),
		reports:     report.NewReportGenerator(logger),
	}, nil
}

// GetLogger returns the container's logger instance.
func (c *Container) GetLogger() logging.Logger {
	return c.logger
}

// GetConfig returns the container's configuration instance.
func (c *Container) GetConfig() *config.Config {
	return c.config
}

// GetSettings returns the settings store.
func (c *Container) GetSettings() store.Store {
	return c.settings
}

// GetRuleStore returns the keyword rule store.
func (c *Container) GetRuleStore() *rules.RuleStore {
	return c.rules
}

// GetCategorizer returns the container's categorizer instance.
func (c *Container) GetCategorizer() *categorizer.Categorizer {
	return c.categorizer
}

// GetImporter returns the CSV importer.
func (c *Container) GetImporter() *ingest.Importer {
	return c.importer
}

// GetHistory returns the recent-search history.
func (c *Container) GetHistory() *suggest.History {
	return c.history
}

// GetSavedSearches returns the saved searches.
func (c *Container) GetSavedSearches() *suggest.SavedSearches {
	return c.saved
}

// GetReportGenerator returns the report renderer.
func (c *Container) GetReportGenerator() *report.ReportGenerator {
	return c.reports
}

// Close releases the settings store.
func (c *Container) Close() error {
	if err := store.Close(c.settings); err != nil {
		return fmt.Errorf("failed to close settings store: %w", err)
	}
	c.logger.Debug("Container closed")
	return nil
}
