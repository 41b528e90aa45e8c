// Package root contains the root command for the application
package root

import (
	"fmt"

	"fjacquet/orcamento/internal/config"
	"fjacquet/orcamento/internal/container"
	"fjacquet/orcamento/internal/logging"

	"github.com/spf13/cobra"
)

var (
	// Log is the shared logger instance for commands
	Log = logging.GetLogger()

	// ConfigFile is an explicit configuration file (--config).
	ConfigFile string
	// SettingsBackend overrides settings.backend (--settings-backend).
	SettingsBackend string
	// SettingsPath overrides settings.path (--settings-path).
	SettingsPath string

	// AppContainer is built before any subcommand runs.
	AppContainer *container.Container

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "orcamento",
		Short: "Classify and search personal budget transactions.",
		Long: `orcamento classifies bank transactions into budget categories with an
editable keyword rule set, and searches, ranks and reports on them.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
		PersistentPreRunE:  setup,
		PersistentPostRunE: teardown,
	}
)

// Init initializes the root command and all flags
func Init() {
	if Cmd.PersistentFlags().Lookup("config") != nil {
		return
	}
	Cmd.PersistentFlags().StringVar(&ConfigFile, "config", "", "Configuration file (default: config.yaml in $HOME/.orcamento, .orcamento or .)")
	Cmd.PersistentFlags().StringVar(&SettingsBackend, "settings-backend", "", "Settings store: memory, file or sqlite")
	Cmd.PersistentFlags().StringVar(&SettingsPath, "settings-path", "", "Settings directory (file) or database (sqlite)")
}

func setup(cmd *cobra.Command, args []string) error {
	// A previous run that failed never reached teardown.
	_ = teardown(cmd, args)

	config.LoadEnv(Log)

	cfg, err := config.InitializeConfigFromFile(ConfigFile)
	if err != nil {
		return err
	}
	if SettingsBackend != "" {
		cfg.Settings.Backend = SettingsBackend
	}
	if SettingsPath != "" {
		cfg.Settings.Path = SettingsPath
	}

	c, err := container.NewContainer(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize: %w", err)
	}
	AppContainer = c
	Log = c.GetLogger()
	logging.SetLogger(Log)
	return nil
}

func teardown(cmd *cobra.Command, args []string) error {
	if AppContainer == nil {
		return nil
	}
	err := AppContainer.Close()
	AppContainer = nil
	return err
}

// GetContainer returns the container built for the running command.
func GetContainer() (*container.Container, error) {
	if AppContainer == nil {
		return nil, fmt.Errorf("application container is not initialized")
	}
	return AppContainer, nil
}
