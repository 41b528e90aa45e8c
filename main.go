package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"fjacquet/orcamento/cmd/classify"
	"fjacquet/orcamento/cmd/ingest"
	"fjacquet/orcamento/cmd/report"
	"fjacquet/orcamento/cmd/root"
	"fjacquet/orcamento/cmd/rules"
	"fjacquet/orcamento/cmd/saved"
	"fjacquet/orcamento/cmd/search"
	"fjacquet/orcamento/cmd/suggest"
	"fjacquet/orcamento/internal/config"
	"fjacquet/orcamento/internal/logging"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func init() {
	// Environment first, without logging.
	loadEnvSilently()

	// The level applies to every logger created from here on.
	logging.SetAllLogLevels(logLevelFromEnv())

	root.Init()

	root.Cmd.AddCommand(classify.Cmd)
	root.Cmd.AddCommand(ingest.Cmd)
	root.Cmd.AddCommand(search.Cmd)
	root.Cmd.AddCommand(rules.Cmd)
	root.Cmd.AddCommand(suggest.Cmd)
	root.Cmd.AddCommand(saved.Cmd)
	root.Cmd.AddCommand(report.Cmd)
}

// loadEnvSilently loads a .env file from the current or parent directory
// without logging anything
func loadEnvSilently() {
	envFile := ".env"
	if _, err := os.Stat(envFile); os.IsNotExist(err) {
		envFile = filepath.Join("..", ".env")
		if _, err := os.Stat(envFile); os.IsNotExist(err) {
			return
		}
	}
	_ = godotenv.Load(envFile)
}

// logLevelFromEnv reads ORCAMENTO_LOG_LEVEL, defaulting to info
func logLevelFromEnv() logrus.Level {
	level, err := logrus.ParseLevel(strings.ToLower(os.Getenv(config.EnvPrefix + "_LOG_LEVEL")))
	if err != nil {
		return logrus.InfoLevel
	}
	return level
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
