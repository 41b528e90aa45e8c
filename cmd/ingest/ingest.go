// Package ingest handles importing bank export files
package ingest

import (
	"fmt"
	"os"
	"path/filepath"

	"fjacquet/orcamento/cmd/common"
	"fjacquet/orcamento/cmd/root"
	"fjacquet/orcamento/internal/batch"
	"fjacquet/orcamento/internal/container"
	"fjacquet/orcamento/internal/logging"
	"fjacquet/orcamento/internal/models"

	"github.com/spf13/cobra"
)

var (
	inputPath  string
	outputPath string
)

// Cmd represents the ingest command
var Cmd = &cobra.Command{
	Use:   "ingest",
	Short: "Import and categorize bank export CSV files",
	Long: `Import a bank export CSV (date,title,amount) or every CSV in a directory,
classify each transaction with the active rules and write the categorized
transactions to a CSV file.`,
	RunE: ingestFunc,
}

func init() {
	Cmd.Flags().StringVarP(&inputPath, "input", "i", "", "Input CSV file or directory")
	Cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output CSV file (default: transacoes_<start>_<end>.csv beside the input)")
	_ = Cmd.MarkFlagRequired("input")
}

func ingestFunc(cmd *cobra.Command, args []string) error {
	c, err := root.GetContainer()
	if err != nil {
		return err
	}

	txs, err := load(c, inputPath)
	if err != nil {
		return err
	}

	out := outputPath
	if out == "" {
		out = defaultOutput(inputPath, txs)
	}
	if err := c.GetImporter().WriteTransactions(out, txs); err != nil {
		return err
	}

	root.Log.Info("Ingest completed",
		logging.Field{Key: logging.FieldInputFile, Value: inputPath},
		logging.Field{Key: logging.FieldOutput, Value: out},
		logging.Field{Key: logging.FieldCount, Value: len(txs)})
	_, err = fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d transactions to %s\n", len(txs), out)
	return err
}

func load(c *container.Container, path string) ([]models.Transaction, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("error reading input: %w", err)
	}
	if !info.IsDir() {
		return common.LoadTransactions(c, path)
	}

	agg := batch.NewAggregator(c.GetLogger())
	files, err := agg.ListFiles(path)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no CSV files found in %s", path)
	}
	return agg.Aggregate(files, func(file string) ([]models.Transaction, error) {
		return common.LoadTransactions(c, file)
	})
}

func defaultOutput(input string, txs []models.Transaction) string {
	dir := filepath.Dir(filepath.Clean(input))
	return filepath.Join(dir, batch.OutputFilename("transacoes", batch.DateRangeOf(txs)))
}
