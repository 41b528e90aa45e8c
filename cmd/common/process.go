// Package common contains shared functionality for command handlers
package common

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"fjacquet/orcamento/internal/container"
	"fjacquet/orcamento/internal/ingest"
	"fjacquet/orcamento/internal/logging"
	"fjacquet/orcamento/internal/models"

	"github.com/spf13/cobra"
)

// SearchFlags holds the flags shared by the commands that run a search.
type SearchFlags struct {
	Term          string
	Mode          string
	CaseSensitive bool
	Categories    string
	Min           string
	Max           string
	Include       string
	Exclude       string
}

// Bind registers the search flags on cmd.
func (f *SearchFlags) Bind(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.Term, "term", "t", "", "Search term")
	cmd.Flags().StringVarP(&f.Mode, "mode", "m", string(models.SearchModeContains), "Search mode: contains, exact, starts, ends, regex or fuzzy")
	cmd.Flags().BoolVar(&f.CaseSensitive, "case-sensitive", false, "Compare case and accents exactly")
	cmd.Flags().StringVarP(&f.Categories, "category", "c", "", "Comma-separated categories to keep")
	cmd.Flags().StringVar(&f.Min, "min", "", "Minimum amount")
	cmd.Flags().StringVar(&f.Max, "max", "", "Maximum amount")
	cmd.Flags().StringVar(&f.Include, "include", "", "Comma-separated terms that must all appear")
	cmd.Flags().StringVar(&f.Exclude, "exclude", "", "Comma-separated terms that must not appear")
}

// Filters converts the flags into structured filters.
func (f *SearchFlags) Filters() models.StructuredFilters {
	return models.StructuredFilters{
		Categories:    SplitList(f.Categories),
		AmountMin:     f.Min,
		AmountMax:     f.Max,
		IncludeTerms:  f.Include,
		ExcludeTerms:  f.Exclude,
		SearchMode:    models.ParseSearchMode(f.Mode),
		CaseSensitive: f.CaseSensitive,
	}
}

// Config converts the flags into a search config.
func (f *SearchFlags) Config() models.SearchConfig {
	return models.NewSearchConfig(f.Term, f.Filters())
}

// SplitList splits a comma-separated flag value, dropping blank items.
func SplitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// LoadTransactions reads the transactions in path. A categorized file
// written by ingest is read as stored; a bank export is imported and
// classified with the active rules.
func LoadTransactions(c *container.Container, path string) ([]models.Transaction, error) {
	if path == "" {
		return nil, fmt.Errorf("an input file is required")
	}
	if err := ingest.ValidateFile(path); err != nil {
		return nil, err
	}

	importer := c.GetImporter()
	categorized, err := importer.IsTransactionFile(path)
	if err != nil {
		return nil, err
	}

	var txs []models.Transaction
	if categorized {
		txs, err = importer.ReadTransactions(path)
	} else {
		txs, err = ImportExport(c, path)
	}
	if err != nil {
		return nil, err
	}
	c.GetLogger().Debug("Transactions loaded",
		logging.Field{Key: logging.FieldInputFile, Value: path},
		logging.Field{Key: "categorized", Value: categorized},
		logging.Field{Key: logging.FieldCount, Value: len(txs)})
	return txs, nil
}

// ImportExport imports a bank export and classifies it with the active rules.
func ImportExport(c *container.Container, path string) ([]models.Transaction, error) {
	txs, err := c.GetImporter().ImportFile(path)
	if err != nil {
		return nil, err
	}
	return c.GetCategorizer().CategorizeTransactions(txs, path)
}

// PrintJSON writes v as indented JSON followed by a newline.
func PrintJSON(w io.Writer, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}
