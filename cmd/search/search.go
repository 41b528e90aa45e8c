// Package search handles the transaction search command
package search

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"fjacquet/orcamento/cmd/common"
	"fjacquet/orcamento/cmd/root"
	"fjacquet/orcamento/internal/currencyutils"
	"fjacquet/orcamento/internal/logging"
	"fjacquet/orcamento/internal/models"
	engine "fjacquet/orcamento/internal/search"
	"fjacquet/orcamento/internal/suggest"

	"github.com/spf13/cobra"
)

// Markers placed around highlighted matches in text output.
const (
	HighlightOpen  = "["
	HighlightClose = "]"
)

var (
	flags      common.SearchFlags
	inputFile  string
	noRank     bool
	highlight  bool
	jsonOutput bool
	noHistory  bool
)

// Cmd represents the search command
var Cmd = &cobra.Command{
	Use:   "search",
	Short: "Search categorized transactions",
	Long: `Search the transactions of a bank export by description or category.
Results are filtered by the term, mode, categories, amount range and
include/exclude terms, then ranked by relevance. Searches with a term are
added to the recent search history.`,
	RunE: searchFunc,
}

func init() {
	flags.Bind(Cmd)
	Cmd.Flags().StringVarP(&inputFile, "input", "i", "", "Input bank export CSV")
	Cmd.Flags().BoolVar(&noRank, "no-rank", false, "Keep input order instead of ranking by relevance")
	Cmd.Flags().BoolVar(&highlight, "highlight", false, "Mark matches of the term in descriptions")
	Cmd.Flags().BoolVar(&jsonOutput, "json", false, "Print results as JSON")
	Cmd.Flags().BoolVar(&noHistory, "no-history", false, "Do not record the search in the history")
	_ = Cmd.MarkFlagRequired("input")
}

func searchFunc(cmd *cobra.Command, args []string) error {
	c, err := root.GetContainer()
	if err != nil {
		return err
	}

	txs, err := common.LoadTransactions(c, inputFile)
	if err != nil {
		return err
	}

	cfg := flags.Config()
	results := Run(txs, cfg, !noRank)

	if !noHistory {
		if _, err := c.GetHistory().Add(cfg.Term, cfg.Filters); err != nil {
			root.Log.WithError(err).Warn("Failed to record search history")
		}
	}

	root.Log.Info("Search completed",
		logging.Field{Key: logging.FieldTerm, Value: cfg.Term},
		logging.Field{Key: logging.FieldMode, Value: string(cfg.Mode)},
		logging.Field{Key: logging.FieldCount, Value: len(results)})

	if jsonOutput {
		return common.PrintJSON(cmd.OutOrStdout(), results)
	}
	if err := Print(cmd.OutOrStdout(), results, cfg, highlight); err != nil {
		return err
	}
	if len(results) == 0 && cfg.Term != "" {
		if alts := suggest.SoundsLike(cfg.Term, txs); len(alts) > 0 {
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Did you mean: %s\n", strings.Join(alts, ", "))
		}
	}
	return err
}

// Run filters txs with cfg and, when rank is set, orders them by relevance.
func Run(txs []models.Transaction, cfg models.SearchConfig, rank bool) []engine.Result {
	if rank {
		return engine.Search(txs, cfg)
	}
	filtered := engine.Filter(txs, cfg)
	results := make([]engine.Result, len(filtered))
	for i, tx := range filtered {
		results[i] = engine.Result{Transaction: tx}
	}
	return results
}

// Print writes results as an aligned table.
func Print(w io.Writer, results []engine.Result, cfg models.SearchConfig, mark bool) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "DATE\tCATEGORY\tAMOUNT\tDESCRIPTION")
	for _, r := range results {
		desc := r.Transaction.Description
		if mark && cfg.Mode != models.SearchModeRegex && cfg.Mode != models.SearchModeFuzzy {
			desc = engine.Highlight(desc, cfg.Term, cfg.CaseSensitive, HighlightOpen, HighlightClose)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
			r.Transaction.Date.Format("2006-01-02"),
			r.Transaction.Category,
			currencyutils.FormatBRL(r.Transaction.Amount),
			desc)
	}
	fmt.Fprintf(tw, "\n%d result(s)\n", len(results))
	return tw.Flush()
}
