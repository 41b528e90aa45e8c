// Package suggest handles search suggestions and history commands
package suggest

import (
	"fmt"

	"fjacquet/orcamento/cmd/common"
	"fjacquet/orcamento/cmd/root"
	engine "fjacquet/orcamento/internal/suggest"

	"github.com/spf13/cobra"
)

var query string

// Cmd represents the suggest command
var Cmd = &cobra.Command{
	Use:   "suggest",
	Short: "Suggest search terms from the history and common merchants",
	Long: `Suggest up to 8 search terms for a partial query. Recent searches come
first, followed by common merchant and category terms. Queries shorter than
two characters get no suggestions.`,
	Args: cobra.NoArgs,
	RunE: suggestFunc,
}

var patternsCmd = &cobra.Command{
	Use:   "patterns",
	Short: "Summarize the recent search history as JSON",
	Args:  cobra.NoArgs,
	RunE:  patternsFunc,
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent searches, newest first",
	Args:  cobra.NoArgs,
	RunE:  historyFunc,
}

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Forget all recent searches",
	Args:  cobra.NoArgs,
	RunE:  clearFunc,
}

func init() {
	Cmd.Flags().StringVarP(&query, "query", "q", "", "Partial search query")
	historyCmd.AddCommand(clearCmd)
	Cmd.AddCommand(patternsCmd, historyCmd)
}

func suggestFunc(cmd *cobra.Command, args []string) error {
	c, err := root.GetContainer()
	if err != nil {
		return err
	}
	for _, s := range engine.Suggest(query, c.GetHistory().Load()) {
		if _, err := fmt.Fprintln(cmd.OutOrStdout(), s); err != nil {
			return err
		}
	}
	return nil
}

func patternsFunc(cmd *cobra.Command, args []string) error {
	c, err := root.GetContainer()
	if err != nil {
		return err
	}
	return common.PrintJSON(cmd.OutOrStdout(), engine.AnalyzePatterns(c.GetHistory().Load()))
}

func historyFunc(cmd *cobra.Command, args []string) error {
	c, err := root.GetContainer()
	if err != nil {
		return err
	}
	for _, e := range c.GetHistory().Load() {
		fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", e.Timestamp.Format("2006-01-02 15:04"), e.Term)
	}
	return nil
}

func clearFunc(cmd *cobra.Command, args []string) error {
	c, err := root.GetContainer()
	if err != nil {
		return err
	}
	if err := c.GetHistory().Clear(); err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), "Search history cleared")
	return err
}
