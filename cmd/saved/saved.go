// Package saved handles the named saved searches
package saved

import (
	"fmt"
	"text/tabwriter"

	"fjacquet/orcamento/cmd/common"
	"fjacquet/orcamento/cmd/root"
	searchcmd "fjacquet/orcamento/cmd/search"

	"github.com/spf13/cobra"
)

var (
	flags     common.SearchFlags
	name      string
	inputFile string
	noRank    bool
)

// Cmd represents the saved command
var Cmd = &cobra.Command{
	Use:   "saved",
	Short: "Manage saved searches",
	Long:  `Save a search under a name, list, delete or run saved searches.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved searches",
	Args:  cobra.NoArgs,
	RunE:  listFunc,
}

var saveCmd = &cobra.Command{
	Use:   "save",
	Short: "Save a search under a name",
	Args:  cobra.NoArgs,
	RunE:  saveFunc,
}

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a saved search",
	Args:  cobra.ExactArgs(1),
	RunE:  deleteFunc,
}

var runCmd = &cobra.Command{
	Use:   "run <id>",
	Short: "Run a saved search against a bank export",
	Args:  cobra.ExactArgs(1),
	RunE:  runFunc,
}

func init() {
	flags.Bind(saveCmd)
	saveCmd.Flags().StringVarP(&name, "name", "n", "", "Name of the saved search")

	runCmd.Flags().StringVarP(&inputFile, "input", "i", "", "Input bank export CSV")
	runCmd.Flags().BoolVar(&noRank, "no-rank", false, "Keep input order instead of ranking by relevance")
	_ = runCmd.MarkFlagRequired("input")

	Cmd.AddCommand(listCmd, saveCmd, deleteCmd, runCmd)
}

func listFunc(cmd *cobra.Command, args []string) error {
	c, err := root.GetContainer()
	if err != nil {
		return err
	}
	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tTERM\tMODE")
	for _, s := range c.GetSavedSearches().List() {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", s.ID, s.Name, s.Term, s.Config().Mode)
	}
	return tw.Flush()
}

func saveFunc(cmd *cobra.Command, args []string) error {
	c, err := root.GetContainer()
	if err != nil {
		return err
	}
	s, err := c.GetSavedSearches().Save(name, flags.Term, flags.Filters())
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(cmd.OutOrStdout(), "Saved search %q as %s\n", s.Name, s.ID)
	return err
}

func deleteFunc(cmd *cobra.Command, args []string) error {
	c, err := root.GetContainer()
	if err != nil {
		return err
	}
	ok, err := c.GetSavedSearches().Delete(args[0])
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("saved search %s not found", args[0])
	}
	_, err = fmt.Fprintf(cmd.OutOrStdout(), "Deleted saved search %s\n", args[0])
	return err
}

func runFunc(cmd *cobra.Command, args []string) error {
	c, err := root.GetContainer()
	if err != nil {
		return err
	}
	s, ok := c.GetSavedSearches().Get(args[0])
	if !ok {
		return fmt.Errorf("saved search %s not found", args[0])
	}

	txs, err := common.LoadTransactions(c, inputFile)
	if err != nil {
		return err
	}
	cfg := s.Config()
	return searchcmd.Print(cmd.OutOrStdout(), searchcmd.Run(txs, cfg, !noRank), cfg, false)
}
