// Package classify handles the single-title categorization command
package classify

import (
	"fmt"
	"strings"

	"fjacquet/orcamento/cmd/root"
	"fjacquet/orcamento/internal/logging"

	"github.com/spf13/cobra"
)

var title string

// Cmd represents the classify command
var Cmd = &cobra.Command{
	Use:   "classify",
	Short: "Classify a transaction title into a budget category",
	Long: `Classify a transaction title with the active keyword rules. The first
category with a keyword contained in the title wins; titles matching nothing
are classified as "Outros".`,
	RunE: classifyFunc,
}

func init() {
	Cmd.Flags().StringVarP(&title, "title", "t", "", "Transaction title to classify")
	_ = Cmd.MarkFlagRequired("title")
}

func classifyFunc(cmd *cobra.Command, args []string) error {
	c, err := root.GetContainer()
	if err != nil {
		return err
	}

	category, err := c.GetCategorizer().CategorizeTitle(title)
	if err != nil {
		return err
	}
	root.Log.Debug("Classified title",
		logging.Field{Key: "title", Value: strings.TrimSpace(title)},
		logging.Field{Key: logging.FieldCategory, Value: category})

	_, err = fmt.Fprintln(cmd.OutOrStdout(), category)
	return err
}
