// Package report handles the spending summary command
package report

import (
	"fmt"

	"fjacquet/orcamento/cmd/common"
	"fjacquet/orcamento/cmd/root"
	"fjacquet/orcamento/internal/fileutils"
	"fjacquet/orcamento/internal/logging"
	"fjacquet/orcamento/internal/models"
	engine "fjacquet/orcamento/internal/report"

	"github.com/spf13/cobra"
)

// Grouping keys accepted by --by.
const (
	ByCategory = "category"
	ByMonth    = "month"
)

var (
	inputFile  string
	groupBy    string
	format     string
	outputFile string
)

// Cmd represents the report command
var Cmd = &cobra.Command{
	Use:   "report",
	Short: "Summarize spending by category or month",
	Long: `Import and classify a bank export, then total the amounts per category or
per month. The report is rendered as text, JSON or YAML.`,
	Args: cobra.NoArgs,
	RunE: reportFunc,
}

func init() {
	Cmd.Flags().StringVarP(&inputFile, "input", "i", "", "Input bank export CSV")
	Cmd.Flags().StringVarP(&groupBy, "by", "b", ByCategory, "Group by category or month")
	Cmd.Flags().StringVarP(&format, "format", "f", engine.FormatText, "Output format: text, json or yaml")
	Cmd.Flags().StringVarP(&outputFile, "output", "o", "", "Write the report to a file instead of stdout")
	_ = Cmd.MarkFlagRequired("input")
}

func reportFunc(cmd *cobra.Command, args []string) error {
	c, err := root.GetContainer()
	if err != nil {
		return err
	}

	var groupFn func([]models.Transaction) []engine.Group
	switch groupBy {
	case ByCategory:
		groupFn = engine.GroupByCategory
	case ByMonth:
		groupFn = engine.GroupByMonth
	default:
		return fmt.Errorf("unsupported grouping: %s", groupBy)
	}

	txs, err := common.LoadTransactions(c, inputFile)
	if err != nil {
		return err
	}

	data, err := c.GetReportGenerator().GenerateReport(groupFn(txs), format)
	if err != nil {
		return err
	}

	if outputFile == "" {
		_, err = cmd.OutOrStdout().Write(data)
		return err
	}
	if err := fileutils.WriteFile(outputFile, data, models.PermissionReportFile); err != nil {
		return fmt.Errorf("error writing report: %w", err)
	}
	root.Log.Info("Report written", logging.Field{Key: logging.FieldOutput, Value: outputFile})
	return nil
}
