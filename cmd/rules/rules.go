// Package rules handles viewing and editing the category keyword rules
package rules

import (
	"fmt"
	"strings"

	"fjacquet/orcamento/cmd/root"
	"fjacquet/orcamento/internal/fileutils"
	"fjacquet/orcamento/internal/logging"
	"fjacquet/orcamento/internal/models"
	rulestore "fjacquet/orcamento/internal/rules"

	"github.com/spf13/cobra"
)

var (
	exportFormat string
	exportFile   string
	importFile   string
)

// Cmd represents the rules command
var Cmd = &cobra.Command{
	Use:   "rules",
	Short: "Manage the category keyword rules",
	Long: `List, export, import, edit or reset the keyword rules used to classify
transactions. Custom rules are kept in the settings store and replace the
built-in defaults until reset.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the active rules in priority order",
	Args:  cobra.NoArgs,
	RunE:  listFunc,
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the active rules as JSON or YAML",
	Args:  cobra.NoArgs,
	RunE:  exportFunc,
}

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Replace the custom rules with a JSON or YAML file",
	Args:  cobra.NoArgs,
	RunE:  importFunc,
}

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Discard the custom rules and use the defaults",
	Args:  cobra.NoArgs,
	RunE:  resetFunc,
}

var addCmd = &cobra.Command{
	Use:   "add <category> <keyword>",
	Short: "Add a keyword to a category, creating it when missing",
	Args:  cobra.ExactArgs(2),
	RunE:  addFunc,
}

var removeCmd = &cobra.Command{
	Use:   "remove <category> <keyword>",
	Short: "Remove a keyword from a category",
	Args:  cobra.ExactArgs(2),
	RunE:  removeFunc,
}

func init() {
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "json", "Export format: json or yaml")
	exportCmd.Flags().StringVarP(&exportFile, "output", "o", "", "Write to a file instead of stdout")
	importCmd.Flags().StringVar(&importFile, "file", "", "Rules file (.json, .yaml or .yml)")
	_ = importCmd.MarkFlagRequired("file")

	Cmd.AddCommand(listCmd, exportCmd, importCmd, resetCmd, addCmd, removeCmd)
}

func ruleStore() (*rulestore.RuleStore, error) {
	c, err := root.GetContainer()
	if err != nil {
		return nil, err
	}
	return c.GetRuleStore(), nil
}

func listFunc(cmd *cobra.Command, args []string) error {
	s, err := ruleStore()
	if err != nil {
		return err
	}
	source := "default"
	if s.HasCustom() {
		source = "custom"
	}
	fmt.Fprintf(cmd.OutOrStdout(), "# %s rules\n", source)
	for _, rule := range s.GetActive() {
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", rule.Name, strings.Join(rule.Keywords, ", "))
	}
	return nil
}

func exportFunc(cmd *cobra.Command, args []string) error {
	s, err := ruleStore()
	if err != nil {
		return err
	}

	var data []byte
	switch strings.ToLower(exportFormat) {
	case "json":
		data, err = s.Export(s.GetActive())
	case "yaml", "yml":
		data, err = rulestore.ExportYAML(s.GetActive())
	default:
		return fmt.Errorf("unsupported export format: %s", exportFormat)
	}
	if err != nil {
		return err
	}

	if exportFile == "" {
		_, err = fmt.Fprintln(cmd.OutOrStdout(), strings.TrimRight(string(data), "\n"))
		return err
	}
	if err := fileutils.WriteFile(exportFile, data, models.PermissionReportFile); err != nil {
		return fmt.Errorf("error writing rules file: %w", err)
	}
	root.Log.Info("Exported category rules", logging.Field{Key: logging.FieldOutput, Value: exportFile})
	return nil
}

func importFunc(cmd *cobra.Command, args []string) error {
	s, err := ruleStore()
	if err != nil {
		return err
	}
	rs, err := s.LoadFile(importFile)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(cmd.OutOrStdout(), "Imported %d categories\n", len(rs))
	return err
}

func resetFunc(cmd *cobra.Command, args []string) error {
	s, err := ruleStore()
	if err != nil {
		return err
	}
	if !s.Reset() {
		return fmt.Errorf("failed to reset category rules")
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), "Category rules reset to defaults")
	return err
}

func addFunc(cmd *cobra.Command, args []string) error {
	s, err := ruleStore()
	if err != nil {
		return err
	}
	if !s.AddKeyword(args[0], args[1]) {
		return fmt.Errorf("could not add keyword %q to %q", args[1], args[0])
	}
	_, err = fmt.Fprintf(cmd.OutOrStdout(), "Added %q to %s\n", strings.ToLower(strings.TrimSpace(args[1])), strings.TrimSpace(args[0]))
	return err
}

func removeFunc(cmd *cobra.Command, args []string) error {
	s, err := ruleStore()
	if err != nil {
		return err
	}
	if !s.RemoveKeyword(args[0], args[1]) {
		return fmt.Errorf("could not remove keyword %q from %q", args[1], args[0])
	}
	_, err = fmt.Fprintf(cmd.OutOrStdout(), "Removed %q from %s\n", args[1], args[0])
	return err
}
