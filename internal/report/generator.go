package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"fjacquet/orcamento/internal/currencyutils"
	"fjacquet/orcamento/internal/logging"

	"gopkg.in/yaml.v3"
)

// Supported output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// line is the rendered form of a Group.
type line struct {
	Key   string `json:"key" yaml:"key"`
	Label string `json:"label" yaml:"label"`
	Total string `json:"total" yaml:"total"`
	Count int    `json:"count" yaml:"count"`
}

// ReportGenerator renders grouped totals.
type ReportGenerator struct {
	logger logging.Logger
}

// NewReportGenerator creates a new instance of ReportGenerator.
func NewReportGenerator(logger logging.Logger) *ReportGenerator {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &ReportGenerator{logger: logger.WithField(logging.FieldComponent, "ReportGenerator")}
}

// GenerateReport renders groups in format (text, json or yaml).
func (g *ReportGenerator) GenerateReport(groups []Group, format string) ([]byte, error) {
	lines := make([]line, len(groups))
	for i, grp := range groups {
		lines[i] = line{Key: grp.Key, Label: grp.Label, Total: grp.Total.StringFixed(2), Count: grp.Count}
	}

	switch format {
	case FormatText, "":
		return g.generateTextReport(groups)
	case FormatJSON:
		data, err := json.MarshalIndent(lines, "", "  ")
		if err != nil {
			g.logger.WithError(err).Error("Failed to marshal JSON report")
			return nil, fmt.Errorf("failed to marshal JSON report: %w", err)
		}
		return data, nil
	case FormatYAML:
		data, err := yaml.Marshal(lines)
		if err != nil {
			g.logger.WithError(err).Error("Failed to marshal YAML report")
			return nil, fmt.Errorf("failed to marshal YAML report: %w", err)
		}
		return data, nil
	default:
		return nil, fmt.Errorf("unsupported report format: %s", format)
	}
}

func (g *ReportGenerator) generateTextReport(groups []Group) ([]byte, error) {
	var buf bytes.Buffer
	w := tabwriter.NewWriter(&buf, 0, 0, 2, ' ', tabwriter.AlignRight)
	for _, grp := range groups {
		fmt.Fprintf(w, "%s\t%d\t%s\t\n", grp.Label, grp.Count, currencyutils.FormatBRL(grp.Total))
	}
	fmt.Fprintf(w, "Total\t\t%s\t\n", currencyutils.FormatBRL(Total(groups)))
	if err := w.Flush(); err != nil {
		return nil, fmt.Errorf("failed to render text report: %w", err)
	}
	return buf.Bytes(), nil
}
