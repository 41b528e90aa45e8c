package report_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"fjacquet/orcamento/cmd/ingest"
	"fjacquet/orcamento/cmd/report"
	"fjacquet/orcamento/cmd/root"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestMain(m *testing.M) {
	root.Init()
	root.Cmd.AddCommand(report.Cmd, ingest.Cmd)
	os.Exit(m.Run())
}

// run executes the root command with a file settings store rooted at settings.
func run(t *testing.T, settings string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	resetFlags(root.Cmd)

	var out, errOut bytes.Buffer
	root.Cmd.SetOut(&out)
	root.Cmd.SetErr(&errOut)
	root.Cmd.SetArgs(append([]string{"--settings-backend", "file", "--settings-path", settings}, args...))
	err := root.Cmd.Execute()
	return out.String(), err
}

func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, sub := range cmd.Commands() {
		resetFlags(sub)
	}
}

const export = `date,title,amount
2024-03-01,Uber Trip,"R$ 25,50"
2024-03-02,iFood pedido,"45,00"
2024-03-15,Uber Eats,"30,00"
2024-04-01,Drogaria São Paulo,"R$ 80,00"
,sem data,"10,00"
`

func writeExport(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "extrato.csv")
	require.NoError(t, os.WriteFile(path, []byte(export), 0600))
	return path
}

type line struct {
	Key   string `json:"key" yaml:"key"`
	Label string `json:"label" yaml:"label"`
	Total string `json:"total" yaml:"total"`
	Count int    `json:"count" yaml:"count"`
}

func TestReportCommand_ByCategoryText(t *testing.T) {
	out, err := run(t, t.TempDir(), "report", "--input", writeExport(t))
	require.NoError(t, err)
	assert.Regexp(t, `Saúde\s+1\s+R\$ 80,00`, out)
	assert.Regexp(t, `Alimentação\s+2\s+R\$ 75,00`, out)
	assert.Regexp(t, `Transporte\s+1\s+R\$ 25,50`, out)
	assert.Regexp(t, `Total\s+R\$ 180,50`, out)
}

func TestReportCommand_IngestedFile(t *testing.T) {
	settings := t.TempDir()
	ingested := filepath.Join(t.TempDir(), "transacoes.csv")
	_, err := run(t, settings, "ingest", "--input", writeExport(t), "--output", ingested)
	require.NoError(t, err)

	// Stored categories are reported even when they no longer follow the rules.
	data, err := os.ReadFile(ingested)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(ingested, []byte(strings.Replace(string(data), ",Saúde,", ",Casa,", 1)), 0600))

	out, err := run(t, settings, "report", "--input", ingested)
	require.NoError(t, err)
	assert.Regexp(t, `Casa\s+1\s+R\$ 80,00`, out)
	assert.NotContains(t, out, "Saúde")
	assert.Regexp(t, `Total\s+R\$ 180,50`, out)
}

func TestReportCommand_ByMonthJSON(t *testing.T) {
	out, err := run(t, t.TempDir(), "report", "--input", writeExport(t), "--by", "month", "--format", "json")
	require.NoError(t, err)

	var lines []line
	require.NoError(t, json.Unmarshal([]byte(out), &lines))
	assert.Equal(t, []line{
		{Key: "2024-03", Label: "mar 2024", Total: "100.50", Count: 3},
		{Key: "2024-04", Label: "abr 2024", Total: "80.00", Count: 1},
	}, lines)
}

func TestReportCommand_YAMLToFile(t *testing.T) {
	output := filepath.Join(t.TempDir(), "report.yaml")
	out, err := run(t, t.TempDir(), "report", "--input", writeExport(t), "--format", "yaml", "--output", output)
	require.NoError(t, err)
	assert.Empty(t, out)

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	var lines []line
	require.NoError(t, yaml.Unmarshal(data, &lines))
	require.Len(t, lines, 3)
	assert.Equal(t, "Saúde", lines[0].Key)
}

func TestReportCommand_Errors(t *testing.T) {
	input := writeExport(t)

	_, err := run(t, t.TempDir(), "report", "--input", input, "--by", "week")
	assert.Error(t, err)
	_, err = run(t, t.TempDir(), "report", "--input", input, "--format", "pdf")
	assert.Error(t, err)
	_, err = run(t, t.TempDir(), "report")
	assert.Error(t, err)
}

func TestReportCommand_Metadata(t *testing.T) {
	assert.Equal(t, "report", report.Cmd.Use)
	flag := report.Cmd.Flags().Lookup("by")
	require.NotNil(t, flag)
	assert.Equal(t, report.ByCategory, flag.DefValue)
}
