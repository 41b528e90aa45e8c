package ingest

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"fjacquet/orcamento/internal/categorizer"
	"fjacquet/orcamento/internal/logging"
	"fjacquet/orcamento/internal/models"
	"fjacquet/orcamento/internal/parsererror"
	"fjacquet/orcamento/internal/rules"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestImporter() *Importer {
	ruleSet := rules.DefaultRules()
	return NewImporter(func(title string) string {
		return categorizer.Classify(title, ruleSet)
	}, Options{}, logging.NewMockLogger())
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		input    string
		expected string
		wantErr  bool
	}{
		{input: "25.90", expected: "25.9"},
		{input: "R$ 25,90", expected: "25.9"},
		{input: "-40", expected: "40"},
		{input: " R$-1234,5 ", expected: "1234.5"},
		{input: "1.234,56", wantErr: true},
		{input: "abc", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseAmount(tt.input)
			if tt.wantErr {
				var parseErr *parsererror.ParseError
				assert.True(t, errors.As(err, &parseErr))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got.String())
		})
	}
}

func TestImporter_Process(t *testing.T) {
	im := newTestImporter()
	rows := []Row{
		{Date: "2024-03-01", Title: "IFOOD RESTAURANTE SP", Amount: "-45,90"},
		{Date: "", Title: "no date", Amount: "10"},
		{Date: "2024-03-02", Title: "no amount", Amount: ""},
		{Date: "ontem", Title: "bad date", Amount: "10"},
		{Date: "2024-03-03", Title: "bad amount", Amount: "dez"},
		{Date: "2024-03-04", Title: "", Amount: "12"},
		{Date: "2024-03-05", Title: "Uber Trip", Amount: "25"},
	}

	txs := im.Process(rows)
	require.Len(t, txs, 3)

	assert.Equal(t, "IFOOD RESTAURANTE SP", txs[0].Description)
	assert.Equal(t, models.CategoryFood, txs[0].Category)
	assert.True(t, txs[0].Amount.Equal(decimal.RequireFromString("45.90")))
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), txs[0].Date)
	assert.NotEmpty(t, txs[0].ID)
	assert.NotEqual(t, txs[0].ID, txs[2].ID)

	assert.Equal(t, DefaultDescription, txs[1].Description)
	assert.Equal(t, models.CategoryOther, txs[1].Category)

	assert.Equal(t, models.CategoryTransport, txs[2].Category)
}

func TestImporter_DayFirstDates(t *testing.T) {
	im := newTestImporter()
	txs := im.Process([]Row{{Date: "05/03/2024", Title: "Padaria", Amount: "7,50"}})
	require.Len(t, txs, 1)
	assert.Equal(t, time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), txs[0].Date)
}

func TestImporter_NoClassifier(t *testing.T) {
	im := NewImporter(nil, Options{DateLayout: "02/01/2006", DefaultDescription: "?"}, nil)
	txs := im.Process([]Row{{Date: "01/03/2024", Title: "", Amount: "1"}})
	require.Len(t, txs, 1)
	assert.Equal(t, "?", txs[0].Description)
	assert.Equal(t, models.CategoryOther, txs[0].Category)
}

func TestImporter_ImportAndRoundTrip(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "nubank.csv")
	require.NoError(t, os.WriteFile(input, []byte(strings.Join([]string{
		"date,title,amount",
		"2024-03-01,POSTO SHELL,\"R$ 150,00\"",
		"2024-03-02,Netflix.com,39.90",
		",,",
	}, "\n")), 0600))

	im := newTestImporter()
	txs, err := im.ImportFile(input)
	require.NoError(t, err)
	require.Len(t, txs, 2)
	assert.Equal(t, models.CategoryTransport, txs[0].Category)
	assert.Equal(t, models.CategoryLeisure, txs[1].Category)

	output := filepath.Join(dir, "out", "transactions.csv")
	require.NoError(t, im.WriteTransactions(output, txs))

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "id,date,description,category,amount\n"))
	assert.Contains(t, string(data), ",2024-03-01,POSTO SHELL,Transporte,150.00\n")

	back, err := im.ReadTransactions(output)
	require.NoError(t, err)
	require.Len(t, back, 2)
	for i := range txs {
		assert.Equal(t, txs[i].ID, back[i].ID)
		assert.Equal(t, txs[i].Description, back[i].Description)
		assert.Equal(t, txs[i].Category, back[i].Category)
		assert.True(t, txs[i].Date.Equal(back[i].Date))
		assert.True(t, txs[i].Amount.Equal(back[i].Amount))
	}
}

func TestImporter_ReadTransactionsSkipsBadRecords(t *testing.T) {
	path := filepath.Join(t.TempDir(), "transactions.csv")
	require.NoError(t, os.WriteFile(path, []byte("id,date,description,category,amount\n"+
		"1,2024-03-01,Uber,Transporte,25.00\n"+
		"2,not-a-date,Uber,Transporte,25.00\n"+
		"3,2024-03-01,Uber,Transporte,x\n"), 0600))

	logger := logging.NewMockLogger()
	im := NewImporter(nil, Options{}, logger)
	txs, err := im.ReadTransactions(path)
	require.NoError(t, err)
	require.Len(t, txs, 1)
	assert.Equal(t, "1", txs[0].ID)
	assert.Len(t, logger.GetEntriesByLevel("WARN"), 2)
}

func TestValidateFile(t *testing.T) {
	dir := t.TempDir()

	good := filepath.Join(dir, "ok.csv")
	require.NoError(t, os.WriteFile(good, []byte("date,title,amount\n"), 0600))
	assert.NoError(t, ValidateFile(good))

	wrongExt := filepath.Join(dir, "ok.txt")
	require.NoError(t, os.WriteFile(wrongExt, []byte("x"), 0600))
	var formatErr *parsererror.InvalidFormatError
	assert.True(t, errors.As(ValidateFile(wrongExt), &formatErr))

	big := filepath.Join(dir, "big.csv")
	require.NoError(t, os.WriteFile(big, make([]byte, MaxFileSize+1), 0600))
	assert.True(t, errors.As(ValidateFile(big), &formatErr))

	assert.Error(t, ValidateFile(filepath.Join(dir, "missing.csv")))
}

func TestImporter_IsTransactionFile(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name     string
		content  string
		expected bool
	}{
		{name: "categorized", content: "id,date,description,category,amount\n1,2024-03-01,Uber,Transporte,25.00\n", expected: true},
		{name: "byte order mark", content: "\ufeffid,date,description,category,amount\n", expected: true},
		{name: "bank export", content: "date,title,amount\n2024-03-01,Uber,\"25,50\"\n", expected: false},
		{name: "empty", content: "", expected: false},
	}

	im := NewImporter(nil, Options{}, logging.NewMockLogger())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, strings.ReplaceAll(tt.name, " ", "_")+".csv")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0600))
			got, err := im.IsTransactionFile(path)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}

	_, err := im.IsTransactionFile(filepath.Join(dir, "missing.csv"))
	assert.Error(t, err)
}
