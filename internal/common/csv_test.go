package common

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"fjacquet/orcamento/internal/logging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCSVRow struct {
	Date   string `csv:"date"`
	Title  string `csv:"title"`
	Amount string `csv:"amount"`
}

func TestReadCSVFile(t *testing.T) {
	csvContent := "date,title,amount\n" +
		"2024-03-01,Uber Trip,\"25,90\"\n" +
		",,\n" +
		"2024-03-02,Padaria,8.50\n"

	path := filepath.Join(t.TempDir(), "rows.csv")
	require.NoError(t, os.WriteFile(path, []byte(csvContent), 0600))

	logger := logging.NewMockLogger()
	rows, err := ReadCSVFile[testCSVRow](path, logger)
	require.NoError(t, err)
	require.Len(t, rows, 3, "empty rows are kept for the caller to filter")

	assert.Equal(t, testCSVRow{Date: "2024-03-01", Title: "Uber Trip", Amount: "25,90"}, rows[0])
	assert.Equal(t, testCSVRow{}, rows[1])
	assert.Equal(t, "Padaria", rows[2].Title)
	assert.True(t, logger.HasEntry("INFO", "Successfully read CSV data"))
}

func TestReadCSVFile_Missing(t *testing.T) {
	_, err := ReadCSVFile[testCSVRow](filepath.Join(t.TempDir(), "nope.csv"), logging.NewMockLogger())
	assert.Error(t, err)
}

func TestReadCSV_Semicolon(t *testing.T) {
	rows, err := ReadCSV[testCSVRow](bytes.NewBufferString("date;title;amount\n2024-03-01;Uber;25\n"), ';')
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Uber", rows[0].Title)
}

func TestReadCSV_HeaderOnly(t *testing.T) {
	rows, err := ReadCSV[testCSVRow](bytes.NewBufferString("date,title,amount\n"), DefaultDelimiter)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestWriteCSVFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "rows.csv")
	rows := []testCSVRow{
		{Date: "2024-03-01", Title: "Uber, Trip", Amount: "25.90"},
		{Date: "2024-03-02", Title: "Padaria", Amount: "8.50"},
	}

	require.NoError(t, WriteCSVFile(path, rows, DefaultDelimiter, logging.NewMockLogger()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "date,title,amount\n2024-03-01,\"Uber, Trip\",25.90\n2024-03-02,Padaria,8.50\n", string(data))

	back, err := ReadCSVFile[testCSVRow](path, logging.NewMockLogger())
	require.NoError(t, err)
	assert.Equal(t, rows, back)
}

func TestWriteCSVFile_Nil(t *testing.T) {
	var rows []testCSVRow
	assert.Error(t, WriteCSVFile(filepath.Join(t.TempDir(), "x.csv"), rows, DefaultDelimiter, nil))
}
