// Package common provides the CSV plumbing shared by the ingestion and
// reporting commands.
package common

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"fjacquet/orcamento/internal/fileutils"
	"fjacquet/orcamento/internal/logging"
	"fjacquet/orcamento/internal/models"

	"github.com/gocarina/gocsv"
)

// DefaultDelimiter is the field separator used when none is configured.
const DefaultDelimiter = ','

// ReadCSVFile reads a CSV file with a header row into a slice of structs
// using gocsv. TCSVRow is the struct type that maps to the CSV columns.
func ReadCSVFile[TCSVRow any](filePath string, logger logging.Logger) ([]TCSVRow, error) {
	return ReadCSVFileWithDelimiter[TCSVRow](filePath, DefaultDelimiter, logger)
}

// ReadCSVFileWithDelimiter is ReadCSVFile for files separated by delimiter.
func ReadCSVFileWithDelimiter[TCSVRow any](filePath string, delimiter rune, logger logging.Logger) ([]TCSVRow, error) {
	if logger == nil {
		logger = logging.GetLogger()
	}
	logger.Info("Reading CSV file", logging.Field{Key: logging.FieldInputFile, Value: filePath})

	file, err := os.Open(filePath)
	if err != nil {
		logger.WithError(err).Error("Failed to open CSV file")
		return nil, fmt.Errorf("error opening CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			logger.WithError(err).Warn("Failed to close file")
		}
	}()

	rows, err := ReadCSV[TCSVRow](file, delimiter)
	if err != nil {
		logger.WithError(err).Error("Failed to parse CSV file")
		return nil, err
	}

	logger.Info("Successfully read CSV data", logging.Field{Key: logging.FieldCount, Value: len(rows)})
	return rows, nil
}

// ReadCSV decodes CSV with a header row from r.
func ReadCSV[TCSVRow any](r io.Reader, delimiter rune) ([]TCSVRow, error) {
	reader := csv.NewReader(r)
	reader.Comma = delimiter
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	var rows []TCSVRow
	if err := gocsv.UnmarshalCSV(reader, &rows); err != nil {
		return nil, fmt.Errorf("error parsing CSV data: %w", err)
	}
	if rows == nil {
		rows = []TCSVRow{}
	}
	return rows, nil
}

// WriteCSVFile writes rows with a header to filePath, creating the parent
// directory if needed.
func WriteCSVFile[TCSVRow any](filePath string, rows []TCSVRow, delimiter rune, logger logging.Logger) error {
	if rows == nil {
		return fmt.Errorf("cannot write nil rows to CSV")
	}
	if logger == nil {
		logger = logging.GetLogger()
	}

	logger.Info("Writing CSV file",
		logging.Field{Key: logging.FieldOutput, Value: filePath},
		logging.Field{Key: logging.FieldCount, Value: len(rows)})

	if err := fileutils.EnsureDirectoryExists(filepath.Dir(filePath)); err != nil {
		logger.WithError(err).Error("Failed to create directory")
		return fmt.Errorf("error creating directory: %w", err)
	}

	file, err := os.OpenFile(filePath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, models.PermissionReportFile)
	if err != nil {
		logger.WithError(err).Error("Failed to create CSV file")
		return fmt.Errorf("error creating CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			logger.WithError(err).Warn("Failed to close file")
		}
	}()

	if err := WriteCSV(file, rows, delimiter); err != nil {
		logger.WithError(err).Error("Failed to marshal rows to CSV")
		return err
	}
	return nil
}

// WriteCSV encodes rows with a header to w.
func WriteCSV[TCSVRow any](w io.Writer, rows []TCSVRow, delimiter rune) error {
	csvWriter := csv.NewWriter(w)
	csvWriter.Comma = delimiter

	if err := gocsv.MarshalCSV(rows, gocsv.NewSafeCSVWriter(csvWriter)); err != nil {
		return fmt.Errorf("error writing CSV data: %w", err)
	}
	return nil
}
