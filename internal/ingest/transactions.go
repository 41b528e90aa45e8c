package ingest

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"fjacquet/orcamento/internal/common"
	"fjacquet/orcamento/internal/logging"
	"fjacquet/orcamento/internal/models"
	"fjacquet/orcamento/internal/parsererror"

	"github.com/shopspring/decimal"
)

// transactionRecord is the CSV layout of a categorized transaction.
type transactionRecord struct {
	ID          string `csv:"id"`
	Date        string `csv:"date"`
	Description string `csv:"description"`
	Category    string `csv:"category"`
	Amount      string `csv:"amount"`
}

// IsTransactionFile reports whether the header of path names the columns
// written by WriteTransactions. Bank exports carry a title column instead.
func (im *Importer) IsTransactionFile(path string) (bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return false, fmt.Errorf("error opening file %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			im.logger.WithError(cerr).Warn("Failed to close file")
		}
	}()

	r := csv.NewReader(f)
	r.Comma = im.opts.Delimiter
	r.FieldsPerRecord = -1
	header, err := r.Read()
	if errors.Is(err, io.EOF) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("error reading header of %s: %w", path, err)
	}

	columns := make(map[string]bool, len(header))
	for _, h := range header {
		columns[strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))] = true
	}
	return columns["description"] && columns["category"] && !columns["title"], nil
}

// ReadTransactions reads a categorized transaction file written by
// WriteTransactions. Categories are taken as stored.
func (im *Importer) ReadTransactions(path string) ([]models.Transaction, error) {
	if err := ValidateFile(path); err != nil {
		return nil, err
	}
	records, err := common.ReadCSVFileWithDelimiter[transactionRecord](path, im.opts.Delimiter, im.logger)
	if err != nil {
		return nil, err
	}

	txs := make([]models.Transaction, 0, len(records))
	for i, rec := range records {
		tx, err := im.fromRecord(rec)
		if err != nil {
			im.logger.WithError(err).Warn("Skipping transaction", logging.Field{Key: logging.FieldRow, Value: i + 1})
			continue
		}
		txs = append(txs, tx)
	}
	return txs, nil
}

func (im *Importer) fromRecord(rec transactionRecord) (models.Transaction, error) {
	date, err := time.Parse(im.opts.DateLayout, rec.Date)
	if err != nil {
		return models.Transaction{}, &parsererror.ParseError{Source: "transaction", Field: "date", Value: rec.Date, Err: err}
	}
	amount, err := decimal.NewFromString(rec.Amount)
	if err != nil {
		return models.Transaction{}, &parsererror.ParseError{Source: "transaction", Field: "amount", Value: rec.Amount, Err: err}
	}
	return models.Transaction{
		ID:          rec.ID,
		Date:        date,
		Description: rec.Description,
		Category:    rec.Category,
		Amount:      amount,
	}, nil
}

// WriteTransactions writes txs as CSV with amounts fixed to two decimals.
func (im *Importer) WriteTransactions(path string, txs []models.Transaction) error {
	records := make([]transactionRecord, len(txs))
	for i, tx := range txs {
		records[i] = transactionRecord{
			ID:          tx.ID,
			Date:        tx.Date.Format(im.opts.DateLayout),
			Description: tx.Description,
			Category:    tx.Category,
			Amount:      tx.Amount.StringFixed(2),
		}
	}
	return common.WriteCSVFile(path, records, im.opts.Delimiter, im.logger)
}
