// Package ingest turns exported bank rows ({date, title, amount}) into
// categorized transactions and reads and writes transaction CSV files.
package ingest

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"fjacquet/orcamento/internal/common"
	"fjacquet/orcamento/internal/dateutils"
	"fjacquet/orcamento/internal/logging"
	"fjacquet/orcamento/internal/models"
	"fjacquet/orcamento/internal/parsererror"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	// DefaultDateLayout is the layout of the date column.
	DefaultDateLayout = "2006-01-02"
	// DefaultDescription replaces a missing title.
	DefaultDescription = "Sem descrição"
	// MaxFileSize is the largest input file accepted.
	MaxFileSize = 5 * 1024 * 1024
)

// Row is one line of a bank export.
type Row struct {
	Date   string `csv:"date"`
	Title  string `csv:"title"`
	Amount string `csv:"amount"`
}

// ClassifyFunc returns the category for a title.
type ClassifyFunc func(title string) string

// Options control how rows become transactions.
type Options struct {
	DateLayout         string
	DefaultDescription string
	Delimiter          rune
}

// DefaultOptions returns the options for the Nubank export layout.
func DefaultOptions() Options {
	return Options{
		DateLayout:         DefaultDateLayout,
		DefaultDescription: DefaultDescription,
		Delimiter:          common.DefaultDelimiter,
	}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.DateLayout == "" {
		o.DateLayout = d.DateLayout
	}
	if o.DefaultDescription == "" {
		o.DefaultDescription = d.DefaultDescription
	}
	if o.Delimiter == 0 {
		o.Delimiter = d.Delimiter
	}
	return o
}

// Importer converts bank exports into categorized transactions.
type Importer struct {
	classify ClassifyFunc
	opts     Options
	logger   logging.Logger
}

// NewImporter creates an Importer that categorizes with classify.
func NewImporter(classify ClassifyFunc, opts Options, logger logging.Logger) *Importer {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &Importer{
		classify: classify,
		opts:     opts.withDefaults(),
		logger:   logger.WithField(logging.FieldComponent, "Importer"),
	}
}

// Process converts rows to transactions. Dates are read with the configured
// layout first, then the common day-first layouts. Rows without a date or
// amount, or whose date or amount cannot be parsed, are skipped. Amounts are
// stored as absolute values. Each transaction gets a fresh id.
func (im *Importer) Process(rows []Row) []models.Transaction {
	out := make([]models.Transaction, 0, len(rows))
	for i, row := range rows {
		tx, err := im.convert(row)
		if err != nil {
			im.logger.WithError(err).Debug("Skipping row", logging.Field{Key: logging.FieldRow, Value: i + 1})
			continue
		}
		out = append(out, tx)
	}

	if skipped := len(rows) - len(out); skipped > 0 {
		im.logger.Info("Skipped invalid rows", logging.Field{Key: logging.FieldCount, Value: skipped})
	}
	return out
}

func (im *Importer) convert(row Row) (models.Transaction, error) {
	dateText := strings.TrimSpace(row.Date)
	amountText := strings.TrimSpace(row.Amount)
	if dateText == "" || amountText == "" {
		return models.Transaction{}, &parsererror.ValidationError{Subject: "row", Reason: "date and amount are required"}
	}

	date, _, err := dateutils.ParseDate(dateText, im.opts.DateLayout)
	if err != nil {
		return models.Transaction{}, &parsererror.ParseError{Source: "row", Field: "date", Value: dateText, Err: err}
	}

	amount, err := ParseAmount(amountText)
	if err != nil {
		return models.Transaction{}, err
	}

	description := row.Title
	if strings.TrimSpace(description) == "" {
		description = im.opts.DefaultDescription
	}

	category := models.CategoryOther
	if im.classify != nil {
		category = im.classify(description)
	}

	return models.Transaction{
		ID:          uuid.NewString(),
		Date:        date,
		Description: description,
		Category:    category,
		Amount:      amount,
	}, nil
}

// ParseAmount reads an exported amount such as "R$ -1234,56". Currency
// symbol and whitespace are dropped, the first comma is taken as the decimal
// separator and the sign is discarded.
func ParseAmount(text string) (decimal.Decimal, error) {
	cleaned := strings.Map(func(r rune) rune {
		if r == 'R' || r == '$' || unicode.IsSpace(r) {
			return -1
		}
		return r
	}, text)
	cleaned = strings.Replace(cleaned, ",", ".", 1)

	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, &parsererror.ParseError{Source: "row", Field: "amount", Value: text, Err: err}
	}
	return d.Abs(), nil
}

// ValidateFile checks that path looks like a CSV export of acceptable size.
func ValidateFile(path string) error {
	if ext := strings.ToLower(filepath.Ext(path)); ext != ".csv" {
		return &parsererror.InvalidFormatError{FilePath: path, ExpectedFormat: "CSV", Msg: "file must have a .csv extension"}
	}
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("error reading input file: %w", err)
	}
	if info.Size() > MaxFileSize {
		return &parsererror.InvalidFormatError{FilePath: path, ExpectedFormat: "CSV", Msg: "file is larger than 5MB"}
	}
	return nil
}

// ReadRows reads a bank export file.
func (im *Importer) ReadRows(path string) ([]Row, error) {
	if err := ValidateFile(path); err != nil {
		return nil, err
	}
	return common.ReadCSVFileWithDelimiter[Row](path, im.opts.Delimiter, im.logger)
}

// ImportFile reads and converts a bank export file.
func (im *Importer) ImportFile(path string) ([]models.Transaction, error) {
	rows, err := im.ReadRows(path)
	if err != nil {
		return nil, err
	}
	txs := im.Process(rows)
	im.logger.Info("Imported transactions",
		logging.Field{Key: logging.FieldInputFile, Value: path},
		logging.Field{Key: logging.FieldCount, Value: len(txs)})
	return txs, nil
}
