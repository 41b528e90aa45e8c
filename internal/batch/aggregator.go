// Package batch merges the transactions of several bank export files.
package batch

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"fjacquet/orcamento/internal/logging"
	"fjacquet/orcamento/internal/models"
)

// DateRange represents a date range with start and end dates
type DateRange struct {
	Start time.Time
	End   time.Time
}

// String returns the date range in the format "YYYY-MM-DD_YYYY-MM-DD"
func (dr DateRange) String() string {
	if dr.Start.IsZero() || dr.End.IsZero() {
		return ""
	}
	return fmt.Sprintf("%s_%s", dr.Start.Format("2006-01-02"), dr.End.Format("2006-01-02"))
}

// Merge combines this date range with another, returning the overall range
func (dr DateRange) Merge(other DateRange) DateRange {
	start, end := dr.Start, dr.End
	if start.IsZero() || (!other.Start.IsZero() && other.Start.Before(start)) {
		start = other.Start
	}
	if end.IsZero() || (!other.End.IsZero() && other.End.After(end)) {
		end = other.End
	}
	return DateRange{Start: start, End: end}
}

// ParseFunc reads the transactions of one file.
type ParseFunc func(path string) ([]models.Transaction, error)

// Aggregator merges transactions from several files.
type Aggregator struct {
	logger logging.Logger
}

// NewAggregator creates a new Aggregator.
func NewAggregator(logger logging.Logger) *Aggregator {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &Aggregator{logger: logger}
}

// ListFiles returns the .csv files directly inside dir, sorted by name.
func (a *Aggregator) ListFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", dir, err)
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() || !strings.EqualFold(filepath.Ext(e.Name()), ".csv") {
			continue
		}
		files = append(files, filepath.Join(dir, e.Name()))
	}
	sort.Strings(files)

	a.logger.Debug("Listed input files",
		logging.Field{Key: logging.FieldPath, Value: dir},
		logging.Field{Key: logging.FieldCount, Value: len(files)})
	return files, nil
}

// Aggregate parses every file and returns all transactions in chronological
// order. A file that fails to parse is logged and skipped. Potential
// duplicates are reported but kept.
func (a *Aggregator) Aggregate(files []string, parse ParseFunc) ([]models.Transaction, error) {
	var all []models.Transaction
	var sources []string

	for _, file := range files {
		txs, err := parse(file)
		if err != nil {
			a.logger.WithError(err).Error("Failed to parse file",
				logging.Field{Key: logging.FieldInputFile, Value: file})
			continue
		}
		a.logger.Debug("Loaded transactions from file",
			logging.Field{Key: logging.FieldInputFile, Value: filepath.Base(file)},
			logging.Field{Key: logging.FieldCount, Value: len(txs)})

		all = append(all, txs...)
		sources = append(sources, filepath.Base(file))
	}

	if len(files) > 0 && len(sources) == 0 {
		return nil, fmt.Errorf("none of the %d input files could be read", len(files))
	}

	SortChronologically(all)
	a.logDuplicates(all)

	a.logger.Info("Aggregated transactions",
		logging.Field{Key: logging.FieldCount, Value: len(all)},
		logging.Field{Key: "source_files", Value: strings.Join(sources, ", ")})
	return all, nil
}

// SortChronologically sorts by date, then description, keeping the input
// order of equal transactions.
func SortChronologically(txs []models.Transaction) {
	sort.SliceStable(txs, func(i, j int) bool {
		if !txs[i].Date.Equal(txs[j].Date) {
			return txs[i].Date.Before(txs[j].Date)
		}
		return txs[i].Description < txs[j].Description
	})
}

// FindDuplicates returns the index pairs of transactions that share date,
// amount and description (ignoring case and surrounding space). Each
// transaction is paired with at most one later duplicate.
func FindDuplicates(txs []models.Transaction) [][2]int {
	var pairs [][2]int
	for i := 0; i < len(txs)-1; i++ {
		for j := i + 1; j < len(txs); j++ {
			if arePotentialDuplicates(txs[i], txs[j]) {
				pairs = append(pairs, [2]int{i, j})
				break
			}
		}
	}
	return pairs
}

func (a *Aggregator) logDuplicates(txs []models.Transaction) {
	pairs := FindDuplicates(txs)
	for _, p := range pairs {
		tx := txs[p[0]]
		a.logger.Warn("Potential duplicate transaction",
			logging.Field{Key: "date", Value: tx.Date.Format("2006-01-02")},
			logging.Field{Key: "amount", Value: tx.Amount.String()},
			logging.Field{Key: "description", Value: tx.Description})
	}
	if len(pairs) > 0 {
		a.logger.Warn("Found potential duplicate transactions",
			logging.Field{Key: logging.FieldCount, Value: len(pairs)})
	}
}

func arePotentialDuplicates(tx1, tx2 models.Transaction) bool {
	if !tx1.Date.Equal(tx2.Date) || !tx1.Amount.Equal(tx2.Amount) {
		return false
	}
	d1 := strings.ToLower(strings.TrimSpace(tx1.Description))
	d2 := strings.ToLower(strings.TrimSpace(tx2.Description))
	return d1 == d2
}

// DateRangeOf returns the range covered by txs. Zero dates are ignored.
func DateRangeOf(txs []models.Transaction) DateRange {
	var dr DateRange
	for _, tx := range txs {
		if tx.Date.IsZero() {
			continue
		}
		dr = dr.Merge(DateRange{Start: tx.Date, End: tx.Date})
	}
	return dr
}

// OutputFilename builds "{prefix}_{start}_{end}.csv", or "{prefix}.csv"
// when the range is unknown.
func OutputFilename(prefix string, dr DateRange) string {
	if s := dr.String(); s != "" {
		return fmt.Sprintf("%s_%s.csv", prefix, s)
	}
	return prefix + ".csv"
}
