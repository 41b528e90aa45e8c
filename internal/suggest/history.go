package suggest

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"fjacquet/orcamento/internal/logging"
	"fjacquet/orcamento/internal/models"
	"fjacquet/orcamento/internal/store"

	"github.com/google/uuid"
)

// DefaultHistoryLimit is the number of recent searches kept when no limit is
// configured.
const DefaultHistoryLimit = 10

// History is the list of recent searches, newest first, with at most one
// entry per term.
type History struct {
	settings store.Store
	limit    int
	logger   logging.Logger
	now      func() time.Time
}

// NewHistory creates a History kept in settings. A non-positive limit selects
// DefaultHistoryLimit.
func NewHistory(settings store.Store, limit int, logger logging.Logger) *History {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &History{
		settings: settings,
		limit:    limit,
		logger:   logger.WithField(logging.FieldComponent, "History"),
		now:      time.Now,
	}
}

// Load returns the recent searches. A missing or unreadable history is empty.
func (h *History) Load() []models.SearchHistoryEntry {
	entries, err := h.load()
	if err != nil {
		h.logger.WithError(err).Warn("Failed to load recent searches")
		return []models.SearchHistoryEntry{}
	}
	return entries
}

func (h *History) load() ([]models.SearchHistoryEntry, error) {
	entries := []models.SearchHistoryEntry{}
	if err := loadJSON(h.settings, models.SettingsKeyRecentSearches, &entries); err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []models.SearchHistoryEntry{}
	}
	return entries, nil
}

// Add records a search at the front of the history, dropping any older entry
// with the same term and trimming to the limit. Blank terms are not recorded.
// An unreadable stored history is reported, not overwritten.
func (h *History) Add(term string, filters models.StructuredFilters) (models.SearchHistoryEntry, error) {
	if strings.TrimSpace(term) == "" {
		return models.SearchHistoryEntry{}, nil
	}

	current, err := h.load()
	if err != nil {
		return models.SearchHistoryEntry{}, fmt.Errorf("error reading recent searches: %w", err)
	}

	entry := models.SearchHistoryEntry{
		ID:        uuid.NewString(),
		Term:      term,
		Filters:   filters.Clone(),
		Timestamp: h.now(),
	}

	updated := []models.SearchHistoryEntry{entry}
	for _, e := range current {
		if e.Term != term {
			updated = append(updated, e)
		}
	}
	if len(updated) > h.limit {
		updated = updated[:h.limit]
	}

	if err := saveJSON(h.settings, models.SettingsKeyRecentSearches, updated); err != nil {
		return models.SearchHistoryEntry{}, fmt.Errorf("error saving recent searches: %w", err)
	}
	h.logger.Debug("Recorded search", logging.Field{Key: logging.FieldTerm, Value: term})
	return entry, nil
}

// Clear forgets every recent search.
func (h *History) Clear() error {
	if err := h.settings.Delete(models.SettingsKeyRecentSearches); err != nil {
		return fmt.Errorf("error clearing recent searches: %w", err)
	}
	return nil
}

func loadJSON(settings store.Store, key string, v interface{}) error {
	raw, found, err := settings.Get(key)
	if err != nil || !found {
		return err
	}
	if err := json.Unmarshal([]byte(raw), v); err != nil {
		return fmt.Errorf("error parsing %s: %w", key, err)
	}
	return nil
}

func saveJSON(settings store.Store, key string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("error marshaling %s: %w", key, err)
	}
	return settings.Set(key, string(data))
}
