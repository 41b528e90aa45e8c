package suggest

import (
	"fmt"
	"strings"
	"time"

	"fjacquet/orcamento/internal/logging"
	"fjacquet/orcamento/internal/models"
	"fjacquet/orcamento/internal/parsererror"
	"fjacquet/orcamento/internal/store"

	"github.com/google/uuid"
)

// SavedSearches keeps the user's named searches in creation order.
type SavedSearches struct {
	settings store.Store
	logger   logging.Logger
	now      func() time.Time
}

// NewSavedSearches creates a SavedSearches kept in settings.
func NewSavedSearches(settings store.Store, logger logging.Logger) *SavedSearches {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &SavedSearches{
		settings: settings,
		logger:   logger.WithField(logging.FieldComponent, "SavedSearches"),
		now:      time.Now,
	}
}

// List returns the saved searches. A missing or unreadable list is empty.
func (s *SavedSearches) List() []models.SavedSearch {
	saved, err := s.load()
	if err != nil {
		s.logger.WithError(err).Warn("Failed to load saved searches")
		return []models.SavedSearch{}
	}
	return saved
}

func (s *SavedSearches) load() ([]models.SavedSearch, error) {
	saved := []models.SavedSearch{}
	if err := loadJSON(s.settings, models.SettingsKeySavedSearches, &saved); err != nil {
		return nil, err
	}
	if saved == nil {
		saved = []models.SavedSearch{}
	}
	return saved, nil
}

// Get returns the saved search with id.
func (s *SavedSearches) Get(id string) (models.SavedSearch, bool) {
	for _, saved := range s.List() {
		if saved.ID == id {
			return saved, true
		}
	}
	return models.SavedSearch{}, false
}

// Save appends a named search. Both name and term must be non-blank. An
// unreadable stored list is reported, not overwritten.
func (s *SavedSearches) Save(name, term string, filters models.StructuredFilters) (models.SavedSearch, error) {
	if strings.TrimSpace(name) == "" {
		return models.SavedSearch{}, &parsererror.ValidationError{Subject: "saved search", Reason: "name is required"}
	}
	if strings.TrimSpace(term) == "" {
		return models.SavedSearch{}, &parsererror.ValidationError{Subject: "saved search", Reason: "term is required"}
	}

	current, err := s.load()
	if err != nil {
		return models.SavedSearch{}, fmt.Errorf("error reading saved searches: %w", err)
	}

	saved := models.SavedSearch{
		ID:        uuid.NewString(),
		Name:      name,
		Term:      term,
		Filters:   filters.Clone(),
		CreatedAt: s.now(),
	}

	if err := saveJSON(s.settings, models.SettingsKeySavedSearches, append(current, saved)); err != nil {
		return models.SavedSearch{}, fmt.Errorf("error saving search %q: %w", name, err)
	}
	s.logger.Info("Saved search",
		logging.Field{Key: "name", Value: name},
		logging.Field{Key: logging.FieldTerm, Value: term})
	return saved, nil
}

// Delete removes the saved search with id and reports whether it existed.
// An unreadable stored list is left untouched.
func (s *SavedSearches) Delete(id string) (bool, error) {
	current, err := s.load()
	if err != nil {
		return false, fmt.Errorf("error reading saved searches: %w", err)
	}
	kept := make([]models.SavedSearch, 0, len(current))
	for _, saved := range current {
		if saved.ID != id {
			kept = append(kept, saved)
		}
	}
	if len(kept) == len(current) {
		return false, nil
	}

	if err := saveJSON(s.settings, models.SettingsKeySavedSearches, kept); err != nil {
		return false, fmt.Errorf("error deleting saved search: %w", err)
	}
	return true, nil
}
