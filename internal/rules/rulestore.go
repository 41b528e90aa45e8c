// Package rules manages the keyword rule set that drives classification:
// the built-in defaults, the user's custom set kept in the settings store,
// and its import/export blobs.
package rules

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"fjacquet/orcamento/internal/logging"
	"fjacquet/orcamento/internal/models"
	"fjacquet/orcamento/internal/parsererror"
	"fjacquet/orcamento/internal/store"

	"gopkg.in/yaml.v3"
)

// RuleStore reads and writes the active keyword rule set. It keeps no copy of
// the rules: every GetActive reads the settings store again, so edits made
// between classification passes are always seen.
type RuleStore struct {
	settings store.Store
	key      string
	logger   logging.Logger
}

// NewRuleStore creates a RuleStore persisting under the default settings key.
func NewRuleStore(settings store.Store, logger logging.Logger) *RuleStore {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &RuleStore{
		settings: settings,
		key:      models.SettingsKeyCustomRules,
		logger:   logger.WithField(logging.FieldComponent, "RuleStore"),
	}
}

// GetActive returns the custom rule set if one is stored, else the defaults.
// An unreadable or corrupt custom set is logged and the defaults are used.
func (s *RuleStore) GetActive() models.KeywordRuleSet {
	if custom, ok := s.loadCustom(); ok {
		return custom
	}
	return DefaultRules()
}

// HasCustom reports whether a custom rule set is stored.
func (s *RuleStore) HasCustom() bool {
	_, ok := s.loadCustom()
	return ok
}

func (s *RuleStore) loadCustom() (models.KeywordRuleSet, bool) {
	raw, found, err := s.settings.Get(s.key)
	if err != nil {
		s.logger.WithError(err).Warn("Failed to load custom category rules")
		return nil, false
	}
	if !found {
		return nil, false
	}

	rs, err := Parse([]byte(raw))
	if err != nil {
		s.logger.WithError(err).Warn("Ignoring corrupt custom category rules")
		return nil, false
	}
	return rs, true
}

// Save persists ruleSet as the active custom set. Storage failures are
// logged and reported as false.
func (s *RuleStore) Save(ruleSet models.KeywordRuleSet) bool {
	if err := s.save(ruleSet); err != nil {
		s.logger.WithError(err).Error("Failed to save custom category rules")
		return false
	}
	s.logger.Debug("Saved custom category rules",
		logging.Field{Key: logging.FieldCount, Value: len(ruleSet)})
	return true
}

func (s *RuleStore) save(ruleSet models.KeywordRuleSet) error {
	if ruleSet == nil {
		ruleSet = models.KeywordRuleSet{}
	}
	data, err := json.Marshal(ruleSet)
	if err != nil {
		return fmt.Errorf("error marshaling category rules: %w", err)
	}
	return s.settings.Set(s.key, string(data))
}

// Reset deletes the custom set so GetActive returns the defaults again.
func (s *RuleStore) Reset() bool {
	if err := s.settings.Delete(s.key); err != nil {
		s.logger.WithError(err).Error("Failed to reset category rules")
		return false
	}
	s.logger.Info("Category rules reset to defaults")
	return true
}

// Export renders ruleSet as indented JSON.
func (s *RuleStore) Export(ruleSet models.KeywordRuleSet) ([]byte, error) {
	return Export(ruleSet)
}

// Import parses blob and, when it is a well-formed rule mapping, stores it as
// the active custom set, replacing the previous one entirely. Malformed
// blobs fail with *parsererror.ParseError; on any failure the active set is
// unchanged.
func (s *RuleStore) Import(blob []byte) (models.KeywordRuleSet, error) {
	rs, err := Parse(blob)
	if err != nil {
		return nil, err
	}
	if err := s.save(rs); err != nil {
		s.logger.WithError(err).Error("Failed to save imported category rules")
		return nil, fmt.Errorf("error saving imported rules: %w", err)
	}
	s.logger.Info("Imported category rules",
		logging.Field{Key: logging.FieldCount, Value: len(rs)})
	return rs, nil
}

// AddKeyword appends keyword (trimmed and lowercased) to category in the
// active set and saves it. The category is created when missing. A blank
// keyword or category changes nothing and reports false.
func (s *RuleStore) AddKeyword(category, keyword string) bool {
	category = strings.TrimSpace(category)
	keyword = strings.ToLower(strings.TrimSpace(keyword))
	if category == "" || keyword == "" {
		return false
	}

	ok := s.Save(s.GetActive().AddKeyword(category, keyword))
	if ok {
		s.logger.Debug("Added keyword",
			logging.Field{Key: logging.FieldCategory, Value: category},
			logging.Field{Key: logging.FieldKeyword, Value: keyword})
	}
	return ok
}

// RemoveKeyword removes keyword from category in the active set and saves it.
// It reports false when the category does not exist or saving fails.
func (s *RuleStore) RemoveKeyword(category, keyword string) bool {
	active := s.GetActive()
	if !active.Has(category) {
		return false
	}
	return s.Save(active.RemoveKeyword(category, keyword))
}

// LoadFile imports a rule file. Files ending in .yaml or .yml are read as
// YAML, anything else as JSON.
func (s *RuleStore) LoadFile(path string) (models.KeywordRuleSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading rules file: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		rs, err := ParseYAML(data)
		if err != nil {
			return nil, err
		}
		if err := s.save(rs); err != nil {
			return nil, fmt.Errorf("error saving rules from %s: %w", path, err)
		}
		s.logger.Info("Loaded category rules",
			logging.Field{Key: logging.FieldPath, Value: path},
			logging.Field{Key: logging.FieldCount, Value: len(rs)})
		return rs, nil
	default:
		return s.Import(data)
	}
}

// Export renders ruleSet as JSON indented with two spaces.
func Export(ruleSet models.KeywordRuleSet) ([]byte, error) {
	if ruleSet == nil {
		ruleSet = models.KeywordRuleSet{}
	}
	data, err := json.MarshalIndent(ruleSet, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("error marshaling category rules: %w", err)
	}
	return data, nil
}

// ExportYAML renders ruleSet as a YAML mapping.
func ExportYAML(ruleSet models.KeywordRuleSet) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(ruleSet); err != nil {
		return nil, fmt.Errorf("error marshaling category rules: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("error marshaling category rules: %w", err)
	}
	return buf.Bytes(), nil
}

// Parse decodes a JSON rule blob: an object whose values are arrays of
// strings. Every other shape, and empty category names, fail with a
// *parsererror.ParseError.
func Parse(blob []byte) (models.KeywordRuleSet, error) {
	trimmed := bytes.TrimSpace(blob)
	if len(trimmed) == 0 {
		return nil, &parsererror.ParseError{Source: "rules", Err: errors.New("empty rules blob")}
	}

	var rs models.KeywordRuleSet
	if err := json.Unmarshal(trimmed, &rs); err != nil {
		return nil, &parsererror.ParseError{Source: "rules", Err: err}
	}
	if err := rs.Validate(); err != nil {
		return nil, &parsererror.ParseError{Source: "rules", Err: err}
	}
	return rs, nil
}

// ParseYAML decodes a YAML rule file with the same shape rules as Parse.
func ParseYAML(data []byte) (models.KeywordRuleSet, error) {
	var rs models.KeywordRuleSet
	if err := yaml.Unmarshal(data, &rs); err != nil {
		return nil, &parsererror.ParseError{Source: "rules", Err: err}
	}
	if rs == nil {
		return nil, &parsererror.ParseError{Source: "rules", Err: errors.New("empty rules file")}
	}
	if err := rs.Validate(); err != nil {
		return nil, &parsererror.ParseError{Source: "rules", Err: err}
	}
	return rs, nil
}
