// Package parsererror defines the typed errors returned when rule blobs,
// rule files or transaction rows cannot be understood.
package parsererror

import "fmt"

// ParseError represents an error during parsing
type ParseError struct {
	Source string // what was being parsed, e.g. "rules" or "csv"
	Field  string
	Value  string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("%s: failed to parse: %v", e.Source, e.Err)
	}
	return fmt.Sprintf("%s: failed to parse %s='%s': %v",
		e.Source, e.Field, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ValidationError represents a value that parsed but breaks an invariant.
type ValidationError struct {
	Subject string
	Reason  string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed for %s: %s", e.Subject, e.Reason)
}

// CategorizationError represents a categorization failure
type CategorizationError struct {
	Transaction string
	Err         error
}

func (e *CategorizationError) Error() string {
	return fmt.Sprintf("categorization failed for %s: %v", e.Transaction, e.Err)
}

func (e *CategorizationError) Unwrap() error {
	return e.Err
}

// InvalidFormatError represents an input file that does not have the
// expected layout.
type InvalidFormatError struct {
	FilePath       string
	ExpectedFormat string
	Msg            string
}

func (e *InvalidFormatError) Error() string {
	return fmt.Sprintf("invalid format in file '%s': %s. Expected: %s",
		e.FilePath, e.Msg, e.ExpectedFormat)
}
