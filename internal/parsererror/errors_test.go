package parsererror

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseError(t *testing.T) {
	tests := []struct {
		name     string
		err      *ParseError
		expected string
	}{
		{
			name: "with field",
			err: &ParseError{
				Source: "csv",
				Field:  "amount",
				Value:  "abc",
				Err:    errors.New("invalid decimal"),
			},
			expected: "csv: failed to parse amount='abc': invalid decimal",
		},
		{
			name: "without field",
			err: &ParseError{
				Source: "rules",
				Err:    errors.New("unexpected end of JSON input"),
			},
			expected: "rules: failed to parse: unexpected end of JSON input",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestParseError_Unwrap(t *testing.T) {
	originalErr := errors.New("original error")
	parseErr := &ParseError{Source: "rules", Err: originalErr}

	assert.Equal(t, originalErr, parseErr.Unwrap())
	assert.True(t, errors.Is(parseErr, originalErr))

	wrapped := fmt.Errorf("import: %w", parseErr)
	var target *ParseError
	assert.True(t, errors.As(wrapped, &target))
	assert.Equal(t, "rules", target.Source)
}

func TestValidationError(t *testing.T) {
	err := &ValidationError{Subject: "rule set", Reason: "category name must not be empty"}
	assert.Equal(t, "validation failed for rule set: category name must not be empty", err.Error())
}

func TestCategorizationError(t *testing.T) {
	inner := errors.New("no rule source")
	err := &CategorizationError{Transaction: "UBER TRIP", Err: inner}

	assert.Equal(t, "categorization failed for UBER TRIP: no rule source", err.Error())
	assert.True(t, errors.Is(err, inner))
}

func TestInvalidFormatError(t *testing.T) {
	err := &InvalidFormatError{
		FilePath:       "nubank.csv",
		ExpectedFormat: "CSV with date,title,amount header",
		Msg:            "missing column amount",
	}
	assert.Equal(t,
		"invalid format in file 'nubank.csv': missing column amount. Expected: CSV with date,title,amount header",
		err.Error())
}
