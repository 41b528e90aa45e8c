package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHighlight(t *testing.T) {
	tests := []struct {
		name          string
		text          string
		term          string
		caseSensitive bool
		expected      string
	}{
		{name: "every occurrence", text: "Uber Trip uber", term: "uber", expected: "[Uber] Trip [uber]"},
		{name: "case sensitive", text: "Uber Trip uber", term: "uber", caseSensitive: true, expected: "Uber Trip [uber]"},
		{name: "metacharacters are literal", text: "R$ 10.00 e R$ 1000", term: "10.00", expected: "R$ [10.00] e R$ 1000"},
		{name: "empty term", text: "Uber", term: "", expected: "Uber"},
		{name: "empty text", text: "", term: "uber", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Highlight(tt.text, tt.term, tt.caseSensitive, "[", "]"))
		})
	}
}
