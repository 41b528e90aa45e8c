// Package dateutils parses the dates found in Brazilian bank exports.
package dateutils

import (
	"fmt"
	"strings"
	"time"
)

// Date layouts seen in bank exports.
const (
	DateLayoutISO       = "2006-01-02"
	DateLayoutBrazilian = "02/01/2006"
	DateLayoutDashed    = "02-01-2006"
	DateLayoutDotted    = "02.01.2006"
	DateLayoutFull      = "2006-01-02 15:04:05"
)

// CommonFormats is tried, in order, after the preferred layout. Day-first
// layouts only: an export never uses month-first dates.
var CommonFormats = []string{
	DateLayoutISO,
	DateLayoutBrazilian,
	DateLayoutDashed,
	DateLayoutDotted,
	DateLayoutFull,
	time.RFC3339,
}

// ParseDate parses s with preferred first, then with CommonFormats. It
// returns the time and the layout that matched.
func ParseDate(s, preferred string) (time.Time, string, error) {
	s = CleanDateString(s)
	if s == "" {
		return time.Time{}, "", fmt.Errorf("empty date")
	}

	if preferred != "" {
		if t, err := time.Parse(preferred, s); err == nil {
			return t, preferred, nil
		}
	}
	for _, layout := range CommonFormats {
		if layout == preferred {
			continue
		}
		if t, err := time.Parse(layout, s); err == nil {
			return t, layout, nil
		}
	}
	return time.Time{}, "", fmt.Errorf("unable to parse date: %s", s)
}

// CleanDateString trims s and collapses inner runs of whitespace.
func CleanDateString(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
