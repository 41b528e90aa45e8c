package textutils

import "regexp"

// EscapeRegex quotes every regular-expression metacharacter in s so the
// result matches s literally.
func EscapeRegex(s string) string {
	return regexp.QuoteMeta(s)
}
