package textutils

import (
	"strings"
	"unicode"
)

var soundexCodes = map[rune]byte{
	'b': '1', 'f': '1', 'p': '1', 'v': '1',
	'c': '2', 'g': '2', 'j': '2', 'k': '2', 'q': '2', 's': '2', 'x': '2', 'z': '2',
	'd': '3', 't': '3',
	'l': '4',
	'm': '5', 'n': '5',
	'r': '6',
}

// Soundex returns the four character phonetic code of text: the first letter
// uppercased followed by up to three digits, padded with zeros. Letters
// without a code (vowels, h, w, y) break runs of equal codes.
func Soundex(text string) string {
	if text == "" {
		return ""
	}

	rs := []rune(text)
	var b strings.Builder
	b.WriteRune(unicode.ToUpper(rs[0]))
	previous := soundexCodes[unicode.ToLower(rs[0])]
	n := 1

	for _, r := range rs[1:] {
		if n >= 4 {
			break
		}
		code, ok := soundexCodes[unicode.ToLower(r)]
		switch {
		case ok && code != previous:
			b.WriteByte(code)
			previous = code
			n++
		case !ok:
			previous = 0
		}
	}

	for ; n < 4; n++ {
		b.WriteByte('0')
	}
	return b.String()
}
