package util

import (
	"strings"
	"unicode"
)

// IsSpace reports whether r is whitespace for mention boundaries and blank-line
// detection. It follows the Unicode White_Space property except NEL (U+0085),
// and also treats the byte order mark U+FEFF as whitespace.
func IsSpace(r rune) bool {
	switch r {
	case '\u0085':
		return false
	case '\uFEFF':
		return true
	}
	return unicode.IsSpace(r)
}

// IsBlank reports whether line is empty or consists only of whitespace.
func IsBlank(line string) bool {
	return strings.TrimFunc(line, IsSpace) == ""
}

// UTF16Len returns the length of text measured in UTF-16 code units.
func UTF16Len(text string) int {
	count := 0
	for _, r := range text {
		if r > 0xFFFF {
			count += 2
		} else {
			count++
		}
	}
	return count
}
