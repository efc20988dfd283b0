// Package yale romanizes Hangul text using the Yale system.
//
// Syllable blocks are decomposed arithmetically into compatibility jamo, the
// silent initial ㅇ is dropped, compound codas are split into two consonants,
// and each jamo is mapped through a fixed table. Everything else in the input
// is copied through untouched. All tables are read-only, so Convert is safe
// to call from any number of goroutines.
package yale

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Options configure a single conversion.
type Options struct {
	// LabialRule writes ㅜ after ㅁ ㅂ ㅃ ㅍ as "u" instead of "wu".
	LabialRule bool `json:"labial"`
	// Separator is placed between adjacent jamo. Only its first rune is used.
	Separator string `json:"sep"`
}

func DefaultOptions() Options {
	return Options{LabialRule: true}
}

// NormalizeSeparator keeps only the first rune of s. A first byte that is
// not valid UTF-8 becomes U+FFFD.
func NormalizeSeparator(s string) string {
	if s == "" {
		return ""
	}
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError && size == 1 {
		return string(utf8.RuneError)
	}
	return s[:size]
}

// IsBlank reports whether r is whitespace at the edges of text: Unicode
// White_Space without U+0085, plus the byte order mark U+FEFF.
func IsBlank(r rune) bool {
	switch r {
	case '\u0085':
		return false
	case '\uFEFF':
		return true
	}
	return unicode.IsSpace(r)
}

// TrimBlank strips IsBlank runes from both ends of s.
func TrimBlank(s string) string {
	return strings.TrimFunc(s, IsBlank)
}

// Convert romanizes text. Text that is empty after TrimBlank yields "".
func Convert(text string, opts Options) string {
	if TrimBlank(text) == "" {
		return ""
	}
	stream := decompose(text)
	if opts.LabialRule {
		stream = applyLabial(stream)
	}
	return Join(tokenize(stream), NormalizeSeparator(opts.Separator))
}
