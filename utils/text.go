package utils

import (
	"strings"
	"unicode"
)

// Normalize lower-cases text and collapses punctuation into spaces so that
// keyword tables match regardless of commas, question marks, etc. Devanagari
// characters pass through untouched.
func Normalize(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range strings.ToLower(strings.TrimSpace(text)) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
		case unicode.IsSpace(r):
			b.WriteRune(' ')
		case r == '_' || r == '-':
			b.WriteRune(r)
		default:
			b.WriteRune(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// Tokenize splits normalized text into whitespace-separated tokens.
func Tokenize(text string) []string {
	return strings.Fields(Normalize(text))
}

// IsPincode reports whether the text is exactly a 6-digit Indian postal code.
func IsPincode(text string) bool {
	text = strings.TrimSpace(text)
	if len(text) != 6 {
		return false
	}
	for _, r := range text {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// IsNumeric reports whether the trimmed text consists only of digits.
func IsNumeric(text string) bool {
	text = strings.TrimSpace(text)
	if text == "" {
		return false
	}
	for _, r := range text {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// IsLocationKeyShaped reports whether the text looks like a canonical
// underscore-joined location key ("Lucknow_Gomti_Nagar"). Whether the city is
// actually known is decided by the clinic index, not here.
func IsLocationKeyShaped(text string) bool {
	text = strings.TrimSpace(text)
	if !strings.Contains(text, "_") || strings.ContainsAny(text, " \t\n") {
		return false
	}
	for _, part := range strings.Split(text, "_") {
		if part == "" {
			return false
		}
		for _, r := range part {
			if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
				return false
			}
		}
	}
	return true
}

// ContainsDevanagari reports whether any rune falls in the Devanagari block.
func ContainsDevanagari(text string) bool {
	for _, r := range text {
		if unicode.Is(unicode.Devanagari, r) {
			return true
		}
	}
	return false
}
