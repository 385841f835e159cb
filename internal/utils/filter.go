package utils

import (
	"unicode"
	"unicode/utf8"
)

// IsSeparator checks if a rune may join the parts of a compound word
// (светло-синий, по-русски).
func IsSeparator(r rune) bool {
	return r == '-' || r == ' '
}

// ContainsNumbers checks if a string contains any numeric digits
func ContainsNumbers(s string) bool {
	for _, r := range s {
		if unicode.IsDigit(r) {
			return true
		}
	}
	return false
}

// ContainsSpecialChars reports characters that are neither letters nor
// separators.
func ContainsSpecialChars(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) && !IsSeparator(r) {
			return true
		}
	}
	return false
}

// IsRepetitive checks if a string is one rune repeated three or more times
// ("ааа", "www").
func IsRepetitive(s string) bool {
	if utf8.RuneCountInString(s) <= 2 {
		return false
	}
	first, _ := utf8.DecodeRuneInString(s)
	for _, r := range s {
		if r != first {
			return false
		}
	}
	return true
}

// IsValidWord checks if input is worth a dictionary lookup: non-empty, at
// most maxLen runes (0 for no limit), letters and separators only, and not
// repetitive.
func IsValidWord(s string, maxLen int) bool {
	if len(s) == 0 || !utf8.ValidString(s) {
		return false
	}
	if maxLen > 0 && utf8.RuneCountInString(s) > maxLen {
		return false
	}
	if ContainsNumbers(s) || ContainsSpecialChars(s) {
		return false
	}
	return !IsRepetitive(s)
}
