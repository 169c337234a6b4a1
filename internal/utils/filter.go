package utils

import "unicode"

// isSeparator checks if a rune is a separator character
func isSeparator(r rune) bool {
	return r == ' ' || r == '_' || r == '-' || r == '.' || r == '/'
}

// isOnlyNumbers checks if a string consists entirely of numeric digits
func isOnlyNumbers(s string) bool {
	if len(s) == 0 {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// containsSpecialChars checks for non-alphanumeric characters excluding
// common separators
func containsSpecialChars(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && !isSeparator(r) {
			return true
		}
	}
	return false
}

// IsRepetitive checks if a string is a single character repeated, like
// "dddd" or "www"
func IsRepetitive(s string) bool {
	if len(s) <= 2 {
		return false
	}
	first := s[0]
	for i := 1; i < len(s); i++ {
		if s[i] != first {
			return false
		}
	}
	return true
}

// IsValidInput checks if input should be processed for matching.
// Returns false for strings that are only numbers, contain special
// characters, or are repetitive.
func IsValidInput(s string) bool {
	if len(s) == 0 {
		return false
	}
	if isOnlyNumbers(s) {
		return false
	}
	if containsSpecialChars(s) {
		return false
	}
	if IsRepetitive(s) {
		return false
	}
	return true
}
