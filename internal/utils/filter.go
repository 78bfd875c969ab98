package utils

import "unicode"

// IsLetters reports whether s is non-empty and made only of lowercase a-z.
func IsLetters(s string) bool {
	if len(s) == 0 {
		return false
	}
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}

// IsValidWord checks if a normalized word-list entry should be indexed.
// Returns false for entries shorter than minLen or with non-letters.
func IsValidWord(s string, minLen int) bool {
	if len([]rune(s)) < minLen {
		return false
	}
	return IsLetters(s)
}

// IsValidLetters checks a puzzle letter set. Repeats are allowed and
// ignored by the solver, but every rune must be a letter.
func IsValidLetters(s string) bool {
	if len(s) == 0 {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}
