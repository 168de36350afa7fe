package utils

import (
	"fmt"
	"strings"
	"unicode"
)

// IsOnlyNumbers checks if a string consists entirely of numeric digits
func IsOnlyNumbers(s string) bool {
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

// ContainsControl checks if a string holds control characters (newlines, tabs, escapes)
func ContainsControl(s string) bool {
	return strings.IndexFunc(s, unicode.IsControl) >= 0
}

// IsValidInput checks if typed input is worth a lookup.
// Returns false for empty strings, pure numbers and anything with control characters.
func IsValidInput(s string) bool {
	if len(s) == 0 {
		return false
	}
	if IsOnlyNumbers(s) {
		return false
	}
	return !ContainsControl(s)
}

// FormatWithCommas formats an integer with comma separators
func FormatWithCommas(n int) string {
	if n < 0 {
		return "-" + FormatWithCommas(-n)
	}
	str := fmt.Sprintf("%d", n)
	if n < 1000 {
		return str
	}

	var sb strings.Builder
	for i, char := range str {
		if i > 0 && (len(str)-i)%3 == 0 {
			sb.WriteByte(',')
		}
		sb.WriteRune(char)
	}
	return sb.String()
}
