// Package utils provides small shared helpers
package utils

import (
	"regexp"
	"strings"
	"unicode"
)

// MaxLogStringLength defines the maximum length for user-provided strings in logs
const MaxLogStringLength = 200

// nonPrintable matches anything that isn't a letter, number, punctuation,
// symbol or whitespace
var nonPrintable = regexp.MustCompile(`[^\p{L}\p{N}\p{P}\p{S}\p{Z}]`)

// SanitizeLogString sanitizes a user-controlled string for safe logging.
// It truncates long input, strips control characters, and escapes format
// specifiers so the result can appear in a log line verbatim.
func SanitizeLogString(input string) string {
	if input == "" {
		return ""
	}

	if len(input) > MaxLogStringLength {
		input = input[:MaxLogStringLength] + "... (truncated)"
	}

	// Collapse CRLF first to avoid double spaces
	input = strings.ReplaceAll(input, "\r\n", "\n")

	sanitized := strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return ' '
		}
		return r
	}, input)

	// Prevent format string injection when the result is passed to Printf
	sanitized = strings.ReplaceAll(sanitized, "%", "%%")

	return nonPrintable.ReplaceAllString(sanitized, "")
}
