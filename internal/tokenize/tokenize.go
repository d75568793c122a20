// Package tokenize splits raw text into whitespace-delimited tokens and
// validates them against the engine's byte-level character rules.
package tokenize

import "strings"

// Split breaks text on runs of ASCII space (0x20) and returns the
// non-empty substrings in input order. Leading, trailing, and internal
// runs of spaces collapse; Split never rejects its input.
func Split(text string) []string {
	fields := strings.FieldsFunc(text, func(r rune) bool { return r == ' ' })
	if len(fields) == 0 {
		return []string{}
	}
	return fields
}

// Valid reports whether token contains no byte with value < 0x20.
// Validity is byte-level only; no Unicode awareness is intended.
func Valid(token string) bool {
	for i := 0; i < len(token); i++ {
		if token[i] < 0x20 {
			return false
		}
	}
	return true
}
