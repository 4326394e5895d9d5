package utils

import "strings"

// TrimOrEmpty normalizes user input without turning nil into "nil".
func TrimOrEmpty(s string) string {
	return strings.TrimSpace(s)
}

// NormalizePlaca canonicalizes a vehicle plate: trimmed and uppercased,
// so "abc-123" and "ABC-123" resolve to the same unidad.
func NormalizePlaca(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}
