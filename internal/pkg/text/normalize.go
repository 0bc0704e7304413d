// Package text holds the normalization applied to free-text fields before
// equality comparison: nil and whitespace-only values all collapse to "".
package text

import "strings"

// Clean returns the trimmed value of s, or "" when s is nil.
func Clean(s *string) string {
	if s == nil {
		return ""
	}
	return strings.TrimSpace(*s)
}

// CleanString is Clean for non-pointer inputs.
func CleanString(s string) string {
	return strings.TrimSpace(s)
}

// NilIfEmpty maps "" back to NULL for storage.
func NilIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
