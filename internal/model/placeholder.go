package model

import "strings"

// PlaceholderToken is the literal default the schema-scaffolded clients send
// for untouched string fields. It must never reach storage or filters.
const PlaceholderToken = "string"

// IsBlankOrPlaceholder reports whether a value carries no real content:
// empty, whitespace-only, or the scaffolding placeholder.
func IsBlankOrPlaceholder(s string) bool {
	trimmed := strings.TrimSpace(s)
	return trimmed == "" || trimmed == PlaceholderToken
}

// CleanOptional coerces blank/placeholder optional fields to nil.
func CleanOptional(s *string) *string {
	if s == nil || IsBlankOrPlaceholder(*s) {
		return nil
	}
	return s
}
