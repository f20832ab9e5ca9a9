package domain

import (
	"strings"
	"unicode"
)

// NormalizeEmail prepares an address for storage and lookup.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// NormalizeKey folds a free-form label such as a CSV header into a
// comparable key:
//   - strips a leading byte order mark
//   - trims and lowercases
//   - turns runs of spaces, hyphens and underscores into one underscore
//
// "Start Time", "start-time" and "START_TIME" all become "start_time".
func NormalizeKey(s string) string {
	s = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(s, "\ufeff")))
	if s == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(s))
	sep := false
	for _, r := range s {
		if unicode.IsSpace(r) || r == '-' || r == '_' {
			sep = true
			continue
		}
		if sep && b.Len() > 0 {
			b.WriteByte('_')
		}
		sep = false
		b.WriteRune(r)
	}
	return b.String()
}
