package domain

import (
	"strings"
	"unicode"
)

// ParseURLList splits raw user input into an ordered list of unique URLs.
// Separators are whitespace, ASCII and full-width commas, and semicolons.
// Blank items are dropped; the first occurrence of a duplicate wins.
func ParseURLList(raw string) []string {
	fields := strings.FieldsFunc(raw, func(r rune) bool {
		switch r {
		case ',', '，', ';', '；':
			return true
		}
		return unicode.IsSpace(r)
	})

	seen := make(map[string]struct{}, len(fields))
	urls := make([]string, 0, len(fields))
	for _, f := range fields {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		if _, dup := seen[f]; dup {
			continue
		}
		seen[f] = struct{}{}
		urls = append(urls, f)
	}
	return urls
}
