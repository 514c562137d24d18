package table

import "strings"

// MatchesSearch reports whether any of keys contains text, ignoring case.
// Empty text matches every row. Whitespace in text is significant.
func MatchesSearch[R Record](row R, text string, keys []string) bool {
	if text == "" {
		return true
	}
	needle := strings.ToLower(text)
	for _, key := range keys {
		if strings.Contains(strings.ToLower(Text(row.Field(key))), needle) {
			return true
		}
	}
	return false
}
