package conv

import "unicode/utf8"

// Excerpt returns at most limit characters of text, never splitting a rune.
func Excerpt(text string, limit int) string {
	if limit <= 0 {
		return ""
	}
	if utf8.RuneCountInString(text) <= limit {
		return text
	}
	count := 0
	for i := range text {
		if count == limit {
			return text[:i]
		}
		count++
	}
	return text
}
