package ranking

import (
	"strings"

	"github.com/notesmith/notesmith/internal/textutil"
)

const (
	excerptBefore = 50
	excerptAfter  = 100
)

// DefaultExcerptLength bounds the fallback excerpt when no term matches.
const DefaultExcerptLength = 150

// Excerpt returns a plain-text window around the first matched term,
// with ellipses marking truncation. When no term matches, the head of
// the text is returned, capped at maxLen runes. Markup is stripped first.
func Excerpt(text string, terms []string, maxLen int) string {
	if text == "" {
		return ""
	}
	if maxLen <= 0 {
		maxLen = DefaultExcerptLength
	}

	plain := textutil.Strip(text)
	lowered := strings.ToLower(plain)

	matchIndex := -1
	for _, term := range terms {
		if term == "" {
			continue
		}
		if idx := strings.Index(lowered, strings.ToLower(term)); idx != -1 {
			matchIndex = idx
			break
		}
	}

	runes := []rune(plain)
	if matchIndex == -1 {
		if len(runes) <= maxLen {
			return plain
		}
		return string(runes[:maxLen]) + "…"
	}

	matchRune := len([]rune(plain[:matchIndex]))
	start := matchRune - excerptBefore
	if start < 0 {
		start = 0
	}
	end := matchRune + excerptAfter
	if end > len(runes) {
		end = len(runes)
	}

	excerpt := string(runes[start:end])
	if start > 0 {
		excerpt = "…" + excerpt
	}
	if end < len(runes) {
		excerpt = excerpt + "…"
	}
	return excerpt
}
