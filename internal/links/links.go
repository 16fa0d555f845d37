package links

import (
	"regexp"
	"strings"

	"github.com/notesmith/notesmith/internal/textutil"
)

// linkPattern captures [[Title]] spans. The non-greedy body means a span
// closes at the first ]] encountered, so "[[Outer [[Inner]] ]]" yields a
// single title "Outer [[Inner". That quirk is part of the contract.
var linkPattern = regexp.MustCompile(`(?s)\[\[(.+?)\]\]`)

// Extract returns the unique trimmed titles referenced by [[Title]] spans
// in text, in order of first occurrence. Markup is stripped before
// scanning so links inside tag attributes are never picked up. Empty
// titles are dropped.
func Extract(text string) []string {
	if text == "" {
		return nil
	}

	plain := textutil.Strip(text)
	matches := linkPattern.FindAllStringSubmatch(plain, -1)
	if len(matches) == 0 {
		return nil
	}

	titles := make([]string, 0, len(matches))
	seen := make(map[string]struct{}, len(matches))
	for _, m := range matches {
		title := strings.TrimSpace(m[1])
		if title == "" {
			continue
		}
		if _, dup := seen[title]; dup {
			continue
		}
		seen[title] = struct{}{}
		titles = append(titles, title)
	}

	if len(titles) == 0 {
		return nil
	}
	return titles
}

// Count reports how many unique link titles text contains.
func Count(text string) int {
	return len(Extract(text))
}
