package discovery

import (
	"strings"
)

// stopWords is the fixed set of function words excluded from search terms.
var stopWords = map[string]struct{}{
	"the": {}, "and": {}, "or": {}, "but": {}, "in": {}, "on": {}, "at": {},
	"to": {}, "for": {}, "of": {}, "with": {}, "a": {}, "an": {}, "is": {},
	"was": {}, "are": {}, "were": {}, "been": {}, "be": {}, "have": {},
	"has": {}, "had": {}, "do": {}, "does": {}, "did": {}, "will": {},
	"would": {}, "could": {}, "should": {}, "may": {}, "might": {},
	"must": {}, "can": {},
}

// SearchTerms derives the lower-cased query vocabulary for an expense.
// Description tokens shorter than three characters, stop words, and
// all-digit tokens are dropped; mixed tokens like "5pm" survive. The
// lower-cased category is always appended, so an empty description still
// yields a one-element set. The result is de-duplicated, order preserved.
func SearchTerms(description, category string) []string {
	words := strings.Fields(strings.ToLower(description))

	terms := make([]string, 0, len(words)+1)
	seen := make(map[string]struct{}, len(words)+1)
	for _, word := range words {
		if len(word) < 3 {
			continue
		}
		if _, stop := stopWords[word]; stop {
			continue
		}
		if allDigits(word) {
			continue
		}
		if _, dup := seen[word]; dup {
			continue
		}
		seen[word] = struct{}{}
		terms = append(terms, word)
	}

	cat := strings.ToLower(category)
	if _, dup := seen[cat]; !dup {
		terms = append(terms, cat)
	}
	return terms
}

func allDigits(word string) bool {
	for _, r := range word {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(word) > 0
}
