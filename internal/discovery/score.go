package discovery

import (
	"strings"

	"github.com/notesmith/notesmith/internal/textutil"
)

// Note is the candidate being scored. Content may carry markup; it is
// stripped before matching. Missing fields score as empty text rather
// than failing.
type Note struct {
	ID      string
	Title   string
	Content string
}

// Relevance scores how related a note is to a term set, in [0,1].
//
// Each term is tested by substring containment against every title token
// and every content token independently; a hit in the title and a hit in
// the content each count as one matched event for the same term. The
// score is the matched-event count normalized by the vocabulary size and
// clamped to 1, so a single term hitting both fields can saturate a
// small vocabulary.
//
// The category is already a member of the term set and earns no extra
// weight after normalization; the parameter is retained to keep the
// scoring contract stable.
func Relevance(note Note, terms []string, category string) float64 {
	_ = category
	if len(terms) == 0 {
		return 0
	}

	titleWords := textutil.Tokens(note.Title)
	contentWords := textutil.Tokens(textutil.Strip(note.Content))
	if len(titleWords) == 0 && len(contentWords) == 0 {
		return 0
	}

	matchedEvents := 0
	for _, term := range terms {
		if anyTokenContains(titleWords, term) {
			matchedEvents++
		}
		if anyTokenContains(contentWords, term) {
			matchedEvents++
		}
	}

	score := float64(matchedEvents) / float64(len(terms))
	if score > 1 {
		score = 1
	}
	return score
}

func anyTokenContains(tokens []string, term string) bool {
	for _, token := range tokens {
		if strings.Contains(token, term) {
			return true
		}
	}
	return false
}
