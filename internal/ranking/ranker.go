package ranking

import (
	"math"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/notesmith/notesmith/internal/textutil"
)

// MaxResults caps how many ranked documents a search returns.
const MaxResults = 20

// titleBonus is added once per query term contained in a document title.
const titleBonus = 0.5

// Note is a searchable note record.
type Note struct {
	ID        string
	Title     string
	Content   string
	CreatedAt time.Time
}

// Expense is a searchable expense record. Notes holds free-form text
// attached to the expense, not the note corpus.
type Expense struct {
	ID          string
	Description string
	Category    string
	Notes       string
	Amount      float64
	Date        time.Time
}

// Result is one ranked document. Type is "note" or "expense". Scores are
// non-negative and unbounded above.
type Result struct {
	ID           string
	Type         string
	Title        string
	Content      string
	CreatedAt    time.Time
	Score        float64
	MatchedTerms []string
}

// document is the ephemeral unified form notes and expenses take for
// ranking. It is never persisted.
type document struct {
	id        string
	docType   string
	title     string
	content   string
	createdAt time.Time
	text      string
}

// Search ranks notes and expenses against a free-text query using TF-IDF
// with a title bonus and recency decay, and returns at most MaxResults
// documents in descending score order. Ties keep document order, so the
// ranking is deterministic for a given input. An empty or whitespace-only
// query yields no results. The reference time anchors recency decay.
func Search(query string, notes []Note, expenses []Expense, now time.Time) []Result {
	if strings.TrimSpace(query) == "" {
		return nil
	}

	terms := textutil.Tokens(query)
	documents := buildDocuments(notes, expenses)
	if len(documents) == 0 {
		return nil
	}

	idf := inverseDocumentFrequencies(terms, documents)

	results := make([]Result, 0, len(documents))
	for _, doc := range documents {
		score := tfidfScore(terms, doc, idf) * recencyWeight(doc.createdAt, now)
		if score <= 0 {
			continue
		}
		results = append(results, Result{
			ID:           doc.id,
			Type:         doc.docType,
			Title:        doc.title,
			Content:      doc.content,
			CreatedAt:    doc.createdAt,
			Score:        score,
			MatchedTerms: matchedTerms(terms, doc.text),
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	if len(results) > MaxResults {
		results = results[:MaxResults]
	}
	if len(results) == 0 {
		return nil
	}
	return results
}

func buildDocuments(notes []Note, expenses []Expense) []document {
	documents := make([]document, 0, len(notes)+len(expenses))
	for _, note := range notes {
		stripped := textutil.Strip(note.Content)
		documents = append(documents, document{
			id:        note.ID,
			docType:   "note",
			title:     note.Title,
			content:   note.Content,
			createdAt: note.CreatedAt,
			text:      strings.ToLower(note.Title + " " + stripped),
		})
	}
	for _, exp := range expenses {
		documents = append(documents, document{
			id:        exp.ID,
			docType:   "expense",
			title:     expenseTitle(exp),
			content:   exp.Description + " " + exp.Category,
			createdAt: exp.Date,
			text:      strings.ToLower(exp.Description + " " + exp.Category + " " + exp.Notes),
		})
	}
	return documents
}

func expenseTitle(exp Expense) string {
	return "$" + strconv.FormatFloat(exp.Amount, 'f', -1, 64) + " - " + exp.Description
}

// inverseDocumentFrequencies computes the smoothed IDF per unique query
// term: ln((N+1)/(df+1)), or 0 for terms absent from every document.
func inverseDocumentFrequencies(terms []string, documents []document) map[string]float64 {
	total := float64(len(documents))
	idf := make(map[string]float64, len(terms))
	for _, term := range terms {
		if _, done := idf[term]; done {
			continue
		}
		var containing int
		for _, doc := range documents {
			if strings.Contains(doc.text, term) {
				containing++
			}
		}
		if containing == 0 {
			idf[term] = 0
			continue
		}
		idf[term] = math.Log((total + 1) / (float64(containing) + 1))
	}
	return idf
}

// tfidfScore sums TF x IDF over the query terms, adding titleBonus once
// per term contained in the document title.
func tfidfScore(terms []string, doc document, idf map[string]float64) float64 {
	tokens := strings.Fields(doc.text)
	totalTokens := len(tokens)

	var score float64
	loweredTitle := strings.ToLower(doc.title)
	for _, term := range terms {
		if totalTokens > 0 {
			if count := strings.Count(doc.text, term); count > 0 {
				tf := float64(count) / float64(totalTokens)
				score += tf * idf[term]
			}
		}
		if strings.Contains(loweredTitle, term) {
			score += titleBonus
		}
	}
	return score
}

// recencyWeight decays 0.95 per 30 days of age, floored at 0.5.
// Documents without a timestamp carry full weight.
func recencyWeight(createdAt, now time.Time) float64 {
	if createdAt.IsZero() {
		return 1.0
	}
	ageDays := now.Sub(createdAt).Hours() / 24
	return math.Max(0.5, math.Pow(0.95, ageDays/30))
}

func matchedTerms(terms []string, text string) []string {
	matched := make([]string, 0, len(terms))
	seen := make(map[string]struct{}, len(terms))
	for _, term := range terms {
		if _, dup := seen[term]; dup {
			continue
		}
		seen[term] = struct{}{}
		if strings.Contains(text, term) {
			matched = append(matched, term)
		}
	}
	if len(matched) == 0 {
		return nil
	}
	return matched
}
