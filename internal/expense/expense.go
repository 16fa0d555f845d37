package expense

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/notesmith/notesmith/internal/textutil"
)

// FormatBracket identifies the bracket-delimited expense grammar.
const FormatBracket = "bracket"

// Expense is one monetary line-item extracted from note text.
type Expense struct {
	Amount      float64
	Description string
	// Category is either a member of the closed vocabulary (original
	// casing preserved, Valid true) or FallbackCategory (Valid false).
	Category string
	Valid    bool
	// Date is nil when no date token was present or the token failed to
	// parse; RawDate retains the token text either way for diagnostics.
	Date    *time.Time
	RawDate string
	// Offset is the match's starting offset in the normalized text.
	Offset int
	Format string
}

// Span locates a detected expense in the normalized text so callers can
// decide what to highlight.
type Span struct {
	Start int
	End   int
	Valid bool
}

// expensePattern recognizes "$amount description [Category]" with an
// optional trailing "@date" token. A bare dollar amount with no bracketed
// category never matches; that keeps incidental dollar mentions in prose
// out of the results.
var expensePattern = regexp.MustCompile(
	`\$(\d+(?:\.\d{1,2})?)\s*([^$\[\n]+?)\s*\[([^\]\n]+)\](?:[ \t]*@(\d+[ \t]+days?[ \t]+ago|[^\s$\[]+))?`,
)

// Parse extracts expenses from text in left-to-right order of appearance.
// Input is normalized first, so markup-wrapped text is fine. Matches with
// non-positive amounts or empty descriptions are dropped silently. The
// reference time resolves relative date tokens.
func Parse(text string, now time.Time) []Expense {
	if text == "" {
		return nil
	}

	normalized := textutil.Strip(text)
	matches := expensePattern.FindAllStringSubmatchIndex(normalized, -1)
	if len(matches) == 0 {
		return nil
	}

	expenses := make([]Expense, 0, len(matches))
	for _, m := range matches {
		amount, err := strconv.ParseFloat(group(normalized, m, 1), 64)
		if err != nil || amount <= 0 {
			continue
		}

		description := strings.TrimSpace(group(normalized, m, 2))
		if description == "" {
			continue
		}

		category, valid := NormalizeCategory(group(normalized, m, 3))

		exp := Expense{
			Amount:      amount,
			Description: description,
			Category:    category,
			Valid:       valid,
			Offset:      m[0],
			Format:      FormatBracket,
		}

		if raw := group(normalized, m, 4); raw != "" {
			exp.RawDate = raw
			if resolved, ok := ResolveDate(raw, now); ok {
				exp.Date = &resolved
			}
		}

		expenses = append(expenses, exp)
	}

	if len(expenses) == 0 {
		return nil
	}
	return expenses
}

// Spans reports the location of each extracted expense in the normalized
// text, in match order.
func Spans(text string, now time.Time) []Span {
	if text == "" {
		return nil
	}

	normalized := textutil.Strip(text)
	matches := expensePattern.FindAllStringSubmatchIndex(normalized, -1)
	spans := make([]Span, 0, len(matches))
	for _, m := range matches {
		amount, err := strconv.ParseFloat(group(normalized, m, 1), 64)
		if err != nil || amount <= 0 {
			continue
		}
		if strings.TrimSpace(group(normalized, m, 2)) == "" {
			continue
		}
		_, valid := NormalizeCategory(group(normalized, m, 3))
		spans = append(spans, Span{Start: m[0], End: m[1], Valid: valid})
	}
	if len(spans) == 0 {
		return nil
	}
	return spans
}

func group(s string, match []int, n int) string {
	start, end := match[2*n], match[2*n+1]
	if start < 0 {
		return ""
	}
	return s[start:end]
}
