package expense

import (
	"reflect"
	"testing"
	"time"
)

var testNow = time.Date(2025, time.November, 12, 15, 30, 0, 0, time.UTC)

func TestParseSingleBracketExpense(t *testing.T) {
	expenses := Parse("$25 Lunch [Food]", testNow)

	if len(expenses) != 1 {
		t.Fatalf("expected one expense, got %#v", expenses)
	}
	got := expenses[0]
	if got.Amount != 25 {
		t.Errorf("amount = %v, want 25", got.Amount)
	}
	if got.Description != "Lunch" {
		t.Errorf("description = %q, want %q", got.Description, "Lunch")
	}
	if got.Category != "Food" || !got.Valid {
		t.Errorf("category = %q valid=%v, want Food/true", got.Category, got.Valid)
	}
	if got.Date != nil || got.RawDate != "" {
		t.Errorf("expected no date, got %v (%q)", got.Date, got.RawDate)
	}
	if got.Format != FormatBracket {
		t.Errorf("format = %q, want %q", got.Format, FormatBracket)
	}
}

func TestParseMultipleExpenses(t *testing.T) {
	expenses := Parse("$25 Lunch [Food] and $100 Software License [Software]", testNow)

	if len(expenses) != 2 {
		t.Fatalf("expected two expenses, got %#v", expenses)
	}
	if expenses[0].Amount != 25 || expenses[1].Amount != 100 {
		t.Fatalf("amounts = %v, %v", expenses[0].Amount, expenses[1].Amount)
	}
	if expenses[0].Offset >= expenses[1].Offset {
		t.Fatalf("expected left-to-right offsets, got %d then %d", expenses[0].Offset, expenses[1].Offset)
	}
}

func TestParseDecimalAmount(t *testing.T) {
	expenses := Parse("$12.50 Coffee [Food]", testNow)
	if len(expenses) != 1 || expenses[0].Amount != 12.50 {
		t.Fatalf("expected amount 12.50, got %#v", expenses)
	}
}

func TestParseIgnoresBareDollarAmounts(t *testing.T) {
	expenses := Parse("I have $100 in my wallet and $250 Coffee [Food]", testNow)

	if len(expenses) != 1 {
		t.Fatalf("expected exactly one expense, got %#v", expenses)
	}
	if expenses[0].Description != "Coffee" {
		t.Fatalf("description = %q, want Coffee", expenses[0].Description)
	}
}

func TestParseInvalidCategoryFallsBackToOther(t *testing.T) {
	expenses := Parse("$50 Random Thing [InvalidCategory]", testNow)

	if len(expenses) != 1 {
		t.Fatalf("expected one expense, got %#v", expenses)
	}
	if expenses[0].Category != "Other" || expenses[0].Valid {
		t.Fatalf("category = %q valid=%v, want Other/false", expenses[0].Category, expenses[0].Valid)
	}
}

func TestParsePreservesValidCategoryCasing(t *testing.T) {
	expenses := Parse("$25 Lunch [FOOD]", testNow)

	if len(expenses) != 1 {
		t.Fatalf("expected one expense, got %#v", expenses)
	}
	if expenses[0].Category != "FOOD" || !expenses[0].Valid {
		t.Fatalf("category = %q valid=%v, want FOOD/true", expenses[0].Category, expenses[0].Valid)
	}
}

func TestParseStripsMarkup(t *testing.T) {
	expenses := Parse("<p>$25 Lunch [Food]</p>", testNow)

	if len(expenses) != 1 || expenses[0].Description != "Lunch" {
		t.Fatalf("expected Lunch from markup-wrapped input, got %#v", expenses)
	}
	if expenses[0].Offset != 0 {
		t.Fatalf("offset should be relative to normalized text, got %d", expenses[0].Offset)
	}
}

func TestParseRejectsNonPositiveAmounts(t *testing.T) {
	if expenses := Parse("$0 Free Thing [Other]", testNow); len(expenses) != 0 {
		t.Fatalf("expected zero expenses for $0, got %#v", expenses)
	}
}

func TestParseEmptyInput(t *testing.T) {
	if expenses := Parse("", testNow); expenses != nil {
		t.Fatalf("expected nil for empty input, got %#v", expenses)
	}
}

func TestParseMultiWordDescription(t *testing.T) {
	expenses := Parse("$250 Adobe Creative Cloud License [Software]", testNow)
	if len(expenses) != 1 || expenses[0].Description != "Adobe Creative Cloud License" {
		t.Fatalf("got %#v", expenses)
	}
}

func TestParseAllValidCategories(t *testing.T) {
	for _, cat := range Categories() {
		expenses := Parse("$10 Test ["+cat+"]", testNow)
		if len(expenses) != 1 || !expenses[0].Valid {
			t.Fatalf("category %q should be valid, got %#v", cat, expenses)
		}
	}
}

func TestParseIsPure(t *testing.T) {
	text := "$25 Lunch [Food] @yesterday and $9.99 App [Software]"
	first := Parse(text, testNow)
	second := Parse(text, testNow)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("repeated calls disagree: %#v vs %#v", first, second)
	}
}

func TestParseDateTokens(t *testing.T) {
	yesterday := time.Date(2025, time.November, 11, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		text     string
		rawDate  string
		wantDate *time.Time
	}{
		{"yesterday", "$25 Lunch [Food] @yesterday", "yesterday", &yesterday},
		{"iso", "$50 Transport [Transport] @2025-11-10", "2025-11-10",
			timePtr(time.Date(2025, time.November, 10, 0, 0, 0, 0, time.UTC))},
		{"short slash", "$45 Coffee [Food] @11/10", "11/10",
			timePtr(time.Date(2025, time.November, 10, 0, 0, 0, 0, time.UTC))},
		{"relative days", "$75 Groceries [Food] @5 days ago", "5 days ago",
			timePtr(time.Date(2025, time.November, 7, 0, 0, 0, 0, time.UTC))},
		{"unparseable token retained", "$25 Lunch [Food] @invalid-date", "invalid-date", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expenses := Parse(tt.text, testNow)
			if len(expenses) != 1 {
				t.Fatalf("expected one expense, got %#v", expenses)
			}
			got := expenses[0]
			if got.RawDate != tt.rawDate {
				t.Errorf("raw date = %q, want %q", got.RawDate, tt.rawDate)
			}
			if tt.wantDate == nil {
				if got.Date != nil {
					t.Errorf("expected nil date, got %v", got.Date)
				}
				return
			}
			if got.Date == nil || !got.Date.Equal(*tt.wantDate) {
				t.Errorf("date = %v, want %v", got.Date, tt.wantDate)
			}
		})
	}
}

func TestParseMixedDateTokens(t *testing.T) {
	text := "$25 Lunch [Food] @yesterday and $100 Software [Software] @2025-10-15 and $50 Transport [Transport]"
	expenses := Parse(text, testNow)

	if len(expenses) != 3 {
		t.Fatalf("expected three expenses, got %#v", expenses)
	}
	if expenses[0].RawDate != "yesterday" {
		t.Errorf("first raw date = %q", expenses[0].RawDate)
	}
	if expenses[1].RawDate != "2025-10-15" {
		t.Errorf("second raw date = %q", expenses[1].RawDate)
	}
	if expenses[2].RawDate != "" || expenses[2].Date != nil {
		t.Errorf("third expense should carry no date, got %#v", expenses[2])
	}
}

func TestSpans(t *testing.T) {
	text := "prose first $25 Lunch [Food] more prose $5 Snack [Nope]"
	spans := Spans(text, testNow)

	if len(spans) != 2 {
		t.Fatalf("expected two spans, got %#v", spans)
	}
	if text[spans[0].Start:spans[0].End] != "$25 Lunch [Food]" {
		t.Errorf("first span covers %q", text[spans[0].Start:spans[0].End])
	}
	if !spans[0].Valid || spans[1].Valid {
		t.Errorf("validity flags = %v, %v", spans[0].Valid, spans[1].Valid)
	}
}
func timePtr(t time.Time) *time.Time { return &t }
