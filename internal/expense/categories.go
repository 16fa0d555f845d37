package expense

import "strings"

// FallbackCategory is recorded for category tokens outside the closed set.
const FallbackCategory = "Other"

// validCategories is the closed category vocabulary. Matching is
// case-insensitive; the set itself is fixed at compile time.
var validCategories = [...]string{
	"Food", "Transport", "Software", "Marketing", "Services",
	"Entertainment", "Health", "Education", "Utilities", "Other",
}

// NormalizeCategory validates token against the category vocabulary.
// On a valid match the token's original casing is returned alongside true;
// otherwise FallbackCategory and false.
func NormalizeCategory(token string) (string, bool) {
	trimmed := strings.TrimSpace(token)
	for _, cat := range validCategories {
		if strings.EqualFold(cat, trimmed) {
			return trimmed, true
		}
	}
	return FallbackCategory, false
}

// Categories returns a copy of the category vocabulary.
func Categories() []string {
	return append([]string(nil), validCategories[:]...)
}
