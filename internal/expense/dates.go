package expense

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

var (
	isoDatePattern   = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	shortDatePattern = regexp.MustCompile(`^(\d{1,2})[/-](\d{1,2})$`)
	relativePattern  = regexp.MustCompile(`^(\d+)\s+days?\s+ago$`)
)

// ResolveDate parses the date shorthand grammar used after @ in expense
// lines. Supported forms: today, yesterday, tomorrow, YYYY-MM-DD, M/D or
// M-D against the current year, and "N day(s) ago". Any other token fails
// with ok=false; that outcome is recoverable, not an error.
func ResolveDate(token string, now time.Time) (time.Time, bool) {
	normalized := strings.ToLower(strings.TrimSpace(token))
	if normalized == "" {
		return time.Time{}, false
	}

	day := startOfDay(now)
	switch normalized {
	case "today":
		return day, true
	case "yesterday":
		return day.AddDate(0, 0, -1), true
	case "tomorrow":
		return day.AddDate(0, 0, 1), true
	}

	if isoDatePattern.MatchString(normalized) {
		parsed, err := dateparse.ParseAny(normalized)
		if err != nil {
			return time.Time{}, false
		}
		return time.Date(parsed.Year(), parsed.Month(), parsed.Day(), 0, 0, 0, 0, now.Location()), true
	}

	if sub := shortDatePattern.FindStringSubmatch(normalized); sub != nil {
		month, _ := strconv.Atoi(sub[1])
		dayNum, _ := strconv.Atoi(sub[2])
		if month < 1 || month > 12 || dayNum < 1 || dayNum > 31 {
			return time.Time{}, false
		}
		return time.Date(now.Year(), time.Month(month), dayNum, 0, 0, 0, 0, now.Location()), true
	}

	if sub := relativePattern.FindStringSubmatch(normalized); sub != nil {
		n, err := strconv.Atoi(sub[1])
		if err != nil {
			return time.Time{}, false
		}
		return day.AddDate(0, 0, -n), true
	}

	return time.Time{}, false
}

// FormatDate renders a resolved date for storage as zero-padded YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format("2006-01-02")
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
