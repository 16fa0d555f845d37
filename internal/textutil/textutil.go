package textutil

import (
	"strings"

	"golang.org/x/net/html"
)

// Strip removes markup tags from raw and returns the plain text content.
// Entities are decoded and tag boundaries collapse to nothing, so
// "<p>a</p><p>b</p>" yields "ab". Empty input yields the empty string.
func Strip(raw string) string {
	if raw == "" {
		return ""
	}
	if !strings.ContainsAny(raw, "<&") {
		return raw
	}

	tokenizer := html.NewTokenizer(strings.NewReader(raw))
	var b strings.Builder
	for {
		switch tokenizer.Next() {
		case html.ErrorToken:
			// io.EOF is the only error a string reader can produce.
			return b.String()
		case html.TextToken:
			b.Write(tokenizer.Text())
		}
	}
}

// Tokens lower-cases text and splits it into whitespace-separated tokens.
func Tokens(text string) []string {
	return strings.Fields(strings.ToLower(text))
}
