package textutil

import (
	"reflect"
	"testing"
)

func TestStripRemovesTags(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain text untouched", "$25 Lunch [Food]", "$25 Lunch [Food]"},
		{"wrapping paragraph", "<p>$25 Lunch [Food]</p>", "$25 Lunch [Food]"},
		{"tag boundaries collapse to nothing", "<p>a</p><p>b</p>", "ab"},
		{"nested inline tags", "<div><strong>bold</strong> text</div>", "bold text"},
		{"entities decoded", "a &amp; b &lt;c&gt;", "a & b <c>"},
		{"empty input", "", ""},
		{"attributes discarded", `<span class="x" data-y="z">inner</span>`, "inner"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Strip(tt.in); got != tt.want {
				t.Fatalf("Strip(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestStripIsIdempotentForPlainOutput(t *testing.T) {
	in := "<p>note <em>content</em> here</p>"
	once := Strip(in)
	twice := Strip(once)
	if once != twice {
		t.Fatalf("expected stable output, got %q then %q", once, twice)
	}
}

func TestTokens(t *testing.T) {
	got := Tokens("  The Coffee\nat the  Cafe ")
	want := []string{"the", "coffee", "at", "the", "cafe"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Tokens returned %#v, want %#v", got, want)
	}

	if toks := Tokens(""); len(toks) != 0 {
		t.Fatalf("expected no tokens for empty input, got %#v", toks)
	}
}
