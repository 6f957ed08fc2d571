package main

import (
	"strings"
	"testing"
)

func TestRowMarkdown(t *testing.T) {
	md := RowMarkdown(Columns(2), Row{"1", "a|b", "0.5", ""})

	want := `| column | value |
| --- | --- |
| run | 1 |
| type | a\|b |
| entropy_0 | 0.5 |
| entropy_1 | _(empty)_ |
`
	if md != want {
		t.Errorf("RowMarkdown() =\n%s\nwant\n%s", md, want)
	}
}

func TestEscapeMarkdownCell(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "plain", want: "plain"},
		{in: "a|b", want: `a\|b`},
		{in: "two\nlines", want: "two lines"},
		{in: `back\slash`, want: `back\\slash`},
	}

	for _, tt := range tests {
		if got := escapeMarkdownCell(tt.in); got != tt.want {
			t.Errorf("escapeMarkdownCell(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestRenderRowDetail(t *testing.T) {
	detail := stripAnsi(RenderRowDetail(Columns(1), Row{"7", "won", "0.25"}, 6, 60))

	if !strings.Contains(detail, "Record 7") {
		t.Errorf("Expected header naming the record, got %q", detail)
	}
	for _, want := range []string{"run", "won", "entropy_0", "0.25"} {
		if !strings.Contains(detail, want) {
			t.Errorf("Expected detail to contain %q, got %q", want, detail)
		}
	}
}

func TestRenderRowDetailNarrow(t *testing.T) {
	detail := stripAnsi(RenderRowDetail(Columns(0), Row{"1", "lost"}, 0, 10))

	// Narrow panes fall back to plain text
	if !strings.Contains(detail, "type:") || !strings.Contains(detail, "lost") {
		t.Errorf("Expected plain fallback text, got %q", detail)
	}
}
