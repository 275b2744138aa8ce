package markdown

import (
	"testing"
)

func TestDeriveTitle(t *testing.T) {
	tests := []struct {
		name      string
		content   string
		wantTitle string
		wantNil   bool
	}{
		{
			name:      "simple heading",
			content:   "# Hello World",
			wantTitle: "Hello World",
		},
		{
			name:      "heading after body text",
			content:   "Text before\n# Not a title\n\n# Actual Title",
			wantTitle: "Not a title",
		},
		{
			name:      "heading with surrounding whitespace",
			content:   "   #  Indented Title   \nbody",
			wantTitle: "Indented Title",
		},
		{
			name:    "subtitle only",
			content: "## Subtitle\nmore text",
			wantNil: true,
		},
		{
			name:    "deeper headings never match",
			content: "### One\n#### Two",
			wantNil: true,
		},
		{
			name:    "bare hash without space",
			content: "#NoSpace\n#",
			wantNil: true,
		},
		{
			name:      "first matching line wins",
			content:   "## Sub\n# First\n# Second",
			wantTitle: "First",
		},
		{
			name:    "empty content",
			content: "",
			wantNil: true,
		},
		{
			name:    "no headings at all",
			content: "just some\nplain text",
			wantNil: true,
		},
		{
			name:      "heading on last line",
			content:   "a\nb\n# Tail",
			wantTitle: "Tail",
		},
		{
			name:      "unicode heading",
			content:   "# Café Notes ☕",
			wantTitle: "Café Notes ☕",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DeriveTitle(tt.content)

			if tt.wantNil {
				if got != nil {
					t.Errorf("DeriveTitle() = %q, want nil", *got)
				}
				return
			}

			if got == nil {
				t.Fatalf("DeriveTitle() = nil, want %q", tt.wantTitle)
			}
			if *got != tt.wantTitle {
				t.Errorf("DeriveTitle() = %q, want %q", *got, tt.wantTitle)
			}
		})
	}
}

func TestPreview(t *testing.T) {
	long := ""
	for i := 0; i < 150; i++ {
		long += "x"
	}

	tests := []struct {
		name    string
		content string
		want    string
	}{
		{
			name:    "short content unchanged",
			content: "short note",
			want:    "short note",
		},
		{
			name:    "exactly at limit unchanged",
			content: long[:100],
			want:    long[:100],
		},
		{
			name:    "truncated with ellipsis",
			content: long,
			want:    long[:100] + "...",
		},
		{
			name:    "empty content",
			content: "",
			want:    "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Preview(tt.content); got != tt.want {
				t.Errorf("Preview() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPreviewCountsRunes(t *testing.T) {
	content := ""
	for i := 0; i < 120; i++ {
		content += "é"
	}

	got := Preview(content)
	runes := []rune(got)
	if len(runes) != PreviewLength+3 {
		t.Errorf("preview rune length = %d, want %d", len(runes), PreviewLength+3)
	}
	for _, r := range runes[:PreviewLength] {
		if r != 'é' {
			t.Fatalf("multi-byte rune was split, got %q", r)
		}
	}
}
