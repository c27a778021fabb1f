package markdown

import (
	"strings"
	"testing"
)

func TestToHTML(t *testing.T) {
	tests := []struct {
		name   string
		source string
		want   string
	}{
		{
			name:   "paragraph",
			source: "I build web things.",
			want:   "<p>I build web things.</p>",
		},
		{
			name:   "heading gets anchor id",
			source: "## Early Days",
			want:   `<h2 id="early-days">`,
		},
		{
			name:   "gfm strikethrough",
			source: "~~PHP~~ Go",
			want:   "<del>PHP</del>",
		},
		{
			name:   "raw html passes through",
			source: `<span class="badge">2021</span>`,
			want:   `<span class="badge">2021</span>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ToHTML(tt.source)
			if err != nil {
				t.Fatalf("ToHTML: %v", err)
			}
			if !strings.Contains(got, tt.want) {
				t.Errorf("got %q, want it to contain %q", got, tt.want)
			}
		})
	}
}

func TestToHTMLFencedCodeHighlighting(t *testing.T) {
	got, err := ToHTML("```go\nfunc main() {}\n```")
	if err != nil {
		t.Fatalf("ToHTML: %v", err)
	}
	// The highlighter emits inline-styled pre blocks instead of bare <pre><code>.
	if !strings.Contains(got, "<pre") || !strings.Contains(got, "style=") {
		t.Errorf("expected highlighted code block, got %q", got)
	}
}
