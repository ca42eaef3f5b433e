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
		{"paragraph", "Checks run every minute.", "<p>Checks run every minute.</p>"},
		{"emphasis", "On the **Pro** plan.", "<strong>Pro</strong>"},
		{"link", "See [pricing](#pricing).", `<a href="#pricing">pricing</a>`},
		{"autolink", "Mail support@example.com today.", `<a href="mailto:support@example.com">`},
		{"strikethrough", "~~$39~~ $29", "<del>$39</del>"},
		{"typographer", `It's "live"`, "It&rsquo;s &ldquo;live&rdquo;"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ToHTML(tt.source)
			if err != nil {
				t.Fatalf("ToHTML(%q) error: %v", tt.source, err)
			}
			if !strings.Contains(got, tt.want) {
				t.Errorf("ToHTML(%q) = %q, want it to contain %q", tt.source, got, tt.want)
			}
		})
	}
}

func TestToHTMLOmitsRawHTML(t *testing.T) {
	tests := []struct {
		name   string
		source string
	}{
		{"block", "<script>alert(1)</script>"},
		{"inline", "Pay <b onclick=\"steal()\">now</b>."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ToHTML(tt.source)
			if err != nil {
				t.Fatalf("ToHTML error: %v", err)
			}
			if strings.Contains(got, "<script>") || strings.Contains(got, "onclick") {
				t.Errorf("raw HTML should not pass through: %q", got)
			}
			if strings.Contains(got, "&lt;") {
				t.Errorf("raw HTML should be dropped, not escaped: %q", got)
			}
			if !strings.Contains(got, "raw HTML omitted") {
				t.Errorf("expected goldmark omission marker: %q", got)
			}
		})
	}
}

func TestParagraph(t *testing.T) {
	if got := Paragraph("Yes."); strings.TrimSpace(got) != "<p>Yes.</p>" {
		t.Errorf("Paragraph = %q", got)
	}
}
