package markdown

import "testing"

func TestPlainText(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"<p>Hello <strong>world</strong></p>", "Hello world"},
		{"<h1>Title</h1>\n<p>Body   text</p>", "Title Body text"},
		{"<p>before</p><pre><code>skipped()</code></pre><p>after</p>", "before after"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := PlainText(tt.input); got != tt.expected {
			t.Errorf("PlainText(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestExcerpt(t *testing.T) {
	tests := []struct {
		input    string
		limit    int
		expected string
	}{
		{"<p>short</p>", 20, "short"},
		{"<p>one two three four</p>", 10, "one two…"},
		{"<p>one two three</p>", 0, "one two three"},
	}
	for _, tt := range tests {
		if got := Excerpt(tt.input, tt.limit); got != tt.expected {
			t.Errorf("Excerpt(%q, %d) = %q, want %q", tt.input, tt.limit, got, tt.expected)
		}
	}
}
