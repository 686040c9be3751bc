package markdown

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestRenderInline(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"**bold**", "<strong>bold</strong>"},
		{"__bold__", "<strong>bold</strong>"},
		{"*italic*", "<em>italic</em>"},
		{"`code`", "<code>code</code>"},
		{"[link](https://example.com)", `<a href="https://example.com"`},
	}
	r := New(Options{})
	for _, tt := range tests {
		got, err := r.Render(context.Background(), tt.input)
		if err != nil {
			t.Fatalf("Render(%q) error: %v", tt.input, err)
		}
		if !strings.Contains(string(got), tt.expected) {
			t.Errorf("Render(%q) = %q, want it to contain %q", tt.input, got, tt.expected)
		}
	}
}

func TestRenderBlocks(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{"heading with id", "## Hello World", []string{`<h2 id="hello-world">Hello World</h2>`}},
		{"list", "- one\n- two", []string{"<ul>", "<li>one</li>", "<li>two</li>"}},
		{"table", "| a | b |\n|---|---|\n| 1 | 2 |", []string{"<table>", "<th>a</th>", "<td>2</td>"}},
		{"quote", "> quoted", []string{"<blockquote>"}},
		{"paragraphs", "one\n\ntwo", []string{"<p>one</p>", "<p>two</p>"}},
	}
	r := New(Options{})
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := r.Render(context.Background(), tt.input)
			if err != nil {
				t.Fatalf("Render error: %v", err)
			}
			for _, want := range tt.expected {
				if !strings.Contains(string(got), want) {
					t.Errorf("Render(%q) = %q, want it to contain %q", tt.input, got, want)
				}
			}
		})
	}
}

func TestRenderHighlightsFencedCode(t *testing.T) {
	r := New(Options{})
	got, err := r.Render(context.Background(), "```go\nfunc main() {}\n```")
	if err != nil {
		t.Fatalf("Render error: %v", err)
	}
	if !strings.Contains(string(got), `class="chroma"`) {
		t.Errorf("expected chroma classes to survive sanitising, got %q", got)
	}
	if !strings.Contains(string(got), "main") {
		t.Errorf("expected code text in output, got %q", got)
	}
}

func TestRenderDropsUnsafeMarkup(t *testing.T) {
	tests := []struct {
		input     string
		forbidden string
	}{
		{"<script>alert(1)</script>", "<script"},
		{"[x](javascript:alert(1))", "javascript:"},
		{`<img src="x" onerror="alert(1)">`, "onerror"},
	}
	r := New(Options{})
	for _, tt := range tests {
		got, err := r.Render(context.Background(), tt.input)
		if err != nil {
			t.Fatalf("Render(%q) error: %v", tt.input, err)
		}
		if strings.Contains(string(got), tt.forbidden) {
			t.Errorf("Render(%q) = %q, should not contain %q", tt.input, got, tt.forbidden)
		}
	}
}

func TestRenderEmptyBody(t *testing.T) {
	got, err := New(Options{}).Render(context.Background(), "")
	if err != nil {
		t.Fatalf("Render error: %v", err)
	}
	if strings.TrimSpace(string(got)) != "" {
		t.Errorf("Render(\"\") = %q, want empty", got)
	}
}

func TestRenderCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	got, err := New(Options{}).Render(ctx, "**bold**")
	if !errors.Is(err, ErrConversion) {
		t.Fatalf("expected ErrConversion, got %v", err)
	}
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled in chain, got %v", err)
	}
	if got != "" {
		t.Errorf("expected no HTML on failure, got %q", got)
	}
}

func TestSetupIsIdempotent(t *testing.T) {
	if err := Setup("monokai"); err != nil {
		t.Fatalf("Setup error: %v", err)
	}
	first := Stylesheet()
	if len(first) == 0 || !strings.Contains(string(first), ".chroma") {
		t.Fatalf("expected chroma stylesheet, got %q", first)
	}
	if err := Setup("github"); err != nil {
		t.Fatalf("second Setup error: %v", err)
	}
	if string(Stylesheet()) != string(first) {
		t.Error("second Setup call should not rebuild the stylesheet")
	}
}
