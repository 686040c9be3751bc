// Package markdown converts post bodies from Markdown to HTML that is safe to
// embed in a page.
package markdown

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"
	"regexp"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
)

// ErrConversion wraps every failure returned by Renderer.Render.
var ErrConversion = errors.New("markdown: conversion failed")

// DefaultStyle is the chroma style used when none is configured.
const DefaultStyle = "monokai"

var reClassName = regexp.MustCompile(`^[a-zA-Z0-9\s_-]+$`)

// Options configures a Renderer.
type Options struct {
	HighlightStyle  string // chroma style name (default DefaultStyle)
	DisableSanitize bool   // skip the HTML allow-list pass
}

// Renderer turns Markdown into HTML. It holds no per-render state and can be
// shared between requests.
type Renderer struct {
	md       goldmark.Markdown
	policy   *bluemonday.Policy
	sanitize bool
}

// New builds a Renderer with GitHub-flavoured Markdown, heading IDs and
// class-based syntax highlighting.
func New(opts Options) *Renderer {
	style := opts.HighlightStyle
	if style == "" {
		style = DefaultStyle
	}
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			highlighting.NewHighlighting(
				highlighting.WithStyle(style),
				highlighting.WithFormatOptions(chromahtml.WithClasses(true)),
			),
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
	)

	policy := bluemonday.UGCPolicy()
	// chroma emits class names on these; keep them so highlight.css applies.
	policy.AllowAttrs("class").Matching(reClassName).OnElements("pre", "code", "span", "div")

	return &Renderer{
		md:       md,
		policy:   policy,
		sanitize: !opts.DisableSanitize,
	}
}

// Render converts source to HTML. The returned error wraps ErrConversion; on
// error the HTML is empty and must not be shown.
func (r *Renderer) Render(ctx context.Context, source string) (template.HTML, error) {
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("%w: %w", ErrConversion, err)
	}
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(source), &buf); err != nil {
		return "", fmt.Errorf("%w: %w", ErrConversion, err)
	}
	out := buf.Bytes()
	if r.sanitize {
		out = r.policy.SanitizeBytes(out)
	}
	return template.HTML(out), nil
}
