package markdown

import (
	"fmt"

	"github.com/charmbracelet/glamour"
)

// Terminal renders Markdown for display in a terminal using the named glamour
// style ("dark", "light", "dracula", "notty" ...).
func Terminal(source, style string, width int) (string, error) {
	if style == "" {
		style = "dark"
	}
	if width <= 0 {
		width = 80
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", fmt.Errorf("markdown: create terminal renderer: %w", err)
	}
	out, err := r.Render(source)
	if err != nil {
		return "", fmt.Errorf("markdown: render for terminal: %w", err)
	}
	return out, nil
}
