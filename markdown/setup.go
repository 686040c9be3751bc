package markdown

import (
	"bytes"
	"fmt"
	"sync"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/styles"
)

// setup holds the highlight stylesheet built once per process.
var setup struct {
	once sync.Once
	css  []byte
	err  error
}

// Setup builds the syntax-highlighting stylesheet for style. Call it once
// during bootstrap; later calls are no-ops and return the first result.
func Setup(style string) error {
	setup.once.Do(func() {
		if style == "" {
			style = DefaultStyle
		}
		var buf bytes.Buffer
		formatter := chromahtml.New(chromahtml.WithClasses(true))
		if err := formatter.WriteCSS(&buf, styles.Get(style)); err != nil {
			setup.err = fmt.Errorf("markdown: build %s stylesheet: %w", style, err)
			return
		}
		setup.css = buf.Bytes()
	})
	return setup.err
}

// Stylesheet returns the CSS produced by Setup, or nil before Setup ran.
func Stylesheet() []byte {
	return setup.css
}
