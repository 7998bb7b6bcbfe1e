// Package markdown renders page bodies to HTML through goldmark.
package markdown

import (
	"bytes"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// Renderer converts markdown text into HTML with the footnote,
// strikethrough, table and task-list extensions enabled. The engine is built
// once and is stateless, so a single Renderer can be shared across calls
// without locking.
type Renderer struct {
	engine goldmark.Markdown
}

// New constructs a renderer with the fixed extension set.
func New() *Renderer {
	return &Renderer{
		engine: goldmark.New(
			goldmark.WithExtensions(
				extension.Footnote,
				extension.Strikethrough,
				extension.Table,
				extension.TaskList,
			),
		),
	}
}

// Render converts text to HTML.
func (r *Renderer) Render(text string) string {
	var buf bytes.Buffer
	// Convert only fails on writer errors, which bytes.Buffer never produces.
	_ = r.engine.Convert([]byte(text), &buf)
	return buf.String()
}
