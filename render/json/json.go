// Package json renders the assembled book as JSON, for machine consumption.
package json

import (
	"encoding/json"
	"io"

	"github.com/rateyu/chat-txt2pdf/core"
)

// Renderer renders a book to JSON.
type Renderer struct {
	// Indent controls pretty-printing. When true, output is indented.
	Indent bool
}

// New creates a JSON Renderer with indentation enabled.
func New() *Renderer {
	return &Renderer{Indent: true}
}

// Render writes the book as JSON to w.
func (r *Renderer) Render(w io.Writer, b *core.Book) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if r.Indent {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(b)
}
