// Package render defines the interface for rendering an assembled book
// into a concrete document format.
package render

import (
	"io"

	"github.com/rateyu/chat-txt2pdf/core"
)

// Renderer writes a book to the given writer in a specific format.
type Renderer interface {
	Render(w io.Writer, b *core.Book) error
}
