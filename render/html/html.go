// Package html renders books as standalone paginated HTML pages. CSS page
// breaks keep the print layout aligned with the PDF backend, and template
// escaping guards the markup against content characters.
package html

import (
	"embed"
	"html/template"
	"io"
	"path/filepath"
	"strings"

	"github.com/rateyu/chat-txt2pdf/core"
)

//go:embed templates/*.html
var content embed.FS

// Renderer renders a book to a single HTML page.
type Renderer struct {
	tmpl *template.Template
}

// New creates an HTML Renderer with the embedded page template.
func New() *Renderer {
	tmpl := template.Must(
		template.New("book.html").
			Funcs(funcMap()).
			ParseFS(content, "templates/*.html"),
	)
	return &Renderer{tmpl: tmpl}
}

func funcMap() template.FuncMap {
	return template.FuncMap{
		"base":  filepath.Base,
		"lines": func(s string) []string { return strings.Split(s, "\n") },
	}
}

// Render writes the book as a complete HTML page to w.
func (r *Renderer) Render(w io.Writer, b *core.Book) error {
	return r.tmpl.ExecuteTemplate(w, "book.html", b)
}
