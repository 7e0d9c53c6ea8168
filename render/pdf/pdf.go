// Package pdf renders books as paginated A4 PDFs: the question directory
// first, then one page run per artifact.
package pdf

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/go-pdf/fpdf"

	"github.com/rateyu/chat-txt2pdf/core"
)

// Layout constants; sizes in points, margins in millimetres.
const (
	marginMM      = 20
	titleSize     = 20
	headingSize   = 14
	normalSize    = 10
	textSize      = 9
	titleLead     = 9.0
	headingLead   = 6.5
	normalLead    = 5.0
	textLead      = 4.2
	blankLineLead = 2.0
)

const noQuestions = "（没有找到任何问题索引）"

// Renderer renders a book to PDF.
type Renderer struct {
	// FontPath points at a TTF with CJK coverage (e.g. a Noto Sans CJK
	// file). When empty, the built-in Helvetica is used — the document
	// still builds, but CJK text will not display correctly.
	FontPath string
}

// New creates a PDF Renderer.
func New() *Renderer {
	return &Renderer{}
}

// Render writes the book as a PDF document to w.
func (r *Renderer) Render(w io.Writer, b *core.Book) error {
	doc := fpdf.New("P", "mm", "A4", "")
	doc.SetMargins(marginMM, marginMM, marginMM)
	doc.SetAutoPageBreak(true, marginMM)

	font := "Helvetica"
	if r.FontPath != "" {
		doc.AddUTF8Font("bookfont", "", r.FontPath)
		font = "bookfont"
	}

	// Question directory.
	doc.AddPage()
	doc.SetFont(font, "", titleSize)
	doc.MultiCell(0, titleLead, b.Title, "", "L", false)
	doc.Ln(4)

	doc.SetFont(font, "", normalSize)
	if len(b.Questions) == 0 {
		doc.MultiCell(0, normalLead, noQuestions, "", "L", false)
	}
	for i, q := range b.Questions {
		entry := fmt.Sprintf("%d. %s（来自：%s）", i+1, q.Text, q.Source)
		doc.MultiCell(0, normalLead, entry, "", "L", false)
		doc.Ln(1)
	}

	// Full content, one page run per artifact.
	for _, f := range b.Files {
		doc.AddPage()
		doc.SetFont(font, "", headingSize)
		doc.MultiCell(0, headingLead, "文件："+filepath.Base(f.Rel), "", "L", false)
		doc.Ln(2)

		doc.SetFont(font, "", textSize)
		for _, line := range strings.Split(f.Content, "\n") {
			if strings.TrimSpace(line) == "" {
				doc.Ln(blankLineLead)
				continue
			}
			doc.MultiCell(0, textLead, line, "", "L", false)
		}
	}

	return doc.Output(w)
}
