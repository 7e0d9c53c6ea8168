// Package terminal pretty-prints a parsed log as ANSI message cards, used
// to preview what a conversion will produce before artifacts are written.
package terminal

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/term"

	"github.com/rateyu/chat-txt2pdf/artifact"
	"github.com/rateyu/chat-txt2pdf/core"
)

const defaultWidth = 100

// Renderer pretty-prints messages to the terminal.
type Renderer struct {
	// Width overrides terminal width detection. Zero means auto-detect.
	Width int
}

// New creates a terminal Renderer.
func New() *Renderer {
	return &Renderer{}
}

// Render writes the messages as ANSI-colored cards to w, headed by a
// one-line summary of the recovered conversation.
func (r *Renderer) Render(w io.Writer, messages []core.Message) error {
	width := r.termWidth()

	questions := artifact.Questions(messages)
	header := fmt.Sprintf("%d messages", len(messages))
	if len(questions) > 0 {
		header += fmt.Sprintf(", %d user questions", len(questions))
	}
	fmt.Fprintln(w, styleHeader.Render(header))

	for _, msg := range messages {
		writeSeparator(w, width)
		fmt.Fprintln(w, " "+speakerBadge(msg))
		for _, line := range strings.Split(strings.TrimRight(msg.Text, "\n"), "\n") {
			fmt.Fprintln(w, "  "+truncate(line, width-4))
		}
	}

	fmt.Fprintln(w)
	return nil
}

func (r *Renderer) termWidth() int {
	if r.Width > 0 {
		return r.Width
	}
	if w, _, err := term.GetSize(os.Stdout.Fd()); err == nil && w > 0 {
		return w
	}
	return defaultWidth
}

func writeSeparator(w io.Writer, width int) {
	n := min(width, 72)
	fmt.Fprintln(w)
	fmt.Fprintln(w, styleSeparator.Render(strings.Repeat("─", n)))
}

func speakerBadge(msg core.Message) string {
	if msg.Speaker == "" {
		return styleMeta.Render("—")
	}
	label := strings.ToUpper(msg.Speaker)
	if msg.IsUser() {
		return styleUserBadge.Render(label)
	}
	return styleOtherBadge.Render(label)
}

// truncate shortens a single line to maxWidth display cells, appending
// "..." if needed.
func truncate(s string, maxWidth int) string {
	if maxWidth < 4 {
		maxWidth = 4
	}
	if lipgloss.Width(s) <= maxWidth {
		return s
	}
	runes := []rune(s)
	for len(runes) > 0 && lipgloss.Width(string(runes))+3 > maxWidth {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "..."
}
