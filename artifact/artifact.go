// Package artifact serializes normalized message lists into the on-disk
// text format: an optional Question Index block followed by speaker-tagged
// message blocks. The index is delimited by fixed markers so it can be
// re-parsed losslessly when artifacts are assembled into a book.
package artifact

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/rateyu/chat-txt2pdf/core"
)

// IndexHeader and IndexFooter delimit the Question Index block.
const (
	IndexHeader = "============ 问题索引（User Questions） ============"
	IndexFooter = "===================================================="
)

// indexHeaderPrefix is what ParseQuestions keys on. Kept shorter than the
// full header so marker-width drift in hand-edited artifacts does not
// break parsing.
const indexHeaderPrefix = "============ 问题索引"

var questionLineRE = regexp.MustCompile(`^\s*(\d+)\.\s*(.+)`)

// Questions returns the first line of every user turn, in source order.
func Questions(messages []core.Message) []string {
	var questions []string
	for _, m := range messages {
		if !m.IsUser() {
			continue
		}
		if first := m.FirstLine(); first != "" {
			questions = append(questions, first)
		}
	}
	return questions
}

// Render serializes messages to the normalized artifact text. When no user
// turn exists the index block is omitted entirely. Rendering the same list
// twice yields byte-identical output.
func Render(messages []core.Message) string {
	var b strings.Builder

	if questions := Questions(messages); len(questions) > 0 {
		b.WriteString(IndexHeader + "\n")
		for i, q := range questions {
			fmt.Fprintf(&b, "%d. %s\n", i+1, q)
		}
		b.WriteString(IndexFooter + "\n\n\n")
	}

	for _, m := range messages {
		if m.Speaker != "" {
			fmt.Fprintf(&b, "%s:\n%s\n\n", strings.ToUpper(m.Speaker), m.Text)
		} else {
			fmt.Fprintf(&b, "%s\n\n", m.Text)
		}
	}
	return b.String()
}

// ParseQuestions recovers the Question Index entries from rendered
// artifact text. Returns nil when no index block is present.
func ParseQuestions(content string) []string {
	var questions []string
	inIndex := false
	for _, line := range strings.Split(content, "\n") {
		switch {
		case !inIndex:
			if strings.HasPrefix(line, indexHeaderPrefix) {
				inIndex = true
			}
		case strings.HasPrefix(line, "==="):
			return questions
		default:
			if m := questionLineRE.FindStringSubmatch(line); m != nil {
				if q := strings.TrimSpace(m[2]); q != "" {
					questions = append(questions, q)
				}
			}
		}
	}
	return questions
}
