// Package core defines the normalized conversation model shared by the
// extraction, artifact, and export layers: every source log, whatever its
// schema, reduces to an ordered list of (speaker, text) messages.
package core

import "strings"

// Message is a single conversational turn recovered from a source log.
type Message struct {
	// Speaker is a free-form role label as the source tool wrote it
	// ("user", "assistant", "model", ...). Empty means the record carried
	// no usable role.
	Speaker string `json:"speaker,omitempty"`

	// Text is the recovered message body. Messages whose text is blank
	// after trimming are dropped before aggregation.
	Text string `json:"text"`
}

// IsUser reports whether the message is a human turn. Source tools disagree
// on casing, so the comparison is case-insensitive.
func (m Message) IsUser() bool {
	return strings.EqualFold(m.Speaker, "user")
}

// FirstLine returns the first line of the trimmed message text.
func (m Message) FirstLine() string {
	first, _, _ := strings.Cut(strings.TrimSpace(m.Text), "\n")
	return first
}
