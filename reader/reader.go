// Package reader aggregates heterogeneous chat-log files into ordered
// message lists.
//
// Two file modes exist. Line-delimited logs (.jsonl — Claude and Codex CLI
// histories) parse one record per line and tolerate broken lines.
// Single-document logs (.json — Gemini histories and similar) parse as one
// JSON value that holds or is the record list.
package reader

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/rateyu/chat-txt2pdf/core"
)

// ReadFile parses the log at path, dispatching on the file extension.
func ReadFile(path string) ([]core.Message, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jsonl":
		return ReadLines(path)
	case ".json":
		return ReadDocument(path)
	default:
		return nil, fmt.Errorf("unsupported log type %q", filepath.Ext(path))
	}
}

// appendMessage keeps m only when its text is non-blank; extraction
// failures and empty turns are dropped here, preserving source order for
// the rest.
func appendMessage(messages []core.Message, m core.Message) []core.Message {
	if strings.TrimSpace(m.Text) == "" {
		return messages
	}
	return append(messages, m)
}
