package reader

import (
	"encoding/json"
	"fmt"

	"github.com/rateyu/chat-txt2pdf/core"
	"github.com/rateyu/chat-txt2pdf/extract"
	"github.com/rateyu/chat-txt2pdf/textio"
)

// listKeys are the fields searched, in order, for the message list when a
// single-document log's top level is an object.
var listKeys = [...]string{"history", "contents", "messages", "conversation", "items"}

// ReadDocument parses a single-document log. A file that does not parse as
// JSON at all returns an error; callers skip the file and continue the
// batch.
func ReadDocument(path string) ([]core.Message, error) {
	text, err := textio.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read log: %w", err)
	}

	var doc any
	if err := json.Unmarshal([]byte(text), &doc); err != nil {
		return nil, fmt.Errorf("parse log document: %w", err)
	}

	var messages []core.Message
	for _, rec := range recordsOf(doc) {
		// Generation-result records list alternatives under "candidates";
		// each candidate's content object is its own message.
		if cands, ok := rec["candidates"].([]any); ok {
			for _, cand := range cands {
				c, ok := cand.(map[string]any)
				if !ok {
					continue
				}
				if content, ok := c["content"].(map[string]any); ok {
					messages = appendMessage(messages, extract.Extract(content))
				}
			}
			continue
		}
		messages = appendMessage(messages, extract.Extract(rec))
	}
	return messages, nil
}

// recordsOf locates the record list inside a parsed document. A top-level
// array is the list itself; a top-level object is searched for the first
// list-valued candidate field, and failing that is treated as a single
// record.
func recordsOf(doc any) []map[string]any {
	switch v := doc.(type) {
	case []any:
		return onlyObjects(v)
	case map[string]any:
		for _, key := range listKeys {
			if list, ok := v[key].([]any); ok {
				if records := onlyObjects(list); len(records) > 0 {
					return records
				}
				break
			}
		}
		return []map[string]any{v}
	default:
		return nil
	}
}

func onlyObjects(list []any) []map[string]any {
	var records []map[string]any
	for _, item := range list {
		if rec, ok := item.(map[string]any); ok {
			records = append(records, rec)
		}
	}
	return records
}
