// Package extract recovers (speaker, text) pairs from arbitrary decoded
// chat-log records. Three source families are recognized: nested message
// objects (Claude-style), role/parts lists (Gemini-style), and flat or
// payload-wrapped records (Codex-style). Unrecognized shapes degrade to
// empty text instead of failing.
package extract

import (
	"encoding/json"
	"strings"

	"github.com/rateyu/chat-txt2pdf/core"
)

// Extract pulls the best-effort speaker and text out of one decoded log
// record. It never fails; a record with no recoverable text yields a
// Message with empty Text, which callers drop before aggregation.
//
// Shapes are tried in a fixed order. A shape that matches structurally but
// yields only blank text falls through to the next one — heterogeneous
// corpora contain half-filled records in every schema, and falling through
// maximizes the text recovered from them.
func Extract(record map[string]any) core.Message {
	// Nested message object: {"message": {"role": ..., "content": ...}}.
	if msg, ok := record["message"].(map[string]any); ok {
		if m := fromNestedMessage(msg); strings.TrimSpace(m.Text) != "" {
			return m
		}
	}

	// Flat role/parts: {"role": ..., "parts": [{"text": ...}, ...]}.
	if _, ok := record["parts"].([]any); ok {
		if _, hasRole := record["role"]; hasRole {
			if m := fromRoleParts(record); strings.TrimSpace(m.Text) != "" {
				return m
			}
		}
	}

	speaker, _ := record["role"].(string)

	// Flat role/content: a top-level "content" or "text" string.
	for _, key := range [...]string{"content", "text"} {
		if v, ok := record[key].(string); ok && strings.TrimSpace(v) != "" {
			return core.Message{Speaker: speaker, Text: v}
		}
	}

	// Payload wrapper: {"payload": {...}} carrying either a plain text
	// field or a serialized blob in "output".
	if payload, ok := record["payload"].(map[string]any); ok {
		for _, key := range [...]string{"content", "text", "message"} {
			if v, ok := payload[key].(string); ok && strings.TrimSpace(v) != "" {
				return core.Message{Speaker: speaker, Text: v}
			}
		}
		if v, ok := payload["output"].(string); ok && strings.TrimSpace(v) != "" {
			return core.Message{Speaker: speaker, Text: resolveNested(v)}
		}
	}

	return core.Message{Speaker: speaker}
}

// fromNestedMessage handles the nested message shape. Content is either a
// plain string or a list of typed parts; "text" parts contribute their
// string and "tool_use" parts contribute their input (see toolUseText).
// Contributing parts are joined with a blank line.
func fromNestedMessage(msg map[string]any) core.Message {
	speaker, _ := msg["role"].(string)

	var texts []string
	switch content := msg["content"].(type) {
	case []any:
		for _, part := range content {
			p, ok := part.(map[string]any)
			if !ok {
				continue
			}
			switch p["type"] {
			case "text":
				if t, ok := p["text"].(string); ok && strings.TrimSpace(t) != "" {
					texts = append(texts, t)
				}
			case "tool_use":
				if t := toolUseText(p["input"]); t != "" {
					texts = append(texts, t)
				}
			}
		}
	case string:
		if strings.TrimSpace(content) != "" {
			texts = append(texts, content)
		}
	}

	return core.Message{Speaker: speaker, Text: strings.Join(texts, "\n\n")}
}

// toolUseText favors the human-readable input.prompt; when that is absent
// the whole input object is dumped as indented JSON so its content is not
// silently lost. The dump fallback applies to tool_use inputs only.
func toolUseText(input any) string {
	obj, ok := input.(map[string]any)
	if !ok {
		return ""
	}
	if prompt, ok := obj["prompt"].(string); ok && strings.TrimSpace(prompt) != "" {
		return prompt
	}
	dump, err := json.MarshalIndent(obj, "", "  ")
	if err != nil {
		return ""
	}
	return string(dump)
}

// fromRoleParts handles the flat role/parts shape. Non-blank part texts are
// joined with a blank line.
func fromRoleParts(record map[string]any) core.Message {
	speaker, _ := record["role"].(string)
	parts, _ := record["parts"].([]any)

	var texts []string
	for _, part := range parts {
		p, ok := part.(map[string]any)
		if !ok {
			continue
		}
		if t, ok := p["text"].(string); ok && strings.TrimSpace(t) != "" {
			texts = append(texts, t)
		}
	}
	return core.Message{Speaker: speaker, Text: strings.Join(texts, "\n\n")}
}

// nestedTextKeys is the preference order for unwrapping serialized blobs.
var nestedTextKeys = [...]string{"output", "content", "text", "message"}

// resolveNested unwraps one level of a serialized JSON object carried
// inside a payload's output string, e.g.
//
//	"{\"output\": \"Date: 2025-11-17\\nUser: ...\", \"metadata\": {...}}"
//
// On parse failure or when no text-bearing key holds a non-blank string,
// the raw string is returned unchanged.
func resolveNested(raw string) string {
	var nested map[string]any
	if err := json.Unmarshal([]byte(raw), &nested); err != nil {
		return raw
	}
	for _, key := range nestedTextKeys {
		if v, ok := nested[key].(string); ok && strings.TrimSpace(v) != "" {
			return v
		}
	}
	return raw
}
