package reader

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rateyu/chat-txt2pdf/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeLog(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestReadLines(t *testing.T) {
	log := strings.Join([]string{
		`{"role": "user", "content": "Hello\nworld"}`,
		``,
		`not json at all`,
		`{"role": "assistant", "content": "hi"}`,
		`{"role": "assistant", "content": "   "}`,
	}, "\n")

	messages, err := ReadLines(writeLog(t, "session.jsonl", log))
	require.NoError(t, err)

	require.Len(t, messages, 2, "blank, broken, and empty-text lines are skipped")
	assert.Equal(t, core.Message{Speaker: "user", Text: "Hello\nworld"}, messages[0])
	assert.Equal(t, core.Message{Speaker: "assistant", Text: "hi"}, messages[1])
}

func TestReadLinesPreservesOrder(t *testing.T) {
	log := `{"role": "user", "content": "one"}
{"role": "assistant", "content": "two"}
{"role": "user", "content": "three"}`

	messages, err := ReadLines(writeLog(t, "s.jsonl", log))
	require.NoError(t, err)
	require.Len(t, messages, 3)
	assert.Equal(t, "one", messages[0].Text)
	assert.Equal(t, "two", messages[1].Text)
	assert.Equal(t, "three", messages[2].Text)
}

func TestReadDocumentTopLevelList(t *testing.T) {
	doc := `[
		{"role": "user", "parts": [{"text": "question"}]},
		17,
		{"role": "model", "parts": [{"text": "answer"}]}
	]`

	messages, err := ReadDocument(writeLog(t, "chat.json", doc))
	require.NoError(t, err)
	require.Len(t, messages, 2, "non-object list items are ignored")
	assert.Equal(t, "question", messages[0].Text)
	assert.Equal(t, "model", messages[1].Speaker)
}

func TestReadDocumentHistoryField(t *testing.T) {
	doc := `{"history": [
		{"role": "user", "parts": [{"text": "q1"}]},
		{"role": "model", "parts": [{"text": "a1"}]}
	]}`

	messages, err := ReadDocument(writeLog(t, "chat.json", doc))
	require.NoError(t, err)
	require.Len(t, messages, 2)
	assert.Equal(t, "q1", messages[0].Text)
}

func TestReadDocumentListKeyOrder(t *testing.T) {
	// "history" wins over "messages" even when both are present.
	doc := `{
		"messages": [{"role": "user", "content": "from messages"}],
		"history": [{"role": "user", "content": "from history"}]
	}`

	messages, err := ReadDocument(writeLog(t, "chat.json", doc))
	require.NoError(t, err)
	require.Len(t, messages, 1)
	assert.Equal(t, "from history", messages[0].Text)
}

func TestReadDocumentWholeObjectFallback(t *testing.T) {
	doc := `{"role": "user", "content": "single record"}`

	messages, err := ReadDocument(writeLog(t, "chat.json", doc))
	require.NoError(t, err)
	require.Len(t, messages, 1)
	assert.Equal(t, "single record", messages[0].Text)
}

func TestReadDocumentCandidates(t *testing.T) {
	doc := `{"items": [
		{"role": "user", "parts": [{"text": "prompt"}]},
		{"candidates": [
			{"content": {"role": "model", "parts": [{"text": "generated"}]}},
			{"finishReason": "STOP"}
		]}
	]}`

	messages, err := ReadDocument(writeLog(t, "chat.json", doc))
	require.NoError(t, err)
	require.Len(t, messages, 2)
	assert.Equal(t, "prompt", messages[0].Text)
	assert.Equal(t, core.Message{Speaker: "model", Text: "generated"}, messages[1])
}

func TestReadDocumentSyntaxError(t *testing.T) {
	_, err := ReadDocument(writeLog(t, "broken.json", `{"history": [`))
	assert.Error(t, err)
}

func TestReadFileDispatch(t *testing.T) {
	jsonl := writeLog(t, "a.JSONL", `{"role": "user", "content": "x"}`)
	messages, err := ReadFile(jsonl)
	require.NoError(t, err)
	assert.Len(t, messages, 1)

	_, err = ReadFile(writeLog(t, "notes.yaml", "a: b"))
	assert.Error(t, err)
}
