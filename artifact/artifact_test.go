package artifact

import (
	"strings"
	"testing"

	"github.com/rateyu/chat-txt2pdf/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleMessages() []core.Message {
	return []core.Message{
		{Speaker: "user", Text: "Hello\nworld"},
		{Speaker: "assistant", Text: "Hi! How can I help?"},
		{Speaker: "User", Text: "第二个问题"},
		{Text: "orphan text without a speaker"},
	}
}

func TestQuestions(t *testing.T) {
	qs := Questions(sampleMessages())
	assert.Equal(t, []string{"Hello", "第二个问题"}, qs, "case-insensitive user match, first lines only")
}

func TestRenderIndexAndBody(t *testing.T) {
	got := Render(sampleMessages())

	wantHead := IndexHeader + "\n" +
		"1. Hello\n" +
		"2. 第二个问题\n" +
		IndexFooter + "\n\n\n"
	assert.True(t, strings.HasPrefix(got, wantHead), "index block precedes the body")

	assert.Contains(t, got, "USER:\nHello\nworld\n\n")
	assert.Contains(t, got, "ASSISTANT:\nHi! How can I help?\n\n")
	assert.Contains(t, got, "orphan text without a speaker\n\n")
}

func TestRenderNoQuestionsOmitsIndex(t *testing.T) {
	got := Render([]core.Message{{Speaker: "assistant", Text: "monologue"}})
	assert.NotContains(t, got, "问题索引")
	assert.NotContains(t, got, "===")
	assert.Equal(t, "ASSISTANT:\nmonologue\n\n", got)
}

func TestRenderIdempotent(t *testing.T) {
	messages := sampleMessages()
	assert.Equal(t, Render(messages), Render(messages))
}

func TestRoundTrip(t *testing.T) {
	messages := sampleMessages()
	got := ParseQuestions(Render(messages))
	assert.Equal(t, Questions(messages), got, "re-parsing the rendered index recovers the question list")
}

func TestParseQuestions(t *testing.T) {
	content := IndexHeader + "\n" +
		"1. first question\n" +
		"  2.   padded question\n" +
		"not numbered\n" +
		IndexFooter + "\n\n\nUSER:\n3. looks like an entry but is body\n\n"

	qs := ParseQuestions(content)
	assert.Equal(t, []string{"first question", "padded question"}, qs)
}

func TestParseQuestionsNoIndex(t *testing.T) {
	require.Nil(t, ParseQuestions("USER:\nhello\n\n"))
}
