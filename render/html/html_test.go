package html

import (
	"bytes"
	"testing"

	"github.com/rateyu/chat-txt2pdf/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	b := &core.Book{
		Title: "对话问题目录（全部）",
		Questions: []core.QuestionRef{
			{Text: "how to sort", Source: "s1.txt"},
		},
		Files: []core.FileContent{
			{Rel: "codex/s1.txt", Content: "USER:\nhow to sort\n\nASSISTANT:\nuse sort.Slice\n"},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, New().Render(&buf, b))
	out := buf.String()

	assert.Contains(t, out, "对话问题目录（全部）")
	assert.Contains(t, out, "how to sort")
	assert.Contains(t, out, "文件：s1.txt", "heading uses the base name")
	assert.Contains(t, out, "page-break-after")
}

func TestRenderEscapesMarkup(t *testing.T) {
	b := &core.Book{
		Title: "t",
		Files: []core.FileContent{
			{Rel: "a.txt", Content: `<script>alert("x")</script> & more`},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, New().Render(&buf, b))
	out := buf.String()

	assert.NotContains(t, out, `<script>alert`)
	assert.Contains(t, out, "&lt;script&gt;")
	assert.Contains(t, out, "&amp; more")
}

func TestRenderNoQuestionsPlaceholder(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, New().Render(&buf, &core.Book{Title: "t"}))
	assert.Contains(t, buf.String(), "（没有找到任何问题索引）")
}
