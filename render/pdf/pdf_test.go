package pdf

import (
	"bytes"
	"testing"

	"github.com/rateyu/chat-txt2pdf/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderProducesPDF(t *testing.T) {
	b := &core.Book{
		Title: "Directory",
		Questions: []core.QuestionRef{
			{Text: "how to sort a slice", Source: "s1.txt"},
		},
		Files: []core.FileContent{
			{Rel: "codex/s1.txt", Content: "USER:\nhow to sort a slice\n\nASSISTANT:\nuse sort.Slice\n"},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, New().Render(&buf, b))

	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")), "output is a PDF document")
	assert.Greater(t, buf.Len(), 500)
}

func TestRenderEmptyBook(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, New().Render(&buf, &core.Book{Title: "empty"}))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
}
