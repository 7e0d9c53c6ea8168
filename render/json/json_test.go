package json

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rateyu/chat-txt2pdf/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderRoundTrip(t *testing.T) {
	in := &core.Book{
		Title:     "t",
		Questions: []core.QuestionRef{{Text: "q", Source: "a.txt"}},
		Files:     []core.FileContent{{Rel: "x/a.txt", Content: "USER:\nq\n\n"}},
	}

	var buf bytes.Buffer
	require.NoError(t, New().Render(&buf, in))

	var out core.Book
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	assert.Equal(t, *in, out)
}
