package core

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsUser(t *testing.T) {
	assert.True(t, Message{Speaker: "user"}.IsUser())
	assert.True(t, Message{Speaker: "USER"}.IsUser())
	assert.False(t, Message{Speaker: "assistant"}.IsUser())
	assert.False(t, Message{}.IsUser())
}

func TestFirstLine(t *testing.T) {
	assert.Equal(t, "Hello", Message{Text: "Hello\nworld"}.FirstLine())
	assert.Equal(t, "trimmed", Message{Text: "  \ntrimmed\nrest"}.FirstLine())
	assert.Equal(t, "", Message{Text: "   "}.FirstLine())
}

type failingTransformer struct{}

func (failingTransformer) Transform([]Message) error { return errors.New("nope") }

type noopTransformer struct{ calls *int }

func (tr noopTransformer) Transform([]Message) error {
	*tr.calls++
	return nil
}

func TestChain(t *testing.T) {
	calls := 0
	require.NoError(t, Chain(nil, noopTransformer{&calls}, noopTransformer{&calls}))
	assert.Equal(t, 2, calls)

	calls = 0
	err := Chain(nil, noopTransformer{&calls}, failingTransformer{}, noopTransformer{&calls})
	assert.Error(t, err)
	assert.Equal(t, 1, calls, "chain stops at the first error")
}
