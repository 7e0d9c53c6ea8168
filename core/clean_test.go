package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain text untouched", "hello world", "hello world"},
		{"crlf", "a\r\nb", "a\nb"},
		{"bare cr", "a\rb", "a\nb"},
		{"literal newline escape", `line1\nline2`, "line1\nline2"},
		{"literal crlf escape", `line1\r\nline2`, "line1\nline2"},
		{"literal tab escape", `a\tb`, "a    b"},
		{"real tab", "a\tb", "a    b"},
		{"hex escapes untouched", `a\x1bb`, `a\x1bb`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.input))
		})
	}
}
