package textio

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadFileUTF8(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a.txt")
	require.NoError(t, os.WriteFile(path, []byte("问题索引 ok"), 0o644))

	got, err := ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "问题索引 ok", got)
}

func TestReadFileGBKFallback(t *testing.T) {
	// "中文" encoded as GBK — invalid as UTF-8.
	gbk := []byte{0xd6, 0xd0, 0xce, 0xc4}
	path := filepath.Join(t.TempDir(), "b.txt")
	require.NoError(t, os.WriteFile(path, gbk, 0o644))

	got, err := ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "中文", got)
}

func TestReadFileMissing(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
}
