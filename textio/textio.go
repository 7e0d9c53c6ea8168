// Package textio reads text files with a GBK fallback. Chat logs and
// artifacts written by tools on zh-CN systems occasionally arrive in GBK
// rather than UTF-8, and a decode failure should not cost the whole file.
package textio

import (
	"fmt"
	"os"
	"unicode/utf8"

	"golang.org/x/text/encoding/simplifiedchinese"
)

// ReadFile loads the file as UTF-8, decoding from GBK when the bytes are
// not valid UTF-8.
func ReadFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	if utf8.Valid(data) {
		return string(data), nil
	}
	decoded, err := simplifiedchinese.GBK.NewDecoder().Bytes(data)
	if err != nil {
		return "", fmt.Errorf("decode %s as GBK: %w", path, err)
	}
	return string(decoded), nil
}
