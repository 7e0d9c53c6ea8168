package reader

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/rateyu/chat-txt2pdf/core"
	"github.com/rateyu/chat-txt2pdf/extract"
)

// maxLineSize caps one JSONL line at 1 MB; embedded tool output routinely
// blows past bufio.Scanner's 64 KB default.
const maxLineSize = 1 << 20

// ReadLines parses a line-delimited log. Blank and unparseable lines are
// skipped — one malformed line never fails the file.
func ReadLines(path string) ([]core.Message, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open log: %w", err)
	}
	defer f.Close()

	messages, err := scanLines(f)
	if err != nil {
		return nil, fmt.Errorf("scan log: %w", err)
	}
	return messages, nil
}

func scanLines(r io.Reader) ([]core.Message, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, maxLineSize), maxLineSize)

	var messages []core.Message
	for scanner.Scan() {
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}
		var record map[string]any
		if err := json.Unmarshal(line, &record); err != nil {
			continue
		}
		messages = appendMessage(messages, extract.Extract(record))
	}
	return messages, scanner.Err()
}
