package export

import (
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var nameSuffixRE = regexp.MustCompile(`^_(\d+)$`)

// DatedName picks a collision-free book filename inside dir:
// {prefix}_{YYYYMMDD}{ext} when no same-day book exists, otherwise the
// highest existing numeric suffix plus one (an unsuffixed book counts as
// 1, so the second book of a day gets _2). Existing books are never
// overwritten.
func DatedName(dir, prefix, ext string, day time.Time) string {
	stem := prefix + "_" + day.Format("20060102")
	plain := stem + ext

	entries, err := os.ReadDir(dir)
	if err != nil {
		return plain
	}

	maxIdx := 0
	plainExists := false
	for _, e := range entries {
		name := e.Name()
		if !strings.HasPrefix(name, stem) || !strings.HasSuffix(name, ext) {
			continue
		}
		if name == plain {
			plainExists = true
		}
		idx := 1
		tail := strings.TrimSuffix(strings.TrimPrefix(name, stem), ext)
		if m := nameSuffixRE.FindStringSubmatch(tail); m != nil {
			idx, _ = strconv.Atoi(m[1])
		}
		if idx > maxIdx {
			maxIdx = idx
		}
	}

	if maxIdx == 0 {
		// No same-day book at all.
		return plain
	}
	if plainExists {
		return fmt.Sprintf("%s_%d%s", stem, maxIdx+1, ext)
	}
	return plain
}
