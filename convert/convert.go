// Package convert walks source log directories and writes one normalized
// text artifact per recognized log file, mirroring each source tree under
// the artifact root.
package convert

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/rateyu/chat-txt2pdf/artifact"
	"github.com/rateyu/chat-txt2pdf/core"
	"github.com/rateyu/chat-txt2pdf/reader"
)

// Config carries one conversion run's inputs.
type Config struct {
	// Sources are the log roots to scan (e.g. ~/.codex, ~/.claude,
	// ~/.gemini). Each mirrors under Output/<base name of source>.
	Sources []string

	// Output is the artifact root.
	Output string

	// Transformers run over each file's messages before rendering
	// (redaction, typically).
	Transformers []core.Transformer
}

// Summary reports what a conversion run did.
type Summary struct {
	Converted int
	Skipped   int
}

// Run converts every .json/.jsonl file under every source directory. A log
// that cannot be read is skipped with a warning; writing an artifact is
// the run's actual output, so write failures abort.
func Run(cfg Config) (*Summary, error) {
	if err := os.MkdirAll(cfg.Output, 0o755); err != nil {
		return nil, fmt.Errorf("create output root: %w", err)
	}

	sum := &Summary{}
	for _, src := range cfg.Sources {
		if err := convertDir(cfg, src, sum); err != nil {
			return nil, err
		}
	}
	return sum, nil
}

func convertDir(cfg Config, src string, sum *Summary) error {
	info, err := os.Stat(src)
	if err != nil || !info.IsDir() {
		log.Warn("skipping source: not a directory", "dir", src)
		return nil
	}

	abs, err := filepath.Abs(src)
	if err != nil {
		return fmt.Errorf("resolve source %s: %w", src, err)
	}
	base := filepath.Base(abs)

	log.Info("scanning source", "dir", src, "subdir", base)

	return filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		switch strings.ToLower(filepath.Ext(d.Name())) {
		case ".jsonl", ".json":
		default:
			return nil
		}

		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		outRel := strings.TrimSuffix(rel, filepath.Ext(rel)) + ".txt"
		outPath := filepath.Join(cfg.Output, base, outRel)

		ok, err := convertFile(cfg, path, outPath)
		if err != nil {
			return err
		}
		if ok {
			sum.Converted++
		} else {
			sum.Skipped++
		}
		return nil
	})
}

// convertFile reads one log and writes its artifact. Unreadable logs are
// skipped (one bad file never aborts the batch); an artifact that parses
// to zero messages is still written, keeping the output tree a complete
// mirror of the sources.
func convertFile(cfg Config, inPath, outPath string) (bool, error) {
	messages, err := reader.ReadFile(inPath)
	if err != nil {
		log.Warn("skipping unreadable log", "file", inPath, "err", err)
		return false, nil
	}

	if err := core.Chain(messages, cfg.Transformers...); err != nil {
		return false, fmt.Errorf("transform %s: %w", inPath, err)
	}

	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return false, fmt.Errorf("create artifact dir: %w", err)
	}
	if err := os.WriteFile(outPath, []byte(artifact.Render(messages)), 0o644); err != nil {
		return false, fmt.Errorf("write artifact %s: %w", outPath, err)
	}

	log.Info("converted", "from", inPath, "to", outPath)
	return true, nil
}
