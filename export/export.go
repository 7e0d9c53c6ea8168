// Package export selects which normalized artifacts enter the next book
// and drives one rendering pass over them. Exports accumulate forward:
// each run that finds new or changed artifacts produces a fresh,
// never-overwritten book; artifacts removed from disk are simply no longer
// exported.
package export

import (
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/rateyu/chat-txt2pdf/artifact"
	"github.com/rateyu/chat-txt2pdf/core"
	"github.com/rateyu/chat-txt2pdf/render"
	"github.com/rateyu/chat-txt2pdf/state"
	"github.com/rateyu/chat-txt2pdf/textio"
)

// Default book titles, by mode.
const (
	titleFull        = "对话问题目录（全部）"
	titleIncremental = "对话问题目录（本次新增/变更）"
)

// Config carries everything one export run needs. There is no package
// state; two runs with equal configs behave identically.
type Config struct {
	// Root is the artifact tree produced by the convert step.
	Root string

	// OutDir is where books are written.
	OutDir string

	// Prefix is the book filename stem, e.g. "chat_ebook".
	Prefix string

	// StateFile persists the path→digest map between runs.
	StateFile string

	// Full exports every artifact instead of only new/changed ones.
	Full bool

	// Title overrides the default book title for the chosen mode.
	Title string

	// Renderer produces the book document; Ext is its file extension
	// (".pdf", ".html", ...).
	Renderer render.Renderer
	Ext      string

	// Now overrides the clock in tests. Nil means time.Now.
	Now func() time.Time
}

// Summary reports what an export run did.
type Summary struct {
	// Book is the output path; empty when nothing needed exporting.
	Book string

	// Files are the relative artifact paths included in the book.
	Files []string

	// Scanned is the total number of artifacts found under Root.
	Scanned int
}

// Run performs one export pass: scan and digest every artifact, pick the
// batch for the configured mode, render it, and only then persist the new
// digest state. An empty batch renders nothing and leaves state untouched.
func Run(cfg Config) (*Summary, error) {
	prev := state.Load(cfg.StateFile)

	paths, err := ScanArtifacts(cfg.Root)
	if err != nil {
		return nil, fmt.Errorf("scan artifacts: %w", err)
	}

	curr := state.State{}
	for _, rel := range paths {
		digest, err := state.HashFile(filepath.Join(cfg.Root, rel))
		if err != nil {
			return nil, fmt.Errorf("digest %s: %w", rel, err)
		}
		curr[rel] = digest
	}

	batch := paths
	if cfg.Full {
		// A full export is still skipped when nothing changed at all,
		// so repeated runs do not pile up identical books.
		if maps.Equal(prev, curr) {
			return &Summary{Scanned: len(paths)}, nil
		}
	} else {
		batch = Diff(prev, curr)
	}
	if len(batch) == 0 {
		return &Summary{Scanned: len(paths)}, nil
	}

	book, err := assemble(cfg, batch)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(cfg.OutDir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}
	name := DatedName(cfg.OutDir, cfg.Prefix, cfg.Ext, cfg.now())
	outPath := filepath.Join(cfg.OutDir, name)

	if err := renderTo(outPath, cfg.Renderer, book); err != nil {
		return nil, err
	}

	if err := state.Save(cfg.StateFile, curr); err != nil {
		return nil, fmt.Errorf("save state: %w", err)
	}

	return &Summary{Book: outPath, Files: batch, Scanned: len(paths)}, nil
}

// renderTo writes the book to path. A render failure removes the partial
// file so a broken book is never left behind as the run's result.
func renderTo(path string, r render.Renderer, book *core.Book) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create book: %w", err)
	}
	if err := r.Render(f, book); err != nil {
		f.Close()
		os.Remove(path)
		return fmt.Errorf("render book: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return fmt.Errorf("write book: %w", err)
	}
	return nil
}

// assemble reads every artifact in the batch and builds the book:
// the aggregate question directory first, then each file's full text.
func assemble(cfg Config, batch []string) (*core.Book, error) {
	title := cfg.Title
	if title == "" {
		if cfg.Full {
			title = titleFull
		} else {
			title = titleIncremental
		}
	}

	book := &core.Book{Title: title}
	for _, rel := range batch {
		log.Info("exporting", "artifact", rel)

		content, err := textio.ReadFile(filepath.Join(cfg.Root, rel))
		if err != nil {
			return nil, fmt.Errorf("read artifact %s: %w", rel, err)
		}

		base := filepath.Base(rel)
		for _, q := range artifact.ParseQuestions(content) {
			book.Questions = append(book.Questions, core.QuestionRef{Text: q, Source: base})
		}
		book.Files = append(book.Files, core.FileContent{Rel: rel, Content: core.Normalize(content)})
	}
	return book, nil
}

func (cfg Config) now() time.Time {
	if cfg.Now != nil {
		return cfg.Now()
	}
	return time.Now()
}

// ScanArtifacts returns the sorted relative paths of all .txt artifacts
// under root.
func ScanArtifacts(root string) ([]string, error) {
	var paths []string
	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.EqualFold(filepath.Ext(d.Name()), ".txt") {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		paths = append(paths, rel)
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(paths)
	return paths, nil
}

// Diff returns the paths in curr that are absent from prev or whose digest
// changed, sorted. Paths that vanished since prev are dropped — the book
// is a forward-only accumulation, not a sync.
func Diff(prev, curr state.State) []string {
	var changed []string
	for rel, digest := range curr {
		if old, ok := prev[rel]; !ok || old != digest {
			changed = append(changed, rel)
		}
	}
	sort.Strings(changed)
	return changed
}
