// Package state persists the change-tracking digest map that drives
// incremental exports: one entry per normalized artifact, keyed by its
// path relative to the artifact root.
package state

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
)

// State maps an artifact's relative path to the digest of its bytes.
type State map[string]string

// Load reads persisted state. Missing, unreadable, or malformed state is
// treated as "no prior state" and never fails the caller — an incremental
// export then simply sees every artifact as new.
func Load(path string) State {
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Debug("state file unreadable, starting fresh", "path", path, "err", err)
		}
		return State{}
	}

	var s State
	if err := json.Unmarshal(data, &s); err != nil {
		log.Debug("state file malformed, starting fresh", "path", path, "err", err)
		return State{}
	}
	if s == nil {
		s = State{}
	}
	return s
}

// Save persists s atomically using a temporary file and rename, fully
// replacing prior state. Callers invoke it only after a successful render,
// so a failed export never marks artifacts as exported.
func Save(path string, s State) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, ".state-*.json")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return err
	}

	return os.Rename(tmpPath, path)
}

// hashChunkSize bounds memory use while digesting, independent of the
// artifact's size.
const hashChunkSize = 32 * 1024

// HashFile returns the hex SHA-256 digest of the file's raw bytes,
// streamed in fixed-size chunks.
func HashFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open for digest: %w", err)
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.CopyBuffer(h, f, make([]byte, hashChunkSize)); err != nil {
		return "", fmt.Errorf("digest %s: %w", filepath.Base(path), err)
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
