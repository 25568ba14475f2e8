// Package fs provides file-based storage for puzzles and inputs.
package fs

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/cespare/xxhash/v2"
	"github.com/qverkk/aocfetch"
)

// Ensure Store implements aocfetch.PuzzleStore at compile time.
var _ aocfetch.PuzzleStore = (*Store)(nil)

// Store writes puzzles and inputs below a base directory:
//
//	puzzles/YYYY/dayDD.md
//	inputs/YYYY/dayDD/sample.txt
//	inputs/YYYY/dayDD/input.txt
type Store struct {
	baseDir string
}

// NewStore creates a new Store rooted at baseDir.
func NewStore(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

// PuzzlePath returns the default markdown path for a puzzle.
func (s *Store) PuzzlePath(id aocfetch.PuzzleID) string {
	return filepath.Join(s.baseDir, "puzzles", strconv.Itoa(id.Year), id.Slug()+".md")
}

// InputPath returns the path an input of the given kind is stored at.
func (s *Store) InputPath(id aocfetch.PuzzleID, kind aocfetch.InputKind) string {
	return filepath.Join(s.baseDir, "inputs", strconv.Itoa(id.Year), id.Slug(), kind.FileName())
}

// SavePuzzle writes the formatted puzzle to path, or to PuzzlePath when
// path is empty.
func (s *Store) SavePuzzle(ctx context.Context, p *aocfetch.Puzzle, path string) (*aocfetch.SaveResult, error) {
	if err := p.ID.Validate(); err != nil {
		return nil, err
	}
	if len(p.Parts) == 0 {
		return nil, aocfetch.Errorf(aocfetch.EINVALID, "puzzle %s has no content", p.ID)
	}

	if path == "" {
		path = s.PuzzlePath(p.ID)
	}
	return writeFile(path, aocfetch.FormatPuzzle(p))
}

// SaveInput writes puzzle input to InputPath.
func (s *Store) SaveInput(ctx context.Context, id aocfetch.PuzzleID, kind aocfetch.InputKind, content string) (*aocfetch.SaveResult, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	return writeFile(s.InputPath(id, kind), content)
}

// writeFile replaces path with content atomically. Files whose content is
// already identical are left untouched.
func writeFile(path, content string) (*aocfetch.SaveResult, error) {
	existing, err := os.ReadFile(path)
	switch {
	case err == nil:
		if xxhash.Sum64(existing) == xxhash.Sum64String(content) {
			return &aocfetch.SaveResult{Path: path, Unchanged: true}, nil
		}
	case !errors.Is(err, fs.ErrNotExist):
		return nil, err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return nil, err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.WriteString(content); err != nil {
		_ = tmp.Close()
		return nil, err
	}
	if err := tmp.Close(); err != nil {
		return nil, err
	}
	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		return nil, err
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		return nil, err
	}

	return &aocfetch.SaveResult{Path: path}, nil
}
