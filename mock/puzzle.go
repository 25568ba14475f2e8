package mock

import (
	"context"

	"github.com/qverkk/aocfetch"
)

// Compile-time interface verification.
var (
	_ aocfetch.PuzzleFetcher = (*PuzzleFetcher)(nil)
	_ aocfetch.PuzzleStore   = (*PuzzleStore)(nil)
)

// PuzzleFetcher is a mock implementation of aocfetch.PuzzleFetcher.
type PuzzleFetcher struct {
	FetchPuzzleFn func(ctx context.Context, id aocfetch.PuzzleID) (*aocfetch.Puzzle, error)
	FetchInputFn  func(ctx context.Context, id aocfetch.PuzzleID) (string, error)
}

func (f *PuzzleFetcher) FetchPuzzle(ctx context.Context, id aocfetch.PuzzleID) (*aocfetch.Puzzle, error) {
	return f.FetchPuzzleFn(ctx, id)
}

func (f *PuzzleFetcher) FetchInput(ctx context.Context, id aocfetch.PuzzleID) (string, error) {
	return f.FetchInputFn(ctx, id)
}

// PuzzleStore is a mock implementation of aocfetch.PuzzleStore.
type PuzzleStore struct {
	SavePuzzleFn func(ctx context.Context, p *aocfetch.Puzzle, path string) (*aocfetch.SaveResult, error)
	SaveInputFn  func(ctx context.Context, id aocfetch.PuzzleID, kind aocfetch.InputKind, content string) (*aocfetch.SaveResult, error)
}

func (s *PuzzleStore) SavePuzzle(ctx context.Context, p *aocfetch.Puzzle, path string) (*aocfetch.SaveResult, error) {
	return s.SavePuzzleFn(ctx, p, path)
}

func (s *PuzzleStore) SaveInput(ctx context.Context, id aocfetch.PuzzleID, kind aocfetch.InputKind, content string) (*aocfetch.SaveResult, error) {
	return s.SaveInputFn(ctx, id, kind, content)
}
