package main

import (
	"context"
	"fmt"

	"github.com/qverkk/aocfetch"
)

// Ensure PuzzleFetcher implements aocfetch.PuzzleFetcher at compile time.
var _ aocfetch.PuzzleFetcher = (*PuzzleFetcher)(nil)

// PuzzleFetcher implements aocfetch.PuzzleFetcher by orchestrating
// fetching, region extraction, and conversion through injected dependencies.
type PuzzleFetcher struct {
	baseURL   string
	fetcher   aocfetch.Fetcher
	extractor aocfetch.RegionExtractor
	converter aocfetch.Converter
	samples   aocfetch.SampleExtractor
}

// PuzzleFetcherOption configures a PuzzleFetcher.
type PuzzleFetcherOption func(*PuzzleFetcher)

// WithSampleExtractor enables example input extraction.
func WithSampleExtractor(e aocfetch.SampleExtractor) PuzzleFetcherOption {
	return func(pf *PuzzleFetcher) {
		pf.samples = e
	}
}

// NewPuzzleFetcher creates a new PuzzleFetcher for the given site root.
func NewPuzzleFetcher(
	baseURL string,
	fetcher aocfetch.Fetcher,
	extractor aocfetch.RegionExtractor,
	converter aocfetch.Converter,
	opts ...PuzzleFetcherOption,
) *PuzzleFetcher {
	pf := &PuzzleFetcher{
		baseURL:   baseURL,
		fetcher:   fetcher,
		extractor: extractor,
		converter: converter,
	}
	for _, opt := range opts {
		opt(pf)
	}
	return pf
}

// FetchPuzzle retrieves the puzzle page and converts each article region.
func (pf *PuzzleFetcher) FetchPuzzle(ctx context.Context, id aocfetch.PuzzleID) (*aocfetch.Puzzle, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	url := id.URL(pf.baseURL)
	page, err := pf.fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, err
	}

	regions := pf.extractor.ExtractRegions(page)
	if len(regions) == 0 {
		return nil, aocfetch.Errorf(aocfetch.ENOTFOUND, "no puzzle content found at %s", url)
	}

	parts := make([]string, 0, len(regions))
	for i, region := range regions {
		md, err := pf.converter.Convert(region)
		if err != nil {
			return nil, fmt.Errorf("convert part %d of %s: %w", i+1, id, err)
		}
		parts = append(parts, md)
	}

	puzzle := &aocfetch.Puzzle{
		ID:    id,
		URL:   url,
		Parts: parts,
	}

	if pf.samples != nil {
		sample, err := pf.samples.ExtractSample(page)
		switch {
		case err == nil:
			puzzle.Sample = sample
		case aocfetch.ErrorCode(err) != aocfetch.ENOTFOUND:
			return nil, fmt.Errorf("extract sample of %s: %w", id, err)
		}
	}

	return puzzle, nil
}

// FetchInput retrieves the personal puzzle input.
func (pf *PuzzleFetcher) FetchInput(ctx context.Context, id aocfetch.PuzzleID) (string, error) {
	if err := id.Validate(); err != nil {
		return "", err
	}
	return pf.fetcher.Fetch(ctx, id.InputURL(pf.baseURL))
}
