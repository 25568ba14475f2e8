package main

import (
	"fmt"

	"github.com/qverkk/aocfetch"
)

// Run executes the fetch command. Puzzles are fetched in order and the
// first failure stops the run.
func (c *FetchCmd) Run(deps *Dependencies) error {
	for _, id := range c.IDs {
		if err := deps.Ctx.Err(); err != nil {
			return err
		}
		if err := c.fetchOne(deps, id); err != nil {
			return err
		}
	}
	return nil
}

func (c *FetchCmd) fetchOne(deps *Dependencies, id aocfetch.PuzzleID) error {
	fmt.Fprintf(deps.Stdout, "Fetching puzzle: %s\n", id.URL(c.BaseURL))

	puzzle, err := deps.Puzzles.FetchPuzzle(deps.Ctx, id)
	if err != nil {
		if aocfetch.ErrorCode(err) == aocfetch.ENOTFOUND {
			fmt.Fprintln(deps.Stderr, "No puzzle content found!")
		} else {
			fmt.Fprintf(deps.Stderr, "Error fetching puzzle: %v\n", err)
		}
		return reported(err)
	}

	res, err := deps.Store.SavePuzzle(deps.Ctx, puzzle, c.Output)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error saving %s: %v\n", id, err)
		return reported(err)
	}
	reportSave(deps, res)

	if len(puzzle.Parts) == 1 {
		fmt.Fprintln(deps.Stdout, "Note: Only Part 1 found. Pass --cookie to fetch Part 2 after solving Part 1.")
	} else {
		fmt.Fprintf(deps.Stdout, "Found %d parts.\n", len(puzzle.Parts))
	}

	if c.Sample {
		if puzzle.Sample == "" {
			fmt.Fprintln(deps.Stdout, "Note: No example input found.")
		} else if err := c.saveInput(deps, id, aocfetch.InputSample, puzzle.Sample); err != nil {
			return err
		}
	}

	if c.Input {
		input, err := deps.Puzzles.FetchInput(deps.Ctx, id)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "Error fetching input: %v\n", err)
			return reported(err)
		}
		if err := c.saveInput(deps, id, aocfetch.InputActual, input); err != nil {
			return err
		}
	}

	return nil
}

func (c *FetchCmd) saveInput(deps *Dependencies, id aocfetch.PuzzleID, kind aocfetch.InputKind, content string) error {
	res, err := deps.Store.SaveInput(deps.Ctx, id, kind, content)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error saving %s input for %s: %v\n", kind, id, err)
		return reported(err)
	}
	reportSave(deps, res)
	return nil
}

func reportSave(deps *Dependencies, res *aocfetch.SaveResult) {
	if res.Unchanged {
		fmt.Fprintf(deps.Stdout, "Unchanged: %s\n", res.Path)
		return
	}
	fmt.Fprintf(deps.Stdout, "Saved to: %s\n", res.Path)
}
