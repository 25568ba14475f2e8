package main

import (
	"context"
	"io"
	"time"

	"github.com/qverkk/aocfetch"
)

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Target    string        `arg:"" help:"Puzzle URL (https://adventofcode.com/YYYY/day/D) or year"`
	Day       string        `arg:"" optional:"" help:"Day number or range like 1-5 (required if the first argument is a year)"`
	Cookie    string        `short:"c" env:"AOC_SESSION" help:"Session cookie for authentication"`
	Output    string        `short:"o" type:"path" help:"Output file path (default: puzzles/YYYY/dayDD.md)"`
	Dir       string        `default:"." type:"path" help:"Base directory for puzzles/ and inputs/"`
	Converter string        `enum:"rules,commonmark" default:"rules" help:"Markdown converter (rules, commonmark)"`
	Input     bool          `short:"i" help:"Also download your puzzle input (requires cookie)"`
	Sample    bool          `short:"s" help:"Also save the first example block as sample input"`
	Timeout   time.Duration `short:"t" default:"10s" help:"Request timeout"`
	Interval  time.Duration `default:"1s" help:"Minimum delay between requests"`
	Verbose   bool          `short:"v" help:"Log requests and conversion details to stderr"`
	BaseURL   string        `name:"base-url" hidden:"" default:"https://adventofcode.com" help:"Site root used with YEAR DAY arguments"`
}

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer

	Puzzles aocfetch.PuzzleFetcher
	Store   aocfetch.PuzzleStore
}

// FetchCmd handles the main fetch operation.
type FetchCmd struct {
	BaseURL string
	IDs     []aocfetch.PuzzleID
	Output  string
	Input   bool
	Sample  bool
}
