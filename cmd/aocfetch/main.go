package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/qverkk/aocfetch"
	"github.com/qverkk/aocfetch/fs"
	"github.com/qverkk/aocfetch/goquery"
	"github.com/qverkk/aocfetch/html"
	"github.com/qverkk/aocfetch/htmltomarkdown"
	aochttp "github.com/qverkk/aocfetch/http"
	"github.com/qverkk/aocfetch/rules"
	aocslog "github.com/qverkk/aocfetch/slog"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct{}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments. Failures are written to
// stderr exactly once before being returned.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	err := m.run(ctx, args, stdout, stderr)
	if err != nil && !isReported(err) {
		fmt.Fprintf(stderr, "Error: %s\n", errorText(err))
	}
	return err
}

func (m *Main) run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("aocfetch"),
		kong.Description("Fetch an Advent of Code puzzle and convert it to markdown"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle no arguments
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no arguments provided")
	}

	// Handle help flags
	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	if _, err := parser.Parse(args); err != nil {
		return err
	}

	baseURL, ids, err := resolveTargets(cli.Target, cli.Day, cli.BaseURL)
	if err != nil {
		return err
	}
	if cli.Output != "" && len(ids) > 1 {
		return aocfetch.Errorf(aocfetch.EINVALID, "--output cannot be combined with a range of days")
	}
	if cli.Input && cli.Cookie == "" {
		return aocfetch.Errorf(aocfetch.EUNAUTHORIZED, "session cookie required to download input (pass --cookie or set AOC_SESSION)")
	}

	logger := newLogger(stderr, cli.Verbose)

	// Wire dependencies
	fetcher := aocslog.NewLoggingFetcher(
		aochttp.NewFetcher(
			aochttp.WithTimeout(cli.Timeout),
			aochttp.WithSession(cli.Cookie),
			aochttp.WithMinInterval(cli.Interval),
		),
		logger,
	)
	defer fetcher.Close()

	extractor := aocslog.NewLoggingRegionExtractor(html.NewRegionExtractor(aocfetch.DefaultRegionTag), logger)
	converter := aocslog.NewLoggingConverter(newConverter(cli.Converter, baseURL), logger)

	var opts []PuzzleFetcherOption
	if cli.Sample {
		opts = append(opts, WithSampleExtractor(goquery.NewSampleExtractor()))
	}

	deps := &Dependencies{
		Ctx:     ctx,
		Stdout:  stdout,
		Stderr:  stderr,
		Puzzles: NewPuzzleFetcher(baseURL, fetcher, extractor, converter, opts...),
		Store:   fs.NewStore(cli.Dir),
	}

	cmd := &FetchCmd{
		BaseURL: baseURL,
		IDs:     ids,
		Output:  cli.Output,
		Input:   cli.Input,
		Sample:  cli.Sample,
	}

	return cmd.Run(deps)
}

// resolveTargets turns the positional arguments into a site root and the
// puzzles to fetch. The target is either a puzzle URL or a year that must be
// followed by a day or day range.
func resolveTargets(target, day, defaultBaseURL string) (string, []aocfetch.PuzzleID, error) {
	if strings.Contains(target, "://") {
		if day != "" {
			return "", nil, aocfetch.Errorf(aocfetch.EINVALID, "day %q cannot be combined with a puzzle URL", day)
		}
		baseURL, id, err := aocfetch.ParsePuzzleURL(target)
		if err != nil {
			return "", nil, err
		}
		return baseURL, []aocfetch.PuzzleID{id}, nil
	}

	if day == "" {
		return "", nil, aocfetch.Errorf(aocfetch.EINVALID, "invalid URL format: %s (expected %s/YYYY/day/D or YEAR DAY)", target, aocfetch.DefaultBaseURL)
	}

	ids, err := aocfetch.ParsePuzzleIDs(target, day)
	if err != nil {
		return "", nil, err
	}
	return strings.TrimSuffix(defaultBaseURL, "/"), ids, nil
}

// reportedError marks a failure the fetch command already described to the
// user, so Run does not print it a second time.
type reportedError struct {
	err error
}

func (e *reportedError) Error() string { return e.err.Error() }
func (e *reportedError) Unwrap() error { return e.err }

func reported(err error) error {
	return &reportedError{err: err}
}

func isReported(err error) bool {
	var r *reportedError
	return errors.As(err, &r)
}

// errorText returns the application message for coded errors and the full
// error chain otherwise.
func errorText(err error) string {
	if aocfetch.ErrorCode(err) == aocfetch.EINTERNAL {
		return err.Error()
	}
	return aocfetch.ErrorMessage(err)
}

func newConverter(name, baseURL string) aocfetch.Converter {
	if name == "commonmark" {
		return htmltomarkdown.NewConverter(htmltomarkdown.WithDomain(baseURL))
	}
	return rules.NewConverter()
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	if !verbose {
		return slog.New(slog.DiscardHandler)
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
}
