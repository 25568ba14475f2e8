package aocfetch

import (
	"context"
	"fmt"
	"net/url"
	"regexp"
	"strconv"
	"strings"
)

// DefaultBaseURL is the Advent of Code site root.
const DefaultBaseURL = "https://adventofcode.com"

// FirstYear is the first year Advent of Code was held.
const FirstYear = 2015

// MaxDay is the last day a puzzle can be published on.
const MaxDay = 25

// PuzzleID identifies a single puzzle by year and day.
type PuzzleID struct {
	Year int `json:"year"`
	Day  int `json:"day"`
}

// Validate returns an error if the year or day is out of range.
func (id PuzzleID) Validate() error {
	if id.Year < FirstYear {
		return Errorf(EINVALID, "year %d is before the first Advent of Code (%d)", id.Year, FirstYear)
	}
	if id.Day < 1 || id.Day > MaxDay {
		return Errorf(EINVALID, "day must be between 1 and %d, got %d", MaxDay, id.Day)
	}
	return nil
}

// URL returns the puzzle page URL relative to the given site root.
func (id PuzzleID) URL(baseURL string) string {
	return fmt.Sprintf("%s/%d/day/%d", strings.TrimSuffix(baseURL, "/"), id.Year, id.Day)
}

// InputURL returns the personal puzzle input URL relative to the given site root.
func (id PuzzleID) InputURL(baseURL string) string {
	return id.URL(baseURL) + "/input"
}

// Slug returns the zero-padded day segment used in file paths, e.g. "day07".
func (id PuzzleID) Slug() string {
	return fmt.Sprintf("day%02d", id.Day)
}

// String returns a display name such as "Day 07 (2025)".
func (id PuzzleID) String() string {
	return fmt.Sprintf("Day %02d (%d)", id.Day, id.Year)
}

var puzzlePathRe = regexp.MustCompile(`^/(\d{4})/day/(\d+)/?$`)

// ParsePuzzleURL splits a puzzle page URL into its site root and puzzle ID.
// Example: https://adventofcode.com/2025/day/1 → ("https://adventofcode.com", {2025, 1}).
func ParsePuzzleURL(rawURL string) (baseURL string, id PuzzleID, err error) {
	u, err := url.Parse(rawURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return "", PuzzleID{}, Errorf(EINVALID, "invalid URL format: %s (expected %s/YYYY/day/D)", rawURL, DefaultBaseURL)
	}

	m := puzzlePathRe.FindStringSubmatch(u.Path)
	if m == nil {
		return "", PuzzleID{}, Errorf(EINVALID, "invalid URL format: %s (expected %s/YYYY/day/D)", rawURL, DefaultBaseURL)
	}

	year, _ := strconv.Atoi(m[1])
	day, err := strconv.Atoi(m[2])
	if err != nil {
		return "", PuzzleID{}, Errorf(EINVALID, "invalid day in URL: %s", rawURL)
	}

	id = PuzzleID{Year: year, Day: day}
	if err := id.Validate(); err != nil {
		return "", PuzzleID{}, err
	}

	return u.Scheme + "://" + u.Host, id, nil
}

// ParsePuzzleIDs parses a year and a day specification into puzzle IDs.
// The day may be a single number ("7") or an inclusive range ("1-5").
func ParsePuzzleIDs(year, days string) ([]PuzzleID, error) {
	y, err := strconv.Atoi(strings.TrimSpace(year))
	if err != nil {
		return nil, Errorf(EINVALID, "invalid year %q", year)
	}

	first, last, err := parseDayRange(strings.TrimSpace(days))
	if err != nil {
		return nil, err
	}

	ids := make([]PuzzleID, 0, last-first+1)
	for d := first; d <= last; d++ {
		id := PuzzleID{Year: y, Day: d}
		if err := id.Validate(); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func parseDayRange(s string) (first, last int, err error) {
	lo, hi, isRange := strings.Cut(s, "-")
	first, err = strconv.Atoi(lo)
	if err != nil {
		return 0, 0, Errorf(EINVALID, "invalid day %q", s)
	}
	if !isRange {
		return first, first, nil
	}

	last, err = strconv.Atoi(hi)
	if err != nil {
		return 0, 0, Errorf(EINVALID, "invalid day range %q", s)
	}
	if last < first {
		return 0, 0, Errorf(EINVALID, "day range %q is reversed", s)
	}
	return first, last, nil
}

// NormalizeSession turns a bare session token into a Cookie header value.
// Values that already carry the "session=" prefix are returned unchanged.
func NormalizeSession(cookie string) string {
	cookie = strings.TrimSpace(cookie)
	if cookie == "" || strings.HasPrefix(cookie, "session=") {
		return cookie
	}
	return "session=" + cookie
}

// Puzzle represents a fetched puzzle converted to markdown.
type Puzzle struct {
	ID  PuzzleID
	URL string

	// Parts holds one markdown fragment per article region, in page order.
	// Part 2 only appears once Part 1 has been solved by the session owner.
	Parts []string

	// Sample is the first example input block, if one was found.
	Sample string
}

// FormatPuzzle renders a puzzle as a markdown document with a title and
// source link header. Sections are separated by blank lines.
func FormatPuzzle(p *Puzzle) string {
	sections := make([]string, 0, len(p.Parts)+2)
	sections = append(sections,
		fmt.Sprintf("# Advent of Code %d - Day %d", p.ID.Year, p.ID.Day),
		fmt.Sprintf("[Puzzle Link](%s)", p.URL),
	)
	sections = append(sections, p.Parts...)

	return strings.Join(sections, "\n\n") + "\n"
}

// InputKind distinguishes the example input from the personal puzzle input.
type InputKind string

// InputKind constants.
const (
	InputSample InputKind = "sample"
	InputActual InputKind = "actual"
)

// FileName returns the file name an input of this kind is stored under.
func (k InputKind) FileName() string {
	if k == InputSample {
		return "sample.txt"
	}
	return "input.txt"
}

// PuzzleFetcher retrieves puzzles and converts them to markdown.
// Implementations hide page retrieval, region extraction and conversion.
type PuzzleFetcher interface {
	// FetchPuzzle retrieves the puzzle page and converts every article region.
	// Returns ENOTFOUND if the page holds no article region, which happens
	// when the puzzle has not been unlocked yet.
	FetchPuzzle(ctx context.Context, id PuzzleID) (*Puzzle, error)

	// FetchInput retrieves the personal puzzle input for the session owner.
	FetchInput(ctx context.Context, id PuzzleID) (string, error)
}

// SaveResult reports where content was stored.
type SaveResult struct {
	Path string

	// Unchanged is true when the file already held identical content and
	// was left untouched.
	Unchanged bool
}

// PuzzleStore persists puzzles and inputs.
type PuzzleStore interface {
	// SavePuzzle writes the formatted puzzle. An empty path selects the
	// default location for the puzzle ID.
	SavePuzzle(ctx context.Context, p *Puzzle, path string) (*SaveResult, error)

	// SaveInput writes puzzle input of the given kind.
	SaveInput(ctx context.Context, id PuzzleID, kind InputKind, content string) (*SaveResult, error)
}
