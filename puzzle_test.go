package aocfetch_test

import (
	"testing"

	"github.com/qverkk/aocfetch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPuzzleID(t *testing.T) {
	t.Parallel()

	id := aocfetch.PuzzleID{Year: 2025, Day: 7}

	assert.Equal(t, "https://adventofcode.com/2025/day/7", id.URL(aocfetch.DefaultBaseURL))
	assert.Equal(t, "https://adventofcode.com/2025/day/7", id.URL("https://adventofcode.com/"))
	assert.Equal(t, "https://adventofcode.com/2025/day/7/input", id.InputURL(aocfetch.DefaultBaseURL))
	assert.Equal(t, "day07", id.Slug())
	assert.Equal(t, "Day 07 (2025)", id.String())
}

func TestPuzzleID_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		id      aocfetch.PuzzleID
		wantErr bool
	}{
		{name: "first puzzle", id: aocfetch.PuzzleID{Year: 2015, Day: 1}},
		{name: "last day", id: aocfetch.PuzzleID{Year: 2024, Day: 25}},
		{name: "year too early", id: aocfetch.PuzzleID{Year: 2014, Day: 1}, wantErr: true},
		{name: "day zero", id: aocfetch.PuzzleID{Year: 2025, Day: 0}, wantErr: true},
		{name: "day after christmas", id: aocfetch.PuzzleID{Year: 2025, Day: 26}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.id.Validate()

			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, aocfetch.EINVALID, aocfetch.ErrorCode(err))
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestParsePuzzleURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		url      string
		wantBase string
		wantID   aocfetch.PuzzleID
		wantErr  bool
	}{
		{
			name:     "canonical URL",
			url:      "https://adventofcode.com/2025/day/1",
			wantBase: "https://adventofcode.com",
			wantID:   aocfetch.PuzzleID{Year: 2025, Day: 1},
		},
		{
			name:     "trailing slash",
			url:      "https://adventofcode.com/2023/day/12/",
			wantBase: "https://adventofcode.com",
			wantID:   aocfetch.PuzzleID{Year: 2023, Day: 12},
		},
		{
			name:     "ignores fragment",
			url:      "https://adventofcode.com/2023/day/12#part2",
			wantBase: "https://adventofcode.com",
			wantID:   aocfetch.PuzzleID{Year: 2023, Day: 12},
		},
		{
			name:     "other host keeps its root",
			url:      "http://127.0.0.1:8080/2024/day/3",
			wantBase: "http://127.0.0.1:8080",
			wantID:   aocfetch.PuzzleID{Year: 2024, Day: 3},
		},
		{name: "input URL", url: "https://adventofcode.com/2025/day/1/input", wantErr: true},
		{name: "no scheme", url: "adventofcode.com/2025/day/1", wantErr: true},
		{name: "leaderboard", url: "https://adventofcode.com/2025/leaderboard", wantErr: true},
		{name: "day out of range", url: "https://adventofcode.com/2025/day/30", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			base, id, err := aocfetch.ParsePuzzleURL(tt.url)

			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, aocfetch.EINVALID, aocfetch.ErrorCode(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantBase, base)
			assert.Equal(t, tt.wantID, id)
		})
	}
}

func TestParsePuzzleIDs(t *testing.T) {
	t.Parallel()

	t.Run("single day", func(t *testing.T) {
		t.Parallel()

		ids, err := aocfetch.ParsePuzzleIDs("2025", "6")

		require.NoError(t, err)
		assert.Equal(t, []aocfetch.PuzzleID{{Year: 2025, Day: 6}}, ids)
	})

	t.Run("inclusive range", func(t *testing.T) {
		t.Parallel()

		ids, err := aocfetch.ParsePuzzleIDs("2024", "3-5")

		require.NoError(t, err)
		assert.Equal(t, []aocfetch.PuzzleID{
			{Year: 2024, Day: 3},
			{Year: 2024, Day: 4},
			{Year: 2024, Day: 5},
		}, ids)
	})

	for _, tc := range []struct{ year, days string }{
		{"twenty", "1"},
		{"2025", "x"},
		{"2025", "1-"},
		{"2025", "5-3"},
		{"2025", "24-26"},
	} {
		t.Run("rejects "+tc.year+" "+tc.days, func(t *testing.T) {
			t.Parallel()

			_, err := aocfetch.ParsePuzzleIDs(tc.year, tc.days)

			require.Error(t, err)
			assert.Equal(t, aocfetch.EINVALID, aocfetch.ErrorCode(err))
		})
	}
}

func TestNormalizeSession(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "session=abc", aocfetch.NormalizeSession("abc"))
	assert.Equal(t, "session=abc", aocfetch.NormalizeSession("session=abc"))
	assert.Equal(t, "session=abc", aocfetch.NormalizeSession("  abc\n"))
	assert.Empty(t, aocfetch.NormalizeSession(""))
}

func TestFormatPuzzle(t *testing.T) {
	t.Parallel()

	t.Run("joins header and parts with blank lines", func(t *testing.T) {
		t.Parallel()

		p := &aocfetch.Puzzle{
			ID:    aocfetch.PuzzleID{Year: 2025, Day: 1},
			URL:   "https://adventofcode.com/2025/day/1",
			Parts: []string{"## Day 1: Secret Entrance\nPart one.", "## Part Two\nPart two."},
		}

		got := aocfetch.FormatPuzzle(p)

		assert.Equal(t, "# Advent of Code 2025 - Day 1\n\n"+
			"[Puzzle Link](https://adventofcode.com/2025/day/1)\n\n"+
			"## Day 1: Secret Entrance\nPart one.\n\n"+
			"## Part Two\nPart two.\n", got)
	})

	t.Run("formats header without parts", func(t *testing.T) {
		t.Parallel()

		got := aocfetch.FormatPuzzle(&aocfetch.Puzzle{
			ID:  aocfetch.PuzzleID{Year: 2016, Day: 9},
			URL: "https://adventofcode.com/2016/day/9",
		})

		assert.Equal(t, "# Advent of Code 2016 - Day 9\n\n[Puzzle Link](https://adventofcode.com/2016/day/9)\n", got)
	})
}

func TestInputKind_FileName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "sample.txt", aocfetch.InputSample.FileName())
	assert.Equal(t, "input.txt", aocfetch.InputActual.FileName())
}
