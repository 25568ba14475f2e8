package main_test

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/qverkk/aocfetch"
	main "github.com/qverkk/aocfetch/cmd/aocfetch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const day1Page = `<!DOCTYPE html>
<html lang="en-us">
<head><title>Day 1 - Advent of Code 2025</title></head>
<body>
<header><h1 class="title-global"><a href="/">Advent of Code</a></h1></header>
<main>
<article class="day-desc"><h2>--- Day 1: Secret Entrance ---</h2><p>The dial starts at <code>50</code>.</p>
<p>For example:</p>
<pre><code>L68
R48
</code></pre>
</article>
<p>Your puzzle answer was <code>1092</code>.</p>
<article class="day-desc"><h2 id="part2">--- Part Two ---</h2><p>Count <em>every</em> click.</p>
</article>
<p>Answer: <input type="text" name="answer" autocomplete="off"/></p>
</main>
</body>
</html>`

const lockedPage = `<!DOCTYPE html>
<html><body><main><p>Please don't repeatedly request this endpoint before it unlocks!</p></main></body></html>`

func newPuzzleServer(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/2025/day/1", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(day1Page))
	})
	mux.HandleFunc("/2025/day/1/input", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Cookie") != "session=secret" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		_, _ = w.Write([]byte("L68\nL30\nR48\n"))
	})
	mux.HandleFunc("/2025/day/2", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(lockedPage))
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func TestMain_Run_Help(t *testing.T) {
	t.Parallel()

	m := main.NewMain()
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), []string{"--help"}, &stdout, &stderr)

	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "aocfetch")
	assert.Contains(t, stdout.String(), "target")
}

func TestMain_Run_NoArgs(t *testing.T) {
	t.Parallel()

	m := main.NewMain()
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), []string{}, &stdout, &stderr)

	require.Error(t, err)
	assert.Contains(t, stdout.String(), "aocfetch")
}

// Story: Fetching a Puzzle
//
// A puzzle given by year and day is fetched, each article becomes a
// markdown section, and the result lands in puzzles/YYYY/dayDD.md.

func TestMain_Run_FetchesPuzzleByYearAndDay(t *testing.T) {
	t.Parallel()

	// Given: a site serving day 1 with both parts unlocked
	server := newPuzzleServer(t)
	dir := t.TempDir()
	var stdout, stderr bytes.Buffer

	// When: fetching 2025 day 1
	err := main.NewMain().Run(context.Background(), []string{
		"2025", "1",
		"--base-url", server.URL,
		"--dir", dir,
		"--interval", "0s",
	}, &stdout, &stderr)

	// Then: the markdown file holds the header and both parts
	require.NoError(t, err, stderr.String())

	path := filepath.Join(dir, "puzzles", "2025", "day01.md")
	content, err := os.ReadFile(path)
	require.NoError(t, err)

	assert.Equal(t, "# Advent of Code 2025 - Day 1\n\n"+
		"[Puzzle Link]("+server.URL+"/2025/day/1)\n\n"+
		"## Day 1: Secret Entrance\n"+
		"The dial starts at `50`.\n\n"+
		"For example:\n\n"+
		"```\nL68\nR48\n\n```\n\n"+
		"## Part Two\n"+
		"Count **every** click.\n", string(content))

	output := stdout.String()
	assert.Contains(t, output, "Fetching puzzle: "+server.URL+"/2025/day/1")
	assert.Contains(t, output, "Saved to: "+path)
	assert.Contains(t, output, "Found 2 parts.")
}

func TestMain_Run_FetchesPuzzleByURL(t *testing.T) {
	t.Parallel()

	server := newPuzzleServer(t)
	dir := t.TempDir()
	out := filepath.Join(dir, "day1.md")
	var stdout, stderr bytes.Buffer

	err := main.NewMain().Run(context.Background(), []string{
		server.URL + "/2025/day/1",
		"--output", out,
		"--interval", "0s",
	}, &stdout, &stderr)

	require.NoError(t, err, stderr.String())
	content, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(content), "## Day 1: Secret Entrance")
}

func TestMain_Run_SavesSampleAndInput(t *testing.T) {
	t.Parallel()

	server := newPuzzleServer(t)
	dir := t.TempDir()
	var stdout, stderr bytes.Buffer

	err := main.NewMain().Run(context.Background(), []string{
		"2025", "1",
		"--base-url", server.URL,
		"--dir", dir,
		"--interval", "0s",
		"--cookie", "secret",
		"--sample",
		"--input",
	}, &stdout, &stderr)

	require.NoError(t, err, stderr.String())

	sample, err := os.ReadFile(filepath.Join(dir, "inputs", "2025", "day01", "sample.txt"))
	require.NoError(t, err)
	assert.Equal(t, "L68\nR48\n", string(sample))

	input, err := os.ReadFile(filepath.Join(dir, "inputs", "2025", "day01", "input.txt"))
	require.NoError(t, err)
	assert.Equal(t, "L68\nL30\nR48\n", string(input))
}

func TestMain_Run_CommonmarkConverter(t *testing.T) {
	t.Parallel()

	server := newPuzzleServer(t)
	dir := t.TempDir()
	var stdout, stderr bytes.Buffer

	err := main.NewMain().Run(context.Background(), []string{
		"2025", "1",
		"--base-url", server.URL,
		"--dir", dir,
		"--interval", "0s",
		"--converter", "commonmark",
	}, &stdout, &stderr)

	require.NoError(t, err, stderr.String())
	content, err := os.ReadFile(filepath.Join(dir, "puzzles", "2025", "day01.md"))
	require.NoError(t, err)
	assert.Contains(t, string(content), "Secret Entrance")
	assert.Contains(t, string(content), "*every*")
}

func TestMain_Run_ReportsMissingContent(t *testing.T) {
	t.Parallel()

	// Given: a day that has not unlocked yet
	server := newPuzzleServer(t)
	dir := t.TempDir()
	var stdout, stderr bytes.Buffer

	// When: fetching it
	err := main.NewMain().Run(context.Background(), []string{
		"2025", "2",
		"--base-url", server.URL,
		"--dir", dir,
		"--interval", "0s",
	}, &stdout, &stderr)

	// Then: the user is told and no file is written
	require.Error(t, err)
	assert.Equal(t, aocfetch.ENOTFOUND, aocfetch.ErrorCode(err))
	assert.Equal(t, "No puzzle content found!\n", stderr.String())

	_, err = os.Stat(filepath.Join(dir, "puzzles"))
	assert.True(t, os.IsNotExist(err))
}

// Story: CLI Validation

func TestMain_Run_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
		code string
	}{
		{
			name: "year without day",
			args: []string{"2025"},
			code: aocfetch.EINVALID,
		},
		{
			name: "malformed URL",
			args: []string{"https://adventofcode.com/2025/leaderboard"},
			code: aocfetch.EINVALID,
		},
		{
			name: "URL combined with day",
			args: []string{"https://adventofcode.com/2025/day/1", "2"},
			code: aocfetch.EINVALID,
		},
		{
			name: "day out of range",
			args: []string{"2025", "26"},
			code: aocfetch.EINVALID,
		},
		{
			name: "year before first event",
			args: []string{"2014", "1"},
			code: aocfetch.EINVALID,
		},
		{
			name: "output with day range",
			args: []string{"2025", "1-3", "--output", "x.md"},
			code: aocfetch.EINVALID,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var stdout, stderr bytes.Buffer

			err := main.NewMain().Run(context.Background(), tt.args, &stdout, &stderr)

			require.Error(t, err)
			assert.Equal(t, tt.code, aocfetch.ErrorCode(err))
		})
	}
}

func TestMain_Run_RejectsUnknownConverter(t *testing.T) {
	t.Parallel()

	var stdout, stderr bytes.Buffer

	err := main.NewMain().Run(context.Background(), []string{"2025", "1", "--converter", "pandoc"}, &stdout, &stderr)

	require.Error(t, err)
}

func TestMain_Run_InputRequiresCookie(t *testing.T) {
	t.Setenv("AOC_SESSION", "")

	var stdout, stderr bytes.Buffer

	err := main.NewMain().Run(context.Background(), []string{"2025", "1", "--input"}, &stdout, &stderr)

	require.Error(t, err)
	assert.Equal(t, aocfetch.EUNAUTHORIZED, aocfetch.ErrorCode(err))
}

func TestMain_Run_PrintsValidationErrorOnce(t *testing.T) {
	t.Parallel()

	var stdout, stderr bytes.Buffer

	err := main.NewMain().Run(context.Background(), []string{"2025", "5-3"}, &stdout, &stderr)

	require.Error(t, err)
	assert.Equal(t, "Error: day range \"5-3\" is reversed\n", stderr.String())
}
