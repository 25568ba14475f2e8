// Package aocfetch fetches Advent of Code puzzle pages and saves them as
// markdown. It isolates the puzzle's article regions from the page HTML,
// rewrites each region to markdown and writes the result to a local file.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., html/, goquery/, http/).
package aocfetch
