package document

import (
	"fmt"
	"sort"

	"github.com/spellcast/spellcast/internal/mistake"
)

// Boundaries records the flat offset at which each line starts when the
// document is joined with single newlines. Entry i is the total length
// of lines 0..i-1 plus one newline per line; the final entry is the
// whole document length including its trailing newline. The sequence is
// strictly increasing.
type Boundaries []int

// NewBoundaries builds the boundary table for the given lines.
func NewBoundaries(lines []string) Boundaries {
	b := make(Boundaries, len(lines)+1)
	total := 0
	for i, line := range lines {
		b[i] = total
		total += len(line) + 1
	}
	b[len(lines)] = total
	return b
}

// Locate translates a document-flat offset into a 0-based line number
// and byte offset within that line. An offset exactly equal to a line's
// start boundary belongs to that line, never to the previous line's
// trailing newline.
func (b Boundaries) Locate(flat int) (line, col int, err error) {
	if len(b) < 2 || flat < 0 || flat >= b[len(b)-1] {
		return 0, 0, fmt.Errorf("flat offset %d: %w", flat, mistake.ErrOutOfBounds)
	}
	// Rightmost boundary entry <= flat.
	line = sort.SearchInts(b, flat+1) - 1
	return line, flat - b[line], nil
}
