// Package mistake defines the normalized record for one flagged span of
// text and the grouping helpers the renderers consume.
package mistake

import "errors"

// ErrOutOfBounds reports a mistake position that does not fit inside the
// document it was reported against. It signals a contract violation by
// the backend and is surfaced, never silently clamped.
var ErrOutOfBounds = errors.New("position outside document")

// Mistake is one flagged span: the word, where it sits in the document,
// and the checker's suggestions (possibly none).
type Mistake struct {
	Word        string
	Line        int // 0-based document line
	Offset      int // 0-based byte offset within the line
	Suggestions []string
}

// GroupByLine buckets mistakes by line number, preserving their original
// order within each line.
func GroupByLine(mistakes []Mistake) map[int][]Mistake {
	byLine := make(map[int][]Mistake)
	for _, m := range mistakes {
		byLine[m.Line] = append(byLine[m.Line], m)
	}
	return byLine
}

// IndexByOffset maps each mistake's start offset to the mistake itself.
// When two mistakes share a start offset, the later one replaces the
// earlier one; overlapping spans are otherwise left alone.
func IndexByOffset(mistakes []Mistake) map[int]Mistake {
	byOffset := make(map[int]Mistake, len(mistakes))
	for _, m := range mistakes {
		byOffset[m.Offset] = m
	}
	return byOffset
}
