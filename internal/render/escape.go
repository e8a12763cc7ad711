// Package render turns a document and its mistakes into colorized
// terminal output, in either a per-mistake list or a whole-document
// augmented reconstruction.
package render

import (
	"regexp"

	"github.com/rivo/uniseg"
)

// sgrPattern matches one ANSI SGR sequence: ESC, '[', any run of
// non-'m' characters, 'm'.
var sgrPattern = regexp.MustCompile("\x1b\\[[^m]*m")

// StripEscapes removes all ANSI SGR sequences from s.
func StripEscapes(s string) string {
	return sgrPattern.ReplaceAllString(s, "")
}

// VisibleWidth is the terminal display width of s with escape sequences
// excluded. Alignment and wrapping are always computed on this, never on
// raw byte length.
func VisibleWidth(s string) int {
	return uniseg.StringWidth(StripEscapes(s))
}
