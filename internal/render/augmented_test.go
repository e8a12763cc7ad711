package render

import (
	"errors"
	"strings"
	"testing"

	"github.com/spellcast/spellcast/internal/mistake"
)

func TestAugmentedZeroMistakesRoundTrip(t *testing.T) {
	// With no mistakes the reconstruction is the input, byte for byte.
	lines := []string{"Tihs is a tset.", "", "second line", "\ttabs and  spaces"}

	var b strings.Builder
	r := &AugmentedRenderer{Palette: DefaultPalette()}
	if err := r.Render(&b, lines, nil); err != nil {
		t.Fatalf("Render() failed: %v", err)
	}

	want := strings.Join(lines, "\n") + "\n"
	if got := b.String(); got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestAugmentedHighlightsSpans(t *testing.T) {
	lines := []string{"abcde fghij"}
	mistakes := []mistake.Mistake{
		{Word: "abcde", Line: 0, Offset: 0},
		{Word: "fghij", Line: 0, Offset: 6},
	}

	var b strings.Builder
	r := &AugmentedRenderer{Palette: DefaultPalette()}
	if err := r.Render(&b, lines, mistakes); err != nil {
		t.Fatalf("Render() failed: %v", err)
	}

	want := "\x1b[1;31mabcde\x1b[0m \x1b[1;31mfghij\x1b[0m\n"
	if got := b.String(); got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestAugmentedTwoMarkerPairsPerLine(t *testing.T) {
	// Two mistakes on one line produce exactly two on/off marker pairs.
	lines := []string{"wrold and tihs here"}
	mistakes := []mistake.Mistake{
		{Word: "wrold", Line: 0, Offset: 0},
		{Word: "tihs", Line: 0, Offset: 10},
	}

	var b strings.Builder
	r := &AugmentedRenderer{Palette: DefaultPalette()}
	if err := r.Render(&b, lines, mistakes); err != nil {
		t.Fatalf("Render() failed: %v", err)
	}
	out := b.String()

	if got := strings.Count(out, "\x1b[1;31m"); got != 2 {
		t.Errorf("output has %d highlight-on markers, want 2", got)
	}
	if got := strings.Count(out, "\x1b[0m"); got != 2 {
		t.Errorf("output has %d highlight-off markers, want 2", got)
	}
	if got := StripEscapes(out); got != lines[0]+"\n" {
		t.Errorf("stripped output = %q, want the input line back", got)
	}
}

func TestAugmentedUntouchedLinesPassThrough(t *testing.T) {
	lines := []string{"clean line", "wrold", "another clean line"}
	mistakes := []mistake.Mistake{{Word: "wrold", Line: 1, Offset: 0}}

	var b strings.Builder
	r := &AugmentedRenderer{Palette: DefaultPalette()}
	if err := r.Render(&b, lines, mistakes); err != nil {
		t.Fatalf("Render() failed: %v", err)
	}

	outLines := strings.Split(b.String(), "\n")
	if outLines[0] != "clean line" || outLines[2] != "another clean line" {
		t.Errorf("clean lines were altered: %q", outLines)
	}
	if !strings.Contains(outLines[1], "\x1b[1;31mwrold\x1b[0m") {
		t.Errorf("mistake line %q is not highlighted", outLines[1])
	}
}

func TestAugmentedHighlightAtLineEnd(t *testing.T) {
	// A flagged span ending exactly at the line boundary still gets its
	// closing marker, before the newline.
	lines := []string{"a tset"}
	mistakes := []mistake.Mistake{{Word: "tset", Line: 0, Offset: 2}}

	var b strings.Builder
	r := &AugmentedRenderer{Palette: DefaultPalette()}
	if err := r.Render(&b, lines, mistakes); err != nil {
		t.Fatalf("Render() failed: %v", err)
	}

	want := "a \x1b[1;31mtset\x1b[0m\n"
	if got := b.String(); got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestAugmentedSameOffsetLaterWins(t *testing.T) {
	lines := []string{"abcde"}
	mistakes := []mistake.Mistake{
		{Word: "ab", Line: 0, Offset: 0},
		{Word: "abcd", Line: 0, Offset: 0},
	}

	var b strings.Builder
	r := &AugmentedRenderer{Palette: DefaultPalette()}
	if err := r.Render(&b, lines, mistakes); err != nil {
		t.Fatalf("Render() failed: %v", err)
	}

	want := "\x1b[1;31mabcd\x1b[0me\n"
	if got := b.String(); got != want {
		t.Errorf("Render() = %q, want the later mistake's span highlighted %q", got, want)
	}
}

func TestAugmentedPlainPaletteIsIdentity(t *testing.T) {
	lines := []string{"Tihs is a tset."}
	mistakes := []mistake.Mistake{{Word: "Tihs", Line: 0, Offset: 0}}

	var b strings.Builder
	r := &AugmentedRenderer{}
	if err := r.Render(&b, lines, mistakes); err != nil {
		t.Fatalf("Render() failed: %v", err)
	}

	if got, want := b.String(), "Tihs is a tset.\n"; got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestAugmentedOutOfBoundsMistake(t *testing.T) {
	lines := []string{"short"}
	m := mistake.Mistake{Word: "far", Line: 9, Offset: 0}

	r := &AugmentedRenderer{}
	err := r.Render(&strings.Builder{}, lines, []mistake.Mistake{m})
	if !errors.Is(err, mistake.ErrOutOfBounds) {
		t.Errorf("Render() = %v, want ErrOutOfBounds", err)
	}
}
