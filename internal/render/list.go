package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spellcast/spellcast/internal/mistake"
)

// suggestionWidth is the visible column budget for suggestion lines.
const suggestionWidth = 80

// suggestionLabel prefixes the suggestion block; continuation lines are
// indented to align under it.
const suggestionLabel = "  Suggestions: "

// ListRenderer prints each mistake as an annotated context line with an
// underline and a wrapped suggestion list, compiler style.
type ListRenderer struct {
	Filename string
	Palette  Palette
	Width    int // visible column budget for suggestion lines; 0 means 80
}

// Render writes one entry per mistake, in original sequence order.
func (r *ListRenderer) Render(w io.Writer, lines []string, mistakes []mistake.Mistake) error {
	for _, m := range mistakes {
		if err := checkSpan(lines, m); err != nil {
			return err
		}
		if err := r.renderOne(w, lines[m.Line], m); err != nil {
			return err
		}
	}
	return nil
}

func (r *ListRenderer) renderOne(w io.Writer, line string, m mistake.Mistake) error {
	p := r.Palette
	end := m.Offset + len(m.Word)

	prefix := p.File + r.Filename + p.Separator + ":" + p.LineNo + strconv.Itoa(m.Line) + p.Separator + ":" + p.Reset
	if _, err := fmt.Fprintf(w, "%s%s%s%s%s%s\n",
		prefix, line[:m.Offset], p.Highlight, line[m.Offset:end], p.Reset, line[end:]); err != nil {
		return err
	}

	// The underline sits directly beneath the flagged word, so the
	// indent counts visible prefix columns only. The in-line offset is
	// a byte count, so alignment assumes one column per byte in the
	// text ahead of the flagged span.
	indent := VisibleWidth(prefix) + m.Offset
	if _, err := fmt.Fprintf(w, "%s%s%s%s\n",
		strings.Repeat(" ", indent), p.Highlight, strings.Repeat("~", VisibleWidth(m.Word)), p.Reset); err != nil {
		return err
	}

	return r.renderSuggestions(w, m.Suggestions)
}

// renderSuggestions packs the suggestions greedily into lines no wider
// than the column budget. A single suggestion wider than the budget goes
// on a line of its own. Nothing is printed when there are none.
func (r *ListRenderer) renderSuggestions(w io.Writer, suggestions []string) error {
	if len(suggestions) == 0 {
		return nil
	}
	width := r.Width
	if width <= 0 {
		width = suggestionWidth
	}

	var b strings.Builder
	b.WriteString(suggestionLabel)
	cur := len(suggestionLabel)
	for i, s := range suggestions {
		if i > 0 {
			if cur+2+VisibleWidth(s) > width {
				b.WriteString(",\n")
				b.WriteString(strings.Repeat(" ", len(suggestionLabel)))
				cur = len(suggestionLabel)
			} else {
				b.WriteString(", ")
				cur += 2
			}
		}
		b.WriteString(s)
		cur += VisibleWidth(s)
	}
	b.WriteString("\n\n")
	_, err := io.WriteString(w, b.String())
	return err
}

// checkSpan rejects mistakes that do not fit inside the document. Such a
// record is a backend contract violation and is surfaced rather than
// clamped or skipped.
func checkSpan(lines []string, m mistake.Mistake) error {
	if m.Line < 0 || m.Line >= len(lines) {
		return fmt.Errorf("mistake %q on line %d of a %d-line document: %w",
			m.Word, m.Line, len(lines), mistake.ErrOutOfBounds)
	}
	if m.Offset < 0 || m.Offset+len(m.Word) > len(lines[m.Line]) {
		return fmt.Errorf("mistake %q at span [%d,%d) on line %d: %w",
			m.Word, m.Offset, m.Offset+len(m.Word), m.Line, mistake.ErrOutOfBounds)
	}
	return nil
}
