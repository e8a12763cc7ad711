package render

import (
	"io"
	"strings"

	"github.com/spellcast/spellcast/internal/mistake"
)

// AugmentedRenderer reconstructs the whole document, wrapping flagged
// spans in highlight markers and passing everything else through
// untouched. With an empty palette the output is byte-identical to the
// input.
type AugmentedRenderer struct {
	Palette Palette
}

func (r *AugmentedRenderer) Render(w io.Writer, lines []string, mistakes []mistake.Mistake) error {
	for _, m := range mistakes {
		if err := checkSpan(lines, m); err != nil {
			return err
		}
	}
	byLine := mistake.GroupByLine(mistakes)

	var b strings.Builder
	for n, line := range lines {
		onLine, ok := byLine[n]
		if !ok {
			b.WriteString(line)
			b.WriteByte('\n')
			continue
		}
		// When two mistakes start at the same offset the later one wins.
		byOffset := mistake.IndexByOffset(onLine)
		end := -1
		for offset := 0; offset <= len(line); offset++ {
			if offset == end {
				b.WriteString(r.Palette.Reset)
				end = -1
			}
			if m, ok := byOffset[offset]; ok {
				end = offset + len(m.Word)
				b.WriteString(r.Palette.Highlight)
			}
			if offset < len(line) {
				b.WriteByte(line[offset])
			} else {
				b.WriteByte('\n')
			}
		}
	}
	_, err := io.WriteString(w, b.String())
	return err
}
