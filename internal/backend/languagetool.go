package backend

import (
	"fmt"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/spellcast/spellcast/internal/document"
	"github.com/spellcast/spellcast/internal/mistake"
)

// LanguageTool invokes a languagetool-style checker that consumes the
// whole document as one newline-joined buffer and reports matches by
// flat character offset.
//
// Only the offset and length fields of each match are trusted: the
// flagged word is recovered by slicing the buffer that was sent, and
// suggestions are never populated. This is a known limitation of the
// flat-offset protocol handling, not an oversight.
type LanguageTool struct {
	// Command overrides the checker binary. Defaults to "languagetool".
	Command string
}

func (lt *LanguageTool) Check(lines []string, opts []string) ([]mistake.Mistake, error) {
	name := lt.Command
	if name == "" {
		name = "languagetool"
	}
	buf := strings.Join(lines, "\n")
	out, err := runPipe(name, opts, buf)
	if err != nil {
		return nil, &UnavailableError{Backend: "languagetool", Err: err}
	}
	return parseMatches(lines, buf, out)
}

// parseMatches decodes the structured response and translates each flat
// match offset back into a (line, column) position through the boundary
// table. A span outside the sent buffer is a contract violation and is
// surfaced, not clamped.
func parseMatches(lines []string, buf, out string) ([]mistake.Mistake, error) {
	if !gjson.Valid(out) {
		return nil, &ProtocolError{Backend: "languagetool", Reason: "undecodable response"}
	}
	matches := gjson.Get(out, "matches")
	if !matches.IsArray() {
		return nil, &ProtocolError{Backend: "languagetool", Reason: `response has no "matches" array`}
	}

	bounds := document.NewBoundaries(lines)
	var mistakes []mistake.Mistake
	var iterErr error
	matches.ForEach(func(_, match gjson.Result) bool {
		offField := match.Get("offset")
		lenField := match.Get("length")
		if !offField.Exists() || !lenField.Exists() {
			iterErr = &ProtocolError{Backend: "languagetool", Reason: "match without offset or length field"}
			return false
		}
		offset, length := int(offField.Int()), int(lenField.Int())
		if length <= 0 || offset < 0 || offset+length > len(buf) {
			iterErr = fmt.Errorf("languagetool: match span [%d,%d): %w", offset, offset+length, mistake.ErrOutOfBounds)
			return false
		}
		line, col, err := bounds.Locate(offset)
		if err != nil {
			iterErr = err
			return false
		}
		mistakes = append(mistakes, mistake.Mistake{
			Word:   buf[offset : offset+length],
			Line:   line,
			Offset: col,
		})
		return true
	})
	if iterErr != nil {
		return nil, iterErr
	}
	return mistakes, nil
}
