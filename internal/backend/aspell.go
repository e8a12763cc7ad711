package backend

import (
	"strconv"
	"strings"

	"github.com/spellcast/spellcast/internal/mistake"
)

// Aspell invokes an aspell-compatible checker in pipe mode ("aspell -a")
// and parses its line-oriented reply grammar.
//
// Every document line is sent prefixed with the '^' sentinel, which
// forces the checker to treat the line as data and keeps it from
// skipping lines. The checker counts the sentinel as column 1, so its
// 1-based offset reports are off by two from the real 0-based in-line
// offset; subtracting one corrects both at once.
type Aspell struct {
	// Command overrides the checker binary. Defaults to "aspell".
	Command string
}

const sentinel = "^"

func (a *Aspell) Check(lines []string, opts []string) ([]mistake.Mistake, error) {
	name := a.Command
	if name == "" {
		name = "aspell"
	}
	out, err := runPipe(name, append([]string{"-a"}, opts...), encodePipeRequest(lines))
	if err != nil {
		return nil, &UnavailableError{Backend: "aspell", Err: err}
	}
	return parsePipeReplies(out)
}

// encodePipeRequest joins the document lines with newlines, prefixing
// each one, including empty ones, with the sentinel.
func encodePipeRequest(lines []string) string {
	var b strings.Builder
	for i, line := range lines {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(sentinel)
		b.WriteString(line)
	}
	return b.String()
}

// parsePipeReplies walks the checker's reply lines. An empty reply
// advances to the next document line; '*' (correct), '@' (directive
// echo) and '+' (root/affix match, which carries no offset) produce no
// mistake; '#' and '&' encode misses.
func parsePipeReplies(out string) ([]mistake.Mistake, error) {
	if out == "" {
		return nil, nil
	}
	var mistakes []mistake.Mistake
	line := 0
	for _, reply := range strings.Split(strings.TrimSuffix(out, "\n"), "\n") {
		switch {
		case reply == "":
			line++
		case reply[0] == '*' || reply[0] == '@' || reply[0] == '+':
			// No mistake, line counter unchanged.
		case reply[0] == '#':
			m, err := parseMiss(reply)
			if err != nil {
				return nil, err
			}
			m.Line = line
			mistakes = append(mistakes, m)
		case reply[0] == '&':
			m, err := parseMissWithSuggestions(reply)
			if err != nil {
				return nil, err
			}
			m.Line = line
			mistakes = append(mistakes, m)
		default:
			return nil, &ProtocolError{Backend: "aspell", Reply: reply, Reason: "unknown reply marker"}
		}
	}
	return mistakes, nil
}

// parseMiss parses a miss without suggestions:
//
//	# WORD ONE_BASED_OFFSET
func parseMiss(reply string) (mistake.Mistake, error) {
	fields := strings.Split(reply, " ")
	if len(fields) != 3 {
		return mistake.Mistake{}, &ProtocolError{Backend: "aspell", Reply: reply, Reason: "want marker, word and offset"}
	}
	offset, err := strconv.Atoi(fields[2])
	if err != nil {
		return mistake.Mistake{}, &ProtocolError{Backend: "aspell", Reply: reply, Reason: "non-numeric offset field"}
	}
	return mistake.Mistake{Word: fields[1], Offset: offset - 1}, nil
}

// parseMissWithSuggestions parses a miss with suggestions:
//
//	& WORD SUGGESTION_COUNT ONE_BASED_OFFSET: SUGGESTION, SUGGESTION, ...
func parseMissWithSuggestions(reply string) (mistake.Mistake, error) {
	head, tail, ok := strings.Cut(reply, ":")
	if !ok {
		return mistake.Mistake{}, &ProtocolError{Backend: "aspell", Reply: reply, Reason: "missing ':' separator"}
	}
	fields := strings.Split(head, " ")
	if len(fields) != 4 {
		return mistake.Mistake{}, &ProtocolError{Backend: "aspell", Reply: reply, Reason: "want marker, word, count and offset"}
	}
	offset, err := strconv.Atoi(fields[3])
	if err != nil {
		return mistake.Mistake{}, &ProtocolError{Backend: "aspell", Reply: reply, Reason: "non-numeric offset field"}
	}
	return mistake.Mistake{
		Word:        fields[1],
		Offset:      offset - 1,
		Suggestions: strings.Split(strings.TrimPrefix(tail, " "), ", "),
	}, nil
}
