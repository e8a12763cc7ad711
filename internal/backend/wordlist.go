package backend

import (
	"fmt"
	"os"
	"strings"
	"unicode"

	"github.com/sajari/fuzzy"

	"github.com/spellcast/spellcast/internal/mistake"
)

// Wordlist is an in-process checker backed by a fuzzy dictionary model
// trained from a plain word list, one word per line. It needs no
// external process, which makes it useful where no pipe-mode checker is
// installed, at the cost of a much cruder notion of correctness.
type Wordlist struct {
	model *fuzzy.Model
}

// NewWordlist trains a checker from the word list at path.
func NewWordlist(path string) (*Wordlist, error) {
	if path == "" {
		return nil, &UnavailableError{Backend: "wordlist", Err: fmt.Errorf("no word list configured")}
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &UnavailableError{Backend: "wordlist", Err: err}
	}

	model := fuzzy.NewModel()

	// Depth 2 trades accuracy for tolerable training time.
	model.SetDepth(2)

	for _, word := range strings.Split(string(data), "\n") {
		word = strings.TrimSpace(word)
		if word != "" {
			model.TrainWord(word)
		}
	}
	return &Wordlist{model: model}, nil
}

// Check ignores opts; there is no external process to pass them to.
func (w *Wordlist) Check(lines []string, _ []string) ([]mistake.Mistake, error) {
	var mistakes []mistake.Mistake
	for n, line := range lines {
		for _, tok := range extractWords(line) {
			if w.correct(tok.word) {
				continue
			}
			mistakes = append(mistakes, mistake.Mistake{
				Word:        tok.word,
				Line:        n,
				Offset:      tok.start,
				Suggestions: w.model.Suggestions(strings.ToLower(tok.word), false),
			})
		}
	}
	return mistakes, nil
}

// correct reports whether word should pass unflagged. Very short words
// and all-caps tokens (likely acronyms) are never flagged; fuzzy
// matching is unreliable for both.
func (w *Wordlist) correct(word string) bool {
	runes := []rune(word)
	if len(runes) <= 2 {
		return true
	}
	allUpper := true
	for _, r := range runes {
		if unicode.IsLetter(r) && !unicode.IsUpper(r) {
			allUpper = false
			break
		}
	}
	if allUpper {
		return true
	}

	lower := strings.ToLower(word)
	// SpellCheck returns its best dictionary match, or "" when nothing
	// is close; only an exact hit counts as correctly spelled.
	correction := w.model.SpellCheck(lower)
	return correction != "" && correction == lower
}

// token is one word of a line and the byte offset it starts at.
type token struct {
	word  string
	start int
}

// extractWords tokenizes a line into words: runs of letters, with
// apostrophes allowed inside a word.
func extractWords(line string) []token {
	var toks []token
	var cur strings.Builder
	start := -1
	for i, r := range line {
		if unicode.IsLetter(r) || (r == '\'' && start >= 0) {
			if start < 0 {
				start = i
			}
			cur.WriteRune(r)
			continue
		}
		if start >= 0 {
			toks = append(toks, token{word: cur.String(), start: start})
			cur.Reset()
			start = -1
		}
	}
	if start >= 0 {
		toks = append(toks, token{word: cur.String(), start: start})
	}
	return toks
}
