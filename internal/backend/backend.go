// Package backend adapts the raw output of external spell checkers into
// normalized mistake records.
//
// Each supported checker is one Checker implementation; the set is
// closed and enumerated here, so adding a backend is a compile-time
// extension rather than a registry insertion.
package backend

import (
	"fmt"

	"github.com/spellcast/spellcast/internal/mistake"
)

// Checker turns a document into the sequence of mistakes one external
// checker reports for it. opts are backend-specific option strings
// passed through verbatim. The returned slice is produced once per
// check and consumed immediately by a renderer; it is never persisted.
type Checker interface {
	Check(lines []string, opts []string) ([]mistake.Mistake, error)
}

// New builds the checker named by name. command overrides the checker
// binary for the subprocess variants; wordlist is the dictionary path
// for the in-process variant.
func New(name, command, wordlist string) (Checker, error) {
	switch name {
	case "aspell":
		return &Aspell{Command: command}, nil
	case "languagetool":
		return &LanguageTool{Command: command}, nil
	case "wordlist":
		return NewWordlist(wordlist)
	default:
		return nil, fmt.Errorf("unknown backend %q (want aspell, languagetool or wordlist)", name)
	}
}
