// Package document loads the immutable line view of a file under check
// and translates document-flat offsets back into (line, column) positions.
package document

import (
	"bufio"
	"fmt"
	"io"
	"os/exec"
	"strings"
)

// Load reads a document from r as an ordered sequence of lines with the
// trailing newline and carriage return characters stripped. The returned
// slice is never mutated afterwards; it is the origin of truth for
// rendering.
func Load(r io.Reader) ([]string, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	var lines []string
	for sc.Scan() {
		lines = append(lines, strings.TrimRight(sc.Text(), "\r"))
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}

// LoadPDF extracts the text layer of a PDF through a pdftotext pipeline
// and loads it like any other document. The converter process is
// terminated and waited on once its output has been consumed, on every
// exit path.
func LoadPDF(path string) ([]string, error) {
	cmd := exec.Command("pdftotext", "-layout", "-nopgbrk", path, "-")
	out, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("pdftotext: %w", err)
	}
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("pdftotext: %w", err)
	}
	defer func() {
		_ = cmd.Process.Kill()
		_ = cmd.Wait()
	}()
	lines, err := Load(out)
	if err != nil {
		return nil, fmt.Errorf("pdftotext %s: %w", path, err)
	}
	return lines, nil
}
