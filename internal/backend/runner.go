package backend

import (
	"bytes"
	"fmt"
	"os/exec"
	"strings"
)

// runPipe drives one blocking round trip with a checker process: write
// the whole input to its stdin, close it, read stdout to completion,
// then wait. The process is released on every exit path; there is no
// timeout, so a hung checker blocks the invocation.
func runPipe(name string, args []string, input string) (string, error) {
	cmd := exec.Command(name, args...)
	cmd.Stdin = strings.NewReader(input)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return "", fmt.Errorf("%w: %s", err, msg)
		}
		return "", err
	}
	return stdout.String(), nil
}
