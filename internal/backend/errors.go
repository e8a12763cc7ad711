package backend

import "fmt"

// ProtocolError reports a checker reply that violates the expected wire
// grammar. It aborts the check of the current file and is not retried.
type ProtocolError struct {
	Backend string
	Reply   string // offending reply line, empty for structured responses
	Reason  string
}

func (e *ProtocolError) Error() string {
	if e.Reply == "" {
		return fmt.Sprintf("%s: %s", e.Backend, e.Reason)
	}
	return fmt.Sprintf("%s: malformed reply %q: %s", e.Backend, e.Reply, e.Reason)
}

// UnavailableError reports a checker that could not be invoked or exited
// abnormally before producing a complete response.
type UnavailableError struct {
	Backend string
	Err     error
}

func (e *UnavailableError) Error() string {
	return fmt.Sprintf("%s: checker unavailable: %v", e.Backend, e.Err)
}

func (e *UnavailableError) Unwrap() error { return e.Err }
