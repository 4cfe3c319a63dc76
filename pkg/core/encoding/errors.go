package encoding

import "fmt"

// FormatError reports malformed multibase, multicodec or JSON input.
// It is always a local failure; callers should never retry it.
type FormatError struct {
	What   string
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("malformed %s: %s", e.What, e.Reason)
}
