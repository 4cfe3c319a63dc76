package peer

import "fmt"

// IntegrityError reports a hash mismatch between the identifier and its
// embedded document. Nothing behind a failed check is trusted.
type IntegrityError struct {
	Did string
}

func (e *IntegrityError) Error() string {
	return fmt.Sprintf("did:peer:4 hash does not match encoded document: %s", e.Did)
}
