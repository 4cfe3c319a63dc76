package peer

import (
	dids "github.com/TelegramSam/didcomm-website-demo/pkg/dids"
)

// Resolver plugs the did:peer:4 codec into a dids.DidStore.
type Resolver struct {
	// PreserveLongForm anchors resolved documents (and every key id they
	// produce) at the long form instead of the short form.
	PreserveLongForm bool
}

// NewResolver creates a resolver anchoring documents at the short form
func NewResolver() *Resolver {
	return &Resolver{}
}

// ResolveDid resolves a long-form did:peer:4. A short form alone carries no
// document, so it resolves to nil unless the store already has it cached;
// that is a documented limitation of the method, not a failure.
func (r *Resolver) ResolveDid(did string) (*dids.DidDocument, error) {
	if IsShortForm(did) {
		return nil, nil
	}
	return Resolve(did, r.PreserveLongForm)
}
