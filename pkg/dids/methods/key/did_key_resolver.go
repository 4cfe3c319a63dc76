// Package key implements resolution for the did:key method: the identifier
// is a multibase multicodec public key, and the document is derived from the
// key alone.
package key

import (
	"crypto/ed25519"
	"fmt"

	"github.com/TelegramSam/didcomm-website-demo/pkg/core/encoding"
	dids "github.com/TelegramSam/didcomm-website-demo/pkg/dids"
)

// Resolver resolves did:key identifiers. It plugs into a dids.DidStore as
// the lookup for the raw-key identifier scheme.
type Resolver struct{}

// NewResolver creates a did:key resolver
func NewResolver() *Resolver {
	return &Resolver{}
}

// ResolveDid derives a DID document from a did:key identifier
func (r *Resolver) ResolveDid(did string) (*dids.DidDocument, error) {
	parsed := dids.TryParseDid(did)
	if parsed == nil || parsed.Method != dids.MethodKey {
		return nil, &encoding.FormatError{What: "did:key", Reason: "not a did:key identifier"}
	}

	keyBytes, err := encoding.DecodeMultibase58(parsed.Id)
	if err != nil {
		return nil, err
	}

	codec, rawKey, err := encoding.DecodeMulticodecKey(keyBytes)
	if err != nil {
		return nil, err
	}

	suite, err := suiteForCodec(codec, rawKey)
	if err != nil {
		return nil, err
	}

	vmId := did + "#" + parsed.Id
	vm := &dids.VerificationMethod{
		Id:                 vmId,
		Type:               suite,
		Controller:         did,
		PublicKeyMultibase: parsed.Id,
	}

	doc := &dids.DidDocument{Id: did}
	doc.AddVerificationMethod(vm)

	ref := &dids.VerificationMethodRefString{Ref: vmId}
	switch codec {
	case encoding.CodecEd25519Pub:
		doc.AddAuthentication(ref)
	case encoding.CodecX25519Pub:
		doc.AddKeyAgreement(ref)
	}

	return doc, nil
}

// suiteForCodec maps a public key codec onto its verification suite
func suiteForCodec(codec uint64, rawKey []byte) (string, error) {
	switch codec {
	case encoding.CodecEd25519Pub:
		if len(rawKey) != ed25519.PublicKeySize {
			return "", fmt.Errorf("invalid Ed25519 key length: expected %d, got %d", ed25519.PublicKeySize, len(rawKey))
		}
		return dids.VerificationMethodTypeEd25519VerificationKey2020, nil
	case encoding.CodecX25519Pub:
		if len(rawKey) != 32 {
			return "", fmt.Errorf("invalid X25519 key length: expected 32, got %d", len(rawKey))
		}
		return dids.VerificationMethodTypeX25519KeyAgreementKey2020, nil
	default:
		return "", fmt.Errorf("unsupported key type with multicodec: 0x%x", codec)
	}
}
