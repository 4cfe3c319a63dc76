// Package peer implements the did:peer:4 method: a self-certifying
// identifier derived from, and verifiable against, its own DID document.
//
// Identifier shapes (https://identity.foundation/peer-did-method-spec):
//
//	short: did:peer:4{hash}
//	long:  did:peer:4{hash}:{encodedDocument}
//
// where encodedDocument is multibase(base58btc, multicodec(json, document))
// and hash is multibase(base58btc, multihash(sha-256, encodedDocument)).
package peer

import (
	"fmt"
	"regexp"

	"github.com/TelegramSam/didcomm-website-demo/pkg/core/encoding"
	dids "github.com/TelegramSam/didcomm-website-demo/pkg/dids"
)

const longFormPrefix = "did:peer:4"

// The hash run and the document run are both multibase base58btc, so each
// starts with 'z' followed by base58 alphabet characters only.
var (
	longFormRegex  = regexp.MustCompile(`^did:peer:4(z[1-9A-HJ-NP-Za-km-z]+):(z[1-9A-HJ-NP-Za-km-z]+)$`)
	shortFormRegex = regexp.MustCompile(`^did:peer:4(z[1-9A-HJ-NP-Za-km-z]+)$`)
)

// IsLongForm reports whether did is a syntactically valid long-form did:peer:4
func IsLongForm(did string) bool {
	return longFormRegex.MatchString(did)
}

// IsShortForm reports whether did is a syntactically valid short-form did:peer:4
func IsShortForm(did string) bool {
	return shortFormRegex.MatchString(did)
}

// Encode encodes a DID document into a long-form did:peer:4 identifier.
// Any id present on the document is stripped first; the identifier is
// derived from the document, never stored in it. The hash is computed over
// the literal encoded-document bytes; key order is not canonicalized, so
// byte identity, not semantic equality, is the hashing input.
func Encode(doc *dids.DidDocument) (string, error) {
	if doc == nil {
		return "", fmt.Errorf("did document is required")
	}

	stripped := doc.Clone()
	stripped.Id = ""

	wrapped, err := encoding.WrapJSON(stripped)
	if err != nil {
		return "", fmt.Errorf("failed to serialize did document: %w", err)
	}

	encodedDocument := encoding.EncodeMultibase58(wrapped)
	hash := encoding.EncodeMultibase58(encoding.MultihashSha256([]byte(encodedDocument)))

	return longFormPrefix + hash + ":" + encodedDocument, nil
}

// Decode decodes and verifies a long-form did:peer:4 identifier, returning
// the embedded document without an id. The hash segment is recomputed from
// the document segment and compared before any decoding of the document
// itself; a mismatch is an *IntegrityError and nothing behind it is trusted.
// This check is the method's sole trust anchor; there is no registry.
func Decode(did string) (*dids.DidDocument, error) {
	matches := longFormRegex.FindStringSubmatch(did)
	if matches == nil {
		return nil, &encoding.FormatError{What: "did:peer:4", Reason: "not a long-form did:peer:4 identifier"}
	}

	hashSegment := matches[1]
	documentSegment := matches[2]

	expected := encoding.EncodeMultibase58(encoding.MultihashSha256([]byte(documentSegment)))
	if expected != hashSegment {
		return nil, &IntegrityError{Did: did}
	}

	raw, err := encoding.DecodeMultibase58(documentSegment)
	if err != nil {
		return nil, err
	}

	doc := &dids.DidDocument{}
	if err := encoding.UnwrapJSON(raw, doc); err != nil {
		return nil, err
	}
	doc.Id = ""

	return doc, nil
}

// LongToShort truncates a long-form identifier to its short form.
// Short form is derivable from long form; the reverse is not possible.
func LongToShort(did string) (string, error) {
	matches := longFormRegex.FindStringSubmatch(did)
	if matches == nil {
		return "", &encoding.FormatError{What: "did:peer:4", Reason: "not a long-form did:peer:4 identifier"}
	}
	return longFormPrefix + matches[1], nil
}

// Resolve decodes and verifies a long-form identifier and contextualizes the
// embedded document. With preserveLongForm the long form becomes the document
// id and the short form is listed in alsoKnownAs; otherwise the reverse.
// The choice anchors every key id the document produces, so both sides of an
// exchange must resolve with the same flag or secret lookup fails.
func Resolve(did string, preserveLongForm bool) (*dids.DidDocument, error) {
	doc, err := Decode(did)
	if err != nil {
		return nil, err
	}

	short, err := LongToShort(did)
	if err != nil {
		return nil, err
	}

	id, alias := short, did
	if preserveLongForm {
		id, alias = did, short
	}

	contextualized := dids.ContextualizeDocument(id, doc)
	contextualized.AlsoKnownAs = append(contextualized.AlsoKnownAs, alias)

	return contextualized, nil
}

// ResolveWithDocument verifies a counterparty-supplied encoded document
// against a short-form identifier and resolves it. This is the side channel
// that makes a bare short form usable: the document segment arrives
// out-of-band, the hash in the identifier still decides whether to trust it.
func ResolveWithDocument(shortDid string, encodedDocument string, preserveLongForm bool) (*dids.DidDocument, error) {
	if !IsShortForm(shortDid) {
		return nil, &encoding.FormatError{What: "did:peer:4", Reason: "not a short-form did:peer:4 identifier"}
	}
	return Resolve(shortDid+":"+encodedDocument, preserveLongForm)
}
