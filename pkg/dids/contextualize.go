package dids

import (
	"strings"

	"github.com/TelegramSam/didcomm-website-demo/pkg/core/encoding"
)

// ContextualizeDocument expands a bare decoded document into a fully
// addressable one anchored at id: the document id is injected, every
// verification method gets the document as controller, relative '#fragment'
// references are expanded to absolute DID URLs, and generic Multikey
// verification methods are rewritten to their concrete suite type based on
// the multicodec prefix of the key material. The input is not mutated.
func ContextualizeDocument(id string, doc *DidDocument) *DidDocument {
	out := doc.Clone()
	out.Id = id

	for _, vm := range out.VerificationMethod {
		contextualizeVerificationMethod(id, vm)
	}

	out.Authentication = contextualizeRefs(id, out.Authentication)
	out.AssertionMethod = contextualizeRefs(id, out.AssertionMethod)
	out.KeyAgreement = contextualizeRefs(id, out.KeyAgreement)
	out.CapabilityInvocation = contextualizeRefs(id, out.CapabilityInvocation)
	out.CapabilityDelegation = contextualizeRefs(id, out.CapabilityDelegation)

	return out
}

// contextualizeVerificationMethod anchors a single method at the document id
func contextualizeVerificationMethod(id string, vm *VerificationMethod) {
	vm.Controller = id
	vm.Id = expandRelativeRef(id, vm.Id)

	if vm.Type == VerificationMethodTypeMultikey {
		if suite, ok := multikeySuite(vm.PublicKeyMultibase); ok {
			vm.Type = suite
		}
	}
}

// contextualizeRefs expands string references in a relationship list.
// Embedded method definitions are contextualized in place.
func contextualizeRefs(id string, refs VerificationMethodRefList) VerificationMethodRefList {
	for i, ref := range refs {
		if ref.IsEmbedded() {
			if vm := ref.GetVerificationMethod(); vm != nil {
				contextualizeVerificationMethod(id, vm)
			}
			continue
		}
		refs[i] = &VerificationMethodRefString{Ref: expandRelativeRef(id, ref.GetId())}
	}
	return refs
}

// expandRelativeRef turns '#fragment' into '<id>#fragment'; absolute
// references pass through untouched.
func expandRelativeRef(id, ref string) string {
	if strings.HasPrefix(ref, "#") {
		return id + ref
	}
	return ref
}

// multikeySuite decodes the multicodec prefix of a multibase key and maps it
// onto the concrete verification suite. Unknown codecs keep the generic tag.
func multikeySuite(publicKeyMultibase string) (string, bool) {
	raw, err := encoding.DecodeMultibase58(publicKeyMultibase)
	if err != nil {
		return "", false
	}
	codec, _, err := encoding.DecodeMulticodecKey(raw)
	if err != nil {
		return "", false
	}
	switch codec {
	case encoding.CodecEd25519Pub:
		return VerificationMethodTypeEd25519VerificationKey2020, true
	case encoding.CodecX25519Pub:
		return VerificationMethodTypeX25519KeyAgreementKey2020, true
	default:
		return "", false
	}
}
