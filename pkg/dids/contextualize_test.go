package dids

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TelegramSam/didcomm-website-demo/pkg/core/encoding"
)

func multikeyFor(codec uint64) string {
	key := make([]byte, 32)
	for i := range key {
		key[i] = byte(i + 1)
	}
	return encoding.EncodeMultibase58(encoding.EncodeMulticodecKey(codec, key))
}

func TestContextualizeDocument(t *testing.T) {
	doc := &DidDocument{
		VerificationMethod: []*VerificationMethod{
			{Id: "#key-1", Type: VerificationMethodTypeMultikey, PublicKeyMultibase: multikeyFor(encoding.CodecEd25519Pub)},
			{Id: "#key-2", Type: VerificationMethodTypeMultikey, PublicKeyMultibase: multikeyFor(encoding.CodecX25519Pub)},
		},
		Authentication: VerificationMethodRefList{&VerificationMethodRefString{Ref: "#key-1"}},
		KeyAgreement:   VerificationMethodRefList{&VerificationMethodRefString{Ref: "#key-2"}},
	}

	id := "did:peer:4zHash"
	out := ContextualizeDocument(id, doc)

	assert.Equal(t, id, out.Id)

	require.Len(t, out.VerificationMethod, 2)
	assert.Equal(t, id+"#key-1", out.VerificationMethod[0].Id)
	assert.Equal(t, id, out.VerificationMethod[0].Controller)
	assert.Equal(t, VerificationMethodTypeEd25519VerificationKey2020, out.VerificationMethod[0].Type)
	assert.Equal(t, VerificationMethodTypeX25519KeyAgreementKey2020, out.VerificationMethod[1].Type)

	require.Len(t, out.Authentication, 1)
	assert.Equal(t, id+"#key-1", out.Authentication[0].GetId())
	require.Len(t, out.KeyAgreement, 1)
	assert.Equal(t, id+"#key-2", out.KeyAgreement[0].GetId())
}

func TestContextualizeDoesNotMutateInput(t *testing.T) {
	doc := &DidDocument{
		VerificationMethod: []*VerificationMethod{
			{Id: "#key-1", Type: VerificationMethodTypeMultikey, PublicKeyMultibase: multikeyFor(encoding.CodecEd25519Pub)},
		},
		Authentication: VerificationMethodRefList{&VerificationMethodRefString{Ref: "#key-1"}},
	}

	ContextualizeDocument("did:peer:4zHash", doc)

	assert.Equal(t, "", doc.Id)
	assert.Equal(t, "#key-1", doc.VerificationMethod[0].Id)
	assert.Equal(t, "", doc.VerificationMethod[0].Controller)
	assert.Equal(t, VerificationMethodTypeMultikey, doc.VerificationMethod[0].Type)
	assert.Equal(t, "#key-1", doc.Authentication[0].GetId())
}

func TestContextualizeLeavesAbsoluteRefs(t *testing.T) {
	absolute := "did:key:z6MkOther#z6MkOther"
	doc := &DidDocument{
		Authentication: VerificationMethodRefList{&VerificationMethodRefString{Ref: absolute}},
	}

	out := ContextualizeDocument("did:peer:4zHash", doc)
	assert.Equal(t, absolute, out.Authentication[0].GetId())
}

func TestContextualizeEmbeddedMethod(t *testing.T) {
	doc := &DidDocument{
		KeyAgreement: VerificationMethodRefList{
			&VerificationMethodRefEmbedded{Method: &VerificationMethod{
				Id:                 "#key-agreement",
				Type:               VerificationMethodTypeMultikey,
				PublicKeyMultibase: multikeyFor(encoding.CodecX25519Pub),
			}},
		},
	}

	id := "did:peer:4zHash"
	out := ContextualizeDocument(id, doc)

	require.Len(t, out.KeyAgreement, 1)
	embedded := out.KeyAgreement[0].GetVerificationMethod()
	require.NotNil(t, embedded)
	assert.Equal(t, id+"#key-agreement", embedded.Id)
	assert.Equal(t, id, embedded.Controller)
	assert.Equal(t, VerificationMethodTypeX25519KeyAgreementKey2020, embedded.Type)
}

func TestContextualizeKeepsUnknownMultikeyCodec(t *testing.T) {
	doc := &DidDocument{
		VerificationMethod: []*VerificationMethod{
			{Id: "#key-1", Type: VerificationMethodTypeMultikey, PublicKeyMultibase: multikeyFor(0x1200)},
		},
	}

	out := ContextualizeDocument("did:peer:4zHash", doc)
	assert.Equal(t, VerificationMethodTypeMultikey, out.VerificationMethod[0].Type)
}
