package dids

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubResolver struct {
	calls int
	doc   *DidDocument
	err   error
}

func (r *stubResolver) ResolveDid(did string) (*DidDocument, error) {
	r.calls++
	return r.doc, r.err
}

func TestDidStoreAddAndResolve(t *testing.T) {
	store := NewDidStore()
	doc := &DidDocument{Id: "did:example:alice"}

	store.AddDocument("did:example:alice", doc)

	resolved, err := store.Resolve("did:example:alice")
	require.NoError(t, err)
	assert.Equal(t, doc, resolved)
}

func TestDidStoreIndexesAliases(t *testing.T) {
	store := NewDidStore()
	doc := &DidDocument{
		Id:          "did:peer:4zHash",
		AlsoKnownAs: []string{"did:peer:4zHash:zDocument"},
	}

	store.AddDocument("did:peer:4zHash", doc)

	resolved, err := store.Resolve("did:peer:4zHash:zDocument")
	require.NoError(t, err)
	assert.Equal(t, doc, resolved)
}

func TestDidStoreResolverFallbackAndCaching(t *testing.T) {
	store := NewDidStore()
	resolver := &stubResolver{doc: &DidDocument{Id: "did:key:z6MkTest"}}
	store.RegisterResolver(ClassKey, resolver)

	first, err := store.Resolve("did:key:z6MkTest")
	require.NoError(t, err)
	require.NotNil(t, first)

	second, err := store.Resolve("did:key:z6MkTest")
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, resolver.calls)
}

func TestDidStoreUnregisteredMethodIsCleanlyUnresolvable(t *testing.T) {
	store := NewDidStore()

	doc, err := store.Resolve("did:web:example.com")
	assert.NoError(t, err)
	assert.Nil(t, doc)
}

func TestDidStoreCleanlyUnresolvableIsNotCached(t *testing.T) {
	store := NewDidStore()
	resolver := &stubResolver{}
	store.RegisterResolver(ClassPeer4, resolver)

	doc, err := store.Resolve("did:peer:4zHash")
	assert.NoError(t, err)
	assert.Nil(t, doc)

	_, _ = store.Resolve("did:peer:4zHash")
	assert.Equal(t, 2, resolver.calls)
}

func TestDidStoreResolverErrorIsNotCached(t *testing.T) {
	store := NewDidStore()
	resolver := &stubResolver{err: fmt.Errorf("decode failed")}
	store.RegisterResolver(ClassPeer4, resolver)

	_, err := store.Resolve("did:peer:4zHash:zDocument")
	assert.Error(t, err)

	_, err = store.Resolve("did:peer:4zHash:zDocument")
	assert.Error(t, err)
	assert.Equal(t, 2, resolver.calls)
}

func TestDidStoreCachesResolvedDocumentAliases(t *testing.T) {
	store := NewDidStore()
	resolver := &stubResolver{doc: &DidDocument{
		Id:          "did:peer:4zHash",
		AlsoKnownAs: []string{"did:peer:4zHash:zDocument"},
	}}
	store.RegisterResolver(ClassPeer4, resolver)

	_, err := store.Resolve("did:peer:4zHash:zDocument")
	require.NoError(t, err)

	// Both forms now hit the cache, including the short form the resolver
	// could not decode on its own.
	short, err := store.Resolve("did:peer:4zHash")
	require.NoError(t, err)
	assert.NotNil(t, short)
	assert.Equal(t, 1, resolver.calls)
}
