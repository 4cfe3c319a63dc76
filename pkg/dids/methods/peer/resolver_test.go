package peer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dids "github.com/TelegramSam/didcomm-website-demo/pkg/dids"
)

func TestResolverResolvesLongForm(t *testing.T) {
	did, err := Encode(testDocument())
	require.NoError(t, err)
	short, err := LongToShort(did)
	require.NoError(t, err)

	doc, err := NewResolver().ResolveDid(did)
	require.NoError(t, err)
	require.NotNil(t, doc)
	assert.Equal(t, short, doc.Id)
}

func TestResolverShortFormIsCleanlyUnresolvable(t *testing.T) {
	did, err := Encode(testDocument())
	require.NoError(t, err)
	short, err := LongToShort(did)
	require.NoError(t, err)

	doc, err := NewResolver().ResolveDid(short)
	assert.NoError(t, err)
	assert.Nil(t, doc)
}

func TestResolverThroughDidStore(t *testing.T) {
	store := dids.NewDidStore()
	store.RegisterResolver(dids.ClassPeer4, NewResolver())

	did, err := Encode(testDocument())
	require.NoError(t, err)
	short, err := LongToShort(did)
	require.NoError(t, err)

	// Long form resolves and its alias list backfills the short form
	doc, err := store.Resolve(did)
	require.NoError(t, err)
	require.NotNil(t, doc)
	assert.Equal(t, short, doc.Id)

	cached, err := store.Resolve(short)
	require.NoError(t, err)
	assert.Equal(t, doc, cached)
}

func TestResolverPreserveLongForm(t *testing.T) {
	did, err := Encode(testDocument())
	require.NoError(t, err)

	doc, err := (&Resolver{PreserveLongForm: true}).ResolveDid(did)
	require.NoError(t, err)
	require.NotNil(t, doc)
	assert.Equal(t, did, doc.Id)
}
