package wallet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TelegramSam/didcomm-website-demo/pkg/core/crypto"
	"github.com/TelegramSam/didcomm-website-demo/pkg/core/encoding"
)

func TestNewEd25519Secret(t *testing.T) {
	kp, err := crypto.GenerateEd25519KeyPair()
	require.NoError(t, err)
	seed, err := kp.Seed()
	require.NoError(t, err)

	secret, err := NewEd25519Secret("did:peer:4zHash#key-1", seed, kp.PublicKey)
	require.NoError(t, err)

	assert.Equal(t, "did:peer:4zHash#key-1", secret.Id)
	assert.Equal(t, SecretTypeEd25519, secret.Type)

	raw, err := encoding.DecodeMultibase58(secret.PrivateKeyMultibase)
	require.NoError(t, err)
	codec, material, err := encoding.DecodeMulticodecKey(raw)
	require.NoError(t, err)
	assert.Equal(t, encoding.CodecEd25519Priv, codec)
	require.Len(t, material, 64)
	assert.Equal(t, seed, material[:32])
	assert.Equal(t, []byte(kp.PublicKey), material[32:])
}

func TestNewX25519Secret(t *testing.T) {
	kp, err := crypto.GenerateX25519KeyPair()
	require.NoError(t, err)

	secret, err := NewX25519Secret("did:peer:4zHash#key-2", kp.PrivateKey)
	require.NoError(t, err)

	assert.Equal(t, SecretTypeX25519, secret.Type)

	raw, err := encoding.DecodeMultibase58(secret.PrivateKeyMultibase)
	require.NoError(t, err)
	codec, material, err := encoding.DecodeMulticodecKey(raw)
	require.NoError(t, err)
	assert.Equal(t, encoding.CodecX25519Priv, codec)
	assert.Equal(t, kp.PrivateKey, material)
}

func TestSecretSizeValidation(t *testing.T) {
	_, err := NewEd25519Secret("id", make([]byte, 16), make([]byte, 32))
	assert.Error(t, err)

	_, err = NewEd25519Secret("id", make([]byte, 32), make([]byte, 16))
	assert.Error(t, err)

	_, err = NewX25519Secret("id", make([]byte, 16))
	assert.Error(t, err)
}

func TestSecretStoreLookup(t *testing.T) {
	store := NewSecretStore()
	secret := &Secret{Id: "did:peer:4zHash#key-1", Type: SecretTypeEd25519}

	store.AddSecret(secret.Id, secret)

	assert.Equal(t, secret, store.GetSecret("did:peer:4zHash#key-1"))
	assert.Nil(t, store.GetSecret("did:peer:4zHash#key-2"))
}

// A record stored under one DID form is invisible under the other: lookup is
// by exact string, and the long and short forms of the same peer DID anchor
// different key ids.
func TestSecretStoreAnchoringIsExact(t *testing.T) {
	store := NewSecretStore()

	shortAnchored := "did:peer:4zHash#key-1"
	longAnchored := "did:peer:4zHash:zDocument#key-1"

	store.AddSecret(shortAnchored, &Secret{Id: shortAnchored, Type: SecretTypeEd25519})

	assert.NotNil(t, store.GetSecret(shortAnchored))
	assert.Nil(t, store.GetSecret(longAnchored))

	known := store.FindKnownSecretIds([]string{longAnchored, shortAnchored, "did:peer:4zOther#key-1"})
	assert.Equal(t, []string{shortAnchored}, known)
}
