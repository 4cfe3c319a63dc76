package wallet

import (
	"crypto/ed25519"
	"fmt"
	"sync"

	"github.com/TelegramSam/didcomm-website-demo/pkg/core/encoding"
)

// Secret is a locally held private key record. Id is the fully-qualified
// key id the encryption layer will ask for and must match it byte for byte:
// it is anchored to whichever DID form (long or short) contextualized the
// document in use, and a record stored under one anchor is invisible under
// the other.
type Secret struct {
	Id                  string `json:"id"`
	Type                string `json:"type"`
	PrivateKeyMultibase string `json:"privateKeyMultibase"`
}

// Verification suite names mirrored onto secret records
const (
	SecretTypeEd25519 = "Ed25519VerificationKey2020"
	SecretTypeX25519  = "X25519KeyAgreementKey2020"
)

// NewEd25519Secret builds a signature-key record. The private segment is the
// raw private scalar (seed) concatenated with the raw public key, under the
// ed25519-priv multicodec prefix.
func NewEd25519Secret(keyId string, seed, publicKey []byte) (*Secret, error) {
	if len(seed) != ed25519.SeedSize {
		return nil, fmt.Errorf("Ed25519 seed must be %d bytes", ed25519.SeedSize)
	}
	if len(publicKey) != ed25519.PublicKeySize {
		return nil, fmt.Errorf("Ed25519 public key must be %d bytes", ed25519.PublicKeySize)
	}

	material := make([]byte, 0, len(seed)+len(publicKey))
	material = append(material, seed...)
	material = append(material, publicKey...)

	return &Secret{
		Id:                  keyId,
		Type:                SecretTypeEd25519,
		PrivateKeyMultibase: encoding.EncodeMultibase58(encoding.EncodeMulticodecKey(encoding.CodecEd25519Priv, material)),
	}, nil
}

// NewX25519Secret builds a key-agreement record under the x25519-priv prefix
func NewX25519Secret(keyId string, privateKey []byte) (*Secret, error) {
	if len(privateKey) != 32 {
		return nil, fmt.Errorf("X25519 private key must be 32 bytes")
	}

	return &Secret{
		Id:                  keyId,
		Type:                SecretTypeX25519,
		PrivateKeyMultibase: encoding.EncodeMultibase58(encoding.EncodeMulticodecKey(encoding.CodecX25519Priv, privateKey)),
	}, nil
}

// SecretStore maps fully-qualified key ids to secret records. Records are
// inserted at startup and read-only afterwards.
type SecretStore struct {
	mutex   sync.RWMutex
	secrets map[string]*Secret
}

// NewSecretStore creates an empty secret store
func NewSecretStore() *SecretStore {
	return &SecretStore{secrets: make(map[string]*Secret)}
}

// AddSecret inserts or overwrites the record for keyId
func (s *SecretStore) AddSecret(keyId string, secret *Secret) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.secrets[keyId] = secret
}

// GetSecret returns the record for keyId, or nil when not held here.
// A nil return is a hard failure to decrypt for that recipient key; the
// encryption collaborator must treat it as such, not retry.
func (s *SecretStore) GetSecret(keyId string) *Secret {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.secrets[keyId]
}

// FindKnownSecretIds filters candidateIds down to the ids held here
func (s *SecretStore) FindKnownSecretIds(candidateIds []string) []string {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	var known []string
	for _, id := range candidateIds {
		if _, ok := s.secrets[id]; ok {
			known = append(known, id)
		}
	}
	return known
}
