package crypto

import (
	"crypto/ed25519"
	"crypto/rand"
	"fmt"

	"golang.org/x/crypto/curve25519"
)

// KeyType represents different types of cryptographic keys
type KeyType string

const (
	KeyTypeEd25519 KeyType = "Ed25519"
	KeyTypeX25519  KeyType = "X25519"
)

// KeyPair represents a public/private key pair
type KeyPair struct {
	KeyType    KeyType `json:"keyType"`
	PublicKey  []byte  `json:"publicKey"`
	PrivateKey []byte  `json:"privateKey,omitempty"`
}

// HasPrivateKey returns true if private key is available
func (kp *KeyPair) HasPrivateKey() bool {
	return len(kp.PrivateKey) > 0
}

// Sign signs data with the private key
func (kp *KeyPair) Sign(data []byte) ([]byte, error) {
	if kp.KeyType != KeyTypeEd25519 {
		return nil, fmt.Errorf("signing not supported for key type: %s", kp.KeyType)
	}
	if len(kp.PrivateKey) != ed25519.PrivateKeySize {
		return nil, fmt.Errorf("invalid Ed25519 private key size")
	}
	return ed25519.Sign(ed25519.PrivateKey(kp.PrivateKey), data), nil
}

// Verify verifies a signature with the public key
func (kp *KeyPair) Verify(data, signature []byte) error {
	if kp.KeyType != KeyTypeEd25519 {
		return fmt.Errorf("verification not supported for key type: %s", kp.KeyType)
	}
	if len(kp.PublicKey) != ed25519.PublicKeySize {
		return fmt.Errorf("invalid Ed25519 public key size")
	}
	if !ed25519.Verify(ed25519.PublicKey(kp.PublicKey), data, signature) {
		return fmt.Errorf("signature verification failed")
	}
	return nil
}

// Seed returns the 32-byte Ed25519 private scalar (seed) for key records
func (kp *KeyPair) Seed() ([]byte, error) {
	if kp.KeyType != KeyTypeEd25519 {
		return nil, fmt.Errorf("seed only defined for Ed25519 keys")
	}
	if len(kp.PrivateKey) != ed25519.PrivateKeySize {
		return nil, fmt.Errorf("invalid Ed25519 private key size")
	}
	return kp.PrivateKey[:ed25519.SeedSize], nil
}

// GenerateEd25519KeyPair generates an Ed25519 key pair
func GenerateEd25519KeyPair() (*KeyPair, error) {
	publicKey, privateKey, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("failed to generate Ed25519 key pair: %w", err)
	}
	return &KeyPair{KeyType: KeyTypeEd25519, PublicKey: publicKey, PrivateKey: privateKey}, nil
}

// GenerateEd25519KeyPairWithSeed generates an Ed25519 key pair from a seed
func GenerateEd25519KeyPairWithSeed(seed []byte) (*KeyPair, error) {
	if len(seed) != ed25519.SeedSize {
		return nil, fmt.Errorf("Ed25519 seed must be %d bytes", ed25519.SeedSize)
	}
	privateKey := ed25519.NewKeyFromSeed(seed)
	publicKey := privateKey.Public().(ed25519.PublicKey)
	return &KeyPair{KeyType: KeyTypeEd25519, PublicKey: publicKey, PrivateKey: privateKey}, nil
}

// GenerateX25519KeyPair generates an X25519 key agreement pair
func GenerateX25519KeyPair() (*KeyPair, error) {
	privateKey := make([]byte, curve25519.ScalarSize)
	if _, err := rand.Read(privateKey); err != nil {
		return nil, fmt.Errorf("failed to generate X25519 private key: %w", err)
	}
	publicKey, err := curve25519.X25519(privateKey, curve25519.Basepoint)
	if err != nil {
		return nil, fmt.Errorf("failed to derive X25519 public key: %w", err)
	}
	return &KeyPair{KeyType: KeyTypeX25519, PublicKey: publicKey, PrivateKey: privateKey}, nil
}
