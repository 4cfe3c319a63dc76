package utils

import (
	"encoding/base64"
)

// EncodeBase64 encodes bytes to standard base64 string
func EncodeBase64(data []byte) string {
	return base64.StdEncoding.EncodeToString(data)
}

// DecodeBase64 decodes a standard base64 string to bytes
func DecodeBase64(encoded string) ([]byte, error) {
	return base64.StdEncoding.DecodeString(encoded)
}

// EncodeBase64URLString encodes bytes to base64url string without padding
func EncodeBase64URLString(data []byte) string {
	return base64.RawURLEncoding.EncodeToString(data)
}

// DecodeBase64URLString decodes base64url string to bytes
func DecodeBase64URLString(data string) ([]byte, error) {
	return base64.RawURLEncoding.DecodeString(data)
}
