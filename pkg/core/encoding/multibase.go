package encoding

import "strings"

// MultibaseBase58Prefix is the multibase marker for base58btc
const MultibaseBase58Prefix = "z"

// EncodeMultibase58 encodes bytes as multibase base58btc ("z" prefix)
func EncodeMultibase58(input []byte) string {
	return MultibaseBase58Prefix + EncodeBase58(input)
}

// DecodeMultibase58 decodes a multibase base58btc string to bytes
func DecodeMultibase58(input string) ([]byte, error) {
	if !strings.HasPrefix(input, MultibaseBase58Prefix) {
		return nil, &FormatError{What: "multibase", Reason: "missing base58btc marker 'z'"}
	}
	return DecodeBase58(input[len(MultibaseBase58Prefix):])
}
