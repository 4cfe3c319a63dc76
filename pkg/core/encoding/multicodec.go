package encoding

import (
	"encoding/json"
	"unicode/utf8"
)

// Multicodec identifiers used by the peer DID method and key records
const (
	// CodecJSON tags a UTF-8 JSON payload (0x0200)
	CodecJSON uint64 = 0x0200
	// CodecEd25519Pub tags an Ed25519 public key
	CodecEd25519Pub uint64 = 0xed
	// CodecX25519Pub tags an X25519 public key
	CodecX25519Pub uint64 = 0xec
	// CodecEd25519Priv tags an Ed25519 private key (seed || public key)
	CodecEd25519Priv uint64 = 0x1300
	// CodecX25519Priv tags an X25519 private key
	CodecX25519Priv uint64 = 0x1302
)

// EncodeVarint encodes an unsigned integer as LEB128
func EncodeVarint(v uint64) []byte {
	var out []byte
	for {
		b := byte(v & 0x7f)
		v >>= 7
		if v != 0 {
			b |= 0x80
		}
		out = append(out, b)
		if v == 0 {
			break
		}
	}
	return out
}

// DecodeVarint reads a LEB128 varint from the beginning of data.
// Returns the value and the number of bytes read (0 on malformed input).
func DecodeVarint(data []byte) (uint64, int) {
	var result uint64
	var shift uint

	for i, b := range data {
		if i > 8 {
			return 0, 0
		}
		result |= uint64(b&0x7f) << shift
		if b&0x80 == 0 {
			return result, i + 1
		}
		shift += 7
	}
	return 0, 0
}

// EncodeMulticodec prefixes payload with the varint-encoded codec id
func EncodeMulticodec(codec uint64, payload []byte) []byte {
	prefix := EncodeVarint(codec)
	out := make([]byte, 0, len(prefix)+len(payload))
	out = append(out, prefix...)
	return append(out, payload...)
}

// DecodeMulticodec splits multicodec-tagged bytes into codec id and payload
func DecodeMulticodec(data []byte) (uint64, []byte, error) {
	codec, n := DecodeVarint(data)
	if n == 0 {
		return 0, nil, &FormatError{What: "multicodec", Reason: "invalid varint prefix"}
	}
	return codec, data[n:], nil
}

// WrapJSON serializes doc to JSON and prefixes the json multicodec tag
func WrapJSON(doc interface{}) ([]byte, error) {
	jsonBytes, err := json.Marshal(doc)
	if err != nil {
		return nil, err
	}
	return EncodeMulticodec(CodecJSON, jsonBytes), nil
}

// UnwrapJSON strips the json multicodec tag and parses the payload into out
func UnwrapJSON(data []byte, out interface{}) error {
	codec, payload, err := DecodeMulticodec(data)
	if err != nil {
		return err
	}
	if codec != CodecJSON {
		return &FormatError{What: "multicodec", Reason: "payload is not multicodec json"}
	}
	if !utf8.Valid(payload) {
		return &FormatError{What: "json document", Reason: "payload is not valid UTF-8"}
	}
	if err := json.Unmarshal(payload, out); err != nil {
		return &FormatError{What: "json document", Reason: err.Error()}
	}
	return nil
}

// EncodeMulticodecKey wraps raw key bytes with the codec id for the key type
func EncodeMulticodecKey(codec uint64, keyBytes []byte) []byte {
	return EncodeMulticodec(codec, keyBytes)
}

// DecodeMulticodecKey splits a multicodec-tagged key into codec id and raw bytes
func DecodeMulticodecKey(data []byte) (uint64, []byte, error) {
	codec, keyBytes, err := DecodeMulticodec(data)
	if err != nil {
		return 0, nil, err
	}
	if len(keyBytes) == 0 {
		return 0, nil, &FormatError{What: "multicodec key", Reason: "missing key bytes"}
	}
	return codec, keyBytes, nil
}
