package encoding

import "crypto/sha256"

// Multihash codec id and digest length for sha2-256
const (
	multihashSha256Code   = 0x12
	multihashSha256Length = 0x20
)

// MultihashSha256 emits a sha2-256 multihash: <code><length><digest32>
func MultihashSha256(input []byte) []byte {
	digest := sha256.Sum256(input)
	out := make([]byte, 0, 2+sha256.Size)
	out = append(out, multihashSha256Code, multihashSha256Length)
	return append(out, digest[:]...)
}
