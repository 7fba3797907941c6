package project

import (
	"crypto/sha256"
)

// Digest is a fixed 256-bit content hash.
type Digest [32]byte

// HashBytes hashes a single buffer.
func HashBytes(b []byte) Digest {
	return sha256.Sum256(b)
}

// HashString hashes a string.
func HashString(s string) Digest {
	return sha256.Sum256([]byte(s))
}

// Combine builds H(content || part1 || part2 ...). Callers must pass parts
// in a fixed order.
func Combine(content Digest, parts ...Digest) Digest {
	h := sha256.New()
	_, _ = h.Write(content[:])
	for _, d := range parts {
		_, _ = h.Write(d[:])
	}
	var out Digest
	copy(out[:], h.Sum(nil))
	return out
}
