package digester

import (
	"crypto/md5"  //nolint:gosec // md5 is a selectable fingerprint, not a security boundary
	"crypto/sha1" //nolint:gosec // same as md5
	stdsha256 "crypto/sha256"
	"crypto/sha512"
	"fmt"
	"hash"
	"slices"
	"strings"

	blake2b "github.com/minio/blake2b-simd"
	sha256 "github.com/minio/sha256-simd"
	"github.com/zeebo/blake3"
	"golang.org/x/crypto/blake2s"
	"golang.org/x/crypto/sha3"
)

// DefaultAlgorithm is used when no algorithm is given.
const DefaultAlgorithm = "sha256"

// registry maps canonical algorithm names to hash
// constructors.
var registry = map[string]func() hash.Hash{
	"md5":        md5.New,
	"sha1":       sha1.New,
	"sha224":     stdsha256.New224,
	"sha256":     sha256.New,
	"sha384":     sha512.New384,
	"sha512":     sha512.New,
	"sha512_224": sha512.New512_224,
	"sha512_256": sha512.New512_256,
	"sha3_224":   func() hash.Hash { return sha3.New224() },
	"sha3_256":   func() hash.Hash { return sha3.New256() },
	"sha3_384":   func() hash.Hash { return sha3.New384() },
	"sha3_512":   func() hash.Hash { return sha3.New512() },
	"blake2b":    func() hash.Hash { return blake2b.New512() },
	"blake2s":    newBlake2s,
	"blake3":     func() hash.Hash { return blake3.New() },
}

// newBlake2s returns an unkeyed 256-bit BLAKE2s. The error is
// only possible for oversized keys.
func newBlake2s() hash.Hash {
	h, err := blake2s.New256(nil)
	if err != nil {
		panic(fmt.Sprintf("blake2s: %v", err))
	}

	return h
}

// canonical lowercases name and accepts '-' in place of '_'.
func canonical(name string) string {
	return strings.ReplaceAll(
		strings.ToLower(strings.TrimSpace(name)), "-", "_",
	)
}

// Lookup returns the constructor registered for name. An
// empty name selects DefaultAlgorithm.
func Lookup(name string) (func() hash.Hash, error) {
	const errCtx = "validating algorithm"

	if strings.TrimSpace(name) == "" {
		name = DefaultAlgorithm
	}

	fn, ok := registry[canonical(name)]
	if !ok {
		return nil, fmt.Errorf(
			"%s: %w: %q", errCtx, ErrUnsupportedAlgorithm, name,
		)
	}

	return fn, nil
}

// Algorithms returns the registered names in sorted order.
func Algorithms() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}

	slices.Sort(names)

	return names
}
