package digester_test

import (
	"encoding/hex"
	"testing"

	"github.com/byte4ever/dirdigest/digester"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup_known_algorithms(t *testing.T) {
	t.Parallel()

	sizes := map[string]int{
		"md5":        16,
		"sha1":       20,
		"sha224":     28,
		"sha256":     32,
		"sha384":     48,
		"sha512":     64,
		"sha512_224": 28,
		"sha512_256": 32,
		"sha3_224":   28,
		"sha3_256":   32,
		"sha3_384":   48,
		"sha3_512":   64,
		"blake2b":    64,
		"blake2s":    32,
		"blake3":     32,
	}

	assert.Len(t, digester.Algorithms(), len(sizes))

	for name, size := range sizes {
		newHash, err := digester.Lookup(name)
		require.NoError(t, err, name)
		assert.Equal(t, size, newHash().Size(), name)
	}
}

func TestLookup_empty_selects_sha256(t *testing.T) {
	t.Parallel()

	newHash, err := digester.Lookup("")
	require.NoError(t, err)

	assert.Equal(
		t,
		"e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855",
		hex.EncodeToString(newHash().Sum(nil)),
	)
}

func TestLookup_is_case_and_dash_insensitive(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"SHA256", "Sha3-256", " md5 "} {
		_, err := digester.Lookup(name)
		assert.NoError(t, err, name)
	}
}

func TestLookup_unknown(t *testing.T) {
	t.Parallel()

	_, err := digester.Lookup("not-a-real-algo")

	require.ErrorIs(t, err, digester.ErrUnsupportedAlgorithm)
	assert.Contains(t, err.Error(), "validating algorithm")
}

func TestAlgorithms_sorted(t *testing.T) {
	t.Parallel()

	names := digester.Algorithms()

	assert.IsNonDecreasing(t, names)
	assert.Contains(t, names, digester.DefaultAlgorithm)
}
