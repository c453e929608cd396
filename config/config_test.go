package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/byte4ever/dirdigest/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_all_fields(t *testing.T) {
	t.Parallel()

	cfg, err := config.Parse([]byte(
		"root: src\noutput: build/tree.hash\nalgorithm: blake3\n",
	))

	require.NoError(t, err)
	assert.Equal(t, config.Config{
		Root:      "src",
		Output:    "build/tree.hash",
		Algorithm: "blake3",
	}, cfg)
}

func TestParse_empty(t *testing.T) {
	t.Parallel()

	cfg, err := config.Parse([]byte("  \n"))

	require.NoError(t, err)
	assert.Equal(t, config.Config{}, cfg)
}

func TestParse_rejects_unknown_keys(t *testing.T) {
	t.Parallel()

	_, err := config.Parse([]byte("algorithm: sha1\nignore: extra\n"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing config")
}

func TestLoad_missing_file(t *testing.T) {
	t.Parallel()

	_, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))

	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoad_reads_file(t *testing.T) {
	t.Parallel()

	pa := filepath.Join(t.TempDir(), "dirdigest.yaml")
	require.NoError(
		t, os.WriteFile(pa, []byte("output: fp.txt\n"), 0o600),
	)

	cfg, err := config.Load(pa)

	require.NoError(t, err)
	assert.Equal(t, "fp.txt", cfg.Output)
}

func TestMerge_overrides_non_empty_fields(t *testing.T) {
	t.Parallel()

	base := config.Config{
		Root:      "a",
		Output:    "b",
		Algorithm: "md5",
	}

	got := base.Merge(config.Config{Algorithm: "sha512"})

	assert.Equal(t, config.Config{
		Root:      "a",
		Output:    "b",
		Algorithm: "sha512",
	}, got)
}
