package digester

import (
	"errors"

	"github.com/byte4ever/dirdigest/ignore"
)

var (
	// ErrUnsupportedAlgorithm is returned when the algorithm name
	// is not in the registry.
	ErrUnsupportedAlgorithm = errors.New("unsupported algorithm")

	// ErrIgnoreFileUnreadable is returned when .gitignore exists
	// but cannot be read.
	ErrIgnoreFileUnreadable = ignore.ErrUnreadable

	// ErrEnumerationFailed is returned when the tree walk fails.
	ErrEnumerationFailed = errors.New("enumeration failed")

	// ErrFileVanished is returned when a selected file no longer
	// exists at hashing time.
	ErrFileVanished = errors.New("file vanished")

	// ErrFileUnreadable is returned when a selected file cannot be
	// opened or fully read at hashing time.
	ErrFileUnreadable = errors.New("file unreadable")

	// ErrOutputWriteFailed is returned when the digest cannot be
	// written to the output file.
	ErrOutputWriteFailed = errors.New("output write failed")

	// ErrDigestMismatch is returned by Verify when the stored
	// digest differs from the computed one.
	ErrDigestMismatch = errors.New("digest mismatch")
)
