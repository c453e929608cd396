package digester

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/byte4ever/dirdigest/ignore"
)

// DefaultOutput is the output file name used when none is
// given.
const DefaultOutput = "commit.hash"

// Options selects the tree, the output file, the algorithm and
// the ignore matcher of a run.
type Options struct {
	// Root is the tree to fingerprint. Empty means the working
	// directory.
	Root string

	// Output receives the digest. A relative path is taken
	// relative to Root. Empty means DefaultOutput.
	Output string

	// Algorithm names a registered hash. Empty means
	// DefaultAlgorithm.
	Algorithm string

	// Matcher overrides the .gitignore found at Root.
	Matcher ignore.Matcher
}

// Result describes a completed run.
type Result struct {
	Root      string
	Output    string
	Algorithm string
	Digest    string
	Files     []string
}

// paths returns the resolved root and output paths. Root
// failures wrap ErrEnumerationFailed. An output path that cannot
// be resolved is kept in its lexical absolute form so the write
// reports the failure.
func (op Options) paths() (string, string, error) {
	const errCtx = "resolving paths"

	root := op.Root
	if root == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", "", fmt.Errorf(
				"%s: %w: %w", errCtx, ErrEnumerationFailed, err,
			)
		}

		root = wd
	}

	given := root

	root, err := resolvePath(given)
	if err != nil {
		return "", "", fmt.Errorf(
			"%s: %w: root %s: %w",
			errCtx, ErrEnumerationFailed, given, err,
		)
	}

	fi, err := os.Stat(root)
	if err != nil {
		return "", "", fmt.Errorf(
			"%s: %w: %w", errCtx, ErrEnumerationFailed, err,
		)
	}

	if !fi.IsDir() {
		return "", "", fmt.Errorf(
			"%s: %w: root %s is not a directory",
			errCtx, ErrEnumerationFailed, root,
		)
	}

	output := op.Output
	if output == "" {
		output = DefaultOutput
	}

	if !filepath.IsAbs(output) {
		output = filepath.Join(root, output)
	}

	resolved, err := resolvePath(output)
	if err != nil {
		slog.Debug(
			"output path not resolvable",
			"output", output,
			"error", err,
		)

		return root, filepath.Clean(output), nil
	}

	return root, resolved, nil
}

// Compute fingerprints the tree without writing anything. The
// algorithm is validated before the filesystem is touched.
func Compute(op Options) (Result, error) {
	const errCtx = "computing digest"

	newHash, err := Lookup(op.Algorithm)
	if err != nil {
		return Result{}, fmt.Errorf("%s: %w", errCtx, err)
	}

	algorithm := canonical(op.Algorithm)
	if algorithm == "" {
		algorithm = DefaultAlgorithm
	}

	root, output, err := op.paths()
	if err != nil {
		return Result{}, fmt.Errorf("%s: %w", errCtx, err)
	}

	matcher := op.Matcher
	if matcher == nil {
		sp, err := ignore.Load(root)
		if err != nil {
			return Result{}, fmt.Errorf("%s: %w", errCtx, err)
		}

		matcher = sp
	}

	files, err := collectFiles(root, output, matcher)
	if err != nil {
		return Result{}, fmt.Errorf("%s: %w", errCtx, err)
	}

	digest, sorted, err := hashFiles(newHash, root, files)
	if err != nil {
		return Result{}, fmt.Errorf("%s: %w", errCtx, err)
	}

	slog.Debug(
		"computed digest",
		"root", root,
		"algorithm", algorithm,
		"files", len(sorted),
		"digest", digest,
	)

	return Result{
		Root:      root,
		Output:    output,
		Algorithm: algorithm,
		Digest:    digest,
		Files:     sorted,
	}, nil
}

// Digest fingerprints the tree and writes the hex digest to the
// output file, replacing any previous content.
func Digest(op Options) (Result, error) {
	const errCtx = "saving digest"

	res, err := Compute(op)
	if err != nil {
		return Result{}, fmt.Errorf("%s: %w", errCtx, err)
	}

	if err := writeDigest(res.Output, res.Digest); err != nil {
		return Result{}, fmt.Errorf("%s: %w", errCtx, err)
	}

	return res, nil
}

// Verify fingerprints the tree and compares the digest with the
// one stored in the output file. It returns ErrDigestMismatch,
// along with the computed Result, when they differ. A missing
// output file is a mismatch.
func Verify(op Options) (Result, error) {
	const errCtx = "verifying digest"

	res, err := Compute(op)
	if err != nil {
		return Result{}, fmt.Errorf("%s: %w", errCtx, err)
	}

	stored, err := readDigest(res.Output)
	if err != nil {
		return res, fmt.Errorf("%s: %w", errCtx, err)
	}

	if stored != res.Digest {
		return res, fmt.Errorf(
			"%s: %w: stored %q, computed %q",
			errCtx, ErrDigestMismatch, stored, res.Digest,
		)
	}

	return res, nil
}

func writeDigest(pa string, digest string) error {
	const errCtx = "writing digest"

	err := os.WriteFile( //nolint:gosec // output path is caller-provided by design
		pa, []byte(digest), 0o666,
	)
	if err != nil {
		return fmt.Errorf(
			"%s: %w: %w", errCtx, ErrOutputWriteFailed, err,
		)
	}

	return nil
}

// readDigest returns the trimmed digest stored at pa, or an
// empty string if pa does not exist.
func readDigest(pa string) (string, error) {
	const errCtx = "reading stored digest"

	content, err := os.ReadFile(pa) //nolint:gosec // output path is caller-provided by design
	if errors.Is(err, os.ErrNotExist) {
		return "", nil
	}

	if err != nil {
		return "", fmt.Errorf("%s: %w", errCtx, err)
	}

	return strings.TrimSpace(string(content)), nil
}
