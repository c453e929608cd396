package digester

import (
	"encoding/hex"
	"errors"
	"fmt"
	"hash"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"

	"github.com/byte4ever/dirdigest/ignore"
)

// chunkSize bounds the read buffer used while streaming file
// content into the hash. It has no effect on the digest.
const chunkSize = 8 << 10

// resolvePath returns the absolute, symlink-free form of pa.
// When pa does not exist yet its parent is resolved and the
// base name re-attached.
func resolvePath(pa string) (string, error) {
	abs, err := filepath.Abs(pa)
	if err != nil {
		return "", err
	}

	res, err := filepath.EvalSymlinks(abs)
	if err == nil {
		return res, nil
	}

	if !errors.Is(err, fs.ErrNotExist) {
		return "", err
	}

	dir, err := resolvePath(filepath.Dir(abs))
	if err != nil {
		return "", err
	}

	return filepath.Join(dir, filepath.Base(abs)), nil
}

// walkFunc matches filepath.WalkDir.
type walkFunc func(root string, fn fs.WalkDirFunc) error

// collectFiles walks root and returns, in walk order, the
// slash-separated relative paths of the regular files that do
// not resolve to exclude and are not matched by m. Symlinks to
// regular files count as files; symlinked directories are not
// descended.
func collectFiles(
	root string,
	exclude string,
	m ignore.Matcher,
) ([]string, error) {
	return collectFilesWith(filepath.WalkDir, root, exclude, m)
}

func collectFilesWith(
	walk walkFunc,
	root string,
	exclude string,
	m ignore.Matcher,
) ([]string, error) {
	const errCtx = "enumerating files"

	var files []string

	err := walk(
		root,
		func(pa string, de fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			if de.IsDir() {
				return nil
			}

			resolved := pa

			switch {
			case de.Type().IsRegular():
			case de.Type()&fs.ModeSymlink != 0:
				fi, statErr := os.Stat(pa)
				if statErr != nil || !fi.Mode().IsRegular() {
					return nil
				}

				if resolved, err = filepath.EvalSymlinks(pa); err != nil {
					return nil //nolint:nilerr // link vanished, same as dangling
				}
			default:
				return nil
			}

			if resolved == exclude {
				return nil
			}

			rel, err := filepath.Rel(root, pa)
			if err != nil {
				return err
			}

			rel = filepath.ToSlash(rel)

			if m.Match(rel) {
				slog.Debug("ignored", "path", rel)

				return nil
			}

			files = append(files, rel)

			return nil
		},
	)
	if err != nil {
		return nil, fmt.Errorf(
			"%s: %w: %w", errCtx, ErrEnumerationFailed, err,
		)
	}

	return files, nil
}

// hashFiles feeds each relative path and then the content of
// the file it names into one hash, in sorted path order. It
// returns the hex digest and the sorted paths.
func hashFiles(
	newHash func() hash.Hash,
	root string,
	files []string,
) (string, []string, error) {
	const errCtx = "hashing files"

	sorted := append([]string(nil), files...)
	slices.Sort(sorted)

	ha := newHash()
	buf := make([]byte, chunkSize)

	for _, rel := range sorted {
		slog.Debug("hashing", "path", rel)

		if _, err := io.WriteString(ha, rel); err != nil {
			return "", nil, fmt.Errorf("%s: %w", errCtx, err)
		}

		pa := filepath.Join(root, filepath.FromSlash(rel))
		if err := copyFile(ha, pa, buf); err != nil {
			return "", nil, fmt.Errorf(
				"%s: %s: %w", errCtx, rel, err,
			)
		}
	}

	return hex.EncodeToString(ha.Sum(nil)), sorted, nil
}

// copyFile streams the content of pa into w through buf.
func copyFile(w io.Writer, pa string, buf []byte) (retErr error) {
	fi, err := os.Open(pa) //nolint:gosec // path produced by the walk
	if err != nil {
		return classifyReadErr(err)
	}

	defer func() {
		if closeErr := fi.Close(); closeErr != nil && retErr == nil {
			retErr = classifyReadErr(closeErr)
		}
	}()

	// The anonymous struct hides WriterTo so reads go through buf.
	if _, err := io.CopyBuffer(
		w, struct{ io.Reader }{fi}, buf,
	); err != nil {
		return classifyReadErr(err)
	}

	return nil
}

func classifyReadErr(err error) error {
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %w", ErrFileVanished, err)
	}

	return fmt.Errorf("%w: %w", ErrFileUnreadable, err)
}
