package ignore

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-git/go-git/v5/plumbing/format/gitignore"
)

// FileName is the pattern file looked up at the root.
const FileName = ".gitignore"

const commentPrefix = "#"

// ErrUnreadable is returned when the pattern file exists but
// cannot be read.
var ErrUnreadable = errors.New("ignore file unreadable")

// Matcher reports whether a root-relative, slash-separated
// file path is excluded.
type Matcher interface {
	Match(relPath string) bool
}

// Spec is a compiled set of gitignore patterns. The zero
// value matches nothing.
type Spec struct {
	gm gitignore.Matcher
}

// Empty returns a Spec that matches nothing.
func Empty() *Spec {
	return &Spec{}
}

// FromLines compiles gitignore pattern lines. Later lines take
// precedence, so a "!pattern" re-includes what an earlier line
// excluded. Blank and comment lines are skipped.
func FromLines(lines ...string) *Spec {
	var ps []gitignore.Pattern

	for _, line := range lines {
		line = strings.TrimSuffix(line, "\r")

		if strings.HasPrefix(line, commentPrefix) ||
			strings.TrimSpace(line) == "" {
			continue
		}

		ps = append(ps, gitignore.ParsePattern(line, nil))
	}

	return &Spec{gm: gitignore.NewMatcher(ps)}
}

// Load reads FileName from root. A missing file yields an
// empty Spec.
func Load(root string) (*Spec, error) {
	const errCtx = "loading ignore file"

	pa := filepath.Join(root, FileName)

	content, err := os.ReadFile(pa) //nolint:gosec // path derived from root
	if errors.Is(err, os.ErrNotExist) {
		return Empty(), nil
	}

	if err != nil {
		return nil, fmt.Errorf(
			"%s: %w: %w", errCtx, ErrUnreadable, err,
		)
	}

	return FromLines(strings.Split(string(content), "\n")...), nil
}

// Match implements Matcher. relPath always names a file, so
// directory-only patterns apply through its parent components.
func (sp *Spec) Match(relPath string) bool {
	if sp == nil || sp.gm == nil {
		return false
	}

	return sp.gm.Match(
		strings.Split(filepath.ToSlash(relPath), "/"), false,
	)
}
