// Package ignore loads the .gitignore pattern file at the root of a
// tree and answers whether a root-relative path is excluded. The
// Matcher interface lets callers swap the pattern engine without
// touching the walk.
package ignore
