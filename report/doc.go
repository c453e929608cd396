// Package report renders a digest run for standard output,
// either through a single-brace {VAR} template or as a JSON
// object. The output file itself always holds only the digest.
package report
