// Package digester computes a single content fingerprint of a
// directory tree. Every regular file that is not ignored by the
// root .gitignore and is not the output file itself contributes its
// slash-separated relative path followed by its bytes, in sorted
// path order, to one streaming hash. Digest writes the resulting hex
// string to the output file; Verify compares it against the stored
// value without writing.
package digester
