// Package fscopy implements file and directory tree copying for the
// fsclock CLI.
//
// A file source is copied byte-for-byte, preserving its mode; if the
// destination is an existing directory the copy lands inside it under
// the source's base name. A directory source is copied recursively in
// lexical order, merging into an existing destination directory.
// Symlinks are skipped during tree copies.
//
// Overwrite policy: existing destination files are truncated and
// overwritten. The destination's parent directory must already exist —
// missing intermediate directories are a failure, not something the copy
// creates. A mid-copy error aborts the operation and leaves the partial
// tree in place.
package fscopy
