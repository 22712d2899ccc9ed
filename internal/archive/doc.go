// Package archive implements zip creation and extraction for the
// fsclock CLI.
//
// Create walks a source directory in lexical order and writes every file
// and subdirectory into a single zip, with entry names taken from the
// path relative to the source root. Deflate compression is provided by
// github.com/klauspost/compress/flate, registered in place of the
// standard library compressor.
//
// Overwrite policy: creating an archive truncates an existing file at the
// output path. Extraction overwrites existing files in the destination.
// A traversal or write error aborts the whole operation and leaves any
// partially written output as-is — there is no rollback.
package archive
