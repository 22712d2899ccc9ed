// Package search implements recursive, case-sensitive substring search
// over file contents for the fsclock CLI.
//
// The walk is lexical and strictly sequential. Every regular file under
// the root is considered; content type detection via
// github.com/gabriel-vasile/mimetype excludes binary files, and files
// that cannot be opened or read are skipped rather than failing the
// search. Only a missing or non-directory root is a fatal error.
//
// An optional gitignore-style include pattern (github.com/bmatcuk/doublestar)
// restricts the search to matching relative paths.
package search
