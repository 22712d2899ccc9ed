package search

import (
	"bytes"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/gabriel-vasile/mimetype"
)

// Options carries the optional knobs for a search run.
type Options struct {
	// Include, when non-empty, is a doublestar glob matched against each
	// file's root-relative slash-separated path. Non-matching files are
	// not scanned at all. Example: "**/*.go".
	Include string
}

// Result summarizes one search run. Matches holds root-relative paths of
// files containing the term at least once, in walk (lexical) order.
type Result struct {
	// Matches are the root-relative paths of matching files.
	Matches []string `json:"matches"`

	// Occurrences is the total number of term occurrences across all
	// matching files.
	Occurrences int `json:"occurrences"`

	// Scanned is the number of regular files considered (after the
	// include filter).
	Scanned int `json:"scanned"`

	// Skipped is the number of files excluded because they are not
	// decodable text or could not be read.
	Skipped int `json:"skipped"`
}

// Run searches every regular file under root for term as an exact,
// case-sensitive substring.
//
// Files that are not text (binary content) or cannot be read are counted
// in Skipped and excluded from the results; a single unreadable file
// never aborts the search. Run fails only when root is missing or not a
// directory, or when the include pattern is malformed.
func Run(term, root string, opts Options) (*Result, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("search directory %s: %w", root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("search path %s is not a directory", root)
	}
	if opts.Include != "" && !doublestar.ValidatePattern(opts.Include) {
		return nil, fmt.Errorf("invalid include pattern %q", opts.Include)
	}

	termBytes := []byte(term)
	result := &Result{}

	walkErr := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// The root itself was already validated; an error on a
			// nested entry (e.g. a directory that lost read permission
			// mid-walk) excludes that entry rather than failing the
			// whole search.
			return nil
		}
		if d.IsDir() || !d.Type().IsRegular() {
			return nil
		}

		relPath, relErr := filepath.Rel(root, path)
		if relErr != nil {
			return nil
		}
		relPath = filepath.ToSlash(relPath)

		if opts.Include != "" {
			// Pattern validity was checked up front, so the error
			// return here cannot trigger.
			ok, _ := doublestar.Match(opts.Include, relPath)
			if !ok {
				return nil
			}
		}

		result.Scanned++

		if !isTextFile(path) {
			result.Skipped++
			return nil
		}

		data, readErr := os.ReadFile(path)
		if readErr != nil {
			result.Skipped++
			return nil
		}

		if n := bytes.Count(data, termBytes); n > 0 {
			result.Occurrences += n
			result.Matches = append(result.Matches, relPath)
		}
		return nil
	})

	if walkErr != nil {
		return nil, fmt.Errorf("searching %s failed: %w", root, walkErr)
	}
	return result, nil
}

// isTextFile reports whether the file's detected content type descends
// from text/plain. Detection errors (unreadable file, vanished file)
// count as "not text" so the caller records a skip.
func isTextFile(path string) bool {
	mtype, err := mimetype.DetectFile(path)
	if err != nil {
		return false
	}
	// Every text format in the mimetype hierarchy has text/plain as an
	// ancestor; walking the parent chain catches text/html, text/csv,
	// application/json-as-text and friends, not just bare .txt files.
	for m := mtype; m != nil; m = m.Parent() {
		if m.Is("text/plain") {
			return true
		}
	}
	return false
}
