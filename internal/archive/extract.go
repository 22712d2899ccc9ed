package archive

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Extract unpacks the zip at archivePath into destDir, recreating the
// archived directory structure. Existing files in the destination are
// overwritten. Entries whose resolved path would escape destDir are
// rejected (zip-slip), which aborts the extraction.
func Extract(archivePath, destDir string) (*Result, error) {
	reader, err := zip.OpenReader(archivePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open archive %s: %w", archivePath, err)
	}
	defer func() { _ = reader.Close() }()

	if err := os.MkdirAll(destDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create destination %s: %w", destDir, err)
	}

	cleanDest := filepath.Clean(destDir)
	result := &Result{Path: destDir}

	for _, entry := range reader.File {
		target := filepath.Join(cleanDest, filepath.FromSlash(entry.Name))

		// filepath.Join cleans the result, so an entry like "../x"
		// would resolve outside the destination. Refuse it outright
		// rather than silently skipping.
		if target != cleanDest && !strings.HasPrefix(target, cleanDest+string(os.PathSeparator)) {
			return nil, fmt.Errorf("archive entry %q escapes destination directory", entry.Name)
		}

		if entry.FileInfo().IsDir() {
			if err := os.MkdirAll(target, 0o755); err != nil {
				return nil, fmt.Errorf("failed to create directory %s: %w", target, err)
			}
			continue
		}

		if err := extractFile(entry, target, result); err != nil {
			return nil, err
		}
	}

	return result, nil
}

// extractFile writes a single archive entry to target, creating parent
// directories as needed. Both the entry reader and the output file are
// closed on every path.
func extractFile(entry *zip.File, target string, result *Result) error {
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", target, err)
	}

	src, err := entry.Open()
	if err != nil {
		return fmt.Errorf("failed to open archive entry %q: %w", entry.Name, err)
	}

	dst, err := os.OpenFile(target, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, entry.Mode())
	if err != nil {
		_ = src.Close()
		return fmt.Errorf("failed to create %s: %w", target, err)
	}

	size, copyErr := io.Copy(dst, src)
	_ = src.Close()
	closeErr := dst.Close()

	if copyErr != nil {
		return fmt.Errorf("failed to extract %q: %w", entry.Name, copyErr)
	}
	if closeErr != nil {
		return fmt.Errorf("failed to close %s: %w", target, closeErr)
	}

	result.Bytes += size
	result.Files++
	return nil
}
