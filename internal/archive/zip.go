package archive

import (
	"archive/zip"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/flate"
)

// Result summarizes a completed archive operation. For Create, Path is
// the archive written and Bytes counts uncompressed input bytes; for
// Extract, Path is the destination directory and Bytes counts bytes
// written out.
type Result struct {
	// Path is the archive file (Create) or destination directory (Extract).
	Path string `json:"path"`

	// Files is the number of regular files archived or extracted.
	Files int `json:"files"`

	// Bytes is the total size of those files, uncompressed.
	Bytes int64 `json:"bytes"`
}

// DefaultOutputPath derives the archive path used when no --output flag
// is given: the cleaned source directory path with a ".zip" suffix, so
// "zip ./proj" produces "proj.zip" next to the directory.
func DefaultOutputPath(sourceDir string) string {
	return filepath.Clean(sourceDir) + ".zip"
}

// EnsureZipSuffix appends ".zip" to an explicit output path that lacks
// the extension, keeping the produced file recognizable.
func EnsureZipSuffix(path string) string {
	if filepath.Ext(path) == ".zip" {
		return path
	}
	return path + ".zip"
}

// Create archives every file and subdirectory under sourceDir into a
// single zip at outputPath, preserving paths relative to sourceDir as
// entry names (forward-slash separated, directories with a trailing "/").
//
// The walk is lexical, so entry order — and therefore the archive layout
// for identical inputs — is deterministic. Symlinks and other irregular
// entries are not archived. Any error while walking, reading a file, or
// writing an entry aborts the operation; a partial archive may remain at
// outputPath.
func Create(sourceDir, outputPath string) (*Result, error) {
	info, err := os.Stat(sourceDir)
	if err != nil {
		return nil, fmt.Errorf("source directory %s: %w", sourceDir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("source %s is not a directory", sourceDir)
	}

	zipFile, err := os.Create(outputPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create archive %s: %w", outputPath, err)
	}

	zipWriter := zip.NewWriter(zipFile)

	// Swap in the klauspost flate implementation for Deflate entries.
	// Same format on the wire, substantially faster compression.
	zipWriter.RegisterCompressor(zip.Deflate, func(out io.Writer) (io.WriteCloser, error) {
		return flate.NewWriter(out, flate.DefaultCompression)
	})

	result := &Result{Path: outputPath}

	walkErr := filepath.WalkDir(sourceDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if path == sourceDir {
			return nil
		}

		relPath, err := filepath.Rel(sourceDir, path)
		if err != nil {
			return err
		}
		// Zip entry names always use forward slashes, regardless of the
		// host path separator.
		entryName := filepath.ToSlash(relPath)

		if d.IsDir() {
			_, err := zipWriter.Create(entryName + "/")
			return err
		}
		if !d.Type().IsRegular() {
			return nil
		}

		return addFile(zipWriter, path, entryName, result)
	})

	if walkErr != nil {
		// Abort: flush what was buffered and leave the partial archive
		// in place, per the no-rollback contract.
		_ = zipWriter.Close()
		_ = zipFile.Close()
		return nil, fmt.Errorf("archiving %s failed: %w", sourceDir, walkErr)
	}

	// Close the zip writer first — it writes the central directory.
	// Only then close the underlying file; either failure means the
	// archive is not usable.
	if err := zipWriter.Close(); err != nil {
		_ = zipFile.Close()
		return nil, fmt.Errorf("failed to finalize archive %s: %w", outputPath, err)
	}
	if err := zipFile.Close(); err != nil {
		return nil, fmt.Errorf("failed to close archive %s: %w", outputPath, err)
	}

	return result, nil
}

// addFile streams one regular file into the archive and updates the
// running totals. The source file is closed on every path.
func addFile(zipWriter *zip.Writer, path, entryName string, result *Result) error {
	writer, err := zipWriter.Create(entryName)
	if err != nil {
		return err
	}

	file, err := os.Open(path)
	if err != nil {
		return err
	}

	size, copyErr := io.Copy(writer, file)
	closeErr := file.Close()
	if copyErr != nil {
		return copyErr
	}
	if closeErr != nil {
		return closeErr
	}

	result.Bytes += size
	result.Files++
	return nil
}
