package fscopy

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// Result summarizes a completed copy. Files is 1 for a file source and
// the number of regular files copied for a directory source.
type Result struct {
	// Destination is the path of the new copy. For a file copied into an
	// existing directory this includes the source's base name.
	Destination string `json:"destination"`

	// Files is the number of regular files copied.
	Files int `json:"files"`

	// Bytes is the total number of content bytes copied.
	Bytes int64 `json:"bytes"`
}

// Copy copies source to destination. A regular file is copied
// byte-for-byte; a directory is copied recursively with its relative
// structure preserved. See the package comment for the overwrite and
// parent-directory rules.
func Copy(source, destination string) (*Result, error) {
	info, err := os.Stat(source)
	if err != nil {
		return nil, fmt.Errorf("source %s: %w", source, err)
	}

	if info.IsDir() {
		return copyTree(source, destination)
	}
	return copySingle(source, destination, info)
}

// copySingle copies one regular file. When destination is an existing
// directory, the file is placed inside it under its original base name.
func copySingle(source, destination string, info os.FileInfo) (*Result, error) {
	if destInfo, err := os.Stat(destination); err == nil && destInfo.IsDir() {
		destination = filepath.Join(destination, filepath.Base(source))
	}

	parent := filepath.Dir(destination)
	if _, err := os.Stat(parent); err != nil {
		return nil, fmt.Errorf("destination parent %s: %w", parent, err)
	}

	size, err := copyFile(source, destination, info.Mode())
	if err != nil {
		return nil, err
	}
	return &Result{Destination: destination, Files: 1, Bytes: size}, nil
}

// copyTree recursively copies the directory at src into dst, creating
// dst itself if needed and merging into it if it already exists.
func copyTree(src, dst string) (*Result, error) {
	srcInfo, err := os.Stat(src)
	if err != nil {
		return nil, fmt.Errorf("source %s: %w", src, err)
	}

	parent := filepath.Dir(filepath.Clean(dst))
	if _, err := os.Stat(parent); err != nil {
		return nil, fmt.Errorf("destination parent %s: %w", parent, err)
	}
	if err := os.MkdirAll(dst, srcInfo.Mode()); err != nil {
		return nil, fmt.Errorf("failed to create destination %s: %w", dst, err)
	}

	result := &Result{Destination: dst}

	walkErr := filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("error walking source tree at %s: %w", path, err)
		}
		if path == src {
			return nil
		}

		relPath, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dst, relPath)

		// Skip symbolic links to keep the copy behavior predictable and
		// free of circular references.
		if d.Type()&os.ModeSymlink != 0 {
			return nil
		}

		if d.IsDir() {
			info, infoErr := d.Info()
			if infoErr != nil {
				return infoErr
			}
			// MkdirAll tolerates an already existing directory, which
			// gives the merge-into-existing-tree semantics.
			if mkErr := os.MkdirAll(target, info.Mode()); mkErr != nil {
				return fmt.Errorf("failed to create directory %s: %w", target, mkErr)
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}

		info, infoErr := d.Info()
		if infoErr != nil {
			return infoErr
		}
		size, copyErr := copyFile(path, target, info.Mode())
		if copyErr != nil {
			return copyErr
		}
		result.Files++
		result.Bytes += size
		return nil
	})

	if walkErr != nil {
		// The partially copied tree is deliberately left as-is.
		return nil, fmt.Errorf("copying %s failed: %w", src, walkErr)
	}
	return result, nil
}

// copyFile copies a single file from src to dst, preserving the file
// mode, and returns the number of bytes copied. Both files are closed on
// every exit path; io.Copy streams the contents without loading the
// whole file into memory.
func copyFile(src, dst string, mode os.FileMode) (int64, error) {
	srcFile, err := os.Open(src)
	if err != nil {
		return 0, fmt.Errorf("failed to open source file %s: %w", src, err)
	}
	defer func() { _ = srcFile.Close() }()

	dstFile, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, mode)
	if err != nil {
		return 0, fmt.Errorf("failed to create destination file %s: %w", dst, err)
	}

	size, copyErr := io.Copy(dstFile, srcFile)
	closeErr := dstFile.Close()

	if copyErr != nil {
		return 0, fmt.Errorf("failed to copy %s to %s: %w", src, dst, copyErr)
	}
	if closeErr != nil {
		return 0, fmt.Errorf("failed to close destination file %s: %w", dst, closeErr)
	}
	return size, nil
}
