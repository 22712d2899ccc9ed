package fscopy

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeTree creates the canonical fixture tree used across copy tests.
func writeTree(t *testing.T) string {
	t.Helper()
	dir := filepath.Join(t.TempDir(), "proj")
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "sub"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte("hello"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "sub", "b.txt"), []byte("world"), 0o644))
	return dir
}

// TestCopy_File verifies byte-for-byte file copy with mode preservation.
func TestCopy_File(t *testing.T) {
	src := filepath.Join(t.TempDir(), "src.txt")
	require.NoError(t, os.WriteFile(src, []byte("payload"), 0o600))
	dst := filepath.Join(t.TempDir(), "dst.txt")

	result, err := Copy(src, dst)
	require.NoError(t, err)
	assert.Equal(t, dst, result.Destination)
	assert.Equal(t, 1, result.Files)
	assert.Equal(t, int64(len("payload")), result.Bytes)

	data, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, []byte("payload"), data)

	info, err := os.Stat(dst)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

// TestCopy_FileIntoExistingDirectory verifies the copy lands inside an
// existing directory destination under the source's base name.
func TestCopy_FileIntoExistingDirectory(t *testing.T) {
	src := filepath.Join(t.TempDir(), "notes.txt")
	require.NoError(t, os.WriteFile(src, []byte("n"), 0o644))
	destDir := t.TempDir()

	result, err := Copy(src, destDir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(destDir, "notes.txt"), result.Destination)
	assert.FileExists(t, result.Destination)
}

// TestCopy_OverwritesExistingFile pins the documented overwrite policy.
func TestCopy_OverwritesExistingFile(t *testing.T) {
	src := filepath.Join(t.TempDir(), "src.txt")
	require.NoError(t, os.WriteFile(src, []byte("new"), 0o644))
	dst := filepath.Join(t.TempDir(), "dst.txt")
	require.NoError(t, os.WriteFile(dst, []byte("old contents, longer"), 0o644))

	_, err := Copy(src, dst)
	require.NoError(t, err)

	data, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, []byte("new"), data)
}

// TestCopy_MissingDestinationParent verifies a missing parent directory
// is a failure, not something the copy creates.
func TestCopy_MissingDestinationParent(t *testing.T) {
	src := filepath.Join(t.TempDir(), "src.txt")
	require.NoError(t, os.WriteFile(src, []byte("x"), 0o644))

	dst := filepath.Join(t.TempDir(), "missing", "dst.txt")
	_, err := Copy(src, dst)
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Contains(t, err.Error(), "destination parent")
}

// TestCopy_MissingSource verifies a missing source fails with the
// not-exist error preserved for exit code classification.
func TestCopy_MissingSource(t *testing.T) {
	_, err := Copy(filepath.Join(t.TempDir(), "ghost"), t.TempDir())
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

// TestCopy_Directory verifies recursive tree copy with structure,
// contents, and counts preserved.
func TestCopy_Directory(t *testing.T) {
	src := writeTree(t)
	dst := filepath.Join(t.TempDir(), "proj_copy")

	result, err := Copy(src, dst)
	require.NoError(t, err)
	assert.Equal(t, dst, result.Destination)
	assert.Equal(t, 2, result.Files)
	assert.Equal(t, int64(len("hello")+len("world")), result.Bytes)

	b, err := os.ReadFile(filepath.Join(dst, "sub", "b.txt"))
	require.NoError(t, err)
	assert.Equal(t, []byte("world"), b)
}

// TestCopy_DirectoryMergesIntoExisting verifies copying onto an existing
// destination directory merges rather than failing.
func TestCopy_DirectoryMergesIntoExisting(t *testing.T) {
	src := writeTree(t)
	dst := filepath.Join(t.TempDir(), "existing")
	require.NoError(t, os.MkdirAll(dst, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dst, "keep.txt"), []byte("keep"), 0o644))

	_, err := Copy(src, dst)
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(dst, "keep.txt"))
	assert.FileExists(t, filepath.Join(dst, "a.txt"))
	assert.FileExists(t, filepath.Join(dst, "sub", "b.txt"))
}

// TestCopy_DirectorySkipsSymlinks verifies symlinks are not carried into
// the copy.
func TestCopy_DirectorySkipsSymlinks(t *testing.T) {
	src := writeTree(t)
	require.NoError(t, os.Symlink(filepath.Join(src, "a.txt"), filepath.Join(src, "link.txt")))

	dst := filepath.Join(t.TempDir(), "out")
	result, err := Copy(src, dst)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Files)

	_, statErr := os.Lstat(filepath.Join(dst, "link.txt"))
	assert.True(t, os.IsNotExist(statErr))
}
