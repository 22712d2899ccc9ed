package archive

import (
	"archive/zip"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeTree creates the canonical test fixture: a directory with a file
// at the root and one in a subdirectory.
func writeTree(t *testing.T) string {
	t.Helper()
	dir := filepath.Join(t.TempDir(), "proj")
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "sub"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte("hello"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "sub", "b.txt"), []byte("world"), 0o644))
	return dir
}

// TestCreate verifies entry names are relative, slash-separated paths and
// that file count and byte totals are reported.
func TestCreate(t *testing.T) {
	dir := writeTree(t)
	out := filepath.Join(t.TempDir(), "proj.zip")

	result, err := Create(dir, out)
	require.NoError(t, err)
	assert.Equal(t, out, result.Path)
	assert.Equal(t, 2, result.Files)
	assert.Equal(t, int64(len("hello")+len("world")), result.Bytes)

	reader, err := zip.OpenReader(out)
	require.NoError(t, err)
	defer func() { _ = reader.Close() }()

	names := make(map[string]bool)
	for _, f := range reader.File {
		names[f.Name] = true
	}
	assert.True(t, names["a.txt"])
	assert.True(t, names["sub/"])
	assert.True(t, names["sub/b.txt"])
}

// TestCreate_RoundTrip archives a tree, extracts it elsewhere, and checks
// the extracted contents are byte-identical to the originals.
func TestCreate_RoundTrip(t *testing.T) {
	dir := writeTree(t)
	out := filepath.Join(t.TempDir(), "proj.zip")

	_, err := Create(dir, out)
	require.NoError(t, err)

	dest := filepath.Join(t.TempDir(), "restored")
	result, err := Extract(out, dest)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Files)

	a, err := os.ReadFile(filepath.Join(dest, "a.txt"))
	require.NoError(t, err)
	assert.Equal(t, []byte("hello"), a)

	b, err := os.ReadFile(filepath.Join(dest, "sub", "b.txt"))
	require.NoError(t, err)
	assert.Equal(t, []byte("world"), b)
}

// TestCreate_MissingSource verifies the operation fails without creating
// an archive when the source directory does not exist.
func TestCreate_MissingSource(t *testing.T) {
	out := filepath.Join(t.TempDir(), "ghost.zip")

	_, err := Create(filepath.Join(t.TempDir(), "nonexistent"), out)
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, statErr := os.Stat(out)
	assert.True(t, os.IsNotExist(statErr), "no archive file should be created")
}

// TestCreate_SourceIsFile verifies a regular file is rejected as a source.
func TestCreate_SourceIsFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "plain.txt")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))

	_, err := Create(file, filepath.Join(t.TempDir(), "out.zip"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a directory")
}

// TestCreate_OverwritesExistingArchive pins the documented overwrite
// policy: an existing file at the output path is truncated.
func TestCreate_OverwritesExistingArchive(t *testing.T) {
	dir := writeTree(t)
	out := filepath.Join(t.TempDir(), "proj.zip")
	require.NoError(t, os.WriteFile(out, []byte("stale bytes, not a zip"), 0o644))

	_, err := Create(dir, out)
	require.NoError(t, err)

	reader, err := zip.OpenReader(out)
	require.NoError(t, err)
	assert.Len(t, reader.File, 3) // a.txt, sub/, sub/b.txt
	_ = reader.Close()
}

// TestCreate_EmptyDirectory verifies an empty source yields a valid,
// empty archive rather than an error.
func TestCreate_EmptyDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "empty")
	require.NoError(t, os.MkdirAll(dir, 0o755))

	result, err := Create(dir, filepath.Join(t.TempDir(), "empty.zip"))
	require.NoError(t, err)
	assert.Equal(t, 0, result.Files)
	assert.Equal(t, int64(0), result.Bytes)
}

// TestExtract_RejectsEscapingEntries verifies the zip-slip guard aborts
// extraction of hostile archives.
func TestExtract_RejectsEscapingEntries(t *testing.T) {
	archivePath := filepath.Join(t.TempDir(), "evil.zip")
	f, err := os.Create(archivePath)
	require.NoError(t, err)
	zw := zip.NewWriter(f)
	w, err := zw.Create("../escape.txt")
	require.NoError(t, err)
	_, err = w.Write([]byte("gotcha"))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	require.NoError(t, f.Close())

	dest := filepath.Join(t.TempDir(), "safe")
	_, err = Extract(archivePath, dest)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "escapes destination")

	_, statErr := os.Stat(filepath.Join(filepath.Dir(dest), "escape.txt"))
	assert.True(t, os.IsNotExist(statErr))
}

// TestExtract_MissingArchive verifies a missing archive path fails cleanly.
func TestExtract_MissingArchive(t *testing.T) {
	_, err := Extract(filepath.Join(t.TempDir(), "no-such.zip"), t.TempDir())
	assert.Error(t, err)
}

// TestDefaultOutputPath checks the derived archive name, including
// trailing-separator cleanup.
func TestDefaultOutputPath(t *testing.T) {
	tests := []struct {
		source   string
		expected string
	}{
		{"proj", "proj.zip"},
		{"proj/", "proj.zip"},
		{"/tmp/proj", "/tmp/proj.zip"},
		{"./proj", "proj.zip"},
	}

	for _, tt := range tests {
		t.Run(tt.source, func(t *testing.T) {
			assert.Equal(t, tt.expected, DefaultOutputPath(tt.source))
		})
	}
}

// TestEnsureZipSuffix checks extension normalization of explicit outputs.
func TestEnsureZipSuffix(t *testing.T) {
	assert.Equal(t, "out.zip", EnsureZipSuffix("out.zip"))
	assert.Equal(t, "out.zip", EnsureZipSuffix("out"))
	assert.Equal(t, "backup.tar.zip", EnsureZipSuffix("backup.tar"))
}
