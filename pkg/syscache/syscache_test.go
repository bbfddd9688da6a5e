package syscache

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path string, size int) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0750))
	require.NoError(t, os.WriteFile(path, make([]byte, size), 0600))
}

func TestDiscoverInFiltersAndSorts(t *testing.T) {
	home := t.TempDir()

	writeFile(t, filepath.Join(home, ".npm/_cacache/blob"), 100)
	writeFile(t, filepath.Join(home, ".gradle/caches/module/jar"), 5000)
	writeFile(t, filepath.Join(home, ".m2/repository/dep.pom"), 300)

	// Exists but empty, must be skipped.
	require.NoError(t, os.MkdirAll(filepath.Join(home, ".cargo/registry"), 0750))

	caches := discoverIn(home)
	require.Len(t, caches, 3)

	assert.Equal(t, "Gradle", caches[0].Name)
	assert.Equal(t, "Maven", caches[1].Name)
	assert.Equal(t, "npm", caches[2].Name)
	assert.Equal(t, int64(5000), caches[0].Size)
	assert.Equal(t, int64(100), caches[2].Size)
}

func TestDiscoverInNothingKnown(t *testing.T) {
	assert.Empty(t, discoverIn(t.TempDir()))
}

func TestPurgeRecreatesEmptyDirectory(t *testing.T) {
	home := t.TempDir()
	dir := filepath.Join(home, ".npm/_cacache")
	writeFile(t, filepath.Join(dir, "blob"), 64)
	writeFile(t, filepath.Join(dir, "nested/blob"), 64)

	caches := discoverIn(home)
	require.Len(t, caches, 1)

	freed, err := Purge(caches[0])
	require.NoError(t, err)
	assert.Equal(t, int64(128), freed)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestPurgeTrashKeepsDirectoryInPlace(t *testing.T) {
	home := t.TempDir()
	trash := filepath.Join(home, ".Trash")
	writeFile(t, filepath.Join(trash, "old.log"), 32)
	writeFile(t, filepath.Join(trash, "folder/deep.txt"), 32)

	caches := discoverIn(home)
	require.Len(t, caches, 1)
	require.Equal(t, "Trash", caches[0].Name)

	freed, err := Purge(caches[0])
	require.NoError(t, err)
	assert.Equal(t, int64(64), freed)

	entries, err := os.ReadDir(trash)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestPurgeMissingPathIsNoop(t *testing.T) {
	freed, err := Purge(Cache{Name: "npm", Path: filepath.Join(t.TempDir(), "gone"), Size: 9000})
	require.NoError(t, err)
	assert.Zero(t, freed)
}

func TestDirSizeSumsRegularFilesOnly(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a"), 10)
	writeFile(t, filepath.Join(dir, "sub/b"), 20)
	require.NoError(t, os.Symlink(filepath.Join(dir, "a"), filepath.Join(dir, "link")))

	assert.Equal(t, int64(30), dirSize(dir))
}
