package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreatesCategoryDirectories(t *testing.T) {
	root := filepath.Join(t.TempDir(), "static")

	_, err := New(root)
	require.NoError(t, err)

	for _, category := range []Category{CategoryImages, CategoryProjectFiles, CategoryExecutables} {
		info, err := os.Stat(filepath.Join(root, string(category)))
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	}
}

func TestSaveWritesBlobUnderCategory(t *testing.T) {
	root := t.TempDir()
	store, err := New(root)
	require.NoError(t, err)

	path, err := store.Save(CategoryImages, "team.png", strings.NewReader("png bytes"))
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(root, "images"), filepath.Dir(path))
	assert.True(t, strings.HasSuffix(path, "_team.png"))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "png bytes", string(content))

	// No temp files left behind
	entries, err := os.ReadDir(filepath.Join(root, "images"))
	require.NoError(t, err)
	require.Len(t, entries, 1)
}

func TestSaveSameNameTwiceDoesNotCollide(t *testing.T) {
	store, err := New(t.TempDir())
	require.NoError(t, err)

	first, err := store.Save(CategoryProjectFiles, "release.zip", strings.NewReader("v1"))
	require.NoError(t, err)
	second, err := store.Save(CategoryProjectFiles, "release.zip", strings.NewReader("v2"))
	require.NoError(t, err)

	assert.NotEqual(t, first, second)

	v1, err := os.ReadFile(first)
	require.NoError(t, err)
	assert.Equal(t, "v1", string(v1))
}

func TestSaveStripsDirectoryComponents(t *testing.T) {
	root := t.TempDir()
	store, err := New(root)
	require.NoError(t, err)

	path, err := store.Save(CategoryImages, "../../etc/passwd.png", strings.NewReader("x"))
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(root, "images"), filepath.Dir(path))
	assert.True(t, strings.HasSuffix(path, "_passwd.png"))
}

func TestOpenMissingBlob(t *testing.T) {
	store, err := New(t.TempDir())
	require.NoError(t, err)

	_, _, err = store.Open(filepath.Join(t.TempDir(), "nope.zip"))
	assert.ErrorIs(t, err, ErrBlobNotFound)
}

func TestOpenReturnsContentAndSize(t *testing.T) {
	store, err := New(t.TempDir())
	require.NoError(t, err)

	path, err := store.Save(CategoryExecutables, "game", strings.NewReader("binary"))
	require.NoError(t, err)

	f, stat, err := store.Open(path)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, int64(len("binary")), stat.Size())
}

func TestRemoveIsIdempotent(t *testing.T) {
	store, err := New(t.TempDir())
	require.NoError(t, err)

	path, err := store.Save(CategoryImages, "a.png", strings.NewReader("x"))
	require.NoError(t, err)

	require.NoError(t, store.Remove(path))
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))

	// Second remove of the same path still succeeds
	require.NoError(t, store.Remove(path))
}
