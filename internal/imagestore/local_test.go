package imagestore

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestStore(t *testing.T) (*LocalStore, string) {
	t.Helper()
	dir := t.TempDir()
	store, err := NewLocalStore(dir, "http://localhost:8000/", zap.NewNop())
	require.NoError(t, err)
	return store, dir
}

func TestSaveAndRemove(t *testing.T) {
	ctx := context.Background()
	store, dir := newTestStore(t)

	url, err := store.Save(ctx, "vacation photo.PNG", strings.NewReader("fake png bytes"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "http://localhost:8000/uploads/"), url)
	assert.True(t, strings.HasSuffix(url, ".png"), "extension should be lowercased: %s", url)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	// Generated name, not the client-supplied one.
	assert.NotContains(t, entries[0].Name(), "vacation")

	content, err := os.ReadFile(filepath.Join(dir, entries[0].Name()))
	require.NoError(t, err)
	assert.Equal(t, "fake png bytes", string(content))

	require.NoError(t, store.Remove(ctx, url))
	entries, err = os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestRemoveMissingFile(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)

	err := store.Remove(ctx, "http://localhost:8000/uploads/never-existed.png")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "image not found")
}

func TestRemoveSkipsPlaceholderAndEmpty(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)

	assert.NoError(t, store.Remove(ctx, ""))
	assert.NoError(t, store.Remove(ctx, store.PlaceholderURL()))
}

func TestRemoveIgnoresPathTraversal(t *testing.T) {
	ctx := context.Background()
	store, dir := newTestStore(t)

	// Plant a file outside the upload dir and try to reach it.
	outside := filepath.Join(filepath.Dir(dir), "outside.txt")
	require.NoError(t, os.WriteFile(outside, []byte("keep me"), 0o644))
	t.Cleanup(func() { os.Remove(outside) })

	err := store.Remove(ctx, "http://localhost:8000/uploads/../outside.txt")

	// Only the final path element is honoured, so the deletion targets a
	// non-existent file inside the upload dir.
	assert.Error(t, err)
	_, statErr := os.Stat(outside)
	assert.NoError(t, statErr)
}

func TestPlaceholderURL(t *testing.T) {
	store, _ := newTestStore(t)
	assert.Equal(t, "http://localhost:8000/assets/placeholder.png", store.PlaceholderURL())
}
