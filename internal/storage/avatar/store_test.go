package avatar

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Minimal valid PNG header, enough for content sniffing.
var pngBytes = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 0}

func TestStore_SaveKeepsExtension(t *testing.T) {
	dir := t.TempDir()
	store, err := NewStore(dir, "/uploads/")
	require.NoError(t, err)

	url, err := store.Save("selfie.PNG", strings.NewReader("not really an image"))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(url, "/uploads/avatar_"), url)
	assert.True(t, strings.HasSuffix(url, ".png"), url)

	onDisk := filepath.Join(dir, strings.TrimPrefix(url, "/uploads/"))
	content, err := os.ReadFile(onDisk)
	require.NoError(t, err)
	assert.Equal(t, "not really an image", string(content))
}

func TestStore_SaveSniffsMissingExtension(t *testing.T) {
	store, err := NewStore(t.TempDir(), "/uploads")
	require.NoError(t, err)

	url, err := store.Save("upload", strings.NewReader(string(pngBytes)))
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(url, ".png"), url)
}

func TestStore_SaveNamesAreUnique(t *testing.T) {
	store, err := NewStore(t.TempDir(), "/uploads")
	require.NoError(t, err)

	seen := map[string]bool{}
	for i := 0; i < 10; i++ {
		url, err := store.Save("a.png", strings.NewReader("x"))
		require.NoError(t, err)
		assert.False(t, seen[url], "duplicate name %s", url)
		seen[url] = true
	}
}

func TestStore_PriorAvatarSurvives(t *testing.T) {
	dir := t.TempDir()
	store, err := NewStore(dir, "/uploads")
	require.NoError(t, err)

	first, err := store.Save("a.png", strings.NewReader("one"))
	require.NoError(t, err)
	_, err = store.Save("b.png", strings.NewReader("two"))
	require.NoError(t, err)

	// Replacement never deletes the previous file.
	_, err = os.Stat(filepath.Join(dir, strings.TrimPrefix(first, "/uploads/")))
	assert.NoError(t, err)
}
