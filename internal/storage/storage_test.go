package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStorageSaveAndURL(t *testing.T) {
	dir := t.TempDir()
	ls := NewLocalStorage(dir, 0)

	require.NoError(t, ls.Save("wallpaper", "image/png", []byte("png-bytes")))

	url, ok := ls.URL("wallpaper")
	require.True(t, ok)
	assert.Equal(t, "/assets/wallpaper.png", url)

	data, err := os.ReadFile(filepath.Join(dir, "wallpaper.png"))
	require.NoError(t, err)
	assert.Equal(t, []byte("png-bytes"), data)
}

func TestLocalStorageReplacesStaleExtension(t *testing.T) {
	dir := t.TempDir()
	ls := NewLocalStorage(dir, 0)

	require.NoError(t, ls.Save("wallpaper", "image/png", []byte("png")))
	require.NoError(t, ls.Save("wallpaper", "image/jpeg", []byte("jpg")))

	url, ok := ls.URL("wallpaper")
	require.True(t, ok)
	assert.Equal(t, "/assets/wallpaper.jpg", url)

	_, err := os.Stat(filepath.Join(dir, "wallpaper.png"))
	assert.True(t, os.IsNotExist(err), "stale variant should be removed")
}

func TestLocalStorageRejectsOversizedAsset(t *testing.T) {
	ls := NewLocalStorage(t.TempDir(), 4)

	err := ls.Save("alarm", "audio/mpeg", []byte("too large"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exceeds")

	_, ok := ls.URL("alarm")
	assert.False(t, ok)
}

func TestExtensionFor(t *testing.T) {
	assert.Equal(t, ".jpg", extensionFor("image/jpeg"))
	assert.Equal(t, ".mp3", extensionFor("audio/mpeg"))
	assert.Equal(t, ".bin", extensionFor("application/x-unknown"))
}
