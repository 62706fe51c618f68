package fonts

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte("font"), 0644))
}

func TestScanDir(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "Inter", "Inter-Bold.ttf"))
	touch(t, filepath.Join(dir, "Mono.OTF"))
	touch(t, filepath.Join(dir, "README.txt"))

	got, err := ScanDir(dir)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"Inter/Inter-Bold.ttf", "Mono.OTF"}, got)

	got, err = ScanDir(filepath.Join(dir, "missing"))
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestFindPrefersRegular(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "Open_Sans", "OpenSans-Bold.ttf"))
	touch(t, filepath.Join(dir, "Open_Sans", "OpenSans-Regular.ttf"))

	got, err := Find("Open Sans", dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "Open_Sans", "OpenSans-Regular.ttf"), got)
}

func TestFindExistingPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Custom.ttf")
	touch(t, path)
	got, err := Find(path)
	require.NoError(t, err)
	assert.Equal(t, path, got)
}

func TestFindMissing(t *testing.T) {
	_, err := Find("Nope", t.TempDir())
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = Find("  ")
	assert.ErrorIs(t, err, os.ErrNotExist)
}
