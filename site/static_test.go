package site

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTree(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for name, body := range files {
		p := filepath.Join(root, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
		require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
	}
}

func readFile(t *testing.T, p string) string {
	t.Helper()
	b, err := os.ReadFile(p)
	require.NoError(t, err)
	return string(b)
}

func TestResetDirCreates(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "public")
	n, err := ResetDir(dir, nil)
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.DirExists(t, dir)
}

func TestResetDirClears(t *testing.T) {
	dir := t.TempDir()
	writeTree(t, dir, map[string]string{"old.html": "x", "sub/deep.css": "y"})

	rec := &recorder{}
	n, err := ResetDir(dir, rec)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Len(t, rec.removed, 2)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestCopyStatic(t *testing.T) {
	src, dst := t.TempDir(), t.TempDir()
	writeTree(t, src, map[string]string{
		"index.css":        "body{}",
		"images/logo.png":  "png",
		"images/a/b/c.txt": "deep",
	})

	rec := &recorder{}
	n, err := CopyStatic(src, dst, rec)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Len(t, rec.copied, 3)
	assert.Equal(t, "body{}", readFile(t, filepath.Join(dst, "index.css")))
	assert.Equal(t, "deep", readFile(t, filepath.Join(dst, "images", "a", "b", "c.txt")))
}

func TestCopyStaticMissingSource(t *testing.T) {
	_, err := CopyStatic(filepath.Join(t.TempDir(), "nope"), t.TempDir(), nil)
	assert.ErrorIs(t, err, fs.ErrNotExist)
}
