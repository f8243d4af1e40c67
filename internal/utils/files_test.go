package utils

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeAt(t *testing.T, dir, name, content string, mtime time.Time) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	require.NoError(t, os.Chtimes(path, mtime, mtime))
	return path
}

func TestLatestFile(t *testing.T) {
	dir := t.TempDir()
	base := time.Now().Add(-time.Hour)
	writeAt(t, dir, "a.rlog", "old", base)
	want := writeAt(t, dir, "b.rlog", "new", base.Add(time.Minute))
	writeAt(t, dir, "c.txt", "other ext", base.Add(2*time.Minute))

	assert.Equal(t, want, LatestFile(dir, ".rlog"))
	assert.Empty(t, LatestFile(dir, ".nope"))
	assert.Empty(t, LatestFile(filepath.Join(dir, "missing"), ".rlog"))
}

func TestCountLines(t *testing.T) {
	dir := t.TempDir()
	path := writeAt(t, dir, "f.map", "/a\n/b\n/c\n", time.Now())

	assert.Equal(t, 3, CountLines(path))
	assert.Equal(t, -1, CountLines(filepath.Join(dir, "missing")))

	empty := writeAt(t, dir, "empty.map", "", time.Now())
	assert.Equal(t, 0, CountLines(empty))
}

func TestSameContent(t *testing.T) {
	dir := t.TempDir()
	a := writeAt(t, dir, "a", "same\n", time.Now())
	b := writeAt(t, dir, "b", "same\n", time.Now())
	c := writeAt(t, dir, "c", "different\n", time.Now())

	assert.True(t, SameContent(a, b))
	assert.False(t, SameContent(a, c))
	assert.False(t, SameContent(a, filepath.Join(dir, "missing")))
}

func TestEnsureTrailingSep(t *testing.T) {
	sep := string(os.PathSeparator)
	assert.Equal(t, "", EnsureTrailingSep(""))
	assert.Equal(t, "/a/b"+sep, EnsureTrailingSep("/a/b"))
	assert.Equal(t, "/a/b"+sep, EnsureTrailingSep("/a/b"+sep))
}

func TestFileAndDirExists(t *testing.T) {
	dir := t.TempDir()
	file := writeAt(t, dir, "f", "x", time.Now())

	assert.True(t, FileExists(file))
	assert.False(t, FileExists(dir))
	assert.True(t, DirExists(dir))
	assert.False(t, DirExists(file))
	assert.False(t, FileExists(filepath.Join(dir, "missing")))
}
