package testutil

import (
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryTree(t *testing.T) {
	fsys := MemoryTree(t, map[string]string{
		"/a/b/c.tmpl": "hello",
	})

	data, err := afero.ReadFile(fsys, "/a/b/c.tmpl")
	require.NoError(t, err)
	assert.Equal(t, "hello", string(data))
}

func TestCreateFile(t *testing.T) {
	dir := t.TempDir()
	path := CreateFile(t, dir, "nested/file.yml", "args: []")
	assert.Equal(t, filepath.Join(dir, "nested", "file.yml"), path)
	assert.FileExists(t, path)
}

func TestCountingFS(t *testing.T) {
	fsys := NewCountingFS(MemoryTree(t, map[string]string{"/x.yml": "a: 1"}))

	_, err := afero.ReadFile(fsys, "/x.yml")
	require.NoError(t, err)
	_, err = afero.ReadFile(fsys, "/x.yml")
	require.NoError(t, err)

	assert.Equal(t, 2, fsys.Opens("/x.yml"))
	assert.Equal(t, 0, fsys.Opens("/y.yml"))
}
