package testutil

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/spf13/afero"
)

// CountingFS wraps an afero.Fs and counts Open calls per cleaned path
type CountingFS struct {
	afero.Fs

	mu    sync.Mutex
	opens map[string]int
}

// NewCountingFS wraps fsys
func NewCountingFS(fsys afero.Fs) *CountingFS {
	return &CountingFS{Fs: fsys, opens: make(map[string]int)}
}

func (c *CountingFS) Open(name string) (afero.File, error) {
	c.count(name)
	return c.Fs.Open(name)
}

func (c *CountingFS) OpenFile(name string, flag int, perm os.FileMode) (afero.File, error) {
	c.count(name)
	return c.Fs.OpenFile(name, flag, perm)
}

// Opens returns how many times path was opened
func (c *CountingFS) Opens(path string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.opens[filepath.Clean(path)]
}

func (c *CountingFS) count(name string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.opens[filepath.Clean(name)]++
}
