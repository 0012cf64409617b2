// Package testutil provides utilities for testing linecook components.
//
// Key components:
//   - WriteFiles / MemoryTree: declarative template trees on an afero.Fs
//   - CreateFile: real files under t.TempDir for config and CLI tests
//   - CountingFS: an afero.Fs wrapper that counts reads per path, used to
//     prove that memoized data is not re-read
//
// All test data should be defined inline, not in external files.
package testutil
