package filesystem

import (
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/arthur-debert/linecook/pkg/errors"
)

// NewOS returns a filesystem backed by the operating system
func NewOS() afero.Fs {
	return afero.NewOsFs()
}

// NewMemory returns an empty in-memory filesystem
func NewMemory() afero.Fs {
	return afero.NewMemMapFs()
}

// Exists reports whether path exists. Errors other than non-existence are
// returned.
func Exists(fsys afero.Fs, path string) (bool, error) {
	_, err := fsys.Stat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}

// ListFiles walks root recursively and returns the regular files whose
// extension is one of exts, in lexical walk order. A root that does not
// exist, or is not a directory, yields no files and no error.
func ListFiles(fsys afero.Fs, root string, exts []string) ([]string, error) {
	info, err := fsys.Stat(root)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "cannot stat %s", root).
			WithDetail("path", root)
	}
	if !info.IsDir() {
		return nil, nil
	}

	wanted := make(map[string]bool, len(exts))
	for _, ext := range exts {
		wanted[ext] = true
	}

	var files []string
	err = afero.Walk(fsys, root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		if wanted[filepath.Ext(path)] {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "cannot walk %s", root).
			WithDetail("path", root)
	}

	return files, nil
}
