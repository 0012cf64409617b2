// Package engine provides the text rendering engines linecook drives.
//
// An engine is opaque to the rest of the system: it receives the template
// source and a variable scope and returns text or an error. Engines are
// selected by template file extension.
package engine

import (
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/arthur-debert/linecook/pkg/errors"
	"github.com/arthur-debert/linecook/pkg/registry"
)

// Engine renders template source against a scope
type Engine interface {
	// Name identifies the engine in logs and listings
	Name() string

	// Extensions lists the template file extensions handled by the engine,
	// including the leading dot
	Extensions() []string

	// Render evaluates source with scope as the variable-resolution context.
	// root is the search-path directory the template was found under; engines
	// that load further templates resolve them against it. name is used for
	// diagnostics only.
	Render(root, name, source string, scope map[string]any) (string, error)
}

// Set maps template extensions to engines
type Set struct {
	byExt registry.Registry[Engine]
}

// NewSet registers the engines by extension. Two engines claiming the same
// extension is an error.
func NewSet(engines ...Engine) (*Set, error) {
	s := &Set{byExt: registry.New[Engine]()}
	for _, e := range engines {
		for _, ext := range e.Extensions() {
			if err := s.byExt.Register(ext, e); err != nil {
				return nil, errors.Wrapf(err, errors.ErrInvalidInput,
					"engine %s: extension %s already claimed", e.Name(), ext)
			}
		}
	}
	return s, nil
}

// DefaultSet returns the text/template engine for ".tmpl" and the pongo2
// engine for ".tpl", loading included templates from the OS filesystem
func DefaultSet() *Set {
	return DefaultSetFS(afero.NewOsFs())
}

// DefaultSetFS is DefaultSet with included templates loaded from fsys
func DefaultSetFS(fsys afero.Fs) *Set {
	s := &Set{byExt: registry.New[Engine]()}
	for _, e := range []Engine{NewGoText(), NewPongoFS(fsys)} {
		for _, ext := range e.Extensions() {
			registry.MustRegister(s.byExt, ext, e)
		}
	}
	return s
}

// Extensions returns the recognized template extensions, sorted
func (s *Set) Extensions() []string {
	return s.byExt.List()
}

// ForPath returns the engine for a template file
func (s *Set) ForPath(path string) (Engine, error) {
	ext := filepath.Ext(path)
	e, err := s.byExt.Get(ext)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInvalidInput, "no engine for %s", path).
			WithDetail("extension", ext)
	}
	return e, nil
}
