package templates

import (
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"

	"github.com/arthur-debert/linecook/pkg/engine"
	"github.com/arthur-debert/linecook/pkg/errors"
	"github.com/arthur-debert/linecook/pkg/filesystem"
	"github.com/arthur-debert/linecook/pkg/logging"
	"github.com/arthur-debert/linecook/pkg/registry"
)

// Option configures a Registry
type Option func(*Registry)

// WithFS sets the filesystem templates are read from
func WithFS(fsys afero.Fs) Option {
	return func(r *Registry) {
		if fsys != nil {
			r.fsys = fsys
		}
	}
}

// WithEngines sets the engines, and therefore the recognized extensions.
// Without it the default engines load included templates from the
// registry's filesystem.
func WithEngines(set *engine.Set) Option {
	return func(r *Registry) {
		if set != nil {
			r.engines = set
		}
	}
}

// Registry maps logical names to descriptors
type Registry struct {
	fsys    afero.Fs
	dirs    []string
	engines *engine.Set
	logger  zerolog.Logger

	built bool
	store registry.Registry[*Descriptor]
}

// NewRegistry returns an un-built registry over the search path dirs
func NewRegistry(dirs []string, opts ...Option) *Registry {
	r := &Registry{
		fsys:   filesystem.NewOS(),
		dirs:   append([]string(nil), dirs...),
		logger: logging.GetLogger("templates.registry"),
		store:  registry.New[*Descriptor](),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.engines == nil {
		r.engines = engine.DefaultSetFS(r.fsys)
	}
	return r
}

// Dirs returns the search path
func (r *Registry) Dirs() []string {
	return append([]string(nil), r.dirs...)
}

// Built reports whether the search path has been scanned
func (r *Registry) Built() bool {
	return r.built
}

// Build scans the search path. It does nothing once the registry is built.
func (r *Registry) Build() error {
	if r.built {
		return nil
	}
	done := logging.LogOperationStart(r.logger, "build")
	defer done()

	exts := r.engines.Extensions()
	for _, dir := range r.dirs {
		if err := r.scan(dir, exts); err != nil {
			return err
		}
	}

	r.built = true
	r.logger.Debug().
		Strs("dirs", r.dirs).
		Int("templates", r.store.Count()).
		Msg("registry built")
	return nil
}

func (r *Registry) scan(dir string, exts []string) error {
	root, err := filepath.Abs(dir)
	if err != nil {
		return errors.Wrapf(err, errors.ErrInvalidInput, "invalid template dir %s", dir)
	}

	files, err := filesystem.ListFiles(r.fsys, root, exts)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		r.logger.Debug().Str("dir", root).Msg("no templates in dir")
		return nil
	}

	for _, file := range files {
		name, err := logicalName(root, file)
		if err != nil {
			return err
		}
		e, err := r.engines.ForPath(file)
		if err != nil {
			return err
		}

		err = r.store.Register(name, newDescriptor(r.fsys, name, file, root, e))
		switch {
		case errors.IsErrorCode(err, errors.ErrAlreadyExists):
			r.logger.Debug().
				Str("name", name).
				Str("path", file).
				Msg("template shadowed by earlier search path entry")
		case err != nil:
			return err
		}
	}
	return nil
}

func logicalName(root, file string) (string, error) {
	rel, err := filepath.Rel(root, file)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrInternal, "cannot relativize %s", file)
	}
	return filepath.ToSlash(strings.TrimSuffix(rel, filepath.Ext(rel))), nil
}

// Resolve returns the descriptor for a logical name
func (r *Registry) Resolve(name string) (*Descriptor, error) {
	if err := r.Build(); err != nil {
		return nil, err
	}

	d, err := r.store.Get(name)
	if err != nil {
		return nil, errors.Newf(errors.ErrNotFound, "no template named %q", name).
			WithDetail("template", name).
			WithDetail("dirs", r.Dirs())
	}
	return d, nil
}

// Names returns every discoverable logical name, sorted
func (r *Registry) Names() ([]string, error) {
	if err := r.Build(); err != nil {
		return nil, err
	}
	return r.store.List(), nil
}

// Files maps each logical name to its source path
func (r *Registry) Files() (map[string]string, error) {
	names, err := r.Names()
	if err != nil {
		return nil, err
	}

	files := make(map[string]string, len(names))
	for _, name := range names {
		d, err := r.store.Get(name)
		if err != nil {
			return nil, err
		}
		files[name] = d.Path()
	}
	return files, nil
}

// Warm builds the registry and loads every descriptor. The first
// descriptor failure is returned; the remaining descriptors are still
// loaded.
func (r *Registry) Warm() error {
	names, err := r.Names()
	if err != nil {
		return err
	}

	var first error
	for _, name := range names {
		d, _ := r.store.Get(name)
		if _, err := d.Params(); err != nil && first == nil {
			first = err
		}
		if _, err := d.Source(); err != nil && first == nil {
			first = err
		}
	}
	return first
}
