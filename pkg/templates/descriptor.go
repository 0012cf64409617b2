package templates

import (
	"github.com/spf13/afero"

	"github.com/arthur-debert/linecook/pkg/args"
	"github.com/arthur-debert/linecook/pkg/engine"
	"github.com/arthur-debert/linecook/pkg/errors"
	"github.com/arthur-debert/linecook/pkg/metadata"
)

// Descriptor is one discoverable template
type Descriptor struct {
	name   string
	path   string
	dir    string
	engine engine.Engine
	fsys   afero.Fs

	metaLoaded bool
	meta       *metadata.Document
	params     []args.Param
	metaErr    error

	sourceLoaded bool
	source       string
	sourceErr    error
}

func newDescriptor(fsys afero.Fs, name, path, dir string, e engine.Engine) *Descriptor {
	return &Descriptor{
		name:   name,
		path:   path,
		dir:    dir,
		engine: e,
		fsys:   fsys,
	}
}

// Name returns the logical name
func (d *Descriptor) Name() string { return d.name }

// Path returns the absolute path of the template source
func (d *Descriptor) Path() string { return d.path }

// Dir returns the search-path directory the template was found under
func (d *Descriptor) Dir() string { return d.dir }

// Engine returns the engine selected by the template extension
func (d *Descriptor) Engine() engine.Engine { return d.engine }

// MetadataPath returns the sidecar location
func (d *Descriptor) MetadataPath() string {
	return metadata.SidecarPath(d.path)
}

// Metadata returns the sidecar document, empty when there is no sidecar
func (d *Descriptor) Metadata() (*metadata.Document, error) {
	d.loadMetadata()
	return d.meta, d.metaErr
}

// Params returns the declared parameters in order
func (d *Descriptor) Params() ([]args.Param, error) {
	d.loadMetadata()
	if d.metaErr != nil {
		return nil, d.metaErr
	}
	return append([]args.Param(nil), d.params...), nil
}

// Source returns the template source text
func (d *Descriptor) Source() (string, error) {
	if !d.sourceLoaded {
		d.sourceLoaded = true
		data, err := afero.ReadFile(d.fsys, d.path)
		if err != nil {
			d.sourceErr = errors.Wrapf(err, errors.ErrFileAccess, "cannot read template %s", d.name).
				WithDetail("template", d.name).
				WithDetail("path", d.path)
		} else {
			d.source = string(data)
		}
	}
	return d.source, d.sourceErr
}

// loadMetadata resolves metadata and params together, exactly once; a failure is
// memoized like a success.
func (d *Descriptor) loadMetadata() {
	if d.metaLoaded {
		return
	}
	d.metaLoaded = true

	doc, err := metadata.Load(d.fsys, d.MetadataPath())
	if err != nil {
		d.metaErr = errors.Wrapf(err, errors.GetErrorCode(err), "template %s", d.name).
			WithDetail("template", d.name).
			WithDetail("path", d.path)
		return
	}

	params, err := args.Declared(d.name, doc.Args())
	if err != nil {
		d.metaErr = err
		return
	}

	d.meta = doc
	d.params = params
}
