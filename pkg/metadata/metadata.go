// Package metadata loads the YAML sidecar document that sits next to each
// template. The sidecar shares the template's path with its extension
// replaced by ".yml" (greet.tmpl -> greet.yml).
package metadata

import (
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/linecook/pkg/errors"
	"github.com/arthur-debert/linecook/pkg/filesystem"
)

// Extension is the sidecar file extension
const Extension = ".yml"

const (
	keyArgs        = "args"
	keyDescription = "description"
)

// Document is a parsed sidecar. The raw node is kept so that mapping order
// survives for keys where it matters (args).
type Document struct {
	path   string
	exists bool
	root   *yaml.Node
	attrs  map[string]any
}

// SidecarPath returns the metadata path for a template file
func SidecarPath(templatePath string) string {
	return strings.TrimSuffix(templatePath, filepath.Ext(templatePath)) + Extension
}

// Empty returns the document used when a template has no sidecar
func Empty(path string) *Document {
	return &Document{path: path, attrs: map[string]any{}}
}

// Load reads and parses the sidecar at path. A missing file is an empty
// document; a file that exists but is not a YAML mapping is an
// INVALID_METADATA error.
func Load(fsys afero.Fs, path string) (*Document, error) {
	exists, err := filesystem.Exists(fsys, path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "cannot stat metadata %s", path).
			WithDetail("path", path)
	}
	if !exists {
		return Empty(path), nil
	}

	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "cannot read metadata %s", path).
			WithDetail("path", path)
	}

	return Parse(path, data)
}

// Parse parses sidecar content read from path
func Parse(path string, data []byte) (*Document, error) {
	doc := Empty(path)
	doc.exists = true

	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, errors.Wrapf(err, errors.ErrInvalidMetadata, "malformed metadata %s", path).
			WithDetail("path", path)
	}
	if len(node.Content) == 0 {
		return doc, nil
	}

	root := node.Content[0]
	if root.Kind == yaml.ScalarNode && root.Tag == "!!null" {
		return doc, nil
	}
	if root.Kind != yaml.MappingNode {
		return nil, errors.Newf(errors.ErrInvalidMetadata, "metadata %s must be a mapping", path).
			WithDetail("path", path)
	}

	if err := root.Decode(&doc.attrs); err != nil {
		return nil, errors.Wrapf(err, errors.ErrInvalidMetadata, "malformed metadata %s", path).
			WithDetail("path", path)
	}
	doc.root = root
	return doc, nil
}

// Path returns the sidecar location, whether or not it exists
func (d *Document) Path() string {
	return d.path
}

// Exists reports whether the sidecar file was present
func (d *Document) Exists() bool {
	return d.exists
}

// Args returns the raw "args" node, or nil
func (d *Document) Args() *yaml.Node {
	return d.lookup(keyArgs)
}

// Get returns a decoded top-level value
func (d *Document) Get(key string) (any, bool) {
	v, ok := d.attrs[key]
	return v, ok
}

// Attrs returns a shallow copy of the decoded document
func (d *Document) Attrs() map[string]any {
	out := make(map[string]any, len(d.attrs))
	for k, v := range d.attrs {
		out[k] = v
	}
	return out
}

// Description returns the optional markdown description of the template
func (d *Document) Description() string {
	if s, ok := d.attrs[keyDescription].(string); ok {
		return s
	}
	return ""
}

func (d *Document) lookup(key string) *yaml.Node {
	if d.root == nil {
		return nil
	}
	for i := 0; i+1 < len(d.root.Content); i += 2 {
		if d.root.Content[i].Value == key {
			return d.root.Content[i+1]
		}
	}
	return nil
}
