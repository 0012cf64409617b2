package engine

import (
	"strings"

	"github.com/flosch/pongo2/v6"
	"github.com/spf13/afero"
)

// PongoExtension is the extension of pongo2 (Django syntax) templates
const PongoExtension = ".tpl"

// Pongo renders pongo2 sources. Parameters are plain variables
// ({{ name }}). {% include %} and {% extends %} paths are relative to the
// search-path root the rendering template was found under, and cannot
// escape it.
type Pongo struct {
	fsys afero.Fs
	sets map[string]*pongo2.TemplateSet
}

// NewPongo creates the pongo2 engine over the OS filesystem
func NewPongo() *Pongo {
	return NewPongoFS(afero.NewOsFs())
}

// NewPongoFS creates the pongo2 engine loading included templates from fsys
func NewPongoFS(fsys afero.Fs) *Pongo {
	registerDefaultFilters()
	return &Pongo{
		fsys: fsys,
		sets: make(map[string]*pongo2.TemplateSet),
	}
}

func (p *Pongo) Name() string { return "pongo2" }

func (p *Pongo) Extensions() []string { return []string{PongoExtension} }

func (p *Pongo) Render(root, name, source string, scope map[string]any) (string, error) {
	tmpl, err := p.setFor(root).FromString(source)
	if err != nil {
		return "", err
	}
	return tmpl.Execute(pongo2.Context(scope))
}

// setFor returns the template set whose loader is rooted at root. Sets are
// kept per root so included templates are parsed once.
func (p *Pongo) setFor(root string) *pongo2.TemplateSet {
	if set, ok := p.sets[root]; ok {
		return set
	}
	loader := pongo2.MustNewHttpFileSystemLoader(afero.NewHttpFs(p.fsys).Dir(root), "")
	set := pongo2.NewSet("linecook:"+root, loader)
	p.sets[root] = set
	return set
}

func registerDefaultFilters() {
	if !pongo2.FilterExists("trim") {
		_ = pongo2.RegisterFilter("trim", filterTrim)
	}
}

func filterTrim(in *pongo2.Value, _ *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	if in.Len() <= 0 {
		return pongo2.AsValue(""), nil
	}
	return pongo2.AsValue(strings.TrimSpace(in.String())), nil
}
