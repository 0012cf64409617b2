package engine

import (
	"bytes"
	"strings"
	"text/template"
)

// GoTextExtension is the extension of text/template templates
const GoTextExtension = ".tmpl"

// GoText renders Go text/template sources. Parameters are top-level keys of
// the data map ({{ .name }}); referencing an unknown key fails the render.
type GoText struct {
	funcs template.FuncMap
}

// NewGoText creates the text/template engine
func NewGoText() *GoText {
	return &GoText{
		funcs: template.FuncMap{
			"join":  strings.Join,
			"upper": strings.ToUpper,
			"lower": strings.ToLower,
			"trim":  strings.TrimSpace,
		},
	}
}

func (g *GoText) Name() string { return "text/template" }

func (g *GoText) Extensions() []string { return []string{GoTextExtension} }

func (g *GoText) Render(_, name, source string, scope map[string]any) (string, error) {
	tmpl, err := template.New(name).
		Option("missingkey=error").
		Funcs(g.funcs).
		Parse(source)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, scope); err != nil {
		return "", err
	}
	return buf.String(), nil
}
