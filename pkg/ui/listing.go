package ui

import (
	"fmt"
	"io"
	"strings"
)

// Entry is one row of `linecook list`
type Entry struct {
	Name string
	Path string
}

// Param is a declared template parameter as shown by `linecook show`
type Param struct {
	Name       string
	Default    any
	HasDefault bool
}

// TemplateInfo is the detail view of a single template
type TemplateInfo struct {
	Name         string
	Path         string
	Dir          string
	Engine       string
	MetadataPath string
	HasMetadata  bool
	Params       []Param
	Description  string
}

// RenderList writes one line per entry, names padded to a common width
func RenderList(w io.Writer, f Format, entries []Entry) error {
	s := StylesFor(f)
	width := 0
	for _, e := range entries {
		width = max(width, len(e.Name))
	}
	for _, e := range entries {
		pad := strings.Repeat(" ", width-len(e.Name))
		if _, err := fmt.Fprintf(w, "%s%s  %s\n", s.Name.Render(e.Name), pad, s.Path.Render(e.Path)); err != nil {
			return err
		}
	}
	return nil
}

// RenderTemplate writes the detail view of a template
func RenderTemplate(w io.Writer, f Format, info TemplateInfo) error {
	s := StylesFor(f)
	var b strings.Builder

	b.WriteString(s.Heading.Render(info.Name))
	b.WriteString("\n\n")
	field := func(label, value string) {
		fmt.Fprintf(&b, "%s %s\n", s.Label.Render(label+":"), value)
	}
	field("path", s.Path.Render(info.Path))
	field("root", s.Path.Render(info.Dir))
	field("engine", info.Engine)
	if info.HasMetadata {
		field("metadata", s.Path.Render(info.MetadataPath))
	} else {
		field("metadata", s.Muted.Render("none"))
	}

	if len(info.Params) == 0 {
		field("args", s.Muted.Render("none"))
	} else {
		fmt.Fprintf(&b, "%s\n", s.Label.Render("args:"))
		for i, p := range info.Params {
			line := fmt.Sprintf("  %d. %s", i+1, s.Name.Render(p.Name))
			if p.HasDefault {
				line += " = " + s.Value.Render(fmt.Sprintf("%v", p.Default))
			} else {
				line += " " + s.Muted.Render("(required)")
			}
			b.WriteString(line + "\n")
		}
	}

	if info.Description != "" {
		b.WriteString("\n")
		b.WriteString(RenderMarkdown(f, info.Description))
	}

	_, err := io.WriteString(w, b.String())
	return err
}
