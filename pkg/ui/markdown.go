package ui

import (
	"strings"

	"github.com/charmbracelet/glamour"
)

// MarkdownRenderer renders template descriptions with glamour
type MarkdownRenderer struct {
	Style string // Style name: "dark", "light", "notty", "auto", or path to custom style
	Width int    // Word wrap width (0 = glamour's default)
}

// NewMarkdownRenderer creates a markdown renderer using glamour with auto-detection
func NewMarkdownRenderer() *MarkdownRenderer {
	return &MarkdownRenderer{Style: "auto"}
}

// Render converts markdown to terminal output. On any glamour failure the
// content is returned unchanged.
func (r *MarkdownRenderer) Render(content string) string {
	var options []glamour.TermRendererOption
	if r.Style != "" && r.Style != "auto" {
		options = append(options, glamour.WithStandardStyle(r.Style))
	} else {
		options = append(options, glamour.WithAutoStyle())
	}
	if r.Width > 0 {
		options = append(options, glamour.WithWordWrap(r.Width))
	}

	renderer, err := glamour.NewTermRenderer(options...)
	if err != nil {
		return content
	}
	rendered, err := renderer.Render(content)
	if err != nil {
		return content
	}
	return rendered
}

// RenderMarkdown renders content for f: glamour on terminals, the trimmed
// source otherwise
func RenderMarkdown(f Format, content string) string {
	if f != FormatTerminal {
		return strings.TrimSpace(content) + "\n"
	}
	return NewMarkdownRenderer().Render(content)
}
