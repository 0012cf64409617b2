// Package ui renders linecook's human-facing output: template listings and
// descriptions. Styling only applies to FormatTerminal; FormatText output is
// plain and stable for scripts.
package ui

import "github.com/charmbracelet/lipgloss"

var (
	colorAccent = lipgloss.AdaptiveColor{Light: "#005FAF", Dark: "#5FAFFF"}
	colorMuted  = lipgloss.AdaptiveColor{Light: "#6C6C6C", Dark: "#8A8A8A"}
	colorValue  = lipgloss.AdaptiveColor{Light: "#5F8700", Dark: "#AFD75F"}
)

// Styles maps the semantic parts of linecook output to lipgloss styles
type Styles struct {
	Heading lipgloss.Style
	Name    lipgloss.Style
	Path    lipgloss.Style
	Label   lipgloss.Style
	Value   lipgloss.Style
	Muted   lipgloss.Style
}

// StylesFor returns the styles for f. Text output gets unstyled renderers.
func StylesFor(f Format) Styles {
	if f != FormatTerminal {
		plain := lipgloss.NewStyle()
		return Styles{Heading: plain, Name: plain, Path: plain, Label: plain, Value: plain, Muted: plain}
	}
	return Styles{
		Heading: lipgloss.NewStyle().Bold(true).Underline(true),
		Name:    lipgloss.NewStyle().Bold(true).Foreground(colorAccent),
		Path:    lipgloss.NewStyle().Foreground(colorMuted),
		Label:   lipgloss.NewStyle().Bold(true),
		Value:   lipgloss.NewStyle().Foreground(colorValue),
		Muted:   lipgloss.NewStyle().Foreground(colorMuted).Italic(true),
	}
}
