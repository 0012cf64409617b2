package config

import (
	"maps"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/arthur-debert/linecook/pkg/errors"
)

// DefaultFieldSep is used when no separator is configured
const DefaultFieldSep = ','

// Config is the effective linecook configuration. It is immutable: every
// accessor returns a copy.
type Config struct {
	templateDirs []string
	fieldSep     rune
	headers      []string
	headerRow    bool
	attributes   map[string]any
	source       string
}

// Options describe a Config built without the koanf layers
type Options struct {
	TemplateDirs []string
	FieldSep     rune
	Headers      []string
	HeaderRow    bool
	Attributes   map[string]any
}

// New builds a Config from explicit options. A zero FieldSep means
// DefaultFieldSep.
func New(opts Options) *Config {
	sep := opts.FieldSep
	if sep == 0 {
		sep = DefaultFieldSep
	}
	return &Config{
		templateDirs: slices.Clone(opts.TemplateDirs),
		fieldSep:     sep,
		headers:      slices.Clone(opts.Headers),
		headerRow:    opts.HeaderRow,
		attributes:   cloneAttributes(opts.Attributes),
	}
}

// TemplateDirs returns the search path in precedence order
func (c *Config) TemplateDirs() []string { return slices.Clone(c.templateDirs) }

// FieldSep returns the input field separator
func (c *Config) FieldSep() rune { return c.fieldSep }

// Headers returns the configured header names, nil when none are set
func (c *Config) Headers() []string { return slices.Clone(c.headers) }

// HeaderRow reports whether the first line of a stream holds the headers
func (c *Config) HeaderRow() bool { return c.headerRow }

// Attributes returns the global attributes
func (c *Config) Attributes() map[string]any { return cloneAttributes(c.attributes) }

// Source returns the user config file that was loaded, if any
func (c *Config) Source() string { return c.source }

// ParseFieldSep converts a configured separator string into a rune. The
// two-character escape \t selects a tab.
func ParseFieldSep(value string) (rune, error) {
	switch value {
	case `\t`, "tab":
		return '\t', nil
	}
	if utf8.RuneCountInString(value) != 1 {
		return 0, errors.Newf(errors.ErrConfigValid,
			"field separator must be a single character, got %q", value).
			WithDetail("field_sep", value)
	}
	r, _ := utf8.DecodeRuneInString(value)
	return r, nil
}

func formatFieldSep(sep rune) string {
	if sep == '\t' {
		return `\t`
	}
	return string(sep)
}

func cloneAttributes(attrs map[string]any) map[string]any {
	out := make(map[string]any, len(attrs))
	maps.Copy(out, attrs)
	return out
}

func cleanHeaders(headers []string) []string {
	var out []string
	for _, h := range headers {
		if h = strings.TrimSpace(h); h != "" {
			out = append(out, h)
		}
	}
	return out
}
