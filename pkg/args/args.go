// Package args derives a template's declared parameters from its metadata
// and binds caller-supplied values to them.
package args

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/linecook/pkg/errors"
)

// Param is one declared template parameter. A YAML null default is the same
// as no default.
type Param struct {
	Name       string
	Default    any
	HasDefault bool
}

// Declared resolves the "args" node of a template's metadata into an ordered
// parameter list. The node may be absent or null (no params), a sequence of
// names (no defaults) or a mapping of name to default (document order is
// kept). Any other shape is rejected.
func Declared(template string, node *yaml.Node) ([]Param, error) {
	node = resolveAlias(node)
	if node == nil || isNull(node) {
		return nil, nil
	}

	switch node.Kind {
	case yaml.SequenceNode:
		return fromSequence(template, node)
	case yaml.MappingNode:
		return fromMapping(template, node)
	default:
		return nil, invalid(template, node, "args must be a list of names or a mapping of name to default")
	}
}

func fromSequence(template string, node *yaml.Node) ([]Param, error) {
	params := make([]Param, 0, len(node.Content))
	seen := make(map[string]bool, len(node.Content))
	for _, item := range node.Content {
		item = resolveAlias(item)
		if item.Kind != yaml.ScalarNode || isNull(item) {
			return nil, invalid(template, node, "args list entries must be names")
		}
		if seen[item.Value] {
			return nil, invalid(template, node, fmt.Sprintf("duplicate arg %q", item.Value))
		}
		seen[item.Value] = true
		params = append(params, Param{Name: item.Value})
	}
	return params, nil
}

func fromMapping(template string, node *yaml.Node) ([]Param, error) {
	params := make([]Param, 0, len(node.Content)/2)
	seen := make(map[string]bool, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		key := resolveAlias(node.Content[i])
		value := resolveAlias(node.Content[i+1])

		if key.Kind != yaml.ScalarNode || isNull(key) {
			return nil, invalid(template, node, "args keys must be names")
		}
		if seen[key.Value] {
			return nil, invalid(template, node, fmt.Sprintf("duplicate arg %q", key.Value))
		}
		seen[key.Value] = true

		p := Param{Name: key.Value}
		if !isNull(value) {
			if err := value.Decode(&p.Default); err != nil {
				return nil, errors.Wrapf(err, errors.ErrInvalidMetadata,
					"template %s: cannot decode default for arg %q", template, key.Value).
					WithDetail("template", template)
			}
			p.HasDefault = true
		}
		params = append(params, p)
	}
	return params, nil
}

// Bind combines supplied values with the declared defaults. With N params
// and k supplied values, k >= N passes the values through unchanged, extras
// included. Otherwise the last N-k defaults are appended after the supplied
// values.
//
// The filled region is always the tail of the defaults list, never its
// head; callers depend on this, so do not "fix" it to fill from the front.
func Bind(params []Param, supplied []any) ([]any, error) {
	n, k := len(params), len(supplied)

	bound := make([]any, 0, max(n, k))
	bound = append(bound, supplied...)
	if k >= n {
		return bound, nil
	}

	missing := n - k
	for i, p := range params[n-missing:] {
		if !p.HasDefault {
			return nil, errors.Newf(errors.ErrMissingArgument,
				"no value or default for arg %q", p.Name).
				WithDetail("arg", p.Name).
				WithDetail("position", n-missing+i)
		}
		bound = append(bound, p.Default)
	}
	return bound, nil
}

// Names returns the parameter names in declaration order
func Names(params []Param) []string {
	names := make([]string, len(params))
	for i, p := range params {
		names[i] = p.Name
	}
	return names
}

// Defaults returns the defaults aligned with the parameters; params
// without a default contribute nil.
func Defaults(params []Param) []any {
	defaults := make([]any, len(params))
	for i, p := range params {
		defaults[i] = p.Default
	}
	return defaults
}

func resolveAlias(node *yaml.Node) *yaml.Node {
	for node != nil && node.Kind == yaml.AliasNode {
		node = node.Alias
	}
	return node
}

func isNull(node *yaml.Node) bool {
	return node.Kind == yaml.ScalarNode && node.Tag == "!!null"
}

func invalid(template string, node *yaml.Node, reason string) *errors.Error {
	value := describe(node)
	return errors.Newf(errors.ErrInvalidMetadata,
		"template %s: invalid args %s: %s", template, value, reason).
		WithDetail("template", template).
		WithDetail("value", value)
}

func describe(node *yaml.Node) string {
	if node.Kind == yaml.ScalarNode {
		return fmt.Sprintf("%q", node.Value)
	}
	out, err := yaml.Marshal(node)
	if err != nil {
		return fmt.Sprintf("<%s>", node.Tag)
	}
	return strings.TrimSpace(string(out))
}
