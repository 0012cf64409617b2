// Package render builds per-call render contexts and drives the template
// engines.
package render

// Context is the scope of exactly one render call. It binds each declared
// parameter, in order, to one value and is never shared between calls.
type Context struct {
	template string
	names    []string
	values   map[string]any
	extra    []any
	globals  map[string]any
}

// Template returns the logical name of the template the context was built for
func (c *Context) Template() string { return c.template }

// Get returns the value bound to a parameter
func (c *Context) Get(name string) (any, bool) {
	v, ok := c.values[name]
	return v, ok
}

// Names returns the parameter names in declaration order
func (c *Context) Names() []string {
	return append([]string(nil), c.names...)
}

// Values returns the bound values in declaration order
func (c *Context) Values() []any {
	values := make([]any, len(c.names))
	for i, name := range c.names {
		values[i] = c.values[name]
	}
	return values
}

// Extra returns values supplied beyond the declared parameters. They are
// kept for inspection and never enter the scope.
func (c *Context) Extra() []any {
	return append([]any(nil), c.extra...)
}

// Scope returns a fresh variable map for the engine: the global attributes
// overlaid with the parameters.
func (c *Context) Scope() map[string]any {
	scope := make(map[string]any, len(c.globals)+len(c.values))
	for k, v := range c.globals {
		scope[k] = v
	}
	for k, v := range c.values {
		scope[k] = v
	}
	return scope
}
