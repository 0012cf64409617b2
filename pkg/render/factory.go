package render

import (
	"github.com/rs/zerolog"

	"github.com/arthur-debert/linecook/pkg/errors"
	"github.com/arthur-debert/linecook/pkg/logging"
	"github.com/arthur-debert/linecook/pkg/templates"
)

// Factory builds contexts and renders templates. The global attributes it
// holds are never modified.
type Factory struct {
	attributes map[string]any
	logger     zerolog.Logger
}

// NewFactory creates a factory exposing attributes to every render
func NewFactory(attributes map[string]any) *Factory {
	attrs := make(map[string]any, len(attributes))
	for k, v := range attributes {
		attrs[k] = v
	}
	return &Factory{
		attributes: attrs,
		logger:     logging.GetLogger("render"),
	}
}

// Build pairs the descriptor's declared parameters with bound values. Fewer
// values than parameters is an ARITY error.
func (f *Factory) Build(d *templates.Descriptor, bound []any) (*Context, error) {
	params, err := d.Params()
	if err != nil {
		return nil, err
	}

	if len(bound) < len(params) {
		return nil, errors.Newf(errors.ErrArity,
			"template %s declares %d args but %d values were bound", d.Name(), len(params), len(bound)).
			WithDetail("template", d.Name()).
			WithDetail("declared", len(params)).
			WithDetail("bound", len(bound))
	}

	ctx := &Context{
		template: d.Name(),
		names:    make([]string, len(params)),
		values:   make(map[string]any, len(params)),
		globals:  f.attributes,
	}
	for i, p := range params {
		ctx.names[i] = p.Name
		ctx.values[p.Name] = bound[i]
	}
	if len(bound) > len(params) {
		ctx.extra = append([]any(nil), bound[len(params):]...)
		f.logger.Debug().
			Str("template", d.Name()).
			Int("extra", len(ctx.extra)).
			Msg("ignoring values beyond declared args")
	}
	return ctx, nil
}

// Render evaluates the descriptor's source with the context's scope.
// Engine failures are RENDER errors carrying the template identity.
func (f *Factory) Render(d *templates.Descriptor, ctx *Context) (string, error) {
	if ctx == nil || ctx.template != d.Name() {
		return "", errors.Newf(errors.ErrInvalidInput, "context was not built for template %s", d.Name()).
			WithDetail("template", d.Name())
	}

	src, err := d.Source()
	if err != nil {
		return "", err
	}

	out, err := d.Engine().Render(d.Dir(), d.Name(), src, ctx.Scope())
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrRender, "template %s (%s) failed to render", d.Name(), d.Path()).
			WithDetail("template", d.Name()).
			WithDetail("path", d.Path()).
			WithDetail("engine", d.Engine().Name())
	}

	f.logger.Trace().
		Str("template", d.Name()).
		Int("bytes", len(out)).
		Msg("rendered")
	return out, nil
}
