// Package cook is the linecook pipeline: resolve a template by name, bind
// its arguments, build a render context and render it. It renders explicit
// value lists, single delimited lines and whole line streams.
package cook

import (
	"bufio"
	"io"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"

	"github.com/arthur-debert/linecook/pkg/args"
	"github.com/arthur-debert/linecook/pkg/config"
	"github.com/arthur-debert/linecook/pkg/engine"
	"github.com/arthur-debert/linecook/pkg/errors"
	"github.com/arthur-debert/linecook/pkg/logging"
	"github.com/arthur-debert/linecook/pkg/record"
	"github.com/arthur-debert/linecook/pkg/render"
	"github.com/arthur-debert/linecook/pkg/templates"
)

// Option configures a Cook
type Option func(*options)

type options struct {
	fsys    afero.Fs
	engines *engine.Set
}

// WithFS reads templates from fsys instead of the OS filesystem
func WithFS(fsys afero.Fs) Option {
	return func(o *options) { o.fsys = fsys }
}

// WithEngines replaces the default engine set
func WithEngines(set *engine.Set) Option {
	return func(o *options) { o.engines = set }
}

// Cook renders templates found on the configured search path
type Cook struct {
	cfg      *config.Config
	registry *templates.Registry
	factory  *render.Factory
	logger   zerolog.Logger
}

// New builds the pipeline for cfg. The registry is not scanned until the
// first render or lookup.
func New(cfg *config.Config, opts ...Option) (*Cook, error) {
	if cfg == nil {
		return nil, errors.New(errors.ErrInvalidInput, "configuration is required")
	}
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	return &Cook{
		cfg:      cfg,
		registry: templates.NewRegistry(cfg.TemplateDirs(), templates.WithFS(o.fsys), templates.WithEngines(o.engines)),
		factory:  render.NewFactory(cfg.Attributes()),
		logger:   logging.GetLogger("cook"),
	}, nil
}

// Registry exposes the template registry for listing and inspection
func (c *Cook) Registry() *templates.Registry {
	return c.registry
}

// Config returns the configuration the pipeline was built with
func (c *Cook) Config() *config.Config {
	return c.cfg
}

// Render renders the named template with positional values. Missing trailing
// values are filled from the declared defaults.
func (c *Cook) Render(name string, values []any) (string, error) {
	d, params, err := c.resolve(name)
	if err != nil {
		return "", err
	}
	return c.render(d, params, values)
}

// RenderLine splits line with the configured separator and headers and
// renders the result
func (c *Cook) RenderLine(name, line string) (string, error) {
	return c.renderLine(name, line, c.cfg.Headers())
}

// RenderStream renders every line read from r and writes the results to w in
// order, each terminated by a newline. It stops at the first failure; nothing
// is written for the failing line. The returned count is the number of lines
// rendered.
func (c *Cook) RenderStream(name string, r io.Reader, w io.Writer) (int, error) {
	logger := c.logger.With().Str("template", name).Logger()
	done := logging.LogOperationStart(logger, "render stream")
	defer done()

	headers := c.cfg.Headers()
	readHeaders := c.cfg.HeaderRow()

	br := bufio.NewReader(r)
	count := 0
	for lineNo := 1; ; lineNo++ {
		line, readErr := br.ReadString('\n')
		if readErr != nil && readErr != io.EOF {
			return count, errors.Wrap(readErr, errors.ErrFileAccess, "failed to read input").
				WithDetail("line", lineNo)
		}
		if line == "" && readErr == io.EOF {
			break
		}

		if readHeaders {
			readHeaders = false
			headers = record.Parse(record.TrimLineEnding(line), c.cfg.FieldSep(), nil).Fields()
			logger.Debug().Strs("headers", headers).Msg("Read header row")
		} else {
			out, err := c.renderLine(name, line, headers)
			if err != nil {
				return count, withLine(err, lineNo)
			}
			if !strings.HasSuffix(out, "\n") {
				out += "\n"
			}
			if _, err := io.WriteString(w, out); err != nil {
				return count, errors.Wrap(err, errors.ErrFileAccess, "failed to write output").
					WithDetail("line", lineNo)
			}
			count++
		}

		if readErr == io.EOF {
			break
		}
	}

	logger.Info().Int("lines", count).Msg("Stream rendered")
	return count, nil
}

func (c *Cook) renderLine(name, line string, headers []string) (string, error) {
	d, params, err := c.resolve(name)
	if err != nil {
		return "", err
	}
	rec := record.Parse(record.TrimLineEnding(line), c.cfg.FieldSep(), headers)
	c.logger.Trace().Str("template", name).Int("fields", rec.Len()).Msg("Parsed record")
	return c.render(d, params, rec.ValuesFor(args.Names(params)))
}

func (c *Cook) resolve(name string) (*templates.Descriptor, []args.Param, error) {
	d, err := c.registry.Resolve(name)
	if err != nil {
		c.logger.Debug().Str("template", name).Str("state", "not_found").Msg("Render failed")
		return nil, nil, err
	}
	params, err := d.Params()
	if err != nil {
		c.logger.Debug().Str("template", name).Str("state", "invalid_metadata").Msg("Render failed")
		return nil, nil, err
	}
	c.logger.Debug().Str("template", name).Str("path", d.Path()).Str("state", "resolved").Msg("Template resolved")
	return d, params, nil
}

func (c *Cook) render(d *templates.Descriptor, params []args.Param, values []any) (string, error) {
	logger := c.logger.With().Str("template", d.Name()).Logger()

	bound, err := args.Bind(params, values)
	if err != nil {
		logger.Debug().Str("state", "missing_argument").Msg("Render failed")
		return "", err
	}
	logger.Debug().Int("supplied", len(values)).Int("bound", len(bound)).Str("state", "bound").Msg("Arguments bound")

	ctx, err := c.factory.Build(d, bound)
	if err != nil {
		logger.Debug().Str("state", "arity").Msg("Render failed")
		return "", err
	}
	logger.Debug().Strs("params", ctx.Names()).Str("state", "contextualized").Msg("Context built")

	out, err := c.factory.Render(d, ctx)
	if err != nil {
		logger.Debug().Str("state", "render_failure").Msg("Render failed")
		return "", err
	}
	logger.Debug().Str("state", "rendered").Msg("Template rendered")
	return out, nil
}

// withLine wraps err with the input line number, keeping the wrapped error's
// code and details
func withLine(err error, line int) error {
	return errors.Wrapf(err, errors.GetErrorCode(err), "line %d", line).
		WithDetails(errors.GetErrorDetails(err)).
		WithDetail("line", line)
}
