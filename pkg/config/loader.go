package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/arthur-debert/linecook/pkg/errors"
	"github.com/arthur-debert/linecook/pkg/logging"
	"github.com/arthur-debert/linecook/pkg/paths"
)

// Override keys accepted in LoadOptions.Overrides. Attributes are set with
// "attributes.<name>".
const (
	KeyPath       = "path"
	KeyFieldSep   = "field_sep"
	KeyHeaders    = "headers"
	KeyHeaderRow  = "header_row"
	KeyAttributes = "attributes"
)

// envKeys maps the recognized environment variables to config keys. Other
// LINECOOK_* variables are ignored.
var envKeys = map[string]string{
	paths.EnvPath:      KeyPath,
	paths.EnvFieldSep:  KeyFieldSep,
	paths.EnvHeaders:   KeyHeaders,
	paths.EnvHeaderRow: KeyHeaderRow,
}

// LoadOptions control which layers Load reads
type LoadOptions struct {
	// ConfigFile is an explicit config file. It must exist. When empty the
	// XDG config directories are searched.
	ConfigFile string

	// SkipUserConfig disables the XDG search
	SkipUserConfig bool

	// Overrides is the last layer, typically built from command line flags
	Overrides map[string]any
}

// settings is the koanf unmarshal target
type settings struct {
	Path       string         `koanf:"path" toml:"path"`
	FieldSep   string         `koanf:"field_sep" toml:"field_sep"`
	Headers    []string       `koanf:"headers" toml:"headers"`
	HeaderRow  bool           `koanf:"header_row" toml:"header_row"`
	Attributes map[string]any `koanf:"attributes" toml:"attributes"`
}

// Load builds the effective configuration from all layers
func Load(opts LoadOptions) (*Config, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	// 1. Built-in search path and embedded defaults
	builtin := map[string]any{KeyPath: paths.JoinPath(paths.DefaultTemplateDirs())}
	if err := k.Load(confmap.Provider(builtin, "."), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to load built-in search path")
	}
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to load embedded defaults")
	}

	// 2. User config file
	source := opts.ConfigFile
	if source == "" && !opts.SkipUserConfig {
		source, _ = paths.ConfigFile()
	}
	if source != "" {
		if err := loadFile(k, source); err != nil {
			return nil, err
		}
		logger.Debug().Str("path", source).Msg("Loaded config file")
	}

	// 3. Environment
	err := k.Load(env.Provider(paths.EnvPrefix, ".", func(s string) string {
		return envKeys[s]
	}), nil)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment")
	}

	// 4. Overrides
	if len(opts.Overrides) > 0 {
		if err := k.Load(confmap.Provider(opts.Overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load overrides")
		}
	}

	var s settings
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &s,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToSliceHookFunc(","),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &s, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}

	cfg, err := fromSettings(s)
	if err != nil {
		return nil, err
	}
	cfg.source = source

	logger.Debug().
		Strs("templateDirs", cfg.templateDirs).
		Str("fieldSep", formatFieldSep(cfg.fieldSep)).
		Strs("headers", cfg.headers).
		Msg("Configuration loaded")
	return cfg, nil
}

func loadFile(k *koanf.Koanf, path string) error {
	if _, err := os.Stat(path); err != nil {
		return errors.Wrapf(err, errors.ErrConfigLoad, "cannot read config file %s", path).
			WithDetail("path", path)
	}

	var parser koanf.Parser
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		parser = yaml.Parser()
	default:
		parser = toml.Parser()
	}

	if err := k.Load(file.Provider(path), parser); err != nil {
		return errors.Wrapf(err, errors.ErrConfigParse, "failed to parse config file %s", path).
			WithDetail("path", path)
	}
	return nil
}

func fromSettings(s settings) (*Config, error) {
	sep, err := ParseFieldSep(s.FieldSep)
	if err != nil {
		return nil, err
	}
	return &Config{
		templateDirs: paths.SplitPath(s.Path),
		fieldSep:     sep,
		headers:      cleanHeaders(s.Headers),
		headerRow:    s.HeaderRow,
		attributes:   cloneAttributes(s.Attributes),
	}, nil
}
