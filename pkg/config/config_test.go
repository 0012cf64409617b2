package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/linecook/pkg/errors"
	"github.com/arthur-debert/linecook/pkg/paths"
)

// isolate points HOME and the XDG config dirs at a temp dir and clears the
// LINECOOK_* variables the loader reads
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, ".config"))
	t.Setenv("XDG_CONFIG_DIRS", filepath.Join(home, "etc"))
	for _, name := range []string{paths.EnvPath, paths.EnvFieldSep, paths.EnvHeaders, paths.EnvHeaderRow} {
		t.Setenv(name, "")
		require.NoError(t, os.Unsetenv(name))
	}
	xdg.Reload()
	t.Cleanup(xdg.Reload)
	return home
}

func writeFile(t *testing.T, path, content string) string {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	home := isolate(t)

	cfg, err := Load(LoadOptions{})
	require.NoError(t, err)

	assert.Equal(t, []string{filepath.Join(home, ".linecook"), "/etc/linecook"}, cfg.TemplateDirs())
	assert.Equal(t, ',', cfg.FieldSep())
	assert.Empty(t, cfg.Headers())
	assert.False(t, cfg.HeaderRow())
	assert.Empty(t, cfg.Attributes())
	assert.Empty(t, cfg.Source())
}

func TestLoad_UserConfigFromXDG(t *testing.T) {
	home := isolate(t)
	path := writeFile(t, filepath.Join(home, ".config", "linecook", "config.toml"), `
path = "/srv/templates"
field_sep = "|"
headers = ["name", "age"]

[attributes]
author = "ada"
`)

	cfg, err := Load(LoadOptions{})
	require.NoError(t, err)

	assert.Equal(t, path, cfg.Source())
	assert.Equal(t, []string{"/srv/templates"}, cfg.TemplateDirs())
	assert.Equal(t, '|', cfg.FieldSep())
	assert.Equal(t, []string{"name", "age"}, cfg.Headers())
	assert.Equal(t, map[string]any{"author": "ada"}, cfg.Attributes())
}

func TestLoad_ExplicitYAMLFile(t *testing.T) {
	home := isolate(t)
	path := writeFile(t, filepath.Join(home, "custom.yaml"), "field_sep: \";\"\nheader_row: true\n")

	cfg, err := Load(LoadOptions{ConfigFile: path})
	require.NoError(t, err)

	assert.Equal(t, ';', cfg.FieldSep())
	assert.True(t, cfg.HeaderRow())
	assert.Equal(t, path, cfg.Source())
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	home := isolate(t)

	_, err := Load(LoadOptions{ConfigFile: filepath.Join(home, "nope.toml")})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigLoad))
}

func TestLoad_MalformedFile(t *testing.T) {
	home := isolate(t)
	path := writeFile(t, filepath.Join(home, "bad.toml"), "path = [unterminated\n")

	_, err := Load(LoadOptions{ConfigFile: path})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigParse))
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	home := isolate(t)
	path := writeFile(t, filepath.Join(home, "c.toml"), "field_sep = \"|\"\npath = \"/from/file\"\n")

	t.Setenv("LINECOOK_PATH", "/a"+string(os.PathListSeparator)+"/b")
	t.Setenv("LINECOOK_FIELD_SEP", `\t`)
	t.Setenv("LINECOOK_HEADERS", "first, second")

	cfg, err := Load(LoadOptions{ConfigFile: path})
	require.NoError(t, err)

	assert.Equal(t, []string{"/a", "/b"}, cfg.TemplateDirs())
	assert.Equal(t, '\t', cfg.FieldSep())
	assert.Equal(t, []string{"first", "second"}, cfg.Headers())
}

func TestLoad_OverridesWin(t *testing.T) {
	isolate(t)
	t.Setenv("LINECOOK_FIELD_SEP", "|")

	cfg, err := Load(LoadOptions{Overrides: map[string]any{
		KeyFieldSep:                ":",
		KeyPath:                    "/flags",
		KeyAttributes + ".greeting": "hi",
	}})
	require.NoError(t, err)

	assert.Equal(t, ':', cfg.FieldSep())
	assert.Equal(t, []string{"/flags"}, cfg.TemplateDirs())
	assert.Equal(t, map[string]any{"greeting": "hi"}, cfg.Attributes())
}

func TestLoad_InvalidFieldSep(t *testing.T) {
	isolate(t)
	t.Setenv("LINECOOK_FIELD_SEP", "ab")

	_, err := Load(LoadOptions{})
	require.Error(t, err)
	assert.Equal(t, errors.ErrConfigValid, errors.GetErrorCode(err))
	assert.Equal(t, "ab", errors.GetErrorDetails(err)["field_sep"])
}

func TestParseFieldSep(t *testing.T) {
	tests := []struct {
		in      string
		want    rune
		wantErr bool
	}{
		{",", ',', false},
		{"\t", '\t', false},
		{`\t`, '\t', false},
		{"tab", '\t', false},
		{"é", 'é', false},
		{"", 0, true},
		{",,", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseFieldSep(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestNew_IsImmutable(t *testing.T) {
	dirs := []string{"/a"}
	attrs := map[string]any{"k": "v"}
	cfg := New(Options{TemplateDirs: dirs, Attributes: attrs})

	dirs[0] = "/mutated"
	attrs["k"] = "mutated"
	assert.Equal(t, []string{"/a"}, cfg.TemplateDirs())
	assert.Equal(t, "v", cfg.Attributes()["k"])

	got := cfg.TemplateDirs()
	got[0] = "/again"
	cfg.Attributes()["k"] = "again"
	assert.Equal(t, []string{"/a"}, cfg.TemplateDirs())
	assert.Equal(t, "v", cfg.Attributes()["k"])

	assert.Equal(t, DefaultFieldSep, cfg.FieldSep())
}

func TestMarshalTOML(t *testing.T) {
	cfg := New(Options{
		TemplateDirs: []string{"/a", "/b"},
		FieldSep:     '\t',
		Headers:      []string{"x"},
		Attributes:   map[string]any{"k": "v"},
	})

	data, err := cfg.MarshalTOML()
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, toml.Unmarshal(data, &decoded))
	assert.Equal(t, "/a"+string(os.PathListSeparator)+"/b", decoded["path"])
	assert.Equal(t, `\t`, decoded["field_sep"])
	assert.Equal(t, []any{"x"}, decoded["headers"])
	assert.Equal(t, map[string]any{"k": "v"}, decoded["attributes"])
}

func TestDefaultContent(t *testing.T) {
	content := DefaultContent()
	assert.Contains(t, content, "field_sep")
	assert.Contains(t, content, `path = "~/.linecook:/etc/linecook"`)
	assert.NotContains(t, content, builtinPathLine)

	var parsed map[string]any
	require.NoError(t, toml.Unmarshal([]byte(content), &parsed))
	assert.Equal(t, paths.JoinPath(paths.DefaultTemplateDirs()), parsed["path"])
}

func TestLoad_IgnoresUnknownEnv(t *testing.T) {
	isolate(t)
	t.Setenv("LINECOOK_ATTRIBUTES", "nope")
	t.Setenv("LINECOOK_SOMETHING", "x")

	cfg, err := Load(LoadOptions{})
	require.NoError(t, err)

	assert.Empty(t, cfg.Attributes())
	assert.Equal(t, ',', cfg.FieldSep())
}
