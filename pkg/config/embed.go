package config

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"

	"github.com/arthur-debert/linecook/pkg/paths"
)

//go:embed embedded/defaults.toml
var defaultConfig []byte

// builtinPathLine marks where the search path default is shown. The value
// itself comes from paths.DefaultTemplateDirs.
const builtinPathLine = "# path: built in"

// DefaultContent returns the embedded defaults file, used by `linecook config
// --defaults`, with the built-in search path filled in
func DefaultContent() string {
	line := fmt.Sprintf("path = %q", paths.JoinPath(paths.DefaultTemplateDirs()))
	return strings.Replace(string(defaultConfig), builtinPathLine, line, 1)
}

// rawBytesProvider implements koanf provider for raw bytes
type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, errors.New("not implemented")
}
