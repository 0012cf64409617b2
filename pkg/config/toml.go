package config

import (
	"github.com/pelletier/go-toml/v2"

	"github.com/arthur-debert/linecook/pkg/errors"
	"github.com/arthur-debert/linecook/pkg/paths"
)

// MarshalTOML renders the effective configuration in the same shape as the
// config file
func (c *Config) MarshalTOML() ([]byte, error) {
	headers := c.Headers()
	if headers == nil {
		headers = []string{}
	}
	s := settings{
		Path:       paths.JoinPath(c.templateDirs),
		FieldSep:   formatFieldSep(c.fieldSep),
		Headers:    headers,
		HeaderRow:  c.headerRow,
		Attributes: c.Attributes(),
	}
	data, err := toml.Marshal(s)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to encode configuration")
	}
	return data, nil
}
