// Package config loads linecook's effective configuration.
//
// Configuration is layered with koanf, each layer overriding the previous one:
//
//  1. built-in defaults (paths.DefaultTemplateDirs and embedded/defaults.toml)
//  2. the user config file, either given explicitly or found under the XDG
//     config home as linecook/config.toml or linecook/config.yaml
//  3. LINECOOK_* environment variables
//  4. command line overrides
//
// The result is an immutable Config. Library users that do not want any of
// the layering can build one directly with New.
package config
