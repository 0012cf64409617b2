// Package paths provides path handling for linecook: the default template
// search path, home expansion and XDG locations.
package paths

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
)

// Environment variable names
const (
	// EnvPrefix prefixes every linecook environment variable
	EnvPrefix = "LINECOOK_"

	// EnvPath overrides the template search path
	EnvPath = EnvPrefix + "PATH"

	// EnvFieldSep overrides the input field separator
	EnvFieldSep = EnvPrefix + "FIELD_SEP"

	// EnvHeaders sets comma separated header names
	EnvHeaders = EnvPrefix + "HEADERS"

	// EnvHeaderRow enables reading headers from the first stream line
	EnvHeaderRow = EnvPrefix + "HEADER_ROW"
)

const (
	// AppDirName is the directory name used under XDG base directories
	AppDirName = "linecook"

	// ConfigFileTOML and ConfigFileYAML are the user config file names,
	// looked up in that order
	ConfigFileTOML = "config.toml"
	ConfigFileYAML = "config.yaml"
)

// DefaultTemplateDirs returns the built-in search path, before ~ expansion
func DefaultTemplateDirs() []string {
	return []string{"~/.linecook", "/etc/linecook"}
}

// SplitPath splits a search path on the OS list separator, dropping empty
// entries and expanding ~
func SplitPath(path string) []string {
	var dirs []string
	for _, dir := range filepath.SplitList(path) {
		if dir == "" {
			continue
		}
		dirs = append(dirs, ExpandHome(dir))
	}
	return dirs
}

// JoinPath is the inverse of SplitPath, without home contraction
func JoinPath(dirs []string) string {
	return strings.Join(dirs, string(os.PathListSeparator))
}

// ExpandHome replaces a leading ~ with the current user's home directory.
// Paths for other users (~bob) are returned unchanged.
func ExpandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}

// ConfigFile returns the first user config file found in the XDG config
// directories
func ConfigFile() (string, bool) {
	for _, name := range []string{ConfigFileTOML, ConfigFileYAML} {
		if path, err := xdg.SearchConfigFile(filepath.Join(AppDirName, name)); err == nil {
			return path, true
		}
	}
	return "", false
}
