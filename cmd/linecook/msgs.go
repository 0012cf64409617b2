package linecook

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Render named templates from delimited lines"
	MsgRenderShort     = "Render a template with explicit values"
	MsgRenderLong      = "Render resolves NAME on the search path and renders it with VALUES bound to its declared arguments in order."
	MsgEachShort       = "Render a template once per input line"
	MsgListShort       = "List templates on the search path"
	MsgListLong        = "List prints every logical template name with the file it resolves to, in name order."
	MsgShowShort       = "Show a template's arguments and description"
	MsgConfigShort     = "Print the effective configuration"
	MsgConfigLong      = "Config prints the effective configuration as TOML, after applying the config file, LINECOOK_* environment variables and flags."
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"

	// Status messages
	MsgNoTemplatesFound = "No templates found in %s\n"
	MsgRenderedLines    = "Rendered %d lines"

	// Error messages
	MsgErrLoadConfig = "failed to load configuration: %w"
	MsgErrOpenInput  = "failed to open input: %w"
	MsgErrBadAttr    = "invalid --attr %q, expected key=value"
	MsgErrNoCommand  = "no command specified"

	// Flag descriptions
	MsgFlagVerbose   = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig    = "Config file (default is $XDG_CONFIG_HOME/linecook/config.toml)"
	MsgFlagPath      = "Template search path, separated by the OS list separator"
	MsgFlagAttr      = "Global template attribute as key=value (repeatable)"
	MsgFlagFormat    = "Output format for list and show: auto, term or text"
	MsgFlagFieldSep  = "Field separator (a single character, \\t for tab)"
	MsgFlagHeaders   = "Comma separated header names for input fields"
	MsgFlagHeaderRow = "Read header names from the first input line"
	MsgFlagDefaults  = "Print the built-in defaults file instead"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/each-long.txt
	msgEachLongRaw string
	MsgEachLong    = strings.TrimSpace(msgEachLongRaw)

	//go:embed msgs/each-example.txt
	msgEachExampleRaw string
	MsgEachExample    = strings.TrimRight(msgEachExampleRaw, "\n")

	//go:embed msgs/render-example.txt
	msgRenderExampleRaw string
	MsgRenderExample    = strings.TrimRight(msgRenderExampleRaw, "\n")

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = msgUsageTemplateRaw
)
