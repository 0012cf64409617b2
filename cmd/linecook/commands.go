// Package linecook implements the linecook command line interface.
package linecook

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/linecook/internal/version"
	"github.com/arthur-debert/linecook/pkg/config"
	"github.com/arthur-debert/linecook/pkg/cook"
	"github.com/arthur-debert/linecook/pkg/logging"
	"github.com/arthur-debert/linecook/pkg/ui"
)

// globalOptions holds the persistent flags shared by every command
type globalOptions struct {
	verbosity  int
	configFile string
	path       string
	attrs      []string
	format     string
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	initTemplateFormatting()

	opts := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:     "linecook",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(opts.verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return fmt.Errorf(MsgErrNoCommand)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	// Global flags
	pf := rootCmd.PersistentFlags()
	pf.CountVarP(&opts.verbosity, "verbose", "v", MsgFlagVerbose)
	pf.StringVar(&opts.configFile, "config", "", MsgFlagConfig)
	pf.StringVar(&opts.path, "path", "", MsgFlagPath)
	pf.StringArrayVar(&opts.attrs, "attr", nil, MsgFlagAttr)
	pf.StringVar(&opts.format, "format", "auto", MsgFlagFormat)

	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newRenderCmd(opts))
	rootCmd.AddCommand(newEachCmd(opts))
	rootCmd.AddCommand(newListCmd(opts))
	rootCmd.AddCommand(newShowCmd(opts))
	rootCmd.AddCommand(newConfigCmd(opts))
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())

	return rootCmd
}

// loadConfig applies the config layers with the persistent flags, plus any
// command-specific overrides, as the last layer
func (o *globalOptions) loadConfig(extra map[string]any) (*config.Config, error) {
	overrides := map[string]any{}
	if o.path != "" {
		overrides[config.KeyPath] = o.path
	}
	for _, attr := range o.attrs {
		key, value, ok := strings.Cut(attr, "=")
		if !ok || strings.TrimSpace(key) == "" {
			return nil, fmt.Errorf(MsgErrBadAttr, attr)
		}
		overrides[config.KeyAttributes+"."+strings.TrimSpace(key)] = value
	}
	for k, v := range extra {
		overrides[k] = v
	}

	cfg, err := config.Load(config.LoadOptions{
		ConfigFile: o.configFile,
		Overrides:  overrides,
	})
	if err != nil {
		return nil, fmt.Errorf(MsgErrLoadConfig, err)
	}
	return cfg, nil
}

func (o *globalOptions) newCook(extra map[string]any) (*cook.Cook, error) {
	cfg, err := o.loadConfig(extra)
	if err != nil {
		return nil, err
	}
	return cook.New(cfg)
}

func (o *globalOptions) outputFormat(cmd *cobra.Command) (ui.Format, error) {
	f, err := ui.ParseFormat(o.format)
	if err != nil {
		return ui.FormatText, err
	}
	return ui.Resolve(f, cmd.OutOrStdout()), nil
}

// completeTemplateNames offers logical names for the first argument
func completeTemplateNames(opts *globalOptions) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		if len(args) > 0 {
			return nil, cobra.ShellCompDirectiveDefault
		}
		c, err := opts.newCook(nil)
		if err != nil {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}
		names, err := c.Registry().Names()
		if err != nil {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}
		var matches []string
		for _, name := range names {
			if strings.HasPrefix(name, toComplete) {
				matches = append(matches, name)
			}
		}
		return matches, cobra.ShellCompDirectiveNoFileComp
	}
}
