package linecook

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/linecook/pkg/config"
)

func newConfigCmd(opts *globalOptions) *cobra.Command {
	var defaults bool

	cmd := &cobra.Command{
		Use:   "config",
		Short: MsgConfigShort,
		Long:  MsgConfigLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if defaults {
				_, err := fmt.Fprint(cmd.OutOrStdout(), config.DefaultContent())
				return err
			}

			cfg, err := opts.loadConfig(nil)
			if err != nil {
				return err
			}
			data, err := cfg.MarshalTOML()
			if err != nil {
				return err
			}
			if cfg.Source() != "" {
				if _, err := fmt.Fprintf(cmd.OutOrStdout(), "# loaded from %s\n", cfg.Source()); err != nil {
					return err
				}
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}

	cmd.Flags().BoolVar(&defaults, "defaults", false, MsgFlagDefaults)
	return cmd
}
