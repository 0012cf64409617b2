package linecook

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/linecook/pkg/config"
	"github.com/arthur-debert/linecook/pkg/logging"
)

func newEachCmd(opts *globalOptions) *cobra.Command {
	var (
		fieldSep  string
		headers   string
		headerRow bool
	)

	cmd := &cobra.Command{
		Use:               "each NAME [FILE]",
		Short:             MsgEachShort,
		Long:              MsgEachLong,
		Example:           MsgEachExample,
		Args:              cobra.RangeArgs(1, 2),
		ValidArgsFunction: completeTemplateNames(opts),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("cmd.each")

			extra := map[string]any{}
			if cmd.Flags().Changed("field-sep") {
				extra[config.KeyFieldSep] = fieldSep
			}
			if cmd.Flags().Changed("headers") {
				extra[config.KeyHeaders] = headers
			}
			if cmd.Flags().Changed("header-row") {
				extra[config.KeyHeaderRow] = headerRow
			}

			c, err := opts.newCook(extra)
			if err != nil {
				return err
			}

			in := cmd.InOrStdin()
			if len(args) == 2 && args[1] != "-" {
				f, err := os.Open(args[1])
				if err != nil {
					return fmt.Errorf(MsgErrOpenInput, err)
				}
				defer func() { _ = f.Close() }()
				in = f
			}

			n, err := c.RenderStream(args[0], in, cmd.OutOrStdout())
			logger.Info().Str("template", args[0]).Msgf(MsgRenderedLines, n)
			return err
		},
	}

	cmd.Flags().StringVarP(&fieldSep, "field-sep", "F", "", MsgFlagFieldSep)
	cmd.Flags().StringVarP(&headers, "headers", "H", "", MsgFlagHeaders)
	cmd.Flags().BoolVar(&headerRow, "header-row", false, MsgFlagHeaderRow)

	return cmd
}
