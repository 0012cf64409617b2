package linecook

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/linecook/pkg/logging"
)

func newRenderCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:               "render NAME [VALUES...]",
		Short:             MsgRenderShort,
		Long:              MsgRenderLong,
		Example:           MsgRenderExample,
		Args:              cobra.MinimumNArgs(1),
		ValidArgsFunction: completeTemplateNames(opts),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("cmd.render")

			c, err := opts.newCook(nil)
			if err != nil {
				return err
			}

			values := make([]any, len(args)-1)
			for i, v := range args[1:] {
				values[i] = v
			}
			logger.Info().Str("template", args[0]).Int("values", len(values)).Msg("Rendering")

			out, err := c.Render(args[0], values)
			if err != nil {
				return err
			}
			if !strings.HasSuffix(out, "\n") {
				out += "\n"
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), out)
			return err
		},
	}
}
