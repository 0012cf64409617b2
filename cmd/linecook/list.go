package linecook

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/linecook/pkg/paths"
	"github.com/arthur-debert/linecook/pkg/ui"
)

func newListCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   MsgListShort,
		Long:    MsgListLong,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := opts.outputFormat(cmd)
			if err != nil {
				return err
			}
			c, err := opts.newCook(nil)
			if err != nil {
				return err
			}

			names, err := c.Registry().Names()
			if err != nil {
				return err
			}
			if len(names) == 0 {
				_, err = fmt.Fprintf(cmd.OutOrStdout(), MsgNoTemplatesFound, paths.JoinPath(c.Registry().Dirs()))
				return err
			}

			files, err := c.Registry().Files()
			if err != nil {
				return err
			}
			entries := make([]ui.Entry, len(names))
			for i, name := range names {
				entries[i] = ui.Entry{Name: name, Path: files[name]}
			}
			return ui.RenderList(cmd.OutOrStdout(), format, entries)
		},
	}
}
