package linecook

import (
	"github.com/spf13/cobra"

	"github.com/arthur-debert/linecook/pkg/ui"
)

func newShowCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:               "show NAME",
		Short:             MsgShowShort,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeTemplateNames(opts),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := opts.outputFormat(cmd)
			if err != nil {
				return err
			}
			c, err := opts.newCook(nil)
			if err != nil {
				return err
			}

			d, err := c.Registry().Resolve(args[0])
			if err != nil {
				return err
			}
			meta, err := d.Metadata()
			if err != nil {
				return err
			}
			params, err := d.Params()
			if err != nil {
				return err
			}

			info := ui.TemplateInfo{
				Name:         d.Name(),
				Path:         d.Path(),
				Dir:          d.Dir(),
				Engine:       d.Engine().Name(),
				MetadataPath: d.MetadataPath(),
				HasMetadata:  meta.Exists(),
				Description:  meta.Description(),
			}
			for _, p := range params {
				info.Params = append(info.Params, ui.Param{Name: p.Name, Default: p.Default, HasDefault: p.HasDefault})
			}
			return ui.RenderTemplate(cmd.OutOrStdout(), format, info)
		},
	}
}
