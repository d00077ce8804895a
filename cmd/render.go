package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"aeronib.com/pkg/navhdr/internal/domain"
)

func newRenderCmd() *cobra.Command {
	var src string

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Print the header markup",
		Long: `Print the header fragment of the configured variant.

The base path is taken from --base when given, otherwise it is derived from
--src the way a page's script tag would: "../header.js" gives "../", anything
else gives an empty base path.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			variant, err := loadVariant()
			if err != nil {
				return err
			}

			base, err := explicitBase()
			if err != nil {
				return err
			}

			resolved := domain.ResolveBasePath(src)
			if base != nil {
				resolved = *base
			}

			fragment, err := domain.RenderHeader(resolved, variant)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), fragment)

			return err
		},
	}

	cmd.Flags().StringVar(&src, srcFlagName, "", "script source location used to derive the base path")

	return cmd
}
