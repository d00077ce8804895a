package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"aeronib.com/pkg/navhdr/internal/domain"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list [paths...]",
		Short: "List site pages and their header scripts",
		Long:  listLongDescription,
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.List(cmd.Context(), domain.ListArgs{
				Paths:      sitePaths(args),
				Exclude:    viper.GetStringSlice(excludeConfigKey),
				ScriptName: viper.GetString(headerScriptKey),
			})
		},
	}
}
