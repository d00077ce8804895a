package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"aeronib.com/pkg/navhdr/internal/domain"
	m "aeronib.com/pkg/navhdr/internal/model"
)

func newInjectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inject [paths...]",
		Short: "Bake the header into site pages",
		Long:  injectLongDescription,
		RunE: func(cmd *cobra.Command, args []string) error {
			variant, err := loadVariant()
			if err != nil {
				return err
			}

			base, err := explicitBase()
			if err != nil {
				return err
			}

			return workflow.Inject(cmd.Context(), domain.InjectArgs{
				ListArgs: domain.ListArgs{
					Paths:      sitePaths(args),
					Exclude:    viper.GetStringSlice(excludeConfigKey),
					ScriptName: viper.GetString(headerScriptKey),
				},
				Root:    m.Path(viper.GetString(siteRootKey)),
				Out:     m.Path(viper.GetString(injectOutKey)),
				Threads: viper.GetInt(parallelConfigKey),
				DryRun:  viper.GetBool(injectDryRunKey),
				Options: domain.RunOptions{
					Variant:     variant,
					Base:        base,
					StripScript: viper.GetBool(headerStripScriptKey),
					Dedupe:      viper.GetBool(headerDedupeKey),
				},
			})
		},
	}

	configureInjectFlags(cmd)

	return cmd
}

func configureInjectFlags(cmd *cobra.Command) {
	flags := cmd.Flags()

	flags.StringP(outFlagName, "o", viper.GetString(injectOutKey), "write pages into this directory instead of in place")
	bindFlagToConfig(flags.Lookup(outFlagName), injectOutKey)

	flags.Bool(dryRunFlagName, viper.GetBool(injectDryRunKey), "print a diff instead of writing pages")
	bindFlagToConfig(flags.Lookup(dryRunFlagName), injectDryRunKey)

	flags.Bool(stripScriptFlagName, viper.GetBool(headerStripScriptKey), "remove the header script once the header is baked in")
	bindFlagToConfig(flags.Lookup(stripScriptFlagName), headerStripScriptKey)

	flags.Bool(dedupeFlagName, viper.GetBool(headerDedupeKey), "do not insert a header when the body already starts with one")
	bindFlagToConfig(flags.Lookup(dedupeFlagName), headerDedupeKey)
}
