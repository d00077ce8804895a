// Package cmd provides the root command and CLI setup for navhdr.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"aeronib.com/pkg/navhdr/internal/adapter"
	"aeronib.com/pkg/navhdr/internal/controller"
	"aeronib.com/pkg/navhdr/internal/domain"
	m "aeronib.com/pkg/navhdr/internal/model"
)

var fsAdapter adapter.SiteFSAdapter
var imageAdapter adapter.ImageAdapter
var workflow domain.Workflow
var ui controller.UI

// excludePatterns is a root-level flag that filters pages for applicable commands.
var excludePatterns []string

func init() {
	rootCmd = newRootCmd()
	rootCmd.AddCommand(
		newInitCmd(),
		newInjectCmd(),
		newListCmd(),
		newRenderCmd(),
		newGalleryCmd(),
		newVersionCmd(),
	)

	// Initialize shared dependencies.
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	fsAdapter = adapter.NewLocalSiteFSAdapter()
	imageAdapter = adapter.NewLocalImageAdapter()
	workflow = domain.NewWorkflow(fsAdapter, imageAdapter, ui)
}

const pathPatternsHelp = `Supports Go-style path patterns:
  - ./...          recursively scan the current directory
  - ./travel/...   recursively scan the travel directory
  - ./ ./travel    scan multiple directories without descending`

const rootLongDescription = `navhdr bakes the site navigation header into static HTML pages.

Every page that loads the header script gets the header inserted as the first
element of its body, with links made relative to where the page lives. The
gallery commands prepare photos for the web and build thumbnails.`

const injectLongDescription = `Run the header script of every page found under the given paths
(default: the site root, recursively) and write the result.

` + pathPatternsHelp

const listLongDescription = `List pages with their header script, base path and header state.

` + pathPatternsHelp

// rootCmd represents the base command when called without any subcommands.
// It is built in init, after the configuration defaults are registered.
var rootCmd *cobra.Command

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "navhdr",
		Short: "Static navigation header injector",
		Long:  rootLongDescription,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger(viper.GetString(logFilenameKey), viper.GetBool(logVerboseKey))
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
		SilenceUsage: true,
	}

	configureRootFlags(cmd)

	return cmd
}

func configureRootFlags(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()

	flags.String(rootFlagName, viper.GetString(siteRootKey), "site root directory")
	bindFlagToConfig(flags.Lookup(rootFlagName), siteRootKey)

	flags.StringArrayVarP(&excludePatterns, excludeFlagName, "x", viper.GetStringSlice(excludeConfigKey), "exclude pages matching regex (can be repeated)")
	bindFlagToConfig(flags.Lookup(excludeFlagName), excludeConfigKey)

	flags.IntP(parallelFlagName, "p", viper.GetInt(parallelConfigKey), "number of parallel workers")
	bindFlagToConfig(flags.Lookup(parallelFlagName), parallelConfigKey)

	flags.String(variantFlagName, viper.GetString(headerVariantKey), "header variant to render")
	bindFlagToConfig(flags.Lookup(variantFlagName), headerVariantKey)

	flags.String(scriptFlagName, viper.GetString(headerScriptKey), "file name of the header script referenced by pages")
	bindFlagToConfig(flags.Lookup(scriptFlagName), headerScriptKey)

	flags.String(baseFlagName, "", `explicit base path ("" or "../"); derived from the script source when unset`)
	bindFlagToConfig(flags.Lookup(baseFlagName), headerBaseKey)

	flags.String(navigationFlagName, viper.GetString(headerNavigationKey), "yaml file with additional header variants")
	bindFlagToConfig(flags.Lookup(navigationFlagName), headerNavigationKey)

	flags.BoolP(verboseFlagName, "v", viper.GetBool(logVerboseKey), "log at debug level")
	bindFlagToConfig(flags.Lookup(verboseFlagName), logVerboseKey)

	flags.String(logFileFlagName, viper.GetString(logFilenameKey), "log file path")
	bindFlagToConfig(flags.Lookup(logFileFlagName), logFilenameKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		stop()
		os.Exit(1)
	}
}

func parsePaths(args []string) []m.Path {
	paths := make([]m.Path, 0, len(args))
	for _, arg := range args {
		paths = append(paths, m.Path(arg))
	}

	return paths
}

// sitePaths returns the given paths, or the whole site root when none is given.
func sitePaths(args []string) []m.Path {
	if len(args) == 0 {
		return []m.Path{m.Path(viper.GetString(siteRootKey) + "/...")}
	}

	return parsePaths(args)
}
