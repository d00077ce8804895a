package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"aeronib.com/pkg/navhdr/internal/domain"
	m "aeronib.com/pkg/navhdr/internal/model"
)

func newGalleryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gallery",
		Short: "Prepare gallery photos for the web",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().String(imagesFlagName, viper.GetString(imagesDirKey), "directory holding the gallery JPEG files")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(imagesFlagName), imagesDirKey)

	cmd.AddCommand(newThumbsCmd(), newResizeCmd())

	return cmd
}

func newThumbsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "thumbs",
		Short: "Generate fixed-height thumbnails",
		Long: `Generate a thumbnail for every JPEG of the images directory that does not
have one yet. Thumbnails keep the aspect ratio and share the image file name.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return workflow.Thumbnails(cmd.Context(), domain.ThumbnailArgs{
				ImagesDir: m.Path(viper.GetString(imagesDirKey)),
				ThumbsDir: m.Path(viper.GetString(imagesThumbsDirKey)),
				Height:    viper.GetInt(imagesThumbHeightKey),
				Quality:   viper.GetInt(imagesThumbQualKey),
				Threads:   viper.GetInt(parallelConfigKey),
			})
		},
	}

	flags := cmd.Flags()

	flags.String(thumbsFlagName, viper.GetString(imagesThumbsDirKey), "thumbnail output directory")
	bindFlagToConfig(flags.Lookup(thumbsFlagName), imagesThumbsDirKey)

	flags.Int(heightFlagName, viper.GetInt(imagesThumbHeightKey), "thumbnail height in pixels")
	bindFlagToConfig(flags.Lookup(heightFlagName), imagesThumbHeightKey)

	flags.Int(qualityFlagName, viper.GetInt(imagesThumbQualKey), "thumbnail JPEG quality")
	bindFlagToConfig(flags.Lookup(qualityFlagName), imagesThumbQualKey)

	return cmd
}

func newResizeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resize",
		Short: "Shrink gallery images for web display",
		Long: `Back up every JPEG of the images directory, then shrink it so its longest
edge fits the maximum dimension and re-encode it. Images that already fit are
only re-encoded. EXIF orientation is applied and metadata is dropped.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return workflow.Resize(cmd.Context(), domain.ResizeArgs{
				ImagesDir:    m.Path(viper.GetString(imagesDirKey)),
				BackupDir:    m.Path(viper.GetString(imagesBackupDirKey)),
				MaxDimension: viper.GetInt(imagesMaxDimKey),
				Quality:      viper.GetInt(imagesQualityKey),
				Threads:      viper.GetInt(parallelConfigKey),
			})
		},
	}

	flags := cmd.Flags()

	flags.String(backupFlagName, viper.GetString(imagesBackupDirKey), "backup directory for the original files")
	bindFlagToConfig(flags.Lookup(backupFlagName), imagesBackupDirKey)

	flags.Int(maxFlagName, viper.GetInt(imagesMaxDimKey), "maximum width or height in pixels")
	bindFlagToConfig(flags.Lookup(maxFlagName), imagesMaxDimKey)

	flags.Int(qualityFlagName, viper.GetInt(imagesQualityKey), "JPEG quality")
	bindFlagToConfig(flags.Lookup(qualityFlagName), imagesQualityKey)

	return cmd
}
