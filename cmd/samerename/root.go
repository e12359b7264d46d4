package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	var configFlag string
	var dryRun bool

	ctx := newCommandContext(&configFlag)

	rootCmd := &cobra.Command{
		Use:   "samerename [dir]",
		Short: "Sequence-rename overlapping images",
		Long: "Scores how strongly the images in a directory overlap using align_image_stack\n" +
			"and, when the mean score reaches the configured threshold, renames every\n" +
			"image to <prefix><NNN>_<name> in capture order. Defaults to the current directory.",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if shouldSkipConfig(cmd) {
				return nil
			}
			_, err := ctx.ensureConfig()
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSequence(cmd, ctx, targetDirectory(args), dryRun)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")
	rootCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Report the renames without performing them")

	rootCmd.AddCommand(newCandidatesCommand(ctx))
	rootCmd.AddCommand(newCheckCommand(ctx))
	rootCmd.AddCommand(newConfigCommand(ctx))

	return rootCmd
}
