package cmd

import (
	"github.com/spf13/cobra"
)

var screenshotCmd = &cobra.Command{
	Use:               "screenshot [dst-dir]",
	Short:             "Save a screenshot of each device",
	Long:              `Writes <serial>_<timestamp>.png per device into dst-dir (default: the configured screenshot_dir).`,
	Args:              cobra.MaximumNArgs(1),
	PersistentPreRunE: requireADB(),
	RunE: func(cmd *cobra.Command, args []string) error {
		dst := cfg.Screenshots()
		if len(args) > 0 {
			dst = args[0]
		}
		b, err := newBatch()
		if err != nil {
			return err
		}
		results, err := b.Screenshot(cmd.Context(), devices, dst)
		printResults(results)
		return err
	},
}

func init() {
	rootCmd.AddCommand(screenshotCmd)
}
