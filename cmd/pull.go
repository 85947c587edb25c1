package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var pullCmd = &cobra.Command{
	Use:   "pull <src> <dst>",
	Short: "Copy a file or directory from the devices",
	Long: `Copies <src> from every selected device to <dst>. When more than one
device is selected each device gets its own <dst>/<serial> directory.`,
	Args:              cobra.ExactArgs(2),
	PersistentPreRunE: requireADB(),
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := newBatch()
		if err != nil {
			return err
		}
		fmt.Printf("Pulling %s -> %s\n", args[0], args[1])
		results, err := b.Pull(cmd.Context(), devices, args[0], args[1])
		printResults(results)
		return err
	},
}

func init() {
	rootCmd.AddCommand(pullCmd)
}
