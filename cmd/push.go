package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var pushCmd = &cobra.Command{
	Use:               "push <src> <dst>",
	Short:             "Copy a local file or directory to the devices",
	Args:              cobra.ExactArgs(2),
	PersistentPreRunE: requireADB(),
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := newBatch()
		if err != nil {
			return err
		}
		fmt.Printf("Pushing %s -> %s\n", args[0], args[1])
		results, err := b.Push(cmd.Context(), devices, args[0], args[1])
		printResults(results)
		return err
	},
}

func init() {
	rootCmd.AddCommand(pushCmd)
}
