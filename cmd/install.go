package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var installCmd = &cobra.Command{
	Use:               "install <apk>",
	Aliases:           []string{"update"},
	Short:             "Install or update an apk on the devices",
	Args:              cobra.ExactArgs(1),
	PersistentPreRunE: requireADB(),
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := newBatch()
		if err != nil {
			return err
		}
		fmt.Printf("Installing %s...\n", args[0])
		results, err := b.Install(cmd.Context(), devices, args[0])
		printResults(results)
		return err
	},
}

var uninstallCmd = &cobra.Command{
	Use:               "uninstall <package>",
	Short:             "Uninstall a package from the devices",
	Args:              cobra.ExactArgs(1),
	PersistentPreRunE: requireADB(),
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := newBatch()
		if err != nil {
			return err
		}
		fmt.Printf("Uninstalling %s...\n", args[0])
		results, err := b.Uninstall(cmd.Context(), devices, args[0])
		printResults(results)
		return err
	},
}

func init() {
	rootCmd.AddCommand(installCmd)
	rootCmd.AddCommand(uninstallCmd)
}
