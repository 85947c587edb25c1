package cmd

import (
	"fmt"
	"strings"

	"github.com/FluidXR/adbatch/internal/actions"

	"github.com/spf13/cobra"
)

var settingCmd = &cobra.Command{
	Use:               "setting <action>",
	Short:             "Apply a setting action (see 'adbatch actions') to the devices",
	Args:              cobra.ExactArgs(1),
	PersistentPreRunE: requireADB(),
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := newBatch()
		if err != nil {
			return err
		}
		results, err := b.Setting(cmd.Context(), devices, args[0])
		printResults(results)
		return err
	},
}

var actionsCmd = &cobra.Command{
	Use:   "actions",
	Short: "List the setting actions and the commands they run",
	RunE: func(cmd *cobra.Command, args []string) error {
		table := actions.Builtin().Merge(cfg.Actions)
		for _, name := range table.Names() {
			cmds, _ := table.Lookup(name)
			fmt.Println(name)
			for _, c := range cmds {
				fmt.Printf("  adb shell %s\n", strings.Join(c, " "))
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(settingCmd)
	rootCmd.AddCommand(actionsCmd)
}
