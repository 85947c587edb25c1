package cmd

import (
	"fmt"

	"github.com/FluidXR/adbatch/internal/shells"

	"github.com/spf13/cobra"
)

var execShell bool

var execCmd = &cobra.Command{
	Use:     "exec-cmd <command>",
	Aliases: []string{"exec_cmd"},
	Short:   "Run a custom adb command on the devices",
	Long: `Runs "adb -s <serial> <command>" on each device, or "adb -s <serial> shell <command>"
with --shell. The command is split on whitespace.

Example: adbatch exec-cmd --shell "getprop ro.build.version.release"`,
	Args:              cobra.ExactArgs(1),
	PersistentPreRunE: requireADB(),
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := newBatch()
		if err != nil {
			return err
		}
		results, err := b.ExecCmd(cmd.Context(), devices, args[0], execShell)
		printResults(results)
		return err
	},
}

var execExtendShellCmd = &cobra.Command{
	Use:               "exec-extend-shell <name>",
	Aliases:           []string{"exec_extend_shell"},
	Short:             "Push a named shell script to the devices and run it",
	Args:              cobra.ExactArgs(1),
	PersistentPreRunE: requireADB(),
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := newBatch()
		if err != nil {
			return err
		}
		results, err := b.ExecExtendShell(cmd.Context(), devices, args[0])
		printResults(results)
		return err
	},
}

var shellsCmd = &cobra.Command{
	Use:   "shells",
	Short: "List the scripts available to exec-extend-shell",
	RunE: func(cmd *cobra.Command, args []string) error {
		catalog, err := shells.Load(cfg.ShellsDir(), cfg.ShellPaths())
		if err != nil {
			return err
		}
		if len(catalog) == 0 {
			fmt.Printf("No shells found. Drop *.sh files into %s\n", cfg.ShellsDir())
			return nil
		}
		for _, name := range catalog.Names() {
			fmt.Printf("%-20s %s\n", name, catalog[name])
		}
		return nil
	},
}

func init() {
	execCmd.Flags().BoolVar(&execShell, "shell", false, "Run the command through adb shell")
	rootCmd.AddCommand(execCmd)
	rootCmd.AddCommand(execExtendShellCmd)
	rootCmd.AddCommand(shellsCmd)
}
