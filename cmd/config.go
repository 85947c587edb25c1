package cmd

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/FluidXR/adbatch/internal/config"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func activeConfigPath() string {
	if configPath != "" {
		return configPath
	}
	return config.ConfigPath()
}

func sortedKeys[V any](m map[string]V) []string {
	keys := lo.Keys(m)
	sort.Strings(keys)
	return keys
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show adbatch configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Printf("Config file: %s\n\n", activeConfigPath())
		fmt.Printf("adb: %s\n", cfg.ADBPath)
		fmt.Printf("npm: %s\n", cfg.NPMPath)
		fmt.Printf("Workspace: %s\n", cfg.Workspace())
		fmt.Printf("Shell directory: %s\n", cfg.ShellsDir())
		fmt.Printf("Screenshot directory: %s\n", cfg.Screenshots())
		fmt.Printf("Log level: %s\n", cfg.LogLevel)

		fmt.Printf("\nCustom actions:\n")
		if len(cfg.Actions) == 0 {
			fmt.Println("  (none configured)")
		}
		for _, name := range sortedKeys(cfg.Actions) {
			fmt.Printf("  - %s:\n", name)
			for _, argv := range cfg.Actions[name] {
				fmt.Printf("      adb shell %s\n", strings.Join(argv, " "))
			}
		}

		fmt.Printf("\nCustom shells:\n")
		if len(cfg.Shells) == 0 {
			fmt.Println("  (none configured)")
		}
		shellPaths := cfg.ShellPaths()
		for _, name := range sortedKeys(shellPaths) {
			fmt.Printf("  - %s: %s\n", name, shellPaths[name])
		}
		return nil
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create default config file",
	RunE: func(cmd *cobra.Command, args []string) error {
		path := activeConfigPath()
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config already exists at %s", path)
		}
		if err := config.Save(config.DefaultConfig(), path); err != nil {
			return err
		}
		fmt.Printf("Config created at %s\n", path)
		return nil
	},
}

var configSetADBCmd = &cobra.Command{
	Use:   "set-adb <path>",
	Short: "Set the adb binary to use",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg.ADBPath = args[0]
		if err := config.Save(cfg, activeConfigPath()); err != nil {
			return err
		}
		fmt.Printf("Set adb path: %s\n", args[0])
		return nil
	},
}

var configAddActionCmd = &cobra.Command{
	Use:   "add-action <name> <shell command>...",
	Short: "Add a setting action; each extra argument is one adb shell command",
	Long:  `Example: adbatch config add-action dark_on "cmd uimode night yes"`,
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		var argvs [][]string
		for _, c := range args[1:] {
			argv := strings.Fields(c)
			if len(argv) == 0 {
				return fmt.Errorf("empty command for action %q", name)
			}
			argvs = append(argvs, argv)
		}
		cfg.Actions[name] = argvs
		if err := config.Save(cfg, activeConfigPath()); err != nil {
			return err
		}
		fmt.Printf("Added action %s (%d commands)\n", name, len(argvs))
		return nil
	},
}

func init() {
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configSetADBCmd)
	configCmd.AddCommand(configAddActionCmd)
	rootCmd.AddCommand(configCmd)
}
