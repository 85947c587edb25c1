package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/FluidXR/adbatch/internal/adb"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var devicesTable bool

var devicesCmd = &cobra.Command{
	Use:               "get-devices",
	Aliases:           []string{"get_devices", "devices"},
	Short:             "List devices and whether they are connected",
	PersistentPreRunE: requireADB(),
	RunE: func(cmd *cobra.Command, args []string) error {
		client := adb.NewClient(cfg.ADBPath)
		registry := adb.NewRegistry(client, log)
		if err := registry.Refresh(cmd.Context()); err != nil {
			return err
		}
		status := registry.Status()

		if !devicesTable {
			connected := make(map[string]bool, len(status))
			for serial, d := range status {
				connected[serial] = d.Connected()
			}
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "    ")
			return enc.Encode(connected)
		}

		if len(status) == 0 {
			fmt.Println("No devices connected.")
			return nil
		}
		serials := make([]string, 0, len(status))
		for s := range status {
			serials = append(serials, s)
		}
		sort.Strings(serials)

		ok := color.New(color.FgGreen).SprintFunc()
		bad := color.New(color.FgRed).SprintFunc()
		for _, s := range serials {
			d := status[s]
			state := ok(d.State)
			if !d.Connected() {
				state = bad(d.State)
			}
			fmt.Printf("%-22s %-14s [%s] [%s]\n", d.Serial, d.Model, d.ConnType, state)
		}
		return nil
	},
}

func init() {
	devicesCmd.Flags().BoolVar(&devicesTable, "table", false, "Print a table instead of JSON")
	rootCmd.AddCommand(devicesCmd)
}
