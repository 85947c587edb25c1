package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/FluidXR/adbatch/internal/actions"
	"github.com/FluidXR/adbatch/internal/adb"
	"github.com/FluidXR/adbatch/internal/batch"
	"github.com/FluidXR/adbatch/internal/config"
	"github.com/FluidXR/adbatch/internal/logging"
	"github.com/FluidXR/adbatch/internal/shells"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Version of adbatch.
const Version = "0.3.0"

var (
	configPath string
	verbose    bool
	devices    []string

	cfg *config.Config
	log *logrus.Logger
)

var rootCmd = &cobra.Command{
	Use:     "adbatch",
	Short:   "Run adb operations across a batch of Android devices",
	Version: Version,
	Long: `adbatch installs apps, moves files, takes screenshots, toggles settings and
runs shell scripts on every selected Android device, one device at a time,
by driving the adb binary. The first failing device aborts the batch.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

// setup loads the config and logger shared by every subcommand.
func setup(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	log = logging.New(cfg.LogLevel, verbose)
	if err := cfg.EnsureWorkspace(); err != nil {
		return err
	}
	log.WithField("command", cmd.Name()).Debug("call function")
	return nil
}

// requireADB returns a PersistentPreRunE that runs setup and then checks
// that the adb binary is installed.
func requireADB() func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		if err := setup(cmd, args); err != nil {
			return err
		}
		return checkDeps(adbDependency(cfg.ADBPath))
	}
}

// newBatch wires the adb client, device registry, action table and shell
// catalog from the loaded config.
func newBatch() (*batch.Batch, error) {
	client := adb.NewClient(cfg.ADBPath)
	catalog, err := shells.Load(cfg.ShellsDir(), cfg.ShellPaths())
	if err != nil {
		return nil, err
	}
	return &batch.Batch{
		ADB:      client,
		Registry: adb.NewRegistry(client, log),
		Actions:  actions.Builtin().Merge(cfg.Actions),
		Shells:   catalog,
		Log:      log,
	}, nil
}

// Execute runs the root command.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		stop()
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default: "+config.ConfigPath()+")")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringSliceVarP(&devices, "device", "d", nil, "Device serials, comma separated or repeated (default: all connected)")
}
