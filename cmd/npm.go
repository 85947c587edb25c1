package cmd

import (
	"github.com/FluidXR/adbatch/internal/npm"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var npmBuildTest bool

// requireNPM returns a PersistentPreRunE that runs setup and checks for npm.
func requireNPM() func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		if err := setup(cmd, args); err != nil {
			return err
		}
		return checkDeps(npmDependency(cfg.NPMPath))
	}
}

var npmInstallCmd = &cobra.Command{
	Use:               "npm-install <project-dir>",
	Short:             "Run npm install in a project directory",
	Args:              cobra.ExactArgs(1),
	PersistentPreRunE: requireNPM(),
	RunE: func(cmd *cobra.Command, args []string) error {
		log.WithField("dir", args[0]).Info("npm install")
		return npm.NewClient(cfg.NPMPath).Install(cmd.Context(), args[0])
	},
}

var npmBuildCmd = &cobra.Command{
	Use:               "npm-build <project-dir>",
	Short:             "Run npm run build (or build:test) in a project directory",
	Args:              cobra.ExactArgs(1),
	PersistentPreRunE: requireNPM(),
	RunE: func(cmd *cobra.Command, args []string) error {
		log.WithFields(logrus.Fields{"dir": args[0], "test": npmBuildTest}).Info("npm build")
		return npm.NewClient(cfg.NPMPath).Build(cmd.Context(), args[0], npmBuildTest)
	},
}

func init() {
	npmBuildCmd.Flags().BoolVar(&npmBuildTest, "test", false, "Run the build:test script")
	rootCmd.AddCommand(npmInstallCmd)
	rootCmd.AddCommand(npmBuildCmd)
}
