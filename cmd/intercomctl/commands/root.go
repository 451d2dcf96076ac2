// Package commands implements the intercomctl subcommands.
package commands

import (
	"github.com/spf13/cobra"

	"github.com/agh-skylink/intercom/pkg/intercomcli"
)

var (
	appName    string
	configPath string
)

var rootCmd = &cobra.Command{
	Use:   "intercomctl",
	Short: "Diagnostics and control for an intercom mixing core",
	Long: `intercomctl loads a topology configuration, constructs an in-process
mixing core from it, and runs one-shot diagnostics: validation, a smoke
tick, routing matrix updates, and a snapshot dashboard.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&appName, "app", "tower", "instance name, selects ~/.intercom/<app>/config.yaml")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "explicit config file path, overrides --app")

	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(defaultConfigCmd)
	rootCmd.AddCommand(smokeCmd)
	rootCmd.AddCommand(applyMatrixCmd)
	rootCmd.AddCommand(dashboardCmd)
}

// Execute runs the intercomctl root command.
func Execute() error {
	return rootCmd.Execute()
}

func loadConfig() (*intercomcli.Config, error) {
	return intercomcli.LoadConfigWithPath(appName, configPath)
}
