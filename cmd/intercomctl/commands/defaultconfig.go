package commands

import (
	"github.com/spf13/cobra"

	"github.com/agh-skylink/intercom/pkg/intercomcli"
)

var defaultConfigOutputFormat string

var defaultConfigCmd = &cobra.Command{
	Use:   "default-config",
	Short: "Print the configuration an unconfigured instance would start with",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := &intercomcli.Config{
			AppName:              appName,
			Channels:             4,
			Tablets:              16,
			SampleRate:           48000,
			FrameSize:            960,
			DefaultRoutingGainDB: -12,
			DefaultHeadroomDB:    0,
		}
		return intercomcli.Output(cfg, intercomcli.OutputOptions{
			Format: intercomcli.OutputFormat(defaultConfigOutputFormat),
		})
	},
}

func init() {
	defaultConfigCmd.Flags().StringVar(&defaultConfigOutputFormat, "format", "yaml", "output format: yaml or json")
}
