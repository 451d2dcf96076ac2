package commands

import (
	"github.com/spf13/cobra"

	"github.com/agh-skylink/intercom/pkg/intercomcli"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Load and validate the topology configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if err := cfg.Validate(); err != nil {
			return err
		}
		intercomcli.PrintSuccess("config at %s is valid: %d channels, %d tablets, %d Hz, frame_size %d",
			cfg.Path(), cfg.Channels, cfg.Tablets, cfg.SampleRate, cfg.FrameSize)
		return nil
	},
}
