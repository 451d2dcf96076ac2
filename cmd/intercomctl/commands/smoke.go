package commands

import (
	"github.com/spf13/cobra"

	"github.com/agh-skylink/intercom/pkg/intercom"
	"github.com/agh-skylink/intercom/pkg/intercomcli"
)

var smokeTablet int

var smokeCmd = &cobra.Command{
	Use:   "smoke",
	Short: "Build a core from the config, push one test frame and tick it",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		core := intercom.NewCore(cfg.Channels, cfg.Tablets, cfg.SampleRate, cfg.FrameSize,
			intercom.WithLogger(intercom.DefaultLogger()))
		if err := core.SetUniformRouting(cfg.DefaultRoutingGainDB); err != nil {
			return err
		}
		if err := core.SetHeadroomDB(cfg.DefaultHeadroomDB); err != nil {
			return err
		}

		frame := make([]int16, cfg.FrameSize)
		for i := range frame {
			frame[i] = 8000
		}
		if err := core.PushTabletFramePCM16(smokeTablet, frame); err != nil {
			return err
		}
		core.Tick()

		out := make([]int16, cfg.FrameSize)
		for ch := 1; ch <= cfg.Channels; ch++ {
			if err := core.PullChannelFramePCM16(ch, out); err != nil {
				return err
			}
		}

		state := core.StateSnapshot()
		intercomcli.PrintSuccess("ticked once: pushed tablet %d, %d channels now reporting levels", smokeTablet, len(state.ChannelDB))
		for ch, db := range state.ChannelDB {
			intercomcli.PrintInfo("channel %d: %s", ch+1, intercomcli.FormatDB(db))
		}
		return nil
	},
}

func init() {
	smokeCmd.Flags().IntVar(&smokeTablet, "tablet", 1, "tablet id to push the test frame from")
}
