package commands

import (
	"encoding/binary"

	"github.com/spf13/cobra"

	"github.com/agh-skylink/intercom/pkg/encoding"
	"github.com/agh-skylink/intercom/pkg/intercom"
	"github.com/agh-skylink/intercom/pkg/intercomcli"
)

var (
	dumpFrameTablet  int
	dumpFrameChannel int
)

// frameDump is the JSON/YAML record printed by dump-frame: the channel's
// last-tick PCM16 output, base64-encoded for safe embedding in either format.
type frameDump struct {
	Channel   int                     `json:"channel" yaml:"channel"`
	FrameSize int                     `json:"frame_size" yaml:"frame_size"`
	PCM16     encoding.StdBase64Data  `json:"pcm16_base64" yaml:"pcm16_base64"`
}

var dumpFrameCmd = &cobra.Command{
	Use:   "dump-frame",
	Short: "Push one test frame, tick, and dump a channel's output as base64 PCM16",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		core := intercom.NewCore(cfg.Channels, cfg.Tablets, cfg.SampleRate, cfg.FrameSize)
		if err := core.SetUniformRouting(cfg.DefaultRoutingGainDB); err != nil {
			return err
		}

		frame := make([]int16, cfg.FrameSize)
		for i := range frame {
			frame[i] = 4000
		}
		if err := core.PushTabletFramePCM16(dumpFrameTablet, frame); err != nil {
			return err
		}
		core.Tick()

		out := make([]int16, cfg.FrameSize)
		if err := core.PullChannelFramePCM16(dumpFrameChannel, out); err != nil {
			return err
		}

		raw := make([]byte, 2*len(out))
		for i, s := range out {
			binary.LittleEndian.PutUint16(raw[2*i:], uint16(s))
		}

		return intercomcli.Output(frameDump{
			Channel:   dumpFrameChannel,
			FrameSize: cfg.FrameSize,
			PCM16:     encoding.StdBase64Data(raw),
		}, intercomcli.OutputOptions{Format: intercomcli.FormatJSON})
	},
}

func init() {
	dumpFrameCmd.Flags().IntVar(&dumpFrameTablet, "tablet", 1, "tablet id to push the test frame from")
	dumpFrameCmd.Flags().IntVar(&dumpFrameChannel, "channel", 1, "channel id to dump")
	rootCmd.AddCommand(dumpFrameCmd)
}
