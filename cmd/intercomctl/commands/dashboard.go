package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agh-skylink/intercom/pkg/intercom"
	"github.com/agh-skylink/intercom/pkg/intercomcli"
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Render a one-shot snapshot dashboard of channel/tablet levels and PTT state",
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
		if err := core.RequestPTT(1, 1, 0); err != nil {
			return err
		}
		core.Tick()

		state := core.StateSnapshot()
		styles := intercomcli.NewStyles(intercomcli.DefaultTheme)
		frameMs := 1000 * cfg.FrameSize / cfg.SampleRate

		frame := intercomcli.Frame{
			Styles: styles,
			Title:  fmt.Sprintf("intercomctl · %s · %d Hz, %s/tick", appName, cfg.SampleRate, intercomcli.FormatDuration(frameMs)),
			Status: "snapshot",
			Sections: []intercomcli.Section{
				{Label: "Channels", Content: func() []string { return channelLines(styles, state) }},
				{Label: "Tablets", Content: func() []string { return tabletLines(styles, state) }},
				{Label: "Push-to-talk", Content: func() []string { return pttLines(state) }},
			},
			Help: "one-shot snapshot · run again after pushing frames to refresh",
		}

		fmt.Println(frame.Render(72, 24))
		return nil
	},
}

func channelLines(styles intercomcli.Styles, state *intercom.State) []string {
	lines := make([]string, len(state.ChannelDB))
	for i, db := range state.ChannelDB {
		lines[i] = fmt.Sprintf("ch %2d  %s", i+1, intercomcli.VUBar(styles, db, 24))
	}
	return lines
}

func tabletLines(styles intercomcli.Styles, state *intercom.State) []string {
	lines := make([]string, len(state.TabletDB))
	for i, db := range state.TabletDB {
		lines[i] = fmt.Sprintf("tablet %2d  %s", i+1, intercomcli.VUBar(styles, db, 24))
	}
	return lines
}

func pttLines(state *intercom.State) []string {
	if len(state.PTT.ActiveByChannel) == 0 {
		return []string{"(no tablet currently keyed)"}
	}
	var lines []string
	for ch, tablets := range state.PTT.ActiveByChannel {
		lines = append(lines, fmt.Sprintf("channel %d: tablets %v", ch, tablets))
	}
	return lines
}
