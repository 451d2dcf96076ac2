package intercom

import "github.com/agh-skylink/intercom/pkg/jsontime"

// Health is a cheap, lock-light liveness record suitable for polling at a
// health-check cadence.
type Health struct {
	Status      string         `json:"status"`
	Ts          jsontime.Milli `json:"ts"`
	NumChannels int            `json:"num_channels"`
	NumTablets  int            `json:"num_tablets"`
	Fs          int            `json:"fs"`
	FrameSize   int            `json:"frame_size"`
	Config      *Snapshot      `json:"config"`
}

// State is a fuller point-in-time record: metering plus the full routing and
// push-to-talk state, intended for dashboards rather than tight polling
// loops.
type State struct {
	Ts       jsontime.Milli `json:"ts"`
	TabletDB []float64      `json:"tablet_db"`
	ChannelDB []float64     `json:"channel_db"`
	Config   *Snapshot      `json:"config"`
	PTT      *PTTSnapshot   `json:"ptt"`
}
