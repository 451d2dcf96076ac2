package intercom

import (
	"sync"

	"github.com/agh-skylink/intercom/pkg/jsontime"
)

// Option configures a Core at construction time.
type Option func(*Core)

// WithLogger sets the Logger the core emits events to. Without it, or with a
// nil l, the core uses a no-op logger.
func WithLogger(l Logger) Option {
	return func(c *Core) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithVUSmoothing sets the one-pole smoothing factor applied to metering
// across ticks. alpha == 1.0 (the default) reports each tick's instantaneous
// value with no smoothing, per §14's Open Question decision.
func WithVUSmoothing(alpha float64) Option {
	return func(c *Core) { c.vuAlpha = alpha }
}

// Core is the control facade over one fixed-topology mixing engine: a
// (channels, tablets) grid running at a fixed sample rate and frame size.
// It owns no I/O — callers push PCM16 frames in, tick the engine, and pull
// PCM16 frames out.
type Core struct {
	channels  int
	tablets   int
	fs        int
	frameSize int
	vuAlpha   float64
	logger    Logger

	config *MixConfig
	ptt    *PTTState

	bufMu         sync.Mutex
	tabletIn      [][]float32 // [tablets][frameSize], last pushed, zero if none
	pushed        []bool      // whether tabletIn[t] was pushed since the last tick
	channelIn     [][]float32 // [channels][frameSize], direct channel input, zero if none
	channelPushed []bool      // whether channelIn[c] was pushed since the last tick
	channelOut    [][]float32 // [channels][frameSize], last tick's output
	tabletOut     [][]float32 // [tablets][frameSize], last tick's monitor feed

	vuMu      sync.Mutex
	tabletVU  []*vuMeter
	channelVU []*vuMeter
}

// NewCore constructs a Core for a fixed topology. fs and frameSize are
// construction-time constants: later config reloads that disagree with them
// are rejected with ConfigMismatch, not silently honored.
func NewCore(channels, tablets, fs, frameSize int, opts ...Option) *Core {
	c := &Core{
		channels:  channels,
		tablets:   tablets,
		fs:        fs,
		frameSize: frameSize,
		vuAlpha:   1.0,
		logger:    noopLogger{},
		config:    NewMixConfig(channels, tablets),
		ptt:       NewPTTState(channels, tablets),
	}
	for _, opt := range opts {
		opt(c)
	}

	c.tabletIn = make([][]float32, tablets)
	c.pushed = make([]bool, tablets)
	c.channelIn = make([][]float32, channels)
	c.channelPushed = make([]bool, channels)
	c.channelOut = make([][]float32, channels)
	c.tabletOut = make([][]float32, tablets)
	for t := 0; t < tablets; t++ {
		c.tabletIn[t] = make([]float32, frameSize)
	}
	for c2 := 0; c2 < channels; c2++ {
		c.channelIn[c2] = make([]float32, frameSize)
		c.channelOut[c2] = make([]float32, frameSize)
	}
	for t := 0; t < tablets; t++ {
		c.tabletOut[t] = make([]float32, frameSize)
	}

	c.tabletVU = make([]*vuMeter, tablets)
	for i := range c.tabletVU {
		c.tabletVU[i] = newVUMeter(c.vuAlpha)
	}
	c.channelVU = make([]*vuMeter, channels)
	for i := range c.channelVU {
		c.channelVU[i] = newVUMeter(c.vuAlpha)
	}

	return c
}

func (c *Core) validChannel(ch int) bool { return ch >= 1 && ch <= c.channels }
func (c *Core) validTablet(t int) bool   { return t >= 1 && t <= c.tablets }

// PushTabletFramePCM16 stores tablet t's latest input frame, converting PCM16
// to internal float32. samples must be exactly FrameSize() long.
func (c *Core) PushTabletFramePCM16(tablet int, samples []int16) error {
	if !c.validTablet(tablet) {
		return badID("tablet id out of range")
	}
	if len(samples) != c.frameSize {
		return badFrameLength("pushed frame length does not match frame_size")
	}
	c.bufMu.Lock()
	fromPCM16(c.tabletIn[tablet-1], samples)
	c.pushed[tablet-1] = true
	c.bufMu.Unlock()
	return nil
}

// PushChannelFramePCM16 stores channel c's latest direct input frame (e.g.
// from a dispatcher console feeding a channel bus directly, bypassing tablet
// routing), converting PCM16 to internal float32. samples must be exactly
// FrameSize() long. This buffer is distinct from the channel's mixed output
// and is summed into it on the next Tick.
func (c *Core) PushChannelFramePCM16(channel int, samples []int16) error {
	if !c.validChannel(channel) {
		return badID("channel id out of range")
	}
	if len(samples) != c.frameSize {
		return badFrameLength("pushed frame length does not match frame_size")
	}
	c.bufMu.Lock()
	fromPCM16(c.channelIn[channel-1], samples)
	c.channelPushed[channel-1] = true
	c.bufMu.Unlock()
	return nil
}

// Tick runs one mixing cycle: it snapshots the routing config, mixes every
// tablet that pushed a frame (silence for any that didn't), and stores the
// resulting channel and tablet monitor buffers for the next Pull calls. It
// also updates per-tablet and per-channel VU meters.
func (c *Core) Tick() {
	snap := c.config.Snapshot()

	c.bufMu.Lock()
	in := make([][]float32, c.tablets)
	for t := 0; t < c.tablets; t++ {
		in[t] = append([]float32(nil), c.tabletIn[t]...)
		if !c.pushed[t] {
			for i := range in[t] {
				in[t][i] = 0
			}
		}
		c.pushed[t] = false
	}
	chIn := make([][]float32, c.channels)
	for ch := 0; ch < c.channels; ch++ {
		chIn[ch] = append([]float32(nil), c.channelIn[ch]...)
		if !c.channelPushed[ch] {
			for i := range chIn[ch] {
				chIn[ch][i] = 0
			}
		}
		c.channelPushed[ch] = false
	}
	c.bufMu.Unlock()

	res := tick(snap, in, chIn, c.frameSize)

	c.bufMu.Lock()
	c.channelOut = res.channelOut
	c.tabletOut = res.tabletOut
	c.bufMu.Unlock()

	c.vuMu.Lock()
	for t := 0; t < c.tablets; t++ {
		c.tabletVU[t].Update(in[t])
	}
	for ch := 0; ch < c.channels; ch++ {
		c.channelVU[ch].Update(res.channelOut[ch])
	}
	c.vuMu.Unlock()
}

// PullChannelFramePCM16 copies channel ch's last-tick output into dst as
// PCM16. dst must be exactly FrameSize() long.
func (c *Core) PullChannelFramePCM16(channel int, dst []int16) error {
	if !c.validChannel(channel) {
		return badID("channel id out of range")
	}
	if len(dst) != c.frameSize {
		return badFrameLength("pull destination length does not match frame_size")
	}
	c.bufMu.Lock()
	toPCM16(dst, c.channelOut[channel-1])
	c.bufMu.Unlock()
	return nil
}

// PullTabletFramePCM16 copies tablet t's last-tick monitor (downlink) output
// into dst as PCM16. dst must be exactly FrameSize() long.
func (c *Core) PullTabletFramePCM16(tablet int, dst []int16) error {
	if !c.validTablet(tablet) {
		return badID("tablet id out of range")
	}
	if len(dst) != c.frameSize {
		return badFrameLength("pull destination length does not match frame_size")
	}
	c.bufMu.Lock()
	toPCM16(dst, c.tabletOut[tablet-1])
	c.bufMu.Unlock()
	return nil
}

// --- config mutators, delegated to the embedded MixConfig ---

func (c *Core) SetUniformRouting(gainDB float64) error      { return c.config.SetUniformRouting(gainDB) }
func (c *Core) MergeUplink(partial GainUpdate) error        { return c.config.MergeUplink(partial) }
func (c *Core) MergeDownlink(partial GainUpdate) error      { return c.config.MergeDownlink(partial) }
func (c *Core) SetTabletMute(tablet int, mute bool) error   { return c.config.SetTabletMute(tablet, mute) }
func (c *Core) SetChannelMute(channel int, mute bool) error { return c.config.SetChannelMute(channel, mute) }
func (c *Core) SetHeadroomDB(db float64) error              { return c.config.SetHeadroomDB(db) }
func (c *Core) HeadroomDB() float64                         { return c.config.HeadroomDB() }

// CheckFrameParams rejects a reload whose fs/frame_size disagree with this
// Core's construction-time constants, per §7's ConfigMismatch contract.
func (c *Core) CheckFrameParams(fs, frameSize int) error {
	if fs != c.fs || frameSize != c.frameSize {
		c.logger.Warn("config mismatch: got fs=%d frame_size=%d, running core is fs=%d frame_size=%d", fs, frameSize, c.fs, c.frameSize)
		return configMismatch("fs/frame_size do not match the running core")
	}
	return nil
}

// --- push-to-talk mutators/queries, delegated to the embedded PTTState ---

func (c *Core) RequestPTT(tablet, channel, priority int) error {
	if err := c.ptt.Request(tablet, channel, priority); err != nil {
		return err
	}
	c.logger.Debug("ptt request: tablet=%d channel=%d priority=%d", tablet, channel, priority)
	return nil
}

func (c *Core) ReleasePTT(tablet, channel int) error {
	if err := c.ptt.Release(tablet, channel); err != nil {
		return err
	}
	c.logger.Debug("ptt release: tablet=%d channel=%d", tablet, channel)
	return nil
}

func (c *Core) ChannelPTTState(channel int) ([]int, error) { return c.ptt.ChannelState(channel) }
func (c *Core) TabletPTTChannels(tablet int) ([]int, error) {
	return c.ptt.TabletChannels(tablet)
}

// Channels, Tablets, Fs and FrameSize expose the fixed topology.
func (c *Core) Channels() int  { return c.channels }
func (c *Core) Tablets() int   { return c.tablets }
func (c *Core) Fs() int        { return c.fs }
func (c *Core) FrameSize() int { return c.frameSize }

// HealthSnapshot returns a cheap liveness record.
func (c *Core) HealthSnapshot() *Health {
	return &Health{
		Status:      "ok",
		Ts:          jsontime.NowEpochMilli(),
		NumChannels: c.channels,
		NumTablets:  c.tablets,
		Fs:          c.fs,
		FrameSize:   c.frameSize,
		Config:      c.config.Snapshot(),
	}
}

// StateSnapshot returns a fuller record including metering, routing and
// push-to-talk state.
func (c *Core) StateSnapshot() *State {
	c.vuMu.Lock()
	tabletDB := make([]float64, c.tablets)
	for i, m := range c.tabletVU {
		tabletDB[i] = m.Value()
	}
	channelDB := make([]float64, c.channels)
	for i, m := range c.channelVU {
		channelDB[i] = m.Value()
	}
	c.vuMu.Unlock()

	return &State{
		Ts:        jsontime.NowEpochMilli(),
		TabletDB:  tabletDB,
		ChannelDB: channelDB,
		Config:    c.config.Snapshot(),
		PTT:       c.ptt.Snapshot(),
	}
}
