// Package intercom implements the real-time mixing engine and PTT tracker
// for a mission-control intercom: it routes voice between a fixed set of
// tablets and channels, applies per-pair gain, headroom and a soft limiter,
// computes RMS/dBFS metering, and tracks which tablets are currently
// transmitting on which channels.
//
// The package does no I/O of its own. Audio enters and leaves through
// push/pull frame buffers (Core.PushTabletFramePCM16,
// Core.PullChannelFramePCM16, ...);
// a caller-owned scheduler drives Core.Tick at the frame cadence. Transport,
// configuration-file parsing, structured logging backends and hardware audio
// I/O all live outside this package.
//
// Example usage:
//
//	core := intercom.NewCore(4, 16, 44100, 1024)
//	core.PushTabletFramePCM16(1, samples)
//	core.Tick()
//	out := make([]int16, core.FrameSize())
//	_ = core.PullChannelFramePCM16(1, out)
package intercom
