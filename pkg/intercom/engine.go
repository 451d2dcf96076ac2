package intercom

import "math"

// softLimit applies a tanh soft-limiter: identity near zero, asymptotically
// approaching ±1 as the input grows, so a hot sum saturates smoothly rather
// than hard-clipping.
func softLimit(x float32) float32 {
	return float32(math.Tanh(float64(x)))
}

// tickResult holds one engine tick's mixed outputs and metering inputs.
type tickResult struct {
	channelOut [][]float32 // [channels][frameSize]
	tabletOut  [][]float32 // [tablets][frameSize], monitor feed via downlink
	tabletRMS  []float64   // pre-mix, from tabletIn directly
	channelRMS []float64   // post-limiter, from channelOut
}

// tick runs one mixing cycle:
//
//  1. Uplink sum: for each unmuted channel, sum every unmuted tablet's input
//     weighted by uplink[c][t], add the channel's own direct input
//     (channelIn[c]), attenuate by headroom and run through the soft
//     limiter. Muted channels output silence.
//  2. Downlink sum: for each unmuted tablet, sum every channel's post-limiter
//     output weighted by downlink[t][c]. No further limiting is applied —
//     the channel-side limiter already bounds channelOut, and the result is
//     only clamped when converted back to PCM16.
//
// tabletIn[t] and channelIn[c] must be exactly frameSize samples for every id
// in range; the caller (core) zero-fills any stream that did not push a
// frame this cycle.
func tick(snap *Snapshot, tabletIn [][]float32, channelIn [][]float32, frameSize int) *tickResult {
	res := &tickResult{
		channelOut: make([][]float32, snap.Channels),
		tabletOut:  make([][]float32, snap.Tablets),
		tabletRMS:  make([]float64, snap.Tablets),
		channelRMS: make([]float64, snap.Channels),
	}

	for t := 0; t < snap.Tablets; t++ {
		res.tabletRMS[t] = rms(tabletIn[t])
	}

	for c := 0; c < snap.Channels; c++ {
		acc := make([]float32, frameSize)
		if !snap.ChannelMute[c] {
			for t := 0; t < snap.Tablets; t++ {
				if snap.TabletMute[t] {
					continue
				}
				g := snap.Uplink[c][t]
				if g == 0 {
					continue
				}
				in := tabletIn[t]
				for i := 0; i < frameSize; i++ {
					acc[i] += g * in[i]
				}
			}
			direct := channelIn[c]
			for i := 0; i < frameSize; i++ {
				acc[i] += direct[i]
			}
		}
		for i, v := range acc {
			acc[i] = softLimit(v * snap.HeadroomLinear)
		}
		res.channelOut[c] = acc
		res.channelRMS[c] = rms(acc)
	}

	for t := 0; t < snap.Tablets; t++ {
		acc := make([]float32, frameSize)
		if !snap.TabletMute[t] {
			for c := 0; c < snap.Channels; c++ {
				if snap.ChannelMute[c] {
					continue
				}
				g := snap.Downlink[t][c]
				if g == 0 {
					continue
				}
				out := res.channelOut[c]
				for i := 0; i < frameSize; i++ {
					acc[i] += g * out[i]
				}
			}
		}
		res.tabletOut[t] = acc
	}

	return res
}
