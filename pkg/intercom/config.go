package intercom

import (
	"math"
	"sync"
)

// defaultRoutingGainDB is the default uplink/downlink gain applied across
// all (channel, tablet) pairs when a MixConfig is created or reset to
// uniform routing, per §3's lifecycle description.
const defaultRoutingGainDB = -12.0

// MaxHeadroomDB is the upper bound on headroom_db, per §3's invariant
// headroom_db ∈ [0, 60].
const MaxHeadroomDB = 60.0

// MixConfig holds the uplink/downlink routing matrices, mute flags and
// headroom for a fixed (channels, tablets) topology. All mutators validate
// before mutating: on any error the configuration is left unchanged.
//
// Zero-value MixConfig is not usable; construct with NewMixConfig.
type MixConfig struct {
	channels int
	tablets  int

	mu          sync.Mutex
	uplink      [][]float32 // [c][t], c in [0,channels), t in [0,tablets)
	downlink    [][]float32 // [t][c]
	tabletMute  []bool
	channelMute []bool

	headroom atomicFloat32 // dB, live-applied without taking mu
}

// NewMixConfig creates a MixConfig for the given topology, initialized to
// uniform routing at defaultRoutingGainDB with no mutes and zero headroom.
func NewMixConfig(channels, tablets int) *MixConfig {
	mc := &MixConfig{
		channels: channels,
		tablets:  tablets,
	}
	mc.resetMatricesLocked(defaultRoutingGainDB)
	mc.headroom = newAtomicFloat32(0)
	return mc
}

func dBToLinear(db float64) float64 {
	return math.Pow(10, db/20)
}

func (mc *MixConfig) resetMatricesLocked(gainDB float64) {
	g := float32(dBToLinear(gainDB))
	mc.uplink = make([][]float32, mc.channels)
	for c := range mc.uplink {
		mc.uplink[c] = make([]float32, mc.tablets)
		for t := range mc.uplink[c] {
			mc.uplink[c][t] = g
		}
	}
	mc.downlink = make([][]float32, mc.tablets)
	for t := range mc.downlink {
		mc.downlink[t] = make([]float32, mc.channels)
		for c := range mc.downlink[t] {
			mc.downlink[t][c] = g
		}
	}
	mc.tabletMute = make([]bool, mc.tablets)
	mc.channelMute = make([]bool, mc.channels)
}

func (mc *MixConfig) validChannel(c int) bool {
	return c >= 1 && c <= mc.channels
}

func (mc *MixConfig) validTablet(t int) bool {
	return t >= 1 && t <= mc.tablets
}

func validGain(g float64) bool {
	return !math.IsNaN(g) && !math.IsInf(g, 0) && g >= 0
}

// SetUniformRouting populates every (c,t) uplink and (t,c) downlink entry
// with the linear equivalent of gainDB and clears all mutes.
func (mc *MixConfig) SetUniformRouting(gainDB float64) error {
	if math.IsNaN(gainDB) || math.IsInf(gainDB, 0) {
		return badGain("uniform routing gain is NaN or infinite")
	}
	mc.mu.Lock()
	defer mc.mu.Unlock()
	mc.resetMatricesLocked(gainDB)
	return nil
}

// GainUpdate is a sparse (channel-or-tablet -> peer -> gain) partial update.
// A zero gain deletes the entry (equivalent to absence, per §3).
type GainUpdate map[int]map[int]float32

// MergeUplink applies a partial merge into the uplink matrix: entries named
// in partial are set (0 deletes), entries not named keep their current
// value. Validation runs over the whole update before any mutation.
func (mc *MixConfig) MergeUplink(partial GainUpdate) error {
	mc.mu.Lock()
	defer mc.mu.Unlock()
	for c, row := range partial {
		if !mc.validChannel(c) {
			return badID("uplink channel id out of range")
		}
		for t, g := range row {
			if !mc.validTablet(t) {
				return badID("uplink tablet id out of range")
			}
			if !validGain(float64(g)) {
				return badGain("uplink gain must be finite and non-negative")
			}
		}
	}
	for c, row := range partial {
		for t, g := range row {
			mc.uplink[c-1][t-1] = g
		}
	}
	return nil
}

// MergeDownlink applies a partial merge into the downlink matrix, symmetric
// to MergeUplink.
func (mc *MixConfig) MergeDownlink(partial GainUpdate) error {
	mc.mu.Lock()
	defer mc.mu.Unlock()
	for t, row := range partial {
		if !mc.validTablet(t) {
			return badID("downlink tablet id out of range")
		}
		for c, g := range row {
			if !mc.validChannel(c) {
				return badID("downlink channel id out of range")
			}
			if !validGain(float64(g)) {
				return badGain("downlink gain must be finite and non-negative")
			}
		}
	}
	for t, row := range partial {
		for c, g := range row {
			mc.downlink[t-1][c-1] = g
		}
	}
	return nil
}

// SetTabletMute sets or clears the mute flag for a tablet.
func (mc *MixConfig) SetTabletMute(t int, mute bool) error {
	mc.mu.Lock()
	defer mc.mu.Unlock()
	if !mc.validTablet(t) {
		return badID("tablet id out of range")
	}
	mc.tabletMute[t-1] = mute
	return nil
}

// SetChannelMute sets or clears the mute flag for a channel.
func (mc *MixConfig) SetChannelMute(c int, mute bool) error {
	mc.mu.Lock()
	defer mc.mu.Unlock()
	if !mc.validChannel(c) {
		return badID("channel id out of range")
	}
	mc.channelMute[c-1] = mute
	return nil
}

// SetHeadroomDB sets the pre-limiter headroom attenuation. Live-applied: the
// very next tick observes it, with no lock contention against the routing
// matrices.
func (mc *MixConfig) SetHeadroomDB(db float64) error {
	if math.IsNaN(db) || math.IsInf(db, 0) || db < 0 || db > MaxHeadroomDB {
		return badHeadroom("headroom_db must be in [0, 60]")
	}
	mc.headroom.Store(float32(db))
	return nil
}

// HeadroomDB returns the current headroom in dB.
func (mc *MixConfig) HeadroomDB() float64 {
	return float64(mc.headroom.Load())
}

// Snapshot is an immutable, point-in-time view of a MixConfig usable by one
// engine Tick without further locking.
type Snapshot struct {
	Channels int
	Tablets  int

	Uplink      [][]float32
	Downlink    [][]float32
	TabletMute  []bool
	ChannelMute []bool

	HeadroomLinear float32
	HeadroomDB     float32
}

// Snapshot copies the current matrices and mutes under the config's lock and
// releases it immediately, bounding lock hold-time to bytes·C·T per §9.
func (mc *MixConfig) Snapshot() *Snapshot {
	mc.mu.Lock()
	defer mc.mu.Unlock()

	s := &Snapshot{
		Channels:    mc.channels,
		Tablets:     mc.tablets,
		Uplink:      make([][]float32, mc.channels),
		Downlink:    make([][]float32, mc.tablets),
		TabletMute:  append([]bool(nil), mc.tabletMute...),
		ChannelMute: append([]bool(nil), mc.channelMute...),
	}
	for c := range mc.uplink {
		s.Uplink[c] = append([]float32(nil), mc.uplink[c]...)
	}
	for t := range mc.downlink {
		s.Downlink[t] = append([]float32(nil), mc.downlink[t]...)
	}
	headroomDB := mc.headroom.Load()
	s.HeadroomDB = headroomDB
	s.HeadroomLinear = float32(dBToLinear(-float64(headroomDB)))
	return s
}
