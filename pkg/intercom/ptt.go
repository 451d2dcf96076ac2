package intercom

import (
	"slices"
	"sync"

	"github.com/agh-skylink/intercom/pkg/buffer"
	"github.com/agh-skylink/intercom/pkg/jsontime"
)

// defaultPTTHistoryCap bounds the push-to-talk history log, per §14's Open
// Question decision: a 10,000-entry ring rather than an unbounded log.
const defaultPTTHistoryCap = 10000

// PTTAction names a push-to-talk transition recorded in history.
type PTTAction string

const (
	PTTRequested PTTAction = "requested"
	PTTReleased  PTTAction = "released"
)

// HistoryEntry is one recorded push-to-talk transition. Priority is the
// caller-supplied request priority; it is carried in history only and has no
// effect on state transitions (the tracker is a passive log of concurrent
// speakers, not an arbiter). Release entries carry Priority 0 — a release
// has no priority of its own.
type HistoryEntry struct {
	Ts       jsontime.Milli `json:"ts"`
	Tablet   int            `json:"tablet"`
	Channel  int            `json:"channel"`
	Action   PTTAction      `json:"action"`
	Priority int            `json:"priority"`
}

// PTTState tracks, per channel, the set of tablets currently keyed to talk,
// plus a capped append-only history of request/release transitions.
type PTTState struct {
	channels int
	tablets  int

	mu     sync.Mutex
	active []map[int]struct{} // active[channel-1] = set of tablet ids

	history *buffer.RingBuffer[HistoryEntry]
}

// NewPTTState creates a PTTState for the given topology.
func NewPTTState(channels, tablets int) *PTTState {
	active := make([]map[int]struct{}, channels)
	for i := range active {
		active[i] = make(map[int]struct{})
	}
	return &PTTState{
		channels: channels,
		tablets:  tablets,
		active:   active,
		history:  buffer.RingN[HistoryEntry](defaultPTTHistoryCap),
	}
}

func (p *PTTState) validChannel(c int) bool { return c >= 1 && c <= p.channels }
func (p *PTTState) validTablet(t int) bool  { return t >= 1 && t <= p.tablets }

// Request marks tablet as actively keyed on channel. priority is recorded in
// history only — it has no effect on the active set or on any other
// tablet's state, per the tracker's passive-log design. Idempotent:
// requesting an already-active tablet is a no-op beyond the history entry.
func (p *PTTState) Request(tablet, channel, priority int) error {
	if !p.validTablet(tablet) {
		return badID("tablet id out of range")
	}
	if !p.validChannel(channel) {
		return badID("channel id out of range")
	}
	p.mu.Lock()
	p.active[channel-1][tablet] = struct{}{}
	p.mu.Unlock()

	p.history.Add(HistoryEntry{
		Ts:       jsontime.NowEpochMilli(),
		Tablet:   tablet,
		Channel:  channel,
		Action:   PTTRequested,
		Priority: priority,
	})
	return nil
}

// Release clears tablet's active-talk flag on channel. Idempotent: releasing
// a tablet that was not active is a no-op beyond the history entry.
func (p *PTTState) Release(tablet, channel int) error {
	if !p.validTablet(tablet) {
		return badID("tablet id out of range")
	}
	if !p.validChannel(channel) {
		return badID("channel id out of range")
	}
	p.mu.Lock()
	delete(p.active[channel-1], tablet)
	p.mu.Unlock()

	p.history.Add(HistoryEntry{
		Ts:      jsontime.NowEpochMilli(),
		Tablet:  tablet,
		Channel: channel,
		Action:  PTTReleased,
	})
	return nil
}

// ChannelState returns the sorted ids of tablets currently keyed on channel.
func (p *PTTState) ChannelState(channel int) ([]int, error) {
	if !p.validChannel(channel) {
		return nil, badID("channel id out of range")
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	ids := make([]int, 0, len(p.active[channel-1]))
	for t := range p.active[channel-1] {
		ids = append(ids, t)
	}
	slices.Sort(ids)
	return ids, nil
}

// TabletChannels returns the sorted ids of channels on which tablet is
// currently keyed.
func (p *PTTState) TabletChannels(tablet int) ([]int, error) {
	if !p.validTablet(tablet) {
		return nil, badID("tablet id out of range")
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	var ids []int
	for c := 1; c <= p.channels; c++ {
		if _, ok := p.active[c-1][tablet]; ok {
			ids = append(ids, c)
		}
	}
	return ids, nil
}

// PTTSnapshot is an immutable view of the current PTT state.
type PTTSnapshot struct {
	ActiveByChannel map[int][]int  `json:"active_by_channel"`
	History         []HistoryEntry `json:"history"`
}

// Snapshot returns a point-in-time copy of the active-tablet sets (sorted
// per channel) and the full retained history, oldest first.
func (p *PTTState) Snapshot() *PTTSnapshot {
	p.mu.Lock()
	byChannel := make(map[int][]int, p.channels)
	for c := 1; c <= p.channels; c++ {
		set := p.active[c-1]
		if len(set) == 0 {
			continue
		}
		ids := make([]int, 0, len(set))
		for t := range set {
			ids = append(ids, t)
		}
		slices.Sort(ids)
		byChannel[c] = ids
	}
	p.mu.Unlock()

	return &PTTSnapshot{
		ActiveByChannel: byChannel,
		History:         append([]HistoryEntry(nil), p.history.Bytes()...),
	}
}
