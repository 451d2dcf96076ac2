package intercom

import (
	"math"
	"testing"
)

func TestNewMixConfigUniformDefault(t *testing.T) {
	mc := NewMixConfig(2, 3)
	snap := mc.Snapshot()

	wantGain := float32(dBToLinear(defaultRoutingGainDB))
	for c := 0; c < 2; c++ {
		for tt := 0; tt < 3; tt++ {
			if snap.Uplink[c][tt] != wantGain {
				t.Errorf("Uplink[%d][%d] = %v, want %v", c, tt, snap.Uplink[c][tt], wantGain)
			}
		}
	}
	for tt := 0; tt < 3; tt++ {
		for c := 0; c < 2; c++ {
			if snap.Downlink[tt][c] != wantGain {
				t.Errorf("Downlink[%d][%d] = %v, want %v", tt, c, snap.Downlink[tt][c], wantGain)
			}
		}
	}
	if snap.HeadroomDB != 0 {
		t.Errorf("HeadroomDB = %v, want 0", snap.HeadroomDB)
	}
}

func TestMergeUplinkPartial(t *testing.T) {
	mc := NewMixConfig(2, 2)
	before := mc.Snapshot()

	if err := mc.MergeUplink(GainUpdate{1: {2: 0.5}}); err != nil {
		t.Fatalf("MergeUplink: %v", err)
	}
	after := mc.Snapshot()

	if after.Uplink[0][1] != 0.5 {
		t.Errorf("Uplink[0][1] = %v, want 0.5", after.Uplink[0][1])
	}
	if after.Uplink[0][0] != before.Uplink[0][0] {
		t.Errorf("unmerged entry Uplink[0][0] changed: %v -> %v", before.Uplink[0][0], after.Uplink[0][0])
	}
	if after.Uplink[1][0] != before.Uplink[1][0] || after.Uplink[1][1] != before.Uplink[1][1] {
		t.Errorf("unmerged channel 2 row changed")
	}
}

func TestMergeUplinkRejectsBadIDWithoutMutating(t *testing.T) {
	mc := NewMixConfig(2, 2)
	before := mc.Snapshot()

	err := mc.MergeUplink(GainUpdate{1: {5: 0.5}})
	if err == nil {
		t.Fatal("MergeUplink with out-of-range tablet id: want error, got nil")
	}
	ve, ok := err.(*ValidationError)
	if !ok || ve.Kind != KindBadID {
		t.Errorf("MergeUplink error = %v, want BadId", err)
	}

	after := mc.Snapshot()
	for c := range after.Uplink {
		for tt := range after.Uplink[c] {
			if after.Uplink[c][tt] != before.Uplink[c][tt] {
				t.Errorf("config mutated despite rejected merge at [%d][%d]", c, tt)
			}
		}
	}
}

func TestMergeUplinkRejectsBadGain(t *testing.T) {
	mc := NewMixConfig(1, 1)
	tests := []struct {
		name string
		gain float32
	}{
		{"negative", -0.1},
		{"nan", float32(math.NaN())},
		{"inf", float32(math.Inf(1))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := mc.MergeUplink(GainUpdate{1: {1: tt.gain}})
			ve, ok := err.(*ValidationError)
			if !ok || ve.Kind != KindBadGain {
				t.Errorf("MergeUplink(%v) error = %v, want BadGain", tt.gain, err)
			}
		})
	}
}

func TestSetHeadroomDBRange(t *testing.T) {
	mc := NewMixConfig(1, 1)
	if err := mc.SetHeadroomDB(12); err != nil {
		t.Fatalf("SetHeadroomDB(12): %v", err)
	}
	if got := mc.HeadroomDB(); got != 12 {
		t.Errorf("HeadroomDB() = %v, want 12", got)
	}

	for _, bad := range []float64{-1, 60.1, math.NaN(), math.Inf(1)} {
		err := mc.SetHeadroomDB(bad)
		ve, ok := err.(*ValidationError)
		if !ok || ve.Kind != KindBadHeadroom {
			t.Errorf("SetHeadroomDB(%v) error = %v, want BadHeadroom", bad, err)
		}
	}
}

func TestSetTabletMuteOutOfRange(t *testing.T) {
	mc := NewMixConfig(1, 2)
	if err := mc.SetTabletMute(0, true); err == nil {
		t.Error("SetTabletMute(0, ...): want error for id 0")
	}
	if err := mc.SetTabletMute(3, true); err == nil {
		t.Error("SetTabletMute(3, ...): want error for id beyond tablets")
	}
	if err := mc.SetTabletMute(2, true); err != nil {
		t.Errorf("SetTabletMute(2, true): %v", err)
	}
	if !mc.Snapshot().TabletMute[1] {
		t.Error("tablet 2 not marked muted after SetTabletMute(2, true)")
	}
}

func TestSetUniformRoutingClearsMutes(t *testing.T) {
	mc := NewMixConfig(2, 2)
	if err := mc.SetTabletMute(1, true); err != nil {
		t.Fatal(err)
	}
	if err := mc.SetChannelMute(1, true); err != nil {
		t.Fatal(err)
	}
	if err := mc.SetUniformRouting(-6); err != nil {
		t.Fatalf("SetUniformRouting: %v", err)
	}
	snap := mc.Snapshot()
	for _, m := range snap.TabletMute {
		if m {
			t.Error("tablet mute not cleared by SetUniformRouting")
		}
	}
	for _, m := range snap.ChannelMute {
		if m {
			t.Error("channel mute not cleared by SetUniformRouting")
		}
	}
}
