package intercom

import (
	"reflect"
	"testing"
)

func TestPTTRequestAndChannelState(t *testing.T) {
	p := NewPTTState(2, 4)

	if err := p.Request(3, 1, 0); err != nil {
		t.Fatalf("Request: %v", err)
	}
	if err := p.Request(1, 1, 0); err != nil {
		t.Fatalf("Request: %v", err)
	}

	got, err := p.ChannelState(1)
	if err != nil {
		t.Fatalf("ChannelState: %v", err)
	}
	want := []int{1, 3}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ChannelState(1) = %v, want %v (sorted)", got, want)
	}

	got2, err := p.ChannelState(2)
	if err != nil {
		t.Fatalf("ChannelState: %v", err)
	}
	if len(got2) != 0 {
		t.Errorf("ChannelState(2) = %v, want empty", got2)
	}
}

func TestPTTReleaseIsIdempotent(t *testing.T) {
	p := NewPTTState(1, 1)
	if err := p.Release(1, 1); err != nil {
		t.Fatalf("Release on never-requested tablet: %v", err)
	}
	if err := p.Request(1, 1, 0); err != nil {
		t.Fatal(err)
	}
	if err := p.Release(1, 1); err != nil {
		t.Fatal(err)
	}
	if err := p.Release(1, 1); err != nil {
		t.Fatalf("second Release: %v", err)
	}
	got, _ := p.ChannelState(1)
	if len(got) != 0 {
		t.Errorf("ChannelState(1) after release = %v, want empty", got)
	}
}

func TestPTTOutOfRangeIDs(t *testing.T) {
	p := NewPTTState(2, 2)
	if err := p.Request(3, 1, 0); err == nil {
		t.Error("Request with out-of-range tablet: want error")
	}
	if err := p.Request(1, 3, 0); err == nil {
		t.Error("Request with out-of-range channel: want error")
	}
	if _, err := p.ChannelState(0); err == nil {
		t.Error("ChannelState(0): want error")
	}
}

func TestPTTTabletChannels(t *testing.T) {
	p := NewPTTState(3, 1)
	if err := p.Request(1, 1, 0); err != nil {
		t.Fatal(err)
	}
	if err := p.Request(1, 3, 0); err != nil {
		t.Fatal(err)
	}
	got, err := p.TabletChannels(1)
	if err != nil {
		t.Fatalf("TabletChannels: %v", err)
	}
	want := []int{1, 3}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("TabletChannels(1) = %v, want %v", got, want)
	}
}

func TestPTTSnapshotHistoryOrder(t *testing.T) {
	p := NewPTTState(1, 1)
	if err := p.Request(1, 1, 0); err != nil {
		t.Fatal(err)
	}
	if err := p.Release(1, 1); err != nil {
		t.Fatal(err)
	}
	if err := p.Request(1, 1, 0); err != nil {
		t.Fatal(err)
	}

	snap := p.Snapshot()
	if len(snap.History) != 3 {
		t.Fatalf("len(History) = %d, want 3", len(snap.History))
	}
	wantActions := []PTTAction{PTTRequested, PTTReleased, PTTRequested}
	for i, e := range snap.History {
		if e.Action != wantActions[i] {
			t.Errorf("History[%d].Action = %v, want %v", i, e.Action, wantActions[i])
		}
	}
	if got := snap.ActiveByChannel[1]; !reflect.DeepEqual(got, []int{1}) {
		t.Errorf("ActiveByChannel[1] = %v, want [1]", got)
	}
}

func TestPTTPriorityRecordedButInert(t *testing.T) {
	p := NewPTTState(1, 2)
	if err := p.Request(1, 1, 9); err != nil {
		t.Fatal(err)
	}
	// a lower-priority request from another tablet still joins the active
	// set unconditionally — priority has no effect on state transitions.
	if err := p.Request(2, 1, 1); err != nil {
		t.Fatal(err)
	}
	if err := p.Release(1, 1); err != nil {
		t.Fatal(err)
	}

	got, err := p.ChannelState(1)
	if err != nil {
		t.Fatal(err)
	}
	if want := []int{2}; !reflect.DeepEqual(got, want) {
		t.Errorf("ChannelState(1) = %v, want %v", got, want)
	}

	snap := p.Snapshot()
	if len(snap.History) != 3 {
		t.Fatalf("len(History) = %d, want 3", len(snap.History))
	}
	if snap.History[0].Priority != 9 {
		t.Errorf("History[0].Priority = %d, want 9", snap.History[0].Priority)
	}
	if snap.History[1].Priority != 1 {
		t.Errorf("History[1].Priority = %d, want 1", snap.History[1].Priority)
	}
	if snap.History[2].Priority != 0 {
		t.Errorf("History[2].Priority (release) = %d, want 0", snap.History[2].Priority)
	}
}
