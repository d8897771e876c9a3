package scrollstage

import "testing"

func TestPinController_EnterExit(t *testing.T) {
	host := newRecordingHost()
	pc := NewPinController(host, 7, 0, 0)
	r := TriggerRegion{Start: 100, End: 200, Pinned: true}

	if pc.Update(50, r, 0) {
		t.Error("should not change before region")
	}
	if !pc.Update(150, r, 0) || !pc.Pinned() {
		t.Fatal("should pin inside region")
	}
	if pc.Update(160, r, 0) {
		t.Error("re-pinning while pinned should be a no-op")
	}
	if len(host.pins) != 1 || host.pins[0] != 7 {
		t.Errorf("pins = %v, want [7]", host.pins)
	}
	if !pc.Update(250, r, 0) || pc.Pinned() {
		t.Fatal("should release past region")
	}
	if pc.Update(300, r, 0) {
		t.Error("releasing while released should be a no-op")
	}
	if len(host.unpins) != 1 {
		t.Errorf("unpins = %v, want 1", host.unpins)
	}
}

func TestPinController_Unpinned(t *testing.T) {
	host := newRecordingHost()
	pc := NewPinController(host, 1, 0, 0)
	r := TriggerRegion{Start: 0, End: 100}
	if pc.Update(50, r, 0) || pc.Pinned() {
		t.Error("region without pin flag should never pin")
	}
}

func TestPinController_Anticipation(t *testing.T) {
	host := newRecordingHost()
	pc := NewPinController(host, 1, 1, 0)
	r := TriggerRegion{Start: 1000, End: 2000, Pinned: true}

	pc.Update(900, r, 0)
	if pc.Pinned() {
		t.Fatal("first sample has no velocity, should not pin early")
	}
	// Jumped 60px; margin 60 covers the remaining 40px.
	if !pc.Update(960, r, 0) {
		t.Fatal("fast approach should pin early")
	}

	slow := NewPinController(host, 2, 1, 0)
	slow.Update(900, r, 0)
	if slow.Update(905, r, 0) {
		t.Error("slow approach should not pin 95px early")
	}
}

func TestPinController_LeaveUpward(t *testing.T) {
	host := newRecordingHost()
	pc := NewPinController(host, 1, 1, 0)
	r := TriggerRegion{Start: 1000, End: 2000, Pinned: true}

	pc.Update(1400, r, 0)
	pc.Update(1500, r, 0)
	if !pc.Pinned() {
		t.Fatal("should be pinned inside region")
	}
	// A fast move up past Start must not reuse the jump as a margin.
	if !pc.Update(900, r, 0) || pc.Pinned() {
		t.Fatal("leaving upward should release immediately")
	}
	if len(host.unpins) != 1 {
		t.Errorf("unpins = %v, want 1", host.unpins)
	}
	if m := pc.Margin(800); m != 0 {
		t.Errorf("Margin moving up = %v, want 0", m)
	}
}

func TestPinController_EarlyPinHeld(t *testing.T) {
	host := newRecordingHost()
	pc := NewPinController(host, 1, 1, 0)
	r := TriggerRegion{Start: 1000, End: 2000, Pinned: true}

	pc.Update(900, r, 0)
	if !pc.Update(960, r, 0) {
		t.Fatal("fast approach should pin early")
	}
	// A slow move down toward Start keeps the early pin.
	if pc.Update(965, r, 0) || !pc.Pinned() {
		t.Error("early pin should hold while approaching")
	}
	// Reversing before Start releases.
	if !pc.Update(950, r, 0) || pc.Pinned() {
		t.Error("moving up before Start should release")
	}
	if len(host.pins) != 1 || len(host.unpins) != 1 {
		t.Errorf("pins = %v unpins = %v", host.pins, host.unpins)
	}
}

func TestPinController_MarginCap(t *testing.T) {
	pc := NewPinController(nil, 1, 2, 50)
	pc.Update(0, TriggerRegion{}, 0)
	if m := pc.Margin(1000); m != 50 {
		t.Errorf("Margin = %v, want capped 50", m)
	}

	pc = NewPinController(nil, 1, 2, 0)
	pc.Update(0, TriggerRegion{}, 0)
	if m := pc.Margin(1000); m != defaultMaxAnticipation {
		t.Errorf("Margin = %v, want default cap %v", m, defaultMaxAnticipation)
	}
}

func TestPinController_ReleaseIdempotent(t *testing.T) {
	host := newRecordingHost()
	pc := NewPinController(host, 3, 0, 0)
	pc.Update(10, TriggerRegion{Start: 0, End: 100, Pinned: true}, 12)
	if host.pinTop != 12 {
		t.Errorf("pin top = %v, want 12", host.pinTop)
	}
	if !pc.Release() {
		t.Error("first Release should change state")
	}
	if pc.Release() {
		t.Error("second Release should be a no-op")
	}
	if len(host.unpins) != 1 {
		t.Errorf("unpins = %d, want 1", len(host.unpins))
	}
}
