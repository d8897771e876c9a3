package scrollstage

import "testing"

func TestFrameScheduler_SingleSlot(t *testing.T) {
	var s FrameScheduler
	calls := 0
	fn := func() { calls++ }

	if !s.Request(fn) {
		t.Fatal("first request should be accepted")
	}
	if s.Request(fn) {
		t.Error("second request should be refused while pending")
	}
	if !s.Run() || calls != 1 {
		t.Fatalf("Run: calls = %d, want 1", calls)
	}
	if s.Run() {
		t.Error("Run with nothing pending should report false")
	}
	if s.Request(nil) {
		t.Error("nil callback should be refused")
	}
}

func TestFrameScheduler_CancelAndGeneration(t *testing.T) {
	var s FrameScheduler
	calls := 0
	s.Request(func() { calls++ })
	gen := s.Generation()
	s.Cancel()
	if s.Pending() || s.Run() || calls != 0 {
		t.Error("cancelled callback must not run")
	}
	if s.Valid(gen) {
		t.Error("generation should be stale after Cancel")
	}
	if !s.Valid(s.Generation()) {
		t.Error("current generation should be valid")
	}
}

func TestFrameScheduler_Reschedule(t *testing.T) {
	var s FrameScheduler
	calls := 0
	var fn func()
	fn = func() {
		calls++
		s.Request(fn)
	}
	s.Request(fn)
	for i := 0; i < 3; i++ {
		s.Run()
	}
	if calls != 3 || !s.Pending() {
		t.Errorf("calls = %d pending = %v, want 3 and true", calls, s.Pending())
	}
}

func TestFrameScheduler_Stop(t *testing.T) {
	var s FrameScheduler
	s.Request(func() {})
	gen := s.Generation()
	s.Stop()
	if s.Pending() {
		t.Error("Stop should drop the pending callback")
	}
	if s.Request(func() {}) {
		t.Error("requests after Stop should be refused")
	}
	if s.Valid(gen) || s.Valid(s.Generation()) {
		t.Error("no generation is valid after Stop")
	}
}
