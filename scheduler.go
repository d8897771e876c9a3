package scrollstage

// FrameScheduler holds at most one callback for the next display frame. A
// generation counter invalidates a callback that was cancelled after Run
// picked it up, so a stale callback can never fire.
type FrameScheduler struct {
	pending func()
	gen     uint64
	stopped bool
}

// Request schedules fn for the next Run. It returns false and leaves the
// existing callback in place when one is already pending, or when the
// scheduler has been stopped.
func (s *FrameScheduler) Request(fn func()) bool {
	if s.stopped || s.pending != nil || fn == nil {
		return false
	}
	s.pending = fn
	return true
}

// Pending reports whether a callback is waiting for the next frame.
func (s *FrameScheduler) Pending() bool {
	return s.pending != nil
}

// Cancel drops the pending callback, if any.
func (s *FrameScheduler) Cancel() {
	s.pending = nil
	s.gen++
}

// Stop cancels and refuses all future requests.
func (s *FrameScheduler) Stop() {
	s.Cancel()
	s.stopped = true
}

// Generation returns the current generation. Callbacks can capture it and
// compare with Valid before writing.
func (s *FrameScheduler) Generation() uint64 {
	return s.gen
}

// Valid reports whether gen is still current.
func (s *FrameScheduler) Valid(gen uint64) bool {
	return !s.stopped && s.gen == gen
}

// Run invokes the pending callback once. The slot is cleared before the call
// so the callback may reschedule itself for the following frame.
func (s *FrameScheduler) Run() bool {
	fn := s.pending
	if fn == nil {
		return false
	}
	s.pending = nil
	fn()
	return true
}
