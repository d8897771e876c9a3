package scrollstage

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Scrubber lags the played progress behind the scroll progress. Each new
// target restarts a catch-up tween from the current played value; Lag of
// zero applies targets immediately.
type Scrubber struct {
	Lag float64

	current float64
	target  float64
	tween   *gween.Tween
}

// NewScrubber creates a scrubber starting at progress 0.
func NewScrubber(lag float64) *Scrubber {
	return &Scrubber{Lag: max(lag, 0)}
}

// Progress returns the played progress.
func (s *Scrubber) Progress() float64 {
	return s.current
}

// Settled reports whether the played progress has reached the target.
func (s *Scrubber) Settled() bool {
	return s.tween == nil
}

// SetTarget records a new scroll progress. It returns true when the played
// progress changed immediately (no lag).
func (s *Scrubber) SetTarget(p float64) bool {
	p = Clamp01(p)
	s.target = p
	if s.Lag <= 0 {
		changed := s.current != p
		s.current = p
		s.tween = nil
		return changed
	}
	if s.current == p {
		s.tween = nil
		return false
	}
	s.tween = gween.New(float32(s.current), float32(p), float32(s.Lag), ease.OutQuad)
	return false
}

// Jump sets the played progress without easing.
func (s *Scrubber) Jump(p float64) {
	s.current = Clamp01(p)
	s.target = s.current
	s.tween = nil
}

// Update advances the catch-up tween by dt seconds and reports whether the
// played progress moved.
func (s *Scrubber) Update(dt float64) bool {
	if s.tween == nil {
		return false
	}
	val, done := s.tween.Update(float32(dt))
	prev := s.current
	if done {
		s.current = s.target
		s.tween = nil
	} else {
		s.current = Clamp01(float64(val))
	}
	return s.current != prev
}
