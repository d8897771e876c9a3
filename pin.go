package scrollstage

import "math"

const defaultMaxAnticipation = 200.0 // pixels

// PinHost is the part of Host the pin controller writes through.
type PinHost interface {
	Pin(h Handle, top float64)
	Unpin(h Handle)
}

// PinController holds an element fixed in the viewport while its trigger
// region is active. Applying a pin while pinned and releasing while released
// never reach the host.
type PinController struct {
	host   PinHost
	target Handle

	anticipate      float64
	maxAnticipation float64

	pinned     bool
	top        float64
	lastScroll float64
	seen       bool
}

// NewPinController creates a controller for target. anticipate scales the last
// scroll delta into an early-pin margin, capped at maxAnticipation pixels.
func NewPinController(host PinHost, target Handle, anticipate, maxAnticipation float64) *PinController {
	if maxAnticipation <= 0 {
		maxAnticipation = defaultMaxAnticipation
	}
	return &PinController{
		host:            host,
		target:          target,
		anticipate:      math.Max(anticipate, 0),
		maxAnticipation: maxAnticipation,
	}
}

// Pinned reports whether the fixed-position override is applied.
func (p *PinController) Pinned() bool {
	return p.pinned
}

// Margin returns the early-pin margin for a move to scroll. Only moves down
// toward the region anticipate; moving up has no margin.
func (p *PinController) Margin(scroll float64) float64 {
	if !p.seen || p.anticipate == 0 || scroll <= p.lastScroll {
		return 0
	}
	return math.Min((scroll-p.lastScroll)*p.anticipate, p.maxAnticipation)
}

// ShouldPin reports whether scroll lies inside region. Before Start, a move
// down pins within the anticipation margin and keeps an early pin held until
// Start is reached; any move up out of the region releases.
func (p *PinController) ShouldPin(scroll float64, region TriggerRegion) bool {
	if !region.Pinned || scroll > region.End {
		return false
	}
	if scroll >= region.Start {
		return true
	}
	if !p.seen || scroll <= p.lastScroll {
		return false
	}
	return p.pinned || scroll >= region.Start-p.Margin(scroll)
}

// Update pins or releases for the new scroll offset and reports whether the
// state changed. top is the viewport offset the element is held at.
func (p *PinController) Update(scroll float64, region TriggerRegion, top float64) bool {
	want := p.ShouldPin(scroll, region)
	p.lastScroll = scroll
	p.seen = true
	if want {
		return p.apply(top)
	}
	return p.Release()
}

func (p *PinController) apply(top float64) bool {
	if p.pinned {
		return false
	}
	p.pinned = true
	p.top = top
	if p.host != nil {
		p.host.Pin(p.target, top)
	}
	return true
}

// Release restores normal document flow. It is a no-op when not pinned.
func (p *PinController) Release() bool {
	if !p.pinned {
		return false
	}
	p.pinned = false
	if p.host != nil {
		p.host.Unpin(p.target)
	}
	return true
}
