package scrollstage

// TriggerRegion is the scroll span over which a timeline plays. Progress is 0
// at or before Start and 1 at or after End.
type TriggerRegion struct {
	Start, End float64
	Pinned     bool
}

// Length returns End - Start.
func (r TriggerRegion) Length() float64 {
	return r.End - r.Start
}

// Progress converts a scroll offset into normalized progress within region.
// The result is clamped to [0, 1] and is non-decreasing in scroll. A
// degenerate region (End <= Start) behaves as a step at Start.
func Progress(scroll float64, region TriggerRegion) float64 {
	if scroll <= region.Start {
		return 0
	}
	if scroll >= region.End {
		return 1
	}
	return (scroll - region.Start) / (region.End - region.Start)
}

// Layout is the document geometry the host reports on mount and on every
// resize: where the trigger element sits and how tall the viewport is.
type Layout struct {
	ElementTop     float64
	ElementHeight  float64
	ViewportHeight float64
}

// Length is a distance expressed as pixels plus a fraction of the viewport
// height, e.g. Length{Viewport: 1} for "100%".
type Length struct {
	Px       float64
	Viewport float64
}

// Resolve returns the length in pixels for the given viewport height.
func (l Length) Resolve(viewportHeight float64) float64 {
	return l.Px + l.Viewport*viewportHeight
}

// TriggerConfig describes where a trigger region starts and how long it runs.
//
// The start line is reached when the point ElementAnchor (0 = top, 1 = bottom
// of the trigger element) meets the point ViewportAnchor (0 = top, 1 = bottom
// of the viewport). The zero value is "top top". The region ends EndDistance
// further down; the zero EndDistance defaults to one viewport height.
type TriggerConfig struct {
	ElementAnchor  float64
	ViewportAnchor float64
	StartOffset    float64
	EndDistance    Length

	// Pin holds the pinned element fixed while progress is inside [0, 1].
	Pin bool
	// Anticipate scales the last scroll delta into an early-pin margin in
	// pixels. Zero disables anticipation.
	Anticipate float64
	// MaxAnticipation caps the early-pin margin. Zero means
	// defaultMaxAnticipation.
	MaxAnticipation float64

	// Scrub is the time in seconds the played progress takes to catch up
	// with the scroll position. Zero applies scroll progress immediately.
	Scrub float64
}

// Region recomputes the trigger region from the current layout. It is called
// on every scroll notification, so boundaries follow resizes without caching.
func (c TriggerConfig) Region(l Layout) TriggerRegion {
	start := l.ElementTop + c.ElementAnchor*l.ElementHeight - c.ViewportAnchor*l.ViewportHeight + c.StartOffset
	dist := c.EndDistance
	if dist == (Length{}) {
		dist = Length{Viewport: 1}
	}
	end := start + dist.Resolve(l.ViewportHeight)
	if end < start {
		end = start
	}
	return TriggerRegion{Start: start, End: end, Pinned: c.Pin}
}
