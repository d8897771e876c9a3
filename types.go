package scrollstage

import "math"

// Vec2 is a 2D vector used for pointer samples, positions and sizes.
type Vec2 struct {
	X, Y float64
}

// Dist returns the Euclidean distance between v and o.
func (v Vec2) Dist(o Vec2) float64 {
	return math.Hypot(v.X-o.X, v.Y-o.Y)
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Center returns the midpoint of the rectangle.
func (r Rect) Center() Vec2 {
	return Vec2{r.X + r.Width/2, r.Y + r.Height/2}
}

// Range is a general-purpose min/max range.
type Range struct {
	Min, Max float64
}

// Clamp restricts v to [Min, Max]. A reversed range is normalized first.
func (r Range) Clamp(v float64) float64 {
	lo, hi := r.Min, r.Max
	if lo > hi {
		lo, hi = hi, lo
	}
	return Clamp(v, lo, hi)
}

// Mid returns the midpoint of the range.
func (r Range) Mid() float64 {
	return (r.Min + r.Max) / 2
}

// Handle is an opaque reference to a host-owned visual element. The engine
// never dereferences it; it only passes it back to the host capabilities.
type Handle uint32

// NoHandle is the zero Handle. Hosts must not hand it out.
const NoHandle Handle = 0

// Property names a scalar visual property on a target. Hosts may accept
// names beyond the built-in ones.
type Property string

const (
	PropX        Property = "x"
	PropY        Property = "y"
	PropZ        Property = "z"
	PropScale    Property = "scale"
	PropOpacity  Property = "opacity"
	PropRotateX  Property = "rotateX" // degrees
	PropRotateY  Property = "rotateY" // degrees
	PropRotation Property = "rotation"
)

// EventType identifies a kind of stage event.
type EventType uint8

const (
	EventProgress   EventType = iota // fires after each scroll-driven evaluation
	EventPin                         // fires when the pin override is applied
	EventUnpin                       // fires when the pin override is released
	EventHoverEnter                  // fires when a hover target starts tracking
	EventHoverLeave                  // fires when tracking ends and params reset
	EventDisposed                    // fires once, at teardown
)

func (t EventType) String() string {
	switch t {
	case EventProgress:
		return "progress"
	case EventPin:
		return "pin"
	case EventUnpin:
		return "unpin"
	case EventHoverEnter:
		return "hover-enter"
	case EventHoverLeave:
		return "hover-leave"
	case EventDisposed:
		return "disposed"
	default:
		return "unknown"
	}
}
