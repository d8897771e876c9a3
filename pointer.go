package scrollstage

// FilterParams drive the procedural distortion: a 2D noise frequency and a
// displacement intensity.
type FilterParams struct {
	FreqX, FreqY float64
	Intensity    float64
}

// PointerConfig maps a pointer position relative to the hovered target's
// box onto FilterParams:
//
//	FreqX     = BaseFreqX + relX*RangeFreqX
//	FreqY     = BaseFreqY + relY*RangeFreqY
//	Intensity = BaseIntensity + relX*IntensityX + relY*IntensityY
//
// each clamped to its bounds.
type PointerConfig struct {
	BaseFreqX, RangeFreqX float64
	BaseFreqY, RangeFreqY float64

	BaseIntensity          float64
	IntensityX, IntensityY float64

	FreqXBounds     Range
	FreqYBounds     Range
	IntensityBounds Range

	// Baseline is written on hover exit and teardown.
	Baseline FilterParams
}

// DefaultPointerConfig returns the glitch-hover tuning: frequencies sweep
// 0.35 to 0.70 and 0.6 to 1.0, intensity 20 + 30·relX + 30·relY held to [10, 55],
// and a baseline with no displacement.
func DefaultPointerConfig() PointerConfig {
	return PointerConfig{
		BaseFreqX:       0.35,
		RangeFreqX:      0.35,
		BaseFreqY:       0.6,
		RangeFreqY:      0.4,
		BaseIntensity:   20,
		IntensityX:      30,
		IntensityY:      30,
		FreqXBounds:     Range{0.35, 0.70},
		FreqYBounds:     Range{0.6, 1.0},
		IntensityBounds: Range{10, 55},
		Baseline:        FilterParams{FreqX: 0.35, FreqY: 0.6, Intensity: 0},
	}
}

// MapPointer computes clamped filter parameters for pointer (x, y) over box.
// A zero-size box maps to the base values.
func (c PointerConfig) MapPointer(box Rect, x, y float64) FilterParams {
	var relX, relY float64
	if box.Width > 0 {
		relX = (x - box.X) / box.Width
	}
	if box.Height > 0 {
		relY = (y - box.Y) / box.Height
	}
	return FilterParams{
		FreqX:     c.FreqXBounds.Clamp(c.BaseFreqX + relX*c.RangeFreqX),
		FreqY:     c.FreqYBounds.Clamp(c.BaseFreqY + relY*c.RangeFreqY),
		Intensity: c.IntensityBounds.Clamp(c.BaseIntensity + relX*c.IntensityX + relY*c.IntensityY),
	}
}

// PointerState is the hover state of a PointerController.
type PointerState uint8

const (
	PointerIdle      PointerState = iota // no hover; params at baseline
	PointerTracking                      // hover active; params follow the pointer each frame
	PointerReleasing                     // hover just ended; resetting
)

func (s PointerState) String() string {
	switch s {
	case PointerIdle:
		return "idle"
	case PointerTracking:
		return "tracking"
	case PointerReleasing:
		return "releasing"
	default:
		return "unknown"
	}
}

// BoundsReader reads a target's bounding box.
type BoundsReader interface {
	Bounds(h Handle) Rect
}

// PointerController turns pointer events over hover targets into filter
// parameters. Pointer moves only store the sample; the parameters are
// recomputed at most once per display frame.
type PointerController struct {
	cfg    PointerConfig
	bounds BoundsReader
	sink   FilterSink

	sched        FrameScheduler
	scheduledGen uint64
	frameFn      func()

	state    PointerState
	hovered  Handle
	sample   Vec2
	params   FilterParams
	writes   int
	disposed bool
}

// NewPointerController creates an idle controller with baseline parameters.
func NewPointerController(cfg PointerConfig, bounds BoundsReader, sink FilterSink) *PointerController {
	c := &PointerController{
		cfg:    cfg,
		bounds: bounds,
		sink:   sink,
		params: cfg.Baseline,
	}
	c.frameFn = c.onFrame
	return c
}

// State returns the current hover state.
func (c *PointerController) State() PointerState { return c.state }

// Hovered returns the tracked target, or NoHandle.
func (c *PointerController) Hovered() Handle { return c.hovered }

// Params returns the last parameters written.
func (c *PointerController) Params() FilterParams { return c.params }

// Writes returns how many parameter writes reached the sink.
func (c *PointerController) Writes() int { return c.writes }

// FramePending reports whether a recompute is scheduled.
func (c *PointerController) FramePending() bool { return c.sched.Pending() }

// Enter starts tracking h with the pointer at (x, y). Entering a new target
// while tracking another releases the old one first.
func (c *PointerController) Enter(h Handle, x, y float64) bool {
	if c.disposed || h == NoHandle {
		return false
	}
	if c.state == PointerTracking {
		if c.hovered == h {
			c.sample = Vec2{x, y}
			return false
		}
		c.Leave(c.hovered)
	}
	c.state = PointerTracking
	c.hovered = h
	c.sample = Vec2{x, y}
	if c.sink != nil {
		c.sink.AttachFilter(h)
	}
	c.schedule()
	return true
}

// Move stores the latest pointer sample for the next frame's recompute.
func (c *PointerController) Move(x, y float64) {
	if c.disposed || c.state != PointerTracking {
		return
	}
	c.sample = Vec2{x, y}
}

// Leave stops tracking h: the pending frame is cancelled before the
// parameters return to baseline. NoHandle leaves whatever is tracked.
func (c *PointerController) Leave(h Handle) bool {
	if c.disposed || c.state != PointerTracking {
		return false
	}
	if h != NoHandle && h != c.hovered {
		return false
	}
	c.sched.Cancel()
	c.state = PointerReleasing
	prev := c.hovered
	c.hovered = NoHandle
	c.reset()
	if c.sink != nil {
		c.sink.DetachFilter(prev)
	}
	c.state = PointerIdle
	return true
}

// Frame runs the pending recompute, if any. Call once per display frame.
func (c *PointerController) Frame() bool {
	return c.sched.Run()
}

// Dispose cancels scheduling, detaches the filter and restores the baseline.
// Later calls and events are no-ops.
func (c *PointerController) Dispose() {
	if c.disposed {
		return
	}
	c.sched.Stop()
	if c.hovered != NoHandle && c.sink != nil {
		c.sink.DetachFilter(c.hovered)
	}
	c.hovered = NoHandle
	c.state = PointerIdle
	c.reset()
	c.disposed = true
}

func (c *PointerController) schedule() {
	if c.sched.Request(c.frameFn) {
		c.scheduledGen = c.sched.Generation()
	}
}

func (c *PointerController) onFrame() {
	if c.disposed || c.state != PointerTracking || !c.sched.Valid(c.scheduledGen) {
		return
	}
	var box Rect
	if c.bounds != nil {
		box = c.bounds.Bounds(c.hovered)
	}
	c.write(c.cfg.MapPointer(box, c.sample.X, c.sample.Y))
	c.schedule()
}

func (c *PointerController) reset() {
	c.write(c.cfg.Baseline)
}

func (c *PointerController) write(p FilterParams) {
	c.params = p
	c.writes++
	if c.sink != nil {
		c.sink.SetFilterParams(p)
	}
}
