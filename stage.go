package scrollstage

import (
	"errors"
	"fmt"
	"time"
)

// ErrNoTimeline is reported when a binding carries no timeline.
var ErrNoTimeline = errors.New("scrollstage: no timeline")

// LayoutReader is implemented by hosts that can report trigger geometry
// themselves. It is consulted on Mount when Binding.Layout is zero and by
// Stage.Relayout.
type LayoutReader interface {
	Layout(trigger Handle) Layout
}

// Binding is everything a host hands to Mount.
type Binding struct {
	Host    Host
	Filter  FilterSink  // optional
	Source  EventSource // optional; the stage subscribes and unsubscribes itself
	Handles HandleTable

	// Trigger names the element whose scroll span drives the timeline.
	Trigger string
	// PinTarget names the element held in place while pinned. Required
	// when TriggerConfig.Pin is set.
	PinTarget     string
	TriggerConfig TriggerConfig
	Layout        Layout

	Timeline *TimelineBuilder

	// HoverTargets name the elements that drive the distortion filter.
	HoverTargets []string
	// Pointer defaults to DefaultPointerConfig when zero.
	Pointer PointerConfig

	InitialScroll float64
	Debug         bool
}

// Validate reports every configuration problem at once. Mount never returns
// these; a stage with a bad binding just stays idle.
func (b Binding) Validate() error {
	var errs []error
	if b.Host == nil {
		errs = append(errs, ErrNoHost)
	}
	if _, err := b.Handles.Lookup(b.Trigger); err != nil {
		errs = append(errs, fmt.Errorf("trigger: %w", err))
	}
	if b.TriggerConfig.Pin {
		if _, err := b.Handles.Lookup(b.PinTarget); err != nil {
			errs = append(errs, fmt.Errorf("pin target: %w", err))
		}
	}
	for _, name := range b.HoverTargets {
		if _, err := b.Handles.Lookup(name); err != nil {
			errs = append(errs, fmt.Errorf("hover target: %w", err))
		}
	}
	if b.Timeline == nil {
		errs = append(errs, ErrNoTimeline)
	} else if b.Host != nil {
		if _, err := b.Timeline.Compile(b.Handles, b.Host); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Stage binds a compiled timeline, a pin controller and a pointer filter
// controller to one host. All methods run on the host's UI goroutine.
type Stage struct {
	host    Host
	source  EventSource
	sub     CallbackHandle
	sink    EventSink
	trigger Handle

	cfg      TriggerConfig
	layout   Layout
	timeline *Timeline
	pin      *PinController
	scrub    *Scrubber
	pointer  *PointerController
	hover    map[string]Handle

	writeBuf  []Write
	scroll    float64
	progress  float64
	evaluated bool

	idle       bool
	idleReason error
	disposed   bool
	debug      bool

	injectQueue []injectedEvent
	testRunner  *TestRunner
}

// Mount binds b and evaluates the timeline at b.InitialScroll. A binding with
// a missing handle, host or timeline yields a permanently idle stage.
func Mount(b Binding) *Stage {
	s := &Stage{debug: b.Debug}
	if err := s.bind(b); err != nil {
		s.idle = true
		s.idleReason = err
		s.debugWarn("idle: %v", err)
		return s
	}
	s.debugCheckConflicts()
	if b.Source != nil {
		s.source = b.Source
		s.sub = b.Source.Subscribe(s)
	}
	s.Scroll(b.InitialScroll)
	return s
}

func (s *Stage) bind(b Binding) error {
	if b.Host == nil {
		return ErrNoHost
	}
	if b.Timeline == nil {
		return ErrNoTimeline
	}
	trigger, err := b.Handles.Lookup(b.Trigger)
	if err != nil {
		return fmt.Errorf("trigger: %w", err)
	}
	var pinTarget Handle
	if b.TriggerConfig.Pin {
		if pinTarget, err = b.Handles.Lookup(b.PinTarget); err != nil {
			return fmt.Errorf("pin target: %w", err)
		}
	}
	hover := make(map[string]Handle, len(b.HoverTargets))
	for _, name := range b.HoverTargets {
		h, err := b.Handles.Lookup(name)
		if err != nil {
			return fmt.Errorf("hover target: %w", err)
		}
		hover[name] = h
	}
	tl, err := b.Timeline.Compile(b.Handles, b.Host)
	if err != nil {
		return err
	}

	layout := b.Layout
	if layout == (Layout{}) {
		if lr, ok := b.Host.(LayoutReader); ok {
			layout = lr.Layout(trigger)
		}
	}
	pointerCfg := b.Pointer
	if pointerCfg == (PointerConfig{}) {
		pointerCfg = DefaultPointerConfig()
	}

	s.host = b.Host
	s.trigger = trigger
	s.cfg = b.TriggerConfig
	s.layout = layout
	s.timeline = tl
	s.pin = NewPinController(b.Host, pinTarget, b.TriggerConfig.Anticipate, b.TriggerConfig.MaxAnticipation)
	s.scrub = NewScrubber(b.TriggerConfig.Scrub)
	s.pointer = NewPointerController(pointerCfg, b.Host, b.Filter)
	s.hover = hover
	s.writeBuf = make([]Write, 0, tl.Channels())
	return nil
}

func (s *Stage) inactive() bool {
	return s.idle || s.disposed
}

// SetEventSink sets the optional observer for stage events.
func (s *Stage) SetEventSink(sink EventSink) {
	s.sink = sink
}

// SetDebugMode enables or disables per-notification stats on stderr.
func (s *Stage) SetDebugMode(enabled bool) {
	s.debug = enabled
}

// Scroll recomputes progress, pinning and every timeline property for the
// new scroll offset. Intermediate offsets are never queued; only the latest
// matters.
func (s *Stage) Scroll(offset float64) {
	if s.inactive() {
		return
	}
	s.scroll = offset
	region := s.cfg.Region(s.layout)
	s.progress = Progress(offset, region)

	if s.pin.Update(offset, region, s.cfg.ViewportAnchor*s.layout.ViewportHeight) {
		if s.pin.Pinned() {
			s.emit(Event{Type: EventPin, Progress: s.progress, Target: s.pin.target})
		} else {
			s.emit(Event{Type: EventUnpin, Progress: s.progress, Target: s.pin.target})
		}
		// A sink may have disposed the stage.
		if s.inactive() {
			return
		}
	}

	// The first evaluation lands directly on the scroll position; only later
	// moves are scrubbed.
	if !s.evaluated {
		s.scrub.Jump(s.progress)
		s.apply(s.progress)
		return
	}
	if s.scrub.SetTarget(s.progress) {
		s.apply(s.scrub.Progress())
	}
}

// Resize replaces the layout and re-evaluates at the current scroll offset.
func (s *Stage) Resize(l Layout) {
	if s.inactive() {
		return
	}
	s.layout = l
	s.Scroll(s.scroll)
}

// Relayout re-reads the layout from a host that implements LayoutReader.
func (s *Stage) Relayout() {
	if s.inactive() {
		return
	}
	if lr, ok := s.host.(LayoutReader); ok {
		s.Resize(lr.Layout(s.trigger))
	}
}

func (s *Stage) apply(progress float64) {
	if s.inactive() {
		return
	}
	var t0 time.Time
	if s.debug {
		t0 = time.Now()
	}
	s.writeBuf = s.timeline.AdvanceInto(s.writeBuf[:0], progress)
	for _, w := range s.writeBuf {
		s.host.SetProperty(w.Target, w.Property, w.Value)
	}
	s.evaluated = true
	s.emit(Event{Type: EventProgress, Progress: progress, Target: s.trigger})

	if s.debug {
		s.debugLog(debugStats{
			scroll:   s.scroll,
			progress: progress,
			writes:   len(s.writeBuf),
			pinned:   s.pin.Pinned(),
			evalTime: time.Since(t0),
		})
	}
}

// PointerEnter starts distortion tracking on the named hover target.
// Unknown names are ignored.
func (s *Stage) PointerEnter(name string, x, y float64) {
	if s.inactive() {
		return
	}
	h, ok := s.hover[name]
	if !ok {
		return
	}
	prev := s.pointer.Hovered()
	if !s.pointer.Enter(h, x, y) {
		return
	}
	if prev != NoHandle && prev != h {
		s.emit(Event{Type: EventHoverLeave, Target: prev, Params: s.pointer.Params()})
		if s.inactive() {
			return
		}
	}
	s.emit(Event{Type: EventHoverEnter, Target: h, Params: s.pointer.Params()})
}

// PointerMove stores the latest pointer position for the next frame.
func (s *Stage) PointerMove(x, y float64) {
	if s.inactive() {
		return
	}
	s.pointer.Move(x, y)
}

// PointerLeave ends tracking on the named hover target and resets the
// filter to baseline.
func (s *Stage) PointerLeave(name string) {
	if s.inactive() {
		return
	}
	h, ok := s.hover[name]
	if !ok {
		return
	}
	if s.pointer.Leave(h) {
		s.emit(Event{Type: EventHoverLeave, Target: h, Params: s.pointer.Params()})
	}
}

// Frame runs one display frame: one injected event, the test runner, at
// most one filter recompute and the scrub catch-up.
func (s *Stage) Frame(dt float64) {
	if s.inactive() {
		return
	}
	if s.testRunner != nil {
		s.testRunner.step(s)
	}
	s.processInjected()
	if s.inactive() {
		return
	}
	s.pointer.Frame()
	if s.scrub.Update(dt) {
		s.apply(s.scrub.Progress())
	}
}

// Dispose tears the stage down exactly once: the subscription is removed,
// pending frame work is cancelled, the pin is released, and every animated
// property and the filter return to baseline. Later calls are no-ops.
func (s *Stage) Dispose() {
	if s.disposed {
		return
	}
	s.disposed = true
	s.injectQueue = nil
	if s.testRunner != nil {
		s.testRunner.done = true
	}
	if s.idle {
		return
	}
	s.sub.Remove()
	s.pointer.Dispose()
	if s.pin.Release() {
		s.emit(Event{Type: EventUnpin, Progress: s.progress, Target: s.pin.target})
	}
	for _, w := range s.timeline.Baseline() {
		s.host.SetProperty(w.Target, w.Property, w.Value)
	}
	s.emit(Event{Type: EventDisposed, Progress: s.progress, Target: s.trigger, Params: s.pointer.Params()})
}

func (s *Stage) emit(e Event) {
	if s.sink != nil {
		s.sink.EmitEvent(e)
	}
}

// Idle reports whether the stage failed to bind and does nothing.
func (s *Stage) Idle() bool { return s.idle }

// IdleReason returns why the stage is idle, or nil.
func (s *Stage) IdleReason() error { return s.idleReason }

// Disposed reports whether Dispose has run.
func (s *Stage) Disposed() bool { return s.disposed }

// Progress returns the played timeline progress in [0, 1].
func (s *Stage) Progress() float64 {
	if s.scrub == nil {
		return 0
	}
	return s.scrub.Progress()
}

// ScrollProgress returns the progress of the latest scroll offset, which
// leads Progress when scrubbing with lag.
func (s *Stage) ScrollProgress() float64 { return s.progress }

// Region returns the trigger region for the current layout.
func (s *Stage) Region() TriggerRegion { return s.cfg.Region(s.layout) }

// Pinned reports whether the pin override is applied.
func (s *Stage) Pinned() bool { return s.pin != nil && s.pin.Pinned() }

// PointerState returns the hover state of the filter controller.
func (s *Stage) PointerState() PointerState {
	if s.pointer == nil {
		return PointerIdle
	}
	return s.pointer.State()
}

// FilterParams returns the current distortion parameters.
func (s *Stage) FilterParams() FilterParams {
	if s.pointer == nil {
		return FilterParams{}
	}
	return s.pointer.Params()
}

// Timeline returns the compiled timeline, or nil for an idle stage.
func (s *Stage) Timeline() *Timeline { return s.timeline }
