package scrollstage

type injectKind uint8

const (
	injectScroll injectKind = iota
	injectResize
	injectEnter
	injectMove
	injectLeave
	injectDispose
)

// injectedEvent represents a single synthetic host notification. One is
// consumed per Frame, exactly as if the host had delivered it.
type injectedEvent struct {
	kind   injectKind
	name   string
	x, y   float64
	offset float64
	layout Layout
}

// InjectScroll queues a scroll notification at offset. The event is consumed
// on the next Frame.
func (s *Stage) InjectScroll(offset float64) {
	s.inject(injectedEvent{kind: injectScroll, offset: offset})
}

// InjectScrollTo queues scroll notifications linearly interpolated from
// offset "from" to "to" over the given number of frames. Minimum frames is 1.
func (s *Stage) InjectScrollTo(from, to float64, frames int) {
	if frames < 1 {
		frames = 1
	}
	for i := 1; i <= frames; i++ {
		t := float64(i) / float64(frames)
		s.InjectScroll(from + (to-from)*t)
	}
}

// InjectResize queues a layout change.
func (s *Stage) InjectResize(l Layout) {
	s.inject(injectedEvent{kind: injectResize, layout: l})
}

// InjectPointerEnter queues a pointer entering the named hover target.
func (s *Stage) InjectPointerEnter(name string, x, y float64) {
	s.inject(injectedEvent{kind: injectEnter, name: name, x: x, y: y})
}

// InjectPointerMove queues a pointer move.
func (s *Stage) InjectPointerMove(x, y float64) {
	s.inject(injectedEvent{kind: injectMove, x: x, y: y})
}

// InjectPointerLeave queues a pointer leaving the named hover target.
func (s *Stage) InjectPointerLeave(name string) {
	s.inject(injectedEvent{kind: injectLeave, name: name})
}

// InjectDispose queues a teardown, as if the host unmounted the stage.
func (s *Stage) InjectDispose() {
	s.inject(injectedEvent{kind: injectDispose})
}

// InjectPointerPath queues a full hover sequence over the named target:
// enter at (fromX, fromY), linearly interpolated moves over frames-2
// intermediate frames, and leave after the last move to (toX, toY).
// The total sequence consumes `frames` frames. Minimum frames is 2.
func (s *Stage) InjectPointerPath(name string, fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	s.InjectPointerEnter(name, fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps)
		s.InjectPointerMove(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
	s.InjectPointerLeave(name)
}

func (s *Stage) inject(evt injectedEvent) {
	if s.inactive() {
		return
	}
	s.injectQueue = append(s.injectQueue, evt)
}

// processInjected pops one event from the inject queue and delivers it.
// Returns true if an event was consumed.
func (s *Stage) processInjected() bool {
	if len(s.injectQueue) == 0 {
		return false
	}
	evt := s.injectQueue[0]
	copy(s.injectQueue, s.injectQueue[1:])
	s.injectQueue = s.injectQueue[:len(s.injectQueue)-1]

	switch evt.kind {
	case injectScroll:
		s.Scroll(evt.offset)
	case injectResize:
		s.Resize(evt.layout)
	case injectEnter:
		s.PointerEnter(evt.name, evt.x, evt.y)
	case injectMove:
		s.PointerMove(evt.x, evt.y)
	case injectLeave:
		s.PointerLeave(evt.name)
	case injectDispose:
		s.Dispose()
	}
	return true
}
