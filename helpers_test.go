package scrollstage

import "math"

const epsilon = 1e-6

func approx(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

type propKey struct {
	h Handle
	p Property
}

// recordingHost is an in-memory Host and FilterSink that records every call.
type recordingHost struct {
	props  map[propKey]float64
	bounds map[Handle]Rect

	sets     int
	pins     []Handle
	unpins   []Handle
	pinTop   float64
	params   []FilterParams
	attached []Handle
	detached []Handle
	layout   Layout
}

func newRecordingHost() *recordingHost {
	return &recordingHost{
		props:  make(map[propKey]float64),
		bounds: make(map[Handle]Rect),
	}
}

func (h *recordingHost) Property(t Handle, p Property) float64 {
	return h.props[propKey{t, p}]
}

func (h *recordingHost) SetProperty(t Handle, p Property, v float64) {
	h.props[propKey{t, p}] = v
	h.sets++
}

func (h *recordingHost) Bounds(t Handle) Rect {
	return h.bounds[t]
}

func (h *recordingHost) Pin(t Handle, top float64) {
	h.pins = append(h.pins, t)
	h.pinTop = top
}

func (h *recordingHost) Unpin(t Handle) {
	h.unpins = append(h.unpins, t)
}

func (h *recordingHost) SetFilterParams(p FilterParams) {
	h.params = append(h.params, p)
}

func (h *recordingHost) AttachFilter(t Handle) {
	h.attached = append(h.attached, t)
}

func (h *recordingHost) DetachFilter(t Handle) {
	h.detached = append(h.detached, t)
}

func (h *recordingHost) lastParams() FilterParams {
	if len(h.params) == 0 {
		return FilterParams{}
	}
	return h.params[len(h.params)-1]
}

// layoutHost adds LayoutReader to recordingHost.
type layoutHost struct {
	*recordingHost
}

func (h layoutHost) Layout(Handle) Layout {
	return h.layout
}

type eventRecorder struct {
	events []Event
}

func (r *eventRecorder) EmitEvent(e Event) {
	r.events = append(r.events, e)
}

func (r *eventRecorder) count(t EventType) int {
	n := 0
	for _, e := range r.events {
		if e.Type == t {
			n++
		}
	}
	return n
}
