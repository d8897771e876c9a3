package scrollstage

import (
	"fmt"
	"sort"
)

// Host is the capability set a host environment provides to a stage. The
// stage never owns the objects behind the handles.
type Host interface {
	// Property returns the current value of p on h.
	Property(h Handle, p Property) float64
	// SetProperty writes an interpolated value to h.
	SetProperty(h Handle, p Property, v float64)
	// Bounds returns h's bounding box in the coordinate space of pointer
	// events.
	Bounds(h Handle) Rect
	// Pin holds h fixed at viewport offset top.
	Pin(h Handle, top float64)
	// Unpin returns h to normal document flow.
	Unpin(h Handle)
}

// FilterSink receives the procedural distortion parameters.
type FilterSink interface {
	SetFilterParams(p FilterParams)
	// AttachFilter applies the distortion to h while it is hovered.
	AttachFilter(h Handle)
	// DetachFilter removes the distortion from h.
	DetachFilter(h Handle)
}

// HandleTable maps the names used in timeline and binding configuration to
// host handles. The stage resolves names only through this table.
type HandleTable map[string]Handle

// Lookup returns the handle registered under name.
func (t HandleTable) Lookup(name string) (Handle, error) {
	h, ok := t[name]
	if !ok || h == NoHandle {
		return NoHandle, fmt.Errorf("%w: %q", ErrMissingHandle, name)
	}
	return h, nil
}

// Resolve looks up every name, failing on the first missing one.
func (t HandleTable) Resolve(names []string) ([]Handle, error) {
	out := make([]Handle, len(names))
	for i, name := range names {
		h, err := t.Lookup(name)
		if err != nil {
			return nil, err
		}
		out[i] = h
	}
	return out, nil
}

// Names returns the registered names in sorted order.
func (t HandleTable) Names() []string {
	names := make([]string, 0, len(t))
	for name := range t {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
