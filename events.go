package scrollstage

// Event describes something a stage did, for observers such as an ECS bridge.
type Event struct {
	Type     EventType
	Progress float64
	Target   Handle
	Params   FilterParams
}

// EventSink receives stage events. Set one with Stage.SetEventSink.
type EventSink interface {
	EmitEvent(event Event)
}

// Listener receives the raw host notifications a stage consumes. Stage
// implements it; hosts deliver events through an EventSource.
type Listener interface {
	Scroll(offset float64)
	Resize(l Layout)
	PointerEnter(name string, x, y float64)
	PointerMove(x, y float64)
	PointerLeave(name string)
	Frame(dt float64)
}

// EventSource is implemented by hosts that push notifications to listeners.
type EventSource interface {
	Subscribe(l Listener) CallbackHandle
}

// CallbackHandle allows removing a registered listener.
type CallbackHandle struct {
	id  uint32
	reg *ListenerRegistry
}

// Remove unregisters the listener so it no longer receives events. Removing
// twice is a no-op.
func (h CallbackHandle) Remove() {
	if h.reg == nil {
		return
	}
	h.reg.remove(h.id)
}

type listenerEntry struct {
	id uint32
	l  Listener
}

// ListenerRegistry is a ready-made EventSource for hosts. Dispatch goes to
// listeners in subscription order.
type ListenerRegistry struct {
	entries []listenerEntry
	nextID  uint32
}

// Subscribe registers l and returns a handle for removal.
func (r *ListenerRegistry) Subscribe(l Listener) CallbackHandle {
	r.nextID++
	r.entries = append(r.entries, listenerEntry{id: r.nextID, l: l})
	return CallbackHandle{id: r.nextID, reg: r}
}

// Len returns the number of registered listeners.
func (r *ListenerRegistry) Len() int {
	return len(r.entries)
}

func (r *ListenerRegistry) remove(id uint32) {
	for i := range r.entries {
		if r.entries[i].id == id {
			copy(r.entries[i:], r.entries[i+1:])
			r.entries[len(r.entries)-1] = listenerEntry{}
			r.entries = r.entries[:len(r.entries)-1]
			return
		}
	}
}

// Each calls fn for every listener. Listeners removed during dispatch are
// skipped for the remainder of it.
func (r *ListenerRegistry) Each(fn func(Listener)) {
	for i := 0; i < len(r.entries); i++ {
		id := r.entries[i].id
		fn(r.entries[i].l)
		if i < len(r.entries) && r.entries[i].id != id {
			i--
		}
	}
}
