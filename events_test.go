package scrollstage

import "testing"

type countingListener struct {
	scrolls int
	frames  int
	onFrame func()
}

func (l *countingListener) Scroll(float64)                        { l.scrolls++ }
func (l *countingListener) Resize(Layout)                         {}
func (l *countingListener) PointerEnter(string, float64, float64) {}
func (l *countingListener) PointerMove(float64, float64)          {}
func (l *countingListener) PointerLeave(string)                   {}
func (l *countingListener) Frame(float64) {
	l.frames++
	if l.onFrame != nil {
		l.onFrame()
	}
}

func TestListenerRegistry_SubscribeRemove(t *testing.T) {
	var reg ListenerRegistry
	a, b := &countingListener{}, &countingListener{}
	ha := reg.Subscribe(a)
	reg.Subscribe(b)
	reg.Each(func(l Listener) { l.Scroll(1) })
	if a.scrolls != 1 || b.scrolls != 1 {
		t.Fatalf("scrolls = %d, %d", a.scrolls, b.scrolls)
	}
	ha.Remove()
	ha.Remove()
	if reg.Len() != 1 {
		t.Fatalf("Len = %d, want 1", reg.Len())
	}
	reg.Each(func(l Listener) { l.Scroll(1) })
	if a.scrolls != 1 || b.scrolls != 2 {
		t.Errorf("scrolls = %d, %d", a.scrolls, b.scrolls)
	}
	CallbackHandle{}.Remove()
}

func TestListenerRegistry_RemoveDuringDispatch(t *testing.T) {
	var reg ListenerRegistry
	a, b, c := &countingListener{}, &countingListener{}, &countingListener{}
	var ha CallbackHandle
	a.onFrame = func() { ha.Remove() }
	ha = reg.Subscribe(a)
	reg.Subscribe(b)
	reg.Subscribe(c)

	reg.Each(func(l Listener) { l.Frame(0) })
	if a.frames != 1 || b.frames != 1 || c.frames != 1 {
		t.Errorf("frames = %d %d %d, want all 1", a.frames, b.frames, c.frames)
	}
	if reg.Len() != 2 {
		t.Errorf("Len = %d, want 2", reg.Len())
	}
}
