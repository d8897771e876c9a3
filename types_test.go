package scrollstage

import "testing"

func TestRectContains(t *testing.T) {
	r := Rect{X: 10, Y: 20, Width: 100, Height: 50}
	tests := []struct {
		x, y float64
		want bool
	}{
		{10, 20, true},
		{110, 70, true},
		{60, 45, true},
		{9, 45, false},
		{60, 71, false},
	}
	for _, tt := range tests {
		if got := r.Contains(tt.x, tt.y); got != tt.want {
			t.Errorf("Contains(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
	if c := r.Center(); c != (Vec2{60, 45}) {
		t.Errorf("Center = %v", c)
	}
}

func TestRangeClamp(t *testing.T) {
	r := Range{Min: 10, Max: 55}
	if got := r.Clamp(100); got != 55 {
		t.Errorf("Clamp(100) = %v", got)
	}
	if got := r.Clamp(-5); got != 10 {
		t.Errorf("Clamp(-5) = %v", got)
	}
	reversed := Range{Min: 55, Max: 10}
	if got := reversed.Clamp(0); got != 10 {
		t.Errorf("reversed Clamp(0) = %v", got)
	}
	if got := r.Mid(); got != 32.5 {
		t.Errorf("Mid = %v", got)
	}
}

func TestVec2Dist(t *testing.T) {
	if d := (Vec2{0, 0}).Dist(Vec2{3, 4}); d != 5 {
		t.Errorf("Dist = %v, want 5", d)
	}
}

func TestEventTypeString(t *testing.T) {
	names := map[EventType]string{
		EventProgress:   "progress",
		EventPin:        "pin",
		EventUnpin:      "unpin",
		EventHoverEnter: "hover-enter",
		EventHoverLeave: "hover-leave",
		EventDisposed:   "disposed",
		EventType(99):   "unknown",
	}
	for et, want := range names {
		if got := et.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", et, got, want)
		}
	}
}
