package scrollstage

import "testing"

func TestProgress_Bounds(t *testing.T) {
	r := TriggerRegion{Start: 100, End: 300}
	tests := []struct {
		scroll, want float64
	}{
		{-50, 0},
		{100, 0},
		{150, 0.25},
		{200, 0.5},
		{300, 1},
		{1e9, 1},
	}
	for _, tt := range tests {
		if got := Progress(tt.scroll, r); !approx(got, tt.want) {
			t.Errorf("Progress(%v) = %v, want %v", tt.scroll, got, tt.want)
		}
	}
}

func TestProgress_Monotonic(t *testing.T) {
	r := TriggerRegion{Start: -40, End: 760}
	prev := -1.0
	for s := -200.0; s <= 1000; s += 7.5 {
		p := Progress(s, r)
		if p < 0 || p > 1 {
			t.Fatalf("Progress(%v) = %v out of [0,1]", s, p)
		}
		if p < prev {
			t.Fatalf("Progress decreased at %v: %v < %v", s, p, prev)
		}
		prev = p
	}
}

func TestProgress_DegenerateRegion(t *testing.T) {
	r := TriggerRegion{Start: 200, End: 200}
	if got := Progress(199, r); got != 0 {
		t.Errorf("before = %v", got)
	}
	if got := Progress(201, r); got != 1 {
		t.Errorf("after = %v", got)
	}
}

func TestTriggerConfigRegion(t *testing.T) {
	l := Layout{ElementTop: 400, ElementHeight: 600, ViewportHeight: 800}
	tests := []struct {
		name       string
		cfg        TriggerConfig
		start, end float64
	}{
		{"top top, one viewport", TriggerConfig{}, 400, 1200},
		{"top bottom", TriggerConfig{ViewportAnchor: 1}, -400, 400},
		{"center center", TriggerConfig{ElementAnchor: 0.5, ViewportAnchor: 0.5}, 300, 1100},
		{"pixel end", TriggerConfig{EndDistance: Length{Px: 250}}, 400, 650},
		{"mixed end", TriggerConfig{EndDistance: Length{Px: 100, Viewport: 0.5}}, 400, 900},
		{"negative end clamps", TriggerConfig{EndDistance: Length{Px: -100}}, 400, 400},
		{"offset", TriggerConfig{StartOffset: -50}, 350, 1150},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := tt.cfg.Region(l)
			if !approx(r.Start, tt.start) || !approx(r.End, tt.end) {
				t.Errorf("Region = [%v, %v], want [%v, %v]", r.Start, r.End, tt.start, tt.end)
			}
		})
	}
}

func TestTriggerConfigRegion_FollowsResize(t *testing.T) {
	cfg := TriggerConfig{Pin: true}
	a := cfg.Region(Layout{ElementTop: 0, ViewportHeight: 800})
	b := cfg.Region(Layout{ElementTop: 0, ViewportHeight: 1000})
	if a.End != 800 || b.End != 1000 {
		t.Errorf("ends = %v, %v; want 800, 1000", a.End, b.End)
	}
	if !a.Pinned {
		t.Error("region should carry the pin flag")
	}
	if a.Length() != 800 {
		t.Errorf("Length = %v", a.Length())
	}
}
