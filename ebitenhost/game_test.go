package ebitenhost

import (
	"strings"
	"testing"
)

func TestNewGame_Defaults(t *testing.T) {
	g := NewGame(New(Config{}), nil, GameConfig{})
	if g.cfg.WheelSpeed != defaultWheelSpeed {
		t.Errorf("WheelSpeed = %v", g.cfg.WheelSpeed)
	}
	if g.cfg.KeyStep != defaultWheelSpeed/4 {
		t.Errorf("KeyStep = %v", g.cfg.KeyStep)
	}

	g = NewGame(New(Config{}), nil, GameConfig{WheelSpeed: 100, KeyStep: 5})
	if g.cfg.WheelSpeed != 100 || g.cfg.KeyStep != 5 {
		t.Errorf("explicit config overwritten: %+v", g.cfg)
	}
}

func TestGameLayout(t *testing.T) {
	h := New(Config{Width: 640, Height: 480})
	g := NewGame(h, nil, GameConfig{})
	w, hh := g.Layout(800, 600)
	if w != 800 || hh != 600 {
		t.Errorf("Layout = %d x %d", w, hh)
	}
	if vw, vh := h.Viewport(); vw != 800 || vh != 600 {
		t.Errorf("viewport not updated: %d x %d", vw, vh)
	}
}

func TestOverlayText(t *testing.T) {
	h := newCubeHost(t)
	h.SetScroll(250)
	got := overlayText(60, 60, h, nil)
	if !strings.Contains(got, "FPS: 60.0") || !strings.Contains(got, "scroll: 250 / 1600") {
		t.Errorf("overlay = %q", got)
	}
	if strings.Contains(got, "progress") {
		t.Error("no stage should omit stage lines")
	}
}

func TestLoadFont_Invalid(t *testing.T) {
	if _, err := LoadFont([]byte("not a font"), 16); err == nil {
		t.Error("expected parse error")
	}
}
