package ebitenhost

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/phanxgames/scrollstage"
)

// overlayRefresh is how often the overlay text is redrawn, in seconds.
const overlayRefresh = 0.5

// Overlay displays FPS/TPS and stage state in the top-left corner. The
// panel is redrawn every ~0.5 seconds.
type Overlay struct {
	img     *ebiten.Image
	elapsed float64
	text    string
}

// overlayText formats the panel contents. stage may be nil.
func overlayText(fps, tps float64, h *Host, stage *scrollstage.Stage) string {
	s := fmt.Sprintf("FPS: %.1f  TPS: %.1f\nscroll: %.0f / %.0f", fps, tps, h.Scroll(), h.MaxScroll())
	if stage != nil {
		p := stage.FilterParams()
		s += fmt.Sprintf("\nprogress: %.3f  pinned: %v\npointer: %v  freq: %.2f %.2f  scale: %.1f",
			stage.Progress(), stage.Pinned(), stage.PointerState(), p.FreqX, p.FreqY, p.Intensity)
	}
	return s
}

// Update refreshes the panel text when the refresh interval has elapsed.
func (o *Overlay) Update(dt float64, h *Host, stage *scrollstage.Stage) {
	o.elapsed += dt
	if o.text != "" && o.elapsed < overlayRefresh {
		return
	}
	o.elapsed = 0
	o.text = overlayText(ebiten.ActualFPS(), ebiten.ActualTPS(), h, stage)
	if o.img == nil {
		// 4 lines of up to ~48 glyphs
		o.img = ebiten.NewImage(48*debugGlyphW, 4*debugGlyphH)
	}
	o.img.Clear()
	// Semi-transparent background for readability
	o.img.Fill(color.RGBA{0, 0, 0, 128})
	ebitenutil.DebugPrint(o.img, o.text)
}

// Draw composites the panel onto screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if o.img == nil {
		return
	}
	screen.DrawImage(o.img, nil)
}
