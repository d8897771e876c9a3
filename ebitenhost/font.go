package ebitenhost

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// Font wraps Ebitengine's text/v2 for object labels. Without a Font, labels
// use the debug bitmap font.
type Font struct {
	source *text.GoTextFaceSource
	size   float64
}

// LoadFont loads a TrueType font from raw TTF/OTF data. size is the label
// size at LabelScale 1.
func LoadFont(ttfData []byte, size float64) (*Font, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(ttfData))
	if err != nil {
		return nil, fmt.Errorf("scrollstage: failed to parse TTF data: %w", err)
	}
	return &Font{source: source, size: size}, nil
}

func (f *Font) face(scale float64) *text.GoTextFace {
	return &text.GoTextFace{Source: f.source, Size: f.size * scale}
}

// Measure returns the rendered size of s at the given scale.
func (f *Font) Measure(s string, scale float64) (w, h float64) {
	face := f.face(scale)
	m := face.Metrics()
	return text.Measure(s, face, m.HAscent+m.HDescent+m.HLineGap)
}

// drawCentered draws s centered on (cx, cy).
func (f *Font) drawCentered(dst *ebiten.Image, s string, scale, cx, cy float64, clr color.Color) {
	face := f.face(scale)
	m := face.Metrics()
	op := &text.DrawOptions{}
	op.GeoM.Translate(cx, cy)
	op.ColorScale.ScaleWithColor(clr)
	op.LineSpacing = m.HAscent + m.HDescent + m.HLineGap
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	text.Draw(dst, s, face, op)
}
