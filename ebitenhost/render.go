package ebitenhost

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// debugGlyphW and debugGlyphH are the cell size of ebitenutil's debug font.
const (
	debugGlyphW = 6
	debugGlyphH = 16
)

var quadIndices = []uint16{0, 1, 2, 0, 2, 3}

// paintOrder collects the visible objects in drawing order with their
// projected quads in h.quadBuf at the same indices. Root objects keep
// registration order, like document layers; each root is drawn before its
// descendants, which are sorted far to near.
func (h *Host) paintOrder() []*entry {
	h.drawBuf = h.drawBuf[:0]
	h.quadBuf = h.quadBuf[:0]
	for _, root := range h.entries {
		if root.parent != nil {
			continue
		}
		h.appendVisible(root)
		sub := len(h.drawBuf)
		for _, e := range h.entries {
			if e != root && e.root() == root {
				h.appendVisible(e)
			}
		}
		h.sortByDepth(sub)
	}
	return h.drawBuf
}

func (h *Host) appendVisible(e *entry) {
	q := h.project(e)
	if !h.visible(e, &q) {
		return
	}
	h.drawBuf = append(h.drawBuf, e)
	h.quadBuf = append(h.quadBuf, q)
}

// sortByDepth orders drawBuf[from:] far to near with a stable insertion
// sort: zero allocations, and registration order breaks ties.
func (h *Host) sortByDepth(from int) {
	for i := from + 1; i < len(h.drawBuf); i++ {
		e, q := h.drawBuf[i], h.quadBuf[i]
		j := i
		for j > from && h.quadBuf[j-1].depth > q.depth {
			h.drawBuf[j] = h.drawBuf[j-1]
			h.quadBuf[j] = h.quadBuf[j-1]
			j--
		}
		h.drawBuf[j] = e
		h.quadBuf[j] = q
	}
}

// Draw renders every visible object to screen.
func (h *Host) Draw(screen *ebiten.Image) {
	if h.cfg.Background != (color.RGBA{}) {
		screen.Fill(h.cfg.Background)
	}
	order := h.paintOrder()
	for i, e := range order {
		src := h.ensureTexture(e)
		if src == nil {
			continue
		}
		if e.filtered {
			src = h.applyFilter(e, src)
		}
		h.drawQuad(screen, src, &h.quadBuf[i], float32(h.opacity(e)))
	}
}

func (h *Host) drawQuad(dst, src *ebiten.Image, q *quad, alpha float32) {
	b := src.Bounds()
	sw, sh := float32(b.Dx()), float32(b.Dy())
	srcPts := [4][2]float32{{0, 0}, {sw, 0}, {sw, sh}, {0, sh}}
	var verts [4]ebiten.Vertex
	for i := range verts {
		verts[i] = ebiten.Vertex{
			DstX:   float32(q.pts[i][0]),
			DstY:   float32(q.pts[i][1]),
			SrcX:   srcPts[i][0],
			SrcY:   srcPts[i][1],
			ColorR: alpha,
			ColorG: alpha,
			ColorB: alpha,
			ColorA: alpha,
		}
	}
	var op ebiten.DrawTrianglesOptions
	op.Filter = ebiten.FilterLinear
	dst.DrawTriangles(verts[:], quadIndices, src, &op)
}

// ensureTexture lazily renders the object's fill and label into an image.
func (h *Host) ensureTexture(e *entry) *ebiten.Image {
	if e.tex != nil {
		return e.tex
	}
	w, hh := int(e.Width), int(e.Height)
	if w <= 0 || hh <= 0 {
		return nil
	}
	e.tex = ebiten.NewImage(w, hh)
	if e.Fill != (color.RGBA{}) {
		e.tex.Fill(e.Fill)
	}
	if e.Label != "" {
		s := e.LabelScale
		if s <= 0 {
			s = 1
		}
		if h.cfg.Font != nil {
			h.cfg.Font.drawCentered(e.tex, e.Label, s, float64(w)/2, float64(hh)/2, color.White)
			return e.tex
		}
		tw, th := len(e.Label)*debugGlyphW, debugGlyphH
		label := ebiten.NewImage(tw, th)
		ebitenutil.DebugPrint(label, e.Label)
		var op ebiten.DrawImageOptions
		op.GeoM.Scale(s, s)
		op.GeoM.Translate((float64(w)-float64(tw)*s)/2, (float64(hh)-float64(th)*s)/2)
		op.Filter = ebiten.FilterLinear
		e.tex.DrawImage(label, &op)
		label.Deallocate()
	}
	return e.tex
}

// applyFilter renders src through the glitch filter into the object's
// scratch image.
func (h *Host) applyFilter(e *entry, src *ebiten.Image) *ebiten.Image {
	if e.fx == nil {
		b := src.Bounds()
		e.fx = ebiten.NewImage(b.Dx(), b.Dy())
	}
	e.fx.Clear()
	h.filter.Params = h.filterParams
	h.filter.Apply(src, e.fx)
	return e.fx
}
