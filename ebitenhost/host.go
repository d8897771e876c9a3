package ebitenhost

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/scrollstage"
)

// DefaultPerspective matches a CSS perspective of 1200px.
const DefaultPerspective = 1200.0

// minFaceArea culls edge-on faces, in square pixels.
const minFaceArea = 0.5

// FaceTransform is a fixed pre-transform applied before any animated
// property, e.g. RotateY 90 and TranslateZ 160 for the right face of a cube.
type FaceTransform struct {
	RotateX, RotateY float64
	TranslateZ       float64
}

// Object describes one element registered with a Host. Positions are the
// element's center, relative to the parent's center; root objects are
// positioned in document coordinates.
type Object struct {
	Name   string
	Parent string

	X, Y          float64
	Width, Height float64

	// Fill and Label are rendered into the object's texture. Objects with a
	// zero Fill and no Label are pure groups and draw nothing.
	Fill  color.RGBA
	Label string
	// LabelScale enlarges the label glyphs. Zero means 1.
	LabelScale float64

	Face FaceTransform
	// Hover makes the object a pointer hover target.
	Hover bool
	// DoubleSided draws the back of the quad instead of culling it.
	DoubleSided bool
	// PinSpan is the scroll distance a root object stays pinned. Once it is
	// released past its pin point it sits PinSpan lower in the document, the
	// way a pin spacer pushes content down.
	PinSpan float64
}

type entry struct {
	Object
	handle Handle
	parent *entry

	props    map[scrollstage.Property]float64
	pinned   bool
	pinTop   float64
	filtered bool

	tex *ebiten.Image
	fx  *ebiten.Image
}

// Handle aliases scrollstage.Handle for brevity inside this package.
type Handle = scrollstage.Handle

// Config holds Host-wide settings.
type Config struct {
	// Width and Height are the initial viewport size in pixels.
	Width, Height int
	// Perspective is the 3D perspective distance. Zero means
	// DefaultPerspective; negative disables perspective.
	Perspective float64
	// Trigger names the object whose layout is reported on resize.
	Trigger string
	// DocumentHeight bounds the scroll offset to [0, DocumentHeight-Height].
	DocumentHeight float64
	// Background fills the screen before drawing. Zero is black.
	Background color.RGBA
	// Font renders object labels. Nil uses the debug font.
	Font *Font
}

// Host is an Ebitengine-backed scrollstage host. It owns a flat registry of
// textured quads, applies property writes to them, projects them with a
// perspective camera, and dispatches scroll, pointer and frame notifications
// to subscribed listeners.
//
// Host is not safe for concurrent use; all calls must come from the
// Ebitengine game loop goroutine.
type Host struct {
	scrollstage.ListenerRegistry

	cfg     Config
	entries []*entry
	byName  map[string]*entry
	trigger Handle

	scroll  float64
	hovered *entry
	lastX   float64
	lastY   float64

	filterParams scrollstage.FilterParams
	filter       *GlitchFilter

	drawBuf []*entry
	quadBuf []quad
}

// New creates an empty host.
func New(cfg Config) *Host {
	if cfg.Perspective == 0 {
		cfg.Perspective = DefaultPerspective
	}
	return &Host{
		cfg:    cfg,
		byName: make(map[string]*entry),
		filter: NewGlitchFilter(),
	}
}

// Add registers an object and returns its handle. Parents must be added
// before their children.
func (h *Host) Add(obj Object) (Handle, error) {
	if obj.Name == "" {
		return scrollstage.NoHandle, fmt.Errorf("add object: empty name")
	}
	if _, dup := h.byName[obj.Name]; dup {
		return scrollstage.NoHandle, fmt.Errorf("add object %q: duplicate name", obj.Name)
	}
	e := &entry{
		Object: obj,
		handle: Handle(len(h.entries) + 1),
		props:  make(map[scrollstage.Property]float64),
	}
	if obj.Parent != "" {
		p, ok := h.byName[obj.Parent]
		if !ok {
			return scrollstage.NoHandle, fmt.Errorf("add object %q: unknown parent %q", obj.Name, obj.Parent)
		}
		e.parent = p
	}
	h.entries = append(h.entries, e)
	h.byName[obj.Name] = e
	if obj.Name == h.cfg.Trigger {
		h.trigger = e.handle
	}
	return e.handle, nil
}

// Handles returns the name-to-handle table for a scrollstage.Binding.
func (h *Host) Handles() scrollstage.HandleTable {
	t := make(scrollstage.HandleTable, len(h.entries))
	for _, e := range h.entries {
		t[e.Name] = e.handle
	}
	return t
}

// HoverTargets returns the names of all hover-enabled objects in
// registration order.
func (h *Host) HoverTargets() []string {
	var names []string
	for _, e := range h.entries {
		if e.Hover {
			names = append(names, e.Name)
		}
	}
	return names
}

// root returns the top-level ancestor of e, or e itself.
func (e *entry) root() *entry {
	for e.parent != nil {
		e = e.parent
	}
	return e
}

func (h *Host) get(handle Handle) *entry {
	i := int(handle) - 1
	if i < 0 || i >= len(h.entries) {
		return nil
	}
	return h.entries[i]
}

// --- scrollstage.Host ---

// defaultProperty is what an unwritten property reads as.
func defaultProperty(p scrollstage.Property) float64 {
	switch p {
	case scrollstage.PropScale, scrollstage.PropOpacity:
		return 1
	default:
		return 0
	}
}

// Property returns the current value of p on handle.
func (h *Host) Property(handle Handle, p scrollstage.Property) float64 {
	e := h.get(handle)
	if e == nil {
		return defaultProperty(p)
	}
	if v, ok := e.props[p]; ok {
		return v
	}
	return defaultProperty(p)
}

// SetProperty writes an animated property. Unknown handles are ignored.
func (h *Host) SetProperty(handle Handle, p scrollstage.Property, v float64) {
	if e := h.get(handle); e != nil {
		e.props[p] = v
	}
}

// Bounds returns the screen-space bounding box of the object's projected
// quad, the same box a pointer event is tested against.
func (h *Host) Bounds(handle Handle) scrollstage.Rect {
	e := h.get(handle)
	if e == nil {
		return scrollstage.Rect{}
	}
	q := h.project(e)
	x, y, w, hh := q.aabb()
	return scrollstage.Rect{X: x, Y: y, Width: w, Height: hh}
}

// Pin holds the object at viewport offset top.
func (h *Host) Pin(handle Handle, top float64) {
	if e := h.get(handle); e != nil {
		e.pinned = true
		e.pinTop = top
	}
}

// Unpin returns the object to document flow.
func (h *Host) Unpin(handle Handle) {
	if e := h.get(handle); e != nil {
		e.pinned = false
	}
}

// Pinned reports whether the object is pinned.
func (h *Host) Pinned(handle Handle) bool {
	e := h.get(handle)
	return e != nil && e.pinned
}

// --- scrollstage.FilterSink ---

// SetFilterParams stores the distortion parameters for the next draw.
func (h *Host) SetFilterParams(p scrollstage.FilterParams) {
	h.filterParams = p
}

// FilterParams returns the last parameters written.
func (h *Host) FilterParams() scrollstage.FilterParams {
	return h.filterParams
}

// AttachFilter draws handle through the glitch filter.
func (h *Host) AttachFilter(handle Handle) {
	if e := h.get(handle); e != nil {
		e.filtered = true
	}
}

// DetachFilter draws handle normally again.
func (h *Host) DetachFilter(handle Handle) {
	if e := h.get(handle); e != nil {
		e.filtered = false
	}
}

// Filtered reports whether handle is drawn through the glitch filter.
func (h *Host) Filtered(handle Handle) bool {
	e := h.get(handle)
	return e != nil && e.filtered
}

// --- scrollstage.LayoutReader ---

// Layout reports the trigger's document geometry and the viewport height.
func (h *Host) Layout(trigger Handle) scrollstage.Layout {
	l := scrollstage.Layout{ViewportHeight: float64(h.cfg.Height)}
	if e := h.get(trigger); e != nil {
		root := e.root()
		l.ElementTop = root.Y - root.Height/2
		l.ElementHeight = e.Height
	}
	return l
}

// --- geometry ---

// localXform builds the object's transform relative to its parent's center.
func (h *Host) localXform(e *entry) xform {
	x := e.X + h.Property(e.handle, scrollstage.PropX)
	y := e.Y + h.Property(e.handle, scrollstage.PropY)
	z := h.Property(e.handle, scrollstage.PropZ)

	if e.parent == nil {
		// Root objects live in document space; convert to screen space.
		top := y - e.Height/2
		switch {
		case e.pinned:
			y = e.pinTop + e.Height/2
		case e.PinSpan > 0 && h.scroll > top-e.pinTop:
			y = top + e.PinSpan - h.scroll + e.Height/2
		default:
			y = top - h.scroll + e.Height/2
		}
	}

	animated := translate(x, y, z).
		mul(rotY(h.Property(e.handle, scrollstage.PropRotateY))).
		mul(rotX(h.Property(e.handle, scrollstage.PropRotateX))).
		mul(scaleXform(h.Property(e.handle, scrollstage.PropScale)))
	base := rotY(e.Face.RotateY).
		mul(rotX(e.Face.RotateX)).
		mul(translate(0, 0, e.Face.TranslateZ))
	return animated.mul(base)
}

func (h *Host) worldXform(e *entry) xform {
	xf := h.localXform(e)
	for p := e.parent; p != nil; p = p.parent {
		xf = h.localXform(p).mul(xf)
	}
	return xf
}

// project returns the object's quad in screen space.
func (h *Host) project(e *entry) quad {
	xf := h.worldXform(e)
	hw, hh := e.Width/2, e.Height/2
	corners := [4]vec3{{-hw, -hh, 0}, {hw, -hh, 0}, {hw, hh, 0}, {-hw, hh, 0}}
	cx, cy := float64(h.cfg.Width)/2, float64(h.cfg.Height)/2
	var q quad
	for i, c := range corners {
		p := xf.apply(c)
		q.pts[i][0], q.pts[i][1] = project(p, h.cfg.Perspective, cx, cy)
		q.depth += p.Z / 4
	}
	return q
}

// opacity returns the effective opacity including ancestors.
func (h *Host) opacity(e *entry) float64 {
	a := 1.0
	for p := e; p != nil; p = p.parent {
		a *= h.Property(p.handle, scrollstage.PropOpacity)
	}
	return math.Max(0, math.Min(1, a))
}

// visible reports whether e is drawn: it has content, is not transparent and
// faces the viewer (or is double-sided).
func (h *Host) visible(e *entry, q *quad) bool {
	if e.Fill == (color.RGBA{}) && e.Label == "" {
		return false
	}
	if h.opacity(e) <= 0.01 {
		return false
	}
	return e.DoubleSided || q.signedArea() > minFaceArea
}
