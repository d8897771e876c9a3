package ebitenhost

import "github.com/phanxgames/scrollstage"

// Scroll returns the current scroll offset.
func (h *Host) Scroll() float64 {
	return h.scroll
}

// MaxScroll returns the largest scroll offset for the configured document.
func (h *Host) MaxScroll() float64 {
	return max(0, h.cfg.DocumentHeight-float64(h.cfg.Height))
}

// SetScroll moves the document to offset, clamped to [0, MaxScroll], and
// notifies listeners when it changed.
func (h *Host) SetScroll(offset float64) {
	offset = scrollstage.Clamp(offset, 0, h.MaxScroll())
	if offset == h.scroll {
		return
	}
	h.scroll = offset
	h.Each(func(l scrollstage.Listener) { l.Scroll(offset) })
	// Content moved under a stationary pointer.
	h.Pointer(h.lastX, h.lastY)
}

// ScrollBy moves the document by delta pixels.
func (h *Host) ScrollBy(delta float64) {
	h.SetScroll(h.scroll + delta)
}

// Viewport returns the screen size.
func (h *Host) Viewport() (w, hgt int) {
	return h.cfg.Width, h.cfg.Height
}

// SetViewport resizes the screen and notifies listeners with the trigger's
// new layout.
func (h *Host) SetViewport(w, hgt int) {
	if w == h.cfg.Width && hgt == h.cfg.Height {
		return
	}
	h.cfg.Width, h.cfg.Height = w, hgt
	l := h.Layout(h.trigger)
	h.Each(func(li scrollstage.Listener) { li.Resize(l) })
	h.SetScroll(h.scroll)
}

// hitTest returns the hover target under (x, y), or nil. The topmost visible
// object under the pointer wins; when it is not a hover target it blocks
// whatever lies beneath.
func (h *Host) hitTest(x, y float64) *entry {
	order := h.paintOrder()
	for i := len(order) - 1; i >= 0; i-- {
		if !h.quadBuf[i].contains(x, y) {
			continue
		}
		if e := order[i]; e.Hover {
			return e
		}
		return nil
	}
	return nil
}

// Pointer feeds one pointer sample, firing leave/enter when the hovered
// target changes and move while it stays the same.
func (h *Host) Pointer(x, y float64) {
	moved := x != h.lastX || y != h.lastY
	h.lastX, h.lastY = x, y

	target := h.hitTest(x, y)
	if target != h.hovered {
		if h.hovered != nil {
			name := h.hovered.Name
			h.Each(func(l scrollstage.Listener) { l.PointerLeave(name) })
		}
		if target != nil {
			name := target.Name
			h.Each(func(l scrollstage.Listener) { l.PointerEnter(name, x, y) })
		}
		h.hovered = target
		return
	}
	if target != nil && moved {
		h.Each(func(l scrollstage.Listener) { l.PointerMove(x, y) })
	}
}

// Hovered returns the name of the hovered target, or "".
func (h *Host) Hovered() string {
	if h.hovered == nil {
		return ""
	}
	return h.hovered.Name
}

// Frame notifies listeners that a display frame elapsed.
func (h *Host) Frame(dt float64) {
	h.Each(func(l scrollstage.Listener) { l.Frame(dt) })
}
