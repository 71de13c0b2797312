package termhost

import (
	"github.com/charmbracelet/lipgloss"

	tooltip "github.com/grindlemire/go-tooltip"
)

// Host keeps the inserted overlays for the renderer and measures their
// content in terminal cells.
type Host struct {
	overlays []*tooltip.Overlay
	sizes    map[*tooltip.Overlay]tooltip.Size
	dirty    bool
}

var _ tooltip.Host = (*Host)(nil)

// NewHost creates an empty host.
func NewHost() *Host {
	return &Host{sizes: make(map[*tooltip.Overlay]tooltip.Size)}
}

// Insert adds o on top of the existing overlays.
func (h *Host) Insert(o *tooltip.Overlay) {
	h.overlays = append(h.overlays, o)
	h.dirty = true
}

// Remove drops o.
func (h *Host) Remove(o *tooltip.Overlay) {
	for i, existing := range h.overlays {
		if existing == o {
			h.overlays = append(h.overlays[:i], h.overlays[i+1:]...)
			break
		}
	}
	delete(h.sizes, o)
	h.dirty = true
}

// MarkNeedsRebuild flags the view for redraw.
func (h *Host) MarkNeedsRebuild(*tooltip.Overlay) {
	h.dirty = true
}

// Overlays returns the inserted overlays, bottom first.
func (h *Host) Overlays() []*tooltip.Overlay {
	return h.overlays
}

// Size returns the last measured size of o.
func (h *Host) Size(o *tooltip.Overlay) tooltip.Size {
	return h.sizes[o]
}

// Bounds returns the on-screen rectangle of o, animation offset included.
func (h *Host) Bounds(o *tooltip.Overlay) tooltip.Rect {
	p := o.Position()
	s := h.sizes[o]
	return tooltip.NewRect(p.X, p.Y, s.Width, s.Height)
}

// measure reports the content size of every overlay back to its tooltip.
func (h *Host) measure() {
	for _, o := range h.overlays {
		s := measure(o)
		h.sizes[o] = s
		o.ReportSize(s)
	}
}

// takeDirty reports whether anything changed since the previous call.
func (h *Host) takeDirty() bool {
	d := h.dirty
	h.dirty = false
	return d
}

// measure returns the bordered, padded box size for o's text.
func measure(o *tooltip.Overlay) tooltip.Size {
	return tooltip.Size{
		Width:  float64(lipgloss.Width(label(o)) + 4),
		Height: 3,
	}
}

func label(o *tooltip.Overlay) string {
	if s, ok := o.Content().(string); ok {
		return s
	}
	return o.Text()
}
