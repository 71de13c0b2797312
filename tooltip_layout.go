package tooltip

import (
	"time"

	"github.com/grindlemire/go-tooltip/internal/placement"
)

// Layout re-reads the anchor geometry and recomputes the placement. Hosts
// call it on every layout pass; it does nothing while Hidden.
//
// When the resolved direction differs from the previous pass, a rebuild is
// scheduled for the next frame rather than run synchronously.
func (t *Tooltip) Layout() {
	if t.disposed || t.overlay == nil {
		return
	}
	t.layout()
}

// Request returns the placement request the next layout pass would use.
func (t *Tooltip) Request() PlacementRequest {
	return PlacementRequest{
		Target:          t.anchor.Rect(),
		Viewport:        t.anchor.Viewport(),
		Overlay:         t.size,
		Direction:       t.cfg.direction,
		Alignment:       t.cfg.alignment,
		Gap:             t.cfg.gap,
		CrossAxisOffset: t.cfg.crossAxisOffset,
		ScreenMargin:    t.cfg.screenMargin,
		TextDirection:   t.textDirection(),
	}
}

func (t *Tooltip) layout() {
	req := t.Request()
	res := t.placer.Place(req)
	t.overlay.placement = res
	if t.cfg.arrow != nil {
		g := placement.ArrowFor(req, res, *t.cfg.arrow)
		t.overlay.arrow = &g
	}
	t.updateFrame()
}

func (t *Tooltip) reportSize(o *Overlay, s Size) {
	if t.disposed || o != t.overlay || s == t.size {
		return
	}
	t.size = s
	t.layout()
}

func (t *Tooltip) scheduleRebuild() {
	if t.rebuildTok != 0 {
		return
	}
	t.rebuildTok = t.sched.Frame(func(time.Duration) {
		t.rebuildTok = 0
		if t.overlay != nil {
			t.host.MarkNeedsRebuild(t.overlay)
		}
	})
}
