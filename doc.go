// Package tooltip positions an anchored overlay next to a target element and
// runs its show/hide lifecycle.
//
// Users import this single package for the complete public API:
// placement types, the Tooltip lifecycle controller, the external Controller
// flag, the single-visible-instance Registry and the schedulers that drive
// timers and animations.
//
// A Tooltip is attached to an Anchor (where the target is) and a Host (where
// overlays are inserted). Trigger inputs such as pointer enter/exit and taps
// are fed to the Tooltip by the host; the Tooltip decides when to show or
// hide, asks the placement engine where to draw, and drives a reversible
// show/hide animation on its Scheduler.
//
// Thread Safety Rules:
//   - A Tooltip, its Registry and its Controller belong to one event loop
//   - Every method must be called from that loop (e.g. via Loop.Post)
//
// Example usage:
//
//	loop, _ := tooltip.NewLoop()
//	tip, err := tooltip.New(anchor, host, loop,
//	    tooltip.WithText("Save the current file"),
//	    tooltip.WithDirection(tooltip.Bottom),
//	    tooltip.WithWaitDuration(300*time.Millisecond),
//	)
//	if err != nil {
//	    return err
//	}
//	defer tip.Dispose()
//	loop.Post(tip.PointerEnterAnchor)
package tooltip
