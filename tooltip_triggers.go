package tooltip

// Handle dispatches a trigger input to the matching method.
func (t *Tooltip) Handle(tr Trigger) {
	switch tr {
	case PointerEnterAnchor:
		t.PointerEnterAnchor()
	case PointerExitAnchor:
		t.PointerExitAnchor()
	case PointerEnterOverlay:
		t.PointerEnterOverlay()
	case PointerExitOverlay:
		t.PointerExitOverlay()
	case TapAnchor:
		t.Tap()
	}
}

// Tap toggles the tooltip when tap is enabled.
func (t *Tooltip) Tap() {
	if t.disposed || !t.cfg.tap {
		return
	}
	t.cancel(&t.waitTok)
	if t.state.isShown() {
		t.requestHide("tap")
	} else {
		t.requestShow("tap")
	}
}

// PointerEnterAnchor handles the pointer entering the anchor.
//
// When hidden it shows, after the wait duration if one is configured. When
// already visible it restarts the auto-hide countdown instead.
func (t *Tooltip) PointerEnterAnchor() {
	if t.disposed || !t.cfg.hover {
		return
	}
	// The pointer came back before an interactive hide went through.
	t.cancel(&t.hideTok)

	if t.state.isShown() {
		if t.state == Visible {
			t.startAutoHide()
		}
		return
	}
	if t.cfg.wait <= 0 {
		t.requestShow("hover")
		return
	}
	if t.waitTok == 0 {
		t.waitTok = t.sched.After(t.cfg.wait, func() {
			t.waitTok = 0
			t.requestShow("hover")
		})
	}
}

// PointerExitAnchor handles the pointer leaving the anchor.
//
// A pending wait is cancelled. With an auto-hide duration the timer alone
// decides when to hide. Otherwise interactive tooltips hide after the
// debounce and non-interactive ones hide immediately.
func (t *Tooltip) PointerExitAnchor() {
	if t.disposed || !t.cfg.hover {
		return
	}
	t.cancel(&t.waitTok)
	if t.cfg.show > 0 {
		return
	}
	if t.cfg.interactive {
		t.startHideDebounce()
		return
	}
	t.requestHide("pointer exit")
}

// PointerEnterOverlay handles the pointer entering the overlay content of
// an interactive tooltip. It cancels the pending hide and pauses auto-hide.
func (t *Tooltip) PointerEnterOverlay() {
	if t.disposed || !t.cfg.interactive {
		return
	}
	t.overOverlay = true
	t.cancel(&t.hideTok)
	t.cancel(&t.autoTok)
}

// PointerExitOverlay handles the pointer leaving the overlay content of an
// interactive tooltip. Auto-hide restarts from its full duration; without
// one the hide debounce starts.
func (t *Tooltip) PointerExitOverlay() {
	if t.disposed || !t.cfg.interactive {
		return
	}
	t.overOverlay = false
	if t.cfg.show > 0 {
		if t.state == Visible {
			t.startAutoHide()
		}
		return
	}
	t.startHideDebounce()
}

func (t *Tooltip) startHideDebounce() {
	if !t.state.isShown() {
		return
	}
	t.cancel(&t.hideTok)
	t.hideTok = t.sched.After(t.cfg.hideDebounce, func() {
		t.hideTok = 0
		t.requestHide("debounce")
	})
}

// startAutoHide (re)starts the auto-hide countdown from its full duration.
// It does nothing while the pointer is over the overlay.
func (t *Tooltip) startAutoHide() {
	if t.cfg.show <= 0 || t.overOverlay {
		return
	}
	t.cancel(&t.autoTok)
	t.autoTok = t.sched.After(t.cfg.show, func() {
		t.autoTok = 0
		if t.state == Visible {
			t.requestHide("auto-hide")
		}
	})
}
