package tooltip

import (
	"testing"
	"time"
)

func TestTrigger_HoverWithWait(t *testing.T) {
	f := newFixture(t, WithWaitDuration(300*time.Millisecond))

	f.tip.PointerEnterAnchor()
	f.sched.Advance(299 * time.Millisecond)
	f.expectState(t, Hidden)

	// Re-entering must not restart or duplicate the wait.
	f.tip.PointerEnterAnchor()
	f.sched.Advance(time.Millisecond)
	f.expectState(t, Showing)
}

func TestTrigger_ExitCancelsWait(t *testing.T) {
	f := newFixture(t, WithWaitDuration(300*time.Millisecond))

	f.tip.PointerEnterAnchor()
	f.sched.Advance(200 * time.Millisecond)
	f.tip.PointerExitAnchor()
	f.sched.Advance(time.Second)

	f.expectState(t, Hidden)
	if f.shows != 0 {
		t.Errorf("onShow fired %d times after cancelled wait", f.shows)
	}
}

func TestTrigger_WaitArmedDuringHideSurvivesHide(t *testing.T) {
	f := newFixture(t, WithWaitDuration(200*time.Millisecond))
	f.tip.PointerEnterAnchor()
	f.sched.Advance(200*time.Millisecond + settleTime)
	f.expectState(t, Visible)

	f.tip.PointerExitAnchor()
	f.sched.Advance(50 * time.Millisecond)
	f.expectState(t, Hiding)

	f.tip.PointerEnterAnchor()
	f.sched.Advance(2 * time.Second)
	f.expectState(t, Visible)
	if f.shows != 2 || f.hides != 1 {
		t.Errorf("shows = %d, hides = %d, want 2 and 1", f.shows, f.hides)
	}
}

func TestTrigger_HoverWithoutWaitShowsImmediately(t *testing.T) {
	f := newFixture(t)
	f.tip.PointerEnterAnchor()
	f.expectState(t, Showing)
}

func TestTrigger_NonInteractiveExitHidesImmediately(t *testing.T) {
	f := newFixture(t)
	f.tip.PointerEnterAnchor()
	f.sched.Advance(settleTime)

	f.tip.PointerExitAnchor()
	f.expectState(t, Hiding)
}

func TestTrigger_InteractiveExitDebounces(t *testing.T) {
	f := newFixture(t, WithInteractive(true))
	f.tip.PointerEnterAnchor()
	f.sched.Advance(settleTime)

	f.tip.PointerExitAnchor()
	f.sched.Advance(DefaultHideDebounce - time.Millisecond)
	f.expectState(t, Visible)

	f.sched.Advance(time.Millisecond)
	f.expectState(t, Hiding)
}

func TestTrigger_EnterOverlayCancelsDebounce(t *testing.T) {
	f := newFixture(t, WithInteractive(true))
	f.tip.PointerEnterAnchor()
	f.sched.Advance(settleTime)

	f.tip.PointerExitAnchor()
	f.sched.Advance(50 * time.Millisecond)
	f.tip.PointerEnterOverlay()
	f.sched.Advance(5 * time.Second)
	f.expectState(t, Visible)

	f.tip.PointerExitOverlay()
	f.sched.Advance(DefaultHideDebounce)
	f.expectState(t, Hiding)
}

func TestTrigger_ReenterAnchorCancelsDebounce(t *testing.T) {
	f := newFixture(t, WithInteractive(true))
	f.tip.PointerEnterAnchor()
	f.sched.Advance(settleTime)

	f.tip.PointerExitAnchor()
	f.tip.PointerEnterAnchor()
	f.sched.Advance(time.Second)
	f.expectState(t, Visible)
}

func TestTrigger_OverlayEventsIgnoredWhenNotInteractive(t *testing.T) {
	f := newFixture(t, WithShowDuration(time.Second))
	f.tip.PointerEnterAnchor()
	f.sched.Advance(settleTime)

	// Would pause auto-hide if interactive.
	f.tip.PointerEnterOverlay()
	f.sched.Advance(time.Second)
	f.expectState(t, Hiding)
}

func TestTrigger_AutoHide(t *testing.T) {
	f := newFixture(t, WithShowDuration(time.Second))
	f.tip.PointerEnterAnchor()
	f.sched.Advance(settleTime)

	// Exit leaves hiding to the timer.
	f.tip.PointerExitAnchor()
	f.expectState(t, Visible)

	f.sched.Advance(800 * time.Millisecond)
	f.expectState(t, Visible)
	f.sched.Advance(time.Second)
	f.expectState(t, Hidden)
}

func TestTrigger_ReenterResetsAutoHide(t *testing.T) {
	f := newFixture(t, WithShowDuration(time.Second))
	f.tip.PointerEnterAnchor()
	f.sched.Advance(settleTime)

	f.sched.Advance(800 * time.Millisecond)
	f.tip.PointerEnterAnchor()
	f.sched.Advance(800 * time.Millisecond)
	f.expectState(t, Visible)

	f.sched.Advance(200 * time.Millisecond)
	f.expectState(t, Hiding)
}

func TestTrigger_OverlayPausesAndRestartsAutoHide(t *testing.T) {
	f := newFixture(t, WithShowDuration(time.Second), WithInteractive(true))
	f.tip.PointerEnterAnchor()
	f.sched.Advance(settleTime)

	f.sched.Advance(500 * time.Millisecond)
	f.tip.PointerEnterOverlay()
	f.sched.Advance(10 * time.Second)
	f.expectState(t, Visible)

	f.tip.PointerExitOverlay()
	f.sched.Advance(999 * time.Millisecond)
	f.expectState(t, Visible)
	f.sched.Advance(time.Millisecond)
	f.expectState(t, Hiding)
}

func TestTrigger_OverlayEnteredWhileShowingHoldsAutoHide(t *testing.T) {
	f := newFixture(t, WithShowDuration(300*time.Millisecond), WithInteractive(true))
	f.tip.PointerEnterAnchor()
	f.sched.Advance(50 * time.Millisecond)
	f.expectState(t, Showing)

	f.tip.PointerExitAnchor()
	f.tip.PointerEnterOverlay()
	f.sched.Advance(2 * time.Second)
	f.expectState(t, Visible)

	f.tip.PointerExitOverlay()
	f.sched.Advance(299 * time.Millisecond)
	f.expectState(t, Visible)
	f.sched.Advance(time.Millisecond)
	f.expectState(t, Hiding)
}

func TestTrigger_Tap(t *testing.T) {
	f := newFixture(t, WithTap(true), WithHover(false))

	f.tip.Tap()
	f.expectState(t, Showing)
	f.tip.Tap()
	f.expectState(t, Hiding)
	f.tip.Tap()
	f.expectState(t, Showing)

	f.sched.Advance(settleTime)
	f.tip.Tap()
	f.sched.Advance(settleTime)
	f.expectState(t, Hidden)
}

func TestTrigger_DisabledInputsAreIgnored(t *testing.T) {
	f := newFixture(t, WithHover(false))

	f.tip.PointerEnterAnchor()
	f.tip.Tap()
	f.sched.Advance(time.Second)
	f.expectState(t, Hidden)

	f.tip.RequestShow()
	f.sched.Advance(settleTime)
	f.tip.PointerExitAnchor()
	f.expectState(t, Visible)
}

func TestTrigger_Handle(t *testing.T) {
	f := newFixture(t, WithInteractive(true), WithTap(true))

	f.tip.Handle(PointerEnterAnchor)
	f.sched.Advance(settleTime)
	f.expectState(t, Visible)

	f.tip.Handle(PointerExitAnchor)
	f.tip.Handle(PointerEnterOverlay)
	f.sched.Advance(time.Second)
	f.expectState(t, Visible)

	f.tip.Handle(PointerExitOverlay)
	f.sched.Advance(DefaultHideDebounce + settleTime)
	f.expectState(t, Hidden)

	f.tip.Handle(TapAnchor)
	f.expectState(t, Showing)
}
