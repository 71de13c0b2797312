package tooltip

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/grindlemire/go-tooltip/internal/anim"
	"github.com/grindlemire/go-tooltip/internal/debug"
	"github.com/grindlemire/go-tooltip/internal/placement"
	"github.com/grindlemire/go-tooltip/internal/sched"
	"github.com/grindlemire/go-tooltip/internal/textdir"
)

// Tooltip owns the lifecycle of one anchored overlay: its visibility state,
// its pending timers and its show/hide animation.
//
// State machine:
//
//	Hidden -> Showing -> Visible -> Hiding -> Hidden
//
// RequestShow while Hiding and RequestHide while Showing reverse the running
// animation from its current progress. Requests for the state a tooltip is
// already in or heading to are no-ops.
type Tooltip struct {
	id     string
	cfg    config
	anchor Anchor
	host   Host
	sched  Scheduler
	ctrl   *Controller
	reg    *Registry
	log    *log.Logger

	state   LifecycleState
	anim    *anim.Animation
	overlay *Overlay
	placer  placement.Placer
	size    Size

	// Pending callbacks; zero means none. At most one of each kind.
	frameTok   sched.Token
	waitTok    sched.Token
	hideTok    sched.Token
	autoTok    sched.Token
	rebuildTok sched.Token

	// overOverlay holds auto-hide off while the pointer rests on the overlay.
	overOverlay bool

	unbind   Unbind
	disposed bool
}

// New creates a hidden tooltip for anchor, inserting its overlay into host
// and scheduling timers and animation frames on s.
//
// Configuration errors wrap ErrInvalidConfig.
func New(anchor Anchor, host Host, s Scheduler, opts ...Option) (*Tooltip, error) {
	switch {
	case anchor == nil:
		return nil, invalid("nil anchor")
	case host == nil:
		return nil, invalid("nil host")
	case s == nil:
		return nil, invalid("nil scheduler")
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	t := &Tooltip{
		id:     uuid.NewString(),
		cfg:    cfg,
		anchor: anchor,
		host:   host,
		sched:  s,
		ctrl:   cfg.controller,
		reg:    cfg.registry,
		log:    cfg.logger,
		anim:   anim.New(animationDuration(cfg)),
	}
	if t.ctrl == nil {
		t.ctrl = NewController()
	}
	if t.reg == nil {
		t.reg = DefaultRegistry()
	}
	if t.log == nil {
		t.log = debug.Logger()
	}
	t.placer.OnDirectionChange = func(prev, next Direction) {
		t.log.Debug("direction changed", "id", t.id, "from", prev, "to", next)
		t.scheduleRebuild()
	}

	t.unbind = t.ctrl.Bind(func(show bool) {
		if show {
			t.requestShow("controller")
		} else {
			t.requestHide("controller")
		}
	})
	if t.ctrl.ShouldShow() {
		t.requestShow("controller")
	}
	return t, nil
}

func animationDuration(cfg config) time.Duration {
	if cfg.animKind == AnimationNone {
		return 0
	}
	return cfg.animDuration
}

// ID returns a unique identifier for this tooltip.
func (t *Tooltip) ID() string {
	return t.id
}

func (t *Tooltip) String() string {
	return fmt.Sprintf("tooltip(%s, %v)", t.id, t.state)
}

// State returns the current lifecycle state.
func (t *Tooltip) State() LifecycleState {
	return t.state
}

// Controller returns the tooltip's external controller.
func (t *Tooltip) Controller() *Controller {
	return t.ctrl
}

// Overlay returns the inserted overlay, or nil while Hidden.
func (t *Tooltip) Overlay() *Overlay {
	return t.overlay
}

// Progress returns the raw animation progress in [0,1].
func (t *Tooltip) Progress() float64 {
	return t.anim.Value()
}

// Disposed reports whether Dispose has been called.
func (t *Tooltip) Disposed() bool {
	return t.disposed
}

// RequestShow starts showing: Hidden -> Showing, or reverses a running hide.
// Every other showing or visible tooltip in the registry starts hiding first.
func (t *Tooltip) RequestShow() {
	t.requestShow("request")
}

// RequestHide starts hiding: Visible -> Hiding, or reverses a running show.
func (t *Tooltip) RequestHide() {
	t.requestHide("request")
}

// ForceHide goes straight to Hidden from any state without animating,
// removing the overlay and cancelling every pending timer. Idempotent.
func (t *Tooltip) ForceHide() {
	t.forceHide("force")
}

// Dispose force-hides the tooltip and detaches it from its controller.
// Every later call on the tooltip is a no-op.
func (t *Tooltip) Dispose() {
	if t.disposed {
		return
	}
	t.forceHide("dispose")
	t.unbind()
	t.disposed = true
}

func (t *Tooltip) requestShow(reason string) {
	if t.disposed || t.state.isShown() {
		return
	}
	t.cancel(&t.waitTok)
	t.cancel(&t.hideTok)

	// Snapshot-then-hide-others-then-show-self, with no yield in between.
	t.reg.hideOthers(t)
	t.reg.add(t)

	from := t.state
	t.setState(Showing, reason)
	t.ctrl.sync(true)

	if from == Hidden {
		t.placer.Reset()
		t.overlay = &Overlay{tooltip: t}
		t.updateFrame()
		t.host.Insert(t.overlay)
		t.layout()
		if t.cfg.onShow != nil {
			t.cfg.onShow()
		}
		// onShow may have hidden us again.
		if t.state != Showing {
			return
		}
	}

	t.anim.Forward()
	t.drive()
}

func (t *Tooltip) requestHide(reason string) {
	if t.disposed || !t.state.isShown() {
		return
	}
	t.cancel(&t.waitTok)
	t.cancel(&t.hideTok)
	t.cancel(&t.autoTok)

	t.setState(Hiding, reason)
	t.ctrl.sync(false)
	t.anim.Reverse()
	t.drive()
}

func (t *Tooltip) forceHide(reason string) {
	if t.disposed {
		return
	}
	t.cancelAll()
	t.overOverlay = false
	t.anim.Reset()
	t.ctrl.sync(false)
	t.reg.remove(t)

	if t.overlay != nil {
		o := t.overlay
		t.overlay = nil
		t.host.Remove(o)
	}
	if t.state != Hidden {
		t.setState(Hidden, reason)
		if t.cfg.onHide != nil {
			t.cfg.onHide()
		}
	}
}

// drive makes sure exactly one frame callback is advancing the animation.
// Zero-length animations settle synchronously.
func (t *Tooltip) drive() {
	if t.frameTok != 0 {
		return
	}
	if !t.anim.IsAnimating() {
		t.settle()
		return
	}
	if t.anim.Duration() <= 0 {
		t.anim.Tick(0)
		t.updateFrame()
		t.settle()
		return
	}
	t.frameTok = t.sched.Frame(t.tick)
}

func (t *Tooltip) tick(dt time.Duration) {
	t.frameTok = 0
	// A reversal can land exactly on the endpoint before any progress was made.
	done := t.anim.Tick(dt) || !t.anim.IsAnimating()
	t.updateFrame()
	if t.overlay != nil {
		t.host.MarkNeedsRebuild(t.overlay)
	}
	if done {
		t.settle()
		return
	}
	t.frameTok = t.sched.Frame(t.tick)
}

// settle resolves a transient state once the animation reaches its endpoint.
func (t *Tooltip) settle() {
	switch {
	case t.state == Showing && t.anim.Status() == anim.Completed:
		t.setState(Visible, "animation")
		t.startAutoHide()
	case t.state == Hiding && t.anim.Status() == anim.Dismissed:
		t.finishHide()
	}
}

func (t *Tooltip) finishHide() {
	// A wait armed by a re-entry during the hide still goes ahead.
	t.cancelTransient()
	t.overOverlay = false
	t.reg.remove(t)
	if t.overlay != nil {
		o := t.overlay
		t.overlay = nil
		t.host.Remove(o)
	}
	t.setState(Hidden, "animation")
	if t.cfg.onHide != nil {
		t.cfg.onHide()
	}
}

func (t *Tooltip) setState(next LifecycleState, reason string) {
	if t.state == next {
		return
	}
	t.log.Debug("tooltip transition", "id", t.id, "from", t.state, "to", next, "reason", reason)
	t.state = next
}

func (t *Tooltip) updateFrame() {
	if t.overlay == nil {
		return
	}
	eased := t.cfg.easing.Transform(t.anim.Value())
	t.overlay.frame = anim.FrameFor(t.cfg.animKind, t.overlay.placement.Direction, eased)
}

// cancel cancels the callback held in tok, if any, and clears it.
func (t *Tooltip) cancel(tok *sched.Token) {
	if *tok != 0 {
		t.sched.Cancel(*tok)
		*tok = 0
	}
}

func (t *Tooltip) cancelAll() {
	t.cancel(&t.waitTok)
	t.cancelTransient()
}

// cancelTransient cancels everything except the hover wait.
func (t *Tooltip) cancelTransient() {
	t.cancel(&t.frameTok)
	t.cancel(&t.hideTok)
	t.cancel(&t.autoTok)
	t.cancel(&t.rebuildTok)
}

func (t *Tooltip) textDirection() TextDirection {
	return textdir.Resolve(t.cfg.textDirection, t.cfg.text)
}
