package termhost

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	tooltip "github.com/grindlemire/go-tooltip"
)

// tickMsg carries the wall-clock time of a frame tick.
type tickMsg time.Time

// Clock is a tooltip.Scheduler for Bubble Tea programs. Callbacks are held
// by a virtual-clock scheduler; tick messages advance it by the wall-clock
// time elapsed since the previous tick, so every callback runs inside
// Update, on the program's goroutine.
//
// Ticks are only requested while something is pending.
type Clock struct {
	manual  *tooltip.ManualScheduler
	now     func() time.Time
	last    time.Time
	ticking bool
}

var _ tooltip.Scheduler = (*Clock)(nil)

// NewClock creates an idle clock ticking at the default frame rate.
func NewClock() *Clock {
	return &Clock{manual: tooltip.NewManualScheduler(), now: time.Now}
}

// After schedules fn d from now.
func (c *Clock) After(d time.Duration, fn func()) tooltip.Token {
	c.wake()
	return c.manual.After(d, fn)
}

// Frame schedules fn for the next tick.
func (c *Clock) Frame(fn func(time.Duration)) tooltip.Token {
	c.wake()
	return c.manual.Frame(fn)
}

// Cancel stops a pending callback.
func (c *Clock) Cancel(tok tooltip.Token) {
	c.manual.Cancel(tok)
}

// Pending returns the number of outstanding callbacks.
func (c *Clock) Pending() int {
	return c.manual.Pending()
}

// Cmd returns the command for the next tick, or nil when a tick is already
// in flight or nothing is pending.
func (c *Clock) Cmd() tea.Cmd {
	if c.ticking || c.manual.Pending() == 0 {
		return nil
	}
	c.ticking = true
	return tea.Tick(c.manual.FrameDuration, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// advance handles a tick delivered at t.
func (c *Clock) advance(t time.Time) {
	c.ticking = false
	if c.last.IsZero() {
		c.last = t
	}
	if elapsed := t.Sub(c.last); elapsed > 0 {
		c.manual.Advance(elapsed)
	}
	c.last = t
	if c.manual.Pending() == 0 {
		c.last = time.Time{}
	}
}

// wake starts measuring elapsed time when the clock was idle, so time
// spent idle is not charged to new callbacks.
func (c *Clock) wake() {
	if c.last.IsZero() {
		c.last = c.now()
	}
}
