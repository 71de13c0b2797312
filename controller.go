package tooltip

import "sync"

// Controller is an externally observable "should show" flag for one tooltip.
//
// Show and Hide are no-ops, and notify nobody, when the flag already has the
// requested value. Toggle always flips the flag and always notifies.
//
// The tooltip keeps the flag in sync with its own state without notifying:
// after a hover-triggered show the flag reads true, and after any
// autonomous hide (timer, tap, teardown) it reads false, so a later Show
// always works.
//
// Example usage:
//
//	ctrl := tooltip.NewController()
//	tip, _ := tooltip.New(anchor, host, loop, tooltip.WithText("hi"), tooltip.WithController(ctrl))
//	ctrl.Show()
type Controller struct {
	mu       sync.RWMutex
	show     bool
	nextID   uint64
	bindings []*binding
}

// binding is one callback registered with Bind.
type binding struct {
	id     uint64
	fn     func(bool)
	active bool
}

// Unbind removes the callback Bind registered. Calling it more than once is
// harmless.
type Unbind func()

// NewController creates a controller with the flag cleared.
func NewController() *Controller {
	return &Controller{}
}

// ShouldShow returns the current flag.
func (c *Controller) ShouldShow() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.show
}

// Show sets the flag and notifies bindings if it was clear.
func (c *Controller) Show() {
	c.set(true, false)
}

// Hide clears the flag and notifies bindings if it was set.
func (c *Controller) Hide() {
	c.set(false, false)
}

// Toggle flips the flag and notifies bindings.
func (c *Controller) Toggle() {
	c.set(!c.ShouldShow(), true)
}

// Bind registers fn to be called with the new value whenever the flag
// changes through Show, Hide or Toggle. Bindings run in registration order.
func (c *Controller) Bind(fn func(bool)) Unbind {
	c.mu.Lock()
	c.nextID++
	b := &binding{id: c.nextID, fn: fn, active: true}
	c.bindings = append(c.bindings, b)
	c.mu.Unlock()

	return func() {
		c.mu.Lock()
		b.active = false
		c.mu.Unlock()
	}
}

// sync updates the flag without notifying anyone.
func (c *Controller) sync(v bool) {
	c.mu.Lock()
	c.show = v
	c.mu.Unlock()
}

func (c *Controller) set(v bool, force bool) {
	c.mu.Lock()
	if c.show == v && !force {
		c.mu.Unlock()
		return
	}
	c.show = v
	// Unbound callbacks are pruned here; the rest are notified outside the lock.
	active := make([]*binding, 0, len(c.bindings))
	for _, b := range c.bindings {
		if b.active {
			active = append(active, b)
		}
	}
	c.bindings = active
	c.mu.Unlock()

	for _, b := range active {
		c.mu.RLock()
		live := b.active
		c.mu.RUnlock()
		if live {
			b.fn(v)
		}
	}
}
