package tooltip

// Registry tracks the tooltips that are currently on screen and enforces
// that at most one of them is showing or visible at any time.
//
// A tooltip joins the registry synchronously when a show is initiated and
// leaves it when its hide animation finishes or it is force-hidden, so a
// tooltip animating out is still a member until it reaches Hidden.
//
// A Registry is not safe for concurrent use; it belongs to one event loop.
type Registry struct {
	members []*Tooltip
}

var defaultRegistry = NewRegistry()

// NewRegistry creates an empty registry. Use one per event loop, or one per
// test case to keep tests independent.
func NewRegistry() *Registry {
	return &Registry{}
}

// DefaultRegistry returns the process-wide registry used by tooltips created
// without WithRegistry.
func DefaultRegistry() *Registry {
	return defaultRegistry
}

// Snapshot returns a copy of the current members in join order.
func (r *Registry) Snapshot() []*Tooltip {
	out := make([]*Tooltip, len(r.members))
	copy(out, r.members)
	return out
}

// Visible returns the members that are Showing or Visible.
func (r *Registry) Visible() []*Tooltip {
	var out []*Tooltip
	for _, t := range r.members {
		if t.state.isShown() {
			out = append(out, t)
		}
	}
	return out
}

// Len returns the number of members, including ones animating out.
func (r *Registry) Len() int {
	return len(r.members)
}

// Contains reports whether t is a member.
func (r *Registry) Contains(t *Tooltip) bool {
	return r.indexOf(t) >= 0
}

// HideAll force-hides every member, e.g. on navigation away.
func (r *Registry) HideAll() {
	for _, t := range r.Snapshot() {
		t.ForceHide()
	}
}

// hideOthers starts hiding every member other than keep that is showing or
// visible. It works on a snapshot so members may leave while it runs.
func (r *Registry) hideOthers(keep *Tooltip) {
	for _, t := range r.Snapshot() {
		if t != keep && t.state.isShown() {
			t.requestHide("superseded")
		}
	}
}

func (r *Registry) add(t *Tooltip) {
	if r.indexOf(t) < 0 {
		r.members = append(r.members, t)
	}
}

func (r *Registry) remove(t *Tooltip) {
	if i := r.indexOf(t); i >= 0 {
		r.members = append(r.members[:i], r.members[i+1:]...)
	}
}

func (r *Registry) indexOf(t *Tooltip) int {
	for i, m := range r.members {
		if m == t {
			return i
		}
	}
	return -1
}
