package tooltip

// Mounts tracks which tooltips are part of the active display tree.
// Uses mark-and-sweep: during each build pass the host marks every tooltip
// whose anchor is present, then calls Sweep, which force-hides every tooltip
// marked in an earlier pass but not in this one. This guarantees no overlay
// outlives its anchor's presence in the tree.
type Mounts struct {
	active map[*Tooltip]bool
	marked map[*Tooltip]bool
}

// NewMounts creates an empty mount tracker.
func NewMounts() *Mounts {
	return &Mounts{
		active: make(map[*Tooltip]bool),
		marked: make(map[*Tooltip]bool),
	}
}

// Mark records t as present in the current build pass.
func (m *Mounts) Mark(t *Tooltip) {
	m.marked[t] = true
}

// Sweep force-hides tooltips not marked since the previous Sweep and
// starts a new pass. It returns the number of tooltips swept.
func (m *Mounts) Sweep() int {
	swept := 0
	for t := range m.active {
		if !m.marked[t] {
			t.forceHide("unmounted")
			swept++
		}
	}
	m.active = m.marked
	m.marked = make(map[*Tooltip]bool)
	return swept
}

// Unmount disposes t and stops tracking it.
func (m *Mounts) Unmount(t *Tooltip) {
	delete(m.active, t)
	delete(m.marked, t)
	t.Dispose()
}

// Len returns the number of tooltips active after the last Sweep.
func (m *Mounts) Len() int {
	return len(m.active)
}
