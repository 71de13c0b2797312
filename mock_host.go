package tooltip

// MockHost is a Host that records calls, for testing.
type MockHost struct {
	overlays []*Overlay

	InsertCount  int
	RemoveCount  int
	RebuildCount int
}

// Ensure MockHost implements Host.
var _ Host = (*MockHost)(nil)

// NewMockHost creates an empty mock host.
func NewMockHost() *MockHost {
	return &MockHost{}
}

// Insert records o as inserted.
func (h *MockHost) Insert(o *Overlay) {
	h.InsertCount++
	h.overlays = append(h.overlays, o)
}

// Remove records o as removed.
func (h *MockHost) Remove(o *Overlay) {
	h.RemoveCount++
	for i, existing := range h.overlays {
		if existing == o {
			h.overlays = append(h.overlays[:i], h.overlays[i+1:]...)
			return
		}
	}
}

// MarkNeedsRebuild counts rebuild requests.
func (h *MockHost) MarkNeedsRebuild(*Overlay) {
	h.RebuildCount++
}

// Overlays returns the currently inserted overlays.
func (h *MockHost) Overlays() []*Overlay {
	return h.overlays
}
