package placement

// Placer calls Place and remembers the last resolved direction.
// OnDirectionChange fires when a call resolves to a different direction
// than the call before it. The first call after construction or Reset
// never fires it.
//
// A Placer is not safe for concurrent use.
type Placer struct {
	OnDirectionChange func(prev, next Direction)

	last    Direction
	hasLast bool
}

// Place computes the placement for req and reports direction changes.
func (p *Placer) Place(req Request) Result {
	res := Place(req)
	if p.hasLast && res.Direction != p.last && p.OnDirectionChange != nil {
		p.OnDirectionChange(p.last, res.Direction)
	}
	p.last = res.Direction
	p.hasLast = true
	return res
}

// Last returns the direction resolved by the previous call, and false if
// there was none.
func (p *Placer) Last() (Direction, bool) {
	return p.last, p.hasLast
}

// Reset forgets the previous direction.
func (p *Placer) Reset() {
	p.hasLast = false
	p.last = Top
}
