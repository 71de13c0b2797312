package sched

import "time"

// frameSet holds frame callbacks in registration order. Callbacks are taken
// one at a time so that a callback cancelled by an earlier one in the same
// frame does not run.
type frameSet struct {
	fns   map[Token]func(time.Duration)
	order []Token
}

func (s *frameSet) add(tok Token, fn func(time.Duration)) {
	if s.fns == nil {
		s.fns = make(map[Token]func(time.Duration))
	}
	s.fns[tok] = fn
	s.order = append(s.order, tok)
}

func (s *frameSet) remove(tok Token) {
	delete(s.fns, tok)
}

func (s *frameSet) take(tok Token) (func(time.Duration), bool) {
	fn, ok := s.fns[tok]
	if ok {
		delete(s.fns, tok)
	}
	return fn, ok
}

func (s *frameSet) len() int {
	return len(s.fns)
}

// drainOrder returns the tokens registered so far and starts a new order
// list for callbacks added while the returned ones run.
func (s *frameSet) drainOrder() []Token {
	order := s.order
	s.order = nil
	return order
}
