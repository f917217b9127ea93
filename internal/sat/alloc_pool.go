//go:build clausepool

package sat

import "sync"

// Pooled allocation of the literal slices backing Clause.unused/Clause.used.
// Adapted from the teacher's clause/watcher slice pools: same bucketed-size
// sync.Pool idiom, retargeted at the reversible unused/used partition instead
// of watch lists, since this solver does not use watched literals.

var litPool8 = sync.Pool{
	New: func() any {
		s := make([]Literal, 0, 8)
		return &s
	},
}

var litPool64 = sync.Pool{
	New: func() any {
		s := make([]Literal, 0, 64)
		return &s
	},
}

var litPool256 = sync.Pool{
	New: func() any {
		s := make([]Literal, 0, 256)
		return &s
	},
}

func poolFor(capacity int) *sync.Pool {
	switch {
	case capacity <= 8:
		return &litPool8
	case capacity <= 64:
		return &litPool64
	default:
		return &litPool256
	}
}

func allocLiterals(capacity int) []Literal {
	ref := poolFor(capacity).Get().(*[]Literal)
	s := (*ref)[:0]
	if cap(s) < capacity {
		s = make([]Literal, 0, capacity)
	}
	return s
}

func freeLiterals(lits []Literal) {
	lits = lits[:0]
	poolFor(cap(lits)).Put(&lits)
}
