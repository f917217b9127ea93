package sat

import "github.com/rhartert/yagh"

// Heuristic picks the next decision literal. spec.md requires a
// deterministic baseline and allows VSIDS/LRB-style heuristics as an
// optional extension (§1, "Advanced heuristics ... are optional
// extensions; a deterministic baseline heuristic is required").
type Heuristic interface {
	// Next returns the next decision literal. db is guaranteed to have at
	// least one unsat clause.
	Next(db *ClauseDatabase) Literal

	// Bump is called whenever a variable participates in conflict
	// analysis (spec §4.4's cause set). Baseline heuristics ignore it.
	Bump(varID int)

	// Decay is called once per conflict, after analysis. Baseline
	// heuristics ignore it.
	Decay()
}

// BaselineHeuristic implements the required deterministic rule from spec
// §4.4: "first literal of the first unsat clause, polarity = not its
// current is_negated flag". Clauses are scanned by ascending id so that
// the choice does not depend on list position, which shifts under
// Simplify/Undo — matching FindUnitClause/FindEmptyClause's tie-break.
type BaselineHeuristic struct{}

func (BaselineHeuristic) Next(db *ClauseDatabase) Literal {
	var best *Clause
	for _, c := range db.unsat {
		if best == nil || c.id < best.id {
			best = c
		}
	}
	lit := best.Unused()[0]
	return PositiveLiteral(lit.VarID()).pick(lit.IsNegated())
}

func (BaselineHeuristic) Bump(int) {}
func (BaselineHeuristic) Decay()   {}

// pick returns l if negated is false, or its opposite otherwise. Small
// helper so Next reads as "the literal, with polarity flipped" in one
// place.
func (l Literal) pick(negated bool) Literal {
	if negated {
		return l.Opposite()
	}
	return l
}

// VSIDSHeuristic is the optional extension mentioned in spec §1. It scores
// variables by how often they appear in conflict analysis, decaying older
// scores geometrically — the classic Variable State Independent Decaying
// Sum scheme — and always proposes the positive polarity (no phase
// saving), matching the teacher's non-phase-saving default
// (Options.PhaseSaving = false).
//
// The priority queue itself is github.com/rhartert/yagh's IntMap, the same
// dependency the teacher uses for its VarOrder.
type VSIDSHeuristic struct {
	order *yagh.IntMap[float64]

	scores   []float64
	scoreInc float64
	decay    float64
}

// NewVSIDSHeuristic returns a heuristic over numVars variables (0-indexed).
func NewVSIDSHeuristic(numVars int, decay float64) *VSIDSHeuristic {
	h := &VSIDSHeuristic{
		order:    yagh.New[float64](0),
		scores:   make([]float64, numVars),
		scoreInc: 1,
		decay:    decay,
	}
	for v := 0; v < numVars; v++ {
		h.order.GrowBy(1)
		h.order.Put(v, 0)
	}
	return h
}

func (h *VSIDSHeuristic) Next(db *ClauseDatabase) Literal {
	for {
		v, ok := h.order.Pop()
		if !ok {
			panic("sat: VSIDSHeuristic.Next called with no unassigned variable left")
		}
		// Variables assigned by propagation or the pure-literal rule are
		// never popped, so they are still queued; such stale
		// (already-assigned) entries are dropped here, mirroring the
		// teacher's own NextDecision loop.
		if db.varState[v.Elem] != Unknown {
			continue
		}
		return PositiveLiteral(v.Elem) // no phase saving: always try true first
	}
}

func (h *VSIDSHeuristic) Bump(varID int) {
	h.scores[varID] += h.scoreInc
	h.order.Put(varID, -h.scores[varID])
	if h.scores[varID] > 1e100 {
		h.rescale()
	}
}

func (h *VSIDSHeuristic) Decay() {
	h.scoreInc /= h.decay
	if h.scoreInc > 1e100 {
		h.rescale()
	}
}

func (h *VSIDSHeuristic) rescale() {
	h.scoreInc *= 1e-100
	for v, s := range h.scores {
		h.scores[v] = s * 1e-100
		h.order.Put(v, -h.scores[v])
	}
}

// Reinsert must be called by the driver whenever a variable becomes
// unassigned again (backjump), so the heap can propose it again.
func (h *VSIDSHeuristic) Reinsert(varID int) {
	h.order.Put(varID, -h.scores[varID])
}
