package sat

// DPLLSolver is the named simpler sibling of the CDCL Driver (spec §1):
// plain Davis-Putnam-Logemann-Loveland backtracking search with no
// conflict-driven learning, sharing the ClauseDatabase and Propagator with
// the CDCL driver. Unlike Driver, its search is genuinely recursive — §9
// permits "bounded recursion (decision depth ≤ N)" as an alternative to an
// explicit loop for anything other than the CDCL driver itself, and DPLL's
// recursion depth is bounded by the number of variables.
type DPLLSolver struct {
	db    *ClauseDatabase
	trail *Trail
	graph *ImplicationGraph
	prop  *Propagator
}

// NewDPLLSolver returns a solver over db. db must not yet have had any
// simplify/undo calls applied.
func NewDPLLSolver(db *ClauseDatabase) *DPLLSolver {
	trail := NewTrail(db.NumVars())
	graph := NewImplicationGraph()
	return &DPLLSolver{
		db:    db,
		trail: trail,
		graph: graph,
		prop:  NewPropagator(db, trail, graph),
	}
}

// Solve runs DPLL to completion. It never returns Unknown: DPLL has no
// budget concept, matching original_source/SAT_solver.py (the pre-CDCL
// prototype), which always runs to a definite verdict.
func (s *DPLLSolver) Solve() (Outcome, Assignment) {
	if s.search() {
		return Sat, s.extractAssignment()
	}
	return Unsat, Assignment{}
}

// search exhausts pure literals and propagation at the current level, then
// either reports success, failure, or branches on a decision literal and
// its negation in turn.
func (s *DPLLSolver) search() bool {
	for {
		if _, ok := s.prop.AssignPureLiteral(); !ok {
			break
		}
	}

	if conflict := s.prop.Propagate(); conflict != nil {
		return false
	}

	if s.db.NumUnsat() == 0 {
		return true
	}

	lit := BaselineHeuristic{}.Next(s.db)

	for _, candidate := range [2]Literal{lit, lit.Opposite()} {
		s.prop.Decide(candidate)

		if s.search() {
			return true
		}

		s.backtrackOneLevel()
	}

	return false
}

// backtrackOneLevel undoes exactly the most recently opened decision level,
// mirroring Driver.Erase but without conflict analysis: DPLL backtracks
// chronologically, one branch at a time.
func (s *DPLLSolver) backtrackOneLevel() {
	popped := s.trail.PopAbove(s.trail.Level() - 1)
	for _, e := range popped {
		s.db.Undo(e.Var)
		s.graph.DeleteNode(NodeID(e.Var))
	}
}

func (s *DPLLSolver) extractAssignment() Assignment {
	values := make([]bool, s.db.NumVars())
	for v := 0; v < s.db.NumVars(); v++ {
		switch s.db.varState[v] {
		case True:
			values[v] = true
		case False:
			values[v] = false
		default:
			values[v] = true
		}
	}
	return NewAssignment(values)
}
