package sat

import "time"

// Options configures a Driver. Only the dials spec.md actually asks for are
// exposed: MaxConflicts and Timeout are the optional budget of §5
// ("the driver must accept an optional budget ... checked between
// decisions and between propagation rounds"); restarts and clause-activity
// decay are explicit Non-goals and have no corresponding fields.
type Options struct {
	// Heuristic picks decision literals. Defaults to BaselineHeuristic,
	// the required deterministic rule, if left nil.
	Heuristic Heuristic

	// MaxConflicts bounds the number of conflicts before giving up with
	// Unknown. Negative means unbounded.
	MaxConflicts int64

	// Timeout bounds wall-clock time before giving up with Unknown. Zero
	// means unbounded.
	Timeout time.Duration

	// Debug turns on ClauseDatabase's full invariant rescan after every
	// undo (spec §4.1: "a debug/assert mode must check counters against a
	// full rescan after every undo").
	Debug bool
}

// DefaultOptions is the deterministic, unbudgeted configuration.
var DefaultOptions = Options{MaxConflicts: -1}

// Driver is the CDCL search loop of spec §4.4: decide, propagate, on
// conflict analyze and backjump, repeat until a model is found or the
// formula is refuted.
type Driver struct {
	db    *ClauseDatabase
	trail *Trail
	graph *ImplicationGraph
	prop  *Propagator

	heuristic Heuristic
	seen      *ResetSet

	opts      Options
	startTime time.Time

	TotalConflicts int64
	TotalDecisions int64

	// learnedSizeEMA tracks the moving average of learned-clause width, a
	// standard health signal for a CDCL run (a rising average usually means
	// the search is thrashing). It does not feed back into any decision;
	// restarts keyed off it are an explicit Non-goal.
	learnedSizeEMA ema
}

// NewDriver returns a driver over db. db must not yet have had any
// simplify/undo calls applied (a fresh database straight from the parser).
func NewDriver(db *ClauseDatabase, opts Options) *Driver {
	db.Debug = opts.Debug

	heuristic := opts.Heuristic
	if heuristic == nil {
		heuristic = BaselineHeuristic{}
	}

	trail := NewTrail(db.NumVars())
	graph := NewImplicationGraph()
	return &Driver{
		db:             db,
		trail:          trail,
		graph:          graph,
		prop:           NewPropagator(db, trail, graph),
		heuristic:      heuristic,
		seen:           NewResetSet(db.NumVars()),
		opts:           opts,
		learnedSizeEMA: newEMA(0.95),
	}
}

// LearnedSizeEMA returns the current moving average of learned-clause
// width. It is a read-only diagnostic; see the field comment on
// learnedSizeEMA.
func (d *Driver) LearnedSizeEMA() float64 {
	return d.learnedSizeEMA.val()
}

func (d *Driver) shouldStop() bool {
	if d.opts.MaxConflicts >= 0 && d.TotalConflicts >= d.opts.MaxConflicts {
		return true
	}
	if d.opts.Timeout > 0 && time.Since(d.startTime) >= d.opts.Timeout {
		return true
	}
	return false
}

// Solve runs the driver to completion (or until its budget is exhausted)
// and returns a verdict plus, for Sat, a total assignment.
func (d *Driver) Solve() (Outcome, Assignment) {
	d.startTime = time.Now()

	for {
		// Propagate to a fixpoint before ever consulting the heuristic:
		// a decision must never be layered on top of a pending unit clause,
		// or the solver can pick a value that immediately contradicts it,
		// re-deriving the same learned clause forever instead of letting
		// ordinary propagation settle it for free. This loop runs at the
		// very start of search and again after every backjump, not only
		// once per decision.
		for {
			for {
				if _, ok := d.prop.AssignPureLiteral(); !ok {
					break
				}
			}

			conflict := d.prop.Propagate()
			if conflict == nil {
				break
			}
			d.TotalConflicts++

			if d.trail.Level() == 0 {
				return Unsat, Assignment{}
			}

			learned, beta := analyze(d.db, d.trail, d.graph, d.heuristic, d.seen, conflict)
			d.graph.DeleteNode(ConflictNode)
			d.learnedSizeEMA.add(float64(len(learned)))

			d.Erase(beta)
			d.db.AddLearned(learned)

			if d.shouldStop() {
				return UnknownOutcome, Assignment{}
			}
		}

		if d.db.NumUnsat() == 0 {
			return Sat, d.extractAssignment()
		}

		if d.shouldStop() {
			return UnknownOutcome, Assignment{}
		}

		lit := d.heuristic.Next(d.db)
		d.prop.Decide(lit)
		d.TotalDecisions++
	}
}

// Erase undoes the trail, clause database, and implication graph back to
// decision level beta (spec §4.4's Erase(beta)).
func (d *Driver) Erase(beta int) {
	popped := d.trail.PopAbove(beta)
	for _, e := range popped {
		d.db.Undo(e.Var)
		d.graph.DeleteNode(NodeID(e.Var))
		if reinserter, ok := d.heuristic.(*VSIDSHeuristic); ok {
			reinserter.Reinsert(e.Var)
		}
	}
}

func (d *Driver) extractAssignment() Assignment {
	values := make([]bool, d.db.NumVars())
	for v := 0; v < d.db.NumVars(); v++ {
		switch d.db.varState[v] {
		case True:
			values[v] = true
		case False:
			values[v] = false
		default:
			// Variable never constrained to a value (e.g. spec scenario 3's
			// "3=anything"): any value satisfies, so pick true.
			values[v] = true
		}
	}
	return NewAssignment(values)
}
