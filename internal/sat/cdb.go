package sat

import "fmt"

// ParseError is returned by ClauseDatabase.AddOriginal when a clause
// references a variable outside [1, N].
type ParseError struct {
	Literal int
	NumVars int
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("sat: literal %d references a variable outside [1, %d]", e.Literal, e.NumVars)
}

// InvariantViolation is raised by the debug-mode assertion pass (and by a
// small number of arithmetic guards that would otherwise underflow). It is
// always a bug in the solver, never a property of the input instance.
type InvariantViolation struct {
	Detail string
}

func (e *InvariantViolation) Error() string {
	return "sat: invariant violation: " + e.Detail
}

// ClauseDatabase owns every clause (original and learned) and the
// per-variable occurrence counters used for pure-literal detection. See
// spec §4.1. All mutation happens through Simplify/Undo so that it can be
// reversed in exact LIFO order by the trail.
type ClauseDatabase struct {
	numVars int

	unsat []*Clause
	sat   []*Clause

	posCount []int
	negCount []int

	// varState mirrors the assignment that Simplify/Undo have been told
	// about. It exists so that AddLearned can place each literal of a
	// freshly derived clause into the correct partition regardless of
	// whether the driver calls AddLearned before or after it has already
	// undone some of the cut's assignments (see AddLearned).
	varState []LBool

	nextID int

	// Debug enables the full invariant rescan after every Undo (P1-P3).
	// It is expensive (O(clauses)) and meant for tests and -debug runs,
	// never for hot solving loops.
	Debug bool
}

// NewClauseDatabase returns an empty database sized for numVars variables
// (1-indexed in the public API, 0-indexed internally).
func NewClauseDatabase(numVars int) *ClauseDatabase {
	return &ClauseDatabase{
		numVars:  numVars,
		posCount: make([]int, numVars),
		negCount: make([]int, numVars),
		varState: make([]LBool, numVars),
	}
}

// NumVars returns the number of declared variables.
func (db *ClauseDatabase) NumVars() int {
	return db.numVars
}

// NumUnsat returns the number of not-yet-satisfied clauses.
func (db *ClauseDatabase) NumUnsat() int {
	return len(db.unsat)
}

// NumSat returns the number of currently satisfied clauses.
func (db *ClauseDatabase) NumSat() int {
	return len(db.sat)
}

// PosCount returns the number of unused positive occurrences of variable v
// (0-indexed) across non-solved clauses.
func (db *ClauseDatabase) PosCount(v int) int { return db.posCount[v] }

// NegCount returns the number of unused negative occurrences of variable v
// (0-indexed) across non-solved clauses.
func (db *ClauseDatabase) NegCount(v int) int { return db.negCount[v] }

func (db *ClauseDatabase) countDelta(l Literal, delta int) {
	if l.IsPositive() {
		db.posCount[l.VarID()] += delta
	} else {
		db.negCount[l.VarID()] += delta
	}
	if db.posCount[l.VarID()] < 0 || db.negCount[l.VarID()] < 0 {
		panic(&InvariantViolation{Detail: fmt.Sprintf("counter underflow for variable %d", l.VarID()+1)})
	}
}

// AddOriginal appends a clause parsed from the input instance. raw follows
// DIMACS convention: 1-indexed, negative for negation, no trailing 0.
func (db *ClauseDatabase) AddOriginal(raw []int) error {
	literals := make([]Literal, len(raw))
	for i, v := range raw {
		n := v
		if n < 0 {
			n = -n
		}
		if n < 1 || n > db.numVars {
			return &ParseError{Literal: v, NumVars: db.numVars}
		}
		if v < 0 {
			literals[i] = NegativeLiteral(n - 1)
		} else {
			literals[i] = PositiveLiteral(n - 1)
		}
	}

	body, tautology := dedupeLiterals(literals)
	if tautology {
		return nil // always true, does not constrain the search
	}

	c := newClause(db.nextID, body, OriginOriginal)
	db.nextID++
	for _, l := range c.unused {
		db.countDelta(l, 1)
	}
	db.unsat = append(db.unsat, c)
	return nil
}

// AddLearned appends a clause derived by conflict analysis (§4.4). Each
// literal is placed into used or unused depending on whether its variable
// is currently assigned, per ClauseDatabase's contract (see the varState
// field comment) — this keeps the database's invariants correct whether
// the driver calls AddLearned before or after erasing the assignments
// above the backjump level.
func (db *ClauseDatabase) AddLearned(literals []Literal) *Clause {
	body, tautology := dedupeLiterals(literals)
	if tautology {
		panic(&InvariantViolation{Detail: "learned clause is a tautology"})
	}

	c := &Clause{
		id:         db.nextID,
		Origin:     OriginLearned,
		body:       body,
		solvingVar: -1,
	}
	db.nextID++
	c.unused = allocLiterals(len(body))
	c.used = allocLiterals(len(body))
	for _, l := range body {
		if db.varState[l.VarID()] == Unknown {
			c.unused = append(c.unused, l)
			db.countDelta(l, 1)
		} else {
			c.used = append(c.used, l)
		}
	}

	db.unsat = append(db.unsat, c)
	return c
}

// SatList is the set of clauses that transitioned to solved during a single
// Simplify call.
type SatList []*Clause

// Simplify applies the assignment var := value (0-indexed var) to every
// unsat clause, returning the clauses that became solved. See spec §4.1.
func (db *ClauseDatabase) Simplify(varID int, value bool) SatList {
	db.varState[varID] = Lift(value)

	var sat SatList
	remaining := db.unsat[:0]
	for _, c := range db.unsat {
		res := c.apply(varID, value)
		switch {
		case !res.matched:
			remaining = append(remaining, c)
		case res.becameSolved:
			for _, l := range c.unused {
				db.countDelta(l, -1)
			}
			sat = append(sat, c)
		default:
			db.countDelta(res.fellFalse, -1)
			remaining = append(remaining, c)
		}
	}
	db.unsat = remaining
	db.sat = append(db.sat, sat...)
	return sat
}

// Undo reverses the most recent Simplify(varID, ...) call across every
// clause. It is idempotent: calling it twice in a row without an
// intervening Simplify is a no-op, because the second call finds nothing
// left to move.
func (db *ClauseDatabase) Undo(varID int) {
	for _, c := range db.unsat {
		res := c.undoUsed(varID)
		if res.moved {
			db.countDelta(res.movedToUnsed, 1)
		}
	}

	remainingSat := db.sat[:0]
	var reopened []*Clause
	for _, c := range db.sat {
		if c.undoSolved(varID) {
			for _, l := range c.unused {
				db.countDelta(l, 1)
			}
			reopened = append(reopened, c)
		} else {
			remainingSat = append(remainingSat, c)
		}
	}
	db.sat = remainingSat
	db.unsat = append(db.unsat, reopened...)

	db.varState[varID] = Unknown

	if db.Debug {
		if err := db.AssertInvariants(); err != nil {
			panic(err)
		}
	}
}

// FindUnitClause returns the lowest-id unit clause, if any. Lowest-id
// (rather than list position, which shifts under Simplify/Undo) is what
// makes propagation order reproducible across runs, per spec §4.2.
func (db *ClauseDatabase) FindUnitClause() (*Clause, bool) {
	var best *Clause
	for _, c := range db.unsat {
		if c.IsUnit() && (best == nil || c.id < best.id) {
			best = c
		}
	}
	return best, best != nil
}

// FindEmptyClause returns the lowest-id empty (conflicting) clause, if any.
func (db *ClauseDatabase) FindEmptyClause() (*Clause, bool) {
	var best *Clause
	for _, c := range db.unsat {
		if c.IsEmpty() && (best == nil || c.id < best.id) {
			best = c
		}
	}
	return best, best != nil
}

// HasEmptyClause reports whether any clause is currently a conflict.
func (db *ClauseDatabase) HasEmptyClause() bool {
	_, ok := db.FindEmptyClause()
	return ok
}

// FindPureLiteral returns the lowest-numbered variable that currently
// appears with only one polarity among unused occurrences of non-solved
// clauses, and the literal that polarity corresponds to.
//
// Per spec §9's open question: this only considers live (unused)
// occurrences, exactly like the reference implementation's counters (which
// are decremented to zero once a clause is solved). A variable that only
// appears in already-solved clauses therefore never fires this rule, even
// though its "global" occurrence count (ignoring solved clauses) might
// otherwise look pure.
func (db *ClauseDatabase) FindPureLiteral() (Literal, bool) {
	for v := 0; v < db.numVars; v++ {
		if db.varState[v] != Unknown {
			continue
		}
		pos, neg := db.posCount[v], db.negCount[v]
		switch {
		case neg == 0 && pos > 0:
			return PositiveLiteral(v), true
		case pos == 0 && neg > 0:
			return NegativeLiteral(v), true
		}
	}
	return 0, false
}

// AssertInvariants rescans the full clause set and recomputes P1/P2 from
// scratch, returning an InvariantViolation describing the first mismatch
// found. It is O(#clauses + #literals) and intended for -debug runs and
// tests, not the hot path.
func (db *ClauseDatabase) AssertInvariants() error {
	wantPos := make([]int, db.numVars)
	wantNeg := make([]int, db.numVars)

	check := func(c *Clause) error {
		if len(c.unused)+len(c.used) != len(c.body) {
			return &InvariantViolation{Detail: fmt.Sprintf("clause %d: |unused|+|used| != |body|", c.id)}
		}
		seen := make(map[Literal]bool, len(c.body))
		for _, l := range c.unused {
			if seen[l] {
				return &InvariantViolation{Detail: fmt.Sprintf("clause %d: literal %v in both partitions", c.id, l)}
			}
			seen[l] = true
		}
		for _, l := range c.used {
			if seen[l] {
				return &InvariantViolation{Detail: fmt.Sprintf("clause %d: literal %v in both partitions", c.id, l)}
			}
			seen[l] = true
		}
		return nil
	}

	for _, c := range db.unsat {
		if err := check(c); err != nil {
			return err
		}
		if !c.isSolved {
			for _, l := range c.unused {
				if l.IsPositive() {
					wantPos[l.VarID()]++
				} else {
					wantNeg[l.VarID()]++
				}
			}
		}
	}
	for _, c := range db.sat {
		if err := check(c); err != nil {
			return err
		}
		if !c.isSolved {
			return &InvariantViolation{Detail: fmt.Sprintf("clause %d: present in sat list but not solved", c.id)}
		}
	}

	for v := 0; v < db.numVars; v++ {
		if wantPos[v] != db.posCount[v] || wantNeg[v] != db.negCount[v] {
			return &InvariantViolation{Detail: fmt.Sprintf("variable %d: counter mismatch (pos %d want %d, neg %d want %d)", v+1, db.posCount[v], wantPos[v], db.negCount[v], wantNeg[v])}
		}
	}
	return nil
}
