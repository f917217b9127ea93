package sat

import "strings"

// Origin tags whether a clause came from the input instance or was derived
// by conflict analysis.
type Origin uint8

const (
	OriginOriginal Origin = iota
	OriginLearned
)

func (o Origin) String() string {
	if o == OriginLearned {
		return "learned"
	}
	return "original"
}

// Clause is a disjunction of literals together with the reversible
// unused/used partition described by the clause database's contract:
//
//   - unused: literals whose variable is currently unassigned.
//   - used: literals whose variable is currently assigned and which a
//     Simplify call (or AddLearned) found falsified.
//
// unused and used are always disjoint and their union is body (invariant
// P1). isSolved/solvingVar track which variable last satisfied the clause,
// so that undoing that variable's assignment knows to re-open it.
//
// A solved clause's satisfying literal is deliberately left in place inside
// unused rather than moved to used: counters simply stop counting any
// literal of a solved clause (invariant P2 only counts non-solved clauses),
// and leaving the literal untouched is what makes Undo a same-slot
// re-increment instead of a second bookkeeping path. This mirrors the
// reference Python implementation's Clause.apply/undo exactly.
type Clause struct {
	id     int
	Origin Origin

	body   []Literal
	unused []Literal
	used   []Literal

	isSolved   bool
	solvingVar int // -1 when not solved
}

// newClause builds a clause from literals already deduplicated by the
// caller, with every literal in unused (original clauses, nothing assigned
// yet). Learned clauses are not built here: ClauseDatabase.AddLearned
// partitions their literals against the current assignment itself.
func newClause(id int, body []Literal, origin Origin) *Clause {
	c := &Clause{
		id:         id,
		Origin:     origin,
		body:       body,
		solvingVar: -1,
	}
	c.unused = allocLiterals(len(body))
	c.unused = append(c.unused, body...)
	c.used = allocLiterals(len(body))
	return c
}

// Len returns the number of unused literals, i.e. the clause's "arity" under
// the current assignment. A solved clause's length is meaningless (the
// invariants in spec.md only define length for non-solved clauses).
func (c *Clause) Len() int {
	return len(c.unused)
}

// IsSolved reports whether the clause is currently satisfied.
func (c *Clause) IsSolved() bool {
	return c.isSolved
}

// IsEmpty reports whether the clause is a conflict: no unused literals and
// not solved (invariant P4... #4 in spec.md).
func (c *Clause) IsEmpty() bool {
	return !c.isSolved && len(c.unused) == 0
}

// IsUnit reports whether the clause has exactly one unused literal and is
// not solved (invariant #5).
func (c *Clause) IsUnit() bool {
	return !c.isSolved && len(c.unused) == 1
}

// Body returns the clause's immutable literal set as it was created.
func (c *Clause) Body() []Literal {
	return c.body
}

// Unused returns the literals whose variable is currently unassigned. The
// returned slice is owned by the clause; callers must not retain it across
// mutations.
func (c *Clause) Unused() []Literal {
	return c.unused
}

// Used returns the literals whose variable is currently assigned and
// accounted for.
func (c *Clause) Used() []Literal {
	return c.used
}

// indexOfVarInUnused returns the index of the (at most one, by
// construction — see dedupeLiterals) literal of varID in unused, or -1.
func (c *Clause) indexOfVarInUnused(varID int) int {
	for i, l := range c.unused {
		if l.VarID() == varID {
			return i
		}
	}
	return -1
}

func (c *Clause) indexOfVarInUsed(varID int) int {
	for i, l := range c.used {
		if l.VarID() == varID {
			return i
		}
	}
	return -1
}

// applyResult reports what happened when a variable's assignment was
// applied to the clause, so the clause database can adjust its
// per-variable counters.
type applyResult struct {
	matched      bool    // the clause mentions varID in unused
	becameSolved bool    // this call satisfied the clause
	fellFalse    Literal // the literal moved from unused to used, if !becameSolved
}

// apply implements the per-clause half of ClauseDatabase.Simplify: given
// that varID has just been assigned value, update this clause's partition
// and is_solved/solving_var bookkeeping. It does not touch counters; the
// caller (ClauseDatabase) owns those.
func (c *Clause) apply(varID int, value bool) applyResult {
	i := c.indexOfVarInUnused(varID)
	if i < 0 {
		return applyResult{}
	}
	l := c.unused[i]
	if l.Eval(value) {
		// Satisfied: flag solved but leave l (and every other unused
		// literal) in place — see the doc comment above.
		c.isSolved = true
		c.solvingVar = varID
		return applyResult{matched: true, becameSolved: true}
	}

	// Falsified: move from unused to used.
	last := len(c.unused) - 1
	c.unused[i] = c.unused[last]
	c.unused = c.unused[:last]
	c.used = append(c.used, l)
	return applyResult{matched: true, fellFalse: l}
}

// undoResult reports what happened when a variable's assignment was
// reversed.
type undoResult struct {
	reopened     bool    // the clause was solved by varID and is now unsolved
	movedToUnsed Literal // the literal moved back from used to unused, if any
	moved        bool
}

// undoUsed reverses a Simplify-induced move from unused to used for varID,
// if this clause is not the one that was solved by varID. Called on every
// still-unsat clause during ClauseDatabase.Undo.
func (c *Clause) undoUsed(varID int) undoResult {
	i := c.indexOfVarInUsed(varID)
	if i < 0 {
		return undoResult{}
	}
	last := len(c.used) - 1
	l := c.used[i]
	c.used[i] = c.used[last]
	c.used = c.used[:last]
	c.unused = append(c.unused, l)
	return undoResult{moved: true, movedToUnsed: l}
}

// undoSolved reverses the solved flag if this clause was solved by varID.
// Called on every currently-sat clause during ClauseDatabase.Undo.
func (c *Clause) undoSolved(varID int) bool {
	if !c.isSolved || c.solvingVar != varID {
		return false
	}
	c.isSolved = false
	c.solvingVar = -1
	return true
}

func (c *Clause) String() string {
	if len(c.body) == 0 {
		return "()"
	}
	sb := strings.Builder{}
	sb.WriteByte('(')
	for i, l := range c.body {
		if i > 0 {
			sb.WriteString(" ∨ ")
		}
		sb.WriteString(l.String())
	}
	sb.WriteByte(')')
	return sb.String()
}

// dedupeLiterals merges duplicate literals and detects tautological clauses
// (a clause containing both l and its opposite, which is always true and
// therefore never constrains the search). It returns the deduplicated body
// and whether the clause is a tautology.
//
// This resolves the open question in spec.md §9 about the undo loop's
// reliance on "at most one matching literal per variable per clause": we
// guarantee that invariant at clause-construction time instead of hardening
// every loop that walks used/unused.
func dedupeLiterals(literals []Literal) (body []Literal, tautology bool) {
	seen := make(map[Literal]bool, len(literals))
	out := make([]Literal, 0, len(literals))
	for _, l := range literals {
		if seen[l.Opposite()] {
			return nil, true
		}
		if seen[l] {
			continue
		}
		seen[l] = true
		out = append(out, l)
	}
	return out, false
}
