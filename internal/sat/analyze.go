package sat

// falseLiteralFor returns the literal that is false under the assignment
// varID := value — i.e. the literal that must be added to a learned clause
// to rule this assignment back out. See spec §4.4, step 4.
func falseLiteralFor(varID int, value bool) Literal {
	if value {
		return NegativeLiteral(varID)
	}
	return PositiveLiteral(varID)
}

// assignedLiteralFor returns the literal that is true under the assignment
// varID := value — the literal that actually sits on the trail.
func assignedLiteralFor(varID int, value bool) Literal {
	return falseLiteralFor(varID, value).Opposite()
}

// analyze implements spec §4.4's Analyze(conflict, d): it walks the
// implication graph backward from the Conflict node, cutting it at the
// first unique implication point of the current decision level d, and
// returns the learned clause (asserting literal first) plus the level to
// backjump to.
//
// The cut is driven directly off the ImplicationGraph rather than a
// separate clause.Explain call: Propagator already wires every cause edge
// (reason literal's variable -> implied variable, and falsifying variables
// -> ConflictNode) at the moment it assigns or detects a conflict, so the
// graph already *is* the reason store spec §3 describes it as. This also
// gives us, for free, the base case spec.md's prose leaves implicit: a
// variable with zero predecessors is a decision, and when the backward walk
// reaches one it simply contributes nothing further — the walk terminates
// there exactly as it does for the teacher's clause-based explain().
//
// The counting scheme (nImplicationPoints) is the teacher's own
// first-UIP algorithm (solver.go's analyze), which spec §9 explicitly
// sanctions as a valid concretization of the abstract cut: "an
// implementation may use the First-UIP scheme, in which case the cut
// includes exactly one same-level literal — the UIP."
//
// analyze must only be called when trail.Level() >= 1: a conflict detected
// at decision level 0 means the formula is unsatisfiable outright and the
// driver must report Unsat without analyzing (there is no decision to
// backjump past).
func analyze(db *ClauseDatabase, trail *Trail, graph *ImplicationGraph, heuristic Heuristic, seen *ResetSet, conflict *Conflict) (learned []Literal, backtrackLevel int) {
	level := trail.Level()
	seen.Clear()

	learned = make([]Literal, 1, 8) // index 0 reserved for the UIP, filled in below

	node := ConflictNode
	nextTrailIdx := trail.Len() - 1
	var uipVar int
	var uipValue bool
	implicationPoints := 0

	for {
		for _, pred := range graph.Predecessors(node) {
			v := int(pred)
			if seen.Contains(v) {
				continue
			}
			seen.Add(v)
			heuristic.Bump(v)

			if trail.LevelOf(v) == level {
				implicationPoints++
				continue
			}
			value := db.varState[v] == True
			lit := falseLiteralFor(v, value)
			learned = append(learned, lit)
			if l := trail.LevelOf(v); l > backtrackLevel {
				backtrackLevel = l
			}
		}

		// Walk the trail backward to the next seen variable; that
		// variable's own predecessors are examined on the next
		// iteration.
		var v int
		for {
			e := trail.At(nextTrailIdx)
			nextTrailIdx--
			v = e.Var
			if seen.Contains(v) {
				uipVar, uipValue = v, e.Value
				break
			}
		}
		node = NodeID(v)

		implicationPoints--
		if implicationPoints <= 0 {
			break
		}
	}

	learned[0] = falseLiteralFor(uipVar, uipValue)
	heuristic.Decay()
	return learned, backtrackLevel
}
