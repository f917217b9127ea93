package sat

// SolveAll repeatedly solves d's formula, blocking each model found with a
// clause forbidding that exact assignment, until the formula is refuted or
// a budget is exhausted. It is not part of the DRV contract in spec §4.4
// (Solve only promises one model or Unsat); it is a thin harness built on
// top of repeated Solve calls, grounded in the teacher's yass_test.go
// solveAll, and used to compare against brute-force truth tables in tests.
//
// Blocking clauses are added with AddLearned rather than AddOriginal: a
// model can be reached through propagation that never opens a decision
// level (the pure-literal rule, or a learned unit clause resolving at
// level 0), in which case Erase(0) cannot undo it and the blocking clause
// is built against variables that are already fixed. AddLearned's
// partitioning already accounts for that — it is exactly the "some of
// these variables may already be assigned" case it was built for.
//
// Variables that never appear in any clause are defaulted by Solve/extract
// and are not branched over, so two models differing only in such a free
// variable are not both enumerated — acceptable for a test harness, since
// every instance exercised by the test corpus constrains every variable it
// declares.
func (d *Driver) SolveAll() []Assignment {
	var models []Assignment
	for {
		outcome, assignment := d.Solve()
		if outcome == Unsat {
			return models
		}
		if outcome == UnknownOutcome {
			return models
		}

		models = append(models, assignment)

		d.Erase(0)
		blocking := make([]Literal, assignment.NumVars())
		for v := 0; v < assignment.NumVars(); v++ {
			if assignment.Value(v) {
				blocking[v] = NegativeLiteral(v)
			} else {
				blocking[v] = PositiveLiteral(v)
			}
		}
		d.db.AddLearned(blocking)
	}
}
