package sat

// RawClause is a clause exactly as read off the wire: DIMACS-convention
// signed, 1-indexed integers, no trailing terminator.
type RawClause []int

// Verify is the model checker from spec §8's P4 and original_source's
// check(formula, solution): it builds a fresh ClauseDatabase from the
// original clauses, applies the candidate assignment to it via the same
// Simplify machinery the solver itself uses, and reports whether every
// clause ended up solved. It never trusts the database the solver actually
// searched over — a fresh copy means a bug that corrupted CDB state during
// search cannot also corrupt the check.
func Verify(numVars int, original []RawClause, assignment Assignment) (bool, error) {
	db := NewClauseDatabase(numVars)
	for _, raw := range original {
		if err := db.AddOriginal(raw); err != nil {
			return false, err
		}
	}
	for v := 0; v < numVars && v < assignment.NumVars(); v++ {
		db.Simplify(v, assignment.Value(v))
	}
	return db.NumUnsat() == 0, nil
}
