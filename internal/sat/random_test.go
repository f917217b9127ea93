package sat

import (
	"math/rand"
	"testing"
)

// randomKSAT draws numClauses random 3-literal clauses over numVars
// variables, each literal's variable chosen uniformly and independently
// negated (uniform polarity, duplicate clauses allowed). Unlike cmd/gen-cnf,
// variables are drawn with replacement, so a clause may repeat a variable;
// AddOriginal then merges the duplicate or drops the clause as a tautology.
func randomKSAT(rng *rand.Rand, numVars, numClauses int) [][]int {
	clauses := make([][]int, numClauses)
	for i := range clauses {
		c := make([]int, 3)
		for j := range c {
			v := rng.Intn(numVars) + 1
			if rng.Intn(2) == 0 {
				v = -v
			}
			c[j] = v
		}
		clauses[i] = c
	}
	return clauses
}

// bruteForceSAT reports whether any of the 2^numVars total assignments
// satisfies every clause, by reusing Verify against each candidate.
func bruteForceSAT(t *testing.T, numVars int, clauses [][]int) bool {
	t.Helper()
	raw := make([]RawClause, len(clauses))
	for i, c := range clauses {
		raw[i] = RawClause(c)
	}
	for mask := 0; mask < 1<<uint(numVars); mask++ {
		values := make([]bool, numVars)
		for v := 0; v < numVars; v++ {
			values[v] = mask&(1<<uint(v)) != 0
		}
		ok, err := Verify(numVars, raw, NewAssignment(values))
		if err != nil {
			t.Fatalf("Verify(): %s", err)
		}
		if ok {
			return true
		}
	}
	return false
}

// TestRandom3SAT_agreesWithBruteForce generates random 3-SAT instances at
// clause/variable ratio 4.2 (the classical hardness peak for 3-SAT) across
// a handful of small variable counts, and checks that the driver's
// SAT/UNSAT verdict always agrees with an exhaustive truth-table search.
// numVars is capped at 16 so the 2^numVars brute force stays cheap.
func TestRandom3SAT_agreesWithBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	const ratio = 4.2

	for _, numVars := range []int{4, 8, 12, 16} {
		numClauses := int(ratio * float64(numVars))
		trials := 5
		if numVars >= 16 {
			// 2^16 brute-force truth tables are the practical ceiling for an
			// in-test exhaustive check; keep the trial count modest here so
			// the suite stays fast.
			trials = 2
		}
		for trial := 0; trial < trials; trial++ {
			clauses := randomKSAT(rng, numVars, numClauses)

			db := NewClauseDatabase(numVars)
			for _, c := range clauses {
				if err := db.AddOriginal(c); err != nil {
					t.Fatalf("AddOriginal(%v): %s", c, err)
				}
			}
			outcome, assignment := NewDriver(db, DefaultOptions).Solve()
			if outcome == UnknownOutcome {
				t.Fatalf("n=%d trial=%d: Solve() = Unknown with an unbounded budget", numVars, trial)
			}

			want := bruteForceSAT(t, numVars, clauses)
			got := outcome == Sat
			if got != want {
				t.Fatalf("n=%d trial=%d clauses=%v: Solve() reports sat=%v, brute force says sat=%v",
					numVars, trial, clauses, got, want)
			}
			if got {
				raw := make([]RawClause, len(clauses))
				for i, c := range clauses {
					raw[i] = RawClause(c)
				}
				ok, err := Verify(numVars, raw, assignment)
				if err != nil {
					t.Fatalf("Verify(): %s", err)
				}
				if !ok {
					t.Fatalf("n=%d trial=%d: Solve() returned a model that Verify() rejects", numVars, trial)
				}
			}
		}
	}
}

// TestRandom3SATModelsCheckOut scales up to numVars around the spec's
// N <= 60 bound, where a brute-force cross-check is infeasible, and only
// exercises P4: whenever the driver reports Sat, the returned assignment
// must be a genuine model of the original clauses.
func TestRandom3SATModelsCheckOut(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	const ratio = 4.2

	for _, numVars := range []int{20, 40, 60} {
		numClauses := int(ratio * float64(numVars))
		clauses := randomKSAT(rng, numVars, numClauses)

		db := NewClauseDatabase(numVars)
		for _, c := range clauses {
			if err := db.AddOriginal(c); err != nil {
				t.Fatalf("AddOriginal(%v): %s", c, err)
			}
		}
		outcome, assignment := NewDriver(db, Options{MaxConflicts: 200000}).Solve()
		if outcome != Sat {
			continue
		}

		raw := make([]RawClause, len(clauses))
		for i, c := range clauses {
			raw[i] = RawClause(c)
		}
		ok, err := Verify(numVars, raw, assignment)
		if err != nil {
			t.Fatalf("Verify(): %s", err)
		}
		if !ok {
			t.Errorf("n=%d: Solve() returned a model that Verify() rejects", numVars)
		}
	}
}
