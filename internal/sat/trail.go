package sat

// Cause tags what forced a trail event: either a decision, or the unit
// clause that implied it. This is the tagged variant called for in
// spec.md's re-architecture notes (§9), replacing mixed-arity tuples with
// a single struct carrying a nilable reason.
type Cause struct {
	IsDecision bool
	Reason     *Clause // nil when IsDecision
}

// DecisionCause is the cause of a literal chosen by the decision heuristic
// or by the pure-literal rule (spec §4.2 is explicit that pure-literal
// assignments use cause=Decision to avoid spurious implication-graph
// edges).
var DecisionCause = Cause{IsDecision: true}

// ReasonCause is the cause of a literal forced by unit propagation.
func ReasonCause(c *Clause) Cause {
	return Cause{Reason: c}
}

// TrailEvent records one assignment: which variable, what value, at which
// decision level, and why.
type TrailEvent struct {
	Var   int
	Value bool
	Level int
	Cause Cause
}

// Trail is the chronological log of assignments. It is the single source
// of truth for undo ordering: Erase pops events in reverse order and feeds
// each popped variable to ClauseDatabase.Undo and ImplicationGraph.DeleteNode.
type Trail struct {
	events []TrailEvent
	// limits[d] is the trail length at the moment decision level d+1 began,
	// mirroring the teacher's trailLim.
	limits []int

	// level mirrors, for each variable, the decision level of its current
	// assignment (-1 if unassigned). Conflict analysis needs this at
	// arbitrary variables, not just the most recent event, so it is kept as
	// a side array instead of being recovered by scanning events.
	level []int
}

// NewTrail returns an empty trail sized for numVars variables.
func NewTrail(numVars int) *Trail {
	level := make([]int, numVars)
	for i := range level {
		level[i] = -1
	}
	return &Trail{level: level}
}

// LevelOf returns the decision level at which varID is currently assigned,
// or -1 if it is unassigned.
func (t *Trail) LevelOf(varID int) int {
	return t.level[varID]
}

// Level returns the current decision level (0 at the root).
func (t *Trail) Level() int {
	return len(t.limits)
}

// Len returns the number of assignments currently on the trail.
func (t *Trail) Len() int {
	return len(t.events)
}

// Events returns the trail's events in chronological order. The returned
// slice is owned by the trail.
func (t *Trail) Events() []TrailEvent {
	return t.events
}

// At returns the i-th trail event.
func (t *Trail) At(i int) TrailEvent {
	return t.events[i]
}

// BeginLevel opens a new decision level. Every Push after this call and
// before the PopAbove that closes it belongs to that level.
func (t *Trail) BeginLevel() {
	t.limits = append(t.limits, len(t.events))
}

// Push appends a new assignment event at the current decision level.
func (t *Trail) Push(varID int, value bool, cause Cause) TrailEvent {
	e := TrailEvent{Var: varID, Value: value, Level: t.Level(), Cause: cause}
	t.events = append(t.events, e)
	t.level[varID] = e.Level
	return e
}

// PopAbove removes and returns, in reverse (most-recent-first) order, every
// event with level > beta. It also closes the corresponding decision
// levels. Callers are expected to feed each popped event to
// ClauseDatabase.Undo and ImplicationGraph.DeleteNode in the order
// returned.
func (t *Trail) PopAbove(beta int) []TrailEvent {
	var popped []TrailEvent
	for t.Level() > beta {
		start := t.limits[len(t.limits)-1]
		for i := len(t.events) - 1; i >= start; i-- {
			popped = append(popped, t.events[i])
			t.level[t.events[i].Var] = -1
		}
		t.events = t.events[:start]
		t.limits = t.limits[:len(t.limits)-1]
	}
	return popped
}
