package sat

import "testing"

func TestTrail_PushTracksLevel(t *testing.T) {
	tr := NewTrail(3)

	tr.Push(0, true, DecisionCause)
	if tr.LevelOf(0) != 0 {
		t.Errorf("LevelOf(0) = %d, want 0", tr.LevelOf(0))
	}

	tr.BeginLevel()
	tr.Push(1, false, DecisionCause)
	if tr.LevelOf(1) != 1 {
		t.Errorf("LevelOf(1) = %d, want 1", tr.LevelOf(1))
	}
	if tr.Level() != 1 {
		t.Errorf("Level() = %d, want 1", tr.Level())
	}
}

func TestTrail_LevelOfUnassignedIsNegativeOne(t *testing.T) {
	tr := NewTrail(2)
	if tr.LevelOf(0) != -1 {
		t.Errorf("LevelOf(0) = %d, want -1 for an unassigned variable", tr.LevelOf(0))
	}
}

func TestTrail_PopAboveRewindsLevelsAndEvents(t *testing.T) {
	tr := NewTrail(4)
	tr.Push(0, true, DecisionCause) // level 0
	tr.BeginLevel()
	tr.Push(1, true, DecisionCause) // level 1
	tr.BeginLevel()
	tr.Push(2, false, DecisionCause) // level 2
	tr.Push(3, true, ReasonCause(nil))

	popped := tr.PopAbove(1)

	if tr.Level() != 1 {
		t.Errorf("Level() = %d, want 1 after PopAbove(1)", tr.Level())
	}
	if tr.Len() != 2 {
		t.Errorf("Len() = %d, want 2", tr.Len())
	}
	if len(popped) != 2 {
		t.Fatalf("PopAbove returned %d events, want 2", len(popped))
	}
	// Most-recent-first.
	if popped[0].Var != 3 || popped[1].Var != 2 {
		t.Errorf("PopAbove order = %v, want var 3 then var 2", popped)
	}
	if tr.LevelOf(2) != -1 || tr.LevelOf(3) != -1 {
		t.Errorf("popped variables should report LevelOf == -1")
	}
	if tr.LevelOf(0) != 0 || tr.LevelOf(1) != 1 {
		t.Errorf("surviving variables should keep their level")
	}
}

func TestTrail_PopAboveToZero(t *testing.T) {
	tr := NewTrail(2)
	tr.Push(0, true, DecisionCause)
	tr.BeginLevel()
	tr.Push(1, true, DecisionCause)

	tr.PopAbove(0)

	if tr.Level() != 0 {
		t.Errorf("Level() = %d, want 0", tr.Level())
	}
	if tr.Len() != 1 {
		t.Errorf("Len() = %d, want 1 (var 0 survives)", tr.Len())
	}
}
