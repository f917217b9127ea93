package sat

import "testing"

func TestLiteral_PositiveNegative(t *testing.T) {
	p := PositiveLiteral(5)
	n := NegativeLiteral(5)

	if p.VarID() != 5 || n.VarID() != 5 {
		t.Errorf("VarID(): p=%d n=%d, want 5, 5", p.VarID(), n.VarID())
	}
	if !p.IsPositive() || n.IsPositive() {
		t.Errorf("IsPositive(): p=%v n=%v, want true, false", p.IsPositive(), n.IsPositive())
	}
	if p.Opposite() != n || n.Opposite() != p {
		t.Errorf("Opposite(): p and n are not each other's opposite")
	}
}

func TestLiteral_Eval(t *testing.T) {
	p := PositiveLiteral(0)
	n := NegativeLiteral(0)

	if !p.Eval(true) || p.Eval(false) {
		t.Errorf("p.Eval: true->%v false->%v, want true, false", p.Eval(true), p.Eval(false))
	}
	if n.Eval(true) || !n.Eval(false) {
		t.Errorf("n.Eval: true->%v false->%v, want false, true", n.Eval(true), n.Eval(false))
	}
}

func TestLiteral_Less(t *testing.T) {
	cases := []struct {
		a, b Literal
		want bool
	}{
		{PositiveLiteral(0), PositiveLiteral(1), true},
		{PositiveLiteral(1), PositiveLiteral(0), false},
		{PositiveLiteral(0), NegativeLiteral(0), true},
		{NegativeLiteral(0), PositiveLiteral(0), false},
	}
	for _, c := range cases {
		if got := c.a.Less(c.b); got != c.want {
			t.Errorf("%v.Less(%v) = %v, want %v", c.a, c.b, got, c.want)
		}
	}
}

func TestLiteral_String(t *testing.T) {
	if got := PositiveLiteral(0).String(); got != "1" {
		t.Errorf("PositiveLiteral(0).String() = %q, want %q", got, "1")
	}
	if got := NegativeLiteral(2).String(); got != "-3" {
		t.Errorf("NegativeLiteral(2).String() = %q, want %q", got, "-3")
	}
}
