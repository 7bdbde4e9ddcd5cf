package core

import (
	"math"
	"testing"
)

func TestIntervalContainsAndSurrounds(t *testing.T) {
	iv := NewInterval(1, 3)

	tests := []struct {
		x         float64
		contains  bool
		surrounds bool
	}{
		{0.5, false, false},
		{1.0, true, false}, // contains is inclusive, surrounds exclusive
		{2.0, true, true},
		{3.0, true, false},
		{3.5, false, false},
	}
	for _, tc := range tests {
		if got := iv.Contains(tc.x); got != tc.contains {
			t.Errorf("Contains(%v) = %v, want %v", tc.x, got, tc.contains)
		}
		if got := iv.Surrounds(tc.x); got != tc.surrounds {
			t.Errorf("Surrounds(%v) = %v, want %v", tc.x, got, tc.surrounds)
		}
	}
}

func TestEmptyAndUniverseIntervals(t *testing.T) {
	if EmptyInterval.Contains(0) {
		t.Error("empty interval should contain nothing")
	}
	if !UniverseInterval.Contains(math.MaxFloat64) || !UniverseInterval.Contains(-math.MaxFloat64) {
		t.Error("universe interval should contain everything")
	}
}

func TestIntervalUnion(t *testing.T) {
	u := NewIntervalUnion(NewInterval(0, 1), NewInterval(3, 5))
	if u.Min != 0 || u.Max != 5 {
		t.Errorf("union = [%v, %v], want [0, 5]", u.Min, u.Max)
	}

	// Union with empty is the identity.
	u = NewIntervalUnion(EmptyInterval, NewInterval(2, 4))
	if u.Min != 2 || u.Max != 4 {
		t.Errorf("union with empty = [%v, %v], want [2, 4]", u.Min, u.Max)
	}
}

func TestIntervalExpand(t *testing.T) {
	e := NewInterval(2, 4).Expand(2)
	if e.Min != 1 || e.Max != 5 {
		t.Errorf("expand = [%v, %v], want [1, 5]", e.Min, e.Max)
	}
}

func TestIntervalClamp(t *testing.T) {
	iv := NewInterval(0, 1)
	if got := iv.Clamp(-0.5); got != 0 {
		t.Errorf("Clamp(-0.5) = %v", got)
	}
	if got := iv.Clamp(0.25); got != 0.25 {
		t.Errorf("Clamp(0.25) = %v", got)
	}
	if got := iv.Clamp(7); got != 1 {
		t.Errorf("Clamp(7) = %v", got)
	}
}

func TestIntervalAdd(t *testing.T) {
	shifted := NewInterval(1, 2).Add(10)
	if shifted.Min != 11 || shifted.Max != 12 {
		t.Errorf("Add = [%v, %v], want [11, 12]", shifted.Min, shifted.Max)
	}
}
