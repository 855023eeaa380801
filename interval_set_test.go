// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package antlr

import "testing"

func TestIntervalSetAddRangeCoalesces(t *testing.T) {
	s := NewIntervalSet()
	s.AddRange(5, 10)
	s.AddRange(1, 3)
	s.AddRange(4, 4) // touches both neighbors, should merge into one run
	s.AddRange(20, 25)

	want := []Interval{{1, 10}, {20, 25}}
	got := s.Intervals()
	if len(got) != len(want) {
		t.Fatalf("Intervals() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Intervals()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestIntervalSetAddRangeDisjoint(t *testing.T) {
	s := NewIntervalSet()
	s.AddRange(10, 12)
	s.AddRange(1, 2)
	s.AddRange(20, 22)

	want := []Interval{{1, 2}, {10, 12}, {20, 22}}
	got := s.Intervals()
	if len(got) != len(want) {
		t.Fatalf("Intervals() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Intervals()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestIntervalSetContains(t *testing.T) {
	s := NewIntervalSetFromInterval('a', 'z')
	s.AddRange('0', '9')

	for _, v := range []int{'a', 'm', 'z', '0', '5', '9'} {
		if !s.Contains(v) {
			t.Errorf("Contains(%q) = false, want true", rune(v))
		}
	}
	for _, v := range []int{'A', ' ', '!', 'z' + 1} {
		if s.Contains(v) {
			t.Errorf("Contains(%q) = true, want false", rune(v))
		}
	}
}

func TestIntervalSetLength(t *testing.T) {
	s := NewIntervalSet()
	s.AddRange(1, 5)
	s.AddRange(10, 10)
	if got, want := s.Length(), 6; got != want {
		t.Errorf("Length() = %d, want %d", got, want)
	}
}

func intervalsEqual(t *testing.T, label string, got []Interval, want []Interval) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("%s = %v, want %v", label, got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("%s[%d] = %v, want %v", label, i, got[i], want[i])
		}
	}
}

func TestIntervalSetOrAndAnd(t *testing.T) {
	a := NewIntervalSetFromInterval(1, 10)
	b := NewIntervalSetFromInterval(5, 15)

	intervalsEqual(t, "Or()", a.Or(b).Intervals(), []Interval{{1, 15}})
	intervalsEqual(t, "And()", a.And(b).Intervals(), []Interval{{5, 10}})
}

func TestIntervalSetSubtractAndComplement(t *testing.T) {
	a := NewIntervalSetFromInterval(1, 10)
	b := NewIntervalSetFromInterval(4, 6)

	diff := a.Subtract(b)
	intervalsEqual(t, "Subtract()", diff.Intervals(), []Interval{{1, 3}, {7, 10}})

	vocab := NewIntervalSetFromInterval(1, 10)
	comp := b.Complement(vocab)
	intervalsEqual(t, "Complement()", comp.Intervals(), diff.Intervals())
}

func TestIntervalSetRemoveOne(t *testing.T) {
	s := NewIntervalSetFromInterval(1, 10)
	s.removeOne(5)

	if s.Contains(5) {
		t.Errorf("Contains(5) = true after removeOne(5)")
	}
	if !s.Contains(4) || !s.Contains(6) {
		t.Errorf("removeOne(5) removed neighboring values")
	}
	if got, want := s.Length(), 9; got != want {
		t.Errorf("Length() after removeOne = %d, want %d", got, want)
	}
}

func TestIntervalSetReadOnlyPanics(t *testing.T) {
	s := NewIntervalSet()
	s.readOnly = true

	defer func() {
		if recover() == nil {
			t.Errorf("AddRange on a readonly set did not panic")
		}
	}()
	s.AddRange(1, 2)
}
