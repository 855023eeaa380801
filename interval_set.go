// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package antlr

import (
	"strings"

	"golang.org/x/exp/slices"
)

// Interval is a closed range [Start, Stop] of integers.
type Interval struct {
	Start, Stop int
}

func NewInterval(start, stop int) Interval {
	return Interval{Start: start, Stop: stop}
}

// Length returns the number of integers the interval covers.
func (i Interval) Length() int {
	return i.Stop - i.Start + 1
}

// IntervalSet is a sorted list of disjoint intervals, used as the alphabet
// label for Set/NotSet transitions (spec §4.1) and for error reporting.
// Invariant: intervals are sorted ascending by Start and no two intervals
// touch or overlap — Add() maintains this by construction.
type IntervalSet struct {
	intervals []Interval
	readOnly  bool
}

func NewIntervalSet() *IntervalSet {
	return &IntervalSet{intervals: make([]Interval, 0)}
}

// NewIntervalSetFromInterval builds a set containing a single interval.
func NewIntervalSetFromInterval(start, stop int) *IntervalSet {
	s := NewIntervalSet()
	s.AddRange(start, stop)
	return s
}

func (s *IntervalSet) clone() []Interval {
	c := make([]Interval, len(s.intervals))
	copy(c, s.intervals)
	return c
}

// AddOne adds the single value v.
func (s *IntervalSet) AddOne(v int) {
	s.AddRange(v, v)
}

// AddRange merges [a,b] into the set, coalescing with any interval it
// touches or overlaps (spec §4.1).
func (s *IntervalSet) AddRange(a, b int) {
	if s.readOnly {
		panic(NewIllegalStateError("cannot modify a readonly IntervalSet"))
	}
	if a > b {
		return
	}
	// Find insertion point: first interval whose Stop+1 >= a.
	idx, _ := slices.BinarySearchFunc(s.intervals, a, func(iv Interval, a int) int {
		return (iv.Stop + 1) - a
	})
	if idx == len(s.intervals) {
		s.intervals = append(s.intervals, Interval{a, b})
		return
	}
	if s.intervals[idx].Start > b+1 {
		// Disjoint from everything at/after idx: insert before it.
		s.intervals = append(s.intervals, Interval{})
		copy(s.intervals[idx+1:], s.intervals[idx:])
		s.intervals[idx] = Interval{a, b}
		return
	}
	// Overlaps or touches intervals starting at idx; merge the run.
	start := a
	if s.intervals[idx].Start < start {
		start = s.intervals[idx].Start
	}
	stop := b
	end := idx
	for end < len(s.intervals) && s.intervals[end].Start <= b+1 {
		if s.intervals[end].Stop > stop {
			stop = s.intervals[end].Stop
		}
		end++
	}
	merged := Interval{start, stop}
	tail := append([]Interval{}, s.intervals[end:]...)
	s.intervals = append(append(s.intervals[:idx], merged), tail...)
}

// AddSet unions other into s, returning s for chaining.
func (s *IntervalSet) AddSet(other *IntervalSet) *IntervalSet {
	for _, iv := range other.intervals {
		s.AddRange(iv.Start, iv.Stop)
	}
	return s
}

func (s *IntervalSet) addSet(other *IntervalSet) *IntervalSet { return s.AddSet(other) }

// removeOne removes the single value v from the set, splitting or
// shrinking whichever interval currently covers it.
func (s *IntervalSet) removeOne(v int) {
	for i, iv := range s.intervals {
		if v < iv.Start || v > iv.Stop {
			continue
		}
		switch {
		case iv.Start == iv.Stop:
			s.intervals = append(s.intervals[:i], s.intervals[i+1:]...)
		case v == iv.Start:
			s.intervals[i].Start++
		case v == iv.Stop:
			s.intervals[i].Stop--
		default:
			left := Interval{iv.Start, v - 1}
			right := Interval{v + 1, iv.Stop}
			tail := append([]Interval{right}, s.intervals[i+1:]...)
			s.intervals = append(append(s.intervals[:i], left), tail...)
		}
		return
	}
}

// Contains reports whether v falls in any interval.
func (s *IntervalSet) Contains(v int) bool {
	idx, found := slices.BinarySearchFunc(s.intervals, v, func(iv Interval, v int) int {
		if v < iv.Start {
			return 1
		}
		if v > iv.Stop {
			return -1
		}
		return 0
	})
	return found && idx < len(s.intervals)
}

// Length returns the total number of integers covered.
func (s *IntervalSet) Length() int {
	n := 0
	for _, iv := range s.intervals {
		n += iv.Length()
	}
	return n
}

func (s *IntervalSet) IsNil() bool { return s == nil || len(s.intervals) == 0 }

// Intervals exposes the sorted, disjoint interval list.
func (s *IntervalSet) Intervals() []Interval { return s.intervals }

// Or returns the union of s and other as a new set.
func (s *IntervalSet) Or(other *IntervalSet) *IntervalSet {
	r := NewIntervalSet()
	r.AddSet(s)
	r.AddSet(other)
	return r
}

// And returns the intersection of s and other as a new set.
func (s *IntervalSet) And(other *IntervalSet) *IntervalSet {
	r := NewIntervalSet()
	for _, a := range s.intervals {
		for _, b := range other.intervals {
			lo, hi := a.Start, a.Stop
			if b.Start > lo {
				lo = b.Start
			}
			if b.Stop < hi {
				hi = b.Stop
			}
			if lo <= hi {
				r.AddRange(lo, hi)
			}
		}
	}
	return r
}

// Subtract returns s with every element of other removed.
func (s *IntervalSet) Subtract(other *IntervalSet) *IntervalSet {
	r := NewIntervalSet()
	for _, a := range s.intervals {
		cur := []Interval{a}
		for _, b := range other.intervals {
			var next []Interval
			for _, c := range cur {
				if b.Stop < c.Start || b.Start > c.Stop {
					next = append(next, c)
					continue
				}
				if b.Start > c.Start {
					next = append(next, Interval{c.Start, b.Start - 1})
				}
				if b.Stop < c.Stop {
					next = append(next, Interval{b.Stop + 1, c.Stop})
				}
			}
			cur = next
		}
		for _, c := range cur {
			r.AddRange(c.Start, c.Stop)
		}
	}
	return r
}

// Complement returns the elements of vocabulary not present in s.
func (s *IntervalSet) Complement(vocabulary *IntervalSet) *IntervalSet {
	return vocabulary.Subtract(s)
}

func (s *IntervalSet) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, iv := range s.intervals {
		if i > 0 {
			b.WriteString(", ")
		}
		if iv.Start == iv.Stop {
			b.WriteString(intervalElemString(iv.Start))
		} else {
			b.WriteString(intervalElemString(iv.Start))
			b.WriteString("..")
			b.WriteString(intervalElemString(iv.Stop))
		}
	}
	b.WriteByte('}')
	return b.String()
}

func intervalElemString(v int) string {
	if v == TokenEOF {
		return "<EOF>"
	}
	return string(rune(v))
}
