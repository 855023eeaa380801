// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package antlr

import "testing"

func TestLL1AnalyzerLookAtomTransition(t *testing.T) {
	atn := NewATN(ATNTypeParser, 10)

	s0 := NewBasicState()
	s0.SetStateNumber(0)
	s1 := NewBasicState()
	s1.SetStateNumber(1)
	atn.states = append(atn.states, s0, s1)

	s0.AddTransition(NewAtomTransition(s1, 'a'), -1)

	analyzer := NewLL1Analyzer(atn)
	look := analyzer.Look(s0, nil, nil)

	if !look.Contains('a') {
		t.Errorf("Look() = %s, want it to contain 'a'", look.String())
	}
	if look.Length() != 1 {
		t.Errorf("Look() length = %d, want 1", look.Length())
	}
}

func TestLL1AnalyzerLookThroughEpsilonChain(t *testing.T) {
	atn := NewATN(ATNTypeParser, 10)

	s0 := NewBasicState()
	s0.SetStateNumber(0)
	s1 := NewBasicState()
	s1.SetStateNumber(1)
	s2 := NewBasicState()
	s2.SetStateNumber(2)
	atn.states = append(atn.states, s0, s1, s2)

	s0.AddTransition(NewEpsilonTransition(s1, -1), -1)
	s1.AddTransition(NewRangeTransition(s2, 'a', 'z'), -1)

	analyzer := NewLL1Analyzer(atn)
	look := analyzer.Look(s0, nil, nil)

	for _, v := range []int{'a', 'm', 'z'} {
		if !look.Contains(v) {
			t.Errorf("Look() missing %q: %s", rune(v), look.String())
		}
	}
	if look.Contains('0') {
		t.Errorf("Look() unexpectedly contains '0': %s", look.String())
	}
}

func TestLL1AnalyzerLookStopsAtRuleStop(t *testing.T) {
	atn := NewATN(ATNTypeParser, 10)

	s0 := NewBasicState()
	s0.SetStateNumber(0)
	stop := NewRuleStopState()
	stop.SetStateNumber(1)
	atn.states = append(atn.states, s0, stop)

	s0.AddTransition(NewEpsilonTransition(stop, -1), -1)

	analyzer := NewLL1Analyzer(atn)
	look := analyzer.Look(s0, nil, nil)

	if !look.Contains(TokenEpsilon) {
		t.Errorf("Look() from a rule-stop with nil ctx = %s, want {<EPSILON>}", look.String())
	}
}
