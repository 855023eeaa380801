// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package antlr

import "testing"

func TestATNAddStateAssignsSequentialNumbers(t *testing.T) {
	atn := NewATN(ATNTypeLexer, 10)
	s0 := NewBasicState()
	s1 := NewBasicState()

	atn.addState(s0)
	atn.addState(s1)

	if s0.GetStateNumber() != 0 || s1.GetStateNumber() != 1 {
		t.Errorf("state numbers = %d,%d want 0,1", s0.GetStateNumber(), s1.GetStateNumber())
	}
	if s0.GetATN() != atn || s1.GetATN() != atn {
		t.Errorf("addState did not wire the owning ATN back onto the state")
	}
	if len(atn.states) != 2 {
		t.Errorf("len(states) = %d, want 2", len(atn.states))
	}
}

func TestATNRemoveStateFreesSlotWithoutShifting(t *testing.T) {
	atn := NewATN(ATNTypeLexer, 10)
	s0 := NewBasicState()
	s1 := NewBasicState()
	atn.addState(s0)
	atn.addState(s1)

	atn.removeState(s0)

	if len(atn.states) != 2 {
		t.Errorf("len(states) = %d, want 2 (removeState must not shift the slice)", len(atn.states))
	}
	if atn.states[0] != nil {
		t.Errorf("states[0] = %v, want nil after removeState", atn.states[0])
	}
	if atn.states[1] != s1 {
		t.Errorf("states[1] changed after removing states[0]")
	}
}

func TestATNDefineAndGetDecisionState(t *testing.T) {
	atn := NewATN(ATNTypeParser, 10)
	d0 := NewStarLoopEntryState()
	d1 := NewPlusLoopbackState()

	if got := atn.defineDecisionState(d0); got != 0 {
		t.Errorf("defineDecisionState(d0) = %d, want 0", got)
	}
	if got := atn.defineDecisionState(d1); got != 1 {
		t.Errorf("defineDecisionState(d1) = %d, want 1", got)
	}
	if d0.GetDecision() != 0 || d1.GetDecision() != 1 {
		t.Errorf("decision numbers not stamped onto the states: %d, %d", d0.GetDecision(), d1.GetDecision())
	}
	if atn.getDecisionState(0) != d0 || atn.getDecisionState(1) != d1 {
		t.Errorf("getDecisionState did not return the states in definition order")
	}
}

func TestATNGetDecisionStateOnEmptyReturnsNil(t *testing.T) {
	atn := NewATN(ATNTypeParser, 10)
	if atn.getDecisionState(0) != nil {
		t.Errorf("getDecisionState(0) on an ATN with no decisions = non-nil, want nil")
	}
}

func TestATNRuleStartStopAndMaxTokenTypeAccessors(t *testing.T) {
	atn := NewATN(ATNTypeLexer, 42)
	start := NewRuleStartState()
	stop := NewRuleStopState()
	atn.ruleToStartState = []*RuleStartState{start}
	atn.ruleToStopState = []*RuleStopState{stop}

	if atn.GetRuleToStartState(0) != start {
		t.Errorf("GetRuleToStartState(0) did not return the wired start state")
	}
	if atn.GetRuleToStopState(0) != stop {
		t.Errorf("GetRuleToStopState(0) did not return the wired stop state")
	}
	if atn.GetMaxTokenType() != 42 {
		t.Errorf("GetMaxTokenType() = %d, want 42", atn.GetMaxTokenType())
	}
}

func TestATNNextTokensNoContextCachesOnTheState(t *testing.T) {
	atn := NewATN(ATNTypeLexer, 10)
	start := NewBasicState()
	stop := NewRuleStopState()
	atn.addState(start)
	atn.addState(stop)
	start.AddTransition(NewAtomTransition(stop, 5), -1)

	if start.GetNextTokenWithinRule() != nil {
		t.Fatalf("test fixture invalid: nextTokenWithinRule already populated")
	}

	first := atn.NextTokensNoContext(start)
	if !first.Contains(5) {
		t.Errorf("NextTokensNoContext did not include the reachable atom 5")
	}

	second := start.GetNextTokenWithinRule()
	if second != first {
		t.Errorf("NextTokensNoContext did not cache its result on the state")
	}

	third := atn.NextTokens(start, nil)
	if third != first {
		t.Errorf("NextTokens(ctx=nil) did not return the cached set")
	}
}
