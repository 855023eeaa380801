// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package antlr

// ATN state type tags (spec §3). Every concrete state below carries one of
// these so the deserializer and the simulators can dispatch without a type
// switch at every call site.
const (
	ATNStateInvalidType     = 0
	ATNStateBasic           = 1
	ATNStateRuleStart       = 2
	ATNStateBlockStart      = 3
	ATNStatePlusBlockStart  = 4
	ATNStateStarBlockStart  = 5
	ATNStateTokenStart      = 6
	ATNStateRuleStop        = 7
	ATNStateBlockEnd        = 8
	ATNStateStarLoopBack    = 9
	ATNStateStarLoopEntry   = 10
	ATNStatePlusLoopBack    = 11
	ATNStateLoopEnd         = 12
)

// ATNInvalidStateNumber marks a state number that has not been assigned.
const ATNInvalidStateNumber = -1

// ATNState is a node in the ATN graph: a stable number, the rule it
// belongs to, a state-type tag, and an ordered list of outgoing
// Transitions (spec §3). All concrete state kinds embed BaseATNState.
type ATNState interface {
	GetStateNumber() int
	SetStateNumber(int)
	GetRuleIndex() int
	SetRuleIndex(int)
	GetStateType() int
	GetTransitions() []Transition
	AddTransition(Transition, int)
	SetTransitions([]Transition)
	GetNextTokenWithinRule() *IntervalSet
	SetNextTokenWithinRule(*IntervalSet)
	GetEpsilonOnlyTransitions() bool
	SetATN(*ATN)
	GetATN() *ATN
}

// BaseATNState implements the common fields and is embedded by every
// concrete ATNState variant.
type BaseATNState struct {
	atn                    *ATN
	stateNumber           int
	ruleIndex             int
	stateType             int
	epsilonOnlyTransitions bool
	transitions           []Transition
	nextTokenWithinRule   *IntervalSet
}

func (s *BaseATNState) SetATN(atn *ATN) { s.atn = atn }
func (s *BaseATNState) GetATN() *ATN    { return s.atn }

func (s *BaseATNState) GetStateNumber() int       { return s.stateNumber }
func (s *BaseATNState) SetStateNumber(n int)      { s.stateNumber = n }
func (s *BaseATNState) GetRuleIndex() int         { return s.ruleIndex }
func (s *BaseATNState) SetRuleIndex(n int)        { s.ruleIndex = n }
func (s *BaseATNState) GetStateType() int         { return s.stateType }
func (s *BaseATNState) GetTransitions() []Transition { return s.transitions }
func (s *BaseATNState) SetTransitions(t []Transition) { s.transitions = t }
func (s *BaseATNState) GetEpsilonOnlyTransitions() bool { return s.epsilonOnlyTransitions }
func (s *BaseATNState) GetNextTokenWithinRule() *IntervalSet { return s.nextTokenWithinRule }
func (s *BaseATNState) SetNextTokenWithinRule(set *IntervalSet) { s.nextTokenWithinRule = set }

// AddTransition appends tr, or inserts it at index idx when idx >= 0.
// Once a non-epsilon transition is added, epsilonOnlyTransitions is
// permanently false (an invariant the deserializer relies on while
// building closures).
func (s *BaseATNState) AddTransition(tr Transition, idx int) {
	if len(s.transitions) == 0 {
		s.epsilonOnlyTransitions = tr.getIsEpsilon()
	} else if s.epsilonOnlyTransitions != tr.getIsEpsilon() {
		s.epsilonOnlyTransitions = false
	}
	if idx < 0 {
		s.transitions = append(s.transitions, tr)
		return
	}
	s.transitions = append(s.transitions, nil)
	copy(s.transitions[idx+1:], s.transitions[idx:])
	s.transitions[idx] = tr
}

type BasicState struct{ BaseATNState }

func NewBasicState() *BasicState { return &BasicState{BaseATNState{stateType: ATNStateBasic}} }

// DecisionState is an ATNState at which more than one alternative is
// possible and prediction must choose among them.
type DecisionState interface {
	ATNState
	GetDecision() int
	SetDecision(int)
	getDecision() int
	setDecision(int)
	GetNonGreedy() bool
	SetNonGreedy(bool)
}

type BaseDecisionState struct {
	BaseATNState
	decision  int
	nonGreedy bool
}

func (d *BaseDecisionState) GetDecision() int     { return d.decision }
func (d *BaseDecisionState) SetDecision(n int)     { d.decision = n }
func (d *BaseDecisionState) getDecision() int      { return d.decision }
func (d *BaseDecisionState) setDecision(n int)     { d.decision = n }
func (d *BaseDecisionState) GetNonGreedy() bool    { return d.nonGreedy }
func (d *BaseDecisionState) SetNonGreedy(b bool)   { d.nonGreedy = b }

// RuleStartState is the entry point of a rule's sub-ATN.
type RuleStartState struct {
	BaseATNState
	stopState      *RuleStopState
	isPrecedenceRule bool
}

func NewRuleStartState() *RuleStartState {
	return &RuleStartState{BaseATNState: BaseATNState{stateType: ATNStateRuleStart}}
}

// RuleStopState is the exit point of a rule's sub-ATN; closure pops the
// invoking context's return state here (spec §4.4 closure algorithm).
type RuleStopState struct{ BaseATNState }

func NewRuleStopState() *RuleStopState {
	return &RuleStopState{BaseATNState{stateType: ATNStateRuleStop}}
}

// BlockStartState begins a (...) / (...)+ / (...)* sub-block and knows its
// matching BlockEndState.
type BlockStartState struct {
	BaseDecisionState
	endState *BlockEndState
}

func NewBlockStartState() *BlockStartState {
	return &BlockStartState{BaseDecisionState: BaseDecisionState{BaseATNState: BaseATNState{stateType: ATNStateBlockStart}}}
}

type PlusBlockStartState struct {
	BlockStartState
	loopBackState *PlusLoopbackState
}

func NewPlusBlockStartState() *PlusBlockStartState {
	s := &PlusBlockStartState{}
	s.stateType = ATNStatePlusBlockStart
	return s
}

type StarBlockStartState struct{ BlockStartState }

func NewStarBlockStartState() *StarBlockStartState {
	s := &StarBlockStartState{}
	s.stateType = ATNStateStarBlockStart
	return s
}

type BlockEndState struct {
	BaseATNState
	startState ATNState
}

func NewBlockEndState() *BlockEndState { return &BlockEndState{BaseATNState{stateType: ATNStateBlockEnd}} }

// PlusLoopbackState/StarLoopbackState route back into the block for another
// iteration; PlusLoopbackState is itself a decision (continue vs exit).
type PlusLoopbackState struct{ BaseDecisionState }

func NewPlusLoopbackState() *PlusLoopbackState {
	s := &PlusLoopbackState{}
	s.stateType = ATNStatePlusLoopBack
	return s
}

type StarLoopbackState struct{ BaseATNState }

func NewStarLoopbackState() *StarLoopbackState {
	return &StarLoopbackState{BaseATNState{stateType: ATNStateStarLoopBack}}
}

type StarLoopEntryState struct {
	BaseDecisionState
	loopBackState          *StarLoopbackState
	isPrecedenceDecision   bool
}

func NewStarLoopEntryState() *StarLoopEntryState {
	s := &StarLoopEntryState{}
	s.stateType = ATNStateStarLoopEntry
	return s
}

// LoopEndState marks the exit of a +/* loop and knows the loopback state
// it closes (spec §3's typed back-ref requirement).
type LoopEndState struct {
	BaseATNState
	loopBackState ATNState
}

func NewLoopEndState() *LoopEndState { return &LoopEndState{BaseATNState: BaseATNState{stateType: ATNStateLoopEnd}} }

// TokensStartState is the entry state for a lexer mode.
type TokensStartState struct{ BaseDecisionState }

func NewTokensStartState() *TokensStartState {
	s := &TokensStartState{}
	s.stateType = ATNStateTokenStart
	return s
}
