// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package antlr

// Transition serial-type tags, matching the edge-table "type" field of the
// serialized ATN format (spec §6 item 9).
const (
	TransitionEPSILON           = 1
	TransitionRANGE             = 2
	TransitionRULE              = 3
	TransitionPREDICATE         = 4
	TransitionATOM              = 5
	TransitionACTION            = 6
	TransitionSET               = 7
	TransitionNOTSET            = 8
	TransitionWILDCARD          = 9
	TransitionPRECEDENCE        = 10
)

// Transition is the tagged variant described in spec §3: every concrete
// kind knows how to test whether it matches an input symbol and whether it
// consumes no input (epsilon).
type Transition interface {
	getTarget() ATNState
	setTarget(ATNState)
	getIsEpsilon() bool
	getLabel() *IntervalSet
	getSerializationType() int
	Matches(symbol, minVocabSymbol, maxVocabSymbol int) bool
}

type BaseTransition struct {
	target         ATNState
	isEpsilon      bool
	label          int
	intervalSet    *IntervalSet
	serializationType int
}

func (t *BaseTransition) getTarget() ATNState          { return t.target }
func (t *BaseTransition) setTarget(s ATNState)         { t.target = s }
func (t *BaseTransition) getIsEpsilon() bool           { return t.isEpsilon }
func (t *BaseTransition) getLabel() *IntervalSet       { return t.intervalSet }
func (t *BaseTransition) getSerializationType() int    { return t.serializationType }

// EpsilonTransition consumes no input; closure always follows it.
type EpsilonTransition struct {
	BaseTransition
	outermostPrecedenceReturn int
}

func NewEpsilonTransition(target ATNState, outermostPrecedenceReturn int) *EpsilonTransition {
	return &EpsilonTransition{
		BaseTransition:            BaseTransition{target: target, isEpsilon: true, serializationType: TransitionEPSILON},
		outermostPrecedenceReturn: outermostPrecedenceReturn,
	}
}
func (t *EpsilonTransition) Matches(int, int, int) bool { return false }

// RangeTransition matches any symbol in [Start,Stop].
type RangeTransition struct {
	BaseTransition
	Start, Stop int
}

func NewRangeTransition(target ATNState, start, stop int) *RangeTransition {
	return &RangeTransition{
		BaseTransition: BaseTransition{target: target, serializationType: TransitionRANGE},
		Start:          start,
		Stop:           stop,
	}
}
func (t *RangeTransition) Matches(symbol, _, _ int) bool { return symbol >= t.Start && symbol <= t.Stop }
func (t *RangeTransition) getLabel() *IntervalSet        { return NewIntervalSetFromInterval(t.Start, t.Stop) }

// AtomTransition matches exactly one symbol.
type AtomTransition struct {
	BaseTransition
	Label int
}

func NewAtomTransition(target ATNState, label int) *AtomTransition {
	return &AtomTransition{BaseTransition: BaseTransition{target: target, label: label, serializationType: TransitionATOM}, Label: label}
}
func (t *AtomTransition) Matches(symbol, _, _ int) bool { return symbol == t.Label }
func (t *AtomTransition) getLabel() *IntervalSet        { return NewIntervalSetFromInterval(t.Label, t.Label) }

// RuleTransition invokes a rule's sub-ATN and resumes at followState on
// return (spec §3; serialized form redirects `trg` to followState and
// carries the callee's start state in arg1, per spec §6 item 9).
type RuleTransition struct {
	BaseTransition
	followState ATNState
	ruleIndex   int
	precedence  int
}

func NewRuleTransition(ruleStart ATNState, ruleIndex, precedence int, followState ATNState) *RuleTransition {
	return &RuleTransition{
		BaseTransition: BaseTransition{target: ruleStart, isEpsilon: true, serializationType: TransitionRULE},
		followState:    followState,
		ruleIndex:      ruleIndex,
		precedence:     precedence,
	}
}
func (t *RuleTransition) Matches(int, int, int) bool { return false }

// PredicateTransition gates on a semantic predicate evaluated by the host
// recognizer; closure drops the edge when the predicate is false.
type PredicateTransition struct {
	BaseTransition
	RuleIndex, PredIndex int
	IsCtxDependent       bool
}

func NewPredicateTransition(target ATNState, ruleIndex, predIndex int, isCtxDependent bool) *PredicateTransition {
	return &PredicateTransition{
		BaseTransition: BaseTransition{target: target, isEpsilon: true, serializationType: TransitionPREDICATE},
		RuleIndex:       ruleIndex,
		PredIndex:       predIndex,
		IsCtxDependent:  isCtxDependent,
	}
}
func (t *PredicateTransition) Matches(int, int, int) bool { return false }
func (t *PredicateTransition) getPredicate() *Predicate {
	return NewPredicate(t.RuleIndex, t.PredIndex, t.IsCtxDependent)
}

// PrecedencePredicateTransition gates left-recursive alternatives by the
// current precedence climbing level. Unsupported inside a lexer closure
// (spec §4.4) — evaluating one there is a fatal UnsupportedOperationError.
type PrecedencePredicateTransition struct {
	BaseTransition
	Precedence int
}

func NewPrecedencePredicateTransition(target ATNState, precedence int) *PrecedencePredicateTransition {
	return &PrecedencePredicateTransition{
		BaseTransition: BaseTransition{target: target, isEpsilon: true, serializationType: TransitionPRECEDENCE},
		Precedence:      precedence,
	}
}
func (t *PrecedencePredicateTransition) Matches(int, int, int) bool { return false }
func (t *PrecedencePredicateTransition) getPredicate() *PrecedencePredicate {
	return NewPrecedencePredicate(t.Precedence)
}

// ActionTransition carries a deferred lexer/parser action, executed by the
// host recognizer at accept time rather than during closure.
type ActionTransition struct {
	BaseTransition
	ruleIndex, actionIndex int
	isCtxDependent         bool
}

func NewActionTransition(target ATNState, ruleIndex, actionIndex int, isCtxDependent bool) *ActionTransition {
	return &ActionTransition{
		BaseTransition: BaseTransition{target: target, isEpsilon: true, serializationType: TransitionACTION},
		ruleIndex:       ruleIndex,
		actionIndex:     actionIndex,
		isCtxDependent:  isCtxDependent,
	}
}
func (t *ActionTransition) Matches(int, int, int) bool { return false }

// SetTransition matches any symbol in an IntervalSet.
type SetTransition struct {
	BaseTransition
}

func NewSetTransition(target ATNState, set *IntervalSet) *SetTransition {
	if set == nil {
		set = NewIntervalSetFromInterval(TokenInvalidType, TokenInvalidType)
	}
	return &SetTransition{BaseTransition{target: target, intervalSet: set, serializationType: TransitionSET}}
}
func (t *SetTransition) Matches(symbol, _, _ int) bool { return t.intervalSet.Contains(symbol) }

// NotSetTransition matches any symbol in the vocabulary NOT in its set.
type NotSetTransition struct{ SetTransition }

func NewNotSetTransition(target ATNState, set *IntervalSet) *NotSetTransition {
	t := &NotSetTransition{}
	t.target = target
	t.intervalSet = set
	t.serializationType = TransitionNOTSET
	return t
}
func (t *NotSetTransition) Matches(symbol, minVocab, maxVocab int) bool {
	return symbol >= minVocab && symbol <= maxVocab && !t.intervalSet.Contains(symbol)
}

// WildcardTransition matches any symbol in the vocabulary.
type WildcardTransition struct{ BaseTransition }

func NewWildcardTransition(target ATNState) *WildcardTransition {
	return &WildcardTransition{BaseTransition{target: target, serializationType: TransitionWILDCARD}}
}
func (t *WildcardTransition) Matches(symbol, minVocab, maxVocab int) bool {
	return symbol >= minVocab && symbol <= maxVocab
}
