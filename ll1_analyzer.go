// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package antlr

// LL1Analyzer computes the set of tokens that can follow a given ATN state,
// walking the ATN rather than building a DFA — used for ATN.NextTokens and
// for syntax-error "expected token" reporting, not for the adaptive
// prediction hot path itself.
type LL1Analyzer struct {
	atn *ATN
}

func NewLL1Analyzer(atn *ATN) *LL1Analyzer { return &LL1Analyzer{atn: atn} }

// tokenHitPred marks a spot in a computed next-token set where a semantic
// predicate gated the path and seeThruPreds was false — the token that
// would follow is conservatively unknown rather than absent.
const tokenHitPred = -3

// Look computes the set of tokens reachable from s, staying within ctx
// (nil ctx restricts the walk to s's own rule, adding TokenEpsilon instead
// of following the rule's return state).
func (l *LL1Analyzer) Look(s ATNState, stopState ATNState, ctx RuleContext) *IntervalSet {
	r := NewIntervalSet()
	seeThruPreds := true
	var lookCtx PredictionContext
	if ctx != nil {
		lookCtx = predictionContextFromRuleContext(l.atn, ctx)
	}
	l.look(s, stopState, lookCtx, r, make(map[int]bool), NewBitSet(), seeThruPreds, true)
	return r
}

func (l *LL1Analyzer) look(s, stopState ATNState, ctx PredictionContext, look *IntervalSet, lookBusy map[int]bool, calledRuleStack *BitSet, seeThruPreds, addEOF bool) {
	c := NewATNConfig(s, 0, ctx, SemanticContextNone)
	if lookBusy[configVisitKey(c)] {
		return
	}
	lookBusy[configVisitKey(c)] = true

	if s == stopState {
		if ctx == nil {
			look.AddOne(TokenEpsilon)
			return
		}
		if ctx.isEmpty() && addEOF {
			look.AddOne(TokenEOF)
			return
		}
	}

	if _, ok := s.(*RuleStopState); ok {
		if ctx == nil {
			look.AddOne(TokenEpsilon)
			return
		}
		if ctx.isEmpty() && addEOF {
			look.AddOne(TokenEOF)
			return
		}
		if ctx != PredictionContextEmpty {
			removed := calledRuleStack.Contains(s.GetRuleIndex())
			defer func() {
				if removed {
					calledRuleStack.Set(s.GetRuleIndex())
				}
			}()
			for i := 0; i < ctx.length(); i++ {
				returnState := l.atn.states[ctx.getReturnState(i)]
				l.look(returnState, stopState, ctx.GetParent(i), look, lookBusy, calledRuleStack, seeThruPreds, addEOF)
			}
			return
		}
	}

	for _, t := range s.GetTransitions() {
		switch tr := t.(type) {
		case *RuleTransition:
			if calledRuleStack.Contains(tr.getTarget().GetRuleIndex()) {
				continue
			}
			newContext := SingletonPredictionContextCreate(ctx, tr.followState.GetStateNumber())
			calledRuleStack.Set(tr.getTarget().GetRuleIndex())
			l.look(tr.getTarget(), stopState, newContext, look, lookBusy, calledRuleStack, seeThruPreds, addEOF)
		case *PredicateTransition:
			if seeThruPreds {
				l.look(t.getTarget(), stopState, ctx, look, lookBusy, calledRuleStack, seeThruPreds, addEOF)
			} else {
				look.AddOne(tokenHitPred)
			}
		default:
			if t.getIsEpsilon() {
				l.look(t.getTarget(), stopState, ctx, look, lookBusy, calledRuleStack, seeThruPreds, addEOF)
				continue
			}
			if _, ok := t.(*WildcardTransition); ok {
				look.AddSet(l.atn.vocabularyInterval())
				continue
			}
			set := t.getLabel()
			if set != nil {
				if _, ok := t.(*NotSetTransition); ok {
					set = set.Complement(l.atn.vocabularyInterval())
				}
				look.AddSet(set)
			}
		}
	}
}

// configVisitKey hashes (state, alt, context) so two look() calls over the
// same state but different call-stack contexts are not mistaken for a
// repeat visit — that would silently drop reachable tokens down a
// different return path.
func configVisitKey(c *ATNConfig) int {
	h := murmurInit(1)
	h = murmurUpdate(h, c.state.GetStateNumber())
	h = murmurUpdate(h, c.alt)
	if c.context != nil {
		h = murmurUpdate(h, c.context.hash())
	}
	return murmurFinish(h, 3)
}

// predictionContextFromRuleContext rebuilds a PredictionContext chain from
// a live RuleContext call chain — used by Look's public entry point and by
// adaptive prediction's computeStartState, both of which only have the
// caller's RuleContext to seed a context from.
func predictionContextFromRuleContext(atn *ATN, outerContext RuleContext) PredictionContext {
	if outerContext == nil {
		outerContext = emptyRuleContext{}
	}
	if outerContext.IsEmpty() {
		return PredictionContextEmpty
	}
	parent := predictionContextFromRuleContext(atn, outerContext.GetParent())
	state := atn.states[outerContext.GetInvokingState()]
	transition := state.GetTransitions()[0].(*RuleTransition)
	return SingletonPredictionContextCreate(parent, transition.followState.GetStateNumber())
}

type emptyRuleContext struct{}

func (emptyRuleContext) GetParent() RuleContext   { return nil }
func (emptyRuleContext) GetInvokingState() int    { return -1 }
func (emptyRuleContext) GetRuleIndex() int        { return -1 }
func (emptyRuleContext) IsEmpty() bool            { return true }

// vocabularyInterval returns the full valid-token-type range for this ATN,
// used when a transition's label set must be complemented.
func (a *ATN) vocabularyInterval() *IntervalSet {
	return NewIntervalSetFromInterval(TokenInvalidType+1, a.maxTokenType)
}
