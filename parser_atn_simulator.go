// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package antlr

// ParserATNSimulator is the adaptive LL(*) predictor described in spec
// §4.5: predict with SLL (local) contexts against the decision's DFA
// first; if SLL surfaces a conflict, redo the reach computation with full
// contexts, reporting a context-sensitivity event on a unique outcome or
// an ambiguity if the conflict survives.
type ParserATNSimulator struct {
	*BaseATNSimulator

	parser        Recognizer
	decisionToDFA []*DFA
}

func NewParserATNSimulator(parser Recognizer, atn *ATN, decisionToDFA []*DFA, sharedContextCache *PredictionContextCache) *ParserATNSimulator {
	return &ParserATNSimulator{
		BaseATNSimulator: NewBaseATNSimulator(atn, sharedContextCache),
		parser:           parser,
		decisionToDFA:    decisionToDFA,
	}
}

// AdaptivePredict is the entry point: consult (or build) decision's DFA,
// running the SLL scan loop over input starting at its current position,
// and returns the predicted alternative (1-based) or an error.
func (p *ParserATNSimulator) AdaptivePredict(input TokenStream, decision int, outerContext RuleContext) (int, error) {
	dfa := p.decisionToDFA[decision]
	startIndex := input.Index()

	s0 := p.startState(dfa, outerContext)
	if s0 == nil {
		configs := p.computeStartState(dfa.atnStartState, outerContext, false)
		var err error
		s0, err = p.addDFAEdgeState(dfa, configs)
		if err != nil {
			return 0, err
		}
		p.setStartState(dfa, outerContext, s0)
	}

	alt, err := p.execATN(input, dfa, s0, startIndex, outerContext)
	if err != nil {
		return 0, err
	}
	return alt, nil
}

// startState resolves the DFA's entry point, consulting the
// precedence-filtered map for left-recursive rules (spec §4.5 Precedence
// DFAs) instead of the plain s0 slot.
func (p *ParserATNSimulator) startState(dfa *DFA, outerContext RuleContext) *DFAState {
	if !dfa.isPrecedenceDfa {
		return dfa.GetS0()
	}
	return dfa.GetPrecedenceStartState(currentPrecedence(outerContext))
}

func (p *ParserATNSimulator) setStartState(dfa *DFA, outerContext RuleContext, s0 *DFAState) {
	if !dfa.isPrecedenceDfa {
		dfa.SetS0(s0)
		return
	}
	dfa.SetPrecedenceStartState(currentPrecedence(outerContext), s0)
}

// currentPrecedence reads the climbing level off outerContext when it
// implements the optional accessor; absent that (our minimal RuleContext
// contract does not require it), precedence-gated predicates default to
// the lowest level, 0.
func currentPrecedence(outerContext RuleContext) int {
	type precedenceContext interface {
		GetPrecedence() int
	}
	if pc, ok := outerContext.(precedenceContext); ok {
		return pc.GetPrecedence()
	}
	return 0
}

// computeStartState builds the initial config set for decision state s
// (spec §4.5 computeStartState): one config per outgoing alternative,
// context seeded from outerContext so a non-nil context lets closure pop
// back into the caller instead of stopping at this rule's boundary.
func (p *ParserATNSimulator) computeStartState(s ATNState, outerContext RuleContext, fullCtx bool) *ATNConfigSet {
	initialContext := predictionContextFromRuleContext(p.atn, outerContext)
	configs := NewATNConfigSet(fullCtx)
	for i, tr := range s.GetTransitions() {
		target := tr.getTarget()
		c := NewATNConfig(target, i+1, initialContext, SemanticContextNone)
		p.closure(c, configs, false, fullCtx, currentPrecedence(outerContext))
	}
	return configs
}

// closure is spec §4.5's parser ε-closure: like the lexer's, except
// RuleTransition always pushes a real call-stack frame (never skipped for
// a mode-like concept) and Predicate/PrecedencePredicate transitions are
// evaluated immediately against the supplied precedence level — deferring
// them to prediction's end, as the full algorithm does for
// context-dependent predicates, is out of scope for this design sketch
// (spec §4.5 names it as an "additional concern", not a required
// mechanism).
func (p *ParserATNSimulator) closure(config *ATNConfig, configs *ATNConfigSet, collectPredicates, fullCtx bool, precedence int) {
	if _, ok := config.state.(*RuleStopState); ok {
		if config.context == nil || config.context.isEmpty() {
			if config.context == nil {
				configs.Add(config, nil)
				return
			}
			configs.Add(NewATNConfigFrom(config, config.state, nil, nil), nil)
			return
		}
		for i := 0; i < config.context.length(); i++ {
			if config.context.getReturnState(i) == PredictionContextEmptyReturnState {
				continue
			}
			returnState := p.atn.states[config.context.getReturnState(i)]
			newContext := config.context.GetParent(i)
			cfg := NewATNConfigFrom(config, returnState, newContext, nil)
			p.closure(cfg, configs, collectPredicates, fullCtx, precedence)
		}
		return
	}

	if !config.state.GetEpsilonOnlyTransitions() {
		configs.Add(config, nil)
	}

	for _, tr := range config.state.GetTransitions() {
		cfg := p.getEpsilonTarget(config, tr, precedence)
		if cfg != nil {
			p.closure(cfg, configs, collectPredicates, fullCtx, precedence)
		}
	}
}

func (p *ParserATNSimulator) getEpsilonTarget(config *ATNConfig, tr Transition, precedence int) *ATNConfig {
	switch t := tr.(type) {
	case *RuleTransition:
		newContext := SingletonPredictionContextCreate(config.context, t.followState.GetStateNumber())
		return NewATNConfigFrom(config, tr.getTarget(), newContext, nil)
	case *PredicateTransition:
		if p.parser != nil && !p.parser.Sempred(nil, t.RuleIndex, t.PredIndex) {
			return nil
		}
		return NewATNConfigFrom(config, tr.getTarget(), nil, nil)
	case *PrecedencePredicateTransition:
		if precedence < t.Precedence {
			return nil
		}
		return NewATNConfigFrom(config, tr.getTarget(), nil, nil)
	default:
		if tr.getIsEpsilon() {
			return NewATNConfigFrom(config, tr.getTarget(), nil, nil)
		}
		return nil
	}
}

// computeReachSet is spec §4.5's computeReachSet: follow every transition
// out of closure's configs that matches token type t, ε-closing each
// result into the next config set. Returns nil (not an empty set) once
// every config has been eliminated, so callers can tell "dead end" apart
// from "legitimately reaches nothing more, but input is exhausted".
func (p *ParserATNSimulator) computeReachSet(closureConfigs *ATNConfigSet, t int, fullCtx bool, precedence int) *ATNConfigSet {
	reach := NewATNConfigSet(fullCtx)
	for _, c := range closureConfigs.GetItems() {
		for _, tr := range c.state.GetTransitions() {
			if !tr.Matches(t, TokenInvalidType+1, p.atn.maxTokenType) {
				continue
			}
			cfg := NewATNConfigFrom(c, tr.getTarget(), nil, nil)
			p.closure(cfg, reach, false, fullCtx, precedence)
		}
	}
	if reach.IsEmpty() {
		return nil
	}
	return reach
}

// getConflictingAlts delegates to ATNConfigSet's (state,context) grouping
// (spec §4.5's Sam Harwell analysis), returning the first conflicting
// group or nil if the configs agree.
func (p *ParserATNSimulator) getConflictingAlts(configs *ATNConfigSet) *BitSet {
	groups := configs.GetConflictingAlts()
	if len(groups) == 0 {
		return nil
	}
	return groups[0]
}

// getUniqueAlt returns the single alt every config in configs agrees on,
// or ATNInvalidAltNumber if more than one is present.
func (p *ParserATNSimulator) getUniqueAlt(configs *ATNConfigSet) int {
	alt := ATNInvalidAltNumber
	for _, c := range configs.GetItems() {
		if alt == ATNInvalidAltNumber {
			alt = c.alt
		} else if alt != c.alt {
			return ATNInvalidAltNumber
		}
	}
	return alt
}

// execATN drives the SLL-first/full-context-fallback scan loop (spec
// §4.5 Output: uniqueAlt/SLL-conflict/ambiguous-alts/full-ctx-required).
// On an SLL conflict it restarts the same token span with full contexts
// exactly once; a conflict surviving that second pass is resolved by the
// minimum-alt policy and reported as an ambiguity.
func (p *ParserATNSimulator) execATN(input TokenStream, dfa *DFA, s0 *DFAState, startIndex int, outerContext RuleContext) (int, error) {
	previousD := s0
	t := input.LA(1)

	for {
		nextD, err := p.getExistingOrComputeTargetState(dfa, previousD, t, outerContext, false)
		if err != nil {
			return 0, err
		}
		if nextD == DFAStateError {
			return 0, NewNoViableAltException(p.parser, startIndex, input.Index(), previousD.stateNumber, previousD.configs, nil)
		}
		if nextD.requiresFullContext {
			return p.resolveWithFullContext(input, dfa, startIndex, outerContext)
		}
		if nextD.isAcceptState {
			return nextD.prediction, nil
		}
		previousD = nextD
		input.Consume()
		t = input.LA(1)
	}
}

func (p *ParserATNSimulator) getExistingOrComputeTargetState(dfa *DFA, s *DFAState, t int, outerContext RuleContext, fullCtx bool) (*DFAState, error) {
	if existing := s.GetEdge(t); existing != nil {
		return existing, nil
	}
	reach := p.computeReachSet(s.configs, t, fullCtx, currentPrecedence(outerContext))
	if reach == nil {
		s.SetEdge(t, DFAStateError)
		return DFAStateError, nil
	}
	conflict := p.getConflictingAlts(reach)
	next, err := p.addDFAEdgeState(dfa, reach)
	if err != nil {
		return nil, err
	}
	if conflict != nil {
		next.requiresFullContext = true
	} else if uniqueAlt := p.getUniqueAlt(reach); uniqueAlt != ATNInvalidAltNumber {
		next.isAcceptState = true
		next.prediction = uniqueAlt
	}
	s.SetEdge(t, next)
	return next, nil
}

// resolveWithFullContext re-walks the same token span from startIndex
// with full (non-wildcard) contexts, the spec §4.5 fallback phase: a
// unique alt is a context-sensitivity event; a surviving conflict is an
// ambiguity resolved by taking the lowest alt number (spec §8 scenario
// 6's tie-break policy).
func (p *ParserATNSimulator) resolveWithFullContext(input TokenStream, dfa *DFA, startIndex int, outerContext RuleContext) (int, error) {
	input.Seek(startIndex)
	configs := p.computeStartState(dfa.atnStartState, outerContext, true)
	t := input.LA(1)
	stopIndex := startIndex

	for {
		reach := p.computeReachSet(configs, t, true, currentPrecedence(outerContext))
		if reach == nil {
			return 0, NewNoViableAltException(p.parser, startIndex, input.Index(), ATNInvalidStateNumber, configs, nil)
		}
		if uniqueAlt := p.getUniqueAlt(reach); uniqueAlt != ATNInvalidAltNumber {
			p.reportContextSensitivity(dfa, startIndex, stopIndex, uniqueAlt, reach)
			return uniqueAlt, nil
		}
		conflict := p.getConflictingAlts(reach)
		if conflict != nil && conflict.Length() > 0 {
			remaining := reach.GetAltBitSet()
			if equalBitSets(conflict, remaining) {
				alt := conflict.MinValue()
				p.reportAmbiguity(dfa, startIndex, stopIndex, false, conflict, reach)
				return alt, nil
			}
		}
		configs = reach
		input.Consume()
		stopIndex = input.Index()
		t = input.LA(1)
		if t == TokenEOF {
			alt := p.getUniqueAlt(configs)
			if alt == ATNInvalidAltNumber {
				ambigAlts := configs.GetAltBitSet()
				alt = ambigAlts.MinValue()
				p.reportAmbiguity(dfa, startIndex, stopIndex, false, ambigAlts, configs)
			}
			return alt, nil
		}
	}
}

func equalBitSets(a, b *BitSet) bool {
	av, bv := a.Values(), b.Values()
	if len(av) != len(bv) {
		return false
	}
	for i := range av {
		if av[i] != bv[i] {
			return false
		}
	}
	return true
}

func (p *ParserATNSimulator) reportAmbiguity(dfa *DFA, startIndex, stopIndex int, exact bool, ambigAlts *BitSet, configs *ATNConfigSet) {
	if p.parser == nil {
		return
	}
	p.parser.GetErrorListenerDispatch().ReportAmbiguity(p.parser, dfa, startIndex, stopIndex, exact, ambigAlts, configs)
}

func (p *ParserATNSimulator) reportContextSensitivity(dfa *DFA, startIndex, stopIndex, prediction int, configs *ATNConfigSet) {
	if p.parser == nil {
		return
	}
	p.parser.GetErrorListenerDispatch().ReportContextSensitivity(p.parser, dfa, startIndex, stopIndex, prediction, configs)
}

// addDFAEdgeState interns configs into dfa, optimizing contexts through
// the shared cache first exactly as the lexer's addDFAState does (spec
// §4.3 optimizeConfigs before freeze).
func (p *ParserATNSimulator) addDFAEdgeState(dfa *DFA, configs *ATNConfigSet) (*DFAState, error) {
	configs.OptimizeConfigs(p.GetSharedContextCache())
	proposed := NewDFAState(-1, configs)
	return dfa.AddState(proposed), nil
}
