// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package antlr

// simState records prevAccept (spec §4.4): the most recent position at
// which execATN passed through an accepting DFAState, so failOrAccept can
// rewind to the longest match found so far.
type simState struct {
	index    int
	line     int
	charPos  int
	dfaState *DFAState
}

func (s *simState) reset() { *s = simState{index: -1} }

// LexerATNSimulator drives the greedy-longest-match scanner described in
// spec §4.4: it walks the ATN on a DFA miss, synthesizes new DFAStates as
// it goes, and always returns the longest match found from startIndex
// (P6), breaking ties toward the lower rule index (P7, a consequence of
// addDFAState taking the first RuleStop config in the ordered set, whose
// insertion order follows the mode's rule order).
type LexerATNSimulator struct {
	*BaseATNSimulator

	recognizer    *BaseLexer
	decisionToDFA []*DFA // one DFA per lexer mode, shared across instances (spec §5)

	mode int

	startIndex         int
	line               int
	charPositionInLine int

	prevAccept simState
}

func NewLexerATNSimulator(recognizer *BaseLexer, atn *ATN, decisionToDFA []*DFA, sharedContextCache *PredictionContextCache) *LexerATNSimulator {
	l := &LexerATNSimulator{
		BaseATNSimulator:   NewBaseATNSimulator(atn, sharedContextCache),
		recognizer:         recognizer,
		decisionToDFA:      decisionToDFA,
		line:               1,
		charPositionInLine: 0,
	}
	l.prevAccept.reset()
	return l
}

func (l *LexerATNSimulator) Reset() {
	l.line = 1
	l.charPositionInLine = 0
	l.mode = LexerDefaultMode
	l.prevAccept.reset()
}

// Match is the entry point spec §4.4 describes end to end: mark, build or
// reuse the mode's DFA, run execATN, then failOrAccept — with the mark
// released on every exit path.
func (l *LexerATNSimulator) Match(input CharStream, mode int) (int, error) {
	l.mode = mode
	mark := input.Mark()
	defer input.Release(mark)

	l.startIndex = input.Index()
	l.prevAccept.reset()

	dfa := l.decisionToDFA[mode]
	s0 := dfa.GetS0()
	if s0 == nil {
		return l.matchATN(input)
	}
	return l.execATN(input, s0)
}

// matchATN builds the mode's initial DFAState from the ε-closure of its
// TokensStartState (spec §4.4 step 2) and publishes it as s0 unless the
// closure carries a semantic predicate, in which case caching s0 would be
// unsound (the predicate's outcome is speculative per lexeme, not a fact
// about the mode as a whole).
func (l *LexerATNSimulator) matchATN(input CharStream) (int, error) {
	startState := l.atn.modeToStartState[l.mode]

	closure := NewOrderedATNConfigSet()
	l.closure(input, NewATNConfig(startState, 0, PredictionContextEmpty, SemanticContextNone), closure, false, false, false)

	suppressS0 := closure.hasSemanticContext
	closure.hasSemanticContext = false

	next, err := l.addDFAState(closure)
	if err != nil {
		return 0, err
	}
	if !suppressS0 {
		l.decisionToDFA[l.mode].SetS0(next)
	}
	return l.execATN(input, next)
}

// execATN is spec §4.4 step 3, verbatim: hold a DFA state, peek a symbol,
// take the edge (computing it on a miss), stop on ERROR, and record every
// accepting state passed through so failOrAccept can find the longest
// match.
func (l *LexerATNSimulator) execATN(input CharStream, ds0 *DFAState) (int, error) {
	t := input.LA(1)
	s := ds0

	for {
		target, err := l.getExistingOrComputeTargetState(input, s, t)
		if err != nil {
			return 0, err
		}
		if target == DFAStateError {
			break
		}
		// Consume before recording the accept: target was reached by
		// matching t, so the longest-match rewind point is the position
		// just past it, not the position t was peeked from.
		if t != TokenEOF {
			l.consume(input)
		}
		if target.isAcceptState {
			l.captureSimState(&l.prevAccept, input, target)
			if t == TokenEOF {
				break
			}
		}
		t = input.LA(1)
		s = target
	}
	return l.failOrAccept(input, t)
}

func (l *LexerATNSimulator) getExistingOrComputeTargetState(input CharStream, s *DFAState, t int) (*DFAState, error) {
	if existing := s.GetEdge(t); existing != nil {
		return existing, nil
	}
	return l.computeTargetState(input, s, t)
}

// computeTargetState implements spec §4.4's computeTargetState: run
// getReachableConfigSet over s's frozen configs, intern the result as a
// new DFAState, and publish the edge from s on symbol t.
func (l *LexerATNSimulator) computeTargetState(input CharStream, s *DFAState, t int) (*DFAState, error) {
	reach := NewOrderedATNConfigSet()
	l.getReachableConfigSet(input, s.configs, reach, t)

	if reach.IsEmpty() {
		if !reach.hasSemanticContext {
			l.addDFAEdge(s, t, DFAStateError)
		}
		return DFAStateError, nil
	}
	next, err := l.addDFAEdgeFromReach(s, t, reach)
	if err != nil {
		return nil, err
	}
	return next, nil
}

// getReachableConfigSet is spec §4.4's reach computation: for each config
// in closure whose alt has not been "skipped" (a non-greedy path already
// hit an accept for that alt), follow every transition that matches t and
// ε-close the result into reach.
func (l *LexerATNSimulator) getReachableConfigSet(input CharStream, closureSet *ATNConfigSet, reach *ATNConfigSet, t int) {
	skipAlt := ATNInvalidAltNumber
	for _, c := range closureSet.GetItems() {
		currentAltReachedAcceptState := c.alt == skipAlt
		if currentAltReachedAcceptState && c.GetPassedThroughNonGreedyDecision() {
			continue
		}
		for _, tr := range c.state.GetTransitions() {
			target := l.getReachableTarget(tr, t)
			if target == nil {
				continue
			}
			cfg := NewATNConfigFrom(c, target, nil, nil)
			if l.closure(input, cfg, reach, currentAltReachedAcceptState, false, true) {
				skipAlt = c.alt
			}
		}
	}
}

// getReachableTarget returns the state a transition leads to if it
// matches symbol t, honoring the vocabulary bounds every Matches()
// implementation consults for Set/NotSet/Wildcard.
func (l *LexerATNSimulator) getReachableTarget(tr Transition, t int) ATNState {
	if tr.Matches(t, LexerMinCharValue, LexerMaxCharValue) {
		return tr.getTarget()
	}
	return nil
}

// closure is spec §4.4's ε-closure: pop RuleStop contexts, evaluate and
// gate on predicates (speculatively when inside a reach computation),
// carry deferred actions, and add terminal configs to configs. Returns
// true if a RuleStop was reached on a non-greedy decision path, telling
// the caller to prune lower-priority configs for the same alt.
func (l *LexerATNSimulator) closure(input CharStream, config *ATNConfig, configs *ATNConfigSet, currentAltReachedAcceptState, speculative, treatEOFAsEpsilon bool) bool {
	if _, ok := config.state.(*RuleStopState); ok {
		if config.context == nil || config.context.hasEmptyPath() {
			if config.context == nil || config.context.isEmpty() {
				configs.Add(config, nil)
				return currentAltReachedAcceptState
			}
			configs.Add(NewATNConfigFrom(config, config.state, PredictionContextEmpty, nil), nil)
			currentAltReachedAcceptState = true
		}
		if config.context != nil && !config.context.isEmpty() {
			for i := 0; i < config.context.length(); i++ {
				if config.context.getReturnState(i) == PredictionContextEmptyReturnState {
					continue
				}
				returnState := l.atn.states[config.context.getReturnState(i)]
				newContext := config.context.GetParent(i)
				cfg := NewATNConfigFrom(config, returnState, newContext, nil)
				currentAltReachedAcceptState = l.closure(input, cfg, configs, currentAltReachedAcceptState, speculative, treatEOFAsEpsilon)
			}
		}
		return currentAltReachedAcceptState
	}

	if !config.state.GetEpsilonOnlyTransitions() {
		if !currentAltReachedAcceptState || !config.GetPassedThroughNonGreedyDecision() {
			configs.Add(config, nil)
		}
	}

	for _, tr := range config.state.GetTransitions() {
		cfg := l.getEpsilonTarget(input, config, tr, configs, speculative, treatEOFAsEpsilon)
		if cfg != nil {
			nonGreedy := false
			if ds, ok := tr.getTarget().(DecisionState); ok {
				nonGreedy = ds.GetNonGreedy()
			}
			if nonGreedy {
				cfg.passedThroughNonGreedyDecision = true
			}
			currentAltReachedAcceptState = l.closure(input, cfg, configs, currentAltReachedAcceptState, speculative, treatEOFAsEpsilon)
		}
	}
	return currentAltReachedAcceptState
}

func (l *LexerATNSimulator) getEpsilonTarget(input CharStream, config *ATNConfig, tr Transition, configs *ATNConfigSet, speculative, treatEOFAsEpsilon bool) *ATNConfig {
	switch t := tr.(type) {
	case *EpsilonTransition:
		return NewATNConfigFrom(config, tr.getTarget(), nil, nil)
	case *RuleTransition:
		newContext := SingletonPredictionContextCreate(config.context, t.followState.GetStateNumber())
		return NewATNConfigFrom(config, tr.getTarget(), newContext, nil)
	case *PredicateTransition:
		configs.hasSemanticContext = true
		if l.evaluatePredicate(input, t.RuleIndex, t.PredIndex, speculative) {
			return NewATNConfigFrom(config, tr.getTarget(), nil, nil)
		}
		return nil
	case *PrecedencePredicateTransition:
		panic(NewUnsupportedOperationError("precedence predicates are not supported in lexer ATN closures"))
	case *ActionTransition:
		var executor *LexerActionExecutor
		if config.lexerActionExecutor != nil {
			executor = config.lexerActionExecutor
		}
		// actionIndex indexes the ATN's decoded lexer-action table (spec §6
		// lexer-action table); a negative actionIndex means the transition
		// carries no table entry and must call back into the recognizer's
		// own Action method instead, recorded at the input offset it was
		// matched at so it replays at the right position (spec §4.4).
		var action LexerAction
		if t.actionIndex >= 0 && t.actionIndex < len(l.atn.lexerActions) {
			action = l.atn.lexerActions[t.actionIndex]
		} else {
			action = &lexerIndexedCustomAction{
				offset: input.Index() - l.startIndex,
				action: NewLexerCustomAction(t.ruleIndex, t.actionIndex),
			}
		}
		executor = LexerActionExecutorAppend(executor, action)
		cfg := NewATNConfigFrom(config, tr.getTarget(), nil, nil)
		cfg.lexerActionExecutor = executor
		return cfg
	default:
		if tr.getIsEpsilon() {
			return NewATNConfigFrom(config, tr.getTarget(), nil, nil)
		}
		if treatEOFAsEpsilon {
			if tr.Matches(TokenEOF, LexerMinCharValue, LexerMaxCharValue) {
				return NewATNConfigFrom(config, tr.getTarget(), nil, nil)
			}
		}
		return nil
	}
}

// evaluatePredicate is spec §4.4's evaluatePredicate. When speculative it
// must simulate having already matched one more character: save position,
// consume, evaluate, then seek back — with the mark released on every
// exit path, since the predicate's host callback could itself raise.
func (l *LexerATNSimulator) evaluatePredicate(input CharStream, ruleIndex, predIndex int, speculative bool) bool {
	if !speculative {
		return l.recognizer.Sempred(nil, ruleIndex, predIndex)
	}
	savedCharPositionInLine := l.charPositionInLine
	savedLine := l.line
	index := input.Index()
	marker := input.Mark()
	defer func() {
		l.charPositionInLine = savedCharPositionInLine
		l.line = savedLine
		input.Seek(index)
		input.Release(marker)
	}()
	l.consume(input)
	return l.recognizer.Sempred(nil, ruleIndex, predIndex)
}

// captureSimState records the "longest accept so far" (spec §4.4 step
// 3.c).
func (l *LexerATNSimulator) captureSimState(settings *simState, input CharStream, dfaState *DFAState) {
	settings.index = input.Index()
	settings.line = l.line
	settings.charPos = l.charPositionInLine
	settings.dfaState = dfaState
}

// addDFAEdgeFromReach interns reach as a DFAState and publishes the edge
// s-t->next (spec §4.4 addDFAState/addDFAEdge). A config set carrying a
// semantic predicate is never cached as an unconditional edge — its
// outcome depends on the speculative evaluation that already happened
// while building reach, which is not safe to replay context-free on a
// cache hit.
func (l *LexerATNSimulator) addDFAEdgeFromReach(s *DFAState, t int, reach *ATNConfigSet) (*DFAState, error) {
	suppressEdge := reach.hasSemanticContext
	reach.hasSemanticContext = false

	next, err := l.addDFAState(reach)
	if err != nil {
		return nil, err
	}
	if !suppressEdge {
		l.addDFAEdge(s, t, next)
	}
	return next, nil
}

func (l *LexerATNSimulator) addDFAEdge(from *DFAState, t int, to *DFAState) {
	from.SetEdge(t, to)
}

// addDFAState interns configs as a DFAState (spec §4.4 addDFAState): the
// first RuleStop config found fixes isAcceptState/lexerRuleIndex/
// lexerActionExecutor/prediction. Refuses (panics with IllegalStateError)
// if the set carries a semantic predicate — such a set must never be
// published as a shared DFAState, only consulted once per lexeme.
func (l *LexerATNSimulator) addDFAState(configs *ATNConfigSet) (*DFAState, error) {
	if configs.hasSemanticContext {
		panic(NewIllegalStateError("cannot cache a DFAState computed from configs carrying a semantic context"))
	}

	proposed := NewDFAState(-1, configs)
	var firstConfigWithRuleStopState *ATNConfig
	for _, c := range configs.GetItems() {
		if _, ok := c.state.(*RuleStopState); ok {
			firstConfigWithRuleStopState = c
			break
		}
	}
	if firstConfigWithRuleStopState != nil {
		proposed.isAcceptState = true
		proposed.lexerRuleIndex = firstConfigWithRuleStopState.state.GetRuleIndex()
		proposed.lexerActionExecutor = firstConfigWithRuleStopState.lexerActionExecutor
		proposed.prediction = l.atn.ruleToTokenType[proposed.lexerRuleIndex]
	}

	configs.OptimizeConfigs(l.GetSharedContextCache())
	dfa := l.decisionToDFA[l.mode]
	return dfa.AddState(proposed), nil
}

// failOrAccept is spec §4.4 step 4: rewind to the longest accept found (if
// any), run its deferred actions, and return the matched token type; else
// EOF at startIndex returns EOF itself; else the reach set emptied out
// with no prior accept and the lexer raises LexerNoViableAlt.
func (l *LexerATNSimulator) failOrAccept(input CharStream, t int) (int, error) {
	if l.prevAccept.dfaState != nil {
		state := l.prevAccept.dfaState
		input.Seek(l.prevAccept.index)
		l.line = l.prevAccept.line
		l.charPositionInLine = l.prevAccept.charPos
		if state.lexerActionExecutor != nil {
			state.lexerActionExecutor.Execute(l.recognizer, input, l.startIndex)
		}
		return state.prediction, nil
	}
	if t == TokenEOF && input.Index() == l.startIndex {
		return TokenEOF, nil
	}
	return 0, NewLexerNoViableAltException(l.recognizer, input, l.startIndex, nil)
}

// consume advances input by one symbol, tracking line/column — newline
// resets the column and bumps the line, matching every other Consume in
// the pack's lexer implementations.
func (l *LexerATNSimulator) consume(input CharStream) {
	curChar := input.LA(1)
	if curChar == int('\n') {
		l.line++
		l.charPositionInLine = 0
	} else {
		l.charPositionInLine++
	}
	input.Consume()
}

func (l *LexerATNSimulator) GetCharPositionInLine() int { return l.charPositionInLine }
func (l *LexerATNSimulator) GetLine() int                { return l.line }
func (l *LexerATNSimulator) GetMode() int                { return l.mode }
func (l *LexerATNSimulator) SetMode(m int)               { l.mode = m }
