// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package antlr

import "fmt"

// ATNConfig is the triple (state, alt, context) plus predicate described
// in spec §3. Two configs are equivalent for ATNConfigSet dedup purposes
// iff (state.StateNumber, alt, semanticContext) match; on a dedup hit their
// contexts are merged rather than the new one discarded (spec §4.3).
type ATNConfig struct {
	state                   ATNState
	alt                     int
	context                 PredictionContext
	semanticContext         SemanticContext
	reachesIntoOuterContext int

	// Lexer-only fields (spec §3): which non-greedy decision this config
	// passed through, and the executor holding the deferred lexer actions
	// to run at accept time.
	passedThroughNonGreedyDecision bool
	lexerActionExecutor            *LexerActionExecutor
}

func NewATNConfig(state ATNState, alt int, context PredictionContext, semanticContext SemanticContext) *ATNConfig {
	if semanticContext == nil {
		semanticContext = SemanticContextNone
	}
	return &ATNConfig{state: state, alt: alt, context: context, semanticContext: semanticContext}
}

// NewATNConfigFrom copies c but overrides state/context/semanticContext
// when the corresponding argument is non-nil/non-zero, following the
// teacher's "copy constructor with overrides" idiom used throughout
// closure() to derive a child config from its parent.
func NewATNConfigFrom(c *ATNConfig, state ATNState, context PredictionContext, semanticContext SemanticContext) *ATNConfig {
	if state == nil {
		state = c.state
	}
	if context == nil {
		context = c.context
	}
	if semanticContext == nil {
		semanticContext = c.semanticContext
	}
	return &ATNConfig{
		state:                          state,
		alt:                            c.alt,
		context:                        context,
		semanticContext:                semanticContext,
		reachesIntoOuterContext:        c.reachesIntoOuterContext,
		passedThroughNonGreedyDecision: c.passedThroughNonGreedyDecision,
		lexerActionExecutor:            c.lexerActionExecutor,
	}
}

func (c *ATNConfig) GetState() ATNState                  { return c.state }
func (c *ATNConfig) GetAlt() int                         { return c.alt }
func (c *ATNConfig) GetContext() PredictionContext       { return c.context }
func (c *ATNConfig) SetContext(ctx PredictionContext)    { c.context = ctx }
func (c *ATNConfig) GetSemanticContext() SemanticContext { return c.semanticContext }
func (c *ATNConfig) GetReachesIntoOuterContext() int     { return c.reachesIntoOuterContext }
func (c *ATNConfig) SetReachesIntoOuterContext(n int)    { c.reachesIntoOuterContext = n }
func (c *ATNConfig) GetPassedThroughNonGreedyDecision() bool {
	return c.passedThroughNonGreedyDecision
}
func (c *ATNConfig) GetLexerActionExecutor() *LexerActionExecutor { return c.lexerActionExecutor }
func (c *ATNConfig) SetLexerActionExecutor(e *LexerActionExecutor) { c.lexerActionExecutor = e }

// configKey is the (state, alt, semanticContext) dedup key spec §4.3
// requires the set to use.
type configKey struct {
	state int
	alt   int
	sem   string
}

func (c *ATNConfig) key() configKey {
	return configKey{state: c.state.GetStateNumber(), alt: c.alt, sem: c.semanticContext.String()}
}

// Equals implements full structural equality (state, alt, context,
// semanticContext), used by ATNConfigSet.Equals for its element-wise
// comparison rather than the looser dedup key above.
func (c *ATNConfig) Equals(other *ATNConfig) bool {
	if other == nil {
		return false
	}
	if c.state.GetStateNumber() != other.state.GetStateNumber() {
		return false
	}
	if c.alt != other.alt {
		return false
	}
	if c.semanticContext.String() != other.semanticContext.String() {
		return false
	}
	if c.context == other.context {
		return true
	}
	if c.context == nil || other.context == nil {
		return false
	}
	return c.context.equals(other.context)
}

func (c *ATNConfig) String() string {
	var ctxStr string
	if c.context != nil {
		ctxStr = fmt.Sprintf(",[%s]", c.context.String())
	}
	semStr := ""
	if c.semanticContext != SemanticContextNone {
		semStr = fmt.Sprintf(",%s", c.semanticContext.String())
	}
	return fmt.Sprintf("(%d,%d%s%s)", c.state.GetStateNumber(), c.alt, ctxStr, semStr)
}
