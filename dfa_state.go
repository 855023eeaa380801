// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package antlr

import (
	"fmt"
	"sync"
)

// PredPrediction pairs a predicate with the alt it gates, used by a
// DFAState that must consult semantic predicates before committing to a
// prediction (spec §4.5).
type PredPrediction struct {
	Pred SemanticContext
	Alt  int
}

// MinDFAEdge/MaxDFAEdge bound the compact edge array every DFAState carries
// (spec §3's "edges indexed by symbol offset into a compact array"),
// mirrored from the original runtime's LexerATNSimulator.cpp, which
// resizes a state's edges vector to exactly this span on first use and
// rejects anything outside it before ever touching the array. Symbols
// outside the span (TokenEOF, astral-plane codepoints, most parser token
// types) still cache correctly, just through edgesOverflow instead of the
// array.
const (
	MinDFAEdge = 0
	MaxDFAEdge = 127
)

// DFAState is the state-keyed cache entry described in spec §3: a frozen
// config set plus symbol-indexed edges. Hash/equality are over Configs
// only — two DFAStates with the same reachable configuration set are the
// same state regardless of how they were reached.
//
// DFAStates are interned once and then read concurrently by every
// simulator instance sharing the owning DFA (spec §5's "publish-once/
// read-many" discipline — two recognizer instances over the same grammar
// share one DFA). edgeMu guards every mutation of edges/edgesOverflow;
// reads take the same lock rather than racing a lock-free fast path, since
// growing the backing array is itself a write to the slice header, not
// just its elements.
type DFAState struct {
	stateNumber int
	configs     *ATNConfigSet

	edgeMu        sync.RWMutex
	edges         []*DFAState
	edgesOverflow map[int]*DFAState

	isAcceptState bool
	// Prediction is the alt (parser) or the token type (lexer, taken from
	// atn.ruleToTokenType[lexerRuleIndex]) this state commits to once
	// accepting.
	prediction int

	lexerRuleIndex   int
	lexerActionExecutor *LexerActionExecutor

	requiresFullContext bool
	predicates          []*PredPrediction
}

// DFAStateError is the process-wide sentinel meaning "this symbol
// definitively fails from here" (spec §4.6). Encountering it in execATN
// terminates the scan loop without further ATN exploration.
var DFAStateError = &DFAState{stateNumber: -1, configs: NewATNConfigSet(false)}

func NewDFAState(stateNumber int, configs *ATNConfigSet) *DFAState {
	if configs == nil {
		configs = NewATNConfigSet(false)
	}
	return &DFAState{
		stateNumber: stateNumber,
		configs:     configs,
		prediction:  ATNInvalidAltNumber,
	}
}

func (d *DFAState) GetStateNumber() int     { return d.stateNumber }
func (d *DFAState) SetStateNumber(n int)    { d.stateNumber = n }
func (d *DFAState) GetConfigs() *ATNConfigSet { return d.configs }
func (d *DFAState) IsAcceptState() bool     { return d.isAcceptState }
func (d *DFAState) GetPrediction() int      { return d.prediction }

// GetEdge returns the DFAState reachable on symbol, or nil if the edge has
// never been populated. It never returns the ERROR sentinel's absence as
// "unpopulated" — callers compare against DFAStateError explicitly.
func (d *DFAState) GetEdge(symbol int) *DFAState {
	d.edgeMu.RLock()
	defer d.edgeMu.RUnlock()
	if symbol >= MinDFAEdge && symbol <= MaxDFAEdge {
		idx := symbol - MinDFAEdge
		if idx < len(d.edges) {
			return d.edges[idx]
		}
		return nil
	}
	if d.edgesOverflow == nil {
		return nil
	}
	return d.edgesOverflow[symbol]
}

// SetEdge publishes target for symbol. Per spec §5, DFA growth is monotone:
// once an edge is populated it is never rewritten to a *different*
// non-null target — callers (addDFAEdge) are responsible for only calling
// this on a previously-nil slot. The write happens under edgeMu so it can
// never race GetEdge's read of the same slice/map, in or out of the
// compact range.
func (d *DFAState) SetEdge(symbol int, target *DFAState) {
	d.edgeMu.Lock()
	defer d.edgeMu.Unlock()
	if symbol >= MinDFAEdge && symbol <= MaxDFAEdge {
		idx := symbol - MinDFAEdge
		if idx >= len(d.edges) {
			grown := make([]*DFAState, MaxDFAEdge-MinDFAEdge+1)
			copy(grown, d.edges)
			d.edges = grown
		}
		d.edges[idx] = target
		return
	}
	if d.edgesOverflow == nil {
		d.edgesOverflow = make(map[int]*DFAState)
	}
	d.edgesOverflow[symbol] = target
}

// Equals implements DFAState hash/equality: same configs, nothing else.
func (d *DFAState) Equals(other *DFAState) bool {
	if other == nil {
		return false
	}
	if d == other {
		return true
	}
	return d.configs.Equals(other.configs)
}

func (d *DFAState) hash() int {
	h := murmurInit(7)
	for _, c := range d.configs.GetItems() {
		h = murmurUpdate(h, c.state.GetStateNumber())
		h = murmurUpdate(h, c.alt)
		if c.context != nil {
			h = murmurUpdate(h, c.context.hash())
		}
	}
	return murmurFinish(h, d.configs.Length())
}

func (d *DFAState) String() string {
	return fmt.Sprintf("%d:%s", d.stateNumber, d.configs.String())
}
