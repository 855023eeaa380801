// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package antlr

import "golang.org/x/exp/slices"

// ATNConfigSet is the ordered bag + parallel hash index described in
// spec §3/§4.3. It is mutable while a closure/reach computation is in
// flight, then frozen (readonly=true) before being published into a
// DFAState — mirroring the teacher's runtime-checked `readonly` flag
// (spec §9 notes a type-level builder/snapshot split would be nicer; we
// keep the runtime flag to stay faithful to the teacher's idiom while still
// refusing mutation after freeze).
type ATNConfigSet struct {
	configs []*ATNConfig
	byKey   map[configKey]int // key -> index into configs, for merge-on-add

	uniqueAlt            int
	conflictingAlts      *BitSet
	hasSemanticContext   bool
	dipsIntoOuterContext bool
	fullCtx              bool
	readonly             bool

	cachedHash int
}

// NewOrderedATNConfigSet names the common case explicitly: a config set
// whose dedup key drives closure/reach fixed-point computation and whose
// iteration order backs conflict-alt tie-breaking (spec §9 design notes on
// why iteration order is preserved alongside the hash index).
func NewOrderedATNConfigSet() *ATNConfigSet { return NewATNConfigSet(false) }

func NewATNConfigSet(fullCtx bool) *ATNConfigSet {
	return &ATNConfigSet{
		configs:  make([]*ATNConfig, 0, 8),
		byKey:    make(map[configKey]int),
		fullCtx:  fullCtx,
		cachedHash: -1,
	}
}

// Add inserts config, merging contexts on a dedup hit per spec §4.3's
// add() algorithm. Returns whether the set grew — including on a merge,
// since the outer closure's fixed-point progress check treats a changed
// context as progress (spec §9 Open Question: AddAll's return value is
// specified as "did the set grow", not the source's unconditional false).
func (s *ATNConfigSet) Add(config *ATNConfig, mergeCache map[mergeCacheKey]PredictionContext) bool {
	if s.readonly {
		panic(NewIllegalStateError("cannot modify a readonly ATNConfigSet"))
	}
	if config.semanticContext != SemanticContextNone {
		s.hasSemanticContext = true
	}
	if config.GetReachesIntoOuterContext() > 0 {
		s.dipsIntoOuterContext = true
	}

	k := config.key()
	if idx, ok := s.byKey[k]; ok {
		existing := s.configs[idx]
		rootIsWildcard := !s.fullCtx
		merged := MergePredictionContexts(existing.context, config.context, rootIsWildcard, mergeCache)
		changed := merged != existing.context
		existing.context = merged
		if config.GetReachesIntoOuterContext() > existing.GetReachesIntoOuterContext() {
			existing.SetReachesIntoOuterContext(config.GetReachesIntoOuterContext())
		}
		return changed
	}

	s.byKey[k] = len(s.configs)
	s.configs = append(s.configs, config)
	return true
}

// AddAll adds every config from other, returning whether the receiving
// set grew in the process.
func (s *ATNConfigSet) AddAll(other *ATNConfigSet, mergeCache map[mergeCacheKey]PredictionContext) bool {
	grew := false
	for _, c := range other.configs {
		if s.Add(c, mergeCache) {
			grew = true
		}
	}
	return grew
}

func (s *ATNConfigSet) Length() int          { return len(s.configs) }
func (s *ATNConfigSet) IsEmpty() bool        { return len(s.configs) == 0 }
func (s *ATNConfigSet) GetItems() []*ATNConfig { return s.configs }
func (s *ATNConfigSet) Get(i int) *ATNConfig  { return s.configs[i] }

// MarkReadOnly freezes the set; no further Add/AddAll calls are permitted.
func (s *ATNConfigSet) MarkReadOnly() { s.readonly = true }
func (s *ATNConfigSet) IsReadOnly() bool { return s.readonly }

// OptimizeConfigs replaces each config's context with its hash-consed
// equivalent from contextCache, shrinking the DAG before the set is frozen
// (spec §4.3 optimizeConfigs). Forbidden on an already-frozen set.
func (s *ATNConfigSet) OptimizeConfigs(contextCache *PredictionContextCache) {
	if s.readonly {
		panic(NewIllegalStateError("cannot optimize a readonly ATNConfigSet"))
	}
	if contextCache == nil {
		return
	}
	visited := make(map[PredictionContext]PredictionContext)
	for _, c := range s.configs {
		c.context = GetCachedContext(c.context, contextCache, visited)
	}
}

// Equals implements spec §9's strict equality: same length and
// element-wise equal, with no unreachable length-mismatch branch ported
// from the source; fullCtx and uniqueAlt must match as well.
func (s *ATNConfigSet) Equals(other *ATNConfigSet) bool {
	if other == nil {
		return false
	}
	if len(s.configs) != len(other.configs) {
		return false
	}
	for i, c := range s.configs {
		if !c.Equals(other.configs[i]) {
			return false
		}
	}
	return s.fullCtx == other.fullCtx && s.uniqueAlt == other.uniqueAlt
}

// GetStates returns the distinct ATNStates referenced by this set's
// configs, in first-seen order.
func (s *ATNConfigSet) GetStates() []ATNState {
	seen := make(map[int]bool)
	var out []ATNState
	for _, c := range s.configs {
		n := c.state.GetStateNumber()
		if !seen[n] {
			seen[n] = true
			out = append(out, c.state)
		}
	}
	return out
}

// GetAltBitSet returns the set of alt numbers present across all configs.
func (s *ATNConfigSet) GetAltBitSet() *BitSet {
	b := NewBitSet()
	for _, c := range s.configs {
		b.Set(c.alt)
	}
	return b
}

// altAndContextSet groups configs by (state, context) — the shape the
// original C++ runtime's ATNConfigSet.cpp conflict analysis builds
// (DESIGN.md) — so GetConflictingAlts can compare alt-set membership per
// group instead of per config.
type altAndContextKey struct {
	state int
	ctx   string
}

func (s *ATNConfigSet) altAndContextSet() map[altAndContextKey]*BitSet {
	groups := make(map[altAndContextKey]*BitSet)
	for _, c := range s.configs {
		ctxStr := ""
		if c.context != nil {
			ctxStr = c.context.String()
		}
		k := altAndContextKey{state: c.state.GetStateNumber(), ctx: ctxStr}
		b, ok := groups[k]
		if !ok {
			b = NewBitSet()
			groups[k] = b
		}
		b.Set(c.alt)
	}
	return groups
}

// GetConflictingAlts returns, for each distinct (state,context) group that
// contains more than one alternative, the set of alternatives in
// conflict — the input ParserATNSimulator's conflict detection reduces to
// Sam Harwell's alt-set subset/equality analysis over (spec §4.5).
func (s *ATNConfigSet) GetConflictingAlts() []*BitSet {
	groups := s.altAndContextSet()
	var conflicts []*BitSet
	keys := make([]altAndContextKey, 0, len(groups))
	for k := range groups {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, func(a, b altAndContextKey) int {
		if a.state != b.state {
			return a.state - b.state
		}
		if a.ctx < b.ctx {
			return -1
		}
		if a.ctx > b.ctx {
			return 1
		}
		return 0
	})
	for _, k := range keys {
		b := groups[k]
		if b.Length() > 1 {
			conflicts = append(conflicts, b)
		}
	}
	return conflicts
}

func (s *ATNConfigSet) String() string {
	out := "["
	for i, c := range s.configs {
		if i > 0 {
			out += ", "
		}
		out += c.String()
	}
	return out + "]"
}

// BitSet is a minimal fixed-growth set of small non-negative integers,
// used for alt numbers and conflicting-alt reporting.
type BitSet struct {
	words []uint64
}

func NewBitSet() *BitSet { return &BitSet{} }

func (b *BitSet) ensure(n int) {
	w := n/64 + 1
	for len(b.words) < w {
		b.words = append(b.words, 0)
	}
}

func (b *BitSet) Set(n int) {
	b.ensure(n)
	b.words[n/64] |= 1 << uint(n%64)
}

func (b *BitSet) Contains(n int) bool {
	if n/64 >= len(b.words) {
		return false
	}
	return b.words[n/64]&(1<<uint(n%64)) != 0
}

func (b *BitSet) Length() int {
	n := 0
	for _, w := range b.words {
		for w != 0 {
			n += int(w & 1)
			w >>= 1
		}
	}
	return n
}

// Values returns the set members in ascending order.
func (b *BitSet) Values() []int {
	var out []int
	for i, w := range b.words {
		for bit := 0; bit < 64; bit++ {
			if w&(1<<uint(bit)) != 0 {
				out = append(out, i*64+bit)
			}
		}
	}
	return out
}

// MinValue returns the smallest member, or -1 if empty (used to implement
// spec's "pick the minimum alt" ambiguity tie-break, §4.5/§8 scenario 6).
func (b *BitSet) MinValue() int {
	v := b.Values()
	if len(v) == 0 {
		return -1
	}
	return v[0]
}
