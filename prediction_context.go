// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package antlr

import (
	"fmt"
	"math"

	"golang.org/x/exp/slices"
)

// PredictionContextEmptyReturnState is the sentinel return-state value used
// to mark "base of stack" inside an Array context (spec §3).
const PredictionContextEmptyReturnState = math.MaxInt32

// PredictionContext is the immutable DAG node representing the set of
// possible call stacks at a program point (spec §3/§4.2). Every concrete
// shape (Empty/Singleton/Array) is hash-consed through a
// PredictionContextCache so structurally equal nodes share one allocation
// and compare in O(1) via their cached hash.
type PredictionContext interface {
	hash() int
	GetParent(i int) PredictionContext
	getReturnState(i int) int
	length() int
	isEmpty() bool
	hasEmptyPath() bool
	equals(other PredictionContext) bool
	String() string
}

// BasePredictionContext caches the structural hash so equality checks on
// hash-consed nodes degenerate to a pointer or scalar comparison.
type BasePredictionContext struct {
	cachedHash int
}

func (b *BasePredictionContext) hash() int { return b.cachedHash }

// PredictionContextEmpty is the process-wide singleton denoting "base of
// stack" (spec §9 on global statics).
var PredictionContextEmpty PredictionContext = &EmptyPredictionContext{
	BasePredictionContext{cachedHash: calculateEmptyHash()},
}

func calculateEmptyHash() int { return murmurFinish(murmurInit(1), 0) }

type EmptyPredictionContext struct{ BasePredictionContext }

func (e *EmptyPredictionContext) isEmpty() bool                       { return true }
func (e *EmptyPredictionContext) hasEmptyPath() bool                  { return true }
func (e *EmptyPredictionContext) length() int                         { return 1 }
func (e *EmptyPredictionContext) GetParent(int) PredictionContext     { return nil }
func (e *EmptyPredictionContext) getReturnState(int) int              { return PredictionContextEmptyReturnState }
func (e *EmptyPredictionContext) equals(other PredictionContext) bool { _, ok := other.(*EmptyPredictionContext); return ok }
func (e *EmptyPredictionContext) String() string                      { return "$" }

// SingletonPredictionContext holds exactly one (parent, returnState) pair.
type SingletonPredictionContext struct {
	BasePredictionContext
	parent      PredictionContext
	returnState int
}

// SingletonPredictionContextCreate canonicalizes a nil parent paired with
// EmptyReturnState to the empty context singleton rather than allocating a
// redundant node; any other nil-parent pair still yields a Singleton (spec
// §3 invariant: Singleton/Array-of-one are interchangeable).
func SingletonPredictionContextCreate(parent PredictionContext, returnState int) PredictionContext {
	if returnState == PredictionContextEmptyReturnState && parent == nil {
		return PredictionContextEmpty
	}
	return NewSingletonPredictionContext(parent, returnState)
}

func NewSingletonPredictionContext(parent PredictionContext, returnState int) *SingletonPredictionContext {
	var h int
	if parent != nil {
		h = murmurFinish(murmurInit(1), parent.hash())
	} else {
		h = murmurInit(1)
	}
	h = murmurUpdate(h, returnState)
	h = murmurFinish(h, 2)
	return &SingletonPredictionContext{
		BasePredictionContext: BasePredictionContext{cachedHash: h},
		parent:                parent,
		returnState:           returnState,
	}
}

func (s *SingletonPredictionContext) isEmpty() bool { return false }
func (s *SingletonPredictionContext) hasEmptyPath() bool {
	return s.returnState == PredictionContextEmptyReturnState
}
func (s *SingletonPredictionContext) length() int { return 1 }
func (s *SingletonPredictionContext) GetParent(int) PredictionContext { return s.parent }
func (s *SingletonPredictionContext) getReturnState(int) int          { return s.returnState }
func (s *SingletonPredictionContext) equals(other PredictionContext) bool {
	o, ok := other.(*SingletonPredictionContext)
	if !ok {
		return false
	}
	if s.returnState != o.returnState {
		return false
	}
	if s.parent == o.parent {
		return true
	}
	if s.parent == nil || o.parent == nil {
		return false
	}
	return s.parent.equals(o.parent)
}
func (s *SingletonPredictionContext) String() string {
	var up string
	if s.parent != nil {
		up = s.parent.String()
	}
	if s.returnState == PredictionContextEmptyReturnState {
		return "$"
	}
	return fmt.Sprintf("%d %s", s.returnState, up)
}

// ArrayPredictionContext holds parallel, sorted-by-returnState parents and
// returnStates slices, with PredictionContextEmptyReturnState as the
// sentinel last entry when the stack can also terminate here (spec §3).
type ArrayPredictionContext struct {
	BasePredictionContext
	parents      []PredictionContext
	returnStates []int
}

func NewArrayPredictionContext(parents []PredictionContext, returnStates []int) *ArrayPredictionContext {
	h := murmurInit(1)
	for _, p := range parents {
		if p != nil {
			h = murmurUpdate(h, p.hash())
		} else {
			h = murmurUpdate(h, 0)
		}
	}
	for _, r := range returnStates {
		h = murmurUpdate(h, r)
	}
	h = murmurFinish(h, 2*len(parents))
	return &ArrayPredictionContext{
		BasePredictionContext: BasePredictionContext{cachedHash: h},
		parents:               parents,
		returnStates:          returnStates,
	}
}

func (a *ArrayPredictionContext) isEmpty() bool {
	return len(a.returnStates) == 1 && a.returnStates[0] == PredictionContextEmptyReturnState
}
func (a *ArrayPredictionContext) hasEmptyPath() bool {
	return a.getReturnState(a.length()-1) == PredictionContextEmptyReturnState
}
func (a *ArrayPredictionContext) length() int { return len(a.returnStates) }
func (a *ArrayPredictionContext) GetParent(i int) PredictionContext { return a.parents[i] }
func (a *ArrayPredictionContext) getReturnState(i int) int          { return a.returnStates[i] }
func (a *ArrayPredictionContext) equals(other PredictionContext) bool {
	o, ok := other.(*ArrayPredictionContext)
	if !ok {
		return false
	}
	if !slices.Equal(a.returnStates, o.returnStates) {
		return false
	}
	if len(a.parents) != len(o.parents) {
		return false
	}
	for i := range a.parents {
		ap, op := a.parents[i], o.parents[i]
		if ap == op {
			continue
		}
		if ap == nil || op == nil || !ap.equals(op) {
			return false
		}
	}
	return true
}
func (a *ArrayPredictionContext) String() string {
	if a.isEmpty() {
		return "[]"
	}
	s := "["
	for i, r := range a.returnStates {
		if i > 0 {
			s += ", "
		}
		if r == PredictionContextEmptyReturnState {
			s += "$"
			continue
		}
		s += fmt.Sprintf("%d", r)
		if a.parents[i] != nil {
			s += " " + a.parents[i].String()
		}
	}
	return s + "]"
}

// --- Merge (spec §4.2) -----------------------------------------------------

// mergeCacheKey is the (a, b) pair exactly as given; the key does not order
// it. The commutative merge is found regardless of argument order because
// lookups try both orderings and the cache stores both orderings on insert
// (spec §4.2: "the cache stores both orderings").
type mergeCacheKey struct{ a, b PredictionContext }

// PredictionContextCache is the process-wide (per-grammar) hash-consing
// arena: getCachedContext interns a freshly built node graph bottom-up,
// substituting already-interned equals. It is cleared between grammars,
// not between parses (spec §9).
type PredictionContextCache struct {
	cache map[int][]PredictionContext
}

func NewPredictionContextCache() *PredictionContextCache {
	return &PredictionContextCache{cache: make(map[int][]PredictionContext)}
}

func (c *PredictionContextCache) add(ctx PredictionContext) PredictionContext {
	if ctx == PredictionContextEmpty {
		return PredictionContextEmpty
	}
	h := ctx.hash()
	for _, existing := range c.cache[h] {
		if existing.equals(ctx) {
			return existing
		}
	}
	c.cache[h] = append(c.cache[h], ctx)
	return ctx
}

func (c *PredictionContextCache) get(ctx PredictionContext) (PredictionContext, bool) {
	h := ctx.hash()
	for _, existing := range c.cache[h] {
		if existing.equals(ctx) {
			return existing, true
		}
	}
	return nil, false
}

// GetCachedContext rebuilds ctx bottom-up substituting interned nodes
// (spec §4.2). visited guards re-entrant merges within a single call.
func GetCachedContext(ctx PredictionContext, contextCache *PredictionContextCache, visited map[PredictionContext]PredictionContext) PredictionContext {
	if ctx.isEmpty() {
		return ctx
	}
	if existing, ok := visited[ctx]; ok {
		return existing
	}
	if existing, ok := contextCache.get(ctx); ok {
		visited[ctx] = existing
		return existing
	}
	changed := false
	parents := make([]PredictionContext, ctx.length())
	for i := 0; i < ctx.length(); i++ {
		parent := ctx.GetParent(i)
		if parent == nil {
			parents[i] = nil
			continue
		}
		parentCached := GetCachedContext(parent, contextCache, visited)
		if changed || parentCached != parent {
			if !changed {
				for j := 0; j < i; j++ {
					parents[j] = ctx.GetParent(j)
				}
				changed = true
			}
			parents[i] = parentCached
		} else {
			parents[i] = parent
		}
	}
	if !changed {
		interned := contextCache.add(ctx)
		visited[ctx] = interned
		return interned
	}
	var updated PredictionContext
	if len(parents) == 1 {
		updated = SingletonPredictionContextCreate(parents[0], ctx.getReturnState(0))
	} else {
		returnStates := make([]int, len(parents))
		for i := range parents {
			returnStates[i] = ctx.getReturnState(i)
		}
		updated = NewArrayPredictionContext(parents, returnStates)
	}
	interned := contextCache.add(updated)
	visited[ctx] = interned
	return interned
}

// MergePredictionContexts merges a and b (spec §4.2). rootIsWildcard is
// true in SLL (local) mode — where an empty context acts as a wildcard
// rather than a genuine stack bottom — and false in full-context (LL)
// mode. mergeCache is per-adaptive-prediction-call, not shared across
// calls (spec §5).
func MergePredictionContexts(a, b PredictionContext, rootIsWildcard bool, mergeCache map[mergeCacheKey]PredictionContext) PredictionContext {
	if a == b {
		return a
	}
	if mergeCache != nil {
		if v, ok := mergeCache[mergeCacheKey{a, b}]; ok {
			return v
		}
		if v, ok := mergeCache[mergeCacheKey{b, a}]; ok {
			return v
		}
	}

	var result PredictionContext
	aSingle, aIsSingle := a.(*SingletonPredictionContext)
	bSingle, bIsSingle := b.(*SingletonPredictionContext)
	switch {
	case aIsSingle && bIsSingle:
		result = mergeSingletons(aSingle, bSingle, rootIsWildcard, mergeCache)
	case a.isEmpty() || b.isEmpty():
		result = mergeRoot(a, b, rootIsWildcard)
	default:
		aArr := asArray(a)
		bArr := asArray(b)
		result = mergeArrays(aArr, bArr, rootIsWildcard, mergeCache)
	}

	if mergeCache != nil {
		mergeCache[mergeCacheKey{a, b}] = result
		mergeCache[mergeCacheKey{b, a}] = result
	}
	return result
}

func asArray(ctx PredictionContext) *ArrayPredictionContext {
	if arr, ok := ctx.(*ArrayPredictionContext); ok {
		return arr
	}
	single := ctx.(*SingletonPredictionContext)
	return NewArrayPredictionContext([]PredictionContext{single.parent}, []int{single.returnState})
}

// mergeRoot implements spec §4.2 base case 2: one side is empty.
func mergeRoot(a, b PredictionContext, rootIsWildcard bool) PredictionContext {
	if rootIsWildcard {
		if a.isEmpty() {
			return b
		}
		if b.isEmpty() {
			return a
		}
	}
	if a.isEmpty() && b.isEmpty() {
		return a
	}
	// Full-context mode: weave EMPTY_RETURN_STATE into whichever side is
	// not the empty singleton, as an Array entry alongside its siblings.
	var nonEmpty PredictionContext
	if a.isEmpty() {
		nonEmpty = b
	} else {
		nonEmpty = a
	}
	arr := asArray(nonEmpty)
	idx, found := slices.BinarySearch(arr.returnStates, PredictionContextEmptyReturnState)
	if found {
		return arr
	}
	parents := make([]PredictionContext, len(arr.parents)+1)
	returnStates := make([]int, len(arr.returnStates)+1)
	copy(parents, arr.parents[:idx])
	copy(parents[idx+1:], arr.parents[idx:])
	parents[idx] = nil
	copy(returnStates, arr.returnStates[:idx])
	copy(returnStates[idx+1:], arr.returnStates[idx:])
	returnStates[idx] = PredictionContextEmptyReturnState
	return NewArrayPredictionContext(parents, returnStates)
}

func mergeSingletons(a, b *SingletonPredictionContext, rootIsWildcard bool, mergeCache map[mergeCacheKey]PredictionContext) PredictionContext {
	if a.equals(b) {
		return a
	}
	if a.returnState == b.returnState {
		mergedParent := MergePredictionContexts(a.parent, b.parent, rootIsWildcard, mergeCache)
		if mergedParent == a.parent {
			return a
		}
		if mergedParent == b.parent {
			return b
		}
		return SingletonPredictionContextCreate(mergedParent, a.returnState)
	}
	// Different return states, same or different parents: two-element
	// array sorted by returnState (spec §4.2 base case 3).
	var singleParent PredictionContext
	if a.parent == b.parent {
		singleParent = a.parent
	}
	if singleParent != nil {
		lo, hi := a, b
		if lo.returnState > hi.returnState {
			lo, hi = hi, lo
		}
		return NewArrayPredictionContext([]PredictionContext{singleParent, singleParent}, []int{lo.returnState, hi.returnState})
	}
	lo, hi := a, b
	if lo.returnState > hi.returnState {
		lo, hi = hi, lo
	}
	return NewArrayPredictionContext([]PredictionContext{lo.parent, hi.parent}, []int{lo.returnState, hi.returnState})
}

// mergeArrays performs the classic sorted-list merge over returnStates,
// recursively merging parents at equal return states, canonicalizing
// structurally-equal parent pointers to a single shared instance, and
// demoting a single-slot result back to a Singleton (spec §4.2 Array/Array
// merge). Every (parent, returnState) pair survives the merge — returnStates
// stays sorted and duplicate-free by construction, so two slots sharing a
// parent after canonicalization still carry distinct return states and must
// both be kept.
func mergeArrays(a, b *ArrayPredictionContext, rootIsWildcard bool, mergeCache map[mergeCacheKey]PredictionContext) PredictionContext {
	i, j := 0, 0
	var mergedParents []PredictionContext
	var mergedReturnStates []int
	for i < len(a.returnStates) && j < len(b.returnStates) {
		pa, ra := a.parents[i], a.returnStates[i]
		pb, rb := b.parents[j], b.returnStates[j]
		switch {
		case ra == rb:
			mergedParents = append(mergedParents, MergePredictionContexts(pa, pb, rootIsWildcard, mergeCache))
			mergedReturnStates = append(mergedReturnStates, ra)
			i++
			j++
		case ra < rb:
			mergedParents = append(mergedParents, pa)
			mergedReturnStates = append(mergedReturnStates, ra)
			i++
		default:
			mergedParents = append(mergedParents, pb)
			mergedReturnStates = append(mergedReturnStates, rb)
			j++
		}
	}
	for ; i < len(a.returnStates); i++ {
		mergedParents = append(mergedParents, a.parents[i])
		mergedReturnStates = append(mergedReturnStates, a.returnStates[i])
	}
	for ; j < len(b.returnStates); j++ {
		mergedParents = append(mergedParents, b.parents[j])
		mergedReturnStates = append(mergedReturnStates, b.returnStates[j])
	}

	canonicalizeCommonParents(mergedParents)

	if len(mergedParents) == 1 {
		return SingletonPredictionContextCreate(mergedParents[0], mergedReturnStates[0])
	}
	if sliceRefEqual(mergedParents, a.parents) {
		return a
	}
	if sliceRefEqual(mergedParents, b.parents) {
		return b
	}
	return NewArrayPredictionContext(mergedParents, mergedReturnStates)
}

// canonicalizeCommonParents rewrites parents in place so every
// structurally-equal parent shares one representative pointer, making the
// later sliceRefEqual identity checks (and any pointer-based dedup upstream)
// see through allocation differences without ever dropping a slot.
func canonicalizeCommonParents(parents []PredictionContext) {
	canon := make([]PredictionContext, 0, len(parents))
	for idx, p := range parents {
		if p == nil {
			continue
		}
		found := false
		for _, c := range canon {
			if c.equals(p) {
				parents[idx] = c
				found = true
				break
			}
		}
		if !found {
			canon = append(canon, p)
		}
	}
}

func sliceRefEqual(x, y []PredictionContext) bool {
	if len(x) != len(y) {
		return false
	}
	for i := range x {
		if x[i] != y[i] {
			return false
		}
	}
	return true
}

// murmur* implement the 32-bit murmur3 finalizer the teacher's runtime uses
// to combine hash contributions across the prediction-context and
// config-set machinery.
func murmurInit(seed int) int { return seed }

func murmurUpdate(h, value int) int {
	const c1 = 0xCC9E2D51
	const c2 = 0x1B873593
	k := uint32(value)
	k *= c1
	k = (k << 15) | (k >> 17)
	k *= c2
	hh := uint32(h) ^ k
	hh = (hh << 13) | (hh >> 19)
	hh = hh*5 + 0xE6546B64
	return int(hh)
}

func murmurFinish(h, numberOfWords int) int {
	hh := uint32(h)
	hh ^= uint32(numberOfWords) * 4
	hh ^= hh >> 16
	hh *= 0x85EBCA6B
	hh ^= hh >> 13
	hh *= 0xC2B2AE35
	hh ^= hh >> 16
	return int(hh)
}
