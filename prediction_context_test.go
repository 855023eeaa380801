// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package antlr

import "testing"

func TestMergeSingletonsSameReturnState(t *testing.T) {
	parentA := SingletonPredictionContextCreate(nil, 1)
	parentB := SingletonPredictionContextCreate(nil, 2)

	a := NewSingletonPredictionContext(parentA, 5)
	b := NewSingletonPredictionContext(parentB, 5)

	merged := MergePredictionContexts(a, b, false, nil)
	if merged.length() != 1 {
		t.Fatalf("merged.length() = %d, want 1", merged.length())
	}
	if got := merged.getReturnState(0); got != 5 {
		t.Errorf("merged.getReturnState(0) = %d, want 5", got)
	}
	// Merging the distinct parents should itself have produced an array of
	// two elements since parentA != parentB.
	mergedParent := merged.GetParent(0)
	if mergedParent.length() != 2 {
		t.Errorf("mergedParent.length() = %d, want 2", mergedParent.length())
	}
}

func TestMergeSingletonsDifferentReturnStateSameParent(t *testing.T) {
	parent := SingletonPredictionContextCreate(nil, 9)
	a := NewSingletonPredictionContext(parent, 3)
	b := NewSingletonPredictionContext(parent, 1)

	merged := MergePredictionContexts(a, b, false, nil)
	if merged.length() != 2 {
		t.Fatalf("merged.length() = %d, want 2", merged.length())
	}
	// Sorted ascending by return state.
	if got := merged.getReturnState(0); got != 1 {
		t.Errorf("merged.getReturnState(0) = %d, want 1", got)
	}
	if got := merged.getReturnState(1); got != 3 {
		t.Errorf("merged.getReturnState(1) = %d, want 3", got)
	}
}

func TestMergeRootWildcard(t *testing.T) {
	single := NewSingletonPredictionContext(nil, 4)

	merged := MergePredictionContexts(PredictionContextEmpty, single, true, nil)
	if merged != single {
		t.Errorf("MergePredictionContexts(empty, single, wildcard=true) = %v, want single unchanged", merged)
	}
}

func TestMergeRootFullContextWeavesEmptyEntry(t *testing.T) {
	single := NewSingletonPredictionContext(nil, 4)

	merged := MergePredictionContexts(PredictionContextEmpty, single, false, nil)
	arr, ok := merged.(*ArrayPredictionContext)
	if !ok {
		t.Fatalf("merged = %T, want *ArrayPredictionContext", merged)
	}
	found := false
	for i := 0; i < arr.length(); i++ {
		if arr.getReturnState(i) == PredictionContextEmptyReturnState {
			found = true
		}
	}
	if !found {
		t.Errorf("merged array does not contain PredictionContextEmptyReturnState: %s", arr.String())
	}
}

func TestMergeArraysKeepsDistinctReturnStatesUnderSharedParent(t *testing.T) {
	parent := SingletonPredictionContextCreate(nil, 7)
	a := NewArrayPredictionContext([]PredictionContext{parent, parent}, []int{1, 2})
	b := NewArrayPredictionContext([]PredictionContext{parent}, []int{2})

	merged := MergePredictionContexts(a, b, false, nil)
	// Both (parent,1) and (parent,2) carry distinct return states and must
	// both survive even though they share a structurally-equal parent.
	if merged.length() != 2 {
		t.Fatalf("merged.length() = %d, want 2", merged.length())
	}
	if got := merged.getReturnState(0); got != 1 {
		t.Errorf("merged.getReturnState(0) = %d, want 1", got)
	}
	if got := merged.getReturnState(1); got != 2 {
		t.Errorf("merged.getReturnState(1) = %d, want 2", got)
	}
}

func TestMergeSameContextReturnsIdentity(t *testing.T) {
	ctx := NewSingletonPredictionContext(nil, 11)
	if got := MergePredictionContexts(ctx, ctx, false, nil); got != ctx {
		t.Errorf("MergePredictionContexts(ctx, ctx, ...) = %v, want ctx unchanged", got)
	}
}

func TestMergeCacheHit(t *testing.T) {
	a := NewSingletonPredictionContext(nil, 1)
	b := NewSingletonPredictionContext(nil, 2)
	cache := make(map[mergeCacheKey]PredictionContext)

	first := MergePredictionContexts(a, b, false, cache)
	if _, ok := cache[mergeCacheKey{a, b}]; !ok {
		t.Fatalf("merge result not recorded in cache under (a,b)")
	}
	if _, ok := cache[mergeCacheKey{b, a}]; !ok {
		t.Fatalf("merge result not recorded in cache under (b,a)")
	}

	second := MergePredictionContexts(b, a, false, cache)
	if second != first {
		t.Errorf("MergePredictionContexts(b, a, ...) = %v, want cached result %v", second, first)
	}
}

func TestGetCachedContextInternsBottomUp(t *testing.T) {
	cache := NewPredictionContextCache()

	parent1 := NewSingletonPredictionContext(nil, 1)
	parent2 := NewSingletonPredictionContext(nil, 1) // structurally equal, different allocation

	interned1 := GetCachedContext(parent1, cache, make(map[PredictionContext]PredictionContext))
	interned2 := GetCachedContext(parent2, cache, make(map[PredictionContext]PredictionContext))

	if interned1 != interned2 {
		t.Errorf("structurally equal contexts interned to different pointers: %p vs %p", interned1, interned2)
	}
}

func TestEmptyPredictionContextSingleton(t *testing.T) {
	if !PredictionContextEmpty.isEmpty() {
		t.Errorf("PredictionContextEmpty.isEmpty() = false, want true")
	}
	if got := PredictionContextEmpty.getReturnState(0); got != PredictionContextEmptyReturnState {
		t.Errorf("PredictionContextEmpty.getReturnState(0) = %d, want %d", got, PredictionContextEmptyReturnState)
	}
}

func TestSingletonPredictionContextCreateCanonicalizesEmpty(t *testing.T) {
	ctx := SingletonPredictionContextCreate(nil, PredictionContextEmptyReturnState)
	if ctx != PredictionContextEmpty {
		t.Errorf("SingletonPredictionContextCreate(nil, emptyReturnState) = %v, want PredictionContextEmpty singleton", ctx)
	}
}
