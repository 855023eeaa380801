// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package antlr

import "testing"

func TestNewATNConfigDefaultsNilSemanticContextToNone(t *testing.T) {
	cfg := NewATNConfig(newTestState(1), 2, PredictionContextEmpty, nil)
	if cfg.GetSemanticContext() != SemanticContextNone {
		t.Errorf("GetSemanticContext() = %v, want SemanticContextNone", cfg.GetSemanticContext())
	}
}

func TestNewATNConfigFromInheritsNilFields(t *testing.T) {
	parent := NewATNConfig(newTestState(1), 3, PredictionContextEmpty, NewPredicate(0, 0, false))
	parent.SetReachesIntoOuterContext(5)

	child := NewATNConfigFrom(parent, nil, nil, nil)

	if child.GetState() != parent.GetState() {
		t.Errorf("child state = %v, want inherited %v", child.GetState(), parent.GetState())
	}
	if child.GetContext() != parent.GetContext() {
		t.Errorf("child context not inherited")
	}
	if child.GetSemanticContext() != parent.GetSemanticContext() {
		t.Errorf("child semantic context not inherited")
	}
	if child.GetAlt() != parent.GetAlt() {
		t.Errorf("child alt = %d, want %d (always copied)", child.GetAlt(), parent.GetAlt())
	}
	if child.GetReachesIntoOuterContext() != 5 {
		t.Errorf("child reachesIntoOuterContext = %d, want 5 (always copied)", child.GetReachesIntoOuterContext())
	}
}

func TestNewATNConfigFromOverridesNonNilFields(t *testing.T) {
	parent := NewATNConfig(newTestState(1), 3, PredictionContextEmpty, SemanticContextNone)
	newState := newTestState(9)
	newSem := NewPredicate(1, 1, false)

	child := NewATNConfigFrom(parent, newState, PredictionContextEmpty, newSem)

	if child.GetState() != newState {
		t.Errorf("child state not overridden")
	}
	if child.GetSemanticContext() != newSem {
		t.Errorf("child semantic context not overridden")
	}
}

func TestATNConfigEqualsComparesStateAltContextAndSemantics(t *testing.T) {
	s1 := newTestState(1)
	a := NewATNConfig(s1, 2, PredictionContextEmpty, SemanticContextNone)
	b := NewATNConfig(s1, 2, PredictionContextEmpty, SemanticContextNone)

	if !a.Equals(b) {
		t.Errorf("Equals() = false for configs with identical (state,alt,context,sem)")
	}

	c := NewATNConfig(newTestState(2), 2, PredictionContextEmpty, SemanticContextNone)
	if a.Equals(c) {
		t.Errorf("Equals() = true for configs with different states")
	}

	d := NewATNConfig(s1, 9, PredictionContextEmpty, SemanticContextNone)
	if a.Equals(d) {
		t.Errorf("Equals() = true for configs with different alts")
	}

	if a.Equals(nil) {
		t.Errorf("Equals(nil) = true, want false")
	}
}

func TestATNConfigEqualsUsesContextStructuralEquality(t *testing.T) {
	s1 := newTestState(1)
	ctx1 := NewSingletonPredictionContext(PredictionContextEmpty, 7)
	ctx2 := NewSingletonPredictionContext(PredictionContextEmpty, 7)

	a := NewATNConfig(s1, 1, ctx1, SemanticContextNone)
	b := NewATNConfig(s1, 1, ctx2, SemanticContextNone)

	if ctx1 == ctx2 {
		t.Fatalf("test fixture invalid: ctx1 and ctx2 must be distinct pointers")
	}
	if !a.Equals(b) {
		t.Errorf("Equals() = false for structurally-equal but distinct context pointers")
	}
}

func TestATNConfigKeyIgnoresContext(t *testing.T) {
	s1 := newTestState(4)
	a := NewATNConfig(s1, 1, PredictionContextEmpty, SemanticContextNone)
	b := NewATNConfig(s1, 1, NewSingletonPredictionContext(PredictionContextEmpty, 2), SemanticContextNone)

	if a.key() != b.key() {
		t.Errorf("key() differs between configs whose only difference is context, want equal dedup keys")
	}
}

func TestATNConfigStringIncludesSemanticContextWhenNotNone(t *testing.T) {
	s1 := newTestState(1)
	withPred := NewATNConfig(s1, 1, nil, NewPredicate(0, 0, false))
	withoutPred := NewATNConfig(s1, 1, nil, SemanticContextNone)

	if got := withPred.String(); got == withoutPred.String() {
		t.Errorf("String() did not differentiate a non-None semantic context: %q", got)
	}
}
