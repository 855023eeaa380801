// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package antlr

import "testing"

// stringCharStream is a minimal in-memory CharStream test fixture —
// just enough of the interface to drive the simulators, not a runtime
// deliverable (spec.md keeps the input side interface-only).
type stringCharStream struct {
	runes []rune
	pos   int
}

func newStringCharStream(s string) *stringCharStream {
	return &stringCharStream{runes: []rune(s)}
}

func (s *stringCharStream) Consume() {
	if s.pos >= len(s.runes) {
		panic(NewIllegalStateError("cannot consume past EOF"))
	}
	s.pos++
}

func (s *stringCharStream) LA(i int) int {
	idx := s.pos + i - 1
	if idx < 0 || idx >= len(s.runes) {
		return TokenEOF
	}
	return int(s.runes[idx])
}

func (s *stringCharStream) Mark() int             { return -1 }
func (s *stringCharStream) Release(marker int)     {}
func (s *stringCharStream) Index() int             { return s.pos }
func (s *stringCharStream) Seek(index int)         { s.pos = index }
func (s *stringCharStream) Size() int              { return len(s.runes) }
func (s *stringCharStream) GetSourceName() string  { return "<test>" }
func (s *stringCharStream) GetTextFromInterval(start, stop int) string {
	if start < 0 || stop >= len(s.runes) || start > stop {
		return ""
	}
	return string(s.runes[start : stop+1])
}

// buildTwoRuleLexerATN wires a tiny lexer ATN recognizing single-character
// tokens: rule 0 matches 'a' as token type 1, rule 1 matches 'b' as token
// type 2 — just enough shape to exercise Match's DFA-miss path
// (TokensStartState -> RuleStartState -> RangeTransition -> RuleStopState).
func buildTwoRuleLexerATN() *ATN {
	atn := NewATN(ATNTypeLexer, 2)

	tokensStart := NewTokensStartState()
	ruleStartA := NewRuleStartState()
	ruleStartA.SetRuleIndex(0)
	midA := NewBasicState()
	midA.SetRuleIndex(0)
	ruleStopA := NewRuleStopState()
	ruleStopA.SetRuleIndex(0)

	ruleStartB := NewRuleStartState()
	ruleStartB.SetRuleIndex(1)
	midB := NewBasicState()
	midB.SetRuleIndex(1)
	ruleStopB := NewRuleStopState()
	ruleStopB.SetRuleIndex(1)

	n := 0
	for _, st := range []ATNState{tokensStart, ruleStartA, midA, ruleStopA, ruleStartB, midB, ruleStopB} {
		st.SetStateNumber(n)
		n++
	}
	atn.states = append(atn.states, tokensStart, ruleStartA, midA, ruleStopA, ruleStartB, midB, ruleStopB)

	tokensStart.AddTransition(NewEpsilonTransition(ruleStartA, -1), -1)
	tokensStart.AddTransition(NewEpsilonTransition(ruleStartB, -1), -1)
	ruleStartA.AddTransition(NewRangeTransition(midA, 'a', 'a'), -1)
	midA.AddTransition(NewEpsilonTransition(ruleStopA, -1), -1)
	ruleStartB.AddTransition(NewRangeTransition(midB, 'b', 'b'), -1)
	midB.AddTransition(NewEpsilonTransition(ruleStopB, -1), -1)

	atn.ruleToStartState = []*RuleStartState{ruleStartA, ruleStartB}
	atn.ruleToStopState = []*RuleStopState{ruleStopA, ruleStopB}
	atn.ruleToTokenType = []int{1, 2}
	atn.modeToStartState = []*TokensStartState{tokensStart}
	atn.modeNameToStartState["DEFAULT_MODE"] = tokensStart

	return atn
}

func newTestLexerSimulator() (*LexerATNSimulator, *BaseLexer, *stringCharStream) {
	atn := buildTwoRuleLexerATN()
	stream := newStringCharStream("ab")
	lexer := NewBaseLexer(stream)
	dfa := []*DFA{NewDFA(atn.modeToStartState[0], 0)}
	sim := NewLexerATNSimulator(lexer, atn, dfa, NewPredictionContextCache())
	lexer.Interpreter = sim
	return sim, lexer, stream
}

func TestLexerATNSimulatorMatchesFirstRule(t *testing.T) {
	sim, _, stream := newTestLexerSimulator()

	tt, err := sim.Match(stream, LexerDefaultMode)
	if err != nil {
		t.Fatalf("Match() error = %v", err)
	}
	if tt != 1 {
		t.Errorf("Match() = %d, want token type 1 ('a')", tt)
	}
	if stream.Index() != 1 {
		t.Errorf("stream.Index() after Match = %d, want 1", stream.Index())
	}
}

func TestLexerATNSimulatorMatchesSecondRule(t *testing.T) {
	sim, _, stream := newTestLexerSimulator()
	stream.Seek(1) // position over 'b'

	tt, err := sim.Match(stream, LexerDefaultMode)
	if err != nil {
		t.Fatalf("Match() error = %v", err)
	}
	if tt != 2 {
		t.Errorf("Match() = %d, want token type 2 ('b')", tt)
	}
}

func TestLexerATNSimulatorNoViableAlt(t *testing.T) {
	sim, _, _ := newTestLexerSimulator()
	stream := newStringCharStream("z")

	_, err := sim.Match(stream, LexerDefaultMode)
	if err == nil {
		t.Fatalf("Match() on unrecognized input returned no error")
	}
	if _, ok := err.(*LexerNoViableAltException); !ok {
		t.Errorf("Match() error = %T, want *LexerNoViableAltException", err)
	}
}

func TestLexerATNSimulatorReusesCachedDFA(t *testing.T) {
	sim, _, _ := newTestLexerSimulator()

	stream1 := newStringCharStream("a")
	if _, err := sim.Match(stream1, LexerDefaultMode); err != nil {
		t.Fatalf("first Match() error = %v", err)
	}

	dfa := sim.decisionToDFA[LexerDefaultMode]
	if dfa.GetS0() == nil {
		t.Fatalf("DFA s0 not published after first Match()")
	}
	numStatesAfterFirst := dfa.NumStates()

	stream2 := newStringCharStream("a")
	tt, err := sim.Match(stream2, LexerDefaultMode)
	if err != nil {
		t.Fatalf("second Match() error = %v", err)
	}
	if tt != 1 {
		t.Errorf("second Match() = %d, want 1", tt)
	}
	if got := dfa.NumStates(); got != numStatesAfterFirst {
		t.Errorf("NumStates() grew from %d to %d on a cache-hit replay", numStatesAfterFirst, got)
	}
}

func TestNextTokenEmitsAndAdvancesThroughInput(t *testing.T) {
	sim, lexer, stream := newTestLexerSimulator()
	_ = sim

	tok1 := lexer.NextToken()
	if tok1.GetType() != 1 {
		t.Fatalf("first token type = %d, want 1", tok1.GetType())
	}
	tok2 := lexer.NextToken()
	if tok2.GetType() != 2 {
		t.Fatalf("second token type = %d, want 2", tok2.GetType())
	}
	tok3 := lexer.NextToken()
	if tok3.GetType() != TokenEOF {
		t.Fatalf("third token type = %d, want TokenEOF", tok3.GetType())
	}
	_ = stream
}
