// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package antlr

import "testing"

// buildSkipMoreLexerATN builds a three-rule lexer ATN: 'x' is discarded
// (LexerSkip), 'y' is concatenated into the next match (LexerMore), and
// 'z' is emitted as token type 5.
func buildSkipMoreLexerATN() *ATN {
	atn := NewATN(ATNTypeLexer, 3)

	tokensStart := NewTokensStartState()

	ruleStartX := NewRuleStartState()
	midX := NewBasicState()
	ruleStopX := NewRuleStopState()

	ruleStartY := NewRuleStartState()
	midY := NewBasicState()
	ruleStopY := NewRuleStopState()

	ruleStartZ := NewRuleStartState()
	midZ := NewBasicState()
	ruleStopZ := NewRuleStopState()

	states := []ATNState{tokensStart, ruleStartX, midX, ruleStopX, ruleStartY, midY, ruleStopY, ruleStartZ, midZ, ruleStopZ}
	for i, st := range states {
		st.SetStateNumber(i)
		st.SetRuleIndex((i - 1) / 3)
	}
	atn.states = append(atn.states, states...)

	tokensStart.AddTransition(NewEpsilonTransition(ruleStartX, -1), -1)
	tokensStart.AddTransition(NewEpsilonTransition(ruleStartY, -1), -1)
	tokensStart.AddTransition(NewEpsilonTransition(ruleStartZ, -1), -1)

	ruleStartX.AddTransition(NewRangeTransition(midX, 'x', 'x'), -1)
	midX.AddTransition(NewEpsilonTransition(ruleStopX, -1), -1)

	ruleStartY.AddTransition(NewRangeTransition(midY, 'y', 'y'), -1)
	midY.AddTransition(NewEpsilonTransition(ruleStopY, -1), -1)

	ruleStartZ.AddTransition(NewRangeTransition(midZ, 'z', 'z'), -1)
	midZ.AddTransition(NewEpsilonTransition(ruleStopZ, -1), -1)

	atn.ruleToStartState = []*RuleStartState{ruleStartX, ruleStartY, ruleStartZ}
	atn.ruleToStopState = []*RuleStopState{ruleStopX, ruleStopY, ruleStopZ}
	atn.ruleToTokenType = []int{LexerSkip, LexerMore, 5}
	atn.modeToStartState = []*TokensStartState{tokensStart}
	atn.modeNameToStartState["DEFAULT_MODE"] = tokensStart

	return atn
}

func newSkipMoreLexer(input string) (*BaseLexer, *stringCharStream) {
	atn := buildSkipMoreLexerATN()
	stream := newStringCharStream(input)
	lexer := NewBaseLexer(stream)
	dfa := []*DFA{NewDFA(atn.modeToStartState[0], 0)}
	lexer.Interpreter = NewLexerATNSimulator(lexer, atn, dfa, NewPredictionContextCache())
	return lexer, stream
}

func TestNextTokenSkipsDiscardedLexemes(t *testing.T) {
	lexer, _ := newSkipMoreLexer("xz")

	tok := lexer.NextToken()
	if tok.GetType() != 5 {
		t.Fatalf("GetType() = %d, want 5 (the 'x' lexeme must be skipped, not emitted)", tok.GetType())
	}
	if tok.GetText() != "z" {
		t.Errorf("GetText() = %q, want %q", tok.GetText(), "z")
	}
}

func TestNextTokenConcatenatesMoreAcrossMatches(t *testing.T) {
	lexer, _ := newSkipMoreLexer("yyz")

	tok := lexer.NextToken()
	if tok.GetType() != 5 {
		t.Fatalf("GetType() = %d, want 5", tok.GetType())
	}
	if tok.GetText() != "yyz" {
		t.Errorf("GetText() = %q, want %q (More must preserve the original token start across matches)", tok.GetText(), "yyz")
	}
}

func TestNextTokenRecoversFromUnmatchedSymbol(t *testing.T) {
	lexer, _ := newSkipMoreLexer("qz")

	tok := lexer.NextToken()
	if tok.GetType() != 5 {
		t.Fatalf("GetType() = %d, want 5 (recovery must skip the bad 'q' and resume on 'z')", tok.GetType())
	}
	if tok.GetText() != "z" {
		t.Errorf("GetText() = %q, want %q", tok.GetText(), "z")
	}

	eof := lexer.NextToken()
	if eof.GetType() != TokenEOF {
		t.Errorf("final token type = %d, want TokenEOF", eof.GetType())
	}
}

func TestBaseLexerResetClearsModeStackAndRewindsInput(t *testing.T) {
	lexer, stream := newSkipMoreLexer("z")
	lexer.PushMode(3)
	lexer.hitEOF = true
	stream.Seek(1)

	lexer.Reset()

	if lexer.GetMode() != LexerDefaultMode {
		t.Errorf("GetMode() after Reset() = %d, want LexerDefaultMode", lexer.GetMode())
	}
	if len(lexer.modeStack) != 0 {
		t.Errorf("modeStack after Reset() = %v, want empty", lexer.modeStack)
	}
	if lexer.hitEOF {
		t.Errorf("hitEOF after Reset() = true, want false")
	}
	if stream.Index() != 0 {
		t.Errorf("stream.Index() after Reset() = %d, want 0", stream.Index())
	}
}

func TestBaseLexerGetTextDefaultsToInputIntervalUntilSetTextCalled(t *testing.T) {
	lexer, stream := newSkipMoreLexer("abc")
	lexer.tokenStartCharIndex = 0
	stream.Seek(3)

	if got := lexer.GetText(); got != "abc" {
		t.Errorf("GetText() = %q, want %q (derived from the input interval)", got, "abc")
	}

	lexer.SetText("override")
	if got := lexer.GetText(); got != "override" {
		t.Errorf("GetText() after SetText() = %q, want %q", got, "override")
	}
}

// buildActionLexerATN builds a single-rule lexer ATN where 't' carries a
// deferred LexerTypeAction (reached through a real ActionTransition, the
// same way a deserialized grammar's { setType(...) } lexer command would
// be wired) that retypes the token to 42, even though the rule's own
// ruleToTokenType prediction says 5.
func buildActionLexerATN() *ATN {
	atn := NewATN(ATNTypeLexer, 1)

	tokensStart := NewTokensStartState()
	ruleStart := NewRuleStartState()
	afterAction := NewBasicState()
	mid := NewBasicState()
	ruleStop := NewRuleStopState()

	states := []ATNState{tokensStart, ruleStart, afterAction, mid, ruleStop}
	for i, st := range states {
		st.SetStateNumber(i)
		st.SetRuleIndex(0)
	}
	atn.states = append(atn.states, states...)

	tokensStart.AddTransition(NewEpsilonTransition(ruleStart, -1), -1)
	ruleStart.AddTransition(NewActionTransition(afterAction, 0, 0, false), -1)
	afterAction.AddTransition(NewRangeTransition(mid, 't', 't'), -1)
	mid.AddTransition(NewEpsilonTransition(ruleStop, -1), -1)

	atn.ruleToStartState = []*RuleStartState{ruleStart}
	atn.ruleToStopState = []*RuleStopState{ruleStop}
	atn.ruleToTokenType = []int{5}
	atn.modeToStartState = []*TokensStartState{tokensStart}
	atn.modeNameToStartState["DEFAULT_MODE"] = tokensStart
	atn.lexerActions = []LexerAction{NewLexerTypeAction(42)}

	return atn
}

func TestNextTokenHonorsDeferredLexerTypeActionOverRuleToTokenType(t *testing.T) {
	atn := buildActionLexerATN()
	stream := newStringCharStream("t")
	lexer := NewBaseLexer(stream)
	dfa := []*DFA{NewDFA(atn.modeToStartState[0], 0)}
	lexer.Interpreter = NewLexerATNSimulator(lexer, atn, dfa, NewPredictionContextCache())

	tok := lexer.NextToken()
	if tok.GetType() != 42 {
		t.Fatalf("GetType() = %d, want 42 (the deferred LexerTypeAction must win over ruleToTokenType's 5)", tok.GetType())
	}
}

func TestBaseLexerSkipAndMoreSetTokenType(t *testing.T) {
	lexer, _ := newSkipMoreLexer("")
	lexer.Skip()
	if lexer.GetType() != LexerSkip {
		t.Errorf("GetType() after Skip() = %d, want LexerSkip", lexer.GetType())
	}
	lexer.More()
	if lexer.GetType() != LexerMore {
		t.Errorf("GetType() after More() = %d, want LexerMore", lexer.GetType())
	}
}
