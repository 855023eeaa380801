// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package antlr

import "testing"

func newTestBaseLexer() *BaseLexer {
	return NewBaseLexer(newStringCharStream(""))
}

func TestLexerSkipActionExecute(t *testing.T) {
	lexer := newTestBaseLexer()
	NewLexerSkipAction().Execute(lexer)
	if lexer.GetType() != LexerSkip {
		t.Errorf("GetType() = %d, want LexerSkip", lexer.GetType())
	}
}

func TestLexerMoreActionExecute(t *testing.T) {
	lexer := newTestBaseLexer()
	NewLexerMoreAction().Execute(lexer)
	if lexer.GetType() != LexerMore {
		t.Errorf("GetType() = %d, want LexerMore", lexer.GetType())
	}
}

func TestLexerTypeActionExecute(t *testing.T) {
	lexer := newTestBaseLexer()
	NewLexerTypeAction(42).Execute(lexer)
	if lexer.GetType() != 42 {
		t.Errorf("GetType() = %d, want 42", lexer.GetType())
	}
}

func TestLexerChannelActionExecute(t *testing.T) {
	lexer := newTestBaseLexer()
	NewLexerChannelAction(TokenHiddenChannel).Execute(lexer)
	if lexer.channel != TokenHiddenChannel {
		t.Errorf("channel = %d, want TokenHiddenChannel", lexer.channel)
	}
}

func TestLexerModeActionExecute(t *testing.T) {
	lexer := newTestBaseLexer()
	NewLexerModeAction(3).Execute(lexer)
	if lexer.GetMode() != 3 {
		t.Errorf("GetMode() = %d, want 3", lexer.GetMode())
	}
}

func TestLexerPushPopModeActionExecute(t *testing.T) {
	lexer := newTestBaseLexer()
	NewLexerPushModeAction(3).Execute(lexer)
	if lexer.GetMode() != 3 {
		t.Fatalf("GetMode() after push = %d, want 3", lexer.GetMode())
	}

	NewLexerPopModeAction().Execute(lexer)
	if lexer.GetMode() != LexerDefaultMode {
		t.Errorf("GetMode() after pop = %d, want LexerDefaultMode", lexer.GetMode())
	}
}

func TestLexerPopModeActionOnEmptyStackPanics(t *testing.T) {
	lexer := newTestBaseLexer()

	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("PopMode on empty stack did not panic")
		}
		if _, ok := r.(*EmptyStackError); !ok {
			t.Errorf("panic value = %T, want *EmptyStackError", r)
		}
	}()
	NewLexerPopModeAction().Execute(lexer)
}

func TestLexerCustomActionExecuteRecordsIndices(t *testing.T) {
	lexer := newTestBaseLexer()
	NewLexerCustomAction(2, 5).Execute(lexer)
	if lexer.actionRuleIndex != 2 || lexer.actionActionIndex != 5 {
		t.Errorf("action indices = (%d,%d), want (2,5)", lexer.actionRuleIndex, lexer.actionActionIndex)
	}
}

func TestLexerActionExecutorAppendDoesNotMutateOriginal(t *testing.T) {
	base := NewLexerActionExecutor([]LexerAction{NewLexerSkipAction()})
	extended := LexerActionExecutorAppend(base, NewLexerTypeAction(9))

	if len(base.lexerActions) != 1 {
		t.Errorf("original executor mutated: len = %d, want 1", len(base.lexerActions))
	}
	if len(extended.lexerActions) != 2 {
		t.Fatalf("extended executor has %d actions, want 2", len(extended.lexerActions))
	}
	if extended.lexerActions[0] != base.lexerActions[0] {
		t.Errorf("extended executor's prefix does not share the original action")
	}
}

func TestLexerActionExecutorAppendOnNilExecutor(t *testing.T) {
	extended := LexerActionExecutorAppend(nil, NewLexerSkipAction())
	if len(extended.lexerActions) != 1 {
		t.Fatalf("len = %d, want 1", len(extended.lexerActions))
	}
}

func TestLexerActionExecutorExecuteRunsEveryAction(t *testing.T) {
	lexer := newTestBaseLexer()
	executor := NewLexerActionExecutor([]LexerAction{
		NewLexerChannelAction(TokenHiddenChannel),
		NewLexerTypeAction(7),
	})

	executor.Execute(lexer, lexer.input, 0)

	if lexer.channel != TokenHiddenChannel {
		t.Errorf("channel = %d, want TokenHiddenChannel", lexer.channel)
	}
	if lexer.GetType() != 7 {
		t.Errorf("GetType() = %d, want 7", lexer.GetType())
	}
}

func TestLexerActionExecutorSeeksToOffsetThenRestores(t *testing.T) {
	lexer := newTestBaseLexer()
	stream := newStringCharStream("abcdef")
	stream.Seek(4)

	var seenIndexDuringAction int
	executor := NewLexerActionExecutor([]LexerAction{
		&lexerIndexedCustomAction{
			offset: 1,
			action: recordingAction{record: &seenIndexDuringAction, stream: stream},
		},
	})
	executor.Execute(lexer, stream, 0)

	if seenIndexDuringAction != 1 {
		t.Errorf("index seen during action = %d, want 1 (startIndex 0 + offset 1)", seenIndexDuringAction)
	}
	if stream.Index() != 4 {
		t.Errorf("stream.Index() after Execute = %d, want 4 (seek restored)", stream.Index())
	}
}

func TestLexerActionExecutorNoSeekWhenOffsetMatchesStop(t *testing.T) {
	lexer := newTestBaseLexer()
	stream := newStringCharStream("abcdef")
	stream.Seek(4)

	executor := NewLexerActionExecutor([]LexerAction{
		&lexerIndexedCustomAction{offset: 4, action: NewLexerCustomAction(0, 0)},
	})
	executor.Execute(lexer, stream, 0)

	if stream.Index() != 4 {
		t.Errorf("stream.Index() after Execute = %d, want 4", stream.Index())
	}
}

// recordingAction captures the stream's index at the moment it executes, to
// confirm Execute repositions input before running an indexed custom action.
type recordingAction struct {
	record *int
	stream CharStream
}

func (recordingAction) GetActionType() int { return LexerActionTypeCustom }
func (r recordingAction) Execute(lexer *BaseLexer) {
	*r.record = r.stream.Index()
}
