// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package antlr

// LexerActionType tags the kind of deferred action an ActionTransition
// carries (spec §3's "Action" transition, executed by the host recognizer
// at accept time rather than during closure, per spec §4.4).
const (
	LexerActionTypeChannel  = 0
	LexerActionTypeCustom   = 1
	LexerActionTypeMode     = 2
	LexerActionTypeMore     = 3
	LexerActionTypePopMode  = 4
	LexerActionTypePushMode = 5
	LexerActionTypeSkip     = 6
	LexerActionTypeType     = 7
)

// LexerAction is a single deferred action; LexerActionExecutor chains zero
// or more of them together for one DFAState.
type LexerAction interface {
	GetActionType() int
	// Execute runs the action's effect against lexer, mutating its mode
	// stack, type, or channel as appropriate.
	Execute(lexer *BaseLexer)
}

type baseLexerAction struct{ actionType int }

func (b *baseLexerAction) GetActionType() int { return b.actionType }

type LexerSkipAction struct{ baseLexerAction }

func NewLexerSkipAction() *LexerSkipAction {
	return &LexerSkipAction{baseLexerAction{LexerActionTypeSkip}}
}
func (a *LexerSkipAction) Execute(lexer *BaseLexer) { lexer.Skip() }

type LexerMoreAction struct{ baseLexerAction }

func NewLexerMoreAction() *LexerMoreAction {
	return &LexerMoreAction{baseLexerAction{LexerActionTypeMore}}
}
func (a *LexerMoreAction) Execute(lexer *BaseLexer) { lexer.More() }

type LexerTypeAction struct {
	baseLexerAction
	tokenType int
}

func NewLexerTypeAction(tokenType int) *LexerTypeAction {
	return &LexerTypeAction{baseLexerAction{LexerActionTypeType}, tokenType}
}
func (a *LexerTypeAction) Execute(lexer *BaseLexer) { lexer.SetType(a.tokenType) }

type LexerChannelAction struct {
	baseLexerAction
	channel int
}

func NewLexerChannelAction(channel int) *LexerChannelAction {
	return &LexerChannelAction{baseLexerAction{LexerActionTypeChannel}, channel}
}
func (a *LexerChannelAction) Execute(lexer *BaseLexer) { lexer.SetChannel(a.channel) }

type LexerModeAction struct {
	baseLexerAction
	mode int
}

func NewLexerModeAction(mode int) *LexerModeAction {
	return &LexerModeAction{baseLexerAction{LexerActionTypeMode}, mode}
}
func (a *LexerModeAction) Execute(lexer *BaseLexer) { lexer.SetMode(a.mode) }

type LexerPushModeAction struct {
	baseLexerAction
	mode int
}

func NewLexerPushModeAction(mode int) *LexerPushModeAction {
	return &LexerPushModeAction{baseLexerAction{LexerActionTypePushMode}, mode}
}
func (a *LexerPushModeAction) Execute(lexer *BaseLexer) { lexer.PushMode(a.mode) }

type LexerPopModeAction struct{ baseLexerAction }

func NewLexerPopModeAction() *LexerPopModeAction {
	return &LexerPopModeAction{baseLexerAction{LexerActionTypePopMode}}
}
func (a *LexerPopModeAction) Execute(lexer *BaseLexer) { lexer.PopMode() }

type LexerCustomAction struct {
	baseLexerAction
	ruleIndex, actionIndex int
}

func NewLexerCustomAction(ruleIndex, actionIndex int) *LexerCustomAction {
	return &LexerCustomAction{baseLexerAction{LexerActionTypeCustom}, ruleIndex, actionIndex}
}
func (a *LexerCustomAction) Execute(lexer *BaseLexer) {
	lexer.Action(nil, a.ruleIndex, a.actionIndex)
}

// LexerActionExecutor chains the deferred actions collected while a lexer
// config was closed over, for execution at accept time (spec §4.4).
type LexerActionExecutor struct {
	lexerActions []LexerAction
}

func NewLexerActionExecutor(actions []LexerAction) *LexerActionExecutor {
	return &LexerActionExecutor{lexerActions: actions}
}

// LexerActionExecutorAppend returns a new executor combining executor's
// actions (if any) with action, without mutating executor — config copies
// share the prefix since PredictionContext-style structures are immutable
// by convention throughout this runtime.
func LexerActionExecutorAppend(executor *LexerActionExecutor, action LexerAction) *LexerActionExecutor {
	if executor == nil {
		return NewLexerActionExecutor([]LexerAction{action})
	}
	actions := make([]LexerAction, len(executor.lexerActions)+1)
	copy(actions, executor.lexerActions)
	actions[len(executor.lexerActions)] = action
	return NewLexerActionExecutor(actions)
}

func (e *LexerActionExecutor) Execute(lexer *BaseLexer, input CharStream, startIndex int) {
	requiresSeek := false
	stopIndex := input.Index()
	defer func() {
		if requiresSeek {
			input.Seek(stopIndex)
		}
	}()
	for _, action := range e.lexerActions {
		if indexed, ok := action.(*lexerIndexedCustomAction); ok {
			// A custom action recorded mid-scan needs the input positioned
			// where it was matched, not wherever the scan ended up.
			input.Seek(startIndex + indexed.offset)
			requiresSeek = startIndex+indexed.offset != stopIndex
			indexed.Execute(lexer)
			continue
		}
		action.Execute(lexer)
	}
}

// lexerIndexedCustomAction wraps a custom action with the input offset (from
// startIndex) it was matched at when the executor is built by the simulator,
// so Execute can restore that position before running it.
type lexerIndexedCustomAction struct {
	offset int
	action LexerAction
}

func (l *lexerIndexedCustomAction) GetActionType() int       { return l.action.GetActionType() }
func (l *lexerIndexedCustomAction) Execute(lexer *BaseLexer) { l.action.Execute(lexer) }
