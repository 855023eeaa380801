// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package antlr

import "fmt"

// RecognitionException is the taxonomy root for the errors the prediction
// engine detects while matching input (spec §7). The engine never swallows
// one of these: it records it on the offending context (when one is
// attached) and re-raises it to the caller's error listener.
type RecognitionException interface {
	error
	// GetOffendingToken returns the token that triggered the failure, or -1
	// if none applies (lexer exceptions always report -1; their position is
	// in StartIndex).
	GetOffendingToken() int
	// GetInputStream returns the stream being read when the exception was
	// raised, so a listener can recover surrounding context.
	GetInputStream() IntStream
}

// BaseRecognitionException is embedded by every concrete exception below.
type BaseRecognitionException struct {
	message        string
	recognizer     Recognizer
	offendingToken int
	input          IntStream
	ctx            RuleContext
}

func (b *BaseRecognitionException) Error() string {
	return b.message
}

func (b *BaseRecognitionException) GetOffendingToken() int {
	return b.offendingToken
}

func (b *BaseRecognitionException) GetInputStream() IntStream {
	return b.input
}

// GetCtx returns the rule context the exception was attached to, if any.
// The core never builds the context tree itself (spec §1, external
// collaborator) — it only remembers where to hang the error.
func (b *BaseRecognitionException) GetCtx() RuleContext {
	return b.ctx
}

// LexerNoViableAltException is raised when execATN's reach set empties out
// at startIndex (spec §4.4 step 4, §7).
type LexerNoViableAltException struct {
	BaseRecognitionException
	StartIndex int
	DeadEndConfigs *ATNConfigSet
}

func NewLexerNoViableAltException(lexer Recognizer, input CharStream, startIndex int, deadEndConfigs *ATNConfigSet) *LexerNoViableAltException {
	return &LexerNoViableAltException{
		BaseRecognitionException: BaseRecognitionException{
			message:        "no viable alternative at input",
			recognizer:     lexer,
			offendingToken: -1,
			input:          input,
		},
		StartIndex:     startIndex,
		DeadEndConfigs: deadEndConfigs,
	}
}

func (l *LexerNoViableAltException) Error() string {
	return fmt.Sprintf("%s, start index %d", l.message, l.StartIndex)
}

// NoViableAltException is raised by the parser simulator when prediction
// cannot resolve a unique alternative even after the full-context fallback.
type NoViableAltException struct {
	BaseRecognitionException
	startToken    int
	offendingState int
	deadEndConfigs *ATNConfigSet
}

func NewNoViableAltException(recognizer Recognizer, startToken, offendingToken, offendingState int, deadEndConfigs *ATNConfigSet, ctx RuleContext) *NoViableAltException {
	e := &NoViableAltException{
		BaseRecognitionException: BaseRecognitionException{
			message:        "no viable alternative",
			recognizer:     recognizer,
			offendingToken: offendingToken,
			ctx:            ctx,
		},
		startToken:     startToken,
		offendingState: offendingState,
		deadEndConfigs: deadEndConfigs,
	}
	return e
}

// InputMismatchException signals that the next token does not match any
// alternative the parser's ATN transitions permit from the current state.
type InputMismatchException struct {
	BaseRecognitionException
}

func NewInputMismatchException(recognizer Recognizer, offendingToken int, ctx RuleContext) *InputMismatchException {
	return &InputMismatchException{
		BaseRecognitionException{
			message:        "mismatched input",
			recognizer:     recognizer,
			offendingToken: offendingToken,
			ctx:            ctx,
		},
	}
}

// FailedPredicateException signals a semantic predicate evaluated false
// during a prediction or parse that required it to hold.
type FailedPredicateException struct {
	BaseRecognitionException
	ruleIndex      int
	predicateIndex int
	predicate      string
}

func NewFailedPredicateException(recognizer Recognizer, predicate string, ruleIndex, predicateIndex int) *FailedPredicateException {
	return &FailedPredicateException{
		BaseRecognitionException: BaseRecognitionException{
			message: fmt.Sprintf("failed predicate: %s", predicate),
		},
		ruleIndex:      ruleIndex,
		predicateIndex: predicateIndex,
		predicate:      predicate,
	}
}

// Fatal, non-recoverable programming-error conditions (spec §7). These are
// never caught by the engine and are never attached to a rule context —
// they mean the caller violated an invariant (a frozen set was mutated, a
// serialized ATN was malformed, or a lexer mode stack underflowed).

// IllegalStateError is raised when code attempts to mutate state the
// invariants say must not change anymore (a frozen ATNConfigSet, a
// read-only IntervalSet or ATNDeserializationOptions) or when a serialized
// ATN fails an invariant check.
type IllegalStateError struct{ msg string }

func NewIllegalStateError(msg string) *IllegalStateError { return &IllegalStateError{msg: msg} }
func (e *IllegalStateError) Error() string               { return "illegal state: " + e.msg }

// UnsupportedOperationError is raised for operations the core explicitly
// never supports, such as a PrecedencePredicate transition walked by a
// lexer closure.
type UnsupportedOperationError struct{ msg string }

func NewUnsupportedOperationError(msg string) *UnsupportedOperationError {
	return &UnsupportedOperationError{msg: msg}
}
func (e *UnsupportedOperationError) Error() string { return "unsupported operation: " + e.msg }

// EmptyStackError is raised when the lexer mode stack is popped while empty.
type EmptyStackError struct{}

func NewEmptyStackError() *EmptyStackError { return &EmptyStackError{} }
func (e *EmptyStackError) Error() string   { return "empty stack" }
