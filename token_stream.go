// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package antlr

// TokenEOF is the symbol returned by LA/LT once the stream is exhausted.
const TokenEOF = -1

// TokenEpsilon marks "no input consumed" in a computed next-token set —
// NextTokensInContext leaves it in the result to signal that the end of the
// rule was reached along some path; getExpectedTokens removes it and adds
// TokenEOF instead when the end of the whole parse is reachable.
const TokenEpsilon = -2

// TokenInvalidType marks a token that has not been assigned a real type.
const TokenInvalidType = 0

// IntStream is the external input contract the simulators read through
// (spec §6). Implementations are supplied by the host application; the
// core never constructs one itself.
type IntStream interface {
	// Consume moves the input position forward by one symbol. Panics (via
	// an *IllegalStateError from the caller's perspective) if called at EOF.
	Consume()
	// LA returns the symbol at 1-based offset i ahead of the current
	// position, or TokenEOF past the end of input.
	LA(i int) int
	// Mark records the current position so buffered input can later be
	// released back to the source. Marks nest; every Mark must be paired
	// with a Release on every exit path, including error paths.
	Mark() int
	// Release discards a mark obtained from Mark. Releasing the outermost
	// mark allows the stream to discard buffered symbols before it.
	Release(marker int)
	// Index returns the current 0-based position in the stream.
	Index() int
	// Seek repositions the stream to an absolute index previously observed
	// via Index, used to rewind after a speculative lookahead.
	Seek(index int)
	// Size returns the number of symbols in the stream, or -1 if unknown
	// (e.g. an unbounded live stream).
	Size() int
	// GetSourceName identifies the stream for diagnostics.
	GetSourceName() string
}

// CharStream is an IntStream over characters, additionally able to recover
// the literal text of an already-consumed interval.
type CharStream interface {
	IntStream
	// GetTextFromInterval returns the text between start and stop
	// (inclusive, 0-based, already-consumed indices).
	GetTextFromInterval(start, stop int) string
}

// TokenStream is an indexable, channel-filtering stream of Tokens consumed
// by the (out of core scope) parser simulator and by downstream listener
// dispatch.
type TokenStream interface {
	IntStream
	LT(k int) Token
	Get(index int) Token
	GetTokenSource() TokenSource
	GetAllText() string
	GetTextFromInterval(start, stop int) string
}

// TokenSource produces Tokens, generally backed by a Lexer over a
// CharStream.
type TokenSource interface {
	NextToken() Token
	GetLine() int
	GetCharPositionInLine() int
	GetInputStream() CharStream
	GetSourceName() string
}

// RuleContext is the minimal surface the core needs from the (out of scope)
// rule-context tree: enough to walk call-return chains while building
// PredictionContext and to attach a RecognitionException to the context
// active when it was raised.
type RuleContext interface {
	GetParent() RuleContext
	GetInvokingState() int
	GetRuleIndex() int
	IsEmpty() bool
}

// Recognizer is the minimal surface the simulators need from the (out of
// scope) generated lexer/parser: semantic predicate evaluation and access
// to the shared ATN.
type Recognizer interface {
	GetATN() *ATN
	Sempred(localctx RuleContext, ruleIndex, actionIndex int) bool
	Action(localctx RuleContext, ruleIndex, actionIndex int)
	GetErrorListenerDispatch() ErrorListener
}
