// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package antlr

// Lexer mode/channel sentinels shared with generated lexers.
const (
	LexerDefaultMode  = 0
	LexerMore         = -2
	LexerSkip         = -3
	LexerDefaultTokenChannel = TokenDefaultChannel
	LexerHidden              = TokenHiddenChannel
	LexerMinCharValue = 0x0000
	LexerMaxCharValue = 0x10FFFF
)

// BaseLexer is the TokenSource every generated lexer embeds (spec §1's
// "generated lexers link against this runtime"). It owns the mode stack
// (spec §4.4 scenario 3) and the in-progress token's mutable fields; the
// greedy-longest-match algorithm itself lives in LexerATNSimulator.
type BaseLexer struct {
	Interpreter *LexerATNSimulator

	input CharStream
	tokenFactorySourcePair struct {
		source TokenSource
		stream CharStream
	}

	errorListenerDispatch *ErrorListenerDispatch

	mode      int
	modeStack []int

	tokenStartCharIndex          int
	tokenStartLine               int
	tokenStartColumn             int
	tokenType                    int
	channel                      int
	text                         string
	textSet                      bool
	thisToken                    Token
	hitEOF                       bool

	actionRuleIndex, actionActionIndex int
}

func NewBaseLexer(input CharStream) *BaseLexer {
	l := &BaseLexer{
		input:                 input,
		errorListenerDispatch: NewErrorListenerDispatch(),
		mode:                  LexerDefaultMode,
		tokenType:             TokenInvalidType,
		channel:               TokenDefaultChannel,
	}
	l.errorListenerDispatch.AddErrorListener(ConsoleErrorListenerINSTANCE)
	l.tokenFactorySourcePair.stream = input
	return l
}

func (l *BaseLexer) GetInputStream() CharStream       { return l.input }
func (l *BaseLexer) GetSourceName() string             { return l.input.GetSourceName() }
func (l *BaseLexer) GetLine() int                      { return l.Interpreter.line }
func (l *BaseLexer) GetCharPositionInLine() int        { return l.Interpreter.charPositionInLine }
func (l *BaseLexer) GetErrorListenerDispatch() ErrorListener { return l.errorListenerDispatch }
func (l *BaseLexer) AddErrorListener(e ErrorListener)  { l.errorListenerDispatch.AddErrorListener(e) }

// Sempred/Action are overridden by generated lexers; the base
// implementation treats every predicate as true and only records the
// rule/action indices of an action, so a hand-written test lexer with no
// predicates/actions still satisfies Recognizer.
func (l *BaseLexer) Sempred(RuleContext, int, int) bool { return true }
func (l *BaseLexer) Action(RuleContext, ruleIndex, actionIndex int) {
	l.actionRuleIndex, l.actionActionIndex = ruleIndex, actionIndex
}
func (l *BaseLexer) GetATN() *ATN { return l.Interpreter.GetATN() }

// Reset rewinds to the start of input, clearing the mode stack and any
// in-progress token state — used between independent lexer runs over the
// same stream.
func (l *BaseLexer) Reset() {
	if l.input != nil {
		l.input.Seek(0)
	}
	l.mode = LexerDefaultMode
	l.modeStack = nil
	l.hitEOF = false
	l.tokenType = TokenInvalidType
	l.channel = TokenDefaultChannel
	l.text = ""
	l.textSet = false
	l.thisToken = nil
	if l.Interpreter != nil {
		l.Interpreter.Reset()
	}
}

// NextToken drives the interpreter's Match and packages the result into a
// Token (spec §4.4's "failOrAccept" returns a token type; Skip/More are
// lexer-level actions layered on top, executed via the deferred
// LexerActionExecutor). Skip starts an entirely new token at the next
// outer iteration; More re-matches from the same tokenStartCharIndex so
// the eventually-emitted token's text spans every concatenated match.
func (l *BaseLexer) NextToken() Token {
	if l.input == nil {
		panic(NewIllegalStateError("NextToken requires a non-nil input stream"))
	}
	tokenStartMarker := l.input.Mark()
	defer l.input.Release(tokenStartMarker)

outer:
	for {
		if l.hitEOF {
			return l.emitEOF()
		}
		l.text = ""
		l.textSet = false
		l.tokenStartCharIndex = l.input.Index()
		l.tokenStartColumn = l.Interpreter.charPositionInLine
		l.tokenStartLine = l.Interpreter.line
		l.tokenType = TokenInvalidType
		l.channel = TokenDefaultChannel

		for {
			l.tokenType = TokenInvalidType
			ttype, err := l.Interpreter.Match(l.input, l.mode)
			if err != nil {
				l.errorListenerDispatch.SyntaxError(l, nil, l.tokenStartLine, l.tokenStartColumn, err.Error(), nil)
				l.recover()
				continue outer
			}
			// A deferred LexerTypeAction/LexerSkipAction/LexerMoreAction runs
			// inside Match (via the accepted state's LexerActionExecutor)
			// and may already have set l.tokenType — that must win over the
			// rule's own ruleToTokenType prediction, not be clobbered by it.
			if l.tokenType == TokenInvalidType {
				l.tokenType = ttype
			}
			if l.tokenType == LexerSkip {
				continue outer
			}
			if l.tokenType != LexerMore {
				break
			}
		}
		if l.tokenType == TokenEOF {
			return l.emitEOF()
		}
		return l.emit()
	}
}

// recover guarantees NextToken makes forward progress after an unmatched
// symbol by consuming it before retrying, rather than looping forever on
// the same offending character.
func (l *BaseLexer) recover() {
	if l.input.LA(1) != TokenEOF {
		l.input.Consume()
	}
}

func (l *BaseLexer) emit() Token {
	t := NewCommonToken(l, l.input, l.tokenType, l.channel, l.tokenStartCharIndex, l.GetCharIndex()-1)
	t.SetLine(l.tokenStartLine)
	t.SetCharPositionInLine(l.tokenStartColumn)
	if l.textSet {
		t.SetText(l.text)
	}
	l.thisToken = t
	return t
}

func (l *BaseLexer) emitEOF() Token {
	cpos := l.GetCharPositionInLine()
	t := NewCommonToken(l, l.input, TokenEOF, TokenDefaultChannel, l.input.Index(), l.input.Index()-1)
	t.SetLine(l.GetLine())
	t.SetCharPositionInLine(cpos)
	l.hitEOF = true
	l.thisToken = t
	return t
}

func (l *BaseLexer) GetCharIndex() int { return l.input.Index() }

// GetType/SetType/SetChannel/SetText back the LexerTypeAction /
// LexerChannelAction deferred actions (spec §4.4's "carry actionIndex in
// the child lexer config, deferred to accept time").
func (l *BaseLexer) GetType() int      { return l.tokenType }
func (l *BaseLexer) SetType(t int)     { l.tokenType = t }
func (l *BaseLexer) SetChannel(c int)  { l.channel = c }
func (l *BaseLexer) SetText(s string)  { l.text, l.textSet = s, true }
func (l *BaseLexer) GetText() string {
	if l.textSet {
		return l.text
	}
	if l.input == nil {
		return ""
	}
	return l.input.GetTextFromInterval(l.tokenStartCharIndex, l.GetCharIndex()-1)
}

// Skip discards the token currently being matched (LexerSkipAction).
func (l *BaseLexer) Skip() { l.tokenType = LexerSkip }

// More indicates the token currently being matched should be concatenated
// with the next one rather than emitted (LexerMoreAction).
func (l *BaseLexer) More() { l.tokenType = LexerMore }

// SetMode/PushMode/PopMode implement the mode stack (spec §4.4 scenario 3).
// PopMode on an empty stack is a fatal EmptyStackError (spec §7) — a
// generated lexer's popMode action is only ever reachable when the
// grammar paired every pushMode with one, so this is a programming-error
// signal, not a recoverable condition.
func (l *BaseLexer) SetMode(m int) { l.mode = m }
func (l *BaseLexer) PushMode(m int) {
	l.modeStack = append(l.modeStack, l.mode)
	l.mode = m
}
func (l *BaseLexer) PopMode() int {
	if len(l.modeStack) == 0 {
		panic(NewEmptyStackError())
	}
	l.mode = l.modeStack[len(l.modeStack)-1]
	l.modeStack = l.modeStack[:len(l.modeStack)-1]
	return l.mode
}
func (l *BaseLexer) GetMode() int { return l.mode }
