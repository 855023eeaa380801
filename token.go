// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package antlr

import "fmt"

// Token channel constants (spec §6).
const (
	TokenDefaultChannel = 0
	TokenHiddenChannel  = 1
)

// Token is the external unit the lexer simulator emits and the (out of
// scope) parser simulator consumes. Text is lazily derived from the input
// interval unless explicitly overridden, matching
// original_source's CommonToken.h.
type Token interface {
	GetType() int
	GetLine() int
	GetCharPositionInLine() int
	GetChannel() int
	GetStartIndex() int
	GetStopIndex() int
	GetTokenIndex() int
	GetText() string
	SetText(s string)
	GetTokenSource() TokenSource
	GetInputStream() CharStream
}

// CommonToken is the default Token implementation. Its text is computed
// lazily from its source CharStream's interval whenever GetText is called,
// unless SetText was used to pin an explicit value.
type CommonToken struct {
	tokenType          int
	line               int
	charPositionInLine int
	channel            int
	startIndex         int
	stopIndex          int
	tokenIndex         int
	text               string
	textSet            bool
	source             TokenSource
	input              CharStream
}

func NewCommonToken(source TokenSource, input CharStream, tokenType, channel, start, stop int) *CommonToken {
	return &CommonToken{
		tokenType:          tokenType,
		channel:            channel,
		startIndex:         start,
		stopIndex:          stop,
		tokenIndex:         -1,
		source:             source,
		input:              input,
		charPositionInLine: -1,
	}
}

func (c *CommonToken) GetType() int               { return c.tokenType }
func (c *CommonToken) GetLine() int                { return c.line }
func (c *CommonToken) GetCharPositionInLine() int  { return c.charPositionInLine }
func (c *CommonToken) GetChannel() int             { return c.channel }
func (c *CommonToken) GetStartIndex() int          { return c.startIndex }
func (c *CommonToken) GetStopIndex() int           { return c.stopIndex }
func (c *CommonToken) GetTokenIndex() int          { return c.tokenIndex }
func (c *CommonToken) SetTokenIndex(i int)         { c.tokenIndex = i }
func (c *CommonToken) SetLine(l int)               { c.line = l }
func (c *CommonToken) SetCharPositionInLine(p int) { c.charPositionInLine = p }
func (c *CommonToken) GetTokenSource() TokenSource { return c.source }
func (c *CommonToken) GetInputStream() CharStream  { return c.input }

func (c *CommonToken) SetText(s string) {
	c.text = s
	c.textSet = true
}

// GetText returns the explicit text if SetText was called, else derives it
// from the backing CharStream's interval — recomputed on every call rather
// than cached, since the underlying stream is immutable once consumed.
func (c *CommonToken) GetText() string {
	if c.textSet {
		return c.text
	}
	if c.input == nil {
		return ""
	}
	n := c.input.Size()
	if c.startIndex < n && c.stopIndex < n {
		return c.input.GetTextFromInterval(c.startIndex, c.stopIndex)
	}
	return "<EOF>"
}

func (c *CommonToken) String() string {
	txt := c.GetText()
	return fmt.Sprintf("[@%d,%d:%d='%s',<%d>,%d:%d]", c.tokenIndex, c.startIndex, c.stopIndex, txt, c.tokenType, c.line, c.charPositionInLine)
}
