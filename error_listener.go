// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package antlr

import (
	"fmt"
	"os"
)

// ErrorListener is this runtime's diagnostics layer (SPEC_FULL.md §3): the
// engine never logs directly, it reports synchronously through whichever
// listener the host recognizer has installed (spec §7 policy).
type ErrorListener interface {
	SyntaxError(recognizer Recognizer, offendingSymbol interface{}, line, column int, msg string, e RecognitionException)
	ReportAmbiguity(recognizer Recognizer, dfa *DFA, startIndex, stopIndex int, exact bool, ambigAlts *BitSet, configs *ATNConfigSet)
	ReportAttemptingFullContext(recognizer Recognizer, dfa *DFA, startIndex, stopIndex int, conflictingAlts *BitSet, configs *ATNConfigSet)
	ReportContextSensitivity(recognizer Recognizer, dfa *DFA, startIndex, stopIndex, prediction int, configs *ATNConfigSet)
}

// BaseErrorListener supplies no-op defaults so concrete listeners only
// override what they care about, the way the teacher's runtime structures
// its listener hierarchy.
type BaseErrorListener struct{}

func (b *BaseErrorListener) SyntaxError(Recognizer, interface{}, int, int, string, RecognitionException) {}
func (b *BaseErrorListener) ReportAmbiguity(Recognizer, *DFA, int, int, bool, *BitSet, *ATNConfigSet)    {}
func (b *BaseErrorListener) ReportAttemptingFullContext(Recognizer, *DFA, int, int, *BitSet, *ATNConfigSet) {
}
func (b *BaseErrorListener) ReportContextSensitivity(Recognizer, *DFA, int, int, int, *ATNConfigSet) {}

// ConsoleErrorListener is the default listener every recognizer starts
// with: it writes SyntaxErrors to stderr and otherwise stays silent.
type ConsoleErrorListener struct{ BaseErrorListener }

var ConsoleErrorListenerINSTANCE = NewConsoleErrorListener()

func NewConsoleErrorListener() *ConsoleErrorListener { return &ConsoleErrorListener{} }

func (c *ConsoleErrorListener) SyntaxError(_ Recognizer, _ interface{}, line, column int, msg string, _ RecognitionException) {
	fmt.Fprintf(os.Stderr, "line %d:%d %s\n", line, column, msg)
}

// DiagnosticErrorListener wraps another listener and additionally reports
// every ambiguity and context-sensitivity event it observes — a deferred
// diagnostic mode carried from the original C++ runtime's equivalent
// listener (SPEC_FULL.md §3; this is error-listener plumbing, not the
// profiler spec.md's Non-goals exclude). exactOnly restricts ambiguity
// reports to exact (non-"maybe") ambiguities, matching the original's
// default.
type DiagnosticErrorListener struct {
	BaseErrorListener
	delegate  ErrorListener
	exactOnly bool
}

func NewDiagnosticErrorListener(exactOnly bool, delegate ErrorListener) *DiagnosticErrorListener {
	if delegate == nil {
		delegate = ConsoleErrorListenerINSTANCE
	}
	return &DiagnosticErrorListener{delegate: delegate, exactOnly: exactOnly}
}

func (d *DiagnosticErrorListener) SyntaxError(r Recognizer, offending interface{}, line, col int, msg string, e RecognitionException) {
	d.delegate.SyntaxError(r, offending, line, col, msg, e)
}

func (d *DiagnosticErrorListener) ReportAmbiguity(r Recognizer, dfa *DFA, startIndex, stopIndex int, exact bool, ambigAlts *BitSet, configs *ATNConfigSet) {
	if d.exactOnly && !exact {
		return
	}
	fmt.Fprintf(os.Stderr, "reportAmbiguity d=%d: ambigAlts=%v, input[%d..%d]\n", dfa.decision, ambigAlts.Values(), startIndex, stopIndex)
	d.delegate.ReportAmbiguity(r, dfa, startIndex, stopIndex, exact, ambigAlts, configs)
}

func (d *DiagnosticErrorListener) ReportAttemptingFullContext(r Recognizer, dfa *DFA, startIndex, stopIndex int, conflictingAlts *BitSet, configs *ATNConfigSet) {
	fmt.Fprintf(os.Stderr, "reportAttemptingFullContext d=%d: input[%d..%d]\n", dfa.decision, startIndex, stopIndex)
	d.delegate.ReportAttemptingFullContext(r, dfa, startIndex, stopIndex, conflictingAlts, configs)
}

func (d *DiagnosticErrorListener) ReportContextSensitivity(r Recognizer, dfa *DFA, startIndex, stopIndex, prediction int, configs *ATNConfigSet) {
	fmt.Fprintf(os.Stderr, "reportContextSensitivity d=%d: input[%d..%d]\n", dfa.decision, startIndex, stopIndex)
	d.delegate.ReportContextSensitivity(r, dfa, startIndex, stopIndex, prediction, configs)
}

// ErrorListenerDispatch fans SyntaxError/ReportXxx calls out to every
// listener a recognizer has registered, mirroring the teacher's
// multiplexing "ProxyErrorListener".
type ErrorListenerDispatch struct {
	listeners []ErrorListener
}

func NewErrorListenerDispatch() *ErrorListenerDispatch { return &ErrorListenerDispatch{} }

func (p *ErrorListenerDispatch) AddErrorListener(l ErrorListener) {
	p.listeners = append(p.listeners, l)
}

func (p *ErrorListenerDispatch) RemoveErrorListeners() { p.listeners = nil }

func (p *ErrorListenerDispatch) SyntaxError(r Recognizer, offending interface{}, line, col int, msg string, e RecognitionException) {
	for _, l := range p.listeners {
		l.SyntaxError(r, offending, line, col, msg, e)
	}
}

func (p *ErrorListenerDispatch) ReportAmbiguity(r Recognizer, dfa *DFA, startIndex, stopIndex int, exact bool, ambigAlts *BitSet, configs *ATNConfigSet) {
	for _, l := range p.listeners {
		l.ReportAmbiguity(r, dfa, startIndex, stopIndex, exact, ambigAlts, configs)
	}
}

func (p *ErrorListenerDispatch) ReportAttemptingFullContext(r Recognizer, dfa *DFA, startIndex, stopIndex int, conflictingAlts *BitSet, configs *ATNConfigSet) {
	for _, l := range p.listeners {
		l.ReportAttemptingFullContext(r, dfa, startIndex, stopIndex, conflictingAlts, configs)
	}
}

func (p *ErrorListenerDispatch) ReportContextSensitivity(r Recognizer, dfa *DFA, startIndex, stopIndex, prediction int, configs *ATNConfigSet) {
	for _, l := range p.listeners {
		l.ReportContextSensitivity(r, dfa, startIndex, stopIndex, prediction, configs)
	}
}
