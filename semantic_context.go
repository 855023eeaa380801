// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package antlr

import (
	"fmt"
	"sort"
	"strings"
)

// SemanticContext is a boolean lattice over predicate leaves (spec §3/§4.5):
// leaves are Predicate or PrecedencePredicate nodes, combined into AND/OR
// normal form. SemanticContextNone is the trivially-true context most
// configs carry.
type SemanticContext interface {
	evaluate(parser Recognizer, outerContext RuleContext) bool
	evalPrecedence(parser Recognizer, outerContext RuleContext) SemanticContext
	String() string
	equals(other SemanticContext) bool
}

// SemanticContextNone is the singleton "always true" context.
var SemanticContextNone SemanticContext = NewPredicate(-1, -1, false)

// Predicate is a leaf referring to a {pred}? action in the grammar.
type Predicate struct {
	ruleIndex      int
	predIndex      int
	isCtxDependent bool
}

func NewPredicate(ruleIndex, predIndex int, isCtxDependent bool) *Predicate {
	return &Predicate{ruleIndex: ruleIndex, predIndex: predIndex, isCtxDependent: isCtxDependent}
}

func (p *Predicate) evaluate(parser Recognizer, outerContext RuleContext) bool {
	var localctx RuleContext
	if p.isCtxDependent {
		localctx = outerContext
	}
	return parser.Sempred(localctx, p.ruleIndex, p.predIndex)
}

func (p *Predicate) evalPrecedence(Recognizer, RuleContext) SemanticContext { return p }

func (p *Predicate) equals(other SemanticContext) bool {
	o, ok := other.(*Predicate)
	if !ok {
		return false
	}
	return p.ruleIndex == o.ruleIndex && p.predIndex == o.predIndex && p.isCtxDependent == o.isCtxDependent
}

func (p *Predicate) String() string {
	return fmt.Sprintf("{%d:%d}?", p.ruleIndex, p.predIndex)
}

// PrecedencePredicate gates a left-recursive alternative on the current
// precedence-climbing level (>= Precedence).
type PrecedencePredicate struct {
	Precedence int
}

func NewPrecedencePredicate(precedence int) *PrecedencePredicate {
	return &PrecedencePredicate{Precedence: precedence}
}

func (p *PrecedencePredicate) evaluate(parser Recognizer, outerContext RuleContext) bool {
	return false // a bare PrecedencePredicate is only ever consulted via evalPrecedence
}

func (p *PrecedencePredicate) evalPrecedence(_ Recognizer, _ RuleContext) SemanticContext {
	return p
}

func (p *PrecedencePredicate) evaluateAt(currentPrecedence int) bool {
	return currentPrecedence >= p.Precedence
}

func (p *PrecedencePredicate) equals(other SemanticContext) bool {
	o, ok := other.(*PrecedencePredicate)
	return ok && p.Precedence == o.Precedence
}

func (p *PrecedencePredicate) String() string {
	return fmt.Sprintf(">=_p %d", p.Precedence)
}

// AndOperator and OrOperator hold their operands in stable, deduplicated
// order so that structurally equal contexts compare equal regardless of
// construction order.
type AndOperator struct{ opnds []SemanticContext }
type OrOperator struct{ opnds []SemanticContext }

// SemanticContextAnd builds a conjunction, flattening nested ANDs and
// dropping the trivial "true" operand.
func SemanticContextAnd(a, b SemanticContext) SemanticContext {
	if a == SemanticContextNone || a == nil {
		return b
	}
	if b == SemanticContextNone || b == nil {
		return a
	}
	result := map[string]SemanticContext{}
	collectAnd(a, result)
	collectAnd(b, result)
	precedences := collectPrecedencePredicates(result)
	if len(precedences) > 0 {
		sort.Slice(precedences, func(i, j int) bool { return precedences[i].Precedence < precedences[j].Precedence })
		// keep everything that wasn't a precedence predicate, plus the lowest one
		for _, pp := range precedences {
			delete(result, pp.String())
		}
		result[precedences[0].String()] = precedences[0]
	}
	return normalizeAnd(result)
}

func collectAnd(ctx SemanticContext, into map[string]SemanticContext) {
	if and, ok := ctx.(*AndOperator); ok {
		for _, o := range and.opnds {
			into[o.String()] = o
		}
		return
	}
	into[ctx.String()] = ctx
}

func collectPrecedencePredicates(m map[string]SemanticContext) []*PrecedencePredicate {
	var out []*PrecedencePredicate
	for _, v := range m {
		if pp, ok := v.(*PrecedencePredicate); ok {
			out = append(out, pp)
		}
	}
	return out
}

func normalizeAnd(m map[string]SemanticContext) SemanticContext {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	opnds := make([]SemanticContext, 0, len(keys))
	for _, k := range keys {
		opnds = append(opnds, m[k])
	}
	if len(opnds) == 1 {
		return opnds[0]
	}
	return &AndOperator{opnds: opnds}
}

// SemanticContextOr builds a disjunction with the same flattening rules.
func SemanticContextOr(a, b SemanticContext) SemanticContext {
	if a == SemanticContextNone || a == nil {
		return SemanticContextNone
	}
	if b == SemanticContextNone || b == nil {
		return SemanticContextNone
	}
	result := map[string]SemanticContext{}
	collectOr(a, result)
	collectOr(b, result)
	precedences := collectPrecedencePredicates(result)
	if len(precedences) > 0 {
		sort.Slice(precedences, func(i, j int) bool { return precedences[i].Precedence > precedences[j].Precedence })
		for _, pp := range precedences {
			delete(result, pp.String())
		}
		result[precedences[0].String()] = precedences[0]
	}
	keys := make([]string, 0, len(result))
	for k := range result {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	opnds := make([]SemanticContext, 0, len(keys))
	for _, k := range keys {
		opnds = append(opnds, result[k])
	}
	if len(opnds) == 1 {
		return opnds[0]
	}
	return &OrOperator{opnds: opnds}
}

func collectOr(ctx SemanticContext, into map[string]SemanticContext) {
	if or, ok := ctx.(*OrOperator); ok {
		for _, o := range or.opnds {
			into[o.String()] = o
		}
		return
	}
	into[ctx.String()] = ctx
}

func (a *AndOperator) evaluate(parser Recognizer, outerContext RuleContext) bool {
	for _, o := range a.opnds {
		if !o.evaluate(parser, outerContext) {
			return false
		}
	}
	return true
}

func (a *AndOperator) evalPrecedence(parser Recognizer, outerContext RuleContext) SemanticContext {
	changed := false
	operands := make([]SemanticContext, 0, len(a.opnds))
	for _, ctx := range a.opnds {
		evaluated := ctx.evalPrecedence(parser, outerContext)
		changed = changed || evaluated != ctx
		if evaluated == nil {
			return nil
		}
		if evaluated != SemanticContextNone {
			operands = append(operands, evaluated)
		}
	}
	if !changed {
		return a
	}
	if len(operands) == 0 {
		return SemanticContextNone
	}
	result := operands[0]
	for _, o := range operands[1:] {
		result = SemanticContextAnd(result, o)
	}
	return result
}

func (a *AndOperator) equals(other SemanticContext) bool {
	o, ok := other.(*AndOperator)
	if !ok || len(o.opnds) != len(a.opnds) {
		return false
	}
	for i, op := range a.opnds {
		if !op.equals(o.opnds[i]) {
			return false
		}
	}
	return true
}

func (a *AndOperator) String() string {
	parts := make([]string, len(a.opnds))
	for i, o := range a.opnds {
		parts[i] = o.String()
	}
	return strings.Join(parts, "&&")
}

func (o *OrOperator) evaluate(parser Recognizer, outerContext RuleContext) bool {
	for _, opnd := range o.opnds {
		if opnd.evaluate(parser, outerContext) {
			return true
		}
	}
	return false
}

func (o *OrOperator) evalPrecedence(parser Recognizer, outerContext RuleContext) SemanticContext {
	changed := false
	operands := make([]SemanticContext, 0, len(o.opnds))
	for _, ctx := range o.opnds {
		evaluated := ctx.evalPrecedence(parser, outerContext)
		changed = changed || evaluated != ctx
		if evaluated == SemanticContextNone {
			return SemanticContextNone
		}
		if evaluated != nil {
			operands = append(operands, evaluated)
		}
	}
	if !changed {
		return o
	}
	if len(operands) == 0 {
		return nil
	}
	result := operands[0]
	for _, op := range operands[1:] {
		result = SemanticContextOr(result, op)
	}
	return result
}

func (o *OrOperator) equals(other SemanticContext) bool {
	ot, ok := other.(*OrOperator)
	if !ok || len(ot.opnds) != len(o.opnds) {
		return false
	}
	for i, op := range o.opnds {
		if !op.equals(ot.opnds[i]) {
			return false
		}
	}
	return true
}

func (o *OrOperator) String() string {
	parts := make([]string, len(o.opnds))
	for i, opnd := range o.opnds {
		parts[i] = opnd.String()
	}
	return strings.Join(parts, "||")
}
