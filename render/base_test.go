// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"math/big"
	"testing"

	"fcodegen.dev/fcode/expr"
)

func x() expr.Expr       { return expr.Symbol{Name: "x"} }
func y() expr.Expr       { return expr.Symbol{Name: "y"} }
func i(n int64) expr.Expr { return expr.NewInteger(n) }

func TestRenderSymbolAndInteger(t *testing.T) {
	b := &Base{}
	if got := b.Render(x()); got != "x" {
		t.Errorf("Render(Symbol{x}) = %q, want %q", got, "x")
	}
	if got := b.Render(i(-3)); got != "-3" {
		t.Errorf("Render(Integer{-3}) = %q, want %q", got, "-3")
	}
}

func TestRenderRational(t *testing.T) {
	b := &Base{}
	r, err := expr.NewRational(big.NewInt(18), big.NewInt(9))
	if err != nil {
		t.Fatal(err)
	}
	// 18/9 normalises numerically to 2 only if the caller already
	// reduced it; NewRational does not reduce, so a q != 1 still
	// renders as the p.0/q.0 shape.
	if got := b.Render(r); got != "18.0/9.0" {
		t.Errorf("Render(Rational{18,9}) = %q, want %q", got, "18.0/9.0")
	}

	half, err := expr.NewRational(big.NewInt(1), big.NewInt(2))
	if err != nil {
		t.Fatal(err)
	}
	if got := b.Render(half); got != "1.0/2.0" {
		t.Errorf("Render(Rational{1,2}) = %q, want %q", got, "1.0/2.0")
	}
}

func TestRenderAddSignHandling(t *testing.T) {
	b := &Base{}
	a := expr.Add{Operands: []expr.Expr{x(), i(-3), y()}}
	got := b.Render(a)
	want := "x - 3 + y"
	if got != want {
		t.Errorf("Render(x + -3 + y) = %q, want %q", got, want)
	}
}

func TestRenderMulLeadingNegOne(t *testing.T) {
	b := &Base{}
	m := expr.Mul{Operands: []expr.Expr{i(-1), x(), y()}}
	got := b.Render(m)
	want := "-x*y"
	if got != want {
		t.Errorf("Render(-1*x*y) = %q, want %q", got, want)
	}
}

func TestRenderMulParenthesizesAdd(t *testing.T) {
	b := &Base{}
	inner := expr.Add{Operands: []expr.Expr{x(), y()}}
	m := expr.Mul{Operands: []expr.Expr{i(2), inner}}
	got := b.Render(m)
	want := "2*(x + y)"
	if got != want {
		t.Errorf("Render(2*(x+y)) = %q, want %q", got, want)
	}
}

func TestRenderPow(t *testing.T) {
	b := &Base{}
	p := expr.Pow{Base: x(), Exp: i(2)}
	if got := b.Render(p); got != "x**2" {
		t.Errorf("Render(x**2) = %q, want %q", got, "x**2")
	}
}

// TestRenderPowNestedExponentIsParenthesized pins x**(y**3) for
// Pow(x, Pow(y,3)), the shape sympy's own fcode test suite expects,
// even though Fortran's right-associative "**" would already read
// the unparenthesized form the same way.
func TestRenderPowNestedExponentIsParenthesized(t *testing.T) {
	b := &Base{}
	inner := expr.Pow{Base: y(), Exp: i(3)}
	p := expr.Pow{Base: x(), Exp: inner}
	got := b.Render(p)
	want := "x**(y**3)"
	if got != want {
		t.Errorf("Render(x**(y**3)) = %q, want %q", got, want)
	}
}

// TestRenderPowNestedBaseIsParenthesized guards against
// Pow(Pow(x,y), z) ("(x**y)**z") rendering identically to
// Pow(x, Pow(y,z)) ("x**y**z") and silently changing meaning under
// Fortran's right-associative "**".
func TestRenderPowNestedBaseIsParenthesized(t *testing.T) {
	b := &Base{}
	inner := expr.Pow{Base: x(), Exp: y()}
	p := expr.Pow{Base: inner, Exp: i(2)}
	got := b.Render(p)
	want := "(x**y)**2"
	if got != want {
		t.Errorf("Render((x**y)**2) = %q, want %q", got, want)
	}
}

func TestRenderCall(t *testing.T) {
	b := &Base{}
	c := expr.Call{Fn: "f", Args: []expr.Expr{x(), y()}}
	if got := b.Render(c); got != "f(x, y)" {
		t.Errorf("Render(f(x,y)) = %q, want %q", got, "f(x, y)")
	}
}
