// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package expr

import (
	"math/big"
	"testing"
)

func TestNewRationalNormalizesSign(t *testing.T) {
	r, err := NewRational(big.NewInt(3), big.NewInt(-4))
	if err != nil {
		t.Fatalf("NewRational: %v", err)
	}
	if r.P.Sign() >= 0 || r.Q.Sign() <= 0 {
		t.Errorf("NewRational(3, -4) = P=%v Q=%v, want negative sign folded into P", r.P, r.Q)
	}
}

func TestNewRationalZeroDenominator(t *testing.T) {
	_, err := NewRational(big.NewInt(1), big.NewInt(0))
	if err == nil {
		t.Fatal("NewRational(1, 0) succeeded, want an InvalidInputError")
	}
	if _, ok := err.(*InvalidInputError); !ok {
		t.Errorf("NewRational(1, 0) error type = %T, want *InvalidInputError", err)
	}
}

func TestMulImaginaryParity(t *testing.T) {
	i := ImaginaryUnit{}
	four := NewInteger(4)

	m := Mul{Operands: []Expr{four, i}}
	if !m.IsNumber() || !m.IsImaginary() || m.IsReal() {
		t.Errorf("4*I: IsNumber=%v IsImaginary=%v IsReal=%v, want true/true/false",
			m.IsNumber(), m.IsImaginary(), m.IsReal())
	}

	m2 := Mul{Operands: []Expr{i, i}}
	if !m2.IsNumber() || m2.IsImaginary() || !m2.IsReal() {
		t.Errorf("I*I: IsNumber=%v IsImaginary=%v IsReal=%v, want true/false/true",
			m2.IsNumber(), m2.IsImaginary(), m2.IsReal())
	}
}

func TestSymbolIsNeverNumber(t *testing.T) {
	s := Symbol{Name: "x", Imaginary: true}
	if s.IsNumber() {
		t.Error("Symbol.IsNumber() = true, want false (free symbols are never numbers)")
	}
	if !s.IsImaginary() {
		t.Error("Symbol{Imaginary: true}.IsImaginary() = false, want true")
	}
}

func TestNumberSymbolEvalf(t *testing.T) {
	got := Pi().Evalf(15)
	want := "3.14159265358979"
	if got != want {
		t.Errorf("Pi().Evalf(15) = %q, want %q", got, want)
	}
}

func TestNumberSymbolOrder(t *testing.T) {
	names := []string{"pi", "E", "Catalan", "EulerGamma", "GoldenRatio"}
	for i, name := range names {
		if NumberSymbolOrder[name] != i {
			t.Errorf("NumberSymbolOrder[%q] = %d, want %d", name, NumberSymbolOrder[name], i)
		}
	}
}
