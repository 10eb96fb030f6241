// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package expr

import "math/big"

// The five canonical NumberSymbols spec.md §3 names, each carrying at
// least 60 significant decimal digits of working precision. Evalf reformats
// from this single high-precision literal rather than recomputing per
// call, the same trick value/bigfloat.go uses to keep a *big.Float
// around and reformat it instead of re-deriving the value.
const (
	piDigits          = "3.14159265358979323846264338327950288419716939937510582097494459"
	eDigits           = "2.71828182845904523536028747135266249775724709369995957496696763"
	catalanDigits     = "0.91596559417721901505460351493238411077414937428167213426649812"
	eulerGammaDigits  = "0.57721566490153286060651209008240243104215933593992359880576723"
	goldenRatioDigits = "1.61803398874989484820458683436563811772030917980576286213544862"
)

// Pi is the ratio of a circle's circumference to its diameter.
func Pi() NumberSymbol { return NumberSymbol{Name: "pi", digits: piDigits} }

// E is the base of the natural logarithm.
func E() NumberSymbol { return NumberSymbol{Name: "E", digits: eDigits} }

// Catalan is Catalan's constant.
func Catalan() NumberSymbol { return NumberSymbol{Name: "Catalan", digits: catalanDigits} }

// EulerGamma is the Euler-Mascheroni constant.
func EulerGamma() NumberSymbol { return NumberSymbol{Name: "EulerGamma", digits: eulerGammaDigits} }

// GoldenRatio is (1+sqrt(5))/2.
func GoldenRatio() NumberSymbol { return NumberSymbol{Name: "GoldenRatio", digits: goldenRatioDigits} }

// NumberSymbolOrder fixes the canonical-name ordering spec.md §4.6
// requires for parameter declarations, matching the order the five
// constants are listed in spec.md §3.
var NumberSymbolOrder = map[string]int{
	"pi":          0,
	"E":           1,
	"Catalan":     2,
	"EulerGamma":  3,
	"GoldenRatio": 4,
}

// Evalf returns the decimal expansion of n to precision significant
// digits. precision <= 0 falls back to 15, spec.md's documented
// default.
func (n NumberSymbol) Evalf(precision int) string {
	if precision <= 0 {
		precision = 15
	}
	f, _, err := big.ParseFloat(n.digits, 10, 256, big.ToNearestEven)
	if err != nil {
		// n.digits is always one of the literals above; this path is
		// unreachable for any NumberSymbol built via the constructors.
		return n.digits
	}
	return f.Text('g', precision)
}
