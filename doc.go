// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*

Package fcode translates a read-only symbolic expression tree into
Fortran-77 fixed-form source text.

Given an expression tree built from the variants in package expr
(symbols, integers, rationals, number constants, sums, products,
powers, function calls, and a top-level piecewise), Fcode renders it
through a precedence-aware printer (package render), a Fortran-77
specialisation covering complex numbers, rational coefficients, power
rewriting, and function-name mapping (package fortran), piecewise
lowering into an if/else-if/end-if block, and a fixed-form line
wrapper that respects the 6-column statement margin and the 72-column
limit.

Fcode is a pure function of its arguments: no shared mutable state
survives a single call, so concurrent calls over disjoint or shared
read-only expression trees need no synchronisation.

*/
package fcode
