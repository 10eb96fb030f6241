// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fcode

import "fcodegen.dev/fcode/expr"

// Result is the structured return shape for a non-human-mode render
// (opts.Human == false), spec.md §4.6/§6. Go has no sum-type return,
// so Fcode always returns both halves; the unused one is the zero
// value rather than an interface union, the same shape
// value.ValueString uses for its own (Value, bool) return.
type Result struct {
	// Symbols holds every NumberSymbol the render encountered, in
	// canonical-name order.
	Symbols []expr.NumberSymbol
	// NotFortran holds every node recorded as not expressible in
	// Fortran 77, in encounter order.
	NotFortran []expr.Expr
	// Body is the wrapped body text, without any parameter
	// declaration header or "Not Fortran 77" commentary.
	Body string
}
