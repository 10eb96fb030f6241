// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fcode

import (
	"fcodegen.dev/fcode/expr"
	"fcodegen.dev/fcode/fortran"
)

// Unsupported is returned by Fcode in strict mode when the first
// "not Fortran 77" incident is hit: an undefined function, or a node
// on the F77 blacklist (spec.md §7). Defined in package fortran,
// where the incident is actually detected; aliased here since
// spec.md places the error kinds at the driver's external interface.
type Unsupported = fortran.Unsupported

// InvalidInput reports a structurally malformed input, the only
// documented case being a Rational with a zero denominator (spec.md
// §7). Defined in package expr, where construction-time validation
// happens, and aliased here for the same reason as Unsupported.
type InvalidInput = expr.InvalidInputError
