// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config holds the options record threaded through every
// stage of a single fcode render.
package config

// Options configures one Fcode invocation. The zero value gives 15
// digits of precision and lenient handling of constructs outside
// Fortran 77, but structured rather than human-readable output, since
// Human is false; NewOptions returns every documented default,
// including Human: true.
type Options struct {
	// Precision is the number of significant digits used to evaluate
	// NumberSymbols (pi, E, Catalan, EulerGamma, GoldenRatio). Zero
	// means the default of 15.
	Precision int

	// AssignTo, if non-empty, wraps the rendered top-level expression,
	// or each Piecewise branch body, as "<AssignTo> = <expr>".
	AssignTo string

	// UserFunctions maps a function's canonical identity to the name
	// it should be rendered with, overriding the implicit F77
	// intrinsic table and taking precedence over it.
	UserFunctions map[string]string

	// Strict turns every "not Fortran 77" incident into an error
	// instead of recording it and continuing.
	Strict bool

	// Human selects the return shape: true returns a single
	// concatenated string (with parameter declarations and any
	// "Not Fortran 77" commentary); false returns a structured Result.
	//
	// The zero value is false, but spec.md documents the *default*
	// as human=true, so callers that want the structured form must
	// set it explicitly and callers that want the default human form
	// must also set it explicitly; NewOptions below is the
	// constructor that actually applies the documented defaults.
	Human bool
}

// DefaultPrecision is used whenever Options.Precision is zero.
const DefaultPrecision = 15

// EffectivePrecision returns o.Precision, or DefaultPrecision if unset.
func (o Options) EffectivePrecision() int {
	if o.Precision <= 0 {
		return DefaultPrecision
	}
	return o.Precision
}

// NewOptions returns an Options value with every documented default
// applied, matching the behaviour spec.md describes for an options
// record the caller never touches: 15 digits of precision, human
// output, lenient mode, no assignment target, no user function
// overrides.
func NewOptions() Options {
	return Options{
		Precision: DefaultPrecision,
		Human:     true,
	}
}

// FunctionName looks up name in the user-supplied function mapping.
func (o Options) FunctionName(name string) (string, bool) {
	if o.UserFunctions == nil {
		return "", false
	}
	v, ok := o.UserFunctions[name]
	return v, ok
}
