// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fortran

// implicitFunctions is the fixed table of F77 intrinsics a FuncID
// resolves to when the caller supplies no user_functions override,
// per spec.md §4.3 item 7. Grounded on value/unary.go and
// value/binary.go's style of a plain map keyed by operator/function
// name rather than a type switch, since the set of function
// identities is open (a caller can name anything).
var implicitFunctions = map[string]string{
	"sin":       "sin",
	"cos":       "cos",
	"tan":       "tan",
	"asin":      "asin",
	"acos":      "acos",
	"atan":      "atan",
	"atan2":     "atan2",
	"sinh":      "sinh",
	"cosh":      "cosh",
	"tanh":      "tanh",
	"sqrt":      "sqrt",
	"log":       "log",
	"exp":       "exp",
	"abs":       "abs",
	"sign":      "sign",
	"conjugate": "conjg",
}

// blacklistedKinds names the expr.Generic.Kind values spec.md §4.3
// item 8 lists as not representable in Fortran 77: derivatives,
// integrals, limits, order terms, intervals, infinities, NaN,
// matrices, tuples, dicts, lists, root expressions, geometry
// entities, distributions, complex infinity, and wildcards.
// expr.Relational appearing outside a Piecewise condition is handled
// separately in Printer.Render, since it is a distinct Go type rather
// than a Generic-tagged kind.
var blacklistedKinds = map[string]bool{
	"derivative":        true,
	"integral":          true,
	"limit":             true,
	"order":             true,
	"interval":          true,
	"infinity":          true,
	"negative_infinity": true,
	"complex_infinity":  true,
	"nan":               true,
	"matrix":            true,
	"tuple":             true,
	"dict":              true,
	"list":              true,
	"root":              true,
	"geometry":          true,
	"distribution":      true,
	"wildcard":          true,
}

func isBlacklistedKind(kind string) bool {
	return blacklistedKinds[kind]
}
