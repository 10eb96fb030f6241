// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command fcode is a thin CLI front end over package fcode: it reads
// a JSON-encoded expression tree from a file or stdin and writes its
// Fortran-77 rendering to stdout. It is the one permitted outer layer
// above the core (expr/render/fortran/fcode) that is allowed to parse
// text and write to a sink, the same role ivy.go plays above
// package value.
package main

import (
	"flag"
	"io"
	"os"

	"fortio.org/cli"
	"fortio.org/log"

	"fcodegen.dev/fcode"
	"fcodegen.dev/fcode/config"
)

var (
	precision = flag.Int("precision", config.DefaultPrecision, "significant digits used to evaluate NumberSymbols")
	assignTo  = flag.String("assign-to", "", "wrap the rendered expression as \"<name> = ...\"")
	strict    = flag.Bool("strict", false, "fail on the first construct that is not Fortran 77")
	human     = flag.Bool("human", true, "copied into Options.Human; output is always the human-readable form, since PrintFcode forces human mode")
	input     = flag.String("input", "-", "path to a JSON-encoded expression, or \"-\" for stdin")
)

var userFunctions = funcMapFlag{}

func init() {
	flag.Var(userFunctions, "fn", "override a function's Fortran spelling: name=fortran_name (repeatable)")
}

func main() {
	cli.MinArgs = 0
	cli.MaxArgs = 0
	cli.ArgsHelp = ""
	cli.Main()

	data, err := readInput(*input)
	if err != nil {
		log.Fatalf("fcode: reading input: %v", err)
	}
	e, err := decodeExpr(data)
	if err != nil {
		log.Fatalf("fcode: decoding expression: %v", err)
	}

	opts := config.Options{
		Precision:     *precision,
		AssignTo:      *assignTo,
		Strict:        *strict,
		Human:         *human,
		UserFunctions: map[string]string(userFunctions),
	}
	if err := fcode.PrintFcode(os.Stdout, e, opts); err != nil {
		log.Fatalf("fcode: %v", err)
	}
}

func readInput(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}
