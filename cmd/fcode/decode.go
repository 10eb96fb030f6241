// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"math/big"

	"fcodegen.dev/fcode/expr"
)

// rawNode is the JSON shape cmd/fcode reads an expression tree from.
// This decoder is deliberately confined to the command: the core
// (package expr) never parses text, per spec.md's "out of scope:
// construction of the symbolic expression tree" boundary — cmd/fcode
// is the one permitted outer layer that may build one, for the sake
// of having something to feed Fcode from a file or stdin.
type rawNode struct {
	Type      string            `json:"type"`
	Name      string            `json:"name,omitempty"`
	Value     string            `json:"value,omitempty"`
	P         string            `json:"p,omitempty"`
	Q         string            `json:"q,omitempty"`
	Imaginary bool              `json:"imaginary,omitempty"`
	Real      bool              `json:"real,omitempty"`
	Operands  []json.RawMessage `json:"operands,omitempty"`
	Base      json.RawMessage   `json:"base,omitempty"`
	Exp       json.RawMessage   `json:"exp,omitempty"`
	Fn        string            `json:"fn,omitempty"`
	Args      []json.RawMessage `json:"args,omitempty"`
	Branches  []rawBranch       `json:"branches,omitempty"`
	Lhs       json.RawMessage   `json:"lhs,omitempty"`
	Rhs       json.RawMessage   `json:"rhs,omitempty"`
	Op        string            `json:"op,omitempty"`
	Bool      bool              `json:"bool,omitempty"`
	Kind      string            `json:"kind,omitempty"`
	Repr      string            `json:"repr,omitempty"`
}

type rawBranch struct {
	Value     json.RawMessage `json:"value"`
	Condition json.RawMessage `json:"condition"`
}

func decodeExpr(data []byte) (expr.Expr, error) {
	var n rawNode
	if err := json.Unmarshal(data, &n); err != nil {
		return nil, err
	}
	return n.toExpr()
}

func decodeOne(raw json.RawMessage) (expr.Expr, error) {
	if len(raw) == 0 {
		return nil, fmt.Errorf("missing expression")
	}
	return decodeExpr(raw)
}

func decodeList(raws []json.RawMessage) ([]expr.Expr, error) {
	out := make([]expr.Expr, len(raws))
	for i, r := range raws {
		e, err := decodeExpr(r)
		if err != nil {
			return nil, err
		}
		out[i] = e
	}
	return out, nil
}

func parseBigInt(s string) (*big.Int, error) {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, fmt.Errorf("not an integer literal: %q", s)
	}
	return v, nil
}

func (n rawNode) toExpr() (expr.Expr, error) {
	switch n.Type {
	case "symbol":
		return expr.Symbol{Name: n.Name, Imaginary: n.Imaginary, Real: n.Real}, nil
	case "integer":
		v, err := parseBigInt(n.Value)
		if err != nil {
			return nil, err
		}
		return expr.Integer{Val: v}, nil
	case "rational":
		p, err := parseBigInt(n.P)
		if err != nil {
			return nil, err
		}
		q, err := parseBigInt(n.Q)
		if err != nil {
			return nil, err
		}
		return expr.NewRational(p, q)
	case "number_symbol":
		switch n.Name {
		case "pi":
			return expr.Pi(), nil
		case "E":
			return expr.E(), nil
		case "Catalan":
			return expr.Catalan(), nil
		case "EulerGamma":
			return expr.EulerGamma(), nil
		case "GoldenRatio":
			return expr.GoldenRatio(), nil
		}
		return nil, fmt.Errorf("unknown number symbol %q", n.Name)
	case "imaginary_unit":
		return expr.ImaginaryUnit{}, nil
	case "add":
		ops, err := decodeList(n.Operands)
		if err != nil {
			return nil, err
		}
		return expr.Add{Operands: ops}, nil
	case "mul":
		ops, err := decodeList(n.Operands)
		if err != nil {
			return nil, err
		}
		return expr.Mul{Operands: ops}, nil
	case "pow":
		base, err := decodeOne(n.Base)
		if err != nil {
			return nil, err
		}
		exp, err := decodeOne(n.Exp)
		if err != nil {
			return nil, err
		}
		return expr.Pow{Base: base, Exp: exp}, nil
	case "call":
		args, err := decodeList(n.Args)
		if err != nil {
			return nil, err
		}
		return expr.Call{Fn: expr.FuncID(n.Fn), Args: args}, nil
	case "relational":
		lhs, err := decodeOne(n.Lhs)
		if err != nil {
			return nil, err
		}
		rhs, err := decodeOne(n.Rhs)
		if err != nil {
			return nil, err
		}
		return expr.Relational{Lhs: lhs, Rhs: rhs, Op: expr.RelOp(n.Op)}, nil
	case "boolean":
		return expr.Boolean(n.Bool), nil
	case "piecewise":
		branches := make([]expr.PiecewiseBranch, len(n.Branches))
		for i, b := range n.Branches {
			v, err := decodeOne(b.Value)
			if err != nil {
				return nil, err
			}
			c, err := decodeOne(b.Condition)
			if err != nil {
				return nil, err
			}
			branches[i] = expr.PiecewiseBranch{Value: v, Condition: c}
		}
		return expr.Piecewise{Branches: branches}, nil
	case "generic":
		return expr.Generic{Kind: n.Kind, Repr: n.Repr}, nil
	}
	return nil, fmt.Errorf("unknown node type %q", n.Type)
}
