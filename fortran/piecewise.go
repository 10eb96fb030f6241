// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fortran

import "fcodegen.dev/fcode/expr"

// RenderRoot produces the raw (unwrapped) logical lines for e. A
// Piecewise at the root lowers to an if/else-if/end-if block (C5,
// spec.md §4.4); anything else is a single line, optionally wrapped
// with the assign_to target (spec.md §4.6).
func (p *Printer) RenderRoot(e expr.Expr) []string {
	pw, ok := e.(expr.Piecewise)
	if !ok {
		return []string{p.renderAssigned(e)}
	}
	return p.renderPiecewise(pw)
}

func (p *Printer) renderAssigned(e expr.Expr) string {
	body := p.Render(e)
	if p.Opts.AssignTo == "" {
		return body
	}
	return p.Opts.AssignTo + " = " + body
}

func (p *Printer) renderPiecewise(pw expr.Piecewise) []string {
	lines := make([]string, 0, 2*len(pw.Branches)+1)
	last := len(pw.Branches) - 1
	for i, br := range pw.Branches {
		switch {
		case i == 0:
			lines = append(lines, "if ("+p.renderCondition(br.Condition)+") then")
		case i == last && isLiteralTrue(br.Condition):
			lines = append(lines, "else")
		default:
			lines = append(lines, "else if ("+p.renderCondition(br.Condition)+") then")
		}
		lines = append(lines, "  "+p.renderAssigned(br.Value))
	}
	lines = append(lines, "end if")
	return lines
}

func isLiteralTrue(c expr.Expr) bool {
	b, ok := c.(expr.Boolean)
	return ok && bool(b)
}

// renderCondition renders a Piecewise condition directly. It
// bypasses the "relational outside piecewise" blacklist check
// Printer.Render otherwise applies, since a Relational is exactly
// what belongs in this position (spec.md §4.4, §9).
func (p *Printer) renderCondition(c expr.Expr) string {
	if rel, ok := c.(expr.Relational); ok {
		return p.Render(rel.Lhs) + " " + string(rel.Op) + " " + p.Render(rel.Rhs)
	}
	return p.Render(c)
}
