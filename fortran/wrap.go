// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fortran

const (
	firstLineChars = 66
	contLineChars  = 62
	indent         = "      "     // 6 spaces: the statement column
	contPrefix     = "     @    " // 5 spaces, '@', 4 spaces: 10 chars
)

// Wrap re-segments one logical line into Fortran fixed-form physical
// lines (C6, spec.md §4.5): six spaces followed by up to 66
// characters, then as many "     @    " + 62-character continuation
// lines as the remainder needs. It operates on bytes, never on token
// boundaries, so it may split an identifier or an operator.
func Wrap(line string) []string {
	if len(line) <= firstLineChars {
		return []string{indent + line}
	}
	out := []string{indent + line[:firstLineChars]}
	rest := line[firstLineChars:]
	for len(rest) > 0 {
		n := contLineChars
		if n > len(rest) {
			n = len(rest)
		}
		out = append(out, contPrefix+rest[:n])
		rest = rest[n:]
	}
	return out
}

// WrapAll wraps each logical line independently and concatenates the
// results, preserving order. Used for the multi-line output of
// piecewise lowering, where each if/else-if/body/end-if line is
// wrapped on its own (spec.md §4.5: "already-multi-line output from
// C5 is wrapped one logical line at a time").
func WrapAll(lines []string) []string {
	out := make([]string, 0, len(lines))
	for _, l := range lines {
		out = append(out, Wrap(l)...)
	}
	return out
}
