// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fortran

import (
	"reflect"
	"strings"
	"testing"
)

func TestWrapShortLine(t *testing.T) {
	got := Wrap("x + 1")
	want := []string{"      x + 1"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Wrap(short) = %v, want %v", got, want)
	}
}

func TestWrapExactlyFirstLineWidth(t *testing.T) {
	line := strings.Repeat("a", firstLineChars)
	got := Wrap(line)
	if len(got) != 1 {
		t.Fatalf("Wrap(66 chars) = %d lines, want 1", len(got))
	}
	if got[0] != indent+line {
		t.Errorf("Wrap(66 chars)[0] = %q, want indent+line", got[0])
	}
}

func TestWrapLongLineProducesContinuation(t *testing.T) {
	line := strings.Repeat("a", firstLineChars) + strings.Repeat("b", 10)
	got := Wrap(line)
	if len(got) != 2 {
		t.Fatalf("Wrap(76 chars) = %d lines, want 2", len(got))
	}
	if got[0] != indent+strings.Repeat("a", firstLineChars) {
		t.Errorf("Wrap first line = %q", got[0])
	}
	if got[1] != contPrefix+strings.Repeat("b", 10) {
		t.Errorf("Wrap continuation line = %q", got[1])
	}
	if !strings.HasPrefix(got[1], "     @    ") {
		t.Errorf("continuation line does not start with the 10-char continuation prefix: %q", got[1])
	}
}

func TestWrapMultipleContinuations(t *testing.T) {
	// 66 + 62 + 62 + 5 = one first segment plus three continuations.
	line := strings.Repeat("x", firstLineChars+contLineChars*2+5)
	got := Wrap(line)
	if len(got) != 4 {
		t.Fatalf("Wrap = %d lines, want 4", len(got))
	}
	for _, l := range got[1:] {
		if !strings.HasPrefix(l, contPrefix) {
			t.Errorf("continuation line missing prefix: %q", l)
		}
	}
	// Every physical line respects the 72-column limit (6 + 66, or 10 + 62).
	for _, l := range got {
		if len(l) > 72 {
			t.Errorf("physical line %q exceeds 72 columns (%d)", l, len(l))
		}
	}
}

func TestWrapAllPreservesLineOrder(t *testing.T) {
	lines := []string{"if (x < 1) then", "x", "end if"}
	got := WrapAll(lines)
	want := []string{"      if (x < 1) then", "      x", "      end if"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("WrapAll = %v, want %v", got, want)
	}
}
