// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strings"
)

// funcMapFlag collects repeated -fn name=fortran_name flags into a
// map, the user_functions override spec.md §4.6 names. Grounded on
// the standard flag.Value pattern for repeatable flags (the same
// shape ivy's config.Debug map uses, key=value string splitting).
type funcMapFlag map[string]string

func (m funcMapFlag) String() string {
	if len(m) == 0 {
		return ""
	}
	parts := make([]string, 0, len(m))
	for k, v := range m {
		parts = append(parts, k+"="+v)
	}
	return strings.Join(parts, ",")
}

func (m funcMapFlag) Set(s string) error {
	name, fortranName, ok := strings.Cut(s, "=")
	if !ok {
		return fmt.Errorf("expected name=fortran_name, got %q", s)
	}
	m[name] = fortranName
	return nil
}
