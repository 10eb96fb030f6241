// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fortran

import "fmt"

// Unsupported reports a construct strict mode refuses to pass
// through, per spec.md §7: a function with no implicit or
// user-supplied Fortran spelling, or a node on the F77 blacklist.
// It is raised as a panic at the point of detection and recovered by
// the root fcode package, mirroring how value.Errorf panics
// anywhere under value/ and run.Run holds the package's one
// recover().
type Unsupported struct {
	Kind   string
	Detail string
}

func (u *Unsupported) Error() string {
	return fmt.Sprintf("fcode: unsupported %s: %s", u.Kind, u.Detail)
}
