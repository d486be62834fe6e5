// Copyright ©2025 curioloop. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vpsc

import "fmt"

// UnsatisfiedConstraintError is returned when final verification finds a
// constraint whose slack is still below zeroUpperBound. It indicates
// either a bug in the merge/split logic or over-constrained input the
// solver failed to flag as unsatisfiable during the solve.
type UnsatisfiedConstraintError struct {
	Cons  *Constraint
	Slack float64
}

func (e *UnsatisfiedConstraintError) Error() string {
	return fmt.Sprintf("vpsc: unsatisfied constraint (slack=%g, gap=%g, equality=%v)",
		e.Slack, e.Cons.Gap, e.Cons.Equality)
}

// Constraint returns the offending constraint.
func (e *UnsatisfiedConstraintError) Constraint() *Constraint {
	return e.Cons
}
