// Copyright ©2025 curioloop. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vpsc

// buildGraph populates each variable's in/out constraint lists from a
// single scan over cons, resets any active/unsatisfiable state left
// over from a previous solve, defaults unset Variable.ID to the
// variable's index, and returns a fresh blockSet with one singleton
// block per variable. Shared by NewSolver and NewIncSolver.
func buildGraph(vars []*Variable, cons []*Constraint) *blockSet {
	for i, v := range vars {
		if v.ID == 0 {
			v.ID = i
		}
		v.in = nil
		v.out = nil
		v.block = nil
	}
	for _, c := range cons {
		c.active = false
		c.unsatisfiable = false
		c.Left.out = append(c.Left.out, c)
		c.Right.in = append(c.Right.in, c)
	}
	return newBlockSet(vars)
}
