// Copyright ©2025 curioloop. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vpsc

// Constraint is a directed separation inequality Right - Left ≥ Gap, or
// the equality Right - Left = Gap when Equality is set.
type Constraint struct {
	Left, Right *Variable
	Gap         float64
	// Equality treats the constraint as Right - Left = Gap, equivalent
	// to a pair of inequalities that must always be active.
	Equality bool

	// active is whether this constraint currently spans an edge inside
	// some block's active tree.
	active bool
	// lm is the Lagrange multiplier, valid only after a findMinLM pass
	// over the owning block's active tree.
	lm float64
	// unsatisfiable latches true when the constraint is known to be
	// inconsistent with an active cycle, or could not be freed by a
	// split. The solver skips it thereafter; the overall solve still
	// succeeds.
	unsatisfiable bool

	// heapIndex is scratch state for the owning block's in/out heaps,
	// valid only between setUpIn/OutConstraints and the next cleanup.
	heapIndex int
}

// NewConstraint returns an inequality constraint Right - Left ≥ Gap.
func NewConstraint(left, right *Variable, gap float64) *Constraint {
	return &Constraint{Left: left, Right: right, Gap: gap}
}

// NewEqualityConstraint returns an equality constraint Right - Left = Gap.
func NewEqualityConstraint(left, right *Variable, gap float64) *Constraint {
	return &Constraint{Left: left, Right: right, Gap: gap, Equality: true}
}

// Slack returns Right.Position() - Left.Position() - Gap. Non-negative
// means the constraint is currently satisfied; an equality constraint
// is satisfied only when this is exactly zero (guaranteed once it has
// been activated, since it is then never a split candidate).
func (c *Constraint) Slack() float64 {
	return c.Right.Position() - c.Left.Position() - c.Gap
}

// Active reports whether the constraint currently spans an edge inside
// a block's active tree.
func (c *Constraint) Active() bool {
	return c.active
}

// Unsatisfiable reports whether the solver flagged this constraint as
// unsatisfiable (a cycle or an unsplittable block). The overall solve
// still succeeds when this flag is set; only final verification of
// non-flagged constraints can fail the solve.
func (c *Constraint) Unsatisfiable() bool {
	return c.unsatisfiable
}

// LM returns the Lagrange multiplier computed by the most recent
// findMinLM pass over the owning block's active tree. Its value is
// meaningless for inactive constraints.
func (c *Constraint) LM() float64 {
	return c.lm
}
