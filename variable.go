// Copyright ©2025 curioloop. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vpsc

// Variable is a scalar placed on the number line with a preferred
// ("desired") position and a quadratic weight penalizing displacement
// from it.
//
// Position is derived, never stored directly: once a Variable is owned
// by a block, Position() == block.position + offset/scale. The solver
// writes offset and block as it merges/splits blocks, and writes
// FinalPosition once a solve completes.
type Variable struct {
	// ID is an optional caller-supplied identifier. The solver never
	// reads it, so it does not affect ordering, diagnostics or the
	// numerical result. A zero ID is set to the variable's index in the
	// input slice passed to NewSolver/NewIncSolver.
	ID int

	// DesiredPosition is the target position minimizing this
	// variable's stress contribution.
	DesiredPosition float64
	// Weight is the quadratic penalty coefficient; must be > 0.
	Weight float64
	// Scale scales this variable's contribution within a sub-problem.
	// Zero is treated as the default of 1.
	Scale float64

	// FinalPosition is written by the solver after each solve.
	FinalPosition float64

	// offset is this variable's position relative to its block's
	// reference point.
	offset float64
	// block is a back-reference to the owning block. It is not an
	// owning reference: the block's variable slice is authoritative for
	// membership, this pointer merely lets Slack()/Position() answer
	// without a lookup.
	block *block

	// in lists constraints where this variable is the right endpoint;
	// out lists constraints where it is the left endpoint.
	in  []*Constraint
	out []*Constraint
}

// NewVariable returns a Variable with Scale defaulted to 1.
func NewVariable(desired, weight float64) *Variable {
	return &Variable{DesiredPosition: desired, Weight: weight, Scale: 1}
}

func (v *Variable) scale() float64 {
	if v.Scale == 0 {
		return 1
	}
	return v.Scale
}

// Position returns this variable's current position, valid once it has
// been assigned to a block by a solver.
func (v *Variable) Position() float64 {
	if v.block == nil {
		return v.DesiredPosition
	}
	return v.block.position + v.offset/v.scale()
}

// Offset returns the variable's position relative to its block's
// reference point (0 until a solver assigns it to a block).
func (v *Variable) Offset() float64 {
	return v.offset
}
