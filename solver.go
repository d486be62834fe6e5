// Copyright ©2025 curioloop. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vpsc

// Solver runs the batch, non-incremental algorithm: satisfy builds a
// feasible block partition from scratch, refine then improves it to
// optimality. Use IncSolver instead when the same variable/constraint
// set is solved repeatedly as desired positions shift.
type Solver struct {
	vars []*Variable
	cons []*Constraint

	blocks *blockSet
	logger *Logger

	refineIterCap int
}

// NewSolver builds the initial variable/constraint graph (§4.A): every
// variable starts in its own singleton block, and each variable's
// in/out lists are populated from cons.
func NewSolver(vars []*Variable, cons []*Constraint, opts ...Option) *Solver {
	cfg := defaultConfig()
	for _, o := range opts {
		o(&cfg)
	}
	return &Solver{
		vars:          vars,
		cons:          cons,
		blocks:        buildGraph(vars, cons),
		logger:        cfg.logger,
		refineIterCap: cfg.refineIterCap,
	}
}

// activateEqualities forces every equality constraint active before the
// main topological pass runs. Equality constraints must always be
// active regardless of the sign of their current slack, unlike
// ordinary inequalities, which only merge when violated. An equality
// whose endpoints already share a block (through earlier equalities)
// is left inactive and is not merged.
func (s *Solver) activateEqualities() {
	for _, c := range s.cons {
		if !c.Equality || c.active {
			continue
		}
		left, right := c.Left.block, c.Right.block
		if left == right {
			continue
		}
		left.merge(right, c)
		s.blocks.cleanup()
		if s.logger.enable(LogTrace) {
			s.logger.log("vpsc: activated equality constraint (gap=%g)\n", c.Gap)
		}
	}
}

// mergeLeft repeatedly merges v's current block with the block to its
// left over the most-violated incoming constraint, until no incoming
// constraint remains violated.
func (s *Solver) mergeLeft(v *Variable) {
	for {
		b := v.block
		b.setUpInConstraints()
		c := b.in.popMin()
		if c == nil || c.Slack() >= 0 {
			return
		}
		slack := c.Slack()
		left, right := c.Left.block, c.Right.block
		left.merge(right, c)
		s.blocks.cleanup()
		if s.logger.enable(LogTrace) {
			s.logger.log("vpsc: merged block over violated constraint (slack was %g)\n", slack)
		}
	}
}

// Satisfy establishes a feasible block partition (§4.D). It returns
// whether any active constraints remain (i.e. some block has more
// than one variable), and fails with *UnsatisfiedConstraintError if
// final verification finds a constraint still below tolerance.
func (s *Solver) Satisfy() (bool, error) {
	s.activateEqualities()
	for _, v := range s.blocks.totalOrder() {
		s.mergeLeft(v)
	}
	s.blocks.cleanup()
	if err := s.verify(); err != nil {
		return false, err
	}
	return s.hasActiveConstraints(), nil
}

// Refine improves a feasible partition toward optimality by splitting
// any block whose minimum Lagrange multiplier falls below
// lagrangianTolerance, up to refineIterCap outer passes.
func (s *Solver) Refine() error {
	iterCap := s.refineIterCap
	if iterCap <= 0 {
		iterCap = refineIterCap
	}
	for i := 0; i < iterCap; i++ {
		for _, b := range s.blocks.blocks {
			b.setUpInConstraints()
			b.setUpOutConstraints()
		}
		split := false
		for _, b := range s.blocks.blocks {
			c, lm := b.findMinLM()
			if c == nil || lm >= lagrangianTolerance {
				continue
			}
			l, r := b.split(c)
			s.blocks.insert(l)
			s.blocks.insert(r)
			if s.logger.enable(LogTrace) {
				s.logger.log("vpsc: split block over constraint (lm=%g)\n", lm)
			}
			split = true
			break
		}
		s.blocks.cleanup()
		if !split {
			break
		}
	}
	return s.verify()
}

// Solve runs Satisfy then Refine and copies the result into each
// variable's FinalPosition. It returns whether any active constraints
// remain.
func (s *Solver) Solve() (bool, error) {
	if _, err := s.Satisfy(); err != nil {
		return false, err
	}
	if err := s.Refine(); err != nil {
		return false, err
	}
	s.CopyResult()
	return s.hasActiveConstraints(), nil
}

// CopyResult writes each variable's current Position() into
// FinalPosition.
func (s *Solver) CopyResult() {
	for _, v := range s.vars {
		v.FinalPosition = v.Position()
	}
}

func (s *Solver) verify() error {
	for _, c := range s.cons {
		if c.unsatisfiable {
			continue
		}
		if slack := c.Slack(); slack < zeroUpperBound {
			return &UnsatisfiedConstraintError{Cons: c, Slack: slack}
		}
	}
	return nil
}

func (s *Solver) hasActiveConstraints() bool {
	for _, b := range s.blocks.blocks {
		if len(b.vars) > 1 {
			return true
		}
	}
	return false
}
