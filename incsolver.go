// Copyright ©2025 curioloop. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vpsc

import "math"

// IncSolver reuses its block partition across successive solves as
// variables' desired positions shift, rather than rebuilding one from
// scratch every time (Solver's approach). Construct once, mutate the
// shared Variable.DesiredPosition values between calls, and call
// Solve again.
type IncSolver struct {
	vars []*Variable
	cons []*Constraint

	blocks   *blockSet
	inactive []*Constraint

	logger  *Logger
	costEps float64
}

// NewIncSolver builds the initial variable/constraint graph with every
// constraint inactive, exactly like NewSolver.
func NewIncSolver(vars []*Variable, cons []*Constraint, opts ...Option) *IncSolver {
	cfg := defaultConfig()
	for _, o := range opts {
		o(&cfg)
	}
	inactive := make([]*Constraint, len(cons))
	copy(inactive, cons)
	return &IncSolver{
		vars:     vars,
		cons:     cons,
		blocks:   buildGraph(vars, cons),
		inactive: inactive,
		logger:   cfg.logger,
		costEps:  cfg.costEps,
	}
}

// splitBlocks recomputes every live block's position, then splits any
// block whose minimum Lagrange multiplier falls below
// lagrangianTolerance, feeding the freed constraint back into the
// inactive set (§4.E step 1).
func (s *IncSolver) splitBlocks() {
	for _, b := range s.blocks.blocks {
		if b.deleted {
			continue
		}
		b.recompute()
		c, lm := b.findMinLM()
		if c == nil || lm >= lagrangianTolerance {
			continue
		}
		l, r := b.split(c)
		s.blocks.insert(l)
		s.blocks.insert(r)
		s.inactive = append(s.inactive, c)
		if s.logger.enable(LogTrace) {
			s.logger.log("vpsc: incremental split (lm=%g)\n", lm)
		}
	}
	s.blocks.cleanup()
}

// mostViolated scans the inactive set for the constraint most in need
// of activation: the first equality encountered short-circuits with
// highest priority, otherwise the smallest slack wins. If the winner
// qualifies (equality, or non-active with slack below tolerance) it is
// swap-removed from the inactive set and returned; otherwise nil is
// returned and the inactive set is left untouched, signalling the
// caller to stop.
func (s *IncSolver) mostViolated() *Constraint {
	if len(s.inactive) == 0 {
		return nil
	}
	best := 0
	for i, c := range s.inactive {
		if c.Equality {
			best = i
			break
		}
		if s.inactive[i].Slack() < s.inactive[best].Slack() {
			best = i
		}
	}
	c := s.inactive[best]
	if c.Equality || (c.Slack() < zeroUpperBound && !c.active) {
		last := len(s.inactive) - 1
		s.inactive[best] = s.inactive[last]
		s.inactive = s.inactive[:last]
		return c
	}
	return nil
}

// satisfyInc runs one full incremental feasibility pass (§4.E).
func (s *IncSolver) satisfyInc() error {
	s.splitBlocks()
	for {
		v := s.mostViolated()
		if v == nil {
			break
		}
		left, right := v.Left.block, v.Right.block
		switch {
		case left != right:
			left.merge(right, v)
			if s.logger.enable(LogEval) {
				s.logger.log("vpsc: incremental merge over violated constraint (gap=%g)\n", v.Gap)
			}
		case left.isActiveDirectedPathBetween(v.Right, v.Left):
			v.unsatisfiable = true
			if s.logger.enable(LogEval) {
				s.logger.log("vpsc: constraint flagged unsatisfiable (cycle)\n")
			}
		default:
			freed, l, r := left.splitBetween(v.Left, v.Right)
			if freed == nil {
				v.unsatisfiable = true
				if s.logger.enable(LogEval) {
					s.logger.log("vpsc: constraint flagged unsatisfiable (no split found)\n")
				}
				break
			}
			s.inactive = append(s.inactive, freed)
			if v.Slack() >= 0 {
				s.inactive = append(s.inactive, v)
				s.blocks.insert(l)
				s.blocks.insert(r)
			} else {
				survivor, other := v.Left.block, v.Right.block
				survivor.merge(other, v)
				s.blocks.insert(survivor)
			}
		}
		s.blocks.cleanup()
	}
	if err := s.verify(); err != nil {
		return err
	}
	s.copyResult()
	return nil
}

// Satisfy runs a single incremental feasibility pass and reports
// whether any active constraints remain.
func (s *IncSolver) Satisfy() (bool, error) {
	if err := s.satisfyInc(); err != nil {
		return false, err
	}
	return s.hasActiveConstraints(), nil
}

// Solve repeats satisfyInc until the block set's total cost stops
// changing by more than the configured epsilon (costConvergenceEps by
// default), then reports whether any active constraints remain.
func (s *IncSolver) Solve() (bool, error) {
	if err := s.satisfyInc(); err != nil {
		return false, err
	}
	eps := s.costEps
	if eps == 0 {
		eps = costConvergenceEps
	}
	costOld := math.Inf(1)
	cost := s.blocks.cost()
	for math.Abs(costOld-cost) > eps {
		if err := s.satisfyInc(); err != nil {
			return false, err
		}
		costOld = cost
		cost = s.blocks.cost()
	}
	return s.hasActiveConstraints(), nil
}

func (s *IncSolver) copyResult() {
	for _, v := range s.vars {
		v.FinalPosition = v.Position()
	}
}

func (s *IncSolver) verify() error {
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

func (s *IncSolver) hasActiveConstraints() bool {
	for _, b := range s.blocks.blocks {
		if len(b.vars) > 1 {
			return true
		}
	}
	return false
}
