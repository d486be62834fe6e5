// Copyright ©2025 curioloop. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vpsc

// solverConfig holds the tunables both Solver and IncSolver accept.
// Zero options reproduces the package's bit-exact numerical defaults.
type solverConfig struct {
	logger        *Logger
	refineIterCap int
	costEps       float64
}

func defaultConfig() solverConfig {
	return solverConfig{refineIterCap: refineIterCap, costEps: costConvergenceEps}
}

// Option configures a Solver or IncSolver at construction time.
type Option func(*solverConfig)

// WithLogger attaches a diagnostic Logger, nil by default (no-op).
func WithLogger(l *Logger) Option {
	return func(c *solverConfig) { c.logger = l }
}

// WithRefineIterationCap overrides the outer refine-pass limit,
// otherwise defaulted to refineIterCap. Only consulted by Solver.
func WithRefineIterationCap(n int) Option {
	return func(c *solverConfig) { c.refineIterCap = n }
}

// WithCostEpsilon overrides the incremental cost-convergence
// tolerance, otherwise defaulted to costConvergenceEps. Only consulted
// by IncSolver.
func WithCostEpsilon(eps float64) Option {
	return func(c *solverConfig) { c.costEps = eps }
}
