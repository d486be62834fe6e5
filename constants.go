// Copyright ©2025 curioloop. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vpsc

const (
	// zeroUpperBound is the slack tolerance below which a constraint is
	// considered violated after final verification.
	zeroUpperBound = -1e-10
	// lagrangianTolerance is the threshold below which an active edge's
	// Lagrange multiplier triggers a split.
	lagrangianTolerance = -1e-4
	// costConvergenceEps bounds the incremental solver's cost delta loop.
	costConvergenceEps = 1e-4
	// refineIterCap bounds the number of outer refine passes.
	refineIterCap = 100
)
