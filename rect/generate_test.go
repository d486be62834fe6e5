// Copyright ©2025 curioloop. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rect

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/webcola-go/vpsc"
)

func TestGenerateXConstraintsSeparatesOverlappingPair(t *testing.T) {
	rects := []Rectangle{
		{MinX: 0, MaxX: 10, MinY: 0, MaxY: 10},
		{MinX: 5, MaxX: 15, MinY: 2, MaxY: 8}, // overlaps the first in both X and Y
	}
	vars := []*vpsc.Variable{
		vpsc.NewVariable(rects[0].centerX(), 1),
		vpsc.NewVariable(rects[1].centerX(), 1),
	}

	cons := GenerateXConstraints(rects, vars, false)
	require.Len(t, cons, 1)
	assert.Equal(t, vars[0], cons[0].Left)
	assert.Equal(t, vars[1], cons[0].Right)
	assert.InDelta(t, 10.0, cons[0].Gap, 1e-9) // halfWidth 5 + halfWidth 5

	s := vpsc.NewSolver(vars, cons)
	_, err := s.Solve()
	require.NoError(t, err)
	assert.GreaterOrEqual(t, vars[1].FinalPosition-vars[0].FinalPosition, cons[0].Gap-1e-9)
}

func TestGenerateXConstraintsIgnoresNonOverlappingY(t *testing.T) {
	rects := []Rectangle{
		{MinX: 0, MaxX: 10, MinY: 0, MaxY: 10},
		{MinX: 5, MaxX: 15, MinY: 20, MaxY: 30}, // disjoint in Y
	}
	vars := []*vpsc.Variable{
		vpsc.NewVariable(rects[0].centerX(), 1),
		vpsc.NewVariable(rects[1].centerX(), 1),
	}

	cons := GenerateXConstraints(rects, vars, false)
	assert.Empty(t, cons)
}

func TestGenerateYConstraintsStrictWidensGap(t *testing.T) {
	rects := []Rectangle{
		{MinX: 0, MaxX: 10, MinY: 0, MaxY: 10},
		{MinX: 2, MaxX: 8, MinY: 5, MaxY: 15},
	}
	vars := []*vpsc.Variable{
		vpsc.NewVariable(rects[0].centerY(), 1),
		vpsc.NewVariable(rects[1].centerY(), 1),
	}

	loose := GenerateYConstraints(rects, vars, false)
	strict := GenerateYConstraints(rects, vars, true)
	require.Len(t, loose, 1)
	require.Len(t, strict, 1)
	assert.Greater(t, strict[0].Gap, loose[0].Gap)
}
