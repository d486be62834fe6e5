// Copyright ©2025 curioloop. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package rect generates non-overlap separation constraints for a set
// of axis-aligned rectangles, for direct consumption by vpsc.Solver or
// vpsc.IncSolver. It is an "adjacent generator": it depends only on
// the core's exported Variable/Constraint types and produces no
// solver internals of its own.
package rect

// Rectangle is an axis-aligned bounding box.
type Rectangle struct {
	MinX, MaxX float64
	MinY, MaxY float64
}

func (r Rectangle) centerX() float64   { return (r.MinX + r.MaxX) / 2 }
func (r Rectangle) centerY() float64   { return (r.MinY + r.MaxY) / 2 }
func (r Rectangle) halfWidth() float64 { return (r.MaxX - r.MinX) / 2 }
func (r Rectangle) halfHeight() float64 {
	return (r.MaxY - r.MinY) / 2
}
