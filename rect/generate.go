// Copyright ©2025 curioloop. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rect

import (
	"sort"

	"github.com/webcola-go/vpsc"
)

// strictEpsilon widens the required gap slightly so that "strict"
// mode leaves no rectangles exactly touching after a solve.
const strictEpsilon = 1e-6

// event is a scanline open/close marker for one rectangle.
type event struct {
	idx    int
	pos    float64
	isOpen bool
}

// axis abstracts over the X and Y sweeps: span gives the interval a
// rectangle occupies along the sweep axis (used to order open/close
// events), center and halfExtent describe its extent along the
// perpendicular, constrained axis.
type axis struct {
	span       func(Rectangle) (open, close float64)
	center     func(Rectangle) float64
	halfExtent func(Rectangle) float64
}

var xAxis = axis{
	span:       func(r Rectangle) (float64, float64) { return r.MinY, r.MaxY },
	center:     Rectangle.centerX,
	halfExtent: Rectangle.halfWidth,
}

var yAxis = axis{
	span:       func(r Rectangle) (float64, float64) { return r.MinX, r.MaxX },
	center:     Rectangle.centerY,
	halfExtent: Rectangle.halfHeight,
}

// GenerateXConstraints emits non-overlap constraints along X between
// rectangles that overlap in Y: each rectangle, as it enters the
// scanline, is constrained against its immediate left and right
// neighbours by X center. Overlapping pairs that are never adjacent get
// no direct constraint of their own. vars must be indexed the same as
// rects. When strict is true, the required gap is widened by a small
// epsilon so rectangles cannot end up exactly touching.
func GenerateXConstraints(rects []Rectangle, vars []*vpsc.Variable, strict bool) []*vpsc.Constraint {
	return sweep(rects, vars, strict, xAxis)
}

// GenerateYConstraints is GenerateXConstraints's Y-axis counterpart.
func GenerateYConstraints(rects []Rectangle, vars []*vpsc.Variable, strict bool) []*vpsc.Constraint {
	return sweep(rects, vars, strict, yAxis)
}

// sweep runs a classic scanline pass along ax.span: rectangles enter
// and leave an "active" set ordered by ax.center, and each newly
// opened rectangle is constrained against its immediate left/right
// neighbors in that order. This is the standard way to avoid emitting
// an O(n²) constraint set when only adjacent rectangles actually need
// separating.
func sweep(rects []Rectangle, vars []*vpsc.Variable, strict bool, ax axis) []*vpsc.Constraint {
	n := len(rects)
	events := make([]event, 0, 2*n)
	for i, r := range rects {
		open, close := ax.span(r)
		events = append(events, event{i, open, true}, event{i, close, false})
	}
	sort.Slice(events, func(a, b int) bool {
		if events[a].pos != events[b].pos {
			return events[a].pos < events[b].pos
		}
		// Close before open at the same coordinate: rectangles that
		// merely touch along the sweep axis do not overlap.
		return !events[a].isOpen && events[b].isOpen
	})

	epsilon := 0.0
	if strict {
		epsilon = strictEpsilon
	}

	active := make([]int, 0, n)
	var cons []*vpsc.Constraint
	for _, e := range events {
		if e.isOpen {
			pos := ax.center(rects[e.idx])
			i := sort.Search(len(active), func(k int) bool {
				return ax.center(rects[active[k]]) >= pos
			})
			if i > 0 {
				left := active[i-1]
				gap := ax.halfExtent(rects[left]) + ax.halfExtent(rects[e.idx]) + epsilon
				cons = append(cons, vpsc.NewConstraint(vars[left], vars[e.idx], gap))
			}
			if i < len(active) {
				right := active[i]
				gap := ax.halfExtent(rects[e.idx]) + ax.halfExtent(rects[right]) + epsilon
				cons = append(cons, vpsc.NewConstraint(vars[e.idx], vars[right], gap))
			}
			active = append(active, 0)
			copy(active[i+1:], active[i:])
			active[i] = e.idx
		} else {
			for k, v := range active {
				if v == e.idx {
					active = append(active[:k], active[k+1:]...)
					break
				}
			}
		}
	}
	return cons
}
