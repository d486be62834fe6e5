// Copyright ©2025 curioloop. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vpsc

import "testing"

func TestConstraintHeapOrdersBySlackAscending(t *testing.T) {
	mk := func(gap float64) *Constraint {
		l := NewVariable(0, 1)
		r := NewVariable(0, 1)
		return NewConstraint(l, r, gap)
	}
	// slack = 0 - 0 - gap = -gap, so larger gap ⇒ smaller slack.
	cons := []*Constraint{mk(1), mk(10), mk(5)}
	h := newConstraintHeap(cons)

	want := []float64{-10, -5, -1}
	for i, w := range want {
		c := h.popMin()
		if c == nil {
			t.Fatalf("popMin() returned nil at step %d", i)
		}
		if got := c.Slack(); got != w {
			t.Fatalf("step %d: Slack() = %v, want %v", i, got, w)
		}
	}
	if c := h.popMin(); c != nil {
		t.Fatalf("popMin() on empty heap = %v, want nil", c)
	}
}

func TestConstraintHeapNilSafe(t *testing.T) {
	var h *constraintHeap
	if c := h.popMin(); c != nil {
		t.Fatalf("popMin() on nil heap = %v, want nil", c)
	}
}
