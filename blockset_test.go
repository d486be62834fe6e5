// Copyright ©2025 curioloop. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vpsc

import "testing"

func TestBlockSetTotalOrderRespectsDAG(t *testing.T) {
	x0, x1, x2 := NewVariable(0, 1), NewVariable(0, 1), NewVariable(0, 1)
	c1 := NewConstraint(x0, x1, 1)
	c2 := NewConstraint(x1, x2, 1)
	x0.out = []*Constraint{c1}
	x1.in = []*Constraint{c1}
	x1.out = []*Constraint{c2}
	x2.in = []*Constraint{c2}

	bs := newBlockSet([]*Variable{x2, x0, x1})
	order := bs.totalOrder()

	pos := make(map[*Variable]int, len(order))
	for i, v := range order {
		pos[v] = i
	}
	if pos[x0] >= pos[x1] || pos[x1] >= pos[x2] {
		t.Fatalf("total order %v does not respect x0 < x1 < x2", order)
	}
}

func TestBlockSetTotalOrderToleratesCycle(t *testing.T) {
	x0, x1, x2 := NewVariable(0, 1), NewVariable(0, 1), NewVariable(0, 1)
	c1 := NewConstraint(x0, x1, 1)
	c2 := NewConstraint(x1, x2, 1)
	c3 := NewConstraint(x2, x0, 1)
	x0.out, x0.in = []*Constraint{c1}, []*Constraint{c3}
	x1.out, x1.in = []*Constraint{c2}, []*Constraint{c1}
	x2.out, x2.in = []*Constraint{c3}, []*Constraint{c2}

	bs := newBlockSet([]*Variable{x0, x1, x2})
	order := bs.totalOrder()
	if len(order) != 3 {
		t.Fatalf("len(order) = %d, want 3 (cyclic residue must still be emitted)", len(order))
	}
}

func TestBlockSetCleanupDropsDeleted(t *testing.T) {
	x0, x1 := NewVariable(0, 1), NewVariable(0, 1)
	bs := newBlockSet([]*Variable{x0, x1})
	bs.blocks[0].deleted = true
	bs.cleanup()

	if len(bs.blocks) != 1 {
		t.Fatalf("len(bs.blocks) = %d, want 1", len(bs.blocks))
	}
}

func TestBlockSetCostSumsBlocks(t *testing.T) {
	x0 := NewVariable(5, 1)
	x1 := NewVariable(3, 2)
	bs := newBlockSet([]*Variable{x0, x1})

	// each singleton block sits exactly at its desired position.
	if got := bs.cost(); got != 0 {
		t.Fatalf("cost() = %v, want 0", got)
	}
}
