// Copyright ©2025 curioloop. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vpsc

// blockSet owns the live blocks over a fixed set of variables. It
// starts with one singleton block per variable; merges tombstone the
// absorbed block, splits tombstone the source block and have their two
// new halves inserted, and cleanup sweeps the tombstones.
type blockSet struct {
	vars   []*Variable
	blocks []*block
}

// newBlockSet creates one singleton block per variable.
func newBlockSet(vars []*Variable) *blockSet {
	bs := &blockSet{
		vars:   vars,
		blocks: make([]*block, 0, len(vars)),
	}
	for _, v := range vars {
		bs.blocks = append(bs.blocks, newBlock(v))
	}
	return bs
}

// insert takes ownership of a newly created block (from a split).
func (bs *blockSet) insert(b *block) {
	bs.blocks = append(bs.blocks, b)
}

// cleanup drops blocks that merge/split marked deleted.
func (bs *blockSet) cleanup() {
	live := bs.blocks[:0]
	for _, b := range bs.blocks {
		if !b.deleted {
			live = append(live, b)
		}
	}
	bs.blocks = live
}

// cost sums each live block's weighted squared displacement.
func (bs *blockSet) cost() float64 {
	var c float64
	for _, b := range bs.blocks {
		c += b.cost()
	}
	return c
}

// totalOrder returns the variables in an order consistent with the
// input constraint DAG (each variable after every variable it has an
// incoming constraint from), computed by Kahn's algorithm. Variables
// left over from a cycle are appended in input order; satisfy's final
// verification is what actually detects the resulting infeasibility.
func (bs *blockSet) totalOrder() []*Variable {
	indeg := make(map[*Variable]int, len(bs.vars))
	for _, v := range bs.vars {
		indeg[v] = len(v.in)
	}

	queue := make([]*Variable, 0, len(bs.vars))
	for _, v := range bs.vars {
		if indeg[v] == 0 {
			queue = append(queue, v)
		}
	}

	order := make([]*Variable, 0, len(bs.vars))
	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		order = append(order, v)
		for _, c := range v.out {
			r := c.Right
			indeg[r]--
			if indeg[r] == 0 {
				queue = append(queue, r)
			}
		}
	}

	if len(order) < len(bs.vars) {
		seen := make(map[*Variable]bool, len(order))
		for _, v := range order {
			seen[v] = true
		}
		for _, v := range bs.vars {
			if !seen[v] {
				order = append(order, v)
			}
		}
	}
	return order
}
