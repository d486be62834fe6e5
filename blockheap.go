// Copyright ©2025 curioloop. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vpsc

import "container/heap"

// constraintHeap is a min-heap of constraints ordered by ascending
// slack. It is ephemeral scratch state rebuilt whenever a block's
// boundary needs re-examining, never persisted across merges/splits.
type constraintHeap []*Constraint

func (h constraintHeap) Len() int { return len(h) }
func (h constraintHeap) Less(i, j int) bool {
	return h[i].Slack() < h[j].Slack()
}
func (h constraintHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].heapIndex, h[j].heapIndex = i, j
}
func (h *constraintHeap) Push(x any) {
	c := x.(*Constraint)
	c.heapIndex = len(*h)
	*h = append(*h, c)
}
func (h *constraintHeap) Pop() any {
	old := *h
	n := len(old)
	c := old[n-1]
	old[n-1] = nil
	c.heapIndex = -1
	*h = old[:n-1]
	return c
}

// newConstraintHeap builds a min-heap over cons, ordered by slack.
func newConstraintHeap(cons []*Constraint) *constraintHeap {
	h := make(constraintHeap, 0, len(cons))
	for _, c := range cons {
		h = append(h, c)
	}
	heap.Init(&h)
	return &h
}

func (h *constraintHeap) popMin() *Constraint {
	if h == nil || len(*h) == 0 {
		return nil
	}
	return heap.Pop(h).(*Constraint)
}
