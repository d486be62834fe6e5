// Copyright ©2025 curioloop. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vpsc

// block is a maximal connected subgraph of variables joined by active
// constraints. Its members' relative positions are frozen at their
// offsets; block.position is the single degree of freedom left to
// optimize.
type block struct {
	vars  []*Variable
	edges []*Constraint // the active tree

	position float64
	weight   float64

	deleted bool

	// in, out are lazily built, ephemeral min-heaps of inactive
	// boundary constraints ordered by slack; nil until
	// setUpInConstraints/setUpOutConstraints is called, and stale as
	// soon as the block's membership changes.
	in, out *constraintHeap
}

// newBlock creates a singleton block owning v.
func newBlock(v *Variable) *block {
	b := &block{vars: []*Variable{v}}
	v.offset = 0
	v.block = b
	b.recompute()
	return b
}

// recompute recomputes position and weight from the block's current
// members and their offsets, per spec:
//
//	position = Σ wᵢ(desiredᵢ - offsetᵢ/scaleᵢ)·scaleᵢ / Σ wᵢ·scaleᵢ²
func (b *block) recompute() {
	var num, den float64
	for _, v := range b.vars {
		s := v.scale()
		num += v.Weight * (v.DesiredPosition - v.offset/s) * s
		den += v.Weight * s * s
	}
	b.weight = den
	if den == 0 {
		b.position = 0
		return
	}
	b.position = num / den
}

// cost returns the weighted squared displacement of this block's
// members from their desired positions.
func (b *block) cost() float64 {
	var c float64
	for _, v := range b.vars {
		d := v.Position() - v.DesiredPosition
		c += v.Weight * d * d
	}
	return c
}

// merge absorbs other into b over the newly-activating constraint c,
// whose Left endpoint must belong to b and whose Right endpoint must
// belong to other. other is marked deleted; c is marked active.
func (b *block) merge(other *block, c *Constraint) {
	delta := (c.Left.offset + c.Gap) - c.Right.offset
	for _, v := range other.vars {
		v.offset += delta
		v.block = b
	}
	b.vars = append(b.vars, other.vars...)
	b.edges = append(b.edges, other.edges...)
	b.edges = append(b.edges, c)
	c.active = true
	other.deleted = true
	b.in, b.out = nil, nil
	b.recompute()
}

// adjacency returns, for every variable in the block, the active edges
// incident to it (both directions), for undirected tree traversal.
func (b *block) adjacency() map[*Variable][]*Constraint {
	adj := make(map[*Variable][]*Constraint, len(b.vars))
	for _, c := range b.edges {
		adj[c.Left] = append(adj[c.Left], c)
		adj[c.Right] = append(adj[c.Right], c)
	}
	return adj
}

func otherEnd(c *Constraint, v *Variable) *Variable {
	if c.Left == v {
		return c.Right
	}
	return c.Left
}

// computeLM performs a single rooted post-order DFS over the active
// tree and returns, for every non-equality active edge, its Lagrange
// multiplier:
//
//	lm(u→v) = Σ_{i ∈ subtree(v)} wᵢ·(positionᵢ - desiredᵢ)
//
// where subtree(v) is the component containing the edge's Right
// endpoint after removing the edge. Equality edges are excluded, per
// spec (they are never split candidates).
func (b *block) computeLM() map[*Constraint]float64 {
	if len(b.vars) == 0 {
		return nil
	}
	adj := b.adjacency()
	visited := make(map[*Variable]bool, len(b.vars))
	lm := make(map[*Constraint]float64, len(b.edges))

	var dfs func(v *Variable) float64
	dfs = func(v *Variable) float64 {
		visited[v] = true
		sum := v.Weight * (v.Position() - v.DesiredPosition)
		for _, c := range adj[v] {
			next := otherEnd(c, v)
			if visited[next] {
				continue
			}
			childSum := dfs(next)
			sum += childSum
			if !c.Equality {
				if c.Right == next {
					lm[c] = childSum
				} else {
					lm[c] = -childSum
				}
				c.lm = lm[c]
			}
		}
		return sum
	}
	dfs(b.vars[0])
	return lm
}

// findMinLM returns the internal active edge with the smallest (most
// negative) Lagrange multiplier and its value, or a nil constraint if
// the block has no non-equality active edges. Callers compare the
// returned value against lagrangianTolerance themselves.
func (b *block) findMinLM() (*Constraint, float64) {
	lm := b.computeLM()
	var (
		minC  *Constraint
		minLM float64
	)
	first := true
	for c, v := range lm {
		if first || v < minLM {
			minC, minLM = c, v
			first = false
		}
	}
	return minC, minLM
}

// isActiveDirectedPathBetween reports whether a directed path
// u → ... → v exists through the block's active tree, following each
// edge only from its Left endpoint to its Right endpoint.
func (b *block) isActiveDirectedPathBetween(u, v *Variable) bool {
	if u == v {
		return true
	}
	fwd := make(map[*Variable][]*Variable, len(b.vars))
	for _, c := range b.edges {
		fwd[c.Left] = append(fwd[c.Left], c.Right)
	}
	visited := map[*Variable]bool{u: true}
	stack := []*Variable{u}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, next := range fwd[cur] {
			if next == v {
				return true
			}
			if !visited[next] {
				visited[next] = true
				stack = append(stack, next)
			}
		}
	}
	return false
}

// pathEdges returns the active tree edges on the (unique) undirected
// path between u and v, or nil if u == v.
func (b *block) pathEdges(u, v *Variable) []*Constraint {
	if u == v {
		return nil
	}
	adj := b.adjacency()
	type step struct {
		v    *Variable
		via  *Constraint
		prev *step
	}
	visited := map[*Variable]bool{u: true}
	queue := []*step{{v: u}}
	var found *step
	for len(queue) > 0 && found == nil {
		cur := queue[0]
		queue = queue[1:]
		for _, c := range adj[cur.v] {
			next := otherEnd(c, cur.v)
			if visited[next] {
				continue
			}
			visited[next] = true
			s := &step{v: next, via: c, prev: cur}
			if next == v {
				found = s
				break
			}
			queue = append(queue, s)
		}
	}
	if found == nil {
		return nil
	}
	var path []*Constraint
	for s := found; s.via != nil; s = s.prev {
		path = append(path, s.via)
	}
	return path
}

// split partitions the block by removing internal active edge c,
// returning the two resulting blocks: l contains c.Left, r contains
// c.Right. Offsets are preserved within each half; c is marked
// inactive.
func (b *block) split(c *Constraint) (l, r *block) {
	adj := b.adjacency()
	collect := func(start *Variable) []*Variable {
		visited := map[*Variable]bool{start: true}
		stack := []*Variable{start}
		var out []*Variable
		for len(stack) > 0 {
			cur := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			out = append(out, cur)
			for _, e := range adj[cur] {
				if e == c {
					continue
				}
				next := otherEnd(e, cur)
				if !visited[next] {
					visited[next] = true
					stack = append(stack, next)
				}
			}
		}
		return out
	}

	lVars := collect(c.Left)
	rVars := collect(c.Right)
	lSet := make(map[*Variable]bool, len(lVars))
	for _, v := range lVars {
		lSet[v] = true
	}

	l = &block{vars: lVars}
	r = &block{vars: rVars}
	for _, v := range lVars {
		v.block = l
	}
	for _, v := range rVars {
		v.block = r
	}
	for _, e := range b.edges {
		if e == c {
			continue
		}
		if lSet[e.Left] {
			l.edges = append(l.edges, e)
		} else {
			r.edges = append(r.edges, e)
		}
	}
	c.active = false
	b.deleted = true
	l.recompute()
	r.recompute()
	return l, r
}

// splitBetween is used when a violated cross-constraint v.Left → v.Right
// lands on two variables already in the same block b, and activating it
// would not close a cycle. It finds the active edge on the path between
// u and v with the most negative Lagrange multiplier and splits there,
// returning the freed constraint and the two halves. It returns a nil
// constraint if no non-equality edge lies on the path (the caller then
// marks the violated constraint unsatisfiable).
func (b *block) splitBetween(u, v *Variable) (freed *Constraint, l, r *block) {
	path := b.pathEdges(u, v)
	if len(path) == 0 {
		return nil, nil, nil
	}
	lm := b.computeLM()
	var (
		best   *Constraint
		bestLM float64
	)
	first := true
	for _, c := range path {
		v, ok := lm[c]
		if !ok { // equality edge, excluded from candidacy
			continue
		}
		if first || v < bestLM {
			best, bestLM = c, v
			first = false
		}
	}
	if best == nil {
		return nil, nil, nil
	}
	l, r = b.split(best)
	return best, l, r
}

// setUpInConstraints (re)builds the min-heap of inactive constraints
// entering this block from another block (this block's variable is the
// Right endpoint).
func (b *block) setUpInConstraints() {
	b.in = newConstraintHeap(b.crossing(func(c *Constraint, v *Variable) bool {
		return c.Right == v
	}))
}

// setUpOutConstraints (re)builds the min-heap of inactive constraints
// leaving this block toward another block (this block's variable is the
// Left endpoint).
func (b *block) setUpOutConstraints() {
	b.out = newConstraintHeap(b.crossing(func(c *Constraint, v *Variable) bool {
		return c.Left == v
	}))
}

// crossing collects inactive constraints incident to one of b's
// variables, filtered by side, whose other endpoint belongs to a
// different (non-deleted) block.
func (b *block) crossing(side func(c *Constraint, v *Variable) bool) []*Constraint {
	var out []*Constraint
	seen := make(map[*Constraint]bool)
	consider := func(v *Variable, c *Constraint) {
		if c.active || seen[c] || !side(c, v) || otherEnd(c, v).block == b {
			return
		}
		seen[c] = true
		out = append(out, c)
	}
	for _, v := range b.vars {
		for _, c := range v.in {
			consider(v, c)
		}
		for _, c := range v.out {
			consider(v, c)
		}
	}
	return out
}
