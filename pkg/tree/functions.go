package tree

// Clone returns a deep copy of t. Payloads are copied through their Clone methods.
func Clone(t *Tree) *Tree {
	c := &Tree{
		links: make([]Link, len(t.links)),
		nodes: make([]Node, len(t.nodes)),
		edges: make([]Edge, len(t.edges)),
		root:  t.root,
	}

	copy(c.links, t.links)
	copy(c.nodes, t.nodes)
	copy(c.edges, t.edges)

	for i := range c.nodes {
		if c.nodes[i].Data != nil {
			c.nodes[i].Data = c.nodes[i].Data.CloneNodeData()
		}
	}
	for i := range c.edges {
		if c.edges[i].Data != nil {
			c.edges[i].Data = c.edges[i].Data.CloneEdgeData()
		}
	}

	return c
}

// MatchEdges walks a and b in lockstep preorder and returns, for every edge index of
// a, the index of the corresponding edge of b. The second result is false if the
// topologies differ, in which case the mapping is nil.
func MatchEdges(a, b *Tree) ([]int, bool) {
	if len(a.nodes) != len(b.nodes) || len(a.edges) != len(b.edges) {
		return nil, false
	}

	mapping := make([]int, len(a.edges))
	type pair struct{ a, b int }
	stack := []pair{{a.RootNode(), b.RootNode()}}

	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		ca := a.Children(p.a)
		cb := b.Children(p.b)
		if len(ca) != len(cb) {
			return nil, false
		}

		for i := range ca {
			mapping[a.ParentEdge(ca[i])] = b.ParentEdge(cb[i])
			stack = append(stack, pair{ca[i], cb[i]})
		}
	}

	return mapping, true
}

// IdenticalTopology reports whether a and b have the same shape, including child order.
// Payloads are not compared.
func IdenticalTopology(a, b *Tree) bool {
	_, ok := MatchEdges(a, b)
	return ok
}

// NodeDepths returns the number of edges between the root and every node.
func NodeDepths(t *Tree) []int {
	depths := make([]int, len(t.nodes))
	for v := range Preorder(t) {
		depths[v.Node] = v.Depth
	}
	return depths
}

// Height returns the largest number of edges between the root and a leaf.
func Height(t *Tree) int {
	height := 0
	for v := range Preorder(t) {
		height = max(height, v.Depth)
	}
	return height
}

// LeafCount returns the number of leaves.
func LeafCount(t *Tree) int {
	count := 0
	for i := range t.nodes {
		if t.IsLeaf(i) {
			count++
		}
	}
	return count
}

// InnerCount returns the number of inner nodes, the root included.
func InnerCount(t *Tree) int {
	return len(t.nodes) - LeafCount(t)
}

// MaxDegree returns the highest node degree.
func MaxDegree(t *Tree) int {
	result := 0
	for i := range t.nodes {
		result = max(result, t.Degree(i))
	}
	return result
}

// IsBifurcating reports whether no node has more than three edges.
// A trifurcation at the root, as written for unrooted trees, is allowed.
func IsBifurcating(t *Tree) bool {
	return MaxDegree(t) <= 3
}

// LeafNodes returns the indices of all leaves, in preorder.
func LeafNodes(t *Tree) []int {
	var result []int
	for v := range Preorder(t) {
		if t.IsLeaf(v.Node) {
			result = append(result, v.Node)
		}
	}
	return result
}
