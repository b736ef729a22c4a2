package tree

// Link is one end of an edge, seen from one of its nodes.
type Link struct {
	index int
	next  int
	outer int
	node  int
	edge  int
}

// Index returns the position of the link in its tree.
func (l *Link) Index() int { return l.index }

// Next returns the index of the following link in the ring of the same node.
func (l *Link) Next() int { return l.next }

// Outer returns the index of the link at the other end of the edge.
func (l *Link) Outer() int { return l.outer }

// Node returns the index of the node this link belongs to.
func (l *Link) Node() int { return l.node }

// Edge returns the index of the edge this link belongs to.
func (l *Link) Edge() int { return l.edge }

// Node is a vertex of the tree.
type Node struct {
	index   int
	primary int

	// Data holds the payload of the node.
	Data NodeData
}

// Index returns the position of the node in its tree.
func (n *Node) Index() int { return n.index }

// PrimaryLink returns the index of the link pointing toward the root.
// For the root node this is the root link.
func (n *Node) PrimaryLink() int { return n.primary }

// Edge connects a parent node and a child node.
type Edge struct {
	index     int
	primary   int
	secondary int

	// Data holds the payload of the edge.
	Data EdgeData
}

// Index returns the position of the edge in its tree.
func (e *Edge) Index() int { return e.index }

// PrimaryLink returns the index of the link at the rootward end of the edge.
func (e *Edge) PrimaryLink() int { return e.primary }

// SecondaryLink returns the index of the link at the leafward end of the edge.
func (e *Edge) SecondaryLink() int { return e.secondary }

// Tree is a rooted view of an unrooted topology.
type Tree struct {
	links []Link
	nodes []Node
	edges []Edge
	root  int
}

// RootLink returns the index of the root link.
func (t *Tree) RootLink() int { return t.root }

// RootNode returns the index of the root node.
func (t *Tree) RootNode() int { return t.links[t.root].node }

// LinkCount returns the number of links, which is twice the number of edges.
func (t *Tree) LinkCount() int { return len(t.links) }

// NodeCount returns the number of nodes.
func (t *Tree) NodeCount() int { return len(t.nodes) }

// EdgeCount returns the number of edges.
func (t *Tree) EdgeCount() int { return len(t.edges) }

// Link returns the link at index i.
func (t *Tree) Link(i int) *Link { return &t.links[i] }

// Node returns the node at index i.
func (t *Tree) Node(i int) *Node { return &t.nodes[i] }

// Edge returns the edge at index i.
func (t *Tree) Edge(i int) *Edge { return &t.edges[i] }

// Links returns all links. The slice must not be modified.
func (t *Tree) Links() []Link { return t.links }

// Nodes returns all nodes. Payloads may be modified, the slice itself must not.
func (t *Tree) Nodes() []Node { return t.nodes }

// Edges returns all edges. Payloads may be modified, the slice itself must not.
func (t *Tree) Edges() []Edge { return t.edges }

// NextOf returns the index of the link following link i in its node ring.
func (t *Tree) NextOf(i int) int { return t.links[i].next }

// OuterOf returns the index of the link at the other end of the edge of link i.
func (t *Tree) OuterOf(i int) int { return t.links[i].outer }

// IsRoot reports whether node n is the root.
func (t *Tree) IsRoot(n int) bool {
	return t.nodes[n].primary == t.root
}

// Degree returns the number of links of node n, which equals its number of edges.
func (t *Tree) Degree(n int) int {
	start := t.nodes[n].primary
	count := 1
	for l := t.links[start].next; l != start; l = t.links[l].next {
		count++
	}
	return count
}

// IsLeaf reports whether node n has a single edge.
// A root with one child is not a leaf.
func (t *Tree) IsLeaf(n int) bool {
	primary := t.nodes[n].primary
	return t.links[primary].next == primary && !t.IsRoot(n)
}

// IsInner reports whether node n is not a leaf.
func (t *Tree) IsInner(n int) bool {
	return !t.IsLeaf(n)
}

// ChildCount returns the number of children of node n.
func (t *Tree) ChildCount(n int) int {
	if t.IsRoot(n) {
		return t.Degree(n)
	}
	return t.Degree(n) - 1
}

// ParentLink returns the index of the link in the parent ring that leads to node n,
// or -1 for the root.
func (t *Tree) ParentLink(n int) int {
	if t.IsRoot(n) {
		return -1
	}
	return t.links[t.nodes[n].primary].outer
}

// ParentNode returns the index of the parent of node n, or -1 for the root.
func (t *Tree) ParentNode(n int) int {
	pl := t.ParentLink(n)
	if pl < 0 {
		return -1
	}
	return t.links[pl].node
}

// ParentEdge returns the index of the edge between node n and its parent,
// or -1 for the root.
func (t *Tree) ParentEdge(n int) int {
	if t.IsRoot(n) {
		return -1
	}
	return t.links[t.nodes[n].primary].edge
}

// ChildLinks returns the links of node n that lead to its children, in ring order.
func (t *Tree) ChildLinks(n int) []int {
	primary := t.nodes[n].primary

	var result []int
	if t.IsRoot(n) {
		result = append(result, primary)
	}
	for l := t.links[primary].next; l != primary; l = t.links[l].next {
		result = append(result, l)
	}
	return result
}

// Children returns the child nodes of node n, in ring order.
func (t *Tree) Children(n int) []int {
	links := t.ChildLinks(n)
	result := make([]int, len(links))
	for i, l := range links {
		result[i] = t.links[t.links[l].outer].node
	}
	return result
}

// PrimaryNode returns the rootward node of edge e.
func (t *Tree) PrimaryNode(e int) int {
	return t.links[t.edges[e].primary].node
}

// SecondaryNode returns the leafward node of edge e.
func (t *Tree) SecondaryNode(e int) int {
	return t.links[t.edges[e].secondary].node
}

// EdgeBetween returns the edge connecting nodes a and b, if they are adjacent.
func (t *Tree) EdgeBetween(a, b int) (int, bool) {
	start := t.nodes[a].primary
	l := start
	for {
		if t.links[t.links[l].outer].node == b {
			return t.links[l].edge, true
		}
		l = t.links[l].next
		if l == start {
			return -1, false
		}
	}
}
