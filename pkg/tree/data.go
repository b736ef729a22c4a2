package tree

// NodeData is the payload capability of a node.
// Specialized tree kinds attach their own types; the topology only needs to clone them.
type NodeData interface {
	CloneNodeData() NodeData
}

// EdgeData is the payload capability of an edge.
type EdgeData interface {
	CloneEdgeData() EdgeData
}

// DefaultNodeData stores the name of a node.
type DefaultNodeData struct {
	Name string
}

// CloneNodeData returns a copy of the payload.
func (d *DefaultNodeData) CloneNodeData() NodeData {
	c := *d
	return &c
}

// DefaultEdgeData stores the branch length of an edge.
type DefaultEdgeData struct {
	BranchLength float64
}

// CloneEdgeData returns a copy of the payload.
func (d *DefaultEdgeData) CloneEdgeData() EdgeData {
	c := *d
	return &c
}

// NewDefaultNodeData returns an empty DefaultNodeData.
func NewDefaultNodeData() NodeData {
	return &DefaultNodeData{}
}

// NewDefaultEdgeData returns a DefaultEdgeData with zero branch length.
func NewDefaultEdgeData() EdgeData {
	return &DefaultEdgeData{}
}

// NodeDataAs returns the payload of node n as T.
func NodeDataAs[T NodeData](t *Tree, n int) (T, bool) {
	d, ok := t.nodes[n].Data.(T)
	return d, ok
}

// EdgeDataAs returns the payload of edge e as T.
func EdgeDataAs[T EdgeData](t *Tree, e int) (T, bool) {
	d, ok := t.edges[e].Data.(T)
	return d, ok
}

// DataIs reports whether every node payload of t is an N and every edge payload is an E.
func DataIs[N NodeData, E EdgeData](t *Tree) bool {
	for i := range t.nodes {
		if _, ok := t.nodes[i].Data.(N); !ok {
			return false
		}
	}
	for i := range t.edges {
		if _, ok := t.edges[i].Data.(E); !ok {
			return false
		}
	}
	return true
}

// NamedData is implemented by node payloads that carry a name.
// DefaultNodeData implements it, and so does every payload that embeds it.
type NamedData interface {
	NodeName() string
	SetNodeName(name string)
}

// LengthData is implemented by edge payloads that carry a branch length.
// DefaultEdgeData implements it, and so does every payload that embeds it.
type LengthData interface {
	EdgeBranchLength() float64
	SetEdgeBranchLength(length float64)
}

// NodeName returns the name of node n, or "" if its payload has none.
func NodeName(t *Tree, n int) string {
	if named, ok := t.nodes[n].Data.(NamedData); ok {
		return named.NodeName()
	}
	return ""
}

// BranchLength returns the branch length of edge e, or 0 if its payload has none.
func BranchLength(t *Tree, e int) float64 {
	if bl, ok := t.edges[e].Data.(LengthData); ok {
		return bl.EdgeBranchLength()
	}
	return 0
}

// NodeName returns the stored name.
func (d *DefaultNodeData) NodeName() string {
	return d.Name
}

// SetNodeName replaces the stored name.
func (d *DefaultNodeData) SetNodeName(name string) {
	d.Name = name
}

// EdgeBranchLength returns the stored branch length.
func (d *DefaultEdgeData) EdgeBranchLength() float64 {
	return d.BranchLength
}

// SetEdgeBranchLength replaces the stored branch length.
func (d *DefaultEdgeData) SetEdgeBranchLength(length float64) {
	d.BranchLength = length
}
