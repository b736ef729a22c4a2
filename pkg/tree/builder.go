package tree

import (
	"errors"
	"fmt"
)

// ErrEmptyTree is returned when building a tree without a root or without edges.
var ErrEmptyTree = errors.New("tree has no edges")

// Builder assembles a Tree node by node.
// The tree under construction is never exposed; Build hands out the finished tree
// only after its invariants were checked.
type Builder struct {
	tree    Tree
	last    []int
	hasRoot bool
}

// NewBuilder creates an empty builder.
func NewBuilder() *Builder {
	return &Builder{
		tree: Tree{root: -1},
	}
}

// AddRoot creates the root node and returns its index.
// A nil payload is replaced by an empty DefaultNodeData.
func (b *Builder) AddRoot(data NodeData) int {
	if b.hasRoot {
		panic("tree: builder already has a root")
	}
	b.hasRoot = true
	return b.addNode(data)
}

// AddChild creates a node below parent, connected by a new edge, and returns the
// index of the new node. Children keep their insertion order in the parent ring.
// Nil payloads are replaced by empty default payloads.
func (b *Builder) AddChild(parent int, nodeData NodeData, edgeData EdgeData) int {
	if parent < 0 || parent >= len(b.tree.nodes) {
		panic(fmt.Sprintf("tree: parent node %d does not exist", parent))
	}
	if edgeData == nil {
		edgeData = NewDefaultEdgeData()
	}

	child := b.addNode(nodeData)
	edge := len(b.tree.edges)
	parentLink := b.addLink(parent, edge)
	childLink := b.addLink(child, edge)

	b.tree.links[parentLink].outer = childLink
	b.tree.links[childLink].outer = parentLink

	b.tree.edges = append(b.tree.edges, Edge{
		index:     edge,
		primary:   parentLink,
		secondary: childLink,
		Data:      edgeData,
	})

	// The child starts with a ring of its primary link only.
	b.tree.nodes[child].primary = childLink
	b.tree.links[childLink].next = childLink
	b.last[child] = childLink

	if b.tree.nodes[parent].primary < 0 {
		// First child of the root: its link becomes the root link.
		b.tree.nodes[parent].primary = parentLink
		b.tree.links[parentLink].next = parentLink
		b.tree.root = parentLink
	} else {
		last := b.last[parent]
		b.tree.links[parentLink].next = b.tree.links[last].next
		b.tree.links[last].next = parentLink
	}
	b.last[parent] = parentLink

	return child
}

// NodeCount returns the number of nodes added so far.
func (b *Builder) NodeCount() int {
	return len(b.tree.nodes)
}

// Build returns the finished tree and resets the builder.
// It fails with ErrEmptyTree when no edge was added. A tree that violates the link
// invariants can only result from a bug in the builder and causes a panic.
func (b *Builder) Build() (*Tree, error) {
	if !b.hasRoot || len(b.tree.edges) == 0 {
		return nil, ErrEmptyTree
	}

	result := b.tree
	*b = *NewBuilder()

	if err := Validate(&result); err != nil {
		panic(fmt.Sprintf("tree: builder produced an invalid tree: %v", err))
	}

	return &result, nil
}

func (b *Builder) addNode(data NodeData) int {
	if data == nil {
		data = NewDefaultNodeData()
	}
	index := len(b.tree.nodes)
	b.tree.nodes = append(b.tree.nodes, Node{
		index:   index,
		primary: -1,
		Data:    data,
	})
	b.last = append(b.last, -1)
	return index
}

func (b *Builder) addLink(node, edge int) int {
	index := len(b.tree.links)
	b.tree.links = append(b.tree.links, Link{
		index: index,
		next:  -1,
		outer: -1,
		node:  node,
		edge:  edge,
	})
	return index
}
