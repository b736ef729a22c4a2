package tree

import "iter"

// Visit describes a node reached by a traversal.
type Visit struct {
	Node  int
	Link  int // primary link of the node
	Edge  int // edge toward the parent, -1 for the root
	Depth int // number of edges from the root
}

func (t *Tree) visit(n, depth int) Visit {
	return Visit{
		Node:  n,
		Link:  t.nodes[n].primary,
		Edge:  t.ParentEdge(n),
		Depth: depth,
	}
}

// Preorder yields every node before its children, children in ring order.
func Preorder(t *Tree) iter.Seq[Visit] {
	return func(yield func(Visit) bool) {
		stack := []Visit{t.visit(t.RootNode(), 0)}

		for len(stack) > 0 {
			v := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			if !yield(v) {
				return
			}

			children := t.Children(v.Node)
			for i := len(children) - 1; i >= 0; i-- {
				stack = append(stack, t.visit(children[i], v.Depth+1))
			}
		}
	}
}

// Postorder yields every node after its children, children in ring order.
// The root comes last.
func Postorder(t *Tree) iter.Seq[Visit] {
	return func(yield func(Visit) bool) {
		// Root-first with reversed child order is the exact reverse of postorder.
		order := make([]Visit, 0, len(t.nodes))
		stack := []Visit{t.visit(t.RootNode(), 0)}

		for len(stack) > 0 {
			v := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			order = append(order, v)

			for _, c := range t.Children(v.Node) {
				stack = append(stack, t.visit(c, v.Depth+1))
			}
		}

		for i := len(order) - 1; i >= 0; i-- {
			if !yield(order[i]) {
				return
			}
		}
	}
}

// Levelorder yields nodes by increasing depth, left to right within a level.
func Levelorder(t *Tree) iter.Seq[Visit] {
	return func(yield func(Visit) bool) {
		queue := []Visit{t.visit(t.RootNode(), 0)}

		for len(queue) > 0 {
			v := queue[0]
			queue = queue[1:]

			if !yield(v) {
				return
			}

			for _, c := range t.Children(v.Node) {
				queue = append(queue, t.visit(c, v.Depth+1))
			}
		}
	}
}
