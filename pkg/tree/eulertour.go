package tree

import "iter"

// EulerTourIterator walks the links of a tree in Euler tour order.
//
// Starting at a link, each step moves to the outer link and then to the next link in
// that ring. Every edge is passed twice, once in each direction, so a full tour visits
// all 2E links exactly once before returning to the start. The iterator only reads
// the tree.
type EulerTourIterator struct {
	tree    *Tree
	start   int
	current int
	started bool
	done    bool
}

// NewEulerTour creates an iterator that starts at the given link.
func NewEulerTour(t *Tree, start int) *EulerTourIterator {
	return &EulerTourIterator{
		tree:    t,
		start:   start,
		current: start,
	}
}

// Next advances to the next link and reports whether there is one.
// The first call positions the iterator on the start link.
func (it *EulerTourIterator) Next() bool {
	if it.done {
		return false
	}
	if !it.started {
		it.started = true
		return true
	}

	links := it.tree.links
	it.current = links[links[it.current].outer].next
	if it.current == it.start {
		it.done = true
		return false
	}
	return true
}

// StartLink returns the link the tour started at.
func (it *EulerTourIterator) StartLink() int { return it.start }

// Link returns the current link.
func (it *EulerTourIterator) Link() int { return it.current }

// Node returns the node of the current link.
func (it *EulerTourIterator) Node() int { return it.tree.links[it.current].node }

// Edge returns the edge of the current link.
func (it *EulerTourIterator) Edge() int { return it.tree.links[it.current].edge }

// EulerTour yields the links of t in Euler tour order, starting at the root link.
func EulerTour(t *Tree) iter.Seq[int] {
	return func(yield func(int) bool) {
		it := NewEulerTour(t, t.root)
		for it.Next() {
			if !yield(it.Link()) {
				return
			}
		}
	}
}
