package newick

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidDepth is returned for element sequences that do not describe a tree.
var ErrInvalidDepth = errors.New("invalid depth sequence")

// Broker holds the elements of one tree in preorder.
//
// The first element is the root at depth 0. Every following element is a child of
// the closest preceding element that is one level higher.
type Broker struct {
	elements []*Element
	ranking  *ranking
}

// NewBroker creates an empty broker.
func NewBroker() *Broker {
	return &Broker{}
}

// Push appends e. Ranks of all elements must be assigned again afterwards.
func (b *Broker) Push(e *Element) {
	b.invalidateRanks()
	e.ranking = nil
	e.rank = 0
	b.elements = append(b.elements, e)
}

// Len returns the number of elements.
func (b *Broker) Len() int {
	return len(b.elements)
}

// At returns the element at index i.
func (b *Broker) At(i int) *Element {
	return b.elements[i]
}

// Elements returns all elements in order.
func (b *Broker) Elements() []*Element {
	return b.elements
}

// Clear removes all elements.
func (b *Broker) Clear() {
	b.invalidateRanks()
	b.elements = nil
}

// Validate checks that the depth sequence describes a single tree: the first
// element is the only one at depth 0, and no element is more than one level
// deeper than its predecessor.
func (b *Broker) Validate() error {
	if len(b.elements) == 0 {
		return fmt.Errorf("%w: broker is empty", ErrInvalidDepth)
	}

	for i, e := range b.elements {
		switch {
		case i == 0 && e.Depth != 0:
			return fmt.Errorf("%w: first element has depth %d", ErrInvalidDepth, e.Depth)
		case i > 0 && e.Depth < 1:
			return fmt.Errorf("%w: element %d has depth %d after the root", ErrInvalidDepth, i, e.Depth)
		case i > 0 && e.Depth > b.elements[i-1].Depth+1:
			return fmt.Errorf("%w: element %d jumps from depth %d to %d",
				ErrInvalidDepth, i, b.elements[i-1].Depth, e.Depth)
		}
	}

	return nil
}

// AssignRanks sets the rank of every element to the number of elements that follow
// it one level deeper before the next element at its own depth or above.
func (b *Broker) AssignRanks() error {
	if err := b.Validate(); err != nil {
		return err
	}

	b.invalidateRanks()
	r := &ranking{current: true}

	var open []*Element
	for _, e := range b.elements {
		for len(open) > 0 && open[len(open)-1].Depth >= e.Depth {
			open = open[:len(open)-1]
		}
		if len(open) > 0 {
			open[len(open)-1].rank++
		}

		e.rank = 0
		e.ranking = r
		open = append(open, e)
	}

	b.ranking = r
	return nil
}

// invalidateRanks retires the current ranking, which all ranked elements share.
func (b *Broker) invalidateRanks() {
	if b.ranking != nil {
		b.ranking.current = false
		b.ranking = nil
	}
}

// LeafCount returns the number of elements without children.
func (b *Broker) LeafCount() (int, error) {
	count := 0
	for _, e := range b.elements {
		leaf, err := e.IsLeaf()
		if err != nil {
			return 0, err
		}
		if leaf {
			count++
		}
	}
	return count, nil
}

// InnerCount returns the number of elements with children.
func (b *Broker) InnerCount() (int, error) {
	leaves, err := b.LeafCount()
	if err != nil {
		return 0, err
	}
	return len(b.elements) - leaves, nil
}

// MaxRank returns the highest number of children of an element.
func (b *Broker) MaxRank() (int, error) {
	result := 0
	for _, e := range b.elements {
		rank, err := e.Rank()
		if err != nil {
			return 0, err
		}
		result = max(result, rank)
	}
	return result, nil
}

// IsBifurcating reports whether no element has more than two children.
// The root may have three, as written for unrooted trees.
func (b *Broker) IsBifurcating() (bool, error) {
	for _, e := range b.elements {
		rank, err := e.Rank()
		if err != nil {
			return false, err
		}
		if rank > 3 || (rank == 3 && !e.IsRoot()) {
			return false, nil
		}
	}
	return true, nil
}

// String returns a debug dump with one indented line per element.
func (b *Broker) String() string {
	var sb strings.Builder
	for _, e := range b.elements {
		sb.WriteString(strings.Repeat("    ", max(e.Depth, 0)))
		if e.Name == "" {
			sb.WriteString("-")
		} else {
			sb.WriteString(e.Name)
		}
		if rank, err := e.Rank(); err == nil {
			fmt.Fprintf(&sb, " [%d]", rank)
		}
		for _, v := range e.Values {
			sb.WriteString(" :" + v)
		}
		for _, tag := range e.Tags {
			sb.WriteString(" {" + tag + "}")
		}
		for _, c := range e.Comments {
			sb.WriteString(" [" + c + "]")
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
