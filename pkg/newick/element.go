package newick

import "errors"

// ErrRankNotAssigned is returned by rank based queries before Broker.AssignRanks ran.
var ErrRankNotAssigned = errors.New("rank not assigned")

// Element is the intermediate record of one node of a Newick tree.
type Element struct {
	// Name of the node, usually the taxon name for leaves.
	Name string

	// Values holds the numbers attached with ':', usually the branch length of the
	// edge toward the parent.
	Values []string

	// Tags holds the texts in '{}'.
	Tags []string

	// Comments holds the texts in '[]'.
	Comments []string

	// Depth is the distance of the node from the root, which has depth 0.
	Depth int

	rank    int
	ranking *ranking
}

// ranking is shared by all elements ranked by one Broker.AssignRanks call. The
// broker retires it when the element sequence changes.
type ranking struct {
	current bool
}

func (e *Element) ranked() bool {
	return e.ranking != nil && e.ranking.current
}

// Rank returns the number of children of the element.
func (e *Element) Rank() (int, error) {
	if !e.ranked() {
		return 0, ErrRankNotAssigned
	}
	return e.rank, nil
}

// IsRoot reports whether the element is the root.
func (e *Element) IsRoot() bool {
	return e.Depth == 0
}

// IsLeaf reports whether the element has no children.
func (e *Element) IsLeaf() (bool, error) {
	if !e.ranked() {
		return false, ErrRankNotAssigned
	}
	return e.rank == 0, nil
}

// IsInner reports whether the element has children.
func (e *Element) IsInner() (bool, error) {
	if !e.ranked() {
		return false, ErrRankNotAssigned
	}
	return e.rank != 0, nil
}
