// Package placement provides trees whose edges carry phylogenetic placements.
//
// Every edge of a placement tree has an edge number, written as a single tag in
// Newick text such as "A:0.1{3}", which placements refer to.
package placement

import (
	"errors"
	"fmt"
	"slices"

	"github.com/yaklabco/gotree/pkg/tree"
)

// ErrInvalidEdgeNum is returned for negative, duplicate or unknown edge numbers.
var ErrInvalidEdgeNum = errors.New("invalid edge number")

// Placement is one possible position of a query sequence on an edge.
type Placement struct {
	Name string

	// ProximalLength is the distance from the rootward end of the edge.
	ProximalLength float64

	// PendantLength is the length of the branch leading to the query.
	PendantLength float64

	LikeWeightRatio float64
}

// EdgeData is the edge payload of placement trees.
type EdgeData struct {
	tree.DefaultEdgeData

	// EdgeNum identifies the edge; -1 until assigned.
	EdgeNum int

	Placements []Placement
}

// NewEdgeData returns an empty payload without edge number.
func NewEdgeData() tree.EdgeData {
	return &EdgeData{EdgeNum: -1}
}

// CloneEdgeData returns a deep copy of the payload.
func (d *EdgeData) CloneEdgeData() tree.EdgeData {
	c := *d
	c.Placements = slices.Clone(d.Placements)
	return &c
}

// PlacementCount returns the number of placements on the edge.
func (d *EdgeData) PlacementCount() int {
	return len(d.Placements)
}

func edgeData(t *tree.Tree, e int) (*EdgeData, error) {
	d, ok := tree.EdgeDataAs[*EdgeData](t, e)
	if !ok {
		return nil, fmt.Errorf("edge %d: payload %T is not placement edge data", e, t.Edge(e).Data)
	}
	return d, nil
}

// ValidateEdgeNums checks that every edge has a placement payload with a
// non-negative edge number, and that no number is used twice.
func ValidateEdgeNums(t *tree.Tree) error {
	_, err := EdgeNumMap(t)
	return err
}

// EdgeNumMap maps each edge number of t to its edge index.
func EdgeNumMap(t *tree.Tree) (map[int]int, error) {
	result := make(map[int]int, t.EdgeCount())

	for e := range t.EdgeCount() {
		d, err := edgeData(t, e)
		if err != nil {
			return nil, err
		}
		if d.EdgeNum < 0 {
			return nil, fmt.Errorf("%w: edge %d has edge number %d", ErrInvalidEdgeNum, e, d.EdgeNum)
		}
		if other, dup := result[d.EdgeNum]; dup {
			return nil, fmt.Errorf("%w: edges %d and %d share edge number %d", ErrInvalidEdgeNum, other, e, d.EdgeNum)
		}
		result[d.EdgeNum] = e
	}

	return result, nil
}

// ResetEdgeNums numbers the edges of t in postorder, starting at 0.
func ResetEdgeNums(t *tree.Tree) error {
	num := 0
	for v := range tree.Postorder(t) {
		if v.Edge < 0 {
			continue
		}
		d, err := edgeData(t, v.Edge)
		if err != nil {
			return err
		}
		d.EdgeNum = num
		num++
	}
	return nil
}

// AddPlacement attaches p to the edge with the given edge number.
// The proximal length is clamped to the branch length of the edge.
func AddPlacement(t *tree.Tree, edgeNum int, p Placement) error {
	edges, err := EdgeNumMap(t)
	if err != nil {
		return err
	}

	e, ok := edges[edgeNum]
	if !ok {
		return fmt.Errorf("%w: no edge with number %d", ErrInvalidEdgeNum, edgeNum)
	}

	d, err := edgeData(t, e)
	if err != nil {
		return err
	}
	p.ProximalLength = min(max(p.ProximalLength, 0), d.BranchLength)
	d.Placements = append(d.Placements, p)

	return nil
}

// TotalPlacementCount returns the number of placements on all edges.
func TotalPlacementCount(t *tree.Tree) int {
	count := 0
	for e := range t.EdgeCount() {
		if d, ok := tree.EdgeDataAs[*EdgeData](t, e); ok {
			count += d.PlacementCount()
		}
	}
	return count
}
