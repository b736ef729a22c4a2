// Package masstree implements trees whose edges carry mass distributions, the
// Earth Mover's Distance between them, and k-means clustering of such trees.
//
// Mass positions are measured from the rootward end of an edge and must lie in
// [0, branch length]. Trees compared or merged must share their topology.
package masstree

import (
	"errors"
	"fmt"

	"github.com/emirpasic/gods/maps/treemap"
	"github.com/emirpasic/gods/utils"

	"github.com/yaklabco/gotree/pkg/placement"
	"github.com/yaklabco/gotree/pkg/tree"
)

// ErrInvalidInput is returned for trees without mass payloads, with diverging
// topologies, or with masses out of range.
var ErrInvalidInput = errors.New("invalid mass tree input")

// Mass is an amount of mass at a position on an edge.
type Mass struct {
	Position float64
	Mass     float64
}

// NodeData is the node payload of mass trees.
type NodeData struct {
	tree.DefaultNodeData
}

// CloneNodeData returns a copy of the payload.
func (d *NodeData) CloneNodeData() tree.NodeData {
	c := *d
	return &c
}

// NewNodeData returns an empty payload.
func NewNodeData() tree.NodeData {
	return &NodeData{}
}

// EdgeData is the edge payload of mass trees: the branch length and the masses on
// the edge, ordered by position.
type EdgeData struct {
	tree.DefaultEdgeData

	masses *treemap.Map
}

// NewEdgeData returns a payload without masses.
func NewEdgeData() tree.EdgeData {
	return &EdgeData{}
}

// CloneEdgeData returns a deep copy of the payload.
func (d *EdgeData) CloneEdgeData() tree.EdgeData {
	c := &EdgeData{DefaultEdgeData: d.DefaultEdgeData}
	for _, m := range d.Masses() {
		c.AddMass(m.Position, m.Mass)
	}
	return c
}

// AddMass adds mass at pos. Masses at the same position accumulate.
func (d *EdgeData) AddMass(pos, mass float64) {
	if d.masses == nil {
		d.masses = treemap.NewWith(utils.Float64Comparator)
	}
	if old, found := d.masses.Get(pos); found {
		mass += old.(float64)
	}
	d.masses.Put(pos, mass)
}

// Masses returns the masses of the edge in ascending order of position.
func (d *EdgeData) Masses() []Mass {
	if d.masses == nil {
		return nil
	}

	result := make([]Mass, 0, d.masses.Size())
	it := d.masses.Iterator()
	for it.Next() {
		result = append(result, Mass{Position: it.Key().(float64), Mass: it.Value().(float64)})
	}
	return result
}

// MassCount returns the number of distinct positions holding mass.
func (d *EdgeData) MassCount() int {
	if d.masses == nil {
		return 0
	}
	return d.masses.Size()
}

// TotalMass returns the sum of the masses of the edge.
func (d *EdgeData) TotalMass() float64 {
	total := 0.0
	for _, m := range d.Masses() {
		total += m.Mass
	}
	return total
}

// ClearMasses removes all masses from the edge.
func (d *EdgeData) ClearMasses() {
	if d.masses != nil {
		d.masses.Clear()
	}
}

func (d *EdgeData) scale(factor float64) {
	for _, m := range d.Masses() {
		d.masses.Put(m.Position, m.Mass*factor)
	}
}

// New returns a mass tree with the topology, names and branch lengths of t and no
// masses.
func New(t *tree.Tree) *tree.Tree {
	result := tree.Clone(t)

	for n := range result.NodeCount() {
		d := &NodeData{}
		d.Name = tree.NodeName(t, n)
		result.Node(n).Data = d
	}
	for e := range result.EdgeCount() {
		d := &EdgeData{}
		d.BranchLength = tree.BranchLength(t, e)
		result.Edge(e).Data = d
	}

	return result
}

// FromPlacementTree returns a mass tree holding the like weight ratio of every
// placement of t at its proximal length.
func FromPlacementTree(t *tree.Tree) (*tree.Tree, error) {
	result := New(t)

	for e := range t.EdgeCount() {
		pd, ok := tree.EdgeDataAs[*placement.EdgeData](t, e)
		if !ok {
			return nil, fmt.Errorf("%w: edge %d has payload %T, want placement edge data",
				ErrInvalidInput, e, t.Edge(e).Data)
		}

		md := mustEdgeData(result, e)
		for _, p := range pd.Placements {
			pos := min(max(p.ProximalLength, 0), md.BranchLength)
			md.AddMass(pos, p.LikeWeightRatio)
		}
	}

	return result, nil
}

func edgeData(t *tree.Tree, e int) (*EdgeData, error) {
	d, ok := tree.EdgeDataAs[*EdgeData](t, e)
	if !ok {
		return nil, fmt.Errorf("%w: edge %d has payload %T, want mass edge data",
			ErrInvalidInput, e, t.Edge(e).Data)
	}
	return d, nil
}

// mustEdgeData is used on trees whose payloads were checked before.
func mustEdgeData(t *tree.Tree, e int) *EdgeData {
	d, err := edgeData(t, e)
	if err != nil {
		panic(err)
	}
	return d
}

func checkPayloads(t *tree.Tree) error {
	if !tree.DataIs[*NodeData, *EdgeData](t) {
		return fmt.Errorf("%w: tree does not carry mass tree payloads", ErrInvalidInput)
	}
	return nil
}
