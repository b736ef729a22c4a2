package masstree

import (
	"fmt"
	"math"

	"github.com/yaklabco/gotree/pkg/tree"
)

// ClearMasses removes all masses from t.
func ClearMasses(t *tree.Tree) error {
	if err := checkPayloads(t); err != nil {
		return err
	}
	for e := range t.EdgeCount() {
		mustEdgeData(t, e).ClearMasses()
	}
	return nil
}

// MergeInto adds the masses of src to the corresponding edges of dst.
func MergeInto(dst, src *tree.Tree) error {
	mapping, err := matchTrees(dst, src)
	if err != nil {
		return err
	}

	for e, other := range mapping {
		d := mustEdgeData(dst, e)
		for _, m := range mustEdgeData(src, other).Masses() {
			d.AddMass(m.Position, m.Mass)
		}
	}
	return nil
}

// SumOfMasses returns the total mass of t.
func SumOfMasses(t *tree.Tree) float64 {
	total := 0.0
	for e := range t.EdgeCount() {
		if d, ok := tree.EdgeDataAs[*EdgeData](t, e); ok {
			total += d.TotalMass()
		}
	}
	return total
}

// ScaleMasses multiplies every mass of t by factor.
func ScaleMasses(t *tree.Tree, factor float64) error {
	if err := checkPayloads(t); err != nil {
		return err
	}
	for e := range t.EdgeCount() {
		mustEdgeData(t, e).scale(factor)
	}
	return nil
}

// NormalizeMasses scales the masses of t to a total of 1. A tree without mass is
// left unchanged.
func NormalizeMasses(t *tree.Tree) error {
	if err := checkPayloads(t); err != nil {
		return err
	}
	total := SumOfMasses(t)
	if total == 0 {
		return nil
	}
	return ScaleMasses(t, 1/total)
}

// Validate checks the payloads of t, that no branch length or mass is negative,
// and that all positions lie on their edge. Positions may exceed the edge by
// tolerance.
func Validate(t *tree.Tree, tolerance float64) error {
	if err := checkPayloads(t); err != nil {
		return err
	}

	for e := range t.EdgeCount() {
		d := mustEdgeData(t, e)
		if d.BranchLength < 0 {
			return fmt.Errorf("%w: edge %d has negative branch length %g", ErrInvalidInput, e, d.BranchLength)
		}
		for _, m := range d.Masses() {
			if m.Position < -tolerance || m.Position > d.BranchLength+tolerance {
				return fmt.Errorf("%w: edge %d has mass at %g outside [0, %g]",
					ErrInvalidInput, e, m.Position, d.BranchLength)
			}
			if m.Mass < 0 {
				return fmt.Errorf("%w: edge %d has negative mass %g at %g", ErrInvalidInput, e, m.Mass, m.Position)
			}
		}
	}
	return nil
}

// positionTolerance is how far a mass may sit beyond the distal end of its edge
// before a tree is rejected as input to a distance computation.
const positionTolerance = 1e-9

// ValidateData checks that all trees carry mass payloads with every mass on its
// edge, and that they share one topology. It runs before any computation on a set
// of trees.
func ValidateData(trees []*tree.Tree) error {
	for i, t := range trees {
		if err := Validate(t, positionTolerance); err != nil {
			return fmt.Errorf("tree %d: %w", i, err)
		}
	}
	for i := 1; i < len(trees); i++ {
		if !tree.IdenticalTopology(trees[i-1], trees[i]) {
			return fmt.Errorf("%w: trees %d and %d differ in topology", ErrInvalidInput, i-1, i)
		}
	}
	return nil
}

// matchTrees checks payloads and topology of a and b and maps edges of a to edges of b.
func matchTrees(a, b *tree.Tree) ([]int, error) {
	if err := checkPayloads(a); err != nil {
		return nil, err
	}
	if err := checkPayloads(b); err != nil {
		return nil, err
	}

	mapping, ok := tree.MatchEdges(a, b)
	if !ok {
		return nil, fmt.Errorf("%w: trees differ in topology", ErrInvalidInput)
	}
	return mapping, nil
}

// almostEqualRelative compares a and b relative to the larger magnitude.
func almostEqualRelative(a, b, epsilon float64) bool {
	return math.Abs(a-b) <= epsilon*max(math.Abs(a), math.Abs(b))
}
