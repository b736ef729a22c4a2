package masstree

import (
	"context"
	"fmt"

	"github.com/yaklabco/gotree/pkg/kmeans"
	"github.com/yaklabco/gotree/pkg/tree"
)

// massTolerance is the relative tolerance for comparing total masses.
const massTolerance = 1e-5

// KmeansMetric clusters mass trees by Earth Mover's Distance.
// Every input tree must hold a total mass of 1.
type KmeansMetric struct{}

var _ kmeans.Metric[*tree.Tree] = KmeansMetric{}

// Validate checks payloads and topology of all trees, and that each is normalized.
func (KmeansMetric) Validate(data []*tree.Tree) error {
	if err := ValidateData(data); err != nil {
		return err
	}
	for i, t := range data {
		if total := SumOfMasses(t); !almostEqualRelative(total, 1, massTolerance) {
			return fmt.Errorf("%w: tree %d has total mass %g, want 1", ErrInvalidInput, i, total)
		}
	}
	return nil
}

// Distance returns the Earth Mover's Distance of a and b.
func (KmeansMetric) Distance(a, b *tree.Tree) (float64, error) {
	return EarthMoversDistance(a, b)
}

// Clone returns a deep copy of t.
func (KmeansMetric) Clone(t *tree.Tree) *tree.Tree {
	return tree.Clone(t)
}

// UpdateCentroids sets every centroid to the normalized sum of the trees assigned
// to it. The accumulated mass of a centroid must equal its number of trees; a
// mismatch is an internal defect and panics.
func (KmeansMetric) UpdateCentroids(data []*tree.Tree, assignments []int, centroids []*tree.Tree) error {
	for _, c := range centroids {
		if err := ClearMasses(c); err != nil {
			return err
		}
	}

	counts := make([]int, len(centroids))
	for i, t := range data {
		a := assignments[i]
		if err := MergeInto(centroids[a], t); err != nil {
			return fmt.Errorf("merge tree %d into centroid %d: %w", i, a, err)
		}
		counts[a]++
	}

	for i, c := range centroids {
		if mass := SumOfMasses(c); !almostEqualRelative(float64(counts[i]), mass, massTolerance) {
			panic(fmt.Sprintf("masstree: centroid %d accumulated mass %g from %d trees", i, mass, counts[i]))
		}
		if err := NormalizeMasses(c); err != nil {
			return err
		}
	}

	return nil
}

// Kmeans clusters normalized mass trees into k groups.
func Kmeans(ctx context.Context, trees []*tree.Tree, k int, opts kmeans.Options) (*kmeans.Result[*tree.Tree], error) {
	return kmeans.New[*tree.Tree](KmeansMetric{}, opts).Run(ctx, trees, k)
}
