package masstree

import (
	"context"
	"fmt"
	"math"
	"runtime"

	"github.com/emirpasic/gods/maps/treemap"
	"github.com/emirpasic/gods/utils"
	"golang.org/x/sync/errgroup"

	"github.com/yaklabco/gotree/internal/logging"
	"github.com/yaklabco/gotree/pkg/tree"
)

// EarthMoversDistance returns the work needed to move the masses of a onto the
// masses of b, where moving one unit of mass along one unit of branch length costs
// one unit of work.
//
// The trees are swept in postorder. On every edge the masses of b are subtracted
// from those of a, and the balance is carried from the distal end of the edge
// towards its rootward end, adding the moved amount times the distance to the
// work. Whatever arrives at the top of an edge joins the balance of its parent.
//
// Both trees must pass Validate, so masses lie on their edges and the result is
// never negative.
func EarthMoversDistance(a, b *tree.Tree) (float64, error) {
	mapping, err := matchTrees(a, b)
	if err != nil {
		return 0, err
	}
	for _, t := range []*tree.Tree{a, b} {
		if err := Validate(t, positionTolerance); err != nil {
			return 0, err
		}
	}

	balance := make([]float64, a.NodeCount())
	work := 0.0

	for v := range tree.Postorder(a) {
		if v.Edge < 0 {
			continue
		}

		da := mustEdgeData(a, v.Edge)
		db := mustEdgeData(b, mapping[v.Edge])

		current := balance[v.Node]
		pos := da.BranchLength

		it := differences(da, db).Iterator()
		for it.End(); it.Prev(); {
			p := it.Key().(float64)
			work += math.Abs(current) * (pos - p)
			current += it.Value().(float64)
			pos = p
		}
		work += math.Abs(current) * pos

		balance[a.PrimaryNode(v.Edge)] += current
	}

	return work, nil
}

// differences merges the masses of a and the negated masses of b by position.
func differences(a, b *EdgeData) *treemap.Map {
	result := treemap.NewWith(utils.Float64Comparator)
	for _, m := range a.Masses() {
		result.Put(m.Position, m.Mass)
	}
	for _, m := range b.Masses() {
		old := 0.0
		if v, found := result.Get(m.Position); found {
			old = v.(float64)
		}
		result.Put(m.Position, old-m.Mass)
	}
	return result
}

// DistanceMatrix returns the pairwise Earth Mover's Distances of trees.
//
// At most jobs distances are computed concurrently; jobs <= 0 uses GOMAXPROCS.
// The result is symmetric with a zero diagonal and does not depend on jobs.
func DistanceMatrix(ctx context.Context, trees []*tree.Tree, jobs int) ([][]float64, error) {
	if err := ValidateData(trees); err != nil {
		return nil, err
	}

	n := len(trees)
	result := make([][]float64, n)
	for i := range result {
		result[i] = make([]float64, n)
	}

	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	logger := logging.ForComponent(ctx, "masstree")
	logger.Debug("computing distance matrix",
		logging.FieldTrees, n,
		logging.FieldPairs, n*(n-1)/2,
		logging.FieldJobs, jobs,
	)

	group, gctx := errgroup.WithContext(ctx)
	group.SetLimit(jobs)

	for i := range n {
		for j := i + 1; j < n; j++ {
			group.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				d, err := EarthMoversDistance(trees[i], trees[j])
				if err != nil {
					return fmt.Errorf("distance of trees %d and %d: %w", i, j, err)
				}
				result[i][j] = d
				result[j][i] = d
				return nil
			})
		}
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	return result, nil
}
