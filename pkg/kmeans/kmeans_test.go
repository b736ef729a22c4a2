package kmeans_test

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gotree/pkg/config"
	"github.com/yaklabco/gotree/pkg/kmeans"
)

var errNaN = errors.New("NaN point")

// lineMetric clusters numbers on the real line.
type lineMetric struct{}

func (lineMetric) Validate(data []float64) error {
	for _, p := range data {
		if math.IsNaN(p) {
			return errNaN
		}
	}
	return nil
}

func (lineMetric) Distance(a, b float64) (float64, error) {
	return math.Abs(a - b), nil
}

func (lineMetric) UpdateCentroids(data []float64, assignments []int, centroids []float64) error {
	sums := make([]float64, len(centroids))
	counts := make([]int, len(centroids))
	for i, p := range data {
		sums[assignments[i]] += p
		counts[assignments[i]]++
	}
	for c := range centroids {
		if counts[c] > 0 {
			centroids[c] = sums[c] / float64(counts[c])
		}
	}
	return nil
}

func (lineMetric) Clone(p float64) float64 { return p }

var errBroken = errors.New("broken distance")

// brokenMetric fails to measure one point.
type brokenMetric struct {
	lineMetric
}

func (brokenMetric) Distance(a, b float64) (float64, error) {
	if a == 13 {
		return 0, errBroken
	}
	return math.Abs(a - b), nil
}

func TestRun_Separable(t *testing.T) {
	t.Parallel()

	data := []float64{0, 0.1, 0.2, 10, 10.1, 10.2}

	for _, jobs := range []int{1, 2, 4, 16} {
		km := kmeans.New[float64](lineMetric{}, kmeans.Options{Init: kmeans.InitFirst, Jobs: jobs})

		result, err := km.Run(context.Background(), data, 2)
		require.NoError(t, err)

		assert.True(t, result.Converged)
		assert.Equal(t, 3, result.Iterations)
		assert.Equal(t, []int{0, 0, 0, 1, 1, 1}, result.Assignments)
		assert.Equal(t, []int{3, 3}, result.ClusterSizes)
		assert.InDelta(t, 0.1, result.Centroids[0], 1e-12)
		assert.InDelta(t, 10.1, result.Centroids[1], 1e-12)
		assert.InDelta(t, 0.1, result.Distances[2], 1e-12)
	}
}

func TestRun_Inits(t *testing.T) {
	t.Parallel()

	data := []float64{0, 0.1, 0.2, 10, 10.1, 10.2, 20, 20.1}

	for _, init := range []string{kmeans.InitFirst, kmeans.InitRandom, kmeans.InitPlusPlus} {
		t.Run(init, func(t *testing.T) {
			t.Parallel()

			opts := kmeans.Options{Init: init, Seed: 42}
			first, err := kmeans.New[float64](lineMetric{}, opts).Run(context.Background(), data, 3)
			require.NoError(t, err)

			opts.Jobs = 1
			second, err := kmeans.New[float64](lineMetric{}, opts).Run(context.Background(), data, 3)
			require.NoError(t, err)

			assert.Equal(t, first.Assignments, second.Assignments)
			assert.Equal(t, first.Centroids, second.Centroids)
			assert.Len(t, first.Centroids, 3)
			assert.Equal(t, 8, first.ClusterSizes[0]+first.ClusterSizes[1]+first.ClusterSizes[2])
		})
	}
}

func TestRun_PlusPlusSpreadsSeeds(t *testing.T) {
	t.Parallel()

	data := []float64{0, 0, 0, 0, 100}

	for seed := range uint64(20) {
		opts := kmeans.Options{Init: kmeans.InitPlusPlus, Seed: seed, MaxIterations: 1}
		result, err := kmeans.New[float64](lineMetric{}, opts).Run(context.Background(), data, 2)
		require.NoError(t, err)

		assert.ElementsMatch(t, []int{4, 1}, result.ClusterSizes, "seed %d", seed)
	}
}

func TestRun_TiesGoToLowestIndex(t *testing.T) {
	t.Parallel()

	km := kmeans.New[float64](lineMetric{}, kmeans.Options{Init: kmeans.InitFirst, MaxIterations: 1})

	result, err := km.Run(context.Background(), []float64{1, 3, 2}, 2)
	require.NoError(t, err)

	assert.Equal(t, []int{0, 1, 0}, result.Assignments)
	assert.False(t, result.Converged)
	assert.Equal(t, 1, result.Iterations)
}

func TestRun_FixesEmptyClusters(t *testing.T) {
	t.Parallel()

	km := kmeans.New[float64](lineMetric{}, kmeans.Options{Init: kmeans.InitFirst})

	result, err := km.Run(context.Background(), []float64{1, 1, 1, 5}, 2)
	require.NoError(t, err)

	assert.True(t, result.Converged)
	assert.Equal(t, []int{0, 0, 0, 1}, result.Assignments)
	assert.Equal(t, []int{3, 1}, result.ClusterSizes)
	assert.InDelta(t, 5.0, result.Centroids[1], 1e-12)
}

func TestRun_KEqualsPoints(t *testing.T) {
	t.Parallel()

	km := kmeans.New[float64](lineMetric{}, kmeans.DefaultOptions())

	result, err := km.Run(context.Background(), []float64{4, 2, 9}, 3)
	require.NoError(t, err)

	assert.True(t, result.Converged)
	assert.Equal(t, []int{1, 1, 1}, result.ClusterSizes)
	for _, d := range result.Distances {
		assert.Zero(t, d)
	}
}

func TestRun_Errors(t *testing.T) {
	t.Parallel()

	km := kmeans.New[float64](lineMetric{}, kmeans.DefaultOptions())
	ctx := context.Background()

	_, err := km.Run(ctx, nil, 1)
	require.ErrorIs(t, err, kmeans.ErrNoData)

	_, err = km.Run(ctx, []float64{1, 2}, 0)
	require.ErrorIs(t, err, kmeans.ErrInvalidK)

	_, err = km.Run(ctx, []float64{1, 2}, 3)
	require.ErrorIs(t, err, kmeans.ErrInvalidK)

	_, err = km.Run(ctx, []float64{1, math.NaN()}, 1)
	require.ErrorIs(t, err, errNaN)

	unknown := kmeans.New[float64](lineMetric{}, kmeans.Options{Init: "median"})
	_, err = unknown.Run(ctx, []float64{1, 2}, 1)
	require.ErrorIs(t, err, kmeans.ErrUnknownInit)

	broken := kmeans.New[float64](brokenMetric{}, kmeans.Options{Init: kmeans.InitFirst, Jobs: 2})
	_, err = broken.Run(ctx, []float64{1, 13, 2}, 1)
	require.ErrorIs(t, err, errBroken)
	assert.Contains(t, err.Error(), "point 1")
}

func TestRun_Cancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	km := kmeans.New[float64](lineMetric{}, kmeans.Options{Init: kmeans.InitFirst})
	_, err := km.Run(ctx, []float64{1, 2, 3}, 2)
	require.ErrorIs(t, err, context.Canceled)
}

func TestOptionsFromConfig(t *testing.T) {
	t.Parallel()

	cfg := config.NewConfig()
	cfg.Kmeans.Init = config.InitRandom
	cfg.Kmeans.Seed = 9
	cfg.Kmeans.Jobs = 4

	assert.Equal(t, kmeans.Options{
		MaxIterations: 100,
		Init:          kmeans.InitRandom,
		Seed:          9,
		Jobs:          4,
	}, kmeans.OptionsFromConfig(cfg))
}
