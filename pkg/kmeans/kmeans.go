// Package kmeans provides a generic Lloyd-style k-means driver.
//
// The driver knows nothing about its points: distances, validation and centroid
// updates are delegated to a Metric. Results are deterministic for a given seed,
// independent of the number of workers.
package kmeans

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/yaklabco/gotree/internal/logging"
	"github.com/yaklabco/gotree/pkg/config"
)

// Initialization strategies.
const (
	// InitFirst uses the first k points as initial centroids.
	InitFirst = config.InitFirst

	// InitRandom uses k distinct points drawn uniformly.
	InitRandom = config.InitRandom

	// InitPlusPlus draws each further centroid with probability proportional to
	// the squared distance to the nearest centroid chosen so far.
	InitPlusPlus = config.InitPlusPlus
)

// DefaultMaxIterations caps the iterations when Options leave it unset.
const DefaultMaxIterations = 100

var (
	// ErrNoData is returned when there is nothing to cluster.
	ErrNoData = errors.New("no data to cluster")

	// ErrInvalidK is returned when k is not in [1, number of points].
	ErrInvalidK = errors.New("invalid number of clusters")

	// ErrUnknownInit is returned for an unknown initialization strategy.
	ErrUnknownInit = errors.New("unknown initialization strategy")
)

// Metric supplies the point-specific operations of the clustering.
type Metric[P any] interface {
	// Validate checks the data before any computation.
	Validate(data []P) error

	// Distance returns the distance between two points.
	Distance(a, b P) (float64, error)

	// UpdateCentroids recomputes every centroid from the points assigned to it.
	// Every assignment is a valid centroid index.
	UpdateCentroids(data []P, assignments []int, centroids []P) error

	// Clone returns an independent copy of p, used to seed centroids.
	Clone(p P) P
}

// Options controls a clustering run.
type Options struct {
	// MaxIterations caps the number of iterations, DefaultMaxIterations if <= 0.
	MaxIterations int

	// Init is the initialization strategy, InitPlusPlus if empty.
	Init string

	// Seed makes random initialization reproducible.
	Seed uint64

	// Jobs is the number of assignment workers, GOMAXPROCS if <= 0.
	Jobs int
}

// DefaultOptions returns the options of config.NewConfig.
func DefaultOptions() Options {
	return OptionsFromConfig(config.NewConfig())
}

// OptionsFromConfig returns the k-means options of cfg.
func OptionsFromConfig(cfg *config.Config) Options {
	return Options{
		MaxIterations: cfg.Kmeans.MaxIterations,
		Init:          cfg.Kmeans.Init,
		Seed:          cfg.Kmeans.Seed,
		Jobs:          cfg.Kmeans.Jobs,
	}
}

// Result is the outcome of a clustering run.
type Result[P any] struct {
	Centroids []P

	// Assignments holds the centroid index of every point.
	Assignments []int

	// Distances holds the distance of every point to its centroid at the last
	// assignment step.
	Distances []float64

	ClusterSizes []int
	Iterations   int

	// Converged is false when the run stopped at the iteration cap.
	Converged bool
}

// Kmeans clusters points of type P.
type Kmeans[P any] struct {
	metric Metric[P]
	opts   Options
}

// New creates a driver for metric.
func New[P any](metric Metric[P], opts Options) *Kmeans[P] {
	if opts.MaxIterations <= 0 {
		opts.MaxIterations = DefaultMaxIterations
	}
	if opts.Init == "" {
		opts.Init = InitPlusPlus
	}
	return &Kmeans[P]{metric: metric, opts: opts}
}

// Run partitions data into k clusters.
//
// Points are assigned to their nearest centroid, ties going to the lowest index.
// Clusters left empty take over the point farthest from its centroid. The run
// stops once an assignment step changes nothing, or at the iteration cap.
func (km *Kmeans[P]) Run(ctx context.Context, data []P, k int) (*Result[P], error) {
	if len(data) == 0 {
		return nil, ErrNoData
	}
	if k <= 0 || k > len(data) {
		return nil, fmt.Errorf("%w: k=%d for %d points", ErrInvalidK, k, len(data))
	}
	if err := km.metric.Validate(data); err != nil {
		return nil, err
	}

	logger := logging.ForComponent(ctx, "kmeans")

	centroids, err := km.initialize(ctx, data, k)
	if err != nil {
		return nil, err
	}

	result := &Result[P]{
		Centroids:   centroids,
		Assignments: make([]int, len(data)),
	}
	for i := range result.Assignments {
		result.Assignments[i] = -1
	}

	for result.Iterations < km.opts.MaxIterations {
		result.Iterations++

		assignments, distances, err := km.assign(ctx, data, centroids)
		if err != nil {
			return nil, err
		}

		changed := 0
		for i, c := range assignments {
			if c != result.Assignments[i] {
				changed++
			}
		}

		result.Assignments = assignments
		result.Distances = distances

		logger.Debug("iteration",
			logging.FieldIteration, result.Iterations,
			logging.FieldChanged, changed,
		)

		if changed == 0 {
			result.Converged = true
			break
		}

		fixEmptyClusters(assignments, distances, k)

		if err := km.metric.UpdateCentroids(data, assignments, centroids); err != nil {
			return nil, fmt.Errorf("update centroids: %w", err)
		}
	}

	result.ClusterSizes = clusterSizes(result.Assignments, k)

	logger.Debug("finished",
		logging.FieldClusters, k,
		logging.FieldIteration, result.Iterations,
		logging.FieldConverged, result.Converged,
	)

	return result, nil
}

// initialize picks k points and clones them into centroids.
func (km *Kmeans[P]) initialize(ctx context.Context, data []P, k int) ([]P, error) {
	rng := rand.New(rand.NewPCG(km.opts.Seed, km.opts.Seed))

	var indices []int
	switch km.opts.Init {
	case InitFirst:
		for i := range k {
			indices = append(indices, i)
		}
	case InitRandom:
		indices = rng.Perm(len(data))[:k]
	case InitPlusPlus:
		var err error
		indices, err = km.plusPlus(ctx, data, k, rng)
		if err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownInit, km.opts.Init)
	}

	logging.ForComponent(ctx, "kmeans").Debug("initialized",
		logging.FieldInit, km.opts.Init,
		logging.FieldSeed, km.opts.Seed,
		logging.FieldClusters, k,
	)

	centroids := make([]P, k)
	for c, i := range indices {
		centroids[c] = km.metric.Clone(data[i])
	}
	return centroids, nil
}

// plusPlus picks the first index uniformly and every further one with probability
// proportional to the squared distance to the nearest index picked so far.
func (km *Kmeans[P]) plusPlus(ctx context.Context, data []P, k int, rng *rand.Rand) ([]int, error) {
	chosen := make([]bool, len(data))
	first := rng.IntN(len(data))
	indices := []int{first}
	chosen[first] = true
	seeds := []P{data[first]}

	for len(indices) < k {
		_, distances, err := km.assign(ctx, data, seeds)
		if err != nil {
			return nil, err
		}

		total := 0.0
		for i, d := range distances {
			if !chosen[i] {
				total += d * d
			}
		}

		next := -1
		if total > 0 {
			target := rng.Float64() * total
			for i, d := range distances {
				if chosen[i] || d == 0 {
					continue
				}
				next = i
				target -= d * d
				if target < 0 {
					break
				}
			}
		}
		if next < 0 {
			// All remaining points coincide with a seed.
			for i := range chosen {
				if !chosen[i] {
					next = i
					break
				}
			}
		}

		indices = append(indices, next)
		chosen[next] = true
		seeds = append(seeds, data[next])
	}

	return indices, nil
}

// fixEmptyClusters moves the point farthest from its centroid into each empty
// cluster, taking only from clusters with more than one point.
func fixEmptyClusters(assignments []int, distances []float64, k int) {
	sizes := clusterSizes(assignments, k)

	for c := range k {
		if sizes[c] > 0 {
			continue
		}

		far := -1
		for i, a := range assignments {
			if sizes[a] <= 1 {
				continue
			}
			if far < 0 || distances[i] > distances[far] {
				far = i
			}
		}
		if far < 0 {
			return
		}

		sizes[assignments[far]]--
		sizes[c]++
		assignments[far] = c
		distances[far] = 0
	}
}

func clusterSizes(assignments []int, k int) []int {
	sizes := make([]int, k)
	for _, a := range assignments {
		if a >= 0 {
			sizes[a]++
		}
	}
	return sizes
}
