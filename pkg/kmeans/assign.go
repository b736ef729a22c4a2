package kmeans

import (
	"context"
	"fmt"
	"runtime"
	"sync"
)

// assignment is the nearest centroid of one point.
type assignment struct {
	index    int
	centroid int
	distance float64
	err      error
}

// assign finds the nearest centroid of every point on a pool of workers.
// The first error, by point index, is returned.
func (km *Kmeans[P]) assign(ctx context.Context, data []P, centroids []P) ([]int, []float64, error) {
	jobs := km.opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	jobs = min(jobs, len(data))

	workCh := make(chan int)
	outCh := make(chan assignment)

	var wg sync.WaitGroup

	for range jobs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			km.worker(ctx, data, centroids, workCh, outCh)
		}()
	}

	go func() {
		defer close(workCh)
		for i := range data {
			select {
			case <-ctx.Done():
				return
			case workCh <- i:
			}
		}
	}()

	go func() {
		wg.Wait()
		close(outCh)
	}()

	assignments := make([]int, len(data))
	distances := make([]float64, len(data))
	errs := make([]error, len(data))

	for a := range outCh {
		assignments[a.index] = a.centroid
		distances[a.index] = a.distance
		errs[a.index] = a.err
	}

	if ctx.Err() != nil {
		return nil, nil, fmt.Errorf("kmeans cancelled: %w", ctx.Err())
	}

	for i, err := range errs {
		if err != nil {
			return nil, nil, fmt.Errorf("distance of point %d: %w", i, err)
		}
	}

	return assignments, distances, nil
}

// worker assigns the points received on workCh.
func (km *Kmeans[P]) worker(
	ctx context.Context,
	data []P,
	centroids []P,
	workCh <-chan int,
	outCh chan<- assignment,
) {
	for i := range workCh {
		select {
		case <-ctx.Done():
			return
		default:
		}

		out := assignment{index: i, centroid: -1}
		for c, centroid := range centroids {
			d, err := km.metric.Distance(data[i], centroid)
			if err != nil {
				out.err = err
				break
			}
			// Strictly smaller, so ties keep the lowest index.
			if out.centroid < 0 || d < out.distance {
				out.centroid = c
				out.distance = d
			}
		}

		select {
		case <-ctx.Done():
			return
		case outCh <- out:
		}
	}
}
