package tree_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gotree/pkg/tree"
)

func TestEulerTour_FromRoot(t *testing.T) {
	t.Parallel()

	tr := buildSample(t)

	var nodes []int
	it := tree.NewEulerTour(tr, tr.RootLink())
	for it.Next() {
		nodes = append(nodes, it.Node())
	}

	assert.Equal(t,
		[]string{"R", "C", "A", "C", "B", "C", "R", "F", "D", "F", "E", "F"},
		names(tr, nodes))
	assert.Equal(t, tr.RootLink(), it.StartLink())
	assert.False(t, it.Next(), "exhausted iterator stays exhausted")
}

func TestEulerTour_VisitsEveryLinkOnce(t *testing.T) {
	t.Parallel()

	tr := buildSample(t)

	for start := range tr.LinkCount() {
		var links []int
		edgeVisits := make([]int, tr.EdgeCount())

		it := tree.NewEulerTour(tr, start)
		for it.Next() {
			links = append(links, it.Link())
			edgeVisits[it.Edge()]++
		}

		require.Len(t, links, 2*tr.EdgeCount(), "start link %d", start)
		assert.Equal(t, start, links[0])

		slices.Sort(links)
		for i, l := range links {
			assert.Equal(t, i, l)
		}
		for e, n := range edgeVisits {
			assert.Equal(t, 2, n, "edge %d from start %d", e, start)
		}
	}
}

func TestEulerTour_RangeFunc(t *testing.T) {
	t.Parallel()

	tr := buildSample(t)

	var links []int
	for l := range tree.EulerTour(tr) {
		links = append(links, l)
	}
	assert.Equal(t, []int{0, 2, 3, 4, 5, 1, 6, 8, 9, 10, 11, 7}, links)

	count := 0
	for range tree.EulerTour(tr) {
		count++
		if count == 3 {
			break
		}
	}
	assert.Equal(t, 3, count)
}

func collect(seq func(func(tree.Visit) bool)) []tree.Visit {
	var result []tree.Visit
	for v := range seq {
		result = append(result, v)
	}
	return result
}

func visitNames(tr *tree.Tree, visits []tree.Visit) []string {
	result := make([]string, len(visits))
	for i, v := range visits {
		result[i] = tree.NodeName(tr, v.Node)
	}
	return result
}

func TestTraversals(t *testing.T) {
	t.Parallel()

	tr := buildSample(t)

	tests := []struct {
		name   string
		visits []tree.Visit
		want   []string
		depths []int
	}{
		{
			name:   "preorder",
			visits: collect(tree.Preorder(tr)),
			want:   []string{"R", "C", "A", "B", "F", "D", "E"},
			depths: []int{0, 1, 2, 2, 1, 2, 2},
		},
		{
			name:   "postorder",
			visits: collect(tree.Postorder(tr)),
			want:   []string{"A", "B", "C", "D", "E", "F", "R"},
			depths: []int{2, 2, 1, 2, 2, 1, 0},
		},
		{
			name:   "levelorder",
			visits: collect(tree.Levelorder(tr)),
			want:   []string{"R", "C", "F", "A", "B", "D", "E"},
			depths: []int{0, 1, 1, 2, 2, 2, 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, visitNames(tr, tt.visits))

			depths := make([]int, len(tt.visits))
			for i, v := range tt.visits {
				depths[i] = v.Depth
				if tr.IsRoot(v.Node) {
					assert.Equal(t, -1, v.Edge)
				} else {
					assert.Equal(t, v.Node, tr.SecondaryNode(v.Edge))
				}
				assert.Equal(t, tr.Node(v.Node).PrimaryLink(), v.Link)
			}
			assert.Equal(t, tt.depths, depths)
		})
	}
}

func TestPreorder_EarlyStop(t *testing.T) {
	t.Parallel()

	tr := buildSample(t)

	var seen []int
	for v := range tree.Preorder(tr) {
		seen = append(seen, v.Node)
		if len(seen) == 2 {
			break
		}
	}
	assert.Equal(t, []int{0, 1}, seen)
}
