package masstree_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gotree/pkg/masstree"
	"github.com/yaklabco/gotree/pkg/tree"
)

type placed struct {
	node string
	pos  float64
	mass float64
}

func withMasses(t *testing.T, text string, masses ...placed) *tree.Tree {
	t.Helper()

	tr := massTree(t, text)
	for _, m := range masses {
		edgeAbove(t, tr, m.node).AddMass(m.pos, m.mass)
	}
	return tr
}

func TestEarthMoversDistance(t *testing.T) {
	t.Parallel()

	const cherry = "(A:1,B:1)R;"
	const deep = "((A:1,B:1)X:2,C:1)R;"

	tests := []struct {
		name string
		text string
		a    []placed
		b    []placed
		want float64
	}{
		{
			name: "identical",
			text: deep,
			a:    []placed{{"A", 0.5, 0.5}, {"C", 0.2, 0.5}},
			b:    []placed{{"A", 0.5, 0.5}, {"C", 0.2, 0.5}},
			want: 0,
		},
		{
			name: "empty",
			text: deep,
			want: 0,
		},
		{
			name: "sibling edges",
			text: cherry,
			a:    []placed{{"A", 0.5, 1}},
			b:    []placed{{"B", 0.5, 1}},
			want: 1,
		},
		{
			name: "same edge",
			text: cherry,
			a:    []placed{{"A", 0.2, 1}},
			b:    []placed{{"A", 0.8, 1}},
			want: 0.6,
		},
		{
			name: "tip to tip",
			text: deep,
			a:    []placed{{"A", 1, 1}},
			b:    []placed{{"C", 1, 1}},
			want: 4,
		},
		{
			name: "split mass",
			text: deep,
			a:    []placed{{"A", 1, 0.5}, {"B", 1, 0.5}},
			b:    []placed{{"X", 1, 1}},
			want: 2,
		},
		{
			name: "mass staying on edge",
			text: deep,
			a:    []placed{{"A", 1, 0.5}, {"C", 0, 0.5}},
			b:    []placed{{"A", 0, 0.5}, {"C", 0, 0.5}},
			want: 0.5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			a := withMasses(t, tt.text, tt.a...)
			b := withMasses(t, tt.text, tt.b...)

			ab, err := masstree.EarthMoversDistance(a, b)
			require.NoError(t, err)
			ba, err := masstree.EarthMoversDistance(b, a)
			require.NoError(t, err)

			assert.InDelta(t, tt.want, ab, 1e-12)
			assert.InDelta(t, ab, ba, 1e-12)
			assert.GreaterOrEqual(t, ab, 0.0)
		})
	}
}

func TestEarthMoversDistance_InvalidInput(t *testing.T) {
	t.Parallel()

	a := massTree(t, "((A:1,B:1)X:1,C:1)R;")
	b := massTree(t, "(A:1,(B:1,C:1)X:1)R;")

	_, err := masstree.EarthMoversDistance(a, b)
	require.ErrorIs(t, err, masstree.ErrInvalidInput)

	_, err = masstree.EarthMoversDistance(a, parse(t, "((A:1,B:1)X:1,C:1)R;"))
	require.ErrorIs(t, err, masstree.ErrInvalidInput)
}

func TestEarthMoversDistance_MassOffEdge(t *testing.T) {
	t.Parallel()

	const text = "((A:1,B:1)X:1,C:1)R;"

	tests := []struct {
		name string
		mass placed
	}{
		{name: "beyond distal end", mass: placed{"X", 5, 1}},
		{name: "before proximal end", mass: placed{"X", -0.5, 1}},
		{name: "negative mass", mass: placed{"C", 0.5, -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			a := withMasses(t, text, placed{"A", 0.5, 1})
			b := withMasses(t, text, tt.mass)

			_, err := masstree.EarthMoversDistance(a, b)
			require.ErrorIs(t, err, masstree.ErrInvalidInput)
			_, err = masstree.EarthMoversDistance(b, a)
			require.ErrorIs(t, err, masstree.ErrInvalidInput)

			require.ErrorIs(t, masstree.ValidateData([]*tree.Tree{a, b}), masstree.ErrInvalidInput)

			_, err = masstree.DistanceMatrix(context.Background(), []*tree.Tree{a, b}, 1)
			require.ErrorIs(t, err, masstree.ErrInvalidInput)
		})
	}
}

func TestDistanceMatrix(t *testing.T) {
	t.Parallel()

	const text = "((A:1,B:1)X:2,(C:1,D:1)Y:1)R;"
	trees := []*tree.Tree{
		withMasses(t, text, placed{"A", 0.5, 1}),
		withMasses(t, text, placed{"B", 0.5, 1}),
		withMasses(t, text, placed{"D", 1, 0.5}, placed{"X", 1, 0.5}),
		withMasses(t, text, placed{"Y", 0, 1}),
		withMasses(t, text, placed{"A", 0.5, 1}),
	}

	serial, err := masstree.DistanceMatrix(context.Background(), trees, 1)
	require.NoError(t, err)

	for _, jobs := range []int{0, 2, 8} {
		parallel, err := masstree.DistanceMatrix(context.Background(), trees, jobs)
		require.NoError(t, err)
		assert.Equal(t, serial, parallel)
	}

	require.Len(t, serial, len(trees))
	for i := range trees {
		assert.Zero(t, serial[i][i])
		for j := range trees {
			assert.InDelta(t, serial[i][j], serial[j][i], 1e-12)

			want, err := masstree.EarthMoversDistance(trees[i], trees[j])
			require.NoError(t, err)
			assert.InDelta(t, want, serial[i][j], 1e-12)
		}
	}
	assert.InDelta(t, 1.0, serial[0][1], 1e-12)
	assert.Zero(t, serial[0][4])
}

func TestDistanceMatrix_Errors(t *testing.T) {
	t.Parallel()

	a := massTree(t, "((A:1,B:1)X:1,C:1)R;")
	b := massTree(t, "(A:1,(B:1,C:1)X:1)R;")

	_, err := masstree.DistanceMatrix(context.Background(), []*tree.Tree{a, b}, 2)
	require.ErrorIs(t, err, masstree.ErrInvalidInput)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = masstree.DistanceMatrix(ctx, []*tree.Tree{a, masstree.New(a)}, 2)
	require.ErrorIs(t, err, context.Canceled)
}
