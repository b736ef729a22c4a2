package placement_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gotree/pkg/config"
	"github.com/yaklabco/gotree/pkg/newick"
	"github.com/yaklabco/gotree/pkg/placement"
	"github.com/yaklabco/gotree/pkg/scan"
	"github.com/yaklabco/gotree/pkg/tree"
)

func write(t *testing.T, tr *tree.Tree, opts placement.Options) string {
	t.Helper()

	text, err := newick.WriteTree(tr, placement.NewConverter(opts), newick.WriterOptions{})
	require.NoError(t, err)
	return text
}

func TestParseTree_EdgeNums(t *testing.T) {
	t.Parallel()

	tr, err := placement.ParseTree("((A:1{0},B:2{1}):0.5{2},C:3{3});", placement.DefaultOptions())
	require.NoError(t, err)

	edges, err := placement.EdgeNumMap(tr)
	require.NoError(t, err)
	require.Len(t, edges, 4)

	for num, e := range edges {
		d, ok := tree.EdgeDataAs[*placement.EdgeData](tr, e)
		require.True(t, ok)
		assert.Equal(t, num, d.EdgeNum)
	}

	a := edges[0]
	assert.Equal(t, "A", tree.NodeName(tr, tr.SecondaryNode(a)))
	assert.InDelta(t, 1.0, tree.BranchLength(tr, a), 1e-12)
}

func TestRoundTrip_EdgeNums(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"((A:1{0},B:2{1}):0.5{2},C:3{3});",
		"((A:1{3},B:2{1})X:0.5{0},C:3{2})R;",
		"(A:1{-0},B:1{+7});",
	}
	want := []string{
		"((A:1{0},B:2{1}):0.5{2},C:3{3});",
		"((A:1{3},B:2{1})X:0.5{0},C:3{2})R;",
		"(A:1{0},B:1{7});",
	}

	for i, input := range inputs {
		t.Run(input, func(t *testing.T) {
			t.Parallel()

			tr, err := placement.ParseTree(input, placement.DefaultOptions())
			require.NoError(t, err)
			assert.Equal(t, want[i], write(t, tr, placement.DefaultOptions()))
		})
	}
}

func TestEdgeNumPlugin_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		kind  error
		node  string
	}{
		{input: "((A:1,B:2{1}):0.5{2},C:3{3});", kind: placement.ErrMissingAnnotation, node: "A"},
		{input: "(A{1}{2},B{3});", kind: placement.ErrAmbiguousAnnotation, node: "A"},
		{input: "(A{0},(B{1},C{2}){3}{4})R;", kind: placement.ErrAmbiguousAnnotation},
		{input: "(A{x},B{1});", kind: scan.ErrSyntax, node: "A"},
		{input: "(A{1.5},B{1});", kind: scan.ErrSyntax, node: "A"},
		{input: "(A{0},B{-});", kind: scan.ErrSyntax, node: "B"},
		{input: "(A{0},B{});", kind: scan.ErrSyntax, node: "B"},
		{input: "(A{-1},B{0});", kind: placement.ErrInvalidEdgeNum},
		{input: "(A{1},B{1});", kind: placement.ErrInvalidEdgeNum},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			_, err := placement.ParseTree(tt.input, placement.DefaultOptions())
			require.ErrorIs(t, err, tt.kind)
			if tt.node != "" {
				assert.Contains(t, err.Error(), `"`+tt.node+`"`)
			}
		})
	}
}

func TestAnnotationError(t *testing.T) {
	t.Parallel()

	_, err := placement.ParseTree("(A{1},B);", placement.DefaultOptions())

	var annotation *placement.AnnotationError
	require.True(t, errors.As(err, &annotation))
	assert.Equal(t, "B", annotation.Node)
	assert.Empty(t, annotation.Tags)
	assert.Contains(t, err.Error(), "{42}")
}

func TestValidateEdgeNums_ForeignPayload(t *testing.T) {
	t.Parallel()

	tr, err := newick.ParseTree("(A{0},B{1});", newick.DefaultConverter())
	require.NoError(t, err)

	require.Error(t, placement.ValidateEdgeNums(tr))
}

func TestResetEdgeNums(t *testing.T) {
	t.Parallel()

	tr, err := placement.ParseTree("((A:1{9},B:1{8})C:1{7},D:1{6})R;", placement.DefaultOptions())
	require.NoError(t, err)

	require.NoError(t, placement.ResetEdgeNums(tr))
	assert.Equal(t, "((A:1{0},B:1{1})C:1{2},D:1{3})R;", write(t, tr, placement.DefaultOptions()))
}

func TestAddPlacement(t *testing.T) {
	t.Parallel()

	tr, err := placement.ParseTree("(A:2{0},B:1{1})R;", placement.DefaultOptions())
	require.NoError(t, err)

	require.NoError(t, placement.AddPlacement(tr, 1, placement.Placement{Name: "q1", ProximalLength: 5, LikeWeightRatio: 1}))
	require.NoError(t, placement.AddPlacement(tr, 1, placement.Placement{Name: "q2", ProximalLength: -1, LikeWeightRatio: 0.5}))
	require.NoError(t, placement.AddPlacement(tr, 0, placement.Placement{Name: "q3", ProximalLength: 0.5, LikeWeightRatio: 1}))
	require.ErrorIs(t, placement.AddPlacement(tr, 7, placement.Placement{}), placement.ErrInvalidEdgeNum)

	edges, err := placement.EdgeNumMap(tr)
	require.NoError(t, err)

	b, ok := tree.EdgeDataAs[*placement.EdgeData](tr, edges[1])
	require.True(t, ok)
	require.Equal(t, 2, b.PlacementCount())
	assert.InDelta(t, 1.0, b.Placements[0].ProximalLength, 1e-12)
	assert.InDelta(t, 0.0, b.Placements[1].ProximalLength, 1e-12)
	assert.Equal(t, 3, placement.TotalPlacementCount(tr))

	opts := placement.Options{PrintEdgeNums: true, PrintPlacementCounts: true}
	assert.Equal(t, "(A:2{0}[1],B:1{1}[2])R;", write(t, tr, opts))
	assert.Equal(t, "(A:2,B:1)R;", write(t, tr, placement.Options{}))
}

func TestEdgeData_CloneIsDeep(t *testing.T) {
	t.Parallel()

	tr, err := placement.ParseTree("(A:2{0},B:1{1})R;", placement.DefaultOptions())
	require.NoError(t, err)
	require.NoError(t, placement.AddPlacement(tr, 0, placement.Placement{Name: "q"}))

	cp := tree.Clone(tr)
	require.NoError(t, placement.AddPlacement(cp, 0, placement.Placement{Name: "r"}))

	assert.Equal(t, 1, placement.TotalPlacementCount(tr))
	assert.Equal(t, 2, placement.TotalPlacementCount(cp))
}

func TestOptionsFromConfig(t *testing.T) {
	t.Parallel()

	cfg := config.NewConfig()
	cfg.Placement.PrintPlacementCounts = true
	cfg.Newick.Precision = 4

	assert.Equal(t, placement.Options{
		PrintEdgeNums:        true,
		PrintPlacementCounts: true,
		Precision:            4,
	}, placement.OptionsFromConfig(cfg))
}
