package printer_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gotree/pkg/config"
	"github.com/yaklabco/gotree/pkg/tree"
	"github.com/yaklabco/gotree/pkg/tree/printer"
)

func sampleTree(t *testing.T) *tree.Tree {
	t.Helper()

	b := tree.NewBuilder()
	r := b.AddRoot(&tree.DefaultNodeData{Name: "R"})
	c := b.AddChild(r, &tree.DefaultNodeData{Name: "C"}, &tree.DefaultEdgeData{BranchLength: 1})
	b.AddChild(c, &tree.DefaultNodeData{Name: "A"}, &tree.DefaultEdgeData{BranchLength: 2})
	b.AddChild(c, &tree.DefaultNodeData{Name: "B"}, &tree.DefaultEdgeData{BranchLength: 3})
	f := b.AddChild(r, &tree.DefaultNodeData{Name: "F"}, &tree.DefaultEdgeData{BranchLength: 4})
	b.AddChild(f, &tree.DefaultNodeData{Name: "longer name"}, &tree.DefaultEdgeData{BranchLength: 5})

	result, err := b.Build()
	require.NoError(t, err)
	return result
}

func TestCompact_String(t *testing.T) {
	t.Parallel()

	got := printer.Compact{}.String(sampleTree(t))

	want := strings.Join([]string{
		"R",
		"├── C",
		"│   ├── A",
		"│   └── B",
		"└── F",
		"    └── longer name",
		"",
	}, "\n")
	assert.Equal(t, want, got)
}

func TestCompact_Truncates(t *testing.T) {
	t.Parallel()

	got := printer.Compact{MaxWidth: 10}.String(sampleTree(t))
	lines := strings.Split(strings.TrimSuffix(got, "\n"), "\n")

	require.Len(t, lines, 6)
	assert.Equal(t, "    └── l…", lines[5])
	for _, line := range lines {
		assert.LessOrEqual(t, len([]rune(line)), 10)
	}
}

func TestCompact_CustomName(t *testing.T) {
	t.Parallel()

	p := printer.Compact{
		Name: func(tr *tree.Tree, n int) string {
			if tr.IsLeaf(n) {
				return "leaf"
			}
			return "inner"
		},
	}

	var buf bytes.Buffer
	require.NoError(t, p.Print(&buf, sampleTree(t)))
	assert.Equal(t, 3, strings.Count(buf.String(), "leaf"))
	assert.Equal(t, 3, strings.Count(buf.String(), "inner"))
}

func TestDetailed_String(t *testing.T) {
	t.Parallel()

	tr := sampleTree(t)
	got := printer.Detailed{}.String(tr)

	assert.Contains(t, got, "node 0 R (root)\n")
	assert.Contains(t, got, "  link 0  next 6  outer 1  edge 0  -> node 1\n")
	assert.Contains(t, got, "edge 3  primary link 6 (node 0)  secondary link 7 (node 4)  length 4\n")
	assert.Equal(t, tr.LinkCount(), strings.Count(got, "  link "))
}

func TestDetailed_Print(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, printer.Detailed{}.Print(&buf, sampleTree(t)))
	assert.Equal(t, printer.Detailed{}.String(sampleTree(t)), buf.String())
}

func TestIsColorEnabled(t *testing.T) {
	var buf bytes.Buffer

	assert.True(t, printer.IsColorEnabled(printer.ColorAlways, &buf))
	assert.False(t, printer.IsColorEnabled(printer.ColorNever, &buf))
	assert.False(t, printer.IsColorEnabled(printer.ColorAuto, &buf), "buffers are not terminals")

	t.Setenv("NO_COLOR", "1")
	assert.False(t, printer.IsColorEnabled(printer.ColorAuto, &buf))
}

func TestFromConfig(t *testing.T) {
	t.Parallel()

	cfg := config.NewConfig()
	cfg.Printer.Color = config.ColorAlways
	cfg.Printer.MaxWidth = 12

	var buf bytes.Buffer
	assert.True(t, printer.ColorFromConfig(cfg, &buf))
	assert.True(t, printer.DetailedFromConfig(cfg, &buf).UseColor)
	assert.Equal(t, 12, printer.CompactFromConfig(cfg).MaxWidth)

	cfg.Printer.Color = config.ColorNever
	assert.False(t, printer.ColorFromConfig(cfg, &buf))
}
