package newick_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gotree/pkg/newick"
	"github.com/yaklabco/gotree/pkg/tree"
)

// balancedTree returns a bifurcating tree with 2^depth leaves.
func balancedTree(depth int) string {
	var sb strings.Builder
	leaf := 0

	var write func(d int)
	write = func(d int) {
		if d == 0 {
			fmt.Fprintf(&sb, "taxon_%d:0.%d", leaf, leaf%10)
			leaf++
			return
		}
		sb.WriteByte('(')
		write(d - 1)
		sb.WriteByte(',')
		write(d - 1)
		fmt.Fprintf(&sb, ")inner:1.5[d%d]", d)
	}

	write(depth)
	sb.WriteByte(';')
	return sb.String()
}

// starTree returns a tree with one root and the given number of leaves.
func starTree(leaves int) string {
	var sb strings.Builder
	sb.WriteByte('(')
	for i := range leaves {
		if i > 0 {
			sb.WriteByte(',')
		}
		fmt.Fprintf(&sb, "t%d:1", i)
	}
	sb.WriteString(")R;")
	return sb.String()
}

func TestStarTree_Large(t *testing.T) {
	if testing.Short() {
		t.Skip("large input")
	}
	t.Parallel()

	const leaves = 200_000
	conv := newick.DefaultConverter()

	tr, err := newick.ParseTree(starTree(leaves), conv)
	require.NoError(t, err)
	assert.Equal(t, leaves, tree.LeafCount(tr))

	b, err := conv.TreeToBroker(tr)
	require.NoError(t, err)
	rank, err := b.At(0).Rank()
	require.NoError(t, err)
	assert.Equal(t, leaves, rank)

	text, err := newick.WriteTree(tr, conv, newick.WriterOptions{})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(text, "(t0:"))
	assert.True(t, strings.HasSuffix(text, ")R;"))
	assert.Equal(t, leaves-1, strings.Count(text, ","))
}

func BenchmarkParseTree(b *testing.B) {
	text := balancedTree(10)
	conv := newick.DefaultConverter()
	b.SetBytes(int64(len(text)))
	b.ResetTimer()
	for range b.N {
		if _, err := newick.ParseTree(text, conv); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkWriteTree(b *testing.B) {
	conv := newick.DefaultConverter()
	tr, err := newick.ParseTree(balancedTree(10), conv)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for range b.N {
		if _, err := newick.WriteTree(tr, conv, newick.WriterOptions{}); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkParseStarTree(b *testing.B) {
	conv := newick.DefaultConverter()
	for _, leaves := range []int{1_000, 10_000, 100_000} {
		text := starTree(leaves)
		b.Run(fmt.Sprintf("leaves=%d", leaves), func(b *testing.B) {
			b.SetBytes(int64(len(text)))
			for range b.N {
				if _, err := newick.ParseTree(text, conv); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
