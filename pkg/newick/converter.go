package newick

import (
	"fmt"
	"io"

	"github.com/yaklabco/gotree/pkg/tree"
)

// Converter builds trees from brokers and brokers from trees.
//
// Payloads are created by NewNodeData and NewEdgeData. Plugins run in the order they
// were added, so a plugin can rely on the work of those before it.
type Converter struct {
	NewNodeData func() tree.NodeData
	NewEdgeData func() tree.EdgeData
	Plugins     []Plugin
}

// NewConverter creates a converter with the given payload factories and plugins.
func NewConverter(newNodeData func() tree.NodeData, newEdgeData func() tree.EdgeData, plugins ...Plugin) *Converter {
	return &Converter{
		NewNodeData: newNodeData,
		NewEdgeData: newEdgeData,
		Plugins:     plugins,
	}
}

// DefaultConverter handles names and branch lengths of default payloads.
func DefaultConverter() *Converter {
	return NewConverter(tree.NewDefaultNodeData, tree.NewDefaultEdgeData, DefaultPlugin{})
}

// AddPlugin appends p to the plugin chain.
func (c *Converter) AddPlugin(p Plugin) {
	c.Plugins = append(c.Plugins, p)
}

// BrokerToTree builds a tree from b.
//
// Every element becomes a child of the closest preceding element one level higher.
// The first error of a plugin, or an invalid depth sequence, aborts the build; no
// partial tree is returned.
func (c *Converter) BrokerToTree(b *Broker) (*tree.Tree, error) {
	if err := b.AssignRanks(); err != nil {
		return nil, err
	}

	type open struct {
		node  int
		depth int
	}

	builder := tree.NewBuilder()
	var stack []open

	for _, e := range b.Elements() {
		nodeData := c.NewNodeData()
		for _, p := range c.Plugins {
			if err := p.ReadNode(e, nodeData); err != nil {
				return nil, err
			}
		}

		if e.IsRoot() {
			stack = append(stack, open{node: builder.AddRoot(nodeData), depth: 0})
			continue
		}

		for len(stack) > 0 && stack[len(stack)-1].depth >= e.Depth {
			stack = stack[:len(stack)-1]
		}

		edgeData := c.NewEdgeData()
		for _, p := range c.Plugins {
			if err := p.ReadEdge(e, edgeData); err != nil {
				return nil, err
			}
		}

		parent := stack[len(stack)-1].node
		stack = append(stack, open{node: builder.AddChild(parent, nodeData, edgeData), depth: e.Depth})
	}

	return builder.Build()
}

// TreeToBroker creates one element per node of t, in preorder.
// The ranks of the returned broker are assigned.
func (c *Converter) TreeToBroker(t *tree.Tree) (*Broker, error) {
	b := NewBroker()

	for v := range tree.Preorder(t) {
		e := &Element{Depth: v.Depth}

		for _, p := range c.Plugins {
			if err := p.WriteNode(t.Node(v.Node).Data, e); err != nil {
				return nil, err
			}
		}

		if v.Edge >= 0 {
			for _, p := range c.Plugins {
				if err := p.WriteEdge(t.Edge(v.Edge).Data, e); err != nil {
					return nil, err
				}
			}
		}

		b.Push(e)
	}

	if err := b.AssignRanks(); err != nil {
		return nil, fmt.Errorf("convert tree: %w", err)
	}

	return b, nil
}

// ParseTree reads a single tree from text with default reader options.
func ParseTree(text string, conv *Converter) (*tree.Tree, error) {
	return ParseTreeWith(text, conv, ReaderOptions{})
}

// ParseTreeWith reads a single tree from text.
func ParseTreeWith(text string, conv *Converter, opts ReaderOptions) (*tree.Tree, error) {
	b, err := NewReader(opts).ReadString(text)
	if err != nil {
		return nil, err
	}
	return conv.BrokerToTree(b)
}

// ReadTrees reads every tree from r.
func ReadTrees(r io.Reader, conv *Converter, opts ReaderOptions) ([]*tree.Tree, error) {
	brokers, err := NewReader(opts).ReadAll(r)
	if err != nil {
		return nil, err
	}

	trees := make([]*tree.Tree, 0, len(brokers))
	for _, b := range brokers {
		t, err := conv.BrokerToTree(b)
		if err != nil {
			return nil, err
		}
		trees = append(trees, t)
	}
	return trees, nil
}

// WriteTree returns the Newick text of t.
func WriteTree(t *tree.Tree, conv *Converter, opts WriterOptions) (string, error) {
	b, err := conv.TreeToBroker(t)
	if err != nil {
		return "", err
	}
	return NewWriter(opts).WriteString(b)
}
