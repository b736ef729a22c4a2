package newick

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/yaklabco/gotree/pkg/scan"
	"github.com/yaklabco/gotree/pkg/tree"
)

// Plugin translates between broker elements and tree payloads.
//
// ReadNode and ReadEdge interpret the fields of an element when a tree is built;
// WriteNode and WriteEdge fill an element when a tree is printed. The edge hooks
// receive the element of the node below the edge. Plugins only touch the fields and
// payload types they know about.
type Plugin interface {
	ReadNode(e *Element, data tree.NodeData) error
	ReadEdge(e *Element, data tree.EdgeData) error
	WriteNode(data tree.NodeData, e *Element) error
	WriteEdge(data tree.EdgeData, e *Element) error
}

// BasePlugin provides no-op implementations of every Plugin hook.
// Embed it to implement only the hooks you need.
type BasePlugin struct{}

// ReadNode does nothing.
func (BasePlugin) ReadNode(*Element, tree.NodeData) error { return nil }

// ReadEdge does nothing.
func (BasePlugin) ReadEdge(*Element, tree.EdgeData) error { return nil }

// WriteNode does nothing.
func (BasePlugin) WriteNode(tree.NodeData, *Element) error { return nil }

// WriteEdge does nothing.
func (BasePlugin) WriteEdge(tree.EdgeData, *Element) error { return nil }

// DefaultPlugin maps element names to node names and the first element value to
// the branch length of the edge above the node.
type DefaultPlugin struct {
	// Precision is the number of digits after the decimal point when printing
	// branch lengths. Zero prints the shortest exact representation.
	Precision int
}

// ReadNode copies the element name.
func (p DefaultPlugin) ReadNode(e *Element, data tree.NodeData) error {
	if named, ok := data.(tree.NamedData); ok {
		named.SetNodeName(e.Name)
	}
	return nil
}

// ReadEdge parses the first element value as branch length. The value must be a
// complete floating point literal.
func (p DefaultPlugin) ReadEdge(e *Element, data tree.EdgeData) error {
	weighted, ok := data.(tree.LengthData)
	if !ok || len(e.Values) == 0 {
		return nil
	}

	length, err := ParseValue(e.Values[0])
	if err != nil {
		return fmt.Errorf("branch length of node %q: %w", e.Name, err)
	}
	weighted.SetEdgeBranchLength(length)

	return nil
}

// WriteNode copies the node name.
func (p DefaultPlugin) WriteNode(data tree.NodeData, e *Element) error {
	if named, ok := data.(tree.NamedData); ok {
		e.Name = named.NodeName()
	}
	return nil
}

// WriteEdge appends the branch length as value.
func (p DefaultPlugin) WriteEdge(data tree.EdgeData, e *Element) error {
	if weighted, ok := data.(tree.LengthData); ok {
		e.Values = append(e.Values, FormatValue(weighted.EdgeBranchLength(), p.Precision))
	}
	return nil
}

// ParseValue parses an element value as float64. Unlike scan.ParseFloat on its
// own, trailing characters are an error.
func ParseValue(value string) (float64, error) {
	is := scan.FromString(value)

	v, err := scan.ParseFloat[float64](is)
	if err != nil {
		return 0, err
	}
	mantissa, _, _ := strings.Cut(strings.ToLower(value), "e")
	if is.Good() || !strings.ContainsAny(mantissa, "0123456789") {
		return 0, is.Errorf(scan.ErrSyntax, "invalid number %q", value)
	}

	return v, nil
}

// FormatValue prints v with the given number of decimals, or in its shortest exact
// form if precision is not positive.
func FormatValue(v float64, precision int) string {
	if precision <= 0 {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	return strconv.FormatFloat(v, 'f', precision, 64)
}
