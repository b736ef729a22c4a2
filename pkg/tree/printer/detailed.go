package printer

import (
	"fmt"
	"io"
	"strings"

	"github.com/yaklabco/gotree/pkg/tree"
)

// Detailed dumps the full link structure of a tree: every node with the links of its
// ring, followed by every edge with its two links.
type Detailed struct {
	UseColor bool
	Name     NameFunc
}

// Print writes the dump of t to w.
func (p Detailed) Print(w io.Writer, t *tree.Tree) error {
	_, err := io.WriteString(w, p.String(t))
	if err != nil {
		return fmt.Errorf("write tree: %w", err)
	}
	return nil
}

// String returns the dump of t.
func (p Detailed) String(t *tree.Tree) string {
	styles := NewStyles(p.UseColor)
	name := nameOrDefault(p.Name)

	var sb strings.Builder

	for n := range t.NodeCount() {
		header := styles.Node.Render(fmt.Sprintf("node %d", n))
		if label := name(t, n); label != "" {
			header += " " + styles.Name.Render(label)
		}
		if t.IsRoot(n) {
			header += " " + styles.Root.Render("(root)")
		}
		sb.WriteString(header + "\n")

		start := t.Node(n).PrimaryLink()
		l := start
		for {
			link := t.Link(l)
			fmt.Fprintf(&sb, "  %s  %s  %s  %s  %s\n",
				styles.Link.Render(fmt.Sprintf("link %d", l)),
				styles.Dim.Render(fmt.Sprintf("next %d", link.Next())),
				styles.Dim.Render(fmt.Sprintf("outer %d", link.Outer())),
				styles.Edge.Render(fmt.Sprintf("edge %d", link.Edge())),
				styles.Dim.Render(fmt.Sprintf("-> node %d", t.Link(link.Outer()).Node())),
			)
			l = link.Next()
			if l == start {
				break
			}
		}
	}

	for e := range t.EdgeCount() {
		edge := t.Edge(e)
		fmt.Fprintf(&sb, "%s  primary link %d (node %d)  secondary link %d (node %d)  length %g\n",
			styles.Edge.Render(fmt.Sprintf("edge %d", e)),
			edge.PrimaryLink(), t.PrimaryNode(e),
			edge.SecondaryLink(), t.SecondaryNode(e),
			tree.BranchLength(t, e),
		)
	}

	return sb.String()
}
