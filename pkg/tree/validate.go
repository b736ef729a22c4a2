package tree

import (
	"errors"
	"fmt"
)

// ErrInvalidTopology marks a violated link, node or edge invariant.
var ErrInvalidTopology = errors.New("invalid tree topology")

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidTopology, fmt.Sprintf(format, args...))
}

// Validate checks every structural invariant of t:
//   - each link is its outer link's outer link, and both ends share an edge;
//   - following Next from any link of a node returns to it without leaving the node;
//   - node and edge back references point at the right links;
//   - there are 2E links and E+1 nodes;
//   - an Euler tour from the root link visits every link exactly once.
func Validate(t *Tree) error {
	nl, nn, ne := len(t.links), len(t.nodes), len(t.edges)

	if ne == 0 {
		return invalid("tree has no edges")
	}
	if nl != 2*ne {
		return invalid("%d links for %d edges", nl, ne)
	}
	if nn != ne+1 {
		return invalid("%d nodes for %d edges", nn, ne)
	}
	if t.root < 0 || t.root >= nl {
		return invalid("root link %d out of range", t.root)
	}

	if err := validateLinks(t); err != nil {
		return err
	}
	if err := validateNodes(t); err != nil {
		return err
	}
	if err := validateEdges(t); err != nil {
		return err
	}

	return validateTour(t)
}

func validateLinks(t *Tree) error {
	nl := len(t.links)
	for i := range t.links {
		l := &t.links[i]
		if l.index != i {
			return invalid("link %d stores index %d", i, l.index)
		}
		if l.next < 0 || l.next >= nl || l.outer < 0 || l.outer >= nl {
			return invalid("link %d has dangling next or outer", i)
		}
		if l.node < 0 || l.node >= len(t.nodes) || l.edge < 0 || l.edge >= len(t.edges) {
			return invalid("link %d has dangling node or edge", i)
		}
		outer := &t.links[l.outer]
		if outer.outer != i {
			return invalid("outer of outer of link %d is %d", i, outer.outer)
		}
		if outer.edge != l.edge {
			return invalid("link %d and its outer link belong to different edges", i)
		}
		if outer.node == l.node {
			return invalid("link %d and its outer link belong to the same node", i)
		}
		if t.links[l.next].node != l.node {
			return invalid("next of link %d leaves node %d", i, l.node)
		}
	}
	return nil
}

func validateNodes(t *Tree) error {
	nl := len(t.links)
	rootNode := t.links[t.root].node

	for i := range t.nodes {
		n := &t.nodes[i]
		if n.index != i {
			return invalid("node %d stores index %d", i, n.index)
		}
		if n.primary < 0 || n.primary >= nl {
			return invalid("node %d has dangling primary link", i)
		}
		if t.links[n.primary].node != i {
			return invalid("primary link of node %d belongs to node %d", i, t.links[n.primary].node)
		}
		if i != rootNode && t.links[n.primary].index == t.root {
			return invalid("node %d claims the root link", i)
		}

		// The ring must close within the number of links.
		steps := 1
		for l := t.links[n.primary].next; l != n.primary; l = t.links[l].next {
			steps++
			if steps > nl {
				return invalid("ring of node %d does not close", i)
			}
		}
	}

	if t.nodes[rootNode].primary != t.root {
		return invalid("root node %d does not own the root link", rootNode)
	}
	return nil
}

func validateEdges(t *Tree) error {
	nl := len(t.links)
	for i := range t.edges {
		e := &t.edges[i]
		if e.index != i {
			return invalid("edge %d stores index %d", i, e.index)
		}
		if e.primary < 0 || e.primary >= nl || e.secondary < 0 || e.secondary >= nl {
			return invalid("edge %d has dangling links", i)
		}
		if t.links[e.primary].edge != i || t.links[e.secondary].edge != i {
			return invalid("links of edge %d point to another edge", i)
		}
		if t.links[e.primary].outer != e.secondary {
			return invalid("links of edge %d are not outer to each other", i)
		}
		child := t.links[e.secondary].node
		if t.nodes[child].primary != e.secondary {
			return invalid("secondary link of edge %d is not the primary link of node %d", i, child)
		}
	}
	return nil
}

func validateTour(t *Tree) error {
	seen := make([]bool, len(t.links))
	count := 0

	it := NewEulerTour(t, t.root)
	for it.Next() {
		l := it.Link()
		if seen[l] {
			return invalid("euler tour visits link %d twice", l)
		}
		seen[l] = true
		count++
		if count > len(t.links) {
			break
		}
	}

	if count != len(t.links) {
		return invalid("euler tour visits %d of %d links", count, len(t.links))
	}
	return nil
}
