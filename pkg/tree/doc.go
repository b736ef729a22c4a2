// Package tree provides a link-based tree topology stored in flat arenas.
//
// A Tree owns slices of links, nodes and edges and every cross reference between them
// is an index into those slices. Each node owns a ring of links connected through
// Next, with one link per incident edge; the Outer link of a link is the link at the
// other end of its edge. The ring of a non-root node starts with its primary link,
// which points toward the root, followed by the links to its children in insertion
// order. The root has no parent edge: its ring holds only child links, and the first
// of them is both the root link of the tree and the primary link of the root node.
//
// Trees are created through a Builder and are immutable in shape afterwards. Node and
// edge payloads are attached through the NodeData and EdgeData interfaces so that
// specialized tree kinds can carry their own fields.
package tree
