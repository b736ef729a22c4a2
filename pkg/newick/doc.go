// Package newick reads and writes trees in the Newick format.
//
// Text is never turned into a tree directly. A Reader produces a Broker, a flat,
// depth-tagged sequence of Elements in preorder, and a Converter builds the tree
// from it. Writing goes the other way: the Converter fills a Broker from a tree and
// a Writer prints it.
//
// The Converter runs a list of plugins on every element. Each plugin interprets or
// decorates the fields it knows about (names, branch lengths, edge numbers, ...),
// which lets specialized tree kinds extend the format without touching the parser.
package newick
