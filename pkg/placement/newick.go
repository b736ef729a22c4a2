package placement

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/yaklabco/gotree/pkg/config"
	"github.com/yaklabco/gotree/pkg/newick"
	"github.com/yaklabco/gotree/pkg/scan"
	"github.com/yaklabco/gotree/pkg/tree"
)

var (
	// ErrMissingAnnotation is returned when an edge carries no edge number tag.
	ErrMissingAnnotation = errors.New("missing required annotation")

	// ErrAmbiguousAnnotation is returned when an edge carries more than one tag.
	ErrAmbiguousAnnotation = errors.New("ambiguous annotation")
)

// AnnotationError reports an edge whose tags do not hold exactly one edge number.
type AnnotationError struct {
	// Node is the name of the node below the edge.
	Node string

	// Tags are the tags found on the edge.
	Tags []string

	// Kind is ErrMissingAnnotation or ErrAmbiguousAnnotation.
	Kind error
}

// Error implements the error interface.
func (e *AnnotationError) Error() string {
	return fmt.Sprintf("edge at node %q: %v: expected exactly one tag like {42} for the edge number, found %d",
		e.Node, e.Kind, len(e.Tags))
}

// Unwrap returns the kind of the error.
func (e *AnnotationError) Unwrap() error {
	return e.Kind
}

// EdgeNumPlugin reads and writes edge numbers as element tags.
type EdgeNumPlugin struct {
	newick.BasePlugin

	PrintEdgeNums bool
}

// ReadEdge requires exactly one tag holding a signed integer.
func (p EdgeNumPlugin) ReadEdge(e *newick.Element, data tree.EdgeData) error {
	d, ok := data.(*EdgeData)
	if !ok {
		return nil
	}

	switch len(e.Tags) {
	case 0:
		return &AnnotationError{Node: e.Name, Tags: e.Tags, Kind: ErrMissingAnnotation}
	case 1:
	default:
		return &AnnotationError{Node: e.Name, Tags: e.Tags, Kind: ErrAmbiguousAnnotation}
	}

	num, err := parseEdgeNum(e.Tags[0])
	if err != nil {
		return fmt.Errorf("edge number of node %q: %w", e.Name, err)
	}
	d.EdgeNum = num

	return nil
}

// WriteEdge appends the edge number as tag.
func (p EdgeNumPlugin) WriteEdge(data tree.EdgeData, e *newick.Element) error {
	d, ok := data.(*EdgeData)
	if !ok || !p.PrintEdgeNums {
		return nil
	}
	e.Tags = append(e.Tags, strconv.Itoa(d.EdgeNum))
	return nil
}

func parseEdgeNum(tag string) (int, error) {
	is := scan.FromString(tag)

	num, err := scan.ParseSigned[int](is)
	if err != nil {
		return 0, err
	}
	if is.Good() || tag == "" || tag == "-" || tag == "+" {
		return 0, is.Errorf(scan.ErrSyntax, "invalid edge number %q", tag)
	}
	return num, nil
}

// PlacementCountPlugin writes the number of placements of each edge as comment.
// Counts found in comments on read are informational and ignored.
type PlacementCountPlugin struct {
	newick.BasePlugin

	PrintPlacementCounts bool
}

// WriteEdge appends the placement count as comment.
func (p PlacementCountPlugin) WriteEdge(data tree.EdgeData, e *newick.Element) error {
	d, ok := data.(*EdgeData)
	if !ok || !p.PrintPlacementCounts {
		return nil
	}
	e.Comments = append(e.Comments, strconv.Itoa(d.PlacementCount()))
	return nil
}

// Options controls the Newick representation of placement trees.
type Options struct {
	PrintEdgeNums        bool
	PrintPlacementCounts bool

	// Precision of written branch lengths, see newick.DefaultPlugin.
	Precision int
}

// DefaultOptions prints edge numbers but no placement counts.
func DefaultOptions() Options {
	return Options{PrintEdgeNums: true}
}

// OptionsFromConfig returns the placement options of cfg.
func OptionsFromConfig(cfg *config.Config) Options {
	return Options{
		PrintEdgeNums:        cfg.Placement.PrintEdgeNums,
		PrintPlacementCounts: cfg.Placement.PrintPlacementCounts,
		Precision:            cfg.Newick.Precision,
	}
}

// NewConverter returns a converter for placement trees: default names and branch
// lengths, then edge numbers, then placement counts.
func NewConverter(opts Options) *newick.Converter {
	return newick.NewConverter(
		tree.NewDefaultNodeData,
		NewEdgeData,
		newick.DefaultPlugin{Precision: opts.Precision},
		EdgeNumPlugin{PrintEdgeNums: opts.PrintEdgeNums},
		PlacementCountPlugin{PrintPlacementCounts: opts.PrintPlacementCounts},
	)
}

// ParseTree reads a placement tree and validates its edge numbers.
func ParseTree(text string, opts Options) (*tree.Tree, error) {
	t, err := newick.ParseTree(text, NewConverter(opts))
	if err != nil {
		return nil, err
	}
	if err := ValidateEdgeNums(t); err != nil {
		return nil, err
	}
	return t, nil
}
