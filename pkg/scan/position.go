package scan

import "fmt"

// Position represents a 1-based line and column in an input.
// A zero column means that no byte has been read on that line yet.
type Position struct {
	Line   int
	Column int
}

// IsValid returns true if this position points at a consumed or current byte.
func (p Position) IsValid() bool {
	return p.Line > 0 && p.Column > 0
}

// String formats the position as "line:column".
func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}
