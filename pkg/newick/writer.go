package newick

import (
	"fmt"
	"io"
	"strings"
)

// WriterOptions controls which element fields are printed.
type WriterOptions struct {
	OmitNames    bool
	OmitValues   bool
	OmitTags     bool
	OmitComments bool

	// TrailingNewline appends a line break after the terminating ';'.
	TrailingNewline bool
}

// Writer prints brokers as Newick text.
type Writer struct {
	opts WriterOptions
}

// NewWriter creates a writer with the given options.
func NewWriter(opts WriterOptions) *Writer {
	return &Writer{opts: opts}
}

// WriteString returns the Newick text of b. The ranks of b must be assigned.
func (w *Writer) WriteString(b *Broker) (string, error) {
	if b.Len() == 0 {
		return "", fmt.Errorf("write broker: %w: broker is empty", ErrInvalidDepth)
	}

	var sb strings.Builder

	next, err := w.writeElement(&sb, b.Elements(), 0)
	if err != nil {
		return "", err
	}
	if next != b.Len() {
		return "", fmt.Errorf("write broker: %w: ranks cover %d of %d elements", ErrInvalidDepth, next, b.Len())
	}

	sb.WriteByte(';')
	if w.opts.TrailingNewline {
		sb.WriteByte('\n')
	}

	return sb.String(), nil
}

// Write prints b to out.
func (w *Writer) Write(out io.Writer, b *Broker) error {
	text, err := w.WriteString(b)
	if err != nil {
		return err
	}
	if _, err := io.WriteString(out, text); err != nil {
		return fmt.Errorf("write tree: %w", err)
	}
	return nil
}

// writeElement prints the subtree starting at elements[i] and returns the index of
// the first element after it.
func (w *Writer) writeElement(sb *strings.Builder, elements []*Element, i int) (int, error) {
	e := elements[i]

	rank, err := e.Rank()
	if err != nil {
		return 0, fmt.Errorf("write element %d: %w", i, err)
	}

	next := i + 1
	if rank > 0 {
		sb.WriteByte('(')
		for c := range rank {
			if next >= len(elements) {
				return 0, fmt.Errorf("write element %d: %w: missing children", i, ErrInvalidDepth)
			}
			if c > 0 {
				sb.WriteByte(',')
			}
			next, err = w.writeElement(sb, elements, next)
			if err != nil {
				return 0, err
			}
		}
		sb.WriteByte(')')
	}

	w.writeAttributes(sb, e)

	return next, nil
}

func (w *Writer) writeAttributes(sb *strings.Builder, e *Element) {
	if !w.opts.OmitNames {
		sb.WriteString(QuoteName(e.Name))
	}
	if !w.opts.OmitValues {
		for _, v := range e.Values {
			sb.WriteString(":" + v)
		}
	}
	if !w.opts.OmitTags {
		for _, tag := range e.Tags {
			sb.WriteString("{" + tag + "}")
		}
	}
	if !w.opts.OmitComments {
		for _, c := range e.Comments {
			sb.WriteString("[" + c + "]")
		}
	}
}

// QuoteName returns name as it must appear in Newick text. Names containing blanks,
// quotes or any of ()[]{},:; are enclosed in single quotes with inner quotes doubled.
func QuoteName(name string) string {
	if !strings.ContainsAny(name, " \t\r\n()[]{},:;'\"") {
		return name
	}
	return "'" + strings.ReplaceAll(name, "'", "''") + "'"
}
