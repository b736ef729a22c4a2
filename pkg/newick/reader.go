package newick

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/yaklabco/gotree/internal/logging"
	"github.com/yaklabco/gotree/pkg/scan"
)

// ReaderOptions controls how Newick text is interpreted.
type ReaderOptions struct {
	// ReplaceUnderscores turns underscores in unquoted names into blanks.
	ReplaceUnderscores bool

	// Logger receives debug summaries of parsed input. Callers holding a context
	// pass logging.FromContext(ctx); nil means logging.Default().
	Logger *log.Logger
}

// Reader parses Newick text into brokers.
type Reader struct {
	opts ReaderOptions
}

// NewReader creates a reader with the given options.
func NewReader(opts ReaderOptions) *Reader {
	return &Reader{opts: opts}
}

func (r *Reader) logger() *log.Logger {
	if r.opts.Logger != nil {
		return r.opts.Logger
	}
	return logging.Default()
}

// ReadBroker parses one tree from is, including an optional terminating ';'.
// The ranks of the returned broker are assigned. On failure the error is a
// *scan.ParseError pointing at the offending character.
func (r *Reader) ReadBroker(is *scan.InputStream) (*Broker, error) {
	b, _, err := r.readTree(is)
	return b, err
}

func (r *Reader) readTree(is *scan.InputStream) (*Broker, bool, error) {
	is.SkipWhitespace()
	if !is.Good() {
		return nil, false, r.streamError(is, "expected a tree, found end of input")
	}

	b := NewBroker()
	if err := r.readNode(is, b, 0); err != nil {
		return nil, false, err
	}

	is.SkipWhitespace()
	terminated := is.Accept(';')

	if is.Err() != nil {
		return nil, false, is.Errorf(scan.ErrSyntax, "read input")
	}

	if err := b.AssignRanks(); err != nil {
		// The grammar only produces valid depth sequences.
		panic(fmt.Sprintf("newick: reader produced an invalid broker: %v", err))
	}

	r.logger().Debug("parsed newick tree", logging.FieldElements, b.Len())

	return b, terminated, nil
}

// ReadString parses a single tree. Anything but whitespace after the tree is an error.
func (r *Reader) ReadString(s string) (*Broker, error) {
	is := scan.FromString(s)

	b, err := r.ReadBroker(is)
	if err != nil {
		return nil, err
	}

	is.SkipWhitespace()
	if is.Good() {
		return nil, is.Errorf(scan.ErrSyntax, "unexpected %s after the end of the tree", scan.Describe(is.Current()))
	}

	return b, nil
}

// ReadAll parses every tree in rd. Consecutive trees must be separated by ';'.
func (r *Reader) ReadAll(rd io.Reader) ([]*Broker, error) {
	is := scan.NewInputStream(rd)

	var result []*Broker
	for {
		is.SkipWhitespace()
		if !is.Good() {
			break
		}

		b, terminated, err := r.readTree(is)
		if err != nil {
			return nil, err
		}
		result = append(result, b)

		is.SkipWhitespace()
		if !terminated && is.Good() {
			return nil, is.Errorf(scan.ErrSyntax, "expected ';' after tree %d, found %s",
				len(result), scan.Describe(is.Current()))
		}
	}

	if err := is.Err(); err != nil {
		return nil, is.Errorf(scan.ErrSyntax, "read input")
	}

	r.logger().Debug("parsed newick input", logging.FieldTrees, len(result))

	return result, nil
}

func (r *Reader) streamError(is *scan.InputStream, message string) error {
	if is.Err() != nil {
		return is.Errorf(scan.ErrSyntax, "read input")
	}
	return is.Errorf(scan.ErrSyntax, "%s", message)
}

// readNode parses a node with its subtree. The element is pushed before its
// children so that the broker ends up in preorder.
func (r *Reader) readNode(is *scan.InputStream, b *Broker, depth int) error {
	e := &Element{Depth: depth}
	b.Push(e)

	is.SkipWhitespace()
	if is.Accept('(') {
		for {
			if err := r.readNode(is, b, depth+1); err != nil {
				return err
			}

			is.SkipWhitespace()
			if is.Accept(',') {
				continue
			}
			if is.Accept(')') {
				break
			}
			if !is.Good() {
				return r.streamError(is, "expected ',' or ')', found end of input")
			}
			return is.Errorf(scan.ErrSyntax, "expected ',' or ')', found %s", scan.Describe(is.Current()))
		}
	}

	return r.readAttributes(is, e)
}

// readAttributes parses the name, values, tags and comments following a node,
// in any order.
func (r *Reader) readAttributes(is *scan.InputStream, e *Element) error {
	named := false

	for {
		is.SkipWhitespace()
		if !is.Good() {
			return nil
		}

		switch c := is.Current(); c {
		case '(', ')', ',', ';':
			return nil

		case ':':
			is.Advance()
			is.SkipWhitespace()
			value := is.ReadUntil(isDelimiter)
			if value == "" {
				return is.Errorf(scan.ErrSyntax, "missing value after ':'")
			}
			e.Values = append(e.Values, value)

		case '{':
			text, err := readEnclosed(is, '}', "tag")
			if err != nil {
				return err
			}
			e.Tags = append(e.Tags, text)

		case '[':
			text, err := readEnclosed(is, ']', "comment")
			if err != nil {
				return err
			}
			e.Comments = append(e.Comments, text)

		case '}', ']':
			return is.Errorf(scan.ErrSyntax, "unexpected %s", scan.Describe(c))

		default:
			if named {
				return is.Errorf(scan.ErrSyntax, "node already has the name %q", e.Name)
			}
			name, err := r.readName(is)
			if err != nil {
				return err
			}
			e.Name = name
			named = true
		}
	}
}

func (r *Reader) readName(is *scan.InputStream) (string, error) {
	switch is.Current() {
	case '\'':
		return scan.ParseQuotedString(is, scan.QuoteOptions{UseTwinQuotes: true})
	case '"':
		return scan.ParseQuotedString(is, scan.QuoteOptions{UseEscapes: true})
	}

	name := is.ReadUntil(isDelimiter)
	if r.opts.ReplaceUnderscores {
		name = strings.ReplaceAll(name, "_", " ")
	}
	return name, nil
}

// readEnclosed reads the text between the opening byte under the cursor and close.
func readEnclosed(is *scan.InputStream, closing byte, what string) (string, error) {
	start := is.Position()
	is.Advance()

	text := is.ReadUntil(func(c byte) bool { return c == closing })
	if !is.Good() {
		if is.Err() != nil {
			return "", is.Errorf(scan.ErrSyntax, "read input")
		}
		return "", is.Errorf(scan.ErrSyntax, "unterminated %s opened at %s", what, start)
	}
	is.Advance()

	return text, nil
}

// isDelimiter reports whether c ends an unquoted name or value.
func isDelimiter(c byte) bool {
	return scan.IsSpace(c) || strings.IndexByte("()[]{},:;", c) >= 0
}
