package scan

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
)

// InputStream is a positional cursor over a byte source.
//
// The stream always holds the byte under the cursor. Line and column describe that
// byte: the first byte of a non-empty input sits at line 1, column 1. Consuming a byte
// advances the column, and consuming a newline moves to column 1 of the next line.
// Reaching the end of the input still advances the column, so after reading "12" the
// column is 3. An empty input stays at column 0.
type InputStream struct {
	src    io.ByteReader
	cur    byte
	eof    bool
	err    error
	line   int
	column int
}

// NewInputStream creates a stream reading from r.
// Readers that do not implement io.ByteReader are buffered.
func NewInputStream(r io.Reader) *InputStream {
	src, ok := r.(io.ByteReader)
	if !ok {
		src = bufio.NewReader(r)
	}

	is := &InputStream{
		src:  src,
		line: 1,
	}

	is.load()
	if !is.eof {
		is.column = 1
	}

	return is
}

// FromString creates a stream over an in-memory string.
func FromString(s string) *InputStream {
	return NewInputStream(strings.NewReader(s))
}

// FromBytes creates a stream over an in-memory byte slice.
func FromBytes(b []byte) *InputStream {
	return NewInputStream(bytes.NewReader(b))
}

// load reads the next byte of the source into the cursor.
func (is *InputStream) load() {
	c, err := is.src.ReadByte()
	if err != nil {
		is.eof = true
		is.cur = 0
		if !errors.Is(err, io.EOF) {
			is.err = err
		}
		return
	}
	is.cur = c
}

// Good returns true while there is a byte under the cursor.
func (is *InputStream) Good() bool {
	return !is.eof
}

// EOF returns true once the input is exhausted.
func (is *InputStream) EOF() bool {
	return is.eof
}

// Current returns the byte under the cursor, or 0 at the end of the input.
func (is *InputStream) Current() byte {
	return is.cur
}

// Line returns the 1-based line of the cursor.
func (is *InputStream) Line() int {
	return is.line
}

// Column returns the column of the cursor.
func (is *InputStream) Column() int {
	return is.column
}

// Position returns the line and column of the cursor.
func (is *InputStream) Position() Position {
	return Position{Line: is.line, Column: is.column}
}

// Err returns the read error that ended the stream early, if any.
// Reaching the regular end of the input is not an error.
func (is *InputStream) Err() error {
	return is.err
}

// Advance consumes the byte under the cursor. It does nothing at the end of the input.
func (is *InputStream) Advance() {
	if is.eof {
		return
	}

	if is.cur == '\n' {
		is.line++
		is.column = 1
	} else {
		is.column++
	}

	is.load()
}

// Accept consumes the current byte if it equals c and reports whether it did.
func (is *InputStream) Accept(c byte) bool {
	if is.eof || is.cur != c {
		return false
	}
	is.Advance()
	return true
}

// Expect consumes c, or returns a syntax error positioned at the mismatching byte.
func (is *InputStream) Expect(c byte) error {
	if is.eof {
		return is.Errorf(ErrSyntax, "expected %s, found end of input", Describe(c))
	}
	if is.cur != c {
		return is.Errorf(ErrSyntax, "expected %s, found %s", Describe(c), Describe(is.cur))
	}
	is.Advance()
	return nil
}

// SkipWhile consumes bytes as long as pred holds.
func (is *InputStream) SkipWhile(pred func(c byte) bool) {
	for !is.eof && pred(is.cur) {
		is.Advance()
	}
}

// SkipWhitespace consumes blanks and line breaks.
func (is *InputStream) SkipWhitespace() {
	is.SkipWhile(IsSpace)
}

// ReadWhile consumes and returns bytes as long as pred holds.
func (is *InputStream) ReadWhile(pred func(c byte) bool) string {
	var sb strings.Builder
	for !is.eof && pred(is.cur) {
		sb.WriteByte(is.cur)
		is.Advance()
	}
	return sb.String()
}

// ReadUntil consumes and returns bytes up to, but excluding, the first byte for which
// pred holds.
func (is *InputStream) ReadUntil(pred func(c byte) bool) string {
	return is.ReadWhile(func(c byte) bool {
		return !pred(c)
	})
}

// Errorf builds a ParseError of the given kind anchored at the cursor.
func (is *InputStream) Errorf(kind error, format string, args ...any) *ParseError {
	return &ParseError{
		Kind:    kind,
		Line:    is.line,
		Column:  is.column,
		Message: fmt.Sprintf(format, args...),
		Cause:   is.err,
	}
}
