package scan

import (
	"errors"
	"fmt"
)

// Error kinds reported by the scanner and the literal parsers.
var (
	// ErrSyntax marks malformed or unterminated input.
	ErrSyntax = errors.New("syntax error")

	// ErrOverflow marks a numeric literal whose magnitude exceeds the positive range.
	ErrOverflow = errors.New("numeric overflow")

	// ErrUnderflow marks a numeric literal whose magnitude exceeds the negative range,
	// or a non-zero float that cannot be represented.
	ErrUnderflow = errors.New("numeric underflow")
)

// ParseError describes a failure at a specific position of an InputStream.
type ParseError struct {
	// Kind is one of ErrSyntax, ErrOverflow or ErrUnderflow.
	Kind error

	// Line is the 1-based line of the offending byte.
	Line int

	// Column is the column of the offending byte.
	Column int

	// Message describes the failure.
	Message string

	// Cause is a read error of the underlying source, if any.
	Cause error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	msg := fmt.Sprintf("line %d, column %d: %v: %s", e.Line, e.Column, e.Kind, e.Message)
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap exposes the error kind and the read error to errors.Is and errors.As.
func (e *ParseError) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Cause}
}

// Position returns the location of the failure.
func (e *ParseError) Position() Position {
	return Position{Line: e.Line, Column: e.Column}
}
