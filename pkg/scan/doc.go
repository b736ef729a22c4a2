// Package scan provides a positional byte cursor and the literal parsers built on it.
//
// An InputStream tracks the line and column of its current byte. Parsers consume the
// longest valid prefix of the remaining input and leave the stream positioned on the
// first byte they could not use, so callers can verify exactly how much was read and
// report failures with a precise location.
package scan
