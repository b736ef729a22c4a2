package scan

import "strings"

// QuoteOptions controls how ParseQuotedString interprets its input.
type QuoteOptions struct {
	// UseEscapes enables backslash escapes inside the string. "\n", "\r" and "\t"
	// translate to the control characters; any other escaped byte, including the
	// backslash and the delimiter, is taken literally.
	UseEscapes bool

	// UseTwinQuotes treats a doubled delimiter inside the string as one literal
	// delimiter, as in 'it''s'.
	UseTwinQuotes bool

	// IncludeQuotes keeps the opening and closing delimiters in the result.
	IncludeQuotes bool
}

// ParseQuotedString reads a delimited string.
//
// The byte under the cursor is the delimiter, whatever it is; the string ends at its
// next unescaped occurrence, which is consumed. Reaching the end of the input before
// the closing delimiter, or directly after an escaping backslash, fails with ErrSyntax.
// An empty input yields an empty string.
func ParseQuotedString(is *InputStream, opts QuoteOptions) (string, error) {
	if !is.Good() {
		return "", nil
	}

	start := is.Position()
	qmark := is.Current()
	is.Advance()

	var sb strings.Builder
	if opts.IncludeQuotes {
		sb.WriteByte(qmark)
	}

	closed := false
	for is.Good() {
		c := is.Current()

		if c == qmark {
			is.Advance()
			if opts.UseTwinQuotes && is.Good() && is.Current() == qmark {
				sb.WriteByte(qmark)
				is.Advance()
				continue
			}
			closed = true
			break
		}

		if opts.UseEscapes && c == '\\' {
			is.Advance()
			if !is.Good() {
				return "", is.Errorf(ErrSyntax, "unexpected end of input after escape character")
			}
			sb.WriteByte(unescape(is.Current()))
			is.Advance()
			continue
		}

		sb.WriteByte(c)
		is.Advance()
	}

	if !closed {
		return "", is.Errorf(ErrSyntax,
			"unexpected end of input: string opened with %s at %s is not closed", Describe(qmark), start)
	}

	if opts.IncludeQuotes {
		sb.WriteByte(qmark)
	}

	return sb.String(), nil
}

// unescape translates the byte following a backslash.
func unescape(c byte) byte {
	switch c {
	case 'n':
		return '\n'
	case 'r':
		return '\r'
	case 't':
		return '\t'
	default:
		return c
	}
}
