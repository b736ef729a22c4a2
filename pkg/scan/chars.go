package scan

import "strconv"

// IsDigit reports whether c is an ASCII decimal digit.
func IsDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// IsAlpha reports whether c is an ASCII letter.
func IsAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// IsAlnum reports whether c is an ASCII letter or digit.
func IsAlnum(c byte) bool {
	return IsAlpha(c) || IsDigit(c)
}

// IsSpace reports whether c is ASCII whitespace, including line breaks.
func IsSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	default:
		return false
	}
}

// IsSign reports whether c is a plus or minus sign.
func IsSign(c byte) bool {
	return c == '+' || c == '-'
}

// Describe returns a printable description of a byte for error messages.
func Describe(c byte) string {
	return strconv.QuoteRune(rune(c))
}
