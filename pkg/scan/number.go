package scan

import (
	"errors"
	"math"
	"reflect"
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
)

// ParseUnsigned reads a run of decimal digits into T.
//
// An empty digit run yields 0 and consumes nothing. A leading sign is not part of an
// unsigned literal and is left in the stream. A value larger than the maximum of T
// fails with ErrOverflow.
func ParseUnsigned[T constraints.Unsigned](is *InputStream) (T, error) {
	limit := uint64(^T(0))

	v, err := parseDigits(is, limit, ErrOverflow)
	if err != nil {
		return 0, err
	}

	return T(v), nil
}

// ParseSigned reads an optionally signed run of decimal digits into T.
//
// The sign is consumed even if no digits follow, yielding 0. A positive value above
// the maximum of T fails with ErrOverflow, a negative value below the minimum of T
// fails with ErrUnderflow.
func ParseSigned[T constraints.Signed](is *InputStream) (T, error) {
	if !is.Good() {
		return 0, nil
	}

	negative := false
	if c := is.Current(); IsSign(c) {
		negative = c == '-'
		is.Advance()
	}

	bits := reflect.TypeFor[T]().Bits()
	maxPositive := uint64(1)<<(bits-1) - 1

	if !negative {
		v, err := parseDigits(is, maxPositive, ErrOverflow)
		if err != nil {
			return 0, err
		}
		return T(v), nil
	}

	// The negative range holds one more value than the positive range.
	v, err := parseDigits(is, maxPositive+1, ErrUnderflow)
	if err != nil {
		return 0, err
	}

	return T(-int64(v)), nil
}

// parseDigits accumulates decimal digits while the value stays within limit.
// Exceeding the limit fails with the given kind, positioned at the offending digit.
func parseDigits(is *InputStream, limit uint64, kind error) (uint64, error) {
	var x uint64

	for is.Good() && IsDigit(is.Current()) {
		d := uint64(is.Current() - '0')
		if x > (limit-d)/10 {
			return 0, is.Errorf(kind, "integer literal out of range (limit %d)", limit)
		}
		x = 10*x + d
		is.Advance()
	}

	return x, nil
}

// ParseFloat reads a decimal floating point literal into T.
//
// The accepted form is an optional sign, integer digits, an optional decimal separator
// ('.' or ',') with fractional digits, and an optional exponent introduced by 'e' or
// 'E'. The exponent marker is always consumed. When a sign or digit follows it, a
// signed exponent is read; a sign without digits yields an exponent of 0 and the
// mantissa read so far is returned.
//
// An exponent that does not fit an int32 fails with ErrOverflow or ErrUnderflow
// depending on its sign. A result that rounds to infinity fails with ErrOverflow, a
// non-zero mantissa that rounds to zero fails with ErrUnderflow.
func ParseFloat[T constraints.Float](is *InputStream) (T, error) {
	if !is.Good() {
		return 0, nil
	}

	var mantissa strings.Builder

	if c := is.Current(); IsSign(c) {
		mantissa.WriteByte(c)
		is.Advance()
	}

	digits := readDigits(is, &mantissa)

	if c := is.Current(); is.Good() && (c == '.' || c == ',') {
		mantissa.WriteByte('.')
		is.Advance()
		digits += readDigits(is, &mantissa)
	}

	var exponent int32
	if c := is.Current(); is.Good() && (c == 'e' || c == 'E') {
		is.Advance()
		if c := is.Current(); is.Good() && (IsDigit(c) || IsSign(c)) {
			e, err := ParseSigned[int32](is)
			if err != nil {
				return 0, err
			}
			exponent = e
		}
	}

	text := mantissa.String()
	if digits == 0 {
		return 0, nil
	}

	literal := text + "e" + strconv.FormatInt(int64(exponent), 10)
	bits := reflect.TypeFor[T]().Bits()

	v, err := strconv.ParseFloat(literal, bits)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) && math.IsInf(v, 0) {
			return 0, is.Errorf(ErrOverflow, "float literal %q out of range", literal)
		}
		if errors.Is(err, strconv.ErrRange) {
			return 0, is.Errorf(ErrUnderflow, "float literal %q out of range", literal)
		}
		return 0, is.Errorf(ErrSyntax, "invalid float literal %q", literal)
	}

	if v == 0 && strings.ContainsAny(text, "123456789") {
		return 0, is.Errorf(ErrUnderflow, "float literal %q out of range", literal)
	}

	return T(v), nil
}

// readDigits copies a run of decimal digits into sb and returns how many were read.
func readDigits(is *InputStream, sb *strings.Builder) int {
	n := 0
	for is.Good() && IsDigit(is.Current()) {
		sb.WriteByte(is.Current())
		is.Advance()
		n++
	}
	return n
}
