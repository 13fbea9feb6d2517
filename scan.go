// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jscalar

import (
	"math"

	"go4.org/mem"
)

// parseValue consumes a single value of any type.
// Precondition: c is not positioned at whitespace.
func (c *cursor) parseValue() (Value, error) {
	if c.eof() {
		return Value{}, c.fail(c.pos, ExpectValue)
	}
	switch c.peek() {
	case 't':
		return c.parseLiteral("true", True)
	case 'f':
		return c.parseLiteral("false", False)
	case 'n':
		return c.parseLiteral("null", Null)
	default:
		return c.parseNumber()
	}
}

// parseLiteral consumes the constant lit, reporting t on success.
// Precondition: c.peek() == lit[0].
//
// On success the cursor is positioned just after lit, whether or not other
// letters follow it.
func (c *cursor) parseLiteral(lit string, t Type) (Value, error) {
	for i := 1; i < len(lit); i++ {
		if c.at(i) != lit[i] {
			return Value{}, c.fail(c.pos+i, InvalidValue)
		}
	}
	c.pos += len(lit)
	return Value{typ: t}, nil
}

// parseNumber consumes a number. The text is first checked against the JSON
// number grammar, and only then converted.
//
//	number = [ "-" ] int [ frac ] [ exp ]
//	int    = "0" / ( digit1-9 *digit )
//	frac   = "." 1*digit
//	exp    = ( "e" / "E" ) [ "-" / "+" ] 1*digit
func (c *cursor) parseNumber() (Value, error) {
	i := 0
	if c.at(i) == '-' {
		i++
	}

	// Integer part. A leading zero is the entire integer part: 0.12 is OK,
	// 01.2 is not.
	if ch := c.at(i); ch == '0' {
		i++
		if isDigit(c.at(i)) {
			return Value{}, c.fail(c.pos+i, InvalidValue)
		}
	} else if isDigit1to9(ch) {
		i = c.skipDigits(i + 1)
	} else {
		return Value{}, c.fail(c.pos+i, InvalidValue)
	}

	// Fraction: at least one digit must follow the decimal point.
	if c.at(i) == '.' {
		i++
		if !isDigit(c.at(i)) {
			return Value{}, c.fail(c.pos+i, InvalidValue)
		}
		i = c.skipDigits(i)
	}

	// Exponent: at least one digit must follow the marker and sign.
	if ch := c.at(i); ch == 'e' || ch == 'E' {
		i++
		if ch := c.at(i); ch == '+' || ch == '-' {
			i++
		}
		if !isDigit(c.at(i)) {
			return Value{}, c.fail(c.pos+i, InvalidValue)
		}
		i = c.skipDigits(i)
	}

	f, err := mem.ParseFloat(c.text.Slice(c.pos, c.pos+i), 64)
	if math.IsInf(f, 0) {
		return Value{}, c.fail(c.pos, NumberTooBig)
	} else if err != nil {
		return Value{}, c.fail(c.pos, InvalidValue)
	}
	c.pos += i
	return Value{typ: Number, num: f}, nil
}

// skipDigits returns the first offset at or after i, relative to the current
// position, that is not a decimal digit.
func (c *cursor) skipDigits(i int) int {
	for isDigit(c.at(i)) {
		i++
	}
	return i
}
