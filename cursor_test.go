// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jscalar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go4.org/mem"
)

func newCursor(s string) *cursor { return &cursor{text: mem.S(s)} }

func TestSkipSpace(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"", 0},
		{"x", 0},
		{" \t\r\n", 4},
		{"  true", 2},
		{"\n\v", 1}, // vertical tab is not JSON whitespace
		{"\f", 0},
	}
	for _, tc := range tests {
		c := newCursor(tc.input)
		c.skipSpace()
		assert.Equal(t, tc.want, c.pos, "input %q", tc.input)

		c.skipSpace()
		assert.Equal(t, tc.want, c.pos, "input %q (second skip)", tc.input)
	}
}

func TestCursorAt(t *testing.T) {
	c := newCursor("ab")
	assert.Equal(t, byte('a'), c.peek())
	assert.Equal(t, byte('b'), c.at(1))
	assert.Equal(t, byte(0), c.at(2))
	assert.False(t, c.eof())

	c.pos = 2
	assert.Equal(t, byte(0), c.peek())
	assert.True(t, c.eof())
}

func TestParseLiteralCursor(t *testing.T) {
	tests := []struct {
		input string
		lit   string
		typ   Type
		end   int
	}{
		{"true", "true", True, 4},
		{"truex", "true", True, 4},
		{"false,", "false", False, 5},
		{"null null", "null", Null, 4},
	}
	for _, tc := range tests {
		c := newCursor(tc.input)
		v, err := c.parseLiteral(tc.lit, tc.typ)
		if assert.NoError(t, err, "input %q", tc.input) {
			assert.Equal(t, tc.typ, v.Type(), "input %q", tc.input)
			assert.Equal(t, tc.end, c.pos, "input %q", tc.input)
		}
	}
}

func TestParseNumberCursor(t *testing.T) {
	tests := []struct {
		input string
		want  float64
		end   int
	}{
		{"0", 0, 1},
		{"0x0", 0, 1},
		{"-12.5e3,", -12500, 7},
		{"7 ", 7, 1},
		{"1E+2]", 100, 4},
		{"3.25true", 3.25, 4},
	}
	for _, tc := range tests {
		c := newCursor(tc.input)
		v, err := c.parseNumber()
		if assert.NoError(t, err, "input %q", tc.input) {
			assert.Equal(t, tc.want, v.Float64(), "input %q", tc.input)
			assert.Equal(t, tc.end, c.pos, "input %q", tc.input)
		}
	}
}

func TestParseNumberFailureKeepsStart(t *testing.T) {
	for _, input := range []string{"-", "1.", "1e+", "0123", "1e400"} {
		c := newCursor(input)
		_, err := c.parseNumber()
		assert.Error(t, err, "input %q", input)
		assert.Equal(t, 0, c.pos, "input %q", input)
	}
}

func TestLineColAt(t *testing.T) {
	const text = "ab\ncd\n\nef"
	tests := []struct {
		off  int
		want LineCol
	}{
		{0, LineCol{1, 0}},
		{2, LineCol{1, 2}},
		{3, LineCol{2, 0}},
		{4, LineCol{2, 1}},
		{6, LineCol{3, 0}},
		{8, LineCol{4, 1}},
		{9, LineCol{4, 2}},
		{100, LineCol{4, 2}},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, lineColAt(mem.S(text), tc.off), "offset %d", tc.off)
	}
}
