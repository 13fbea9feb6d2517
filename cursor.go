// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jscalar

import "go4.org/mem"

// A cursor is a forward-only read position in an input text.
// A new cursor is created for each call to parse.
type cursor struct {
	text mem.RO
	pos  int // offset of the next unconsumed byte
}

// at returns the byte at offset i past the current position, or 0 if that
// offset is at or beyond the end of the input.
func (c *cursor) at(i int) byte {
	if p := c.pos + i; p < c.text.Len() {
		return c.text.At(p)
	}
	return 0
}

// peek returns the byte at the current position, or 0 at end of input.
func (c *cursor) peek() byte { return c.at(0) }

// eof reports whether all the input has been consumed.
func (c *cursor) eof() bool { return c.pos >= c.text.Len() }

// skipSpace advances c past any whitespace.
func (c *cursor) skipSpace() {
	for !c.eof() && isSpace(c.text.At(c.pos)) {
		c.pos++
	}
}

// fail returns a *SyntaxError with the given code for offset off.
func (c *cursor) fail(off int, code Code) error {
	return &SyntaxError{Code: code, Offset: off, Location: lineColAt(c.text, off)}
}

func isSpace(ch byte) bool {
	return ch == ' ' || ch == '\r' || ch == '\n' || ch == '\t'
}

func isDigit(ch byte) bool     { return '0' <= ch && ch <= '9' }
func isDigit1to9(ch byte) bool { return '1' <= ch && ch <= '9' }
