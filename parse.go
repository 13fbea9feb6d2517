// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jscalar

import (
	"fmt"
	"io"

	"go4.org/mem"
)

// Parse parses text as a single JSON value, optionally surrounded by
// whitespace. In case of error, Parse returns a null Value and an error of
// concrete type [*SyntaxError].
func Parse(text string) (Value, error) { return parse(mem.S(text)) }

// ParseBytes behaves as Parse, but consumes its input from a slice.
// The slice is not modified or retained.
func ParseBytes(text []byte) (Value, error) { return parse(mem.B(text)) }

// ParseReader reads r to completion and parses its contents as Parse does.
// An error reading r is returned as-is, wrapped with context.
func ParseReader(r io.Reader) (Value, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Value{}, fmt.Errorf("read input: %w", err)
	}
	return ParseBytes(data)
}

func parse(text mem.RO) (Value, error) {
	c := &cursor{text: text}
	c.skipSpace()
	v, err := c.parseValue()
	if err != nil {
		return Value{}, err
	}
	c.skipSpace()
	if !c.eof() {
		return Value{}, c.fail(c.pos, RootNotSingular)
	}
	return v, nil
}
