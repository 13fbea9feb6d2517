// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jscalar

import (
	"fmt"

	"go4.org/mem"
)

// A LineCol describes the line number and column offset of a location in
// source text.
type LineCol struct {
	Line   int // line number, 1-based
	Column int // byte offset of column in line, 0-based
}

func (lc LineCol) String() string { return fmt.Sprintf("%d:%d", lc.Line, lc.Column) }

// lineColAt returns the line and column of offset off in text.
// Offsets past the end of text are clamped to the end.
func lineColAt(text mem.RO, off int) LineCol {
	off = min(off, text.Len())
	head := text.SliceTo(off)
	lc := LineCol{Line: 1, Column: off}
	for {
		i := mem.IndexByte(head, '\n')
		if i < 0 {
			break
		}
		lc.Line++
		lc.Column -= i + 1
		head = head.SliceFrom(i + 1)
	}
	return lc
}
