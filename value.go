// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jscalar

import (
	"fmt"
	"math"
)

// Type is the type of a scalar JSON value.
type Type byte

// Constants defining the valid Type values.
const (
	Null   Type = iota // constant: null
	True               // constant: true
	False              // constant: false
	Number             // number
)

var typeStr = [...]string{
	Null:   "null",
	True:   "true",
	False:  "false",
	Number: "number",
}

func (t Type) String() string {
	v := int(t)
	if v >= len(typeStr) {
		return fmt.Sprintf("Type(%d)", v)
	}
	return typeStr[v]
}

// A Value is a scalar JSON value produced by the parser.
//
// The zero Value is null. A Value does not retain any reference to the input
// from which it was parsed.
type Value struct {
	typ Type
	num float64 // valid only when typ == Number
}

// Type reports the type of v.
func (v Value) Type() Type { return v.typ }

// Float64 returns the numeric value of v.
// It panics if v is not of type Number.
func (v Value) Float64() float64 {
	if v.typ != Number {
		panic(fmt.Sprintf("jscalar: Float64 of %v value", v.typ))
	}
	return v.num
}

// Bool returns the truth value of v.
// It panics if v is not of type True or False.
func (v Value) Bool() bool {
	switch v.typ {
	case True:
		return true
	case False:
		return false
	}
	panic(fmt.Sprintf("jscalar: Bool of %v value", v.typ))
}

// Equal reports whether v and w have the same type and, for numbers, the
// same bit pattern.
func (v Value) Equal(w Value) bool {
	if v.typ != w.typ {
		return false
	}
	return v.typ != Number || math.Float64bits(v.num) == math.Float64bits(w.num)
}
