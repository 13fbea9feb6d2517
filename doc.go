// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Package jscalar implements a scanner for scalar JSON values.
//
// # Parsing
//
// Parse and ParseBytes consume a complete JSON text holding exactly one
// value: one of the constants true, false, or null, or a number. Leading and
// trailing whitespace (space, tab, CR, LF) is permitted:
//
//	v, err := jscalar.Parse(" 42 ")
//	if err != nil {
//	   log.Fatalf("Parse failed: %v", err)
//	}
//	log.Printf("%v %v", v.Type(), v.Float64()) // number 42
//
// Strings, arrays, and objects are not supported.
//
// # Errors
//
// A parse that fails reports an error of concrete type *jscalar.SyntaxError,
// whose Code classifies the failure:
//
//	Code            | Meaning
//	--------------- | -------------------------------------------------
//	ExpectValue     | the input is empty or contains only whitespace
//	InvalidValue    | the input is not a constant or well-formed number
//	RootNotSingular | a value was followed by other non-space input
//	NumberTooBig    | a number is too large to represent as a float64
//
// The Code also satisfies the error interface, so callers may write:
//
//	if errors.Is(err, jscalar.NumberTooBig) { ... }
//
// or use Status to recover the code directly. When Parse reports an error,
// the value it returns is null.
//
// # Numbers
//
// Numbers follow the JSON grammar exactly: an optional minus sign, an integer
// part without redundant leading zeroes, an optional fraction, and an
// optional exponent. The text is checked against the grammar before it is
// converted, so inputs such as "+1", ".5", "1.", "1e", "01", "inf" and "NaN"
// are rejected even though strconv would accept some of them.
package jscalar
