// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jscalar

import (
	"errors"
	"fmt"
)

// A Code classifies the outcome of a parse.
//
// Every Code other than OK satisfies the error interface, so that the
// classification of a *SyntaxError can be checked with errors.Is.
type Code byte

// Constants defining the valid Code values.
const (
	OK              Code = iota // a value was parsed and the input consumed
	ExpectValue                 // no value in the input
	InvalidValue                // malformed constant or number
	RootNotSingular             // extra input after the value
	NumberTooBig                // number out of range for float64
)

var codeStr = [...]string{
	OK:              "ok",
	ExpectValue:     "expected a value",
	InvalidValue:    "invalid value",
	RootNotSingular: "unexpected input after value",
	NumberTooBig:    "number out of range",
}

func (c Code) String() string {
	v := int(c)
	if v >= len(codeStr) {
		return fmt.Sprintf("Code(%d)", v)
	}
	return codeStr[v]
}

// Error satisfies the error interface.
func (c Code) Error() string { return c.String() }

// SyntaxError is the concrete type of errors reported by the parser.
type SyntaxError struct {
	Code     Code    // the classification of the failure
	Offset   int     // byte offset in the input where the failure was found
	Location LineCol // line and column corresponding to Offset
}

// Error satisfies the error interface.
func (s *SyntaxError) Error() string {
	return fmt.Sprintf("at %s: %s", s.Location, s.Code)
}

// Unwrap supports error wrapping.
func (s *SyntaxError) Unwrap() error { return s.Code }

// Status reports the Code for an error returned by Parse. It returns OK if
// err == nil. An error that was not reported by the parser, such as a read
// error from ParseReader, is classified as InvalidValue.
func Status(err error) Code {
	if err == nil {
		return OK
	}
	var serr *SyntaxError
	if errors.As(err, &serr) {
		return serr.Code
	}
	return InvalidValue
}
