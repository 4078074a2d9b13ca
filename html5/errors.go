package html5

import (
	"errors"
	"fmt"
)

// ParseError is a non-fatal parse error reported during tokenization or
// tree construction (spec §7): a WHATWG error-name Code plus the scalar
// offset it was reported at. Two ParseErrors compare equal under errors.Is
// when their Code matches, following the teacher's
// UnrecognizedArgumentError/DecodeError pattern in chtml/err.go.
type ParseError struct {
	Code string
	Pos  Position
	Err  error
}

// Position locates a parse error in the input stream: a 0-based scalar
// offset plus the 1-based line/column spec.md's position tracking implies.
type Position struct {
	Offset int
	Line   int
	Column int
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s at %d:%d: %s", e.Code, e.Pos.Line, e.Pos.Column, e.Err.Error())
	}
	return fmt.Sprintf("%s at %d:%d", e.Code, e.Pos.Line, e.Pos.Column)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func (e *ParseError) Is(target error) bool {
	var pe *ParseError
	if errors.As(target, &pe) {
		return e.Code == pe.Code
	}
	return false
}

// EncodeError reports a fatal encoder-side failure — input that the chosen
// encoding's error policy (spec §4.1's "Fatal" mode) cannot recover from.
type EncodeError struct {
	Encoding string
	Err      error
}

func (e *EncodeError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("encode error (%s)", e.Encoding)
	}
	return fmt.Sprintf("encode error (%s): %s", e.Encoding, e.Err.Error())
}

func (e *EncodeError) Unwrap() error {
	return e.Err
}

func (e *EncodeError) Is(target error) bool {
	var ee *EncodeError
	if errors.As(target, &ee) {
		return e.Encoding == ee.Encoding
	}
	return false
}
