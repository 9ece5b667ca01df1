package steamid

import (
	"errors"
	"fmt"
)

var (
	ErrParse            = errors.New("parse error")
	ErrConversion       = errors.New("conversion error")
	ErrInvalidEnumValue = errors.New("invalid enum value")
)

// ParseError reports malformed identifier text.
type ParseError struct {
	Notation string
	Input    string
	Reason   string
	Err      error
}

func (e *ParseError) Error() string {
	msg := fmt.Sprintf("parse %s %q: %s", e.Notation, e.Input, e.Reason)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}

	return msg
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}

// ConversionError reports a SteamID that has no representation in the
// requested notation.
type ConversionError struct {
	ID     SteamID
	Target string
	Reason string
	Err    error
}

func (e *ConversionError) Error() string {
	msg := fmt.Sprintf("convert %d to %s: %s", uint64(e.ID), e.Target, e.Reason)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}

	return msg
}

func (e *ConversionError) Unwrap() error {
	return e.Err
}

func (e *ConversionError) Is(target error) bool {
	return target == ErrConversion
}

// InvalidEnumValueError reports a raw integer or letter outside a closed
// enumeration.
type InvalidEnumValueError struct {
	Enum  string
	Value string
}

func (e *InvalidEnumValueError) Error() string {
	return fmt.Sprintf("invalid %s value %s", e.Enum, e.Value)
}

func (e *InvalidEnumValueError) Is(target error) bool {
	return target == ErrInvalidEnumValue
}

func parseError(notation, input, reason string, err error) error {
	return &ParseError{
		Notation: notation,
		Input:    input,
		Reason:   reason,
		Err:      err,
	}
}
