package args

import (
	"errors"
	"fmt"
)

// ErrorCode is the negative status reported for a failed parse.
type ErrorCode int

const (
	CodeMissing     ErrorCode = -(iota + 1) // missing arguments
	CodeTooMany                             // too many arguments
	CodeConversion                          // conversion failed
	CodeUnsupported                         // unsupported type
)

var (
	ErrMissingArgs = errors.New("missing arguments")
	ErrTooManyArgs = errors.New("too many arguments")
	ErrConversion  = errors.New("conversion failed")
	ErrUnsupported = errors.New("unsupported type")
)

var codeerrs = map[ErrorCode]error{
	CodeMissing:     ErrMissingArgs,
	CodeTooMany:     ErrTooManyArgs,
	CodeConversion:  ErrConversion,
	CodeUnsupported: ErrUnsupported,
}

// Error reports a failure to parse an argument list.
type Error struct {
	Code ErrorCode

	// Arg is the position at which parsing stopped. For missing arguments
	// this is the number of positions that were filled.
	Arg int

	// Offset is the offset of the first byte of input that was not consumed.
	Offset int

	// Field is the text that caused the error. For too many arguments this
	// is the unconsumed remainder of the input.
	Field string

	// Type is the type expected at Arg.
	Type Type

	// Min is the number of mandatory positions, only meaningful for missing
	// arguments.
	Min int

	// Err is the underlying cause of a conversion error, if any.
	Err error
}

func (e *Error) Error() string {
	switch e.Code {
	case CodeMissing:
		return fmt.Sprintf("missing arguments (got %d/%d), type '%s' expected", e.Arg, e.Min, e.Type)
	case CodeTooMany:
		return fmt.Sprintf("end of arguments expected at '%s'", e.Field)
	}
	return fmt.Sprintf("failed to parse '%s' as type '%s'", e.Field, e.Type)
}

// Is reports whether target is the sentinel error for the error's code.
func (e *Error) Is(target error) bool {
	return codeerrs[e.Code] == target
}

func (e *Error) Unwrap() error {
	return e.Err
}
