package tensor

import (
	"errors"
	"fmt"
)

// Common errors.
var (
	// ErrInvalidArgument is the kind reported for every user-facing operator
	// failure: unreachable output cast, incompatible broadcast shapes, or a
	// failed output resize.
	ErrInvalidArgument = errors.New("invalid argument")
	ErrResizeFailed    = errors.New("resize failed")
	ErrInvalidShape    = errors.New("invalid shape")
	ErrDTypeMismatch   = errors.New("dtype mismatch")
)

// OpError records which operator failed and why.
type OpError struct {
	Op  string // Operator name (e.g., "mul.out")
	Err error  // Underlying cause, always wraps ErrInvalidArgument
}

// Error implements the error interface.
func (e *OpError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

// Unwrap exposes the cause to errors.Is / errors.As.
func (e *OpError) Unwrap() error {
	return e.Err
}

// InvalidArgument builds an *OpError for op whose cause wraps ErrInvalidArgument.
func InvalidArgument(op, format string, args ...any) error {
	return &OpError{
		Op:  op,
		Err: fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...)),
	}
}

// WrapInvalidArgument attaches ErrInvalidArgument to an existing cause so both
// remain visible through errors.Is.
func WrapInvalidArgument(op string, cause error) error {
	return &OpError{
		Op:  op,
		Err: fmt.Errorf("%w: %w", ErrInvalidArgument, cause),
	}
}
