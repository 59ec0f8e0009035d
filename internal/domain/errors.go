package domain

import (
	"errors"
	"fmt"
)

// Validation failures raised by OrderBuilder. Every failure aborts the
// offending call without mutating the builder; match with errors.Is.
var (
	ErrInvalidChoice   = errors.New("invalid choice")
	ErrLimitExceeded   = errors.New("limit exceeded")
	ErrOutOfRange      = errors.New("out of range")
	ErrInvalidArgument = errors.New("invalid argument")
	ErrMissingField    = errors.New("missing field")
)

// Build failures for the two mandatory fields. Both wrap ErrMissingField
// but stay independently matchable.
var (
	ErrMissingBase = fmt.Errorf("%w: base", ErrMissingField)
	ErrMissingSize = fmt.Errorf("%w: size", ErrMissingField)
)
