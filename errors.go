package vecmath

import (
	"errors"
	"fmt"
)

var (
	// ErrIndexOutOfRange is returned when an axis index falls outside
	// a space's dimension.
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrNoOperands is returned by aggregate operations invoked with
	// no operands.
	ErrNoOperands = errors.New("at least one operand is required")
)

// ErrInvalidDimension indicates an invalid configured dimension.
type ErrInvalidDimension struct {
	Dimension int
}

func (e *ErrInvalidDimension) Error() string {
	return fmt.Sprintf("invalid dimension: %d", e.Dimension)
}
