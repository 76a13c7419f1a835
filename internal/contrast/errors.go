package contrast

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidColourInput is matched by every *InvalidColourError.
	ErrInvalidColourInput = errors.New("invalid colour input")

	// ErrUnresolvableLockState is returned when both colours are locked and
	// nothing is left to adjust.
	ErrUnresolvableLockState = errors.New("unresolvable lock state: text and background are both locked")

	// ErrInvalidTarget is returned for a target ratio that is not a positive number.
	ErrInvalidTarget = errors.New("target contrast ratio must be a positive number")
)

// Side identifies one colour of the pair.
type Side string

const (
	SideText       Side = "text"
	SideBackground Side = "background"
)

// InvalidColourError reports a malformed colour on one side of the pair.
type InvalidColourError struct {
	Side  Side
	Value string
	Err   error
}

func (e *InvalidColourError) Error() string {
	return fmt.Sprintf("invalid %s colour %q: use #RRGGBB", e.Side, e.Value)
}

// Is makes errors.Is(err, ErrInvalidColourInput) succeed.
func (e *InvalidColourError) Is(target error) bool {
	return target == ErrInvalidColourInput
}

func (e *InvalidColourError) Unwrap() error {
	return e.Err
}
