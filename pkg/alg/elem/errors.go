package elem

import (
	"errors"
	"fmt"
)

// Error taxonomy shared by every container in pkg/alg.
var (
	// ErrAllocation is returned when element or node storage could not be obtained.
	ErrAllocation = errors.New("element storage could not be obtained")

	// ErrOutOfRange is returned for an index outside [0, count).
	ErrOutOfRange = errors.New("index out of range")

	// ErrInvalidState is returned when an operation cannot run on the structure as it is.
	ErrInvalidState = errors.New("invalid structure state")

	// ErrActionFailure wraps the error returned by a caller-supplied traversal action.
	ErrActionFailure = errors.New("traversal action failed")
)

// ActionFailed wraps an action error so that both ErrActionFailure and the
// original cause match with errors.Is.
func ActionFailed(err error) error {
	return fmt.Errorf("%w: %w", ErrActionFailure, err)
}

// OutOfRange reports index against the valid range [0, count).
func OutOfRange(index, count int) error {
	return fmt.Errorf("%w: %d not in [0, %d)", ErrOutOfRange, index, count)
}
