package linkedlist

import (
	"errors"
	"fmt"
)

// ErrOutOfBounds is returned by positional inserts and deletes whose position
// does not exist in the list. The list is left unchanged.
var ErrOutOfBounds = errors.New("position out of bounds")

func outOfBoundsError(position, length int) error {
	return fmt.Errorf("%w: position %d, length %d", ErrOutOfBounds, position, length)
}
