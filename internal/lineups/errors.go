package lineups

import (
	"errors"
	"fmt"
)

// ErrOutOfRange is matched by every OutOfRangeError.
var ErrOutOfRange = errors.New("lineups: starter list out of range")

// OutOfRangeError reports a starter list shorter than a full eleven.
type OutOfRangeError struct {
	Side string
	Got  int
	Want int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("lineups: %s starters has %d entries, need %d", e.Side, e.Got, e.Want)
}

func (e *OutOfRangeError) Is(target error) bool {
	return target == ErrOutOfRange
}
