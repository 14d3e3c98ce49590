package algo

import (
	"errors"
)

// ErrInvalidArgument indicates the input violates the preconditions of a selection (empty input or k out of range).
var ErrInvalidArgument error = errors.New("Invalid argument")
