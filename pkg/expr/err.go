package expr

import (
	"errors"
)

// ErrInvalidExpression indicates an expression tree that cannot be built or evaluated, such as a missing child,
// an unknown operator or a division by zero.
var ErrInvalidExpression error = errors.New("Invalid expression")
