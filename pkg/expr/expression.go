// Package expr implements immutable arithmetic expression trees made of constants and binary operators.
package expr

import (
	"fmt"
)

// Expression is a node of an expression tree, either a Constant or a *Binary.
// Trees are built bottom-up and never change afterwards. Each node owns its children exclusively.
type Expression interface {
	// String returns the fully parenthesized infix form of the expression.
	// Constants are printed with 6 decimal places.
	String() string

	expression()
}

// Constant is a leaf holding a numeric literal.
type Constant float64

// NewConstant creates a constant expression.
func NewConstant(value float64) Constant {
	return Constant(value)
}

// Value returns the literal.
func (c Constant) Value() float64 {
	return float64(c)
}

// String returns the literal with 6 decimal places.
func (c Constant) String() string {
	return fmt.Sprintf("%.6f", float64(c))
}

func (Constant) expression() {}

// Binary applies an operator to a left and a right sub-expression.
type Binary struct {
	op    Operator
	left  Expression
	right Expression
}

// NewBinary creates a binary expression owning left and right.
func NewBinary(op Operator, left, right Expression) (*Binary, error) {
	if !op.Valid() {
		return nil, fmt.Errorf("Unknown operator | op=%v | err=[%w]", op, ErrInvalidExpression)
	}
	if isNil(left) || isNil(right) {
		return nil, fmt.Errorf("Missing operand | op=%v | left=%v | right=%v | err=[%w]", op, left, right,
			ErrInvalidExpression)
	}
	return &Binary{op: op, left: left, right: right}, nil
}

// Op returns the operator.
func (b *Binary) Op() Operator {
	return b.op
}

// Left returns the left operand.
func (b *Binary) Left() Expression {
	return b.left
}

// Right returns the right operand.
func (b *Binary) Right() Expression {
	return b.right
}

// String returns "(<left> <symbol> <right>)".
func (b *Binary) String() string {
	if b == nil {
		return "<nil>"
	}
	return fmt.Sprintf("(%v %v %v)", b.left, b.op, b.right)
}

func (*Binary) expression() {}

func isNil(e Expression) bool {
	if e == nil {
		return true
	}
	b, ok := e.(*Binary)
	return ok && b == nil
}

// Fold builds the left-associative chain ((values[0] op values[1]) op values[2]) ... bottom-up.
// A single value yields a Constant.
func Fold(op Operator, values ...float64) (Expression, error) {
	if len(values) == 0 {
		return nil, fmt.Errorf("Nothing to fold | op=%v | err=[%w]", op, ErrInvalidExpression)
	}
	var acc Expression = NewConstant(values[0])
	for _, v := range values[1:] {
		b, err := NewBinary(op, acc, NewConstant(v))
		if err != nil {
			return nil, err
		}
		acc = b
	}
	return acc, nil
}

// Depth returns the number of nodes on the longest root-to-leaf path of e, or 0 for a nil expression.
func Depth(e Expression) int {
	if isNil(e) {
		return 0
	}
	b, ok := e.(*Binary)
	if !ok {
		return 1
	}
	l, r := Depth(b.left), Depth(b.right)
	if l < r {
		l = r
	}
	return l + 1
}

// Count returns the number of nodes in e.
func Count(e Expression) int {
	if isNil(e) {
		return 0
	}
	if b, ok := e.(*Binary); ok {
		return Count(b.left) + Count(b.right) + 1
	}
	return 1
}
