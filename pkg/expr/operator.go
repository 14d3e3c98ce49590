package expr

import (
	"fmt"
)

// Operator represents a binary arithmetic operator.
type Operator uint8

// Enum values of type Operator.
const (
	// Add computes left + right.
	Add Operator = iota
	// Subtract computes left - right.
	Subtract
	// Multiply computes left * right.
	Multiply
	// Divide computes left / right and fails on a zero divisor.
	Divide
)

var symbols = [...]string{
	Add:      "+",
	Subtract: "-",
	Multiply: "*",
	Divide:   "/",
}

// Valid reports whether op is a known operator.
func (op Operator) Valid() bool {
	return int(op) < len(symbols)
}

// Symbol returns the display symbol of op.
func (op Operator) Symbol() string {
	if !op.Valid() {
		return fmt.Sprintf("op(%d)", uint8(op))
	}
	return symbols[op]
}

// String returns the display symbol of op.
func (op Operator) String() string {
	return op.Symbol()
}

// Apply computes left op right.
func (op Operator) Apply(left, right float64) (float64, error) {
	switch op {
	case Add:
		return left + right, nil
	case Subtract:
		return left - right, nil
	case Multiply:
		return left * right, nil
	case Divide:
		if right == 0 {
			return 0, fmt.Errorf("Division by zero | left=%v | err=[%w]", left, ErrInvalidExpression)
		}
		return left / right, nil
	}
	return 0, fmt.Errorf("Unknown operator | op=%v | err=[%w]", op, ErrInvalidExpression)
}

// ParseOperator returns the operator named by s, either its symbol ("+") or its name ("add"/"sub"/"mul"/"div").
func ParseOperator(s string) (Operator, error) {
	switch s {
	case "+", "add":
		return Add, nil
	case "-", "sub":
		return Subtract, nil
	case "*", "mul":
		return Multiply, nil
	case "/", "div":
		return Divide, nil
	}
	return 0, fmt.Errorf("Unknown operator | op=%q | err=[%w]", s, ErrInvalidExpression)
}
