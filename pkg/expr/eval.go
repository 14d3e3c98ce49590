package expr

import (
	"context"
	"fmt"

	"github.com/chuyangliu/selecteval/pkg/logging"
)

// Evaluate computes the value of e.
// Binary nodes evaluate their left operand, then their right operand, then apply the operator to the results in
// that order. Failures wrap ErrInvalidExpression.
func Evaluate(e Expression) (float64, error) {
	switch n := e.(type) {
	case Constant:
		return float64(n), nil
	case *Binary:
		if n == nil {
			break
		}
		left, err := Evaluate(n.left)
		if err != nil {
			return 0, err
		}
		right, err := Evaluate(n.right)
		if err != nil {
			return 0, err
		}
		return n.op.Apply(left, right)
	}
	return 0, fmt.Errorf("Nil expression | err=[%w]", ErrInvalidExpression)
}

// Context evaluates expressions on behalf of callers and logs the outcome.
type Context struct {
	logger *logging.Logger
}

// NewContext instantiates a Context.
func NewContext(logLevel int) *Context {
	return &Context{logger: logging.New(logLevel)}
}

// Eval evaluates e synchronously. It never blocks; ctx is only checked once before evaluating so that callers
// with an already canceled context get its error back.
func (c *Context) Eval(ctx context.Context, e Expression) (float64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	val, err := Evaluate(e)
	if err != nil {
		c.logger.Warn("Eval failed | expr=%v | err=[%v]", e, err)
		return 0, err
	}
	c.logger.Debug("Eval | expr=%v | val=%v", e, val)
	return val, nil
}
