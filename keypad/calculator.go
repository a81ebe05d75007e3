package keypad

import (
	"math/big"

	"github.com/zephyrtronium/calc"
)

// Calculator holds the state of a keypad calculator: the expression being
// typed and the result of the last evaluation. It is not safe to use a
// Calculator concurrently.
type Calculator struct {
	ev     *calc.Evaluator
	expr   string
	result *big.Float
	err    error
}

// NewCalculator creates a calculator which evaluates with ev. If ev is nil, it
// uses calc.New().
func NewCalculator(ev *calc.Evaluator) *Calculator {
	if ev == nil {
		ev = calc.New()
	}
	return &Calculator{ev: ev, result: new(big.Float)}
}

// Do applies a command. Submit evaluates the expression unless it is empty.
// Clear also resets the result to zero.
func (c *Calculator) Do(cmd Command) {
	c.expr = Apply(c.expr, cmd)
	switch cmd.Op {
	case OpClear:
		c.result, c.err = new(big.Float), nil
	case OpSubmit:
		if c.expr == "" {
			return
		}
		c.result, c.err = c.ev.EvalString(c.expr)
	}
}

// Press applies the command for a key name as given to Key. It returns false
// without changing anything if the key is unknown.
func (c *Calculator) Press(key string) bool {
	cmd, ok := Key(key)
	if !ok {
		return false
	}
	c.Do(cmd)
	return true
}

// Expression returns the current expression.
func (c *Calculator) Expression() string {
	return c.expr
}

// Display returns the expression as a calculator shows it, which is "0" when
// nothing has been typed.
func (c *Calculator) Display() string {
	if c.expr == "" {
		return "0"
	}
	return c.expr
}

// Result returns a copy of the result of the last evaluation, or the error
// from it. Before any evaluation and after Clear the result is zero.
func (c *Calculator) Result() (*big.Float, error) {
	if c.err != nil {
		return nil, c.err
	}
	return new(big.Float).Copy(c.result), nil
}
