package keypad_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zephyrtronium/calc"
	"github.com/zephyrtronium/calc/keypad"
)

func press(t *testing.T, c *keypad.Calculator, keys ...string) {
	t.Helper()
	for _, k := range keys {
		require.True(t, c.Press(k), "key %q", k)
	}
}

func resultFloat(t *testing.T, c *keypad.Calculator) float64 {
	t.Helper()
	r, err := c.Result()
	require.NoError(t, err)
	require.NotNil(t, r)
	f, _ := r.Float64()
	return f
}

func TestCalculatorInitial(t *testing.T) {
	c := keypad.NewCalculator(nil)
	assert.Equal(t, "", c.Expression())
	assert.Equal(t, "0", c.Display())
	assert.Equal(t, 0.0, resultFloat(t, c))
}

func TestCalculatorEvaluate(t *testing.T) {
	c := keypad.NewCalculator(calc.New())
	press(t, c, "2", "+", "3", "*", "4", "Enter")
	assert.Equal(t, "2+3*4", c.Expression())
	assert.Equal(t, 14.0, resultFloat(t, c))

	// The expression stays after evaluating, so typing continues it.
	press(t, c, "-", "4", "=")
	assert.Equal(t, "2+3*4-4", c.Display())
	assert.Equal(t, 10.0, resultFloat(t, c))
}

func TestCalculatorSubmitEmpty(t *testing.T) {
	c := keypad.NewCalculator(nil)
	press(t, c, "5", "=")
	require.Equal(t, 5.0, resultFloat(t, c))
	press(t, c, "Escape", "=")
	// Clearing resets the result, and evaluating nothing keeps it.
	assert.Equal(t, "0", c.Display())
	assert.Equal(t, 0.0, resultFloat(t, c))
}

func TestCalculatorErrors(t *testing.T) {
	c := keypad.NewCalculator(nil)
	press(t, c, "5", "/", "0", "Enter")
	r, err := c.Result()
	assert.Nil(t, r)
	assert.ErrorIs(t, err, calc.DivisionByZero)

	press(t, c, "Backspace", "2", "Enter")
	assert.Equal(t, 2.5, resultFloat(t, c))

	press(t, c, "C", "(", "1", "+", "2", "Enter")
	_, err = c.Result()
	assert.ErrorIs(t, err, calc.UnbalancedParentheses)

	press(t, c, "Delete")
	_, err = c.Result()
	assert.NoError(t, err)
}

func TestCalculatorToggleSign(t *testing.T) {
	c := keypad.NewCalculator(nil)
	press(t, c, "±", "5", "*", "3", "±", "=")
	assert.Equal(t, "-5*-3", c.Expression())
	assert.Equal(t, 15.0, resultFloat(t, c))
}

func TestCalculatorPower(t *testing.T) {
	c := keypad.NewCalculator(nil)
	press(t, c, "2", "*", "*", "1", "0", "NumpadEnter")
	assert.Equal(t, 1024.0, resultFloat(t, c))
}

func TestCalculatorDecimalComma(t *testing.T) {
	c := keypad.NewCalculator(calc.New(calc.Prec(53)))
	press(t, c, "1", ",", "5", "NumpadMultiply", "Numpad4", "=")
	assert.Equal(t, "1.5*4", c.Expression())
	assert.Equal(t, 6.0, resultFloat(t, c))
}

func TestCalculatorUnknownKey(t *testing.T) {
	c := keypad.NewCalculator(nil)
	press(t, c, "1")
	assert.False(t, c.Press("Shift"))
	assert.Equal(t, "1", c.Expression())
}

func TestCalculatorResultCopy(t *testing.T) {
	c := keypad.NewCalculator(nil)
	press(t, c, "7", "=")
	r, err := c.Result()
	require.NoError(t, err)
	r.Add(r, big.NewFloat(1))
	assert.Equal(t, 7.0, resultFloat(t, c))
}
