// Package calc implements the evaluator of a keypad calculator.
//
// The accepted syntax is what a four-function calculator can type: decimal
// numbers, the binary operators + - * / and ** (exponentiation), unary + and
// -, and parentheses. The glyphs ×, ÷ and − are read as *, / and -. Anything
// else is rejected before tokenizing, so evaluation never does more than
// arithmetic.
//
// "-2**2" is the same as "-(2**2)", and "2**3**2" is "2**(3**2)". Otherwise
// operators of equal precedence associate to the left.
//
// Values are arbitrary-precision floats. Every failure is an *Error whose Kind
// classifies it, e.g. errors.Is(err, calc.DivisionByZero).
package calc
