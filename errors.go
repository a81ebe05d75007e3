package calc

import (
	"errors"
	"strconv"
)

// Kind classifies an evaluation failure. A Kind is itself an error, so that
// errors.Is(err, DivisionByZero) reports whether err is a division by zero.
type Kind int

const (
	kindNone Kind = iota
	// InvalidCharacter is a rune outside digits, '.', operators, parentheses,
	// and white space.
	InvalidCharacter
	// MalformedNumber is a numeric literal with more than one decimal point or
	// with no digits.
	MalformedNumber
	// UnbalancedParentheses is a parenthesis with no partner.
	UnbalancedParentheses
	// DivisionByZero is a division whose right operand is exactly zero.
	DivisionByZero
	// EmptyExpression is input with no tokens.
	EmptyExpression
	// NonFiniteResult is a value too large to represent, or a power with no
	// real result.
	NonFiniteResult
	// Syntax is any other malformed expression, e.g. a dangling operator.
	Syntax
)

func (k Kind) String() string {
	switch k {
	case InvalidCharacter:
		return "InvalidCharacter"
	case MalformedNumber:
		return "MalformedNumber"
	case UnbalancedParentheses:
		return "UnbalancedParentheses"
	case DivisionByZero:
		return "DivisionByZero"
	case EmptyExpression:
		return "EmptyExpression"
	case NonFiniteResult:
		return "NonFiniteResult"
	case Syntax:
		return "Syntax"
	default:
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
}

func (k Kind) Error() string {
	switch k {
	case InvalidCharacter:
		return "invalid character"
	case MalformedNumber:
		return "malformed number"
	case UnbalancedParentheses:
		return "unbalanced parentheses"
	case DivisionByZero:
		return "division by zero"
	case EmptyExpression:
		return "no expression"
	case NonFiniteResult:
		return "result is not finite"
	case Syntax:
		return "syntax error"
	default:
		return "unknown error " + k.String()
	}
}

// Error is an error resulting from evaluating an expression.
type Error struct {
	// Kind classifies the error.
	Kind Kind
	// Col is the position of the token that caused the error as the number of
	// runes up to and including its first rune. For errors found while
	// evaluating, it is the position of the operator or literal.
	Col int
	// Text is the offending token, if any.
	Text string
	// Msg optionally details a Syntax error.
	Msg string
}

func (err *Error) Error() string {
	msg := err.Kind.Error()
	if err.Msg != "" {
		msg += ": " + err.Msg
	}
	if err.Text != "" {
		msg += " " + strconv.Quote(err.Text)
	}
	return errpos(err.Col, msg)
}

// Unwrap returns the error's Kind.
func (err *Error) Unwrap() error {
	return err.Kind
}

// Pos returns the position of the error.
func (err *Error) Pos() int {
	return err.Col
}

// KindOf returns the Kind of an error from this package, or 0 if err is not
// one.
func KindOf(err error) Kind {
	var k Kind
	if errors.As(err, &k) {
		return k
	}
	return kindNone
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}
