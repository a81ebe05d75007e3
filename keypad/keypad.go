package keypad

import (
	"strings"
	"unicode/utf8"
)

// Symbols contains the runes which may be appended to an expression.
const Symbols = "0123456789.()+-*/"

// replaceable contains the runes which an operator replaces when typed
// directly after one. * is not among them, so 2*-3 and 2**3 can be typed.
const replaceable = "+-/."

// Apply applies one edit to an expression and returns the result. Apply is
// total: appending a rune outside Symbols, or an unknown command, returns expr
// unchanged.
func Apply(expr string, cmd Command) string {
	switch cmd.Op {
	case OpAppend:
		return appendSymbol(expr, cmd.Symbol)
	case OpBackspace:
		if expr == "" {
			return expr
		}
		_, sz := utf8.DecodeLastRuneInString(expr)
		return expr[:len(expr)-sz]
	case OpClear:
		return ""
	case OpToggleSign:
		return toggleSign(expr)
	case OpSubmit:
		return expr
	default:
		return expr
	}
}

// ApplyAll applies a sequence of edits.
func ApplyAll(expr string, cmds ...Command) string {
	for _, cmd := range cmds {
		expr = Apply(expr, cmd)
	}
	return expr
}

func appendSymbol(expr string, r rune) string {
	if !strings.ContainsRune(Symbols, r) {
		return expr
	}
	last, sz := utf8.DecodeLastRuneInString(expr)
	if sz > 0 && strings.ContainsRune(replaceable, last) && strings.ContainsRune(replaceable, r) {
		if r == '.' {
			return expr + "."
		}
		return expr[:len(expr)-sz] + string(r)
	}
	return expr + string(r)
}

// toggleSign negates or un-negates the number at the end of expr. A number
// behind an odd count of sign minuses loses one; otherwise it gains one. Either
// way the count changes parity, so toggling twice restores expr.
func toggleSign(expr string) string {
	switch expr {
	case "":
		return "-"
	case "-":
		return ""
	}
	start := len(strings.TrimRightFunc(expr, func(r rune) bool {
		return r == '.' || '0' <= r && r <= '9'
	}))
	num := expr[start:]
	if !strings.ContainsAny(num, "0123456789") {
		return expr
	}
	k, ok := signs(expr, start)
	switch {
	case !ok:
		return expr
	case k%2 == 1:
		return expr[:start-1] + num
	default:
		return expr[:start] + "-" + num
	}
}

// signs counts the minuses directly before byte offset start that negate
// rather than subtract. ok is false if the number directly follows a close
// paren, where a minus would be subtraction.
func signs(expr string, start int) (k int, ok bool) {
	run := start
	for run > 0 && expr[run-1] == '-' {
		run--
	}
	k = start - run
	if run > 0 && strings.IndexByte("0123456789.)", expr[run-1]) >= 0 {
		if k == 0 {
			return 0, false
		}
		// The first minus follows an operand, so it is subtraction.
		k--
	}
	return k, true
}
