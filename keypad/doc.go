// Package keypad implements the input side of a keypad calculator.
//
// Apply is the whole state machine: it takes the current expression text and
// one edit Command and returns the new text. It never fails. Symbols a keypad
// cannot produce are ignored, and a few edits are corrected on the way in: an
// operator typed after + - / or . replaces it, so "2+" followed by "-" is
// "2-".
//
// Calculator keeps the expression between events and evaluates it with a
// calc.Evaluator on Submit. Key translates keyboard and button names into
// commands.
package keypad
