// Package commands defines the calc CLI.
//
// Commands
//
//   - eval    Evaluate expressions from arguments, a file, or stdin
//   - press   Replay keys through a keypad calculator
//   - repl    Line-based keypad session on stdin
//
// All commands share the --prec, --max-exp, and --fmt flags, which configure
// the evaluator and how results are printed.
package commands
