package keypad

import "strconv"

// Op is the kind of an edit command.
type Op int8

const (
	opNone Op = iota
	// OpAppend appends a symbol.
	OpAppend
	// OpBackspace removes the last symbol.
	OpBackspace
	// OpClear empties the expression.
	OpClear
	// OpToggleSign toggles the sign of the trailing number.
	OpToggleSign
	// OpSubmit asks for the expression to be evaluated.
	OpSubmit
)

func (op Op) String() string {
	switch op {
	case OpAppend:
		return "Append"
	case OpBackspace:
		return "Backspace"
	case OpClear:
		return "Clear"
	case OpToggleSign:
		return "ToggleSign"
	case OpSubmit:
		return "Submit"
	default:
		return "Op(" + strconv.Itoa(int(op)) + ")"
	}
}

// Command is one edit of an expression.
type Command struct {
	// Op is the kind of edit.
	Op Op
	// Symbol is the symbol to append for OpAppend.
	Symbol rune
}

func (c Command) String() string {
	if c.Op == OpAppend {
		return "Append(" + strconv.QuoteRune(c.Symbol) + ")"
	}
	return c.Op.String()
}

// Append returns a command to append a symbol.
func Append(symbol rune) Command {
	return Command{Op: OpAppend, Symbol: symbol}
}

// Commands without arguments.
var (
	Backspace  = Command{Op: OpBackspace}
	Clear      = Command{Op: OpClear}
	ToggleSign = Command{Op: OpToggleSign}
	Submit     = Command{Op: OpSubmit}
)
