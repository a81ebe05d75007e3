package calc

import (
	"math/big"
	"strconv"
)

// Evaluator evaluates expressions to a fixed precision. An Evaluator holds no
// state between evaluations, so it is safe to use concurrently.
type Evaluator struct {
	prec   uint
	maxExp int
}

// Option is an option used when creating an Evaluator.
type Option interface {
	evalOption()
}

type (
	precopt   uint
	maxexpopt int
)

func (precopt) evalOption()   {}
func (maxexpopt) evalOption() {}

// Prec sets the precision of calculations in bits. Zero selects the default
// of 64.
func Prec(prec uint) Option {
	return precopt(prec)
}

// MaxExp sets the largest binary exponent any value may have during an
// evaluation. A literal or intermediate result with a larger magnitude is a
// NonFiniteResult. The default is 1024, the bound of IEEE double precision.
// Values less than 1 remove the bound except for the limit of big.Float.
func MaxExp(exp int) Option {
	return maxexpopt(exp)
}

// New creates an Evaluator. Later options override earlier ones.
func New(opts ...Option) *Evaluator {
	ev := Evaluator{prec: 64, maxExp: 1024}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		switch opt := opt.(type) {
		case precopt:
			ev.prec = uint(opt)
			if ev.prec == 0 {
				ev.prec = 64
			}
		case maxexpopt:
			ev.maxExp = int(opt)
			if ev.maxExp < 1 || ev.maxExp > big.MaxExp {
				ev.maxExp = big.MaxExp
			}
		default:
			panic("calc: unknown option type")
		}
	}
	return &ev
}

// Prec returns the precision to which values are computed.
func (ev *Evaluator) Prec() uint {
	return ev.prec
}

// MaxExp returns the largest binary exponent a value may have.
func (ev *Evaluator) MaxExp() int {
	return ev.maxExp
}

// Eval evaluates a parsed expression. The result is a new value owned by the
// caller. If an error occurs, the result is nil and the error is an *Error of
// kind DivisionByZero or NonFiniteResult.
func (ev *Evaluator) Eval(e *Expr) (*big.Float, error) {
	m := machine{prec: ev.prec, maxExp: ev.maxExp}
	if err := e.n.eval(&m); err != nil {
		return nil, err
	}
	if len(m.stack) != 1 {
		panic("calc: inconsistent stack: " + strconv.Itoa(len(m.stack)) + " items (bad AST?)")
	}
	return m.stack[0], nil
}

// EvalString parses and evaluates an expression.
func (ev *Evaluator) EvalString(src string) (*big.Float, error) {
	e, err := Parse(src)
	if err != nil {
		return nil, err
	}
	return ev.Eval(e)
}

// Evaluate is a shortcut to parse and evaluate an expression with an
// Evaluator created with the given options.
func Evaluate(src string, opts ...Option) (*big.Float, error) {
	return New(opts...).EvalString(src)
}

// machine is the value stack of a single evaluation.
type machine struct {
	stack  []*big.Float
	prec   uint
	maxExp int
}

// push adds a settable value to the stack.
func (m *machine) push() *big.Float {
	v := new(big.Float).SetPrec(m.prec)
	m.stack = append(m.stack, v)
	return v
}

// pop removes the top from the stack and returns it.
func (m *machine) pop() *big.Float {
	r := m.stack[len(m.stack)-1]
	m.stack = m.stack[:len(m.stack)-1]
	return r
}

// top is a shortcut to get the top element of the stack.
func (m *machine) top() *big.Float {
	return m.stack[len(m.stack)-1]
}

// finite checks that the value n produced is in range.
func (m *machine) finite(n *node, v *big.Float) error {
	if v.IsInf() || v.MantExp(nil) > m.maxExp {
		return &Error{Kind: NonFiniteResult, Col: n.pos, Text: n.name}
	}
	return nil
}

// binary evaluates both operands of n, leaving them on the stack.
func (n *node) binary(m *machine) (l, r *big.Float, err error) {
	if err := n.left.eval(m); err != nil {
		return nil, nil, err
	}
	if err := n.right.eval(m); err != nil {
		return nil, nil, err
	}
	r = m.pop()
	return m.top(), r, nil
}

// eval pushes the node's value to the machine's stack.
func (n *node) eval(m *machine) error {
	switch n.kind {
	case nodeNum:
		v := m.push()
		if _, _, err := v.Parse(n.name, 10); err != nil {
			return &Error{Kind: MalformedNumber, Col: n.pos, Text: n.name}
		}
		return m.finite(n, v)
	case nodeNeg:
		if err := n.left.eval(m); err != nil {
			return err
		}
		v := m.top()
		v.Neg(v)
	case nodeNop:
		return n.left.eval(m)
	case nodeAdd:
		l, r, err := n.binary(m)
		if err != nil {
			return err
		}
		return m.finite(n, l.Add(l, r))
	case nodeSub:
		l, r, err := n.binary(m)
		if err != nil {
			return err
		}
		return m.finite(n, l.Sub(l, r))
	case nodeMul:
		l, r, err := n.binary(m)
		if err != nil {
			return err
		}
		return m.finite(n, l.Mul(l, r))
	case nodeDiv:
		l, r, err := n.binary(m)
		if err != nil {
			return err
		}
		if r.Sign() == 0 {
			return &Error{Kind: DivisionByZero, Col: n.pos, Text: n.name}
		}
		return m.finite(n, l.Quo(l, r))
	case nodePow:
		l, r, err := n.binary(m)
		if err != nil {
			return err
		}
		if !pow(l, l, r, m.maxExp) {
			return &Error{Kind: NonFiniteResult, Col: n.pos, Text: n.name}
		}
		return m.finite(n, l)
	default:
		panic("calc: invalid AST node " + n.kind.String())
	}
	return nil
}
