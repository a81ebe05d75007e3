package calc

// Expr = num | Neg | Plus | Add | Sub | Mul | Div | Pow | '(' Expr ')'
// Neg = '-' Expr
// Plus = '+' Expr
// Add = Expr '+' Expr
// Sub = Expr '-' Expr
// Mul = Expr '*' Expr
// Div = Expr '/' Expr
// Pow = Expr '**' Expr

// Expr is a parsed expression.
type Expr struct {
	// n is the root node of the expression.
	n *node
}

// Parse parses an expression so it can be evaluated. The error, if any, is an
// *Error of kind InvalidCharacter, MalformedNumber, EmptyExpression,
// UnbalancedParentheses, or Syntax, checked in that order.
func Parse(src string) (*Expr, error) {
	src = normalize(src)
	if err := gate(src); err != nil {
		return nil, err
	}
	toks, err := tokenize(src)
	if err != nil {
		return nil, err
	}
	if len(toks) == 1 {
		return nil, &Error{Kind: EmptyExpression, Col: toks[0].pos}
	}
	if err := balance(toks); err != nil {
		return nil, err
	}
	scan := &tokens{toks: toks}
	n, err := parseterm(scan, exprprec)
	if err != nil {
		return nil, err
	}
	if tok := scan.must(); tok.kind != tokenEOF {
		// balance has already rejected a stray close paren, and every other
		// token is consumed by parseterm.
		panic("calc: parse ended on " + tok.String())
	}
	return &Expr{n: n}, nil
}

// tokens is a stream of scanned tokens with one token of pushback.
type tokens struct {
	toks []lexToken
	p    lexToken
}

// next returns the next token. After the EOF token, it keeps returning EOF.
func (s *tokens) next() lexToken {
	if s.p.kind != tokenNone {
		tok := s.p
		s.p = lexToken{}
		return tok
	}
	tok := s.toks[0]
	if len(s.toks) > 1 {
		s.toks = s.toks[1:]
	}
	return tok
}

// push unreads a token so that it is the next token returned from next. Panics
// if there is already a pushed token.
func (s *tokens) push(tok lexToken) {
	if s.p.kind != tokenNone {
		panic("calc: double push")
	}
	s.p = tok
}

// must scans the pushed token. Panics if there is no pushed token.
func (s *tokens) must() lexToken {
	tok := s.p
	if tok.kind == tokenNone {
		panic("calc: no pushed token")
	}
	s.p = lexToken{}
	return tok
}

// parseterm parses a term, consuming binary operators that bind more tightly
// than until. If there is no error, then parseterm pushes the last token it
// scans, including EOF.
func parseterm(scan *tokens, until operator) (*node, error) {
	n, err := parselhs(scan, until)
	if err != nil {
		return nil, err
	}
	for {
		tok := scan.next()
		switch tok.kind {
		case tokenOp:
			prec := binop(tok.text)
			if prec.op == nodeNone {
				return nil, syntaxError(tok, "unknown binary operator")
			}
			if !prec.moreBinding(until) {
				scan.push(tok)
				return n, nil
			}
			rhs, err := parseterm(scan, prec)
			if err != nil {
				return nil, err
			}
			n = &node{kind: prec.op, name: tok.text, pos: tok.pos, left: n, right: rhs}
		case tokenNum, tokenOpen:
			// 2 3 and 2 (3) are not products.
			return nil, syntaxError(tok, "missing operator before")
		case tokenClose, tokenEOF:
			// End of expression.
			scan.push(tok)
			return n, nil
		default:
			panic("calc: unknown token: " + tok.String())
		}
	}
}

// parselhs parses the first component of a term. I.e., operators are unary,
// and any encountered token must be valid as the start of a subexpression.
func parselhs(scan *tokens, until operator) (*node, error) {
	tok := scan.next()
	switch tok.kind {
	case tokenNum:
		return &node{kind: nodeNum, name: tok.text, pos: tok.pos}, nil
	case tokenOp:
		prec := unop(tok.text)
		if prec.op == nodeNone {
			return nil, syntaxError(tok, "missing operand before")
		}
		if !prec.moreBinding(until) {
			// x**-y -> x**(-y)
			// Just use the new operator's precedence to simplify.
			prec.prec, prec.right = until.prec, until.right
		}
		rhs, err := parseterm(scan, prec)
		if err != nil {
			return nil, err
		}
		return &node{kind: prec.op, name: tok.text, pos: tok.pos, left: rhs}, nil
	case tokenOpen:
		first := scan.next()
		if first.kind == tokenClose {
			return nil, syntaxError(first, "empty parentheses at")
		}
		scan.push(first)
		n, err := parseterm(scan, exprprec)
		if err != nil {
			return nil, err
		}
		if end := scan.must(); end.kind != tokenClose {
			// balance guarantees the close paren, so anything else means the
			// parser stopped too early.
			panic("calc: subexpression ended on " + end.String())
		}
		return n, nil
	case tokenClose:
		return nil, syntaxError(tok, "missing operand before")
	case tokenEOF:
		return nil, syntaxError(tok, "missing operand at end")
	default:
		panic("calc: unknown token: " + tok.String())
	}
}

func syntaxError(tok lexToken, msg string) error {
	return &Error{Kind: Syntax, Col: tok.pos, Text: tok.text, Msg: msg}
}

// String creates a string representation of the parsed expression, with
// parentheses grouping each term.
func (e *Expr) String() string {
	return e.n.String()
}

type operator struct {
	// prec is the precedence value. Higher is more binding.
	prec int8
	// right indicates right-associativity.
	right bool
	// op is the node kind to use when this operator is selected.
	op nodeKind
}

func (p operator) moreBinding(than operator) bool {
	if p.prec != than.prec {
		return p.prec > than.prec
	}
	return p.right
}

// binop gets a binary operator for a token string. If there is no such binary
// operator, then the result has an op of nodeNone.
func binop(text string) operator {
	switch text {
	case "+":
		return operator{1, false, nodeAdd}
	case "-":
		return operator{1, false, nodeSub}
	case "*":
		return operator{5, false, nodeMul}
	case "/":
		return operator{5, false, nodeDiv}
	case "**":
		return operator{15, true, nodePow}
	default:
		return operator{}
	}
}

// unop gets a unary operator for a token string. If there is no such unary
// operator, then the result has an op of nodeNone.
func unop(text string) operator {
	switch text {
	case "+":
		return operator{10, true, nodeNop}
	case "-":
		return operator{10, true, nodeNeg}
	default:
		return operator{}
	}
}

// exprprec is the precedence required to parse an entire subexpression.
var exprprec = operator{-128, true, nodeNone}
