package calc

import (
	"errors"
	"io"
	"strconv"
	"strings"
	"unicode"
)

type lexToken struct {
	text string
	kind tokenKind
	pos  int
}

func (t lexToken) String() string {
	return t.kind.String() + ":" + t.text + "@" + strconv.Itoa(t.pos)
}

type tokenKind int

const (
	tokenNone tokenKind = iota
	// tokenEOF indicates the end of the input.
	tokenEOF
	// tokenNum is a decimal number.
	tokenNum
	// tokenOp is an operator. ** is a single token.
	tokenOp
	// tokenOpen is an open parenthesis.
	tokenOpen
	// tokenClose is a close parenthesis.
	tokenClose
)

func (k tokenKind) String() string {
	switch k {
	case tokenNone:
		return "None"
	case tokenEOF:
		return "EOF"
	case tokenNum:
		return "Num"
	case tokenOp:
		return "Op"
	case tokenOpen:
		return "Open"
	case tokenClose:
		return "Close"
	default:
		return "tokenKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Operators contains the runes which are considered to be operators.
const Operators = "+-*/"

// glyphs maps display glyphs to the operators they stand for.
var glyphs = strings.NewReplacer("×", "*", "÷", "/", "−", "-")

// normalize replaces display glyphs with their ASCII operators.
func normalize(src string) string {
	return glyphs.Replace(src)
}

// allowed reports whether r may appear in an expression at all.
func allowed(r rune) bool {
	switch {
	case '0' <= r && r <= '9', r == '.', r == '(', r == ')':
		return true
	case strings.ContainsRune(Operators, r):
		return true
	default:
		return unicode.IsSpace(r)
	}
}

// gate checks that every rune of a normalized expression is allowed.
func gate(src string) error {
	col := 0
	for _, r := range src {
		col++
		if !allowed(r) {
			return &Error{Kind: InvalidCharacter, Col: col, Text: string(r)}
		}
	}
	return nil
}

type lexer struct {
	src  io.RuneScanner
	buf  strings.Builder
	rune int
	eof  bool
}

func lex(src io.RuneScanner) *lexer {
	return &lexer{src: src}
}

// readRune reads a rune from the src and updates the lexer's position info.
func (l *lexer) readRune() (r rune, err error) {
	r, sz, err := l.src.ReadRune()
	if sz > 0 {
		l.rune++
	}
	return r, err
}

// unreadRune unreads a rune from the src and updates the lexer's position
// info. Panics if unreading returns an error.
func (l *lexer) unreadRune() {
	if err := l.src.UnreadRune(); err != nil {
		panic(err)
	}
	l.rune--
}

// next scans the next token from the input. The first time EOF is encountered,
// the result is an EOF token with a nil error. Subsequent calls return an
// empty token with io.EOF.
func (l *lexer) next() (lexToken, error) {
	if l.eof {
		return lexToken{}, io.EOF
	}
	defer l.buf.Reset()
	for {
		r, err := l.readRune()
		tok := lexToken{pos: l.rune}
		if err != nil {
			if errors.Is(err, io.EOF) {
				tok.pos++
				tok.kind = tokenEOF
				l.eof = true
				return tok, nil
			}
			return tok, err
		}
		switch {
		case unicode.IsSpace(r):
			continue
		case '0' <= r && r <= '9', r == '.':
			l.unreadRune()
			if err := l.scanNum(); err != nil {
				return tok, err
			}
			tok.text = l.buf.String()
			tok.kind = tokenNum
			return tok, nil
		case r == '*':
			tok.kind = tokenOp
			tok.text = "*"
			// A second star makes exponentiation.
			s, err := l.readRune()
			switch {
			case err == nil && s == '*':
				tok.text = "**"
			case err == nil:
				l.unreadRune()
			case !errors.Is(err, io.EOF):
				return tok, err
			}
			return tok, nil
		case strings.ContainsRune(Operators, r):
			tok.text = string(r)
			tok.kind = tokenOp
			return tok, nil
		case r == '(':
			tok.text = "("
			tok.kind = tokenOpen
			return tok, nil
		case r == ')':
			tok.text = ")"
			tok.kind = tokenClose
			return tok, nil
		default:
			// Parse gates its input first, so only direct callers of
			// tokenize get here.
			return tok, &Error{Kind: InvalidCharacter, Col: tok.pos, Text: string(r)}
		}
	}
}

// scanNum scans a run of digits and decimal points into l.buf.
func (l *lexer) scanNum() error {
	start := l.rune + 1
	var dig, dot, bad bool
	for {
		r, err := l.readRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return err
		}
		if r == '.' {
			// Keep scanning so the error reports the whole literal.
			bad = bad || dot
			dot = true
		} else if '0' <= r && r <= '9' {
			dig = true
		} else {
			l.unreadRune()
			break
		}
		l.buf.WriteRune(r)
	}
	if bad || !dig {
		return &Error{Kind: MalformedNumber, Col: start, Text: l.buf.String()}
	}
	return nil
}

// tokenize scans all tokens of a normalized expression. The last token is
// always tokenEOF.
func tokenize(src string) ([]lexToken, error) {
	scan := lex(strings.NewReader(src))
	var toks []lexToken
	for {
		tok, err := scan.next()
		if err != nil {
			return nil, err
		}
		toks = append(toks, tok)
		if tok.kind == tokenEOF {
			return toks, nil
		}
	}
}

// balance checks that parentheses in toks are matched.
func balance(toks []lexToken) error {
	var open []lexToken
	for _, tok := range toks {
		switch tok.kind {
		case tokenOpen:
			open = append(open, tok)
		case tokenClose:
			if len(open) == 0 {
				return &Error{Kind: UnbalancedParentheses, Col: tok.pos, Text: tok.text}
			}
			open = open[:len(open)-1]
		}
	}
	if len(open) != 0 {
		tok := open[len(open)-1]
		return &Error{Kind: UnbalancedParentheses, Col: tok.pos, Text: tok.text}
	}
	return nil
}
