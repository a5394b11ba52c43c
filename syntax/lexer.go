package syntax

import (
	"strings"
	"unicode/utf8"
)

type token struct {
	kind tokenKind
	pos  Position
}

func (tok token) String() string {
	return tok.kind.String()
}

type tokenKind byte

const (
	tokNone tokenKind = iota

	tokChar
	tokConcat

	tokStar   // *
	tokPipe   // |
	tokLparen // (
)

var tokenKindNames = [...]string{
	tokNone:   "None",
	tokChar:   "Char",
	tokConcat: "Concat",
	tokStar:   "*",
	tokPipe:   "|",
	tokLparen: "(",
}

func (k tokenKind) String() string {
	if int(k) < len(tokenKindNames) {
		return tokenKindNames[k]
	}
	return "tokenKind(?)"
}

// lexer rewrites an infix pattern into postfix order.
//
// Implicit concatenation is materialized as tokConcat,
// parentheses never reach the output.
type lexer struct {
	tokens []token // postfix output
	ops    []token // operator stack
	input  string
}

func (l *lexer) Init(s string) {
	l.tokens = l.tokens[:0]
	l.ops = l.ops[:0]
	l.input = s

	i := 0
	size := 0
	pushTok := func(kind tokenKind) {
		l.tokens = append(l.tokens, token{
			kind: kind,
			pos:  Position{Begin: i, End: i + size},
		})
	}
	pushOp := func(kind tokenKind) {
		l.ops = append(l.ops, token{
			kind: kind,
			pos:  Position{Begin: i, End: i + size},
		})
	}
	// concatWith pushes a concat marker when the next byte starts an operand.
	concatWith := func() {
		next := i + size
		if l.isOperandStart(next) {
			l.ops = append(l.ops, token{
				kind: tokConcat,
				pos:  Position{Begin: next, End: next},
			})
		}
	}

	for i < len(s) {
		var ch rune
		ch, size = utf8.DecodeRuneInString(s[i:])

		switch ch {
		case '*':
			pushTok(tokStar)
			concatWith()

		case '(':
			pushOp(tokLparen)

		case ')':
			if !l.popUntilLparen() {
				throwErrorf(ErrUnbalanced, i, i+size, "unmatched ')'")
			}
			concatWith()

		case '|':
			for len(l.ops) != 0 && l.ops[len(l.ops)-1].kind == tokConcat {
				l.popOp()
			}
			pushOp(tokPipe)

		default:
			if ch >= utf8.RuneSelf || !isAlphanumeric(byte(ch)) {
				throwErrorf(ErrUnknownChar, i, i+size, "unexpected %q", ch)
			}
			pushTok(tokChar)
			concatWith()
		}

		i += size
	}

	for len(l.ops) != 0 {
		top := l.ops[len(l.ops)-1]
		if top.kind == tokLparen {
			throwfPos(ErrUnbalanced, top.pos, "unmatched '('")
		}
		l.popOp()
	}
}

// popUntilLparen moves operators to the output down to the nearest '('
// and discards it. It reports whether a '(' was found.
func (l *lexer) popUntilLparen() bool {
	for len(l.ops) != 0 {
		top := l.ops[len(l.ops)-1]
		if top.kind == tokLparen {
			l.ops = l.ops[:len(l.ops)-1]
			return true
		}
		l.popOp()
	}
	return false
}

func (l *lexer) popOp() {
	last := len(l.ops) - 1
	l.tokens = append(l.tokens, l.ops[last])
	l.ops = l.ops[:last]
}

func (l *lexer) isOperandStart(pos int) bool {
	ch := l.byteAt(pos)
	return ch == '(' || isAlphanumeric(ch)
}

func (l *lexer) byteAt(pos int) byte {
	if pos >= 0 && pos < len(l.input) {
		return l.input[pos]
	}
	return 0
}

// postfix returns the output tokens as text, using '^' for tokConcat.
func (l *lexer) postfix() string {
	var b strings.Builder
	b.Grow(len(l.tokens))
	for _, tok := range l.tokens {
		switch tok.kind {
		case tokConcat:
			b.WriteByte('^')
		default:
			b.WriteString(l.input[tok.pos.Begin:tok.pos.End])
		}
	}
	return b.String()
}
