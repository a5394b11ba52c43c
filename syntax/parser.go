package syntax

// Parse parses a pattern with a new Parser.
func Parse(pattern string) (*Regexp, error) {
	return NewParser().Parse(pattern)
}

func NewParser() *Parser {
	return &Parser{}
}

// Parser turns patterns into expression trees.
//
// A Parser reuses its buffers between Parse calls,
// so it must not be used by several goroutines at once.
type Parser struct {
	lexer lexer
}

func (p *Parser) Parse(pattern string) (result *Regexp, err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		if err2, ok := r.(ParseError); ok {
			result = nil
			err = err2
			return
		}
		panic(r)
	}()

	if pattern == "" {
		throwErrorf(ErrEmpty, 0, 0, "empty pattern")
	}
	p.lexer.Init(pattern)
	tokens := p.lexer.tokens
	if len(tokens) == 0 {
		throwErrorf(ErrEmpty, 0, len(pattern), "pattern has no operands")
	}

	last := len(tokens) - 1
	expr, n := p.parseExpr(last, tokens[last])
	if n != len(tokens) {
		extra := tokens[last-n]
		throwfPos(ErrMissingOperand, extra.pos, "%s at %d has no operator", extra, extra.pos.Begin)
	}

	return &Regexp{
		Source:  pattern,
		Postfix: p.lexer.postfix(),
		Expr:    expr,
	}, nil
}

// parseExpr builds the tree whose root is the postfix token at index i.
// It returns the tree and the number of tokens it consumed,
// which all lie to the left of i+1.
//
// parent is the operator that needs this operand; it only
// serves as an error location.
func (p *Parser) parseExpr(i int, parent token) (Expr, int) {
	if i < 0 {
		throwfPos(ErrMissingOperand, parent.pos, "missing operand for %s", describeToken(parent))
	}

	tok := p.lexer.tokens[i]
	switch tok.kind {
	case tokChar:
		ch := rune(p.lexer.input[tok.pos.Begin])
		return Expr{Op: OpChar, Pos: tok.pos, Rune: ch}, 1

	case tokStar:
		x, n := p.parseExpr(i-1, tok)
		e := Expr{
			Op:   OpStar,
			Pos:  combinePos(x.Pos, tok.pos),
			Args: []Expr{x},
		}
		return e, n + 1

	case tokConcat, tokPipe:
		// Scanning right to left, the right operand comes first.
		right, nr := p.parseExpr(i-1, tok)
		left, nl := p.parseExpr(i-1-nr, tok)
		op := OpConcat
		if tok.kind == tokPipe {
			op = OpAlt
		}
		e := Expr{
			Op:   op,
			Pos:  combinePos(left.Pos, right.Pos),
			Args: []Expr{left, right},
		}
		return e, nl + nr + 1

	default:
		panic("unexpected postfix token: " + tok.String())
	}
}

func describeToken(tok token) string {
	switch tok.kind {
	case tokConcat:
		return "concatenation"
	default:
		return "'" + tok.String() + "'"
	}
}
