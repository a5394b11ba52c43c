package fungex

import (
	"strconv"
	"strings"

	"github.com/Ashish-Basetty/fungex/syntax"
)

// literalString returns the string e matches if e is a chain of
// concatenated characters.
func literalString(e syntax.Expr) (string, bool) {
	var b strings.Builder
	if !appendLiteral(&b, e) {
		return "", false
	}
	return b.String(), true
}

func appendLiteral(b *strings.Builder, e syntax.Expr) bool {
	switch e.Op {
	case syntax.OpChar:
		b.WriteRune(e.Rune)
		return true
	case syntax.OpConcat:
		return appendLiteral(b, e.Args[0]) && appendLiteral(b, e.Args[1])
	default:
		return false
	}
}

// literalAlternatives returns the branches of an alternation
// whose every branch is a literal string.
// A lone literal is not reported; literalString covers it.
func literalAlternatives(e syntax.Expr) ([]string, bool) {
	if e.Op != syntax.OpAlt {
		return nil, false
	}
	var lits []string
	var walk func(e syntax.Expr) bool
	walk = func(e syntax.Expr) bool {
		if e.Op == syntax.OpAlt {
			return walk(e.Args[0]) && walk(e.Args[1])
		}
		lit, ok := literalString(e)
		if !ok {
			return false
		}
		lits = append(lits, lit)
		return true
	}
	if !walk(e) {
		return nil, false
	}
	return lits, true
}

func quote(s string) string {
	if strconv.CanBackquote(s) {
		return "`" + s + "`"
	}
	return strconv.Quote(s)
}
