package syntax

import (
	"fmt"
)

// Regexp is a parsed pattern.
type Regexp struct {
	Source string

	// Postfix is the operator-precedence rewrite of Source
	// that the tree was built from, with '^' standing for
	// the implicit concatenation operator.
	Postfix string

	Expr Expr
}

type Expr struct {
	// The operation that this expression performs. See `operation.go`.
	Op Operation

	// Pos describes a source location inside regexp pattern.
	// Grouping parentheses are never included.
	Pos Position

	// Args is a list of sub-expressions of this expression.
	//
	// OpStar has exactly one argument,
	// OpConcat and OpAlt have exactly two (left and right).
	Args []Expr

	// Rune is the matched character of an OpChar expression.
	Rune rune
}

// Begin returns expression leftmost offset.
func (e Expr) Begin() int { return e.Pos.Begin }

// End returns expression rightmost offset.
func (e Expr) End() int { return e.Pos.End }

// String returns the s-expression form of e.
func (e Expr) String() string { return formatExprSyntax(e) }

// Char returns an expression that matches exactly c.
func Char(c rune) Expr {
	return Expr{Op: OpChar, Rune: c}
}

// Star returns an expression that matches zero or more x.
func Star(x Expr) Expr {
	return Expr{Op: OpStar, Args: []Expr{x}}
}

// Concat returns an expression that matches x followed by y.
func Concat(x, y Expr) Expr {
	return Expr{Op: OpConcat, Args: []Expr{x, y}}
}

// Or returns an expression that matches either x or y.
func Or(x, y Expr) Expr {
	return Expr{Op: OpAlt, Args: []Expr{x, y}}
}

// Position is a half-open [Begin, End) byte span of the pattern.
type Position struct {
	Begin int
	End   int
}

func combinePos(begin, end Position) Position {
	return Position{Begin: begin.Begin, End: end.End}
}

func FormatSyntax(re *Regexp) string {
	return formatExprSyntax(re.Expr)
}

func formatExprSyntax(e Expr) string {
	switch e.Op {
	case OpChar:
		return string(e.Rune)
	case OpStar:
		return fmt.Sprintf("(* %s)", formatExprSyntax(e.Args[0]))
	case OpConcat:
		return fmt.Sprintf("{%s %s}", formatExprSyntax(e.Args[0]), formatExprSyntax(e.Args[1]))
	case OpAlt:
		return fmt.Sprintf("(or %s %s)", formatExprSyntax(e.Args[0]), formatExprSyntax(e.Args[1]))
	default:
		return fmt.Sprintf("<op=%d>", e.Op)
	}
}
