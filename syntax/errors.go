package syntax

import (
	"fmt"
)

// ErrorKind classifies a ParseError.
type ErrorKind byte

const (
	// ErrEmpty means there was nothing to build a tree from.
	ErrEmpty ErrorKind = iota + 1

	// ErrUnknownChar means the pattern contains a byte that is neither
	// an ASCII letter or digit nor one of `(`, `)`, `*`, `|`.
	ErrUnknownChar

	// ErrUnbalanced means a `(` or `)` has no matching pair.
	ErrUnbalanced

	// ErrMissingOperand means an operator has fewer operands
	// than it needs, like in `a|` or `*a`.
	ErrMissingOperand
)

func (k ErrorKind) String() string {
	switch k {
	case ErrEmpty:
		return "empty pattern"
	case ErrUnknownChar:
		return "unknown character"
	case ErrUnbalanced:
		return "unbalanced parentheses"
	case ErrMissingOperand:
		return "missing operand"
	default:
		return fmt.Sprintf("ErrorKind(%d)", byte(k))
	}
}

// ParseError records an error encountered while parsing a pattern.
type ParseError struct {
	Kind    ErrorKind
	Message string

	// Pos is the span of the pattern the error refers to.
	Pos Position
}

func (e ParseError) Error() string { return e.Message }

func throwfPos(kind ErrorKind, pos Position, format string, args ...interface{}) {
	panic(ParseError{
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
		Pos:     pos,
	})
}

func throwErrorf(kind ErrorKind, posBegin, posEnd int, format string, args ...interface{}) {
	pos := Position{Begin: posBegin, End: posEnd}
	throwfPos(kind, pos, format, args...)
}
