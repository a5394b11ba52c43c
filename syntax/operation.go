package syntax

const (
	OpNone Operation = iota

	// OpChar is a single letter or digit, like `a` or `7`.
	// Expr.Rune holds the character.
	OpChar

	// OpStar is a `*` repetition: zero or more Args[0].
	OpStar

	// OpConcat is Args[0] followed by Args[1], like `ab`.
	// Concatenation has no operator character in the pattern.
	OpConcat

	// OpAlt is an alternation of Args[0] and Args[1], like `a|b`.
	OpAlt

	// OpNone2 is a sentinel value that is never part of the AST.
	// OpNone and OpNone2 can be used to cover all ops in a range.
	OpNone2
)

func (op Operation) String() string {
	switch op {
	case OpNone:
		return "None"
	case OpChar:
		return "Char"
	case OpStar:
		return "Star"
	case OpConcat:
		return "Concat"
	case OpAlt:
		return "Alt"
	case OpNone2:
		return "None2"
	default:
		return "Operation(?)"
	}
}

type Operation byte
