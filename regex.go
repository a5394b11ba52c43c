// Package fungex matches whole strings against regular expressions
// built from characters, concatenation, alternation and Kleene star.
//
// Patterns are compiled to Thompson automata once and then simulated
// on every input, so matching time is linear in the input length.
package fungex

import (
	"github.com/Ashish-Basetty/fungex/nfa"
	"github.com/Ashish-Basetty/fungex/syntax"
)

// Matcher reflects regexp match operations.
type Matcher interface {
	MatchString(s string) bool
}

// Regexp is a compiled pattern.
// It is safe for concurrent use by multiple goroutines.
type Regexp struct {
	re  *syntax.Regexp
	nfa *nfa.NFA
}

// Compile parses a pattern and builds its automaton.
// Parse failures are returned as syntax.ParseError.
func Compile(expr string) (*Regexp, error) {
	re, err := syntax.Parse(expr)
	if err != nil {
		return nil, err
	}
	return &Regexp{re: re, nfa: nfa.Compile(re.Expr)}, nil
}

// MustCompile is like Compile but panics if the pattern cannot be parsed.
func MustCompile(expr string) *Regexp {
	re, err := Compile(expr)
	if err != nil {
		panic(`fungex: Compile(` + quote(expr) + `): ` + err.Error())
	}
	return re
}

// MatchString reports whether the whole of s is in the language of re.
func (re *Regexp) MatchString(s string) bool {
	return re.nfa.MatchString(s)
}

// String returns the source text used to compile re.
func (re *Regexp) String() string { return re.re.Source }

// Syntax returns the parsed form of re.
func (re *Regexp) Syntax() *syntax.Regexp { return re.re }

// NFA returns the automaton re matches with.
// The caller must not modify it.
func (re *Regexp) NFA() *nfa.NFA { return re.nfa }

// CompileMatcher returns an optimized matcher for a given regular expression.
func CompileMatcher(expr string) (Matcher, error) {
	re, err := Compile(expr)
	if err != nil {
		return nil, err
	}
	return re.Matcher(), nil
}

// Matcher returns an optimized matcher equivalent to re,
// or re itself when no optimization applies.
func (re *Regexp) Matcher() Matcher {
	if m := optimizedMatcher(re); m != nil {
		return m
	}
	return re
}
