package fungex

import (
	"strings"
	"testing"

	"github.com/Ashish-Basetty/fungex/syntax"
)

func TestLiteralString(t *testing.T) {
	tests := []struct {
		expr string
		want string
		ok   bool
	}{
		{`x`, `x`, true},
		{`abc`, `abc`, true},
		{`(ab)c`, `abc`, true},
		{`a(b(c))`, `abc`, true},
		{`ab*`, ``, false},
		{`a|b`, ``, false},
		{`(ab)*`, ``, false},
	}

	for _, test := range tests {
		re, err := syntax.Parse(test.expr)
		if err != nil {
			t.Fatalf("parse(%s): %v", test.expr, err)
		}
		have, ok := literalString(re.Expr)
		if have != test.want || ok != test.ok {
			t.Errorf("results mismatch for %s:\nhave: %q, %v\nwant: %q, %v",
				test.expr, have, ok, test.want, test.ok)
		}
	}
}

func TestLiteralAlternatives(t *testing.T) {
	tests := []struct {
		expr string
		want string // Branches joined by ","; empty if not applicable
	}{
		{`a|b`, `a,b`},
		{`abc|123|z`, `abc,123,z`},
		{`(ab|c)|d`, `ab,c,d`},
		{`a|a`, `a,a`},
		{`abc`, ``},
		{`a|b*`, ``},
		{`(a|b)c`, ``},
	}

	for _, test := range tests {
		re, err := syntax.Parse(test.expr)
		if err != nil {
			t.Fatalf("parse(%s): %v", test.expr, err)
		}
		lits, ok := literalAlternatives(re.Expr)
		have := strings.Join(lits, ",")
		if have != test.want || ok != (test.want != "") {
			t.Errorf("results mismatch for %s:\nhave: %q, %v\nwant: %q",
				test.expr, have, ok, test.want)
		}
	}
}
