package fungex

var matcherConstructors = []func(regexpData) Matcher{
	regexpData.literalMatcher,
	regexpData.literalSetMatcher,
}

func optimizedMatcher(re *Regexp) Matcher {
	d := regexpData{re: re}
	for _, ctor := range matcherConstructors {
		if m := ctor(d); m != nil {
			return m
		}
	}
	return nil
}

type regexpData struct {
	re *Regexp
}

func (d regexpData) literalMatcher() Matcher {
	lit, ok := literalString(d.re.re.Expr)
	if !ok {
		return nil
	}
	return &literalMatcher{lit: lit}
}

func (d regexpData) literalSetMatcher() Matcher {
	lits, ok := literalAlternatives(d.re.re.Expr)
	if !ok {
		return nil
	}
	set := make(map[string]struct{}, len(lits))
	for _, lit := range lits {
		set[lit] = struct{}{}
	}
	return &literalSetMatcher{set: set}
}

// literalMatcher matches patterns like `abc`.
type literalMatcher struct {
	lit string
}

func (m *literalMatcher) MatchString(s string) bool {
	return s == m.lit
}

// literalSetMatcher matches patterns like `ab|c|def`.
type literalSetMatcher struct {
	set map[string]struct{}
}

func (m *literalSetMatcher) MatchString(s string) bool {
	_, ok := m.set[s]
	return ok
}
