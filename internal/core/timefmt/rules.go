package timefmt

import "regexp"

// Rule is a named match predicate backed by a compiled regexp.
// Naming the predicate lets match rules be tested apart from the
// descriptor that carries them
type Rule struct {
	name string
	re   *regexp.Regexp
}

// MustRule compiles expr into a Rule and panics on a bad expression.
// Catalog construction happens once at startup, so a bad pattern is a
// programming error, not an input error
func MustRule(name, expr string) Rule {
	return Rule{name: name, re: regexp.MustCompile(expr)}
}

// Name returns the rule's name
func (r Rule) Name() string { return r.name }

// Match reports whether s satisfies the rule
func (r Rule) Match(s string) bool {
	if r.re == nil {
		return false
	}
	return r.re.MatchString(s)
}

// String implements fmt.Stringer
func (r Rule) String() string { return r.name }
