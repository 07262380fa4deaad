package guard

import "strings"

// comparisonOperators is the longest-match-wins scan order: two
// character operators before the single-character ones they prefix,
// so "<=" is never misread as "<".
var comparisonOperators = []string{"<=", ">=", "<>", "=", "<", ">"}

// AtomicCondition is the indivisible leaf of a boolean expression: a
// variable compared against an opaque value. Value is never
// interpreted beyond the matcher's own comparison semantics — the
// engine does no arithmetic and no type inference.
type AtomicCondition struct {
	Variable string
	Operator string
	Value    string
}

// ParseAtomic splits raw atomic-condition text into (variable,
// operator, value) by scanning left to right for the first position
// at which any comparisonOperators entry matches. If no operator is
// found the text is not a valid atomic condition and ok is false —
// the caller (the expression parser or the fallback parser) decides
// what to do with that.
func ParseAtomic(text string) (AtomicCondition, bool) {
	text = stripOuterParens(strings.TrimSpace(text))

	for i := 0; i < len(text); i++ {
		for _, op := range comparisonOperators {
			if strings.HasPrefix(text[i:], op) {
				variable := strings.TrimSpace(text[:i])
				value := strings.TrimSpace(stripOuterParens(strings.TrimSpace(text[i+len(op):])))
				if variable == "" {
					return AtomicCondition{}, false
				}
				return AtomicCondition{Variable: variable, Operator: op, Value: value}, true
			}
		}
	}

	return AtomicCondition{}, false
}

// stripOuterParens removes one pair of parentheses if they wrap the
// entire string (i.e. the opening paren at index 0 is the match for
// the closing paren at the last index).
func stripOuterParens(s string) string {
	if len(s) < 2 || s[0] != '(' || s[len(s)-1] != ')' {
		return s
	}
	depth := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 && i != len(s)-1 {
				// the opening paren closes before the end: the outer
				// parens don't wrap the whole string.
				return s
			}
		}
	}
	return strings.TrimSpace(s[1 : len(s)-1])
}
