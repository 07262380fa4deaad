package signature

import (
	"strconv"

	"github.com/LaBackDoor/fsm-extractor/internal/guard"
)

// Assignment is a runtime variable mapping used to verify a signature:
// variable name to its current string value.
type Assignment map[string]string

// Match reports whether stateID's signature matches assignment. A
// state absent from the table never matches. Verification failures
// (a missing variable, a numeric parse error on a comparison) make
// the affected atomic evaluate false rather than raising an error —
// there is no such thing as a runtime-match exception.
func (t *Table) Match(stateID string, assignment Assignment) bool {
	sig, ok := t.Get(stateID)
	if !ok {
		return false
	}
	return sig.Matches(assignment)
}

// Matches evaluates the signature under OR-of-AND semantics: a
// signature with no path signatures (an initial state) matches any
// assignment; otherwise it matches if any one of its path signatures
// matches.
func (s *StateSignature) Matches(assignment Assignment) bool {
	if len(s.Paths) == 0 {
		return true
	}
	for _, p := range s.Paths {
		if conjunctionMatches(p.Conjunction, assignment) {
			return true
		}
	}
	return false
}

func conjunctionMatches(conj []guard.AtomicCondition, assignment Assignment) bool {
	for _, c := range conj {
		if !atomicMatches(c, assignment) {
			return false
		}
	}
	return true
}

func atomicMatches(c guard.AtomicCondition, assignment Assignment) bool {
	value, ok := assignment[c.Variable]
	if !ok {
		return false
	}

	switch c.Operator {
	case "=":
		return value == c.Value
	case "<>":
		return value != c.Value
	case "<", "<=", ">", ">=":
		left, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return false
		}
		right, err := strconv.ParseFloat(c.Value, 64)
		if err != nil {
			return false
		}
		switch c.Operator {
		case "<":
			return left < right
		case "<=":
			return left <= right
		case ">":
			return left > right
		case ">=":
			return left >= right
		}
	}
	return false
}
