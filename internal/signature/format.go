package signature

import (
	"strings"

	"github.com/LaBackDoor/fsm-extractor/internal/guard"
)

// FormatAtomic renders an atomic condition as "<variable> <operator>
// <value>" with single spaces, the canonical form used both for
// display and as the merge key across paths.
func FormatAtomic(c guard.AtomicCondition) string {
	return c.Variable + " " + c.Operator + " " + c.Value
}

// FormatConjunction joins a canonical (sorted, deduped) conjunction's
// atomics with " AND ". An empty conjunction — a path that crossed no
// real guard — formats as "[initial]".
func FormatConjunction(conj []guard.AtomicCondition) string {
	if len(conj) == 0 {
		return "[initial]"
	}
	parts := make([]string, len(conj))
	for i, c := range conj {
		parts[i] = FormatAtomic(c)
	}
	return strings.Join(parts, " AND ")
}

// FormatSignature renders a StateSignature: the single conjunction's
// format if there is exactly one PathSignature; otherwise every
// conjunction wrapped in parentheses and joined by " OR ". A state
// with no PathSignatures — an initial state, which matches any
// assignment — formats the same way an empty conjunction does.
func FormatSignature(sig *StateSignature) string {
	switch len(sig.Paths) {
	case 0:
		return "[initial]"
	case 1:
		return FormatConjunction(sig.Paths[0].Conjunction)
	default:
		parts := make([]string, len(sig.Paths))
		for i, p := range sig.Paths {
			parts[i] = "(" + FormatConjunction(p.Conjunction) + ")"
		}
		return strings.Join(parts, " OR ")
	}
}
