package guard

import "sort"

// DNF is a disjunction of conjunctions: a list of conjunctions, each
// itself a list of atomic conditions that must all hold. It is the
// canonical shape every guard is reduced to before path composition.
type DNF [][]AtomicCondition

// Normalize reduces an expression tree to DNF: negations pushed
// inward via De Morgan, double negation collapsed, AND distributed
// over OR. Each returned conjunction is deduplicated by the
// (variable, operator, value) triple and sorted ascending by that
// same triple — the canonical order the composer and the formatter
// both rely on.
//
// Negation is threaded through as an accumulator rather than rewriting
// the tree up front: toDNF(e, true) computes DNF(Not(e)) directly, so
// Not(And(l,r)) and Not(Or(l,r)) fall out of the And/Or cases below
// without a separate rewrite step, and Not(Not(e)) collapses for free
// because the accumulator just flips back to false.
func Normalize(e *Expr) DNF {
	return canonicalizeDNF(toDNF(e, false))
}

func toDNF(e *Expr, negated bool) DNF {
	switch e.Kind {
	case ExprAtomic:
		c := e.Atom
		if negated {
			c = negateAtomic(c)
		}
		return DNF{{c}}
	case ExprNot:
		return toDNF(e.Child, !negated)
	case ExprAnd:
		if !negated {
			return crossProductRaw(toDNF(e.Left, false), toDNF(e.Right, false))
		}
		// De Morgan: NOT(A AND B) = (NOT A) OR (NOT B)
		return append(toDNF(e.Left, true), toDNF(e.Right, true)...)
	case ExprOr:
		if !negated {
			return append(toDNF(e.Left, false), toDNF(e.Right, false)...)
		}
		// De Morgan: NOT(A OR B) = (NOT A) AND (NOT B)
		return crossProductRaw(toDNF(e.Left, true), toDNF(e.Right, true))
	default:
		return DNF{{}}
	}
}

// negateAtomic applies the operator-negation table. An operator
// outside the six recognised comparisons negates to "=" as a
// defensive default — it should never arise since ParseAtomic only
// ever produces the six.
func negateAtomic(c AtomicCondition) AtomicCondition {
	negated := map[string]string{
		"=":  "<>",
		"<>": "=",
		"<":  ">=",
		">=": "<",
		"<=": ">",
		">":  "<=",
	}
	op, ok := negated[c.Operator]
	if !ok {
		op = "="
	}
	return AtomicCondition{Variable: c.Variable, Operator: op, Value: c.Value}
}

// CrossProduct combines every conjunction of a with every conjunction
// of b pairwise, concatenating each pair — the cartesian-combine step
// for AND(l, r). It is also used by the signature composer to
// combine per-transition DNFs along a path, so it is exported.
func CrossProduct(a, b DNF) DNF {
	return crossProductRaw(a, b)
}

func crossProductRaw(a, b DNF) DNF {
	if len(a) == 0 || len(b) == 0 {
		return DNF{}
	}
	out := make(DNF, 0, len(a)*len(b))
	for _, ca := range a {
		for _, cb := range b {
			combined := make([]AtomicCondition, 0, len(ca)+len(cb))
			combined = append(combined, ca...)
			combined = append(combined, cb...)
			out = append(out, combined)
		}
	}
	return out
}

func canonicalizeDNF(d DNF) DNF {
	out := make(DNF, len(d))
	for i, conj := range d {
		out[i] = Canonicalize(conj)
	}
	return out
}

// Canonicalize deduplicates a conjunction by its (variable, operator,
// value) triple and sorts the result ascending by that same triple.
func Canonicalize(conj []AtomicCondition) []AtomicCondition {
	seen := make(map[AtomicCondition]bool, len(conj))
	out := make([]AtomicCondition, 0, len(conj))
	for _, c := range conj {
		if seen[c] {
			continue
		}
		seen[c] = true
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Variable != b.Variable {
			return a.Variable < b.Variable
		}
		if a.Operator != b.Operator {
			return a.Operator < b.Operator
		}
		return a.Value < b.Value
	})
	return out
}
