package guard

import (
	"reflect"
	"testing"
)

func TestParseAtomic(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected AtomicCondition
		ok       bool
	}{
		{"simple equals", "sensor = low", AtomicCondition{"sensor", "=", "low"}, true},
		{"not equals", "state <> 10", AtomicCondition{"state", "<>", "10"}, true},
		{"less or equal not misread as less", "x <= 5", AtomicCondition{"x", "<=", "5"}, true},
		{"less than", "x < 5", AtomicCondition{"x", "<", "5"}, true},
		{"greater or equal", "x >= 5", AtomicCondition{"x", ">=", "5"}, true},
		{"greater than", "x > 5", AtomicCondition{"x", ">", "5"}, true},
		{"wrapped in parens", "(x + 1) = 2", AtomicCondition{"(x + 1)", "=", "2"}, true},
		{"outer parens stripped", "(x = 2)", AtomicCondition{"x", "=", "2"}, true},
		{"no operator", "just a token", AtomicCondition{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseAtomic(tt.input)
			if ok != tt.ok {
				t.Fatalf("ParseAtomic(%q) ok = %v, want %v", tt.input, ok, tt.ok)
			}
			if ok && got != tt.expected {
				t.Errorf("ParseAtomic(%q) = %+v, want %+v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestTokenizeKeywordWordBoundary(t *testing.T) {
	toks := Tokenize("ORIGIN = 1 AND AND_FLAG = 0")
	var kinds []TokenType
	for _, tok := range toks {
		kinds = append(kinds, tok.Type)
	}
	want := []TokenType{TokenAtom, TokenAnd, TokenAtom}
	if !reflect.DeepEqual(kinds, want) {
		t.Fatalf("token kinds = %v, want %v", kinds, want)
	}
	if toks[0].Value != "ORIGIN = 1" {
		t.Errorf("first atom = %q, want %q", toks[0].Value, "ORIGIN = 1")
	}
	if toks[2].Value != "AND_FLAG = 0" {
		t.Errorf("second atom = %q, want %q", toks[2].Value, "AND_FLAG = 0")
	}
}

func TestParseGuardDistribution(t *testing.T) {
	dnf := ParseGuard("(A = 1 OR B = 2) AND C = 3")
	if len(dnf) != 2 {
		t.Fatalf("expected 2 conjunctions, got %d: %v", len(dnf), dnf)
	}
	formatted := map[string]bool{}
	for _, conj := range dnf {
		formatted[conjunctionKey(conj)] = true
	}
	if !formatted["A=1|C=3"] || !formatted["B=2|C=3"] {
		t.Fatalf("unexpected conjunctions: %v", dnf)
	}
}

func TestParseGuardNegation(t *testing.T) {
	dnf := ParseGuard("NOT (A = 1 AND B < 2)")
	if len(dnf) != 2 {
		t.Fatalf("expected 2 conjunctions, got %d: %v", len(dnf), dnf)
	}
	formatted := map[string]bool{}
	for _, conj := range dnf {
		formatted[conjunctionKey(conj)] = true
	}
	if !formatted["A<>1"] || !formatted["B>=2"] {
		t.Fatalf("unexpected conjunctions: %v", dnf)
	}
}

func TestParseGuardDoubleNegation(t *testing.T) {
	a := ParseGuard("NOT (NOT (A = 1))")
	b := ParseGuard("A = 1")
	if conjunctionKey(a[0]) != conjunctionKey(b[0]) {
		t.Fatalf("double negation mismatch: %v vs %v", a, b)
	}
}

func TestParseGuardInOR(t *testing.T) {
	dnf := ParseGuard("sensor = low OR button = pressed")
	if len(dnf) != 2 {
		t.Fatalf("expected 2 conjunctions, got %d", len(dnf))
	}
}

func TestParseGuardNoCheck(t *testing.T) {
	for _, guard := range []string{"", "No Check", "  "} {
		dnf := ParseGuard(guard)
		if len(dnf) != 1 || len(dnf[0]) != 0 {
			t.Errorf("ParseGuard(%q) = %v, want one empty conjunction", guard, dnf)
		}
	}
}

func TestParseGuardFallback(t *testing.T) {
	// An unbalanced parenthesis defeats the recursive-descent parser;
	// the fallback AND-split parser should still recover the atoms.
	dnf := ParseGuard("sensor = low AND ((button = pressed")
	if len(dnf) != 1 {
		t.Fatalf("expected a single fallback conjunction, got %v", dnf)
	}
}

func TestCanonicalizeDedupesAndSorts(t *testing.T) {
	conj := []AtomicCondition{
		{"b", "=", "2"},
		{"a", "=", "1"},
		{"a", "=", "1"},
	}
	got := Canonicalize(conj)
	want := []AtomicCondition{{"a", "=", "1"}, {"b", "=", "2"}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Canonicalize = %v, want %v", got, want)
	}
}

func conjunctionKey(conj []AtomicCondition) string {
	s := ""
	for i, c := range conj {
		if i > 0 {
			s += "|"
		}
		s += c.Variable + c.Operator + c.Value
	}
	return s
}
