package guard

import "strings"

// NoCheckGuard is the sentinel guard text meaning "always true". It
// mirrors fsm.NoCheckGuard — duplicated rather than imported so this
// package stays free of any dependency on the extractor's data model,
// matching the spec's contract that the core only ever consumes the
// guard text itself.
const NoCheckGuard = "No Check"

// ParseGuard reduces a transition's guard text to DNF. An empty guard
// or the sentinel NoCheckGuard text is vacuously true: one empty
// conjunction. Otherwise the guard is tokenised and parsed; if the
// parser fails to produce a tree, the fallback AND-only parser takes
// over. Never returns an error — see the package doc comment.
func ParseGuard(raw string) DNF {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" || trimmed == NoCheckGuard {
		return DNF{{}}
	}

	tokens := Tokenize(trimmed)
	if expr, ok := parseExpression(tokens); ok {
		return Normalize(expr)
	}

	return fallbackParse(trimmed)
}
