package guard

import "strings"

// Tokenize converts a guard's infix text into a flat token sequence
// over {AND, OR, NOT, (, ), atomic-condition-text}. Whitespace
// separates tokens. AND/OR/NOT are only recognised as complete
// words — the character immediately following the keyword, if any,
// must not be alphanumeric or '_' — so identifiers like ORIGIN or
// AND_FLAG are never misread as operators. Parentheses are dedicated
// tokens at the top level; inside an atomic condition they are
// balanced and swallowed as part of the atomic text, which lets a
// guard like "(x + 1) = 2" stay one atom. Characters the tokeniser
// cannot classify at the top level (stray punctuation before an
// atomic condition starts) are silently skipped, never reported.
func Tokenize(s string) []Token {
	var tokens []Token
	i, n := 0, len(s)

	for i < n {
		c := s[i]
		switch {
		case isSpace(c):
			i++
		case c == '(':
			tokens = append(tokens, Token{Type: TokenLParen})
			i++
		case c == ')':
			tokens = append(tokens, Token{Type: TokenRParen})
			i++
		case matchKeyword(s, i, "AND"):
			tokens = append(tokens, Token{Type: TokenAnd})
			i += len("AND")
		case matchKeyword(s, i, "OR"):
			tokens = append(tokens, Token{Type: TokenOr})
			i += len("OR")
		case matchKeyword(s, i, "NOT"):
			tokens = append(tokens, Token{Type: TokenNot})
			i += len("NOT")
		default:
			start := i
			depth := 0
		atomLoop:
			for i < n {
				switch {
				case depth == 0 && matchKeyword(s, i, "AND"):
					break atomLoop
				case depth == 0 && matchKeyword(s, i, "OR"):
					break atomLoop
				case s[i] == '(':
					depth++
					i++
				case s[i] == ')':
					if depth == 0 {
						// unmatched at this atomic's own nesting level:
						// it closes a group opened at the top level.
						break atomLoop
					}
					depth--
					i++
				default:
					i++
				}
			}
			text := strings.TrimSpace(s[start:i])
			if text != "" {
				tokens = append(tokens, Token{Type: TokenAtom, Value: text})
			} else if start == i {
				// Nothing consumed and nothing matched: avoid looping
				// forever on an unclassifiable character.
				i++
			}
		}
	}

	return tokens
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

func isWordChar(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') || c == '_'
}

// matchKeyword reports whether kw occurs at s[i:] as a complete word:
// the literal characters match and the next character, if any, is
// not alphanumeric and not '_'.
func matchKeyword(s string, i int, kw string) bool {
	if i+len(kw) > len(s) {
		return false
	}
	if s[i:i+len(kw)] != kw {
		return false
	}
	next := i + len(kw)
	if next >= len(s) {
		return true
	}
	return !isWordChar(s[next])
}
