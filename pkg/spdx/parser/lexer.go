package parser

import (
	"fmt"

	"complyhq/spdxexpr/pkg/spdx/exprerrors"
)

// tokenKind identifies the lexical class of a token.
type tokenKind int

const (
	tokenIdent tokenKind = iota // run of [A-Za-z0-9.-]
	tokenPlus                   // +
	tokenColon                  // :
	tokenLParen                 // (
	tokenRParen                 // )
	tokenEOF
)

func (k tokenKind) String() string {
	switch k {
	case tokenIdent:
		return "identifier"
	case tokenPlus:
		return "'+'"
	case tokenColon:
		return "':'"
	case tokenLParen:
		return "'('"
	case tokenRParen:
		return "')'"
	case tokenEOF:
		return "end of input"
	}
	return "unknown token"
}

// token is a lexeme with its byte offset in the input. Offsets let the
// parser enforce adjacency rules (the or-later '+' and the ':' inside a
// DocumentRef must not be preceded by whitespace) and anchor diagnostics.
type token struct {
	kind  tokenKind
	text  string
	start int
}

// end returns the byte offset just past the token.
func (t token) end() int {
	return t.start + len(t.text)
}

// isIDChar reports whether c may appear in an id-string. SPDX id-strings
// are ASCII alphanumerics plus '-' and '.'.
func isIDChar(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		return true
	case c == '-' || c == '.':
		return true
	}
	return false
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n'
}

// lex splits the input into tokens. It fails only on characters outside the
// expression alphabet; all structural validation is the parser's job.
func lex(input string) ([]token, *exprerrors.ParseError) {
	tokens := make([]token, 0, 8)
	i := 0
	for i < len(input) {
		c := input[i]
		switch {
		case isSpace(c):
			i++
		case c == '(':
			tokens = append(tokens, token{tokenLParen, "(", i})
			i++
		case c == ')':
			tokens = append(tokens, token{tokenRParen, ")", i})
			i++
		case c == '+':
			tokens = append(tokens, token{tokenPlus, "+", i})
			i++
		case c == ':':
			tokens = append(tokens, token{tokenColon, ":", i})
			i++
		case isIDChar(c):
			start := i
			for i < len(input) && isIDChar(input[i]) {
				i++
			}
			tokens = append(tokens, token{tokenIdent, input[start:i], start})
		default:
			return nil, exprerrors.New(input, i, fmt.Sprintf("unexpected character %q", rune(c)))
		}
	}
	tokens = append(tokens, token{tokenEOF, "", len(input)})
	return tokens, nil
}
