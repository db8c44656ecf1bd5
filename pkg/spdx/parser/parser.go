package parser

import (
	"fmt"
	"strings"

	"complyhq/spdxexpr/pkg/spdx/ast"
	"complyhq/spdxexpr/pkg/spdx/exprerrors"
)

// DefaultMaxDepth is the default limit on parenthesis nesting. The passes
// downstream of the parser recurse over the tree, so the parser bounds the
// depth up front instead of risking the call stack on adversarial input.
const DefaultMaxDepth = 100

// Parser parses SPDX license expressions into canonical trees. The grammar's
// identifier alphabet comes from the injected Tables; operator handling is
// configured per parser. A Parser is cheap to construct, the Tables carry
// all the weight.
type Parser struct {
	tables                 *Tables
	maxDepth               int
	caseSensitiveOperators bool
}

// New creates a parser over the given grammar tables.
func New(tables *Tables) *Parser {
	return &Parser{
		tables:   tables,
		maxDepth: DefaultMaxDepth,
	}
}

// WithMaxDepth sets the maximum parenthesis nesting depth.
func (p *Parser) WithMaxDepth(depth int) *Parser {
	p.maxDepth = depth
	return p
}

// WithCaseSensitiveOperators requires AND, OR and WITH to be spelled in
// uppercase, as the SPDX specification mandates. The default accepts any
// case.
func (p *Parser) WithCaseSensitiveOperators(strict bool) *Parser {
	p.caseSensitiveOperators = strict
	return p
}

// Parse parses an expression into a canonical tree: identifier case is
// resolved to the registered spelling, or-later markers and WITH clauses are
// merged into their components, singleton sequences collapse and
// same-operator nesting is flattened. Failure is reported as a
// *exprerrors.ParseError, never a panic.
func (p *Parser) Parse(input string) (ast.Node, *exprerrors.ParseError) {
	tokens, err := lex(input)
	if err != nil {
		return nil, err
	}

	r := &run{parser: p, input: input, tokens: tokens}
	if r.peek().kind == tokenEOF {
		return nil, exprerrors.New(input, 0, "empty expression").
			WithExpected(exprerrors.ExpectedExpression)
	}

	node, err := r.parseExpression(0)
	if err != nil {
		return nil, err
	}

	if tok := r.peek(); tok.kind != tokenEOF {
		perr := r.errAt(tok, fmt.Sprintf("unexpected %s after complete expression", describe(tok))).
			WithExpected(exprerrors.ExpectedOperator)
		if upper := strings.ToUpper(tok.text); tok.kind == tokenIdent && isOperatorWord(upper) && tok.text != upper {
			perr = perr.WithSuggestion(fmt.Sprintf("Operators are case-sensitive here; write %q instead of %q.", upper, tok.text))
		}
		return nil, perr
	}
	return node, nil
}

// run is the per-parse state: the token stream and a cursor into it.
type run struct {
	parser *Parser
	input  string
	tokens []token
	pos    int
}

func (r *run) peek() token {
	return r.tokens[r.pos]
}

func (r *run) next() token {
	tok := r.tokens[r.pos]
	if tok.kind != tokenEOF {
		r.pos++
	}
	return tok
}

func (r *run) errAt(tok token, message string) *exprerrors.ParseError {
	return exprerrors.New(r.input, tok.start, message)
}

func isOperatorWord(upper string) bool {
	return upper == "AND" || upper == "OR" || upper == "WITH"
}

// operatorWord reports the operator a token spells, honoring the
// case-sensitivity setting.
func (r *run) operatorWord(tok token) (string, bool) {
	if tok.kind != tokenIdent {
		return "", false
	}
	upper := strings.ToUpper(tok.text)
	if !isOperatorWord(upper) {
		return "", false
	}
	if r.parser.caseSensitiveOperators && tok.text != upper {
		return "", false
	}
	return upper, true
}

// matchOperator consumes the next token if it spells the wanted operator.
func (r *run) matchOperator(want string) bool {
	if op, ok := r.operatorWord(r.peek()); ok && op == want {
		r.next()
		return true
	}
	return false
}

// parseExpression parses at the lowest precedence level (OR).
func (r *run) parseExpression(depth int) (ast.Node, *exprerrors.ParseError) {
	if depth > r.parser.maxDepth {
		return nil, r.errAt(r.peek(), fmt.Sprintf("expression nests deeper than %d levels", r.parser.maxDepth))
	}
	return r.parseOr(depth)
}

func (r *run) parseOr(depth int) (ast.Node, *exprerrors.ParseError) {
	first, err := r.parseAnd(depth)
	if err != nil {
		return nil, err
	}
	children := []ast.Node{first}
	for r.matchOperator("OR") {
		next, err := r.parseAnd(depth)
		if err != nil {
			return nil, err
		}
		children = append(children, next)
	}
	return ast.NewGroup(ast.OperatorOr, children), nil
}

func (r *run) parseAnd(depth int) (ast.Node, *exprerrors.ParseError) {
	first, err := r.parseComponent(depth)
	if err != nil {
		return nil, err
	}
	children := []ast.Node{first}
	for r.matchOperator("AND") {
		next, err := r.parseComponent(depth)
		if err != nil {
			return nil, err
		}
		children = append(children, next)
	}
	return ast.NewGroup(ast.OperatorAnd, children), nil
}

// parseComponent parses a parenthesized sub-expression or a single license
// component with its optional or-later marker and WITH clause.
func (r *run) parseComponent(depth int) (ast.Node, *exprerrors.ParseError) {
	tok := r.peek()
	switch tok.kind {
	case tokenLParen:
		r.next()
		node, err := r.parseExpression(depth + 1)
		if err != nil {
			return nil, err
		}
		if closing := r.peek(); closing.kind != tokenRParen {
			return nil, r.errAt(closing, fmt.Sprintf("unclosed parenthesis: got %s", describe(closing))).
				WithExpected(exprerrors.ExpectedCloseParen)
		}
		r.next()
		// WITH binds to exactly one license component, never a group.
		if with := r.peek(); with.kind == tokenIdent {
			if op, ok := r.operatorWord(with); ok && op == "WITH" {
				return nil, r.errAt(with, "WITH must follow a single license, not a parenthesized group")
			}
		}
		return node, nil

	case tokenIdent:
		if op, ok := r.operatorWord(tok); ok {
			return nil, r.errAt(tok, fmt.Sprintf("dangling operator %q", op)).
				WithExpected(exprerrors.ExpectedLicense)
		}
		return r.parseLicenseComponent()

	default:
		return nil, r.errAt(tok, fmt.Sprintf("expected a license expression, got %s", describe(tok))).
			WithExpected(exprerrors.ExpectedLicense)
	}
}

func (r *run) parseLicenseComponent() (ast.Node, *exprerrors.ParseError) {
	tok := r.next()

	var license ast.License
	switch {
	case strings.HasPrefix(tok.text, "DocumentRef-"):
		document, id, err := r.parseDocumentRef(tok, "LicenseRef-")
		if err != nil {
			return nil, err
		}
		license = ast.LicenseRef{ID: id, DocumentRef: document}

	case strings.HasPrefix(tok.text, "LicenseRef-"):
		id := strings.TrimPrefix(tok.text, "LicenseRef-")
		if id == "" {
			return nil, r.errAt(tok, "malformed LicenseRef: missing id after \"LicenseRef-\"").
				WithExpected(exprerrors.ExpectedLicense)
		}
		license = ast.LicenseRef{ID: id}

	default:
		canonical, ok := r.parser.tables.License(tok.text)
		if !ok {
			perr := r.errAt(tok, fmt.Sprintf("unknown license id %q", tok.text)).
				WithExpected(exprerrors.ExpectedLicense)
			if s := exprerrors.SuggestID(tok.text, r.parser.tables.LicenseIDs()); s != "" {
				perr = perr.WithSuggestion(s)
			}
			return nil, perr
		}
		simple := ast.SimpleLicense{ID: canonical}
		// The or-later marker must sit directly on the id, "MIT +" is
		// not an expression.
		if plus := r.peek(); plus.kind == tokenPlus && plus.start == tok.end() {
			r.next()
			simple.OrLater = true
		}
		license = simple
	}

	component := &ast.Component{License: license}
	if r.matchOperator("WITH") {
		exception, err := r.parseExceptionComponent()
		if err != nil {
			return nil, err
		}
		component.Exception = exception
	}
	return component, nil
}

func (r *run) parseExceptionComponent() (ast.Exception, *exprerrors.ParseError) {
	tok := r.peek()
	if tok.kind != tokenIdent {
		return nil, r.errAt(tok, fmt.Sprintf("expected an exception after WITH, got %s", describe(tok))).
			WithExpected(exprerrors.ExpectedException)
	}
	if op, ok := r.operatorWord(tok); ok {
		return nil, r.errAt(tok, fmt.Sprintf("dangling operator %q after WITH", op)).
			WithExpected(exprerrors.ExpectedException)
	}
	r.next()

	switch {
	case strings.HasPrefix(tok.text, "DocumentRef-"):
		document, id, err := r.parseDocumentRef(tok, "AdditionRef-")
		if err != nil {
			return nil, err
		}
		return ast.AdditionRef{ID: id, DocumentRef: document}, nil

	case strings.HasPrefix(tok.text, "AdditionRef-"):
		id := strings.TrimPrefix(tok.text, "AdditionRef-")
		if id == "" {
			return nil, r.errAt(tok, "malformed AdditionRef: missing id after \"AdditionRef-\"").
				WithExpected(exprerrors.ExpectedException)
		}
		return ast.AdditionRef{ID: id}, nil

	default:
		canonical, ok := r.parser.tables.Exception(tok.text)
		if !ok {
			perr := r.errAt(tok, fmt.Sprintf("unknown exception id %q", tok.text)).
				WithExpected(exprerrors.ExpectedException)
			if s := exprerrors.SuggestID(tok.text, r.parser.tables.ExceptionIDs()); s != "" {
				perr = perr.WithSuggestion(s)
			}
			return nil, perr
		}
		return ast.ExceptionID(canonical), nil
	}
}

// parseDocumentRef finishes a "DocumentRef-<doc>:<prefix><id>" reference.
// docTok is the already-consumed DocumentRef token; the ':' and the
// following identifier must be adjacent, whitespace inside a reference is
// malformed.
func (r *run) parseDocumentRef(docTok token, wantPrefix string) (document, id string, err *exprerrors.ParseError) {
	document = strings.TrimPrefix(docTok.text, "DocumentRef-")
	if document == "" {
		return "", "", r.errAt(docTok, "malformed DocumentRef: missing id after \"DocumentRef-\"")
	}

	colon := r.peek()
	if colon.kind != tokenColon || colon.start != docTok.end() {
		return "", "", r.errAt(colon, "malformed DocumentRef: expected ':' immediately after the document id")
	}
	r.next()

	refTok := r.peek()
	if refTok.kind != tokenIdent || refTok.start != colon.end() {
		return "", "", r.errAt(refTok, fmt.Sprintf("malformed DocumentRef: expected %q immediately after ':'", wantPrefix))
	}
	r.next()

	if !strings.HasPrefix(refTok.text, wantPrefix) {
		return "", "", r.errAt(refTok, fmt.Sprintf("malformed reference: expected a %q id, got %q", wantPrefix, refTok.text))
	}
	id = strings.TrimPrefix(refTok.text, wantPrefix)
	if id == "" {
		return "", "", r.errAt(refTok, fmt.Sprintf("malformed reference: missing id after %q", wantPrefix))
	}
	return document, id, nil
}

func describe(tok token) string {
	if tok.kind == tokenIdent {
		return fmt.Sprintf("%q", tok.text)
	}
	return tok.kind.String()
}
