package spdx

import (
	"time"

	"complyhq/spdxexpr/pkg/registry"
	"complyhq/spdxexpr/pkg/spdx/ast"
	"complyhq/spdxexpr/pkg/spdx/exprerrors"
	"complyhq/spdxexpr/pkg/spdx/parser"
	"complyhq/spdxexpr/pkg/telemetry/metrics"
)

// Engine parses, validates and canonicalizes SPDX license expressions
// against one registry snapshot.
//
// Construction is the expensive step: New embeds the registry's id sets
// into the grammar tables once. The engine is immutable afterwards and safe
// for concurrent use; build a new engine to pick up a new registry
// snapshot.
type Engine struct {
	registry registry.Registry
	tables   *parser.Tables
	maxDepth int
	metrics  *metrics.Collector
}

// EngineOption configures an Engine at construction time.
type EngineOption func(*Engine)

// WithMaxDepth bounds parenthesis nesting. The canonicalization passes
// recurse over the tree, so this bound also caps their stack use.
func WithMaxDepth(depth int) EngineOption {
	return func(e *Engine) { e.maxDepth = depth }
}

// WithMetrics attaches a collector that records parse outcomes and
// latencies. Without it the engine records nothing.
func WithMetrics(c *metrics.Collector) EngineOption {
	return func(e *Engine) { e.metrics = c }
}

// New builds an engine from a registry snapshot.
func New(reg registry.Registry, opts ...EngineOption) *Engine {
	e := &Engine{
		registry: reg,
		maxDepth: parser.DefaultMaxDepth,
	}
	for _, opt := range opts {
		opt(e)
	}
	e.tables = parser.NewTables(reg.KnownLicenseIDs(), reg.KnownExceptionIDs())
	return e
}

// Parse parses an expression into its canonical tree. It returns nil for
// any invalid input (unknown ids, malformed references, unbalanced
// parentheses, dangling operators, blank input) and never panics. Use
// ParseWithInfo when the caller needs to know why parsing failed.
func (e *Engine) Parse(expression string, opts *Options) ast.Node {
	node, _ := e.parse(expression, opts)
	return node
}

// ParseWithInfo is Parse with diagnostics: on failure the returned error is
// a *exprerrors.ParseError describing the failure position and, where
// determinable, the expected token class.
func (e *Engine) ParseWithInfo(expression string, opts *Options) (ast.Node, error) {
	node, perr := e.parse(expression, opts)
	if perr != nil {
		return nil, perr
	}
	return node, nil
}

// Valid reports whether the expression parses.
func (e *Engine) Valid(expression string, opts *Options) bool {
	return e.Parse(expression, opts) != nil
}

// Simple reports whether a valid expression is a single license component
// (no AND/OR). ok is false when the expression is invalid.
func (e *Engine) Simple(expression string, opts *Options) (simple, ok bool) {
	node := e.Parse(expression, opts)
	if node == nil {
		return false, false
	}
	_, isComponent := node.(*ast.Component)
	return isComponent, true
}

// Compound reports whether a valid expression combines components with
// AND/OR. ok is false when the expression is invalid.
func (e *Engine) Compound(expression string, opts *Options) (compound, ok bool) {
	simple, ok := e.Simple(expression, opts)
	if !ok {
		return false, false
	}
	return !simple, true
}

// Normalize parses the expression and renders it back in canonical form,
// so every logically equivalent spelling yields the same string. The error
// is a *exprerrors.ParseError on invalid input.
func (e *Engine) Normalize(expression string, opts *Options) (string, error) {
	node, err := e.ParseWithInfo(expression, opts)
	if err != nil {
		return "", err
	}
	return Unparse(node)
}

// Registry returns the registry snapshot the engine was built from.
func (e *Engine) Registry() registry.Registry { return e.registry }

// parse runs the full pipeline: tokenize and parse, then the optional
// canonicalization passes in their fixed order (deprecated-id rewriting,
// redundancy collapsing, sorting).
func (e *Engine) parse(expression string, opts *Options) (ast.Node, *exprerrors.ParseError) {
	o := opts.orDefaults()

	start := time.Now()
	p := parser.New(e.tables).
		WithMaxDepth(e.maxDepth).
		WithCaseSensitiveOperators(o.CaseSensitiveOperators)
	node, perr := p.Parse(expression)
	if e.metrics != nil {
		e.metrics.RecordParse(perr == nil, time.Since(start))
	}
	if perr != nil {
		return nil, perr
	}

	if o.NormalizeDeprecatedIDs {
		node = e.normalizeDeprecated(node)
	}
	if o.CollapseRedundantClauses {
		node = collapse(node)
	}
	if o.SortLicenses {
		node = sortTree(node)
	}
	return node, nil
}
