// Package spdx parses, validates, normalizes and re-serializes SPDX license
// expressions, the short boolean-combination strings license-compliance
// tooling uses to identify a package's licensing terms, such as
// "GPL-2.0+ WITH Classpath-exception-2.0 OR Apache-2.0".
//
// # Architecture
//
// The package is organized into subpackages:
//
//   - ast: canonical expression tree types and the fold-style Walker
//   - parser: lexer, grammar tables and the recursive-descent parser
//   - exprerrors: structured parse failures with position and suggestions
//
// and the Engine in this package, which chains the parser with the
// canonicalization passes: deprecated-id normalization, redundant-clause
// collapsing and canonical sorting.
//
// # Basic Usage
//
// Build an engine from a registry snapshot once, then parse freely:
//
//	engine := spdx.New(registry.Embedded())
//
//	canonical, err := engine.Normalize("gpl-2.0+ WITH Classpath-exception-2.0 OR apache-2.0", nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	// canonical == "Apache-2.0 OR GPL-2.0-or-later WITH Classpath-exception-2.0"
//
//	tree := engine.Parse("MIT AND (BSD-3-Clause OR ISC)", nil)
//	ids := spdx.ExtractIDs(tree, nil)
//
// # Canonicalization
//
// With default options, parsing folds every logically equivalent spelling
// of an expression onto one tree, and Normalize onto one string:
// identifier case resolves to the registered spelling, deprecated ids are
// rewritten to their current equivalents, duplicate siblings collapse,
// singleton groups dissolve, same-operator nesting flattens, and group
// children are sorted with a total order. Normalize is idempotent.
//
// # Failure model
//
// Invalid input is a normal outcome, not an error condition: Parse returns
// a nil tree, Valid returns false, and empty input is simply "no license
// information". ParseWithInfo returns a *exprerrors.ParseError for callers
// that need diagnostics. Nothing in the pipeline panics on malformed
// input.
//
// # Concurrency
//
// An Engine is immutable after New and safe for concurrent use. Every call
// is an independent, side-effect-free pipeline over its input; nothing
// blocks on I/O.
package spdx
