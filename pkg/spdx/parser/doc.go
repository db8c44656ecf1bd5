// Package parser turns SPDX license expression strings into canonical
// expression trees.
//
// # Grammar
//
// The parser is a hand-written recursive descent over this grammar, with
// precedence encoded in the call structure (tightest to loosest: parens,
// '+', WITH, AND, OR):
//
//	expression   := or-expr
//	or-expr      := and-expr (OR and-expr)*
//	and-expr     := component (AND component)*
//	component    := license ('+')? (WITH exception)? | '(' expression ')'
//	license      := <registered license id> | [DocumentRef-id:]LicenseRef-id
//	exception    := <registered exception id> | [DocumentRef-id:]AdditionRef-id
//
// Registered ids come from grammar Tables built once per registry snapshot;
// only registered identifiers are accepted, and matching is
// case-insensitive with resolution to the canonical spelling. The few
// registered ids that literally end in '+' are excluded from the tables
// because they would be ambiguous with the or-later suffix: "GPL-2.0+"
// therefore always means "GPL-2.0" plus the or-later marker.
//
// # Canonical output
//
// The trees the parser produces already satisfy the library's invariants:
// WITH clauses and or-later markers are merged into their components,
// sequences of one element collapse to that element, and a group never
// directly contains a group with the same operator.
//
// # Failure
//
// Malformed input is a normal outcome, reported as a
// *exprerrors.ParseError with the byte offset of the failure, the expected
// token class where determinable, and a did-you-mean suggestion for
// misspelled identifiers. The parser never panics on any input.
package parser
