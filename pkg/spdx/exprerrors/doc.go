// Package exprerrors provides structured failure descriptions for SPDX
// expression parsing.
//
// A failed parse is not an exceptional condition in this library: invalid
// input (including empty input) is the canonical way to express "no license
// information", so the engine's Parse returns a nil tree rather than an
// error. When callers need diagnostics they use ParseWithInfo, which yields
// a *ParseError carrying:
//
//   - the byte offset where parsing failed
//   - the token class that would have been accepted there (Expected)
//   - an optional did-you-mean suggestion for misspelled identifiers
//
// # Example output
//
//	invalid SPDX expression at offset 0: unknown license id "Apahce-2.0"
//	  | Apahce-2.0 OR MIT
//	  | ^
//	  = expected: license
//	  = suggestion: Did you mean 'Apache-2.0'?
package exprerrors
