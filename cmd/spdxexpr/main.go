// Spdxexpr parses, validates and canonicalizes SPDX license expressions.
//
// It is the command-line front end of the complyhq/spdxexpr library:
//   - Expression validation with precise diagnostics
//   - Canonical normalization (deprecated-id rewriting, redundancy
//     collapsing, deterministic ordering)
//   - License and exception id extraction
//
// Usage:
//
//	# Check expressions
//	spdxexpr validate "MIT OR Apache-2.0"
//
//	# Explain why an expression is invalid
//	spdxexpr validate --explain "MIT OTHERWISE Apache-2.0"
//
//	# Print the canonical form
//	spdxexpr normalize "gpl-2.0+ WITH Classpath-exception-2.0 OR apache-2.0"
//
//	# List the identifiers an expression mentions
//	spdxexpr ids "Apache-2.0 OR GPL-2.0+"
//
//	# Use a newer license-list release than the embedded snapshot
//	spdxexpr validate --licenses licenses.json --exceptions exceptions.json "MIT"
package main

func main() {
	Execute()
}
