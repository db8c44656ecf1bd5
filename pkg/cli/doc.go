// Package cli provides shared plumbing for the spdxexpr command line:
// output formatters (text, JSON) and typed command errors.
package cli
