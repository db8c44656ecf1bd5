package spdx

// Options controls which canonicalization passes run on a parsed
// expression. A nil *Options anywhere in the API means DefaultOptions().
type Options struct {
	// NormalizeDeprecatedIDs rewrites historically deprecated ids to
	// their current equivalents (GPL-2.0 -> GPL-2.0-only, GPL-2.0+ ->
	// GPL-2.0-or-later, StandardML-NJ -> SMLNJ, and the compound
	// GPL-x.y-with-*-exception expansions).
	// Default: true.
	NormalizeDeprecatedIDs bool

	// CaseSensitiveOperators requires AND, OR and WITH to be uppercase,
	// as the SPDX specification mandates. The default accepts any case.
	// Default: false.
	CaseSensitiveOperators bool

	// CollapseRedundantClauses removes duplicate siblings within a group
	// and dissolves groups left with a single child.
	// Default: true.
	CollapseRedundantClauses bool

	// SortLicenses orders group children deterministically so
	// commutative rearrangements of an expression canonicalize to the
	// same tree and the same string.
	// Default: true.
	SortLicenses bool

	// IncludeOrLater appends '+' to extracted license ids that carry an
	// or-later marker the deprecated-id normalizer could not fold into a
	// registered "-or-later" id. Only ExtractIDs consults it.
	// Default: false.
	IncludeOrLater bool
}

// DefaultOptions returns the canonical option set: all normalization passes
// on, operator matching case-insensitive, or-later suffixing off.
func DefaultOptions() *Options {
	return &Options{
		NormalizeDeprecatedIDs:   true,
		CaseSensitiveOperators:   false,
		CollapseRedundantClauses: true,
		SortLicenses:             true,
		IncludeOrLater:           false,
	}
}

// orDefaults resolves a possibly-nil options pointer to a value.
func (o *Options) orDefaults() Options {
	if o == nil {
		return *DefaultOptions()
	}
	return *o
}
