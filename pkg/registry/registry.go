package registry

// Registry supplies the set of registered SPDX license and exception ids
// together with the metadata the expression engine needs: canonical
// spelling and deprecation status.
//
// Implementations must be immutable once handed out. The engine snapshots
// the id sets into its grammar tables at construction time and keeps the
// Registry for metadata lookups during transformation, so a Registry is read
// concurrently and must never change underneath a built engine. To pick up
// new license-list data, build a new Registry and a new engine from it.
type Registry interface {
	// KnownLicenseIDs returns every registered license id in canonical
	// spelling, deprecated ids included.
	KnownLicenseIDs() []string

	// KnownExceptionIDs returns every registered exception id in
	// canonical spelling, deprecated ids included.
	KnownExceptionIDs() []string

	// IsKnownLicenseID reports whether id is a registered license id.
	// Matching is case-insensitive.
	IsKnownLicenseID(id string) bool

	// IsKnownExceptionID reports whether id is a registered exception
	// id. Matching is case-insensitive.
	IsKnownExceptionID(id string) bool

	// CanonicalCase resolves an id case-insensitively to its registered
	// canonical spelling. The second result is false for unknown ids.
	CanonicalCase(id string) (string, bool)

	// IsDeprecated reports whether a registered id (license or
	// exception) is deprecated. The second result is false for unknown
	// ids.
	IsDeprecated(id string) (bool, bool)
}
