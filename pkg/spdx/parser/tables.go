package parser

import "strings"

// Tables is the identifier alphabet of the grammar, built once per registry
// snapshot and shared by every parse. Lookups are case-insensitive and
// resolve to the registered canonical spelling.
//
// License ids whose literal spelling ends in '+' (a handful of deprecated
// GPL-family ids such as "GPL-2.0+") are excluded: accepting them as plain
// identifiers would be ambiguous with the or-later suffix, so "GPL-2.0+"
// always parses as "GPL-2.0" plus the or-later marker.
type Tables struct {
	licenses   map[string]string // lowercased id -> canonical id
	exceptions map[string]string // lowercased id -> canonical id

	licenseIDs   []string // canonical ids, for suggestions
	exceptionIDs []string
}

// NewTables builds grammar tables from the registered license and exception
// id sets. The resulting Tables value is immutable and safe for concurrent
// use.
func NewTables(licenseIDs, exceptionIDs []string) *Tables {
	t := &Tables{
		licenses:   make(map[string]string, len(licenseIDs)),
		exceptions: make(map[string]string, len(exceptionIDs)),
	}
	for _, id := range licenseIDs {
		if strings.HasSuffix(id, "+") {
			continue
		}
		t.licenses[strings.ToLower(id)] = id
		t.licenseIDs = append(t.licenseIDs, id)
	}
	for _, id := range exceptionIDs {
		t.exceptions[strings.ToLower(id)] = id
		t.exceptionIDs = append(t.exceptionIDs, id)
	}
	return t
}

// License resolves a license id case-insensitively to its canonical
// spelling.
func (t *Tables) License(id string) (string, bool) {
	canonical, ok := t.licenses[strings.ToLower(id)]
	return canonical, ok
}

// Exception resolves an exception id case-insensitively to its canonical
// spelling.
func (t *Tables) Exception(id string) (string, bool) {
	canonical, ok := t.exceptions[strings.ToLower(id)]
	return canonical, ok
}

// LicenseIDs returns the canonical license ids accepted by the grammar.
func (t *Tables) LicenseIDs() []string { return t.licenseIDs }

// ExceptionIDs returns the canonical exception ids accepted by the grammar.
func (t *Tables) ExceptionIDs() []string { return t.exceptionIDs }
