package registry

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
)

// licenseFile mirrors the official SPDX license-list licenses.json layout.
type licenseFile struct {
	Version  string          `json:"licenseListVersion"`
	Licenses []LicenseRecord `json:"licenses"`
}

// exceptionFile mirrors the official SPDX license-list exceptions.json
// layout.
type exceptionFile struct {
	Version    string            `json:"licenseListVersion"`
	Exceptions []ExceptionRecord `json:"exceptions"`
}

// LicenseRecord is one entry of the SPDX license list.
type LicenseRecord struct {
	ID          string   `json:"licenseId"`
	Name        string   `json:"name"`
	Deprecated  bool     `json:"isDeprecatedLicenseId"`
	OSIApproved bool     `json:"isOsiApproved"`
	SeeAlso     []string `json:"seeAlso,omitempty"`
}

// ExceptionRecord is one entry of the SPDX exception list.
type ExceptionRecord struct {
	ID         string   `json:"licenseExceptionId"`
	Name       string   `json:"name"`
	Deprecated bool     `json:"isDeprecatedLicenseId"`
	SeeAlso    []string `json:"seeAlso,omitempty"`
}

// List is an immutable Registry built from SPDX license-list data.
type List struct {
	version    string
	licenses   map[string]LicenseRecord   // canonical id -> record
	exceptions map[string]ExceptionRecord // canonical id -> record
	canonical  map[string]string          // lowercased id -> canonical id

	licenseIDs   []string // sorted canonical license ids
	exceptionIDs []string // sorted canonical exception ids
}

// Parse builds a List from license-list JSON in the official
// licenses.json / exceptions.json format.
func Parse(licensesJSON, exceptionsJSON []byte) (*List, error) {
	var lf licenseFile
	if err := json.Unmarshal(licensesJSON, &lf); err != nil {
		return nil, fmt.Errorf("failed to parse license list: %w", err)
	}
	var ef exceptionFile
	if err := json.Unmarshal(exceptionsJSON, &ef); err != nil {
		return nil, fmt.Errorf("failed to parse exception list: %w", err)
	}
	if len(lf.Licenses) == 0 {
		return nil, fmt.Errorf("license list is empty")
	}

	l := &List{
		version:    lf.Version,
		licenses:   make(map[string]LicenseRecord, len(lf.Licenses)),
		exceptions: make(map[string]ExceptionRecord, len(ef.Exceptions)),
		canonical:  make(map[string]string, len(lf.Licenses)+len(ef.Exceptions)),
	}

	for _, rec := range lf.Licenses {
		if rec.ID == "" {
			return nil, fmt.Errorf("license list contains an entry without a licenseId")
		}
		l.licenses[rec.ID] = rec
		l.canonical[strings.ToLower(rec.ID)] = rec.ID
		l.licenseIDs = append(l.licenseIDs, rec.ID)
	}
	for _, rec := range ef.Exceptions {
		if rec.ID == "" {
			return nil, fmt.Errorf("exception list contains an entry without a licenseExceptionId")
		}
		l.exceptions[rec.ID] = rec
		l.canonical[strings.ToLower(rec.ID)] = rec.ID
		l.exceptionIDs = append(l.exceptionIDs, rec.ID)
	}

	sort.Strings(l.licenseIDs)
	sort.Strings(l.exceptionIDs)
	return l, nil
}

// Load builds a List from license-list JSON files on disk.
func Load(licensesPath, exceptionsPath string) (*List, error) {
	licensesJSON, err := os.ReadFile(licensesPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read license list %q: %w", licensesPath, err)
	}
	exceptionsJSON, err := os.ReadFile(exceptionsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read exception list %q: %w", exceptionsPath, err)
	}
	return Parse(licensesJSON, exceptionsJSON)
}

// Version returns the licenseListVersion of the loaded data.
func (l *List) Version() string { return l.version }

// License returns the metadata record of a registered license id.
// Lookup is case-insensitive.
func (l *List) License(id string) (LicenseRecord, bool) {
	canonical, ok := l.canonical[strings.ToLower(id)]
	if !ok {
		return LicenseRecord{}, false
	}
	rec, ok := l.licenses[canonical]
	return rec, ok
}

// Exception returns the metadata record of a registered exception id.
// Lookup is case-insensitive.
func (l *List) Exception(id string) (ExceptionRecord, bool) {
	canonical, ok := l.canonical[strings.ToLower(id)]
	if !ok {
		return ExceptionRecord{}, false
	}
	rec, ok := l.exceptions[canonical]
	return rec, ok
}

// KnownLicenseIDs implements Registry.
func (l *List) KnownLicenseIDs() []string { return l.licenseIDs }

// KnownExceptionIDs implements Registry.
func (l *List) KnownExceptionIDs() []string { return l.exceptionIDs }

// IsKnownLicenseID implements Registry.
func (l *List) IsKnownLicenseID(id string) bool {
	_, ok := l.License(id)
	return ok
}

// IsKnownExceptionID implements Registry.
func (l *List) IsKnownExceptionID(id string) bool {
	_, ok := l.Exception(id)
	return ok
}

// CanonicalCase implements Registry.
func (l *List) CanonicalCase(id string) (string, bool) {
	canonical, ok := l.canonical[strings.ToLower(id)]
	return canonical, ok
}

// IsDeprecated implements Registry.
func (l *List) IsDeprecated(id string) (bool, bool) {
	if rec, ok := l.License(id); ok {
		return rec.Deprecated, true
	}
	if rec, ok := l.Exception(id); ok {
		return rec.Deprecated, true
	}
	return false, false
}
