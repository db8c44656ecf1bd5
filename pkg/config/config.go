package config

import (
	"fmt"

	"complyhq/spdxexpr/pkg/spdx"
)

// Config is the root configuration for the spdxexpr CLI.
type Config struct {
	// Registry selects the license-list data the engine is built from.
	Registry RegistryConfig `yaml:"registry"`

	// Options are the default canonicalization options. Command-line
	// flags override them per invocation.
	Options OptionsConfig `yaml:"options"`
}

// RegistryConfig points at license-list JSON files in the official SPDX
// format. Both paths empty means the embedded snapshot.
type RegistryConfig struct {
	// LicensesPath is the path to a licenses.json file.
	LicensesPath string `yaml:"licenses_path"`

	// ExceptionsPath is the path to an exceptions.json file.
	ExceptionsPath string `yaml:"exceptions_path"`
}

// Embedded reports whether the embedded license-list snapshot is in effect.
func (r RegistryConfig) Embedded() bool {
	return r.LicensesPath == "" && r.ExceptionsPath == ""
}

// OptionsConfig mirrors spdx.Options with optional fields, so a config file
// only overrides what it mentions.
type OptionsConfig struct {
	NormalizeDeprecatedIDs   *bool `yaml:"normalize_deprecated_ids"`
	CaseSensitiveOperators   *bool `yaml:"case_sensitive_operators"`
	CollapseRedundantClauses *bool `yaml:"collapse_redundant_clauses"`
	SortLicenses             *bool `yaml:"sort_licenses"`
	IncludeOrLater           *bool `yaml:"include_or_later"`
}

// ToOptions resolves the config against the engine defaults.
func (o OptionsConfig) ToOptions() *spdx.Options {
	opts := spdx.DefaultOptions()
	if o.NormalizeDeprecatedIDs != nil {
		opts.NormalizeDeprecatedIDs = *o.NormalizeDeprecatedIDs
	}
	if o.CaseSensitiveOperators != nil {
		opts.CaseSensitiveOperators = *o.CaseSensitiveOperators
	}
	if o.CollapseRedundantClauses != nil {
		opts.CollapseRedundantClauses = *o.CollapseRedundantClauses
	}
	if o.SortLicenses != nil {
		opts.SortLicenses = *o.SortLicenses
	}
	if o.IncludeOrLater != nil {
		opts.IncludeOrLater = *o.IncludeOrLater
	}
	return opts
}

// Validate checks the configuration for inconsistencies.
func Validate(cfg *Config) error {
	lic, exc := cfg.Registry.LicensesPath, cfg.Registry.ExceptionsPath
	if (lic == "") != (exc == "") {
		return fmt.Errorf("registry: licenses_path and exceptions_path must be set together (got %q and %q)", lic, exc)
	}
	return nil
}
