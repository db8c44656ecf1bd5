package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// LoadConfig loads configuration from a YAML file, applies environment
// variable overrides and validates the result. A missing file is not an
// error when optional is true; the zero configuration (embedded registry,
// default options) is returned instead.
func LoadConfig(path string, optional bool) (*Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse configuration file %q: %w", path, err)
		}
	case os.IsNotExist(err) && optional:
		// Fall through to env overrides over the zero config.
	default:
		return nil, fmt.Errorf("failed to read configuration file %q: %w", path, err)
	}

	applyEnvOverrides(&cfg)

	if err := Validate(&cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return &cfg, nil
}

// applyEnvOverrides applies SPDXEXPR_* environment variables on top of the
// file-based configuration. Environment variables always win.
func applyEnvOverrides(cfg *Config) {
	if val := os.Getenv("SPDXEXPR_REGISTRY_LICENSES_PATH"); val != "" {
		cfg.Registry.LicensesPath = val
	}
	if val := os.Getenv("SPDXEXPR_REGISTRY_EXCEPTIONS_PATH"); val != "" {
		cfg.Registry.ExceptionsPath = val
	}

	overrideBool := func(name string, target **bool) {
		val := os.Getenv(name)
		if val == "" {
			return
		}
		if b, err := strconv.ParseBool(val); err == nil {
			*target = &b
		}
	}
	overrideBool("SPDXEXPR_OPTIONS_NORMALIZE_DEPRECATED_IDS", &cfg.Options.NormalizeDeprecatedIDs)
	overrideBool("SPDXEXPR_OPTIONS_CASE_SENSITIVE_OPERATORS", &cfg.Options.CaseSensitiveOperators)
	overrideBool("SPDXEXPR_OPTIONS_COLLAPSE_REDUNDANT_CLAUSES", &cfg.Options.CollapseRedundantClauses)
	overrideBool("SPDXEXPR_OPTIONS_SORT_LICENSES", &cfg.Options.SortLicenses)
	overrideBool("SPDXEXPR_OPTIONS_INCLUDE_OR_LATER", &cfg.Options.IncludeOrLater)
}
