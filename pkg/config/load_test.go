package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "spdxexpr.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfigFile(t, `
registry:
  licenses_path: /data/licenses.json
  exceptions_path: /data/exceptions.json
options:
  sort_licenses: false
  case_sensitive_operators: true
`)

	cfg, err := LoadConfig(path, false)
	if err != nil {
		t.Fatalf("LoadConfig() failed: %v", err)
	}

	if cfg.Registry.LicensesPath != "/data/licenses.json" {
		t.Errorf("LicensesPath = %q", cfg.Registry.LicensesPath)
	}
	if cfg.Registry.Embedded() {
		t.Error("Embedded() = true with paths configured")
	}

	opts := cfg.Options.ToOptions()
	if opts.SortLicenses {
		t.Error("SortLicenses = true, want false from file")
	}
	if !opts.CaseSensitiveOperators {
		t.Error("CaseSensitiveOperators = false, want true from file")
	}
	// Fields the file does not mention keep their defaults.
	if !opts.NormalizeDeprecatedIDs || !opts.CollapseRedundantClauses {
		t.Error("unmentioned options lost their defaults")
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope.yaml")

	t.Run("optional", func(t *testing.T) {
		cfg, err := LoadConfig(missing, true)
		if err != nil {
			t.Fatalf("LoadConfig() failed: %v", err)
		}
		if !cfg.Registry.Embedded() {
			t.Error("Embedded() = false for zero config")
		}
	})

	t.Run("required", func(t *testing.T) {
		if _, err := LoadConfig(missing, false); err == nil {
			t.Error("LoadConfig() error = nil, want error")
		}
	})
}

func TestLoadConfig_MalformedYAML(t *testing.T) {
	path := writeConfigFile(t, "registry: [not a mapping")
	if _, err := LoadConfig(path, false); err == nil {
		t.Error("LoadConfig() error = nil, want error")
	}
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	path := writeConfigFile(t, `
registry:
  licenses_path: /file/licenses.json
  exceptions_path: /file/exceptions.json
options:
  sort_licenses: true
`)

	t.Setenv("SPDXEXPR_REGISTRY_LICENSES_PATH", "/env/licenses.json")
	t.Setenv("SPDXEXPR_OPTIONS_SORT_LICENSES", "false")

	cfg, err := LoadConfig(path, false)
	if err != nil {
		t.Fatalf("LoadConfig() failed: %v", err)
	}
	if cfg.Registry.LicensesPath != "/env/licenses.json" {
		t.Errorf("LicensesPath = %q, want env value", cfg.Registry.LicensesPath)
	}
	if cfg.Registry.ExceptionsPath != "/file/exceptions.json" {
		t.Errorf("ExceptionsPath = %q, want file value", cfg.Registry.ExceptionsPath)
	}
	if cfg.Options.ToOptions().SortLicenses {
		t.Error("SortLicenses = true, want env override false")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"embedded", Config{}, false},
		{
			"both paths",
			Config{Registry: RegistryConfig{LicensesPath: "a", ExceptionsPath: "b"}},
			false,
		},
		{
			"licenses only",
			Config{Registry: RegistryConfig{LicensesPath: "a"}},
			true,
		},
		{
			"exceptions only",
			Config{Registry: RegistryConfig{ExceptionsPath: "b"}},
			true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(&tt.cfg)
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
