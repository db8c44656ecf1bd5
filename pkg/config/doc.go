// Package config loads the spdxexpr CLI configuration.
//
// Configuration is YAML with SPDXEXPR_* environment variable overrides:
//
//	registry:
//	  licenses_path: /usr/share/spdx/licenses.json
//	  exceptions_path: /usr/share/spdx/exceptions.json
//	options:
//	  case_sensitive_operators: true
//
// Every field is optional; the zero configuration means the embedded
// license-list snapshot and the engine's default options. The option fields
// are pointers so a config file only overrides what it mentions.
package config
