package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"complyhq/spdxexpr/pkg/cli"
	"complyhq/spdxexpr/pkg/config"
	"complyhq/spdxexpr/pkg/registry"
	"complyhq/spdxexpr/pkg/spdx"
)

var (
	// Global flags
	cfgFile        string
	verbose        bool
	formatName     string
	licensesPath   string
	exceptionsPath string

	// Option overrides
	caseSensitiveOperators bool
	noDeprecated           bool
	noCollapse             bool
	noSort                 bool
)

var rootCmd = &cobra.Command{
	Use:   "spdxexpr",
	Short: "spdxexpr - SPDX license expression toolkit",
	Long: `Spdxexpr parses, validates and canonicalizes SPDX license expressions,
the short boolean-combination strings that identify software licensing terms
(e.g. "GPL-2.0+ WITH Classpath-exception-2.0 OR Apache-2.0").

Expressions are checked against the SPDX license list. A snapshot of the
list is embedded in the binary; point --licenses/--exceptions at a newer
licenses.json/exceptions.json release to use that instead.`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: false,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Global persistent flags (available to all subcommands)
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "spdxexpr.yaml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVar(&formatName, "format", "text", "output format: text, json")
	rootCmd.PersistentFlags().StringVar(&licensesPath, "licenses", "", "license list JSON path (default: embedded snapshot)")
	rootCmd.PersistentFlags().StringVar(&exceptionsPath, "exceptions", "", "exception list JSON path (default: embedded snapshot)")
	rootCmd.PersistentFlags().BoolVar(&caseSensitiveOperators, "case-sensitive-operators", false, "require uppercase AND/OR/WITH")
	rootCmd.PersistentFlags().BoolVar(&noDeprecated, "no-deprecated", false, "keep deprecated ids instead of rewriting them")
	rootCmd.PersistentFlags().BoolVar(&noCollapse, "no-collapse", false, "keep redundant clauses")
	rootCmd.PersistentFlags().BoolVar(&noSort, "no-sort", false, "keep the input ordering of clauses")
}

// loadEngine resolves config file, environment and flags into an engine
// and the options commands should parse with.
func loadEngine(cmd *cobra.Command) (*spdx.Engine, *spdx.Options, error) {
	// The config file is optional unless the user pointed at one.
	cfg, err := config.LoadConfig(cfgFile, !cmd.Flags().Changed("config"))
	if err != nil {
		return nil, nil, cli.NewConfigError("", err.Error())
	}

	if licensesPath != "" {
		cfg.Registry.LicensesPath = licensesPath
	}
	if exceptionsPath != "" {
		cfg.Registry.ExceptionsPath = exceptionsPath
	}
	if err := config.Validate(cfg); err != nil {
		return nil, nil, cli.NewConfigError("registry", err.Error())
	}

	var list *registry.List
	if cfg.Registry.Embedded() {
		list = registry.Embedded()
	} else {
		list, err = registry.Load(cfg.Registry.LicensesPath, cfg.Registry.ExceptionsPath)
		if err != nil {
			return nil, nil, cli.NewConfigError("registry", err.Error())
		}
	}
	if verbose {
		fmt.Fprintf(cmd.ErrOrStderr(), "license list %s: %d licenses, %d exceptions\n",
			list.Version(), len(list.KnownLicenseIDs()), len(list.KnownExceptionIDs()))
	}

	opts := cfg.Options.ToOptions()
	if cmd.Flags().Changed("case-sensitive-operators") {
		opts.CaseSensitiveOperators = caseSensitiveOperators
	}
	if noDeprecated {
		opts.NormalizeDeprecatedIDs = false
	}
	if noCollapse {
		opts.CollapseRedundantClauses = false
	}
	if noSort {
		opts.SortLicenses = false
	}

	return spdx.New(list), opts, nil
}

// formatter resolves the --format flag.
func formatter() (cli.Formatter, error) {
	return cli.NewFormatter(cli.OutputFormat(formatName))
}
