package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"complyhq/spdxexpr/pkg/cli"
)

var validateFlags struct {
	explain bool
}

var validateCmd = &cobra.Command{
	Use:   "validate <expression>...",
	Short: "Check whether expressions are valid SPDX license expressions",
	Long: `Check each expression against the SPDX expression grammar and the
license list. The command exits non-zero if any expression is invalid.

Examples:
  # Check a single expression
  spdxexpr validate "MIT OR Apache-2.0"

  # Explain failures
  spdxexpr validate --explain "MIT OTHERWISE Apache-2.0"

  # Enforce the uppercase operators the SPDX spec mandates
  spdxexpr validate --case-sensitive-operators "MIT or Apache-2.0"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)

	validateCmd.Flags().BoolVar(&validateFlags.explain, "explain", false, "print diagnostics for invalid expressions")
}

type validationResult struct {
	Expression string `json:"expression"`
	Valid      bool   `json:"valid"`
	Error      string `json:"error,omitempty"`
}

func runValidate(cmd *cobra.Command, args []string) error {
	engine, opts, err := loadEngine(cmd)
	if err != nil {
		return err
	}
	form, err := formatter()
	if err != nil {
		return err
	}

	results := make([]validationResult, 0, len(args))
	invalid := 0
	for _, expression := range args {
		result := validationResult{Expression: expression, Valid: true}
		if _, err := engine.ParseWithInfo(expression, opts); err != nil {
			result.Valid = false
			result.Error = err.Error()
			invalid++
		}
		results = append(results, result)
	}

	out := cmd.OutOrStdout()
	if cli.OutputFormat(formatName) == cli.FormatJSON {
		if err := form.FormatTo(out, results); err != nil {
			return err
		}
	} else {
		for _, result := range results {
			if result.Valid {
				fmt.Fprintf(out, "valid: %s\n", result.Expression)
				continue
			}
			fmt.Fprintf(out, "invalid: %s\n", result.Expression)
			if validateFlags.explain {
				fmt.Fprint(out, indent(result.Error, "  "))
			}
		}
	}

	if invalid > 0 {
		return cli.NewCommandError("validate", fmt.Errorf("%d of %d expressions invalid", invalid, len(args)))
	}
	return nil
}
