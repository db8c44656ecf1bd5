package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"complyhq/spdxexpr/pkg/cli"
)

var normalizeCmd = &cobra.Command{
	Use:   "normalize <expression>...",
	Short: "Print the canonical form of expressions",
	Long: `Parse each expression and print it back in canonical form: registered
identifier case, deprecated ids rewritten, duplicate clauses removed,
clauses deterministically ordered and parentheses reduced to the minimum
precedence requires. Two expressions mean the same licensing terms exactly
when their canonical forms are byte-identical.

Examples:
  spdxexpr normalize "mit OR  apache-2.0"
  # -> Apache-2.0 OR MIT

  spdxexpr normalize "GPL-2.0+ WITH Classpath-exception-2.0"
  # -> GPL-2.0-or-later WITH Classpath-exception-2.0`,
	Args: cobra.MinimumNArgs(1),
	RunE: runNormalize,
}

func init() {
	rootCmd.AddCommand(normalizeCmd)
}

type normalizationResult struct {
	Expression string `json:"expression"`
	Canonical  string `json:"canonical,omitempty"`
	Error      string `json:"error,omitempty"`
}

func runNormalize(cmd *cobra.Command, args []string) error {
	engine, opts, err := loadEngine(cmd)
	if err != nil {
		return err
	}
	form, err := formatter()
	if err != nil {
		return err
	}

	results := make([]normalizationResult, 0, len(args))
	failed := 0
	for _, expression := range args {
		result := normalizationResult{Expression: expression}
		canonical, err := engine.Normalize(expression, opts)
		if err != nil {
			result.Error = err.Error()
			failed++
		} else {
			result.Canonical = canonical
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
			if result.Error != "" {
				fmt.Fprint(out, indent(result.Error, ""))
				continue
			}
			fmt.Fprintln(out, result.Canonical)
		}
	}

	if failed > 0 {
		return cli.NewCommandError("normalize", fmt.Errorf("%d of %d expressions invalid", failed, len(args)))
	}
	return nil
}

// indent prefixes every non-empty line of s.
func indent(s, prefix string) string {
	var sb strings.Builder
	for _, line := range strings.Split(strings.TrimRight(s, "\n"), "\n") {
		sb.WriteString(prefix)
		sb.WriteString(line)
		sb.WriteString("\n")
	}
	return sb.String()
}
