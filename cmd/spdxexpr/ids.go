package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"complyhq/spdxexpr/pkg/cli"
	"complyhq/spdxexpr/pkg/spdx"
)

var idsFlags struct {
	orLater bool
}

var idsCmd = &cobra.Command{
	Use:   "ids <expression>...",
	Short: "List the identifiers expressions mention",
	Long: `Parse each expression and print the sorted set of license ids, exception
ids and LicenseRef/AdditionRef forms it mentions, after canonicalization.

Examples:
  spdxexpr ids "Apache-2.0 OR GPL-2.0+"
  # -> Apache-2.0
  #    GPL-2.0-or-later

  # Keep '+' on ids without a registered -or-later counterpart
  spdxexpr ids --or-later "Apache-1.1+"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runIDs,
}

func init() {
	rootCmd.AddCommand(idsCmd)

	idsCmd.Flags().BoolVar(&idsFlags.orLater, "or-later", false, "suffix '+' where the or-later marker survives")
}

type idsResult struct {
	Expression string   `json:"expression"`
	IDs        []string `json:"ids,omitempty"`
	Error      string   `json:"error,omitempty"`
}

func runIDs(cmd *cobra.Command, args []string) error {
	engine, opts, err := loadEngine(cmd)
	if err != nil {
		return err
	}
	opts.IncludeOrLater = idsFlags.orLater
	form, err := formatter()
	if err != nil {
		return err
	}

	results := make([]idsResult, 0, len(args))
	failed := 0
	for _, expression := range args {
		result := idsResult{Expression: expression}
		node, err := engine.ParseWithInfo(expression, opts)
		if err != nil {
			result.Error = err.Error()
			failed++
		} else {
			result.IDs = spdx.ExtractIDs(node, opts)
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
			for _, id := range result.IDs {
				fmt.Fprintln(out, id)
			}
		}
	}

	if failed > 0 {
		return cli.NewCommandError("ids", fmt.Errorf("%d of %d expressions invalid", failed, len(args)))
	}
	return nil
}
