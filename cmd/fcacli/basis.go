package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/fca"
	"github.com/katalvlaran/fca/nextclosure"
	"github.com/katalvlaran/fca/rewrite"
)

func newBasisCmd(verbose *bool) *cobra.Command {
	var planPath string

	cmd := &cobra.Command{
		Use:   "basis",
		Short: "Print the canonical (Duquenne-Guigues) basis of implications",
		RunE: func(cmd *cobra.Command, args []string) error {
			inc, err := readTable(os.Stdin)
			if err != nil {
				return fmt.Errorf("reading table: %w", err)
			}

			res, err := fca.NextClosure(cmd.Context(), inc, nextclosure.Implications,
				nextclosure.WithVerbose(*verbose), nextclosure.WithLogger(newLogger(*verbose)))
			if err != nil {
				return fmt.Errorf("next-closure: %w", err)
			}

			lhs, rhs := res.LHS, res.RHS
			if planPath != "" {
				plan, err := loadRewritePlan(planPath)
				if err != nil {
					return fmt.Errorf("loading rewrite plan: %w", err)
				}
				lhs, rhs, err = rewrite.Apply(lhs, rhs, plan.Fixed, plan.Rules...)
				if err != nil {
					return fmt.Errorf("applying rewrite plan: %w", err)
				}
			}

			for j := 0; j < lhs.NumCols(); j++ {
				fmt.Fprintf(cmd.OutOrStdout(), "%s => %s\n",
					formatAttrSet(inc.Attrs, lhs.Col(j).Dense()),
					formatAttrSet(inc.Attrs, rhs.Col(j).Dense()))
			}

			return nil
		},
	}
	cmd.Flags().StringVar(&planPath, "rewrite-plan", "", "YAML file naming a rewrite sequence to apply to the basis")

	return cmd
}

func formatAttrSet(names []string, dense []float64) string {
	var parts []string
	for i, v := range dense {
		if v == 0 {
			continue
		}
		if v == 1 {
			parts = append(parts, names[i])
			continue
		}
		parts = append(parts, fmt.Sprintf("%s:%.2f", names[i], v))
	}

	return "{" + strings.Join(parts, ", ") + "}"
}
