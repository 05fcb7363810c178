package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/fca"
	"github.com/katalvlaran/fca/nextclosure"
)

func newConceptsCmd(verbose *bool) *cobra.Command {
	return &cobra.Command{
		Use:   "concepts",
		Short: "Print every concept (intent, extent) in lectic order",
		RunE: func(cmd *cobra.Command, args []string) error {
			inc, err := readTable(os.Stdin)
			if err != nil {
				return fmt.Errorf("reading table: %w", err)
			}

			res, err := fca.NextClosure(cmd.Context(), inc, nextclosure.Concepts,
				nextclosure.WithSaveConcepts(true),
				nextclosure.WithVerbose(*verbose), nextclosure.WithLogger(newLogger(*verbose)))
			if err != nil {
				return fmt.Errorf("next-closure: %w", err)
			}

			out := cmd.OutOrStdout()
			for i, intent := range res.Intents {
				fmt.Fprintf(out, "%s <-> %s\n",
					formatAttrSet(inc.Objs, res.Extents[i].Dense()),
					formatAttrSet(inc.Attrs, intent.Dense()))
			}
			fmt.Fprintf(out, "closure_count=%d concepts=%d\n", res.ClosureCount, len(res.Intents))

			return nil
		},
	}
}
