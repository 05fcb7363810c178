// Command fcacli is a thin command-line front end over the fca module: it
// reads a dense incidence table from stdin, runs the Next-Closure engine,
// optionally rewrites the resulting canonical basis through a named
// sequence of simplification rules, and prints the result.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	root := newRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var logicName string
	var verbose bool

	root := &cobra.Command{
		Use:   "fcacli",
		Short: "Formal concept analysis over a dense incidence table",
		Long: `fcacli reads a dense attribute-by-object incidence table from stdin and
runs the Next-Closure engine over it.

Input format (stdin):
  line 1: comma-separated attribute names
  line 2: comma-separated object names
  line 3+: one comma-separated row of values per attribute, in [0,1]

Examples:
  fcacli basis < table.csv
  fcacli concepts --logic lukasiewicz < table.csv
  fcacli basis --rewrite-plan plan.yaml < table.csv`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return useLogic(logicName)
		},
	}
	root.PersistentFlags().StringVar(&logicName, "logic", "godel", "active logic: godel, lukasiewicz, or product")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable step-by-step logging")

	root.AddCommand(newBasisCmd(&verbose), newConceptsCmd(&verbose))

	return root
}
