// Package tabular handles the CSV/spreadsheet statement conversion command.
package tabular

import (
	"github.com/spf13/cobra"

	"github.com/stmtkit/bankparse/cmd/root"
	"github.com/stmtkit/bankparse/internal/logging"
)

// Cmd represents the tabular command.
var Cmd = &cobra.Command{
	Use:   "tabular",
	Short: "Convert a tabular statement export to normalized CSV",
	Long: `Convert a CSV/spreadsheet bank statement export into the normalized
transaction CSV. Column roles are detected from the header row; undetected
roles degrade to defaults and are reported as warnings.`,
	Run: tabularFunc,
}

func tabularFunc(cmd *cobra.Command, args []string) {
	input := root.SharedFlags.Input
	if input == "" {
		root.Log.Fatalf("--input is required")
	}

	root.Log.WithField(logging.FieldInputFile, input).Info("Parsing tabular statement")

	if err := root.Engine().ConvertCSVFile(input, root.SharedFlags.Output); err != nil {
		root.Log.Fatalf("Error converting input file: %v", err)
	}
}
