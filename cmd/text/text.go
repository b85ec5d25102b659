// Package text handles the extracted-statement-text conversion command.
package text

import (
	"github.com/spf13/cobra"

	"github.com/stmtkit/bankparse/cmd/root"
	"github.com/stmtkit/bankparse/internal/logging"
)

// Cmd represents the text command.
var Cmd = &cobra.Command{
	Use:   "text",
	Short: "Parse extracted statement text to normalized CSV",
	Long: `Parse plain text previously extracted from a PDF bank statement into the
normalized transaction CSV. Extraction of text from the PDF binary is a
separate, external step; this command consumes its output.`,
	Run: textFunc,
}

func textFunc(cmd *cobra.Command, args []string) {
	input := root.SharedFlags.Input
	if input == "" {
		root.Log.Fatalf("--input is required")
	}

	root.Log.WithField(logging.FieldInputFile, input).Info("Parsing statement text")

	if err := root.Engine().ConvertTextFile(input, root.SharedFlags.Output); err != nil {
		root.Log.Fatalf("Error converting input file: %v", err)
	}
}
