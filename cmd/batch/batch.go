// Package batch converts every supported statement file in a directory.
package batch

import (
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/stmtkit/bankparse/cmd/root"
	"github.com/stmtkit/bankparse/internal/fileutils"
	"github.com/stmtkit/bankparse/internal/logging"
)

var (
	inputDir  string
	outputDir string
)

// Cmd represents the batch command.
var Cmd = &cobra.Command{
	Use:   "batch",
	Short: "Convert all statement files in a directory",
	Long: `Convert every supported file in a directory: .csv files run through the
tabular pipeline, .txt files (extracted statement text) through the plain-text
pipeline. A failing file is reported and skipped; the batch continues.`,
	Run: batchFunc,
}

// Init registers the batch-specific flags.
func Init() {
	Cmd.Flags().StringVar(&inputDir, "input-dir", "", "Directory containing statement files")
	Cmd.Flags().StringVar(&outputDir, "output-dir", "", "Directory for normalized CSV output")
}

func batchFunc(cmd *cobra.Command, args []string) {
	if inputDir == "" || outputDir == "" {
		root.Log.Fatalf("--input-dir and --output-dir are required")
	}
	if err := fileutils.EnsureDirectoryExists(outputDir); err != nil {
		root.Log.Fatalf("Error creating output directory: %v", err)
	}

	files, err := fileutils.ListFilesByExtension(inputDir, "csv", "txt")
	if err != nil {
		root.Log.Fatalf("Error listing input directory: %v", err)
	}

	engine := root.Engine()
	converted := 0
	for _, file := range files {
		base := strings.TrimSuffix(filepath.Base(file), filepath.Ext(file))
		output := filepath.Join(outputDir, base+".normalized.csv")

		if err := engine.ConvertFile(file, output); err != nil {
			root.Log.WithError(err).WithField(logging.FieldInputFile, file).
				Error("Failed to convert file, continuing with next")
			continue
		}
		converted++
	}

	root.Log.WithFields(
		logging.Field{Key: logging.FieldCount, Value: converted},
	).Info("Batch conversion finished")
}
