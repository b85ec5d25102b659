// Package keywords manages the classifier keyword sets file.
package keywords

import (
	"github.com/spf13/cobra"

	"github.com/stmtkit/bankparse/cmd/root"
	"github.com/stmtkit/bankparse/internal/logging"
	"github.com/stmtkit/bankparse/internal/store"
)

// Cmd represents the keywords command.
var Cmd = &cobra.Command{
	Use:   "keywords",
	Short: "Write the effective classifier keyword sets to an editable file",
	Long: `Write the classifier keyword sets currently in effect (built-in defaults
merged with any configured overrides) to a YAML file. Edit the file and point
the classifier at it to tune transaction type detection.`,
	Run: keywordsFunc,
}

func keywordsFunc(cmd *cobra.Command, args []string) {
	output := root.SharedFlags.Output
	if output == "" {
		output = store.DefaultKeywordsFile
	}

	keywordStore := store.NewKeywordStore(root.Cfg.Classifier.KeywordsFile, root.Log)
	sets, err := keywordStore.LoadSets()
	if err != nil {
		root.Log.Fatalf("Error loading keyword sets: %v", err)
	}

	if err := keywordStore.SaveSets(output, sets); err != nil {
		root.Log.Fatalf("Error writing keyword sets: %v", err)
	}
	root.Log.WithField(logging.FieldOutputFile, output).Info("Wrote classifier keyword sets")
}
