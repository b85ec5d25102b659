// Package root contains the root command and the state shared by all
// subcommands.
package root

import (
	"github.com/spf13/cobra"

	"github.com/stmtkit/bankparse/internal/classify"
	"github.com/stmtkit/bankparse/internal/common"
	"github.com/stmtkit/bankparse/internal/config"
	"github.com/stmtkit/bankparse/internal/logging"
	"github.com/stmtkit/bankparse/internal/store"
	"github.com/stmtkit/bankparse/pkg/statement"
)

// CommonFlags holds the flags shared by multiple commands.
type CommonFlags struct {
	Input  string
	Output string
}

var (
	// Log is the shared logger instance for commands.
	Log = logging.GetLogger()

	// SharedFlags are accessible to all subcommands.
	SharedFlags = CommonFlags{}

	// Cfg is the loaded application configuration.
	Cfg *config.Config

	classifier *classify.Classifier

	// Cmd is the root command.
	Cmd = &cobra.Command{
		Use:   "bankparse",
		Short: "Parse bank statement exports into normalized transactions.",
		Long: `bankparse converts heterogeneous bank statement exports (CSV/spreadsheet
rows and text extracted from PDF statements) into a normalized transaction CSV
with date, description, merchant, signed amount, and type.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.LoadEnv()

			cfg, err := config.Load()
			if err != nil {
				Log.Fatalf("Failed to load configuration: %v", err)
			}
			Cfg = cfg

			Log = logging.NewLogrusAdapter(cfg.Log.Level, cfg.Log.Format)
			logging.SetLogger(Log)

			common.SetDelimiter(cfg.Delimiter())

			keywordStore := store.NewKeywordStore(cfg.Classifier.KeywordsFile, Log)
			sets, err := keywordStore.LoadSets()
			if err != nil {
				Log.WithError(err).Warn("Failed to load keyword sets, using defaults")
				sets = classify.DefaultSets()
			}
			classifier, err = classify.New(sets)
			if err != nil {
				Log.Fatalf("Failed to build classifier: %v", err)
			}
		},
	}
)

// Init registers the persistent flags. Called once from main before
// subcommands are attached.
func Init() {
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Input, "input", "i", "", "Input file path")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Output, "output", "o", "", "Output CSV file path")
}

// Classifier returns the classifier built during PersistentPreRun. Falls back
// to the default classifier when commands are exercised outside cobra (tests).
func Classifier() *classify.Classifier {
	if classifier == nil {
		return classify.Default()
	}
	return classifier
}

// Engine returns a statement engine wired with the configured classifier and
// logger.
func Engine() *statement.Engine {
	return statement.NewEngine(Classifier(), Log)
}
