// Package statement is the public entry point for converting bank statement
// exports into the normalized transaction CSV. It bundles the tabular and
// plain-text pipelines behind one engine and dispatches input files by
// extension.
package statement

import (
	"path/filepath"
	"strings"

	"github.com/stmtkit/bankparse/internal/classify"
	"github.com/stmtkit/bankparse/internal/common"
	"github.com/stmtkit/bankparse/internal/fileutils"
	"github.com/stmtkit/bankparse/internal/logging"
	"github.com/stmtkit/bankparse/internal/models"
	"github.com/stmtkit/bankparse/internal/tabular"
	"github.com/stmtkit/bankparse/internal/textparser"
)

// textExtensions are routed to the plain-text pipeline; everything else is
// treated as a tabular export.
var textExtensions = map[string]bool{
	".txt":  true,
	".text": true,
}

// Engine holds both parsing pipelines configured with one classifier and
// logger. It is stateless across calls.
type Engine struct {
	tabular *tabular.Parser
	text    *textparser.Parser
}

// NewEngine creates an Engine. A nil classifier or logger falls back to the
// defaults.
func NewEngine(classifier *classify.Classifier, logger logging.Logger) *Engine {
	return &Engine{
		tabular: tabular.NewParser(classifier, logger),
		text:    textparser.NewParser(classifier, logger),
	}
}

// ParseCSVFile runs the tabular pipeline on a CSV export.
func (e *Engine) ParseCSVFile(path string) (models.ParseResult, error) {
	return e.tabular.ParseFile(path)
}

// ParseTextFile runs the plain-text pipeline on extracted statement text.
func (e *Engine) ParseTextFile(path string) (models.ParseResult, error) {
	return e.text.ParseFile(path)
}

// ParseFile dispatches to the pipeline matching the file extension.
func (e *Engine) ParseFile(path string) (models.ParseResult, error) {
	if textExtensions[strings.ToLower(filepath.Ext(path))] {
		return e.ParseTextFile(path)
	}
	return e.ParseCSVFile(path)
}

// ConvertCSVFile parses a tabular export and writes the normalized CSV.
// An empty outputFile derives the path from the input name.
func (e *Engine) ConvertCSVFile(inputFile, outputFile string) error {
	result, err := e.ParseCSVFile(inputFile)
	if err != nil {
		return err
	}
	return writeOut(result, inputFile, outputFile)
}

// ConvertTextFile parses extracted statement text and writes the normalized
// CSV. An empty outputFile derives the path from the input name.
func (e *Engine) ConvertTextFile(inputFile, outputFile string) error {
	result, err := e.ParseTextFile(inputFile)
	if err != nil {
		return err
	}
	return writeOut(result, inputFile, outputFile)
}

// ConvertFile parses inputFile with the pipeline matching its extension and
// writes the normalized CSV. An empty outputFile derives the path from the
// input name.
func (e *Engine) ConvertFile(inputFile, outputFile string) error {
	result, err := e.ParseFile(inputFile)
	if err != nil {
		return err
	}
	return writeOut(result, inputFile, outputFile)
}

func writeOut(result models.ParseResult, inputFile, outputFile string) error {
	if outputFile == "" {
		outputFile = DefaultOutputPath(inputFile)
	}
	return common.WriteResult(result, outputFile)
}

// DefaultOutputPath returns the conventional output path for an input file:
// the input name with its extension replaced by ".normalized.csv".
func DefaultOutputPath(inputFile string) string {
	return fileutils.ReplaceExtension(inputFile, "normalized.csv")
}
