package tabular

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/stmtkit/bankparse/internal/classify"
	"github.com/stmtkit/bankparse/internal/logging"
	"github.com/stmtkit/bankparse/internal/models"
	"github.com/stmtkit/bankparse/internal/parsererror"
)

// Parser converts tabular statement exports into normalized transactions.
// It is stateless across calls; concurrent calls on separate inputs are safe.
type Parser struct {
	logger     logging.Logger
	classifier *classify.Classifier
}

// NewParser creates a tabular Parser. A nil classifier or logger falls back
// to the defaults.
func NewParser(classifier *classify.Classifier, logger logging.Logger) *Parser {
	if classifier == nil {
		classifier = classify.Default()
	}
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &Parser{logger: logger, classifier: classifier}
}

// ParseFile opens and parses a CSV export. The error covers file access only;
// parse-level problems are diagnostics inside the result.
func (p *Parser) ParseFile(path string) (models.ParseResult, error) {
	file, err := os.Open(path) // #nosec G304 -- caller-supplied statement path
	if err != nil {
		return models.ParseResult{}, &parsererror.ParseError{
			Pipeline: "tabular",
			Field:    "file",
			Value:    path,
			Err:      err,
		}
	}
	defer func() {
		if err := file.Close(); err != nil {
			p.logger.WithError(err).Warn("Failed to close input file")
		}
	}()

	return p.Parse(file), nil
}

// Parse reads a CSV export (header record, then data records) and returns the
// parse result. Record-level read errors are isolated: a malformed record is
// recorded as a diagnostic and parsing continues.
func (p *Parser) Parse(r io.Reader) models.ParseResult {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	headers, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return models.NewParseResult(nil, []string{"file contains no header row"})
	}
	if err != nil {
		return models.NewParseResult(nil, []string{fmt.Sprintf("failed to read header row: %v", err)})
	}

	var rows [][]string
	var readErrors []string
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			readErrors = append(readErrors, fmt.Sprintf("Error parsing row: %v", err))
			continue
		}
		rows = append(rows, record)
	}

	result := p.ParseRows(headers, rows)
	result.Errors = append(result.Errors, readErrors...)
	return result
}

// ParseRows runs the pipeline on pre-split headers and rows. This is the
// entry point for spreadsheet callers that already hold a row stream.
func (p *Parser) ParseRows(headers []string, rows [][]string) models.ParseResult {
	columnMap, warnings := DetectColumns(headers)
	for _, warning := range warnings {
		p.logger.WithField(logging.FieldPipeline, "tabular").Warn(warning)
	}

	errs := warnings
	var transactions []models.ParsedTransaction

	for i, row := range rows {
		tx, ok, err := buildTransaction(row, columnMap, p.classifier)
		if err != nil {
			// One malformed row never aborts the file.
			errs = append(errs, fmt.Sprintf("Error parsing row: %v", err))
			p.logger.WithError(err).WithField(logging.FieldRow, i+1).
				Debug("Skipping malformed row")
			continue
		}
		if !ok {
			continue
		}
		transactions = append(transactions, tx)
	}

	p.logger.WithFields(
		logging.Field{Key: logging.FieldPipeline, Value: "tabular"},
		logging.Field{Key: logging.FieldCount, Value: len(transactions)},
	).Info("Parsed tabular statement")

	return models.NewParseResult(transactions, errs)
}
