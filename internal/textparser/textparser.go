package textparser

import (
	"bytes"
	"os"
	"strings"

	"github.com/stmtkit/bankparse/internal/classify"
	"github.com/stmtkit/bankparse/internal/logging"
	"github.com/stmtkit/bankparse/internal/models"
	"github.com/stmtkit/bankparse/internal/parsererror"
)

// EmptyTextMessage is returned when the extracted text is empty. Image-only
// PDFs extract to nothing; the engine reports the condition instead of
// attempting OCR.
const EmptyTextMessage = "PDF appears to be empty...may require OCR"

// NoTransactionsMessage is returned when text was present but no records
// survived assembly and filtering.
const NoTransactionsMessage = "no transactions found in statement text - the file may be a scanned image requiring OCR"

// Parser converts extracted statement text into normalized transactions.
// It holds no per-call state; concurrent calls on separate inputs are safe.
type Parser struct {
	logger     logging.Logger
	classifier *classify.Classifier
}

// NewParser creates a plain-text Parser. A nil classifier or logger falls
// back to the defaults.
func NewParser(classifier *classify.Classifier, logger logging.Logger) *Parser {
	if classifier == nil {
		classifier = classify.Default()
	}
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &Parser{logger: logger, classifier: classifier}
}

// ParseFile reads and parses an extracted-text statement file. Raw PDF bytes
// are rejected: extraction happens upstream, and feeding a binary PDF through
// the line scanner would only produce garbage records.
func (p *Parser) ParseFile(path string) (models.ParseResult, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- caller-supplied statement path
	if err != nil {
		return models.ParseResult{}, &parsererror.ParseError{
			Pipeline: "text",
			Field:    "file",
			Value:    path,
			Err:      err,
		}
	}

	if bytes.HasPrefix(data, []byte("%PDF")) {
		return models.ParseResult{}, &parsererror.InvalidFormatError{
			FilePath:       path,
			ExpectedFormat: "extracted statement text",
			Msg:            "file is a raw PDF; run text extraction first",
		}
	}

	return p.Parse(string(data)), nil
}

// Parse runs the plain-text pipeline over extracted statement text in a
// single left-to-right pass: classify each line, assemble multi-line records,
// flush on the next date line or end of input, then deduplicate.
func (p *Parser) Parse(text string) models.ParseResult {
	if strings.TrimSpace(text) == "" {
		return models.NewParseResult(nil, []string{EmptyTextMessage})
	}

	var transactions []models.ParsedTransaction
	var acc *accumulator

	flushCurrent := func() {
		if acc == nil {
			return
		}
		if tx, ok := flush(acc, p.classifier); ok {
			transactions = append(transactions, tx)
		}
		acc = nil
	}

	for _, line := range lineSplitPattern.Split(text, -1) {
		// Boilerplate is dropped before the state machine sees it.
		if isHeaderFooter(line) {
			continue
		}

		if date, rest, ok := dateToken(line); ok {
			// Flush-then-start is atomic from the caller's perspective.
			flushCurrent()
			acc = newAccumulator(date, rest)
			continue
		}

		if acc != nil {
			acc.addContinuation(line)
		}
		// Lines before the first date line are discarded.
	}
	flushCurrent()

	transactions = deduplicate(transactions)

	var errs []string
	if len(transactions) == 0 {
		errs = append(errs, NoTransactionsMessage)
	}

	p.logger.WithFields(
		logging.Field{Key: logging.FieldPipeline, Value: "text"},
		logging.Field{Key: logging.FieldCount, Value: len(transactions)},
	).Info("Parsed statement text")

	return models.NewParseResult(transactions, errs)
}
