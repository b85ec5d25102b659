// Package common provides the normalized CSV output shared by all commands.
package common

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"github.com/stmtkit/bankparse/internal/logging"
	"github.com/stmtkit/bankparse/internal/models"
)

// Delimiter is the CSV output delimiter, configurable via SetDelimiter.
var Delimiter rune = ','

// SetDelimiter sets the delimiter for CSV output.
func SetDelimiter(delim rune) {
	Delimiter = delim
}

// WriteTransactions writes normalized transactions to w as CSV. A nil or
// empty slice still produces the header row, so downstream tooling always
// sees a well-formed file.
func WriteTransactions(transactions []models.ParsedTransaction, w io.Writer) error {
	if transactions == nil {
		transactions = []models.ParsedTransaction{}
	}

	csvWriter := csv.NewWriter(w)
	csvWriter.Comma = Delimiter

	if err := gocsv.MarshalCSV(&transactions, gocsv.NewSafeCSVWriter(csvWriter)); err != nil {
		return fmt.Errorf("error writing CSV data: %w", err)
	}
	return nil
}

// WriteTransactionsToFile writes normalized transactions to a CSV file,
// creating the parent directory if needed.
func WriteTransactionsToFile(transactions []models.ParsedTransaction, csvFile string) error {
	log := logging.GetLogger()
	log.WithFields(
		logging.Field{Key: logging.FieldFile, Value: csvFile},
		logging.Field{Key: logging.FieldCount, Value: len(transactions)},
		logging.Field{Key: logging.FieldDelimiter, Value: string(Delimiter)},
	).Info("Writing transactions to CSV file")

	dir := filepath.Dir(csvFile)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("error creating directory: %w", err)
	}

	file, err := os.Create(csvFile) // #nosec G304 -- output path comes from the CLI flag
	if err != nil {
		return fmt.Errorf("error creating CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.WithError(err).Warn("Failed to close file")
		}
	}()

	return WriteTransactions(transactions, file)
}

// WriteResult writes a parse result's transactions to outputFile and logs
// every diagnostic as a warning. Diagnostics are advisory: a result with both
// transactions and errors is a successful, partially degraded parse.
func WriteResult(result models.ParseResult, outputFile string) error {
	log := logging.GetLogger()
	for _, diagnostic := range result.Errors {
		log.WithField(logging.FieldPipeline, "output").Warn(diagnostic)
	}

	if err := WriteTransactionsToFile(result.Transactions, outputFile); err != nil {
		return err
	}

	log.WithFields(
		logging.Field{Key: logging.FieldOutputFile, Value: outputFile},
		logging.Field{Key: logging.FieldCount, Value: result.TotalCount},
	).Info("Successfully wrote transactions to CSV file")
	return nil
}
