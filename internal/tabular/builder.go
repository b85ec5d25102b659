package tabular

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/stmtkit/bankparse/internal/classify"
	"github.com/stmtkit/bankparse/internal/dateutils"
	"github.com/stmtkit/bankparse/internal/models"
	"github.com/stmtkit/bankparse/internal/moneyutils"
)

// buildTransaction maps one data row to a transaction using the column map.
// The second return value is false when the row is structurally blank (empty
// description and exactly zero amount) and should be skipped without error.
// A returned error means the row is malformed; the caller records it and
// continues with the next row.
func buildTransaction(row []string, columnMap ColumnMap, classifier *classify.Classifier) (models.ParsedTransaction, bool, error) {
	amount, err := resolveAmount(row, columnMap)
	if err != nil {
		return models.ParsedTransaction{}, false, err
	}

	description := resolveDescription(row, columnMap)

	if description == "" && amount.IsZero() {
		// Structurally blank row.
		return models.ParsedTransaction{}, false, nil
	}

	date := ""
	if cell := cellAt(row, columnMap.Date); cell != "" {
		date = cell
	}

	merchant := classify.Merchant(description)

	return models.ParsedTransaction{
		Date:        dateutils.NormalizeOrToday(date),
		Description: description,
		Merchant:    merchant,
		Amount:      amount,
		Type:        classifier.Type(amount, description, merchant),
	}, true, nil
}

// resolveAmount applies the amount resolution order: single amount column,
// then credit minus debit, then negated debit alone, then credit alone, then
// zero when no amount source exists.
func resolveAmount(row []string, columnMap ColumnMap) (decimal.Decimal, error) {
	if columnMap.Amount >= 0 {
		return parseCell(row, columnMap.Amount, "amount")
	}

	debit := decimal.Zero
	credit := decimal.Zero
	var err error

	if columnMap.Debit >= 0 {
		if debit, err = parseCell(row, columnMap.Debit, "debit"); err != nil {
			return decimal.Zero, err
		}
	}
	if columnMap.Credit >= 0 {
		if credit, err = parseCell(row, columnMap.Credit, "credit"); err != nil {
			return decimal.Zero, err
		}
	}

	switch {
	case columnMap.Debit >= 0 && columnMap.Credit >= 0:
		return credit.Sub(debit), nil
	case columnMap.Debit >= 0:
		return debit.Neg(), nil
	case columnMap.Credit >= 0:
		return credit, nil
	default:
		return decimal.Zero, nil
	}
}

// parseCell parses a money cell. Empty cells mean zero; a non-empty cell that
// is not numeric is a row-level fault.
func parseCell(row []string, index int, role string) (decimal.Decimal, error) {
	cell := cellAt(row, index)
	if cell == "" {
		return decimal.Zero, nil
	}

	amount, ok := moneyutils.ParseAmount(moneyutils.CleanToken(cell))
	if !ok {
		return decimal.Zero, fmt.Errorf("invalid %s value %q", role, cell)
	}
	return amount, nil
}

// resolveDescription uses the mapped description column when present and
// non-empty, otherwise falls back to the first column that carries no other
// role.
func resolveDescription(row []string, columnMap ColumnMap) string {
	if cell := cellAt(row, columnMap.Description); cell != "" {
		return models.CleanDescription(cell)
	}

	for i := range row {
		if columnMap.isRoleColumn(i) || i == columnMap.Description {
			continue
		}
		if cell := cellAt(row, i); cell != "" {
			return models.CleanDescription(cell)
		}
	}
	return ""
}

// cellAt returns the trimmed cell at index, or "" for out-of-range indexes.
// Ragged rows are common in real exports.
func cellAt(row []string, index int) string {
	if index < 0 || index >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[index])
}
