package textparser

import (
	"github.com/shopspring/decimal"

	"github.com/stmtkit/bankparse/internal/models"
)

// amountTolerance bounds amounts considered equal when fingerprinting.
var amountTolerance = decimal.New(1, -2) // 0.01

// deduplicate suppresses within-batch duplicates, keeping the first
// occurrence in original order. The fingerprint is date plus amount within
// tolerance plus the first 30 characters of the description. This guards
// against double-counting when both a record-start line and a continuation
// line carried matching money tokens.
func deduplicate(transactions []models.ParsedTransaction) []models.ParsedTransaction {
	if len(transactions) <= 1 {
		return transactions
	}

	seen := make(map[string][]decimal.Decimal)
	result := transactions[:0:0]

	for _, tx := range transactions {
		key := tx.Date + "|" + descriptionPrefix(tx.Description)

		duplicate := false
		for _, amount := range seen[key] {
			if amount.Sub(tx.Amount).Abs().LessThanOrEqual(amountTolerance) {
				duplicate = true
				break
			}
		}
		if duplicate {
			continue
		}

		seen[key] = append(seen[key], tx.Amount)
		result = append(result, tx)
	}

	return result
}

func descriptionPrefix(description string) string {
	if len(description) > 30 {
		return description[:30]
	}
	return description
}
