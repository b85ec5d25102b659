// Package models provides the data structures used throughout the application.
package models

import (
	"strings"

	"github.com/shopspring/decimal"
)

// MaxDescriptionLength caps transaction descriptions produced by any pipeline.
const MaxDescriptionLength = 500

// TransactionType is the closed set of transaction classifications.
type TransactionType string

const (
	TypeIncome   TransactionType = "income"
	TypeExpense  TransactionType = "expense"
	TypeTransfer TransactionType = "transfer"
)

// ParsedTransaction represents one normalized financial transaction extracted
// from a bank statement. Amount is signed: negative means money leaving the
// account, positive means money entering it.
type ParsedTransaction struct {
	Date        string          `csv:"Date"`        // ISO date, YYYY-MM-DD
	Description string          `csv:"Description"` // trimmed, capped at MaxDescriptionLength
	Merchant    string          `csv:"Merchant"`    // optional, empty when not detected
	Amount      decimal.Decimal `csv:"Amount"`
	Type        TransactionType `csv:"Type"`
}

// IsExpense returns true for money leaving the account.
func (t *ParsedTransaction) IsExpense() bool {
	return t.Type == TypeExpense
}

// IsIncome returns true for money entering the account.
func (t *ParsedTransaction) IsIncome() bool {
	return t.Type == TypeIncome
}

// CleanDescription collapses runs of whitespace, trims, and caps the result
// at MaxDescriptionLength. All pipelines funnel descriptions through here so
// the cap is applied in exactly one place.
func CleanDescription(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	if len(s) > MaxDescriptionLength {
		s = s[:MaxDescriptionLength]
	}
	return s
}
