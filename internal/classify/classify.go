// Package classify assigns transaction types and extracts merchant names from
// statement descriptions. Classification is keyword-driven on purpose: bank
// export conventions for amount sign are inconsistent, so explicit semantic
// keywords in the description outrank the raw sign of the amount.
package classify

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/stmtkit/bankparse/internal/models"
)

// Classifier decides the transaction type from amount sign and description
// keywords. It is immutable after construction and safe for concurrent use.
type Classifier struct {
	transferPattern *regexp.Regexp
	incomePattern   *regexp.Regexp
	expensePattern  *regexp.Regexp
}

// New builds a Classifier from keyword sets. Keywords are matched
// case-insensitively on word boundaries, so "pos" never matches inside
// "deposit".
func New(sets Sets) (*Classifier, error) {
	transferPattern, err := compileKeywords(sets.Transfer)
	if err != nil {
		return nil, fmt.Errorf("compiling transfer keywords: %w", err)
	}
	incomePattern, err := compileKeywords(sets.Income)
	if err != nil {
		return nil, fmt.Errorf("compiling income keywords: %w", err)
	}
	expensePattern, err := compileKeywords(sets.Expense)
	if err != nil {
		return nil, fmt.Errorf("compiling expense keywords: %w", err)
	}
	return &Classifier{
		transferPattern: transferPattern,
		incomePattern:   incomePattern,
		expensePattern:  expensePattern,
	}, nil
}

// Default returns a Classifier built from the built-in keyword sets.
func Default() *Classifier {
	c, err := New(DefaultSets())
	if err != nil {
		// Default sets are static literals; a compile failure is a programming error.
		panic(err)
	}
	return c
}

// Type classifies a transaction. Priority order:
//
//  1. A transfer keyword in description+merchant wins unconditionally.
//  2. Income/expense keyword indicators are computed from disjoint sets.
//  3. Positive amounts are income unless an expense indicator is present
//     without an income indicator (banks that post expenses as positive
//     numbers with a "debit" label).
//  4. Negative amounts are expenses unless an income indicator is present
//     without an expense indicator (banks that post income as negative with
//     a "credit" label).
//  5. Zero amounts fall back to whichever indicator is present, defaulting
//     to expense.
func (c *Classifier) Type(amount decimal.Decimal, description, merchant string) models.TransactionType {
	transactionType, _ := c.TypeWithEvidence(amount, description, merchant)
	return transactionType
}

// TypeWithEvidence classifies like Type and additionally reports whether any
// keyword evidence was found. Callers holding their own numeric-only default
// (the plain-text record flush) only override it when evidence is present.
func (c *Classifier) TypeWithEvidence(amount decimal.Decimal, description, merchant string) (models.TransactionType, bool) {
	text := strings.ToLower(strings.TrimSpace(description + " " + merchant))

	if c.transferPattern.MatchString(text) {
		return models.TypeTransfer, true
	}

	hasIncomeIndicator := c.incomePattern.MatchString(text)
	hasExpenseIndicator := c.expensePattern.MatchString(text)
	hasEvidence := hasIncomeIndicator || hasExpenseIndicator

	switch {
	case amount.IsPositive():
		if hasExpenseIndicator && !hasIncomeIndicator {
			return models.TypeExpense, hasEvidence
		}
		return models.TypeIncome, hasEvidence
	case amount.IsNegative():
		if hasIncomeIndicator && !hasExpenseIndicator {
			return models.TypeIncome, hasEvidence
		}
		return models.TypeExpense, hasEvidence
	default:
		if hasIncomeIndicator {
			return models.TypeIncome, hasEvidence
		}
		return models.TypeExpense, hasEvidence
	}
}

// compileKeywords builds one case-insensitive alternation over the keyword
// list. An empty list compiles to a pattern that matches nothing.
func compileKeywords(keywords []string) (*regexp.Regexp, error) {
	if len(keywords) == 0 {
		// A pattern that can never match any input.
		return regexp.Compile(`^\b$`)
	}
	escaped := make([]string, len(keywords))
	for i, keyword := range keywords {
		escaped[i] = regexp.QuoteMeta(strings.ToLower(keyword))
	}
	return regexp.Compile(`\b(?:` + strings.Join(escaped, "|") + `)\b`)
}
