package textparser

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/stmtkit/bankparse/internal/classify"
	"github.com/stmtkit/bankparse/internal/dateutils"
	"github.com/stmtkit/bankparse/internal/models"
	"github.com/stmtkit/bankparse/internal/moneyutils"
)

// epsilon bounds "effectively zero" when deciding the numeric-only default
// type.
var epsilon = decimal.New(1, -9)

// flush converts an accumulator into a transaction. The second return value
// is false when the record is dropped: a description shorter than 3
// characters with neither withdrawal nor deposit mirrors the tabular
// pipeline's blank-row skip.
func flush(acc *accumulator, classifier *classify.Classifier) (models.ParsedTransaction, bool) {
	withdrawal, deposit := assignTokens(acc.rawMoneyTokens)

	description := models.CleanDescription(strings.Join(acc.descriptionLines, " "))
	if len(description) < 3 && withdrawal.IsZero() && deposit.IsZero() {
		return models.ParsedTransaction{}, false
	}

	amount := deposit
	if withdrawal.IsPositive() {
		amount = withdrawal.Neg()
	}

	// Numeric-only default, overridden below when the description carries
	// keyword evidence; bank sign conventions are less reliable than words.
	transactionType := models.TypeTransfer
	switch {
	case withdrawal.GreaterThan(epsilon):
		transactionType = models.TypeExpense
	case deposit.GreaterThan(epsilon):
		transactionType = models.TypeIncome
	}

	merchant := classify.Merchant(description)
	if keywordType, hasEvidence := classifier.TypeWithEvidence(amount, description, merchant); hasEvidence {
		transactionType = keywordType
	}

	return models.ParsedTransaction{
		Date:        dateutils.NormalizeOrToday(acc.date),
		Description: description,
		Merchant:    merchant,
		Amount:      amount,
		Type:        transactionType,
	}, true
}

// assignTokens maps a record's money tokens to withdrawal and deposit
// amounts, both as absolute values. Statement layouts print, per record, up
// to three amount columns: withdrawal, deposit, balance.
//
// With exactly two tokens the layouts are ambiguous. A negative-marked first
// token followed by an unmarked second reads as withdrawal then balance.
// Otherwise the fallback treats the first as a withdrawal when positive and
// the second as a deposit unless it is negative-marked. The fallback's
// semantics are order-dependent and flagged for product-owner review; do not
// "fix" it without revisiting real statement layouts.
func assignTokens(tokens []string) (withdrawal, deposit decimal.Decimal) {
	withdrawal = decimal.Zero
	deposit = decimal.Zero

	switch n := len(tokens); {
	case n >= 3:
		// Last three are, in order, withdrawal, deposit, balance.
		withdrawal = moneyutils.ParseAmountOrZero(tokens[n-3]).Abs()
		deposit = moneyutils.ParseAmountOrZero(tokens[n-2]).Abs()
	case n == 2:
		first, second := tokens[0], tokens[1]
		if moneyutils.HasNegativeMarker(first) && !moneyutils.HasNegativeMarker(second) {
			// Withdrawal then balance; no deposit on this record.
			withdrawal = moneyutils.ParseAmountOrZero(first).Abs()
		} else {
			firstValue := moneyutils.ParseAmountOrZero(first)
			secondValue := moneyutils.ParseAmountOrZero(second)
			if firstValue.IsPositive() {
				withdrawal = firstValue
			}
			if !secondValue.IsNegative() {
				deposit = secondValue
			}
		}
	case n == 1:
		value := moneyutils.ParseAmountOrZero(tokens[0]).Abs()
		if moneyutils.HasNegativeMarker(tokens[0]) {
			withdrawal = value
		} else {
			deposit = value
		}
	}

	return withdrawal, deposit
}
