package textparser

import (
	"strings"

	"github.com/stmtkit/bankparse/internal/moneyutils"
)

// accumulator is the single in-progress record of the assembler state
// machine. Only one accumulator is ever live: the pipeline is a single-pass,
// single-state machine, not a tree of pending records.
type accumulator struct {
	date             string
	descriptionLines []string
	rawMoneyTokens   []string
}

// newAccumulator starts a record from a date-start line. Money tokens on the
// start line are captured immediately; the initial description fragment is
// the text between the date and the first wide gap.
func newAccumulator(date, rest string) *accumulator {
	acc := &accumulator{date: date}
	for _, token := range moneyutils.ExtractTokens(rest) {
		acc.rawMoneyTokens = append(acc.rawMoneyTokens, moneyutils.CleanToken(token))
	}
	if fragment := initialFragment(rest); fragment != "" {
		acc.descriptionLines = append(acc.descriptionLines, fragment)
	}
	return acc
}

// addContinuation folds a non-date, non-boilerplate line into the record.
// Lines carrying money tokens contribute the tokens plus any leftover text;
// token-free lines are appended verbatim (trimmed).
func (acc *accumulator) addContinuation(line string) {
	tokens := moneyutils.ExtractTokens(line)
	if len(tokens) == 0 {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			acc.descriptionLines = append(acc.descriptionLines, trimmed)
		}
		return
	}

	for _, token := range tokens {
		acc.rawMoneyTokens = append(acc.rawMoneyTokens, moneyutils.CleanToken(token))
	}
	if remainder := strings.TrimSpace(moneyutils.StripTokens(line)); remainder != "" {
		acc.descriptionLines = append(acc.descriptionLines, remainder)
	}
}
