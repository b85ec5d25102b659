// Package moneyutils provides money token recognition and normalization for
// statement text. A "token" is a substring recognized as a monetary value
// before sign and format normalization: statements mark negative amounts with
// parentheses, a trailing dash, or both, and may group thousands with commas.
package moneyutils

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// tokenPattern matches, in order: grouped-thousands decimals optionally
// wrapped in parentheses and/or suffixed with a dash ("(1,234.56)-"), plain
// decimals with an optional trailing dash ("123.45-"), and the literal ".00"
// that some layouts print for empty amount cells.
//
// The pattern is compiled once and invoked functionally; no per-call regex
// state is held.
var tokenPattern = regexp.MustCompile(`\(\d+(?:,\d{3})*\.\d{2}\)-?|\d+(?:,\d{3})*\.\d{2}-?|\.00`)

// ExtractTokens returns every money token found on a single line, in order.
func ExtractTokens(line string) []string {
	return tokenPattern.FindAllString(line, -1)
}

// StripTokens removes every money token from a line, returning the remaining
// text. Used when a continuation line mixes description text with amounts.
func StripTokens(line string) string {
	return tokenPattern.ReplaceAllString(line, "")
}

// CleanToken normalizes a raw money token: a parenthesized token is rewritten
// with a leading minus sign. A trailing dash is preserved as a sign marker for
// ParseAmount, not stripped here.
func CleanToken(token string) string {
	token = strings.TrimSpace(token)
	trailingDash := strings.HasSuffix(token, "-")
	if trailingDash {
		token = strings.TrimSuffix(token, "-")
	}
	if strings.HasPrefix(token, "(") && strings.HasSuffix(token, ")") {
		token = "-" + token[1:len(token)-1]
		// A trailing dash on a parenthesized token is a redundant marker;
		// keeping both would read as a double negation downstream.
		trailingDash = false
	}
	if trailingDash {
		token += "-"
	}
	return token
}

// HasNegativeMarker reports whether a cleaned token carries an explicit
// negative marker (leading minus or trailing dash).
func HasNegativeMarker(token string) bool {
	token = strings.TrimSpace(token)
	return strings.HasPrefix(token, "-") || strings.HasSuffix(token, "-")
}

// ParseAmount parses a cleaned money token into a decimal value. The second
// return value reports presence: false means the token was not numeric, which
// callers must treat differently from a valid zero amount.
//
// The literal ".00" parses to exactly zero. A trailing dash negates the value.
func ParseAmount(token string) (decimal.Decimal, bool) {
	token = strings.TrimSpace(token)
	if token == ".00" {
		return decimal.Zero, true
	}

	negate := false
	if strings.HasSuffix(token, "-") {
		negate = true
		token = strings.TrimSuffix(token, "-")
	}

	token = strings.ReplaceAll(token, ",", "")
	token = strings.ReplaceAll(token, "$", "")
	token = strings.ReplaceAll(token, " ", "")

	amount, err := decimal.NewFromString(token)
	if err != nil {
		return decimal.Zero, false
	}
	if negate {
		amount = amount.Neg()
	}
	return amount, true
}

// ParseAmountOrZero is ParseAmount with absent values normalized to zero.
// Only safe where the caller has no need to distinguish "absent" from zero.
func ParseAmountOrZero(token string) decimal.Decimal {
	amount, ok := ParseAmount(token)
	if !ok {
		return decimal.Zero
	}
	return amount
}
