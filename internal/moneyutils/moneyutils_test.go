package moneyutils

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractTokens(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		expected []string
	}{
		{"no tokens", "WALMART SUPERCENTER", nil},
		{"single plain token", "POS PURCHASE 45.67", []string{"45.67"}},
		{"trailing dash token", "45.67-  120.33", []string{"45.67-", "120.33"}},
		{"grouped thousands", "TRANSFER 1,234.56 OUT", []string{"1,234.56"}},
		{"parenthesized", "(1,234.56) 500.00", []string{"(1,234.56)", "500.00"}},
		{"parenthesized with dash", "(1,234.56)-", []string{"(1,234.56)-"}},
		{"literal dot zero zero", "FEE .00 WAIVED", []string{".00"}},
		{"three columns", "12.00-  45.00  1,057.89", []string{"12.00-", "45.00", "1,057.89"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, ExtractTokens(tc.line))
		})
	}
}

func TestStripTokens(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		expected string
	}{
		{"nothing to strip", "CHECK CARD PURCHASE", "CHECK CARD PURCHASE"},
		{"token at end", "GAS STATION 45.67-", "GAS STATION "},
		{"tokens only", "45.67-  120.33", "  "},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, StripTokens(tc.line))
		})
	}
}

func TestCleanToken(t *testing.T) {
	tests := []struct {
		name     string
		token    string
		expected string
	}{
		{"plain", "123.45", "123.45"},
		{"parenthesized gains minus", "(1,234.56)", "-1,234.56"},
		{"trailing dash preserved", "123.45-", "123.45-"},
		{"parens and dash keep a single negative marker", "(1,234.56)-", "-1,234.56"},
		{"whitespace trimmed", "  45.00 ", "45.00"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, CleanToken(tc.token))
		})
	}
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name     string
		token    string
		expected string
		ok       bool
	}{
		{"plain decimal", "123.45", "123.45", true},
		{"trailing dash negates", "123.45-", "-123.45", true},
		{"commas stripped", "1,234.56", "1234.56", true},
		{"dollar sign stripped", "$45.20", "45.20", true},
		{"literal .00 is zero", ".00", "0", true},
		{"leading minus", "-45.20", "-45.20", true},
		{"non-numeric is absent", "abc", "0", false},
		{"empty is absent", "", "0", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			amount, ok := ParseAmount(tc.token)
			assert.Equal(t, tc.ok, ok)
			expected := decimal.RequireFromString(tc.expected)
			assert.True(t, expected.Equal(amount), "expected %s, got %s", expected, amount)
		})
	}
}

func TestParseAmountRoundTrip(t *testing.T) {
	// Parenthesized tokens normalize to negative amounts through the
	// clean-then-parse path.
	amount, ok := ParseAmount(CleanToken("(1,234.56)"))
	require.True(t, ok)
	assert.True(t, decimal.RequireFromString("-1234.56").Equal(amount))
}

func TestHasNegativeMarker(t *testing.T) {
	assert.True(t, HasNegativeMarker("45.67-"))
	assert.True(t, HasNegativeMarker("-45.67"))
	assert.False(t, HasNegativeMarker("45.67"))
	assert.False(t, HasNegativeMarker(".00"))
}

func TestParseAmountOrZero(t *testing.T) {
	assert.True(t, ParseAmountOrZero("garbage").IsZero())
	assert.True(t, decimal.RequireFromString("12.50").Equal(ParseAmountOrZero("12.50")))
}
