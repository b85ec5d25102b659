// Package tabular implements the CSV/spreadsheet statement pipeline: header
// column detection followed by row-to-transaction mapping. Column layouts are
// not standardized across banks, so detection is keyword-driven and never
// aborts on ambiguity; undetected roles degrade to defaults with warnings.
package tabular

import "strings"

// ColumnRole identifies what a detected header column contains.
type ColumnRole string

const (
	RoleAmount      ColumnRole = "amount"
	RoleDate        ColumnRole = "date"
	RoleDescription ColumnRole = "description"
	RoleDebit       ColumnRole = "debit"
	RoleCredit      ColumnRole = "credit"
	RoleNone        ColumnRole = "none"
)

// Keyword sets are ordered: earlier keywords outrank later ones when multiple
// headers could fill the same role.
var (
	amountKeywords      = []string{"amount", "value", "total", "sum", "price", "cost"}
	dateKeywords        = []string{"date", "time", "timestamp", "created", "posted"}
	descriptionKeywords = []string{"description", "memo", "note", "details", "reference", "payee"}
	debitKeywords       = []string{"debit", "withdrawal", "payment", "out"}
	creditKeywords      = []string{"credit", "deposit", "income", "in"}
)

// ColumnMap is the transient header-to-role mapping built once per file.
// Indexes are positions in the header row; -1 means the role was not detected.
// Debit and Credit may both be set (dual-column layout) but are cleared when
// a single Amount column exists.
type ColumnMap struct {
	Headers     []string
	Amount      int
	Date        int
	Description int
	Debit       int
	Credit      int
}

// HasAmountSource reports whether any column can supply an amount.
func (m ColumnMap) HasAmountSource() bool {
	return m.Amount >= 0 || m.Debit >= 0 || m.Credit >= 0
}

// isRoleColumn reports whether index i is mapped to any of the money or date
// roles. Used for the description fallback scan.
func (m ColumnMap) isRoleColumn(i int) bool {
	return i == m.Amount || i == m.Date || i == m.Debit || i == m.Credit
}

// DetectColumns builds a ColumnMap from the header row and returns it with
// warnings for every role that could not be detected. Detection never fails:
// a statement with unusual headers still yields transactions, just with
// degraded data and visible warnings.
func DetectColumns(headers []string) (ColumnMap, []string) {
	columnMap := ColumnMap{
		Headers:     headers,
		Amount:      -1,
		Date:        -1,
		Description: -1,
		Debit:       -1,
		Credit:      -1,
	}

	normalized := make([]string, len(headers))
	for i, header := range headers {
		normalized[i] = strings.ToLower(strings.TrimSpace(header))
	}

	columnMap.Amount = findColumn(normalized, amountKeywords)
	columnMap.Date = findColumn(normalized, dateKeywords)
	columnMap.Description = findColumn(normalized, descriptionKeywords)

	// Debit/credit detection runs independently of the amount scan, but a
	// single amount column takes precedence over a dual-column layout.
	if columnMap.Amount < 0 {
		columnMap.Debit = findColumn(normalized, debitKeywords)
		columnMap.Credit = findColumn(normalized, creditKeywords)
	}

	var warnings []string
	if !columnMap.HasAmountSource() {
		warnings = append(warnings, "could not detect amount column")
	}
	if columnMap.Date < 0 {
		warnings = append(warnings, "could not detect date column")
	}
	if columnMap.Description < 0 {
		warnings = append(warnings, "could not detect description column")
	}

	return columnMap, warnings
}

// findColumn returns the index of the first header matching the keyword set.
// Keywords are tried in priority order; within one keyword, header order is
// preserved.
func findColumn(normalized []string, keywords []string) int {
	for _, keyword := range keywords {
		for i, header := range normalized {
			if strings.Contains(header, keyword) {
				return i
			}
		}
	}
	return -1
}
