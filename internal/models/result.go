package models

// ParseResult is the sole output surface of both parsing pipelines.
//
// Errors is advisory: a non-empty Errors list does not imply Transactions is
// empty, and vice versa. Callers should treat a result with both transactions
// and errors as a successful, partially degraded parse.
type ParseResult struct {
	Transactions []ParsedTransaction
	TotalCount   int
	Errors       []string
}

// NewParseResult builds a ParseResult with TotalCount derived from the
// transaction slice. TotalCount is never supplied independently.
func NewParseResult(transactions []ParsedTransaction, errors []string) ParseResult {
	if transactions == nil {
		transactions = []ParsedTransaction{}
	}
	if errors == nil {
		errors = []string{}
	}
	return ParseResult{
		Transactions: transactions,
		TotalCount:   len(transactions),
		Errors:       errors,
	}
}

// HasErrors reports whether any diagnostics were collected during the parse.
func (r ParseResult) HasErrors() bool {
	return len(r.Errors) > 0
}
