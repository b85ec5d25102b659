package classify

// Sets holds the keyword lists driving transaction type classification.
// The zero value is not useful; start from DefaultSets and override from the
// keyword store when a user supplies their own lists.
type Sets struct {
	Transfer []string `yaml:"transfer"`
	Income   []string `yaml:"income"`
	Expense  []string `yaml:"expense"`
}

// DefaultSets returns the built-in keyword lists. Income and expense sets are
// disjoint; transfer keywords outrank both.
func DefaultSets() Sets {
	return Sets{
		Transfer: []string{
			"transfer",
			"xfer",
			"move money",
			"between accounts",
			"internal transfer",
		},
		Income: []string{
			"deposit",
			"direct deposit",
			"salary",
			"payroll",
			"refund",
			"tax refund",
			"interest",
			"dividend",
			"cashback",
			"reimbursement",
		},
		Expense: []string{
			"purchase",
			"charge",
			"debit",
			"fee",
			"subscription",
			"pos",
			"withdrawal",
			"atm",
			"bill pay",
		},
	}
}
