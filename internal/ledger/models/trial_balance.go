package models

// BalanceSide tells which side of the ledger a net balance sits on.
type BalanceSide string

const (
	SideDebit  BalanceSide = "debit"
	SideCredit BalanceSide = "credit"
)

// TrialBalanceLine is the derived per-account position as of a date.
// It is recomputed from the entry log on every request and never stored.
type TrialBalanceLine struct {
	AccountCode   string      `json:"accountCode"`
	AccountName   string      `json:"accountName"`
	DebitBalance  float64     `json:"debitBalance"`
	CreditBalance float64     `json:"creditBalance"`
	NetBalance    float64     `json:"netBalance"`
	BalanceType   BalanceSide `json:"balanceType"`
}

// TrialBalanceSummary is the result of checking the fundamental accounting
// identity over a trial balance: total debit-side net balances must equal
// total credit-side net balances.
type TrialBalanceSummary struct {
	IsBalanced   bool    `json:"isBalanced"`
	TotalDebits  float64 `json:"totalDebits"`
	TotalCredits float64 `json:"totalCredits"`
	Difference   float64 `json:"difference"`
}
