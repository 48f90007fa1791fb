package models

import (
	"math"
	"time"
)

// AccountBalance is the materialized running position of one account,
// maintained incrementally as entries are created and deleted. Net is
// debit-positive: debits increase it, credits decrease it. The entry log
// remains the source of truth; this collection only spares dashboards a
// full replay.
type AccountBalance struct {
	AccountCode         string    `bson:"account_code" json:"accountCode"`
	AccountName         string    `bson:"account_name" json:"accountName"`
	Net                 float64   `bson:"net" json:"-"`
	LastTransactionDate time.Time `bson:"last_transaction_date" json:"lastTransactionDate"`
}

// Side returns which side of the ledger the balance sits on.
func (b *AccountBalance) Side() BalanceSide {
	if b.Net >= 0 {
		return SideDebit
	}
	return SideCredit
}

// Magnitude returns the absolute balance amount.
func (b *AccountBalance) Magnitude() float64 {
	return math.Abs(b.Net)
}
