package models

import (
	"math"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BalanceTolerance is the maximum allowed difference between total debits
// and total credits of an entry, absorbing floating point rounding.
const BalanceTolerance = 0.01

// AccountingLine is one debit or credit posting of an entry.
type AccountingLine struct {
	AccountCode string  `bson:"account_code" json:"accountCode"`
	AccountName string  `bson:"account_name" json:"accountName"`
	Amount      float64 `bson:"amount" json:"amount"`
	Description string  `bson:"description,omitempty" json:"description,omitempty"`
}

// AccountingEntry is one recorded transaction: one or more debit lines and
// one or more credit lines whose totals match within BalanceTolerance.
// Persisted entries always have IsBalanced set.
type AccountingEntry struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Date        time.Time          `bson:"date" json:"date"`
	Description string             `bson:"description" json:"description"`
	Reference   string             `bson:"reference" json:"reference"`
	ProjectID   string             `bson:"project_id,omitempty" json:"projectId,omitempty"`
	TenderID    string             `bson:"tender_id,omitempty" json:"tenderId,omitempty"`
	Debits      []AccountingLine   `bson:"debits" json:"debits"`
	Credits     []AccountingLine   `bson:"credits" json:"credits"`
	TotalDebit  float64            `bson:"total_debit" json:"totalDebit"`
	TotalCredit float64            `bson:"total_credit" json:"totalCredit"`
	IsBalanced  bool               `bson:"is_balanced" json:"isBalanced"`
	CreatedBy   string             `bson:"created_by" json:"createdBy"`
	CreatedAt   time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updated_at" json:"updatedAt"`
}

// SumLines totals the amounts of a line slice.
func SumLines(lines []AccountingLine) float64 {
	var sum float64
	for _, line := range lines {
		sum += line.Amount
	}
	return sum
}

// Balanced reports whether debit and credit totals match within
// BalanceTolerance.
func Balanced(totalDebit, totalCredit float64) bool {
	return math.Abs(totalDebit-totalCredit) < BalanceTolerance
}
