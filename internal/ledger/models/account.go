package models

import (
	"strings"
	"time"
)

// AccountType classifies an account in the chart of accounts.
type AccountType string

const (
	AccountTypeAsset     AccountType = "asset"
	AccountTypeLiability AccountType = "liability"
	AccountTypeEquity    AccountType = "equity"
	AccountTypeRevenue   AccountType = "revenue"
	AccountTypeExpense   AccountType = "expense"
)

// Account categories. Mains are top-level statement sections, groups are
// intermediate headings, accounts are postable leaves.
const (
	CategoryMain    = "main"
	CategoryGroup   = "group"
	CategoryAccount = "account"
)

// Account is one row of the chart of accounts. Name carries the Arabic
// display label, NameEn the English one.
type Account struct {
	Code       string      `bson:"code" json:"code"`
	Name       string      `bson:"name" json:"name"`
	NameEn     string      `bson:"name_en" json:"nameEn"`
	Type       AccountType `bson:"type" json:"type"`
	Category   string      `bson:"category" json:"category"`
	ParentCode string      `bson:"parent_code,omitempty" json:"parentCode,omitempty"`
	Level      int         `bson:"level" json:"level"`
	IsActive   bool        `bson:"is_active" json:"isActive"`
	CreatedAt  time.Time   `bson:"created_at" json:"createdAt"`
	UpdatedAt  time.Time   `bson:"updated_at" json:"updatedAt"`
}

// Account codes band by leading digit: 1xxx assets, 2xxx liabilities,
// 3xxx equity, 4xxx revenue, 5xxx/6xxx expenses. The banding is a naming
// convention, not an enforced constraint, so it is only used as a fallback
// when an entry references a code the chart does not know.

// BandsToRevenue reports whether code falls in the revenue range.
func BandsToRevenue(code string) bool {
	return strings.HasPrefix(code, "4")
}

// BandsToExpense reports whether code falls in the expense range
// (cost of sales or operating).
func BandsToExpense(code string) bool {
	return strings.HasPrefix(code, "5") || strings.HasPrefix(code, "6")
}
