package repository

import (
	"context"
	"time"

	"mizan/internal/ledger/models"
)

// ChartOfAccountsRepository 数据访问接口 for the chart_of_accounts collection.
type ChartOfAccountsRepository interface {
	// List returns all accounts ordered by code.
	List(ctx context.Context) ([]*models.Account, error)

	// Replace overwrites the whole collection with the given accounts.
	Replace(ctx context.Context, accounts []*models.Account) error

	// EnsureIndexes 确保索引存在
	EnsureIndexes(ctx context.Context) error
}

// AccountingEntryRepository is the data access interface for the
// accounting_entries collection. Inserts are atomic per entry, so two
// concurrent writers can never lose each other's entries.
type AccountingEntryRepository interface {
	// Insert appends one entry to the log and stamps CreatedAt/UpdatedAt.
	Insert(ctx context.Context, entry *models.AccountingEntry) error

	// ListAll returns every entry in insertion order.
	ListAll(ctx context.Context) ([]*models.AccountingEntry, error)

	// ListThrough returns entries dated on or before asOf, oldest first.
	ListThrough(ctx context.Context, asOf time.Time) ([]*models.AccountingEntry, error)

	// Delete removes the entry with the given hex id and returns it,
	// or (nil, nil) when no such entry exists.
	Delete(ctx context.Context, id string) (*models.AccountingEntry, error)

	// EnsureIndexes 确保索引存在
	EnsureIndexes(ctx context.Context) error
}

// AccountBalanceRepository is the data access interface for the
// account_balances collection of materialized per-account positions.
type AccountBalanceRepository interface {
	// Apply adds delta (debit-positive) to one account's running net,
	// creating the record on first touch. A zero txDate leaves the
	// last transaction date untouched.
	Apply(ctx context.Context, accountCode, accountName string, delta float64, txDate time.Time) error

	// List returns all materialized balances ordered by account code.
	List(ctx context.Context) ([]*models.AccountBalance, error)

	// EnsureIndexes 确保索引存在
	EnsureIndexes(ctx context.Context) error
}

// ClosedPeriodRepository is the data access interface for the
// closed_periods collection.
type ClosedPeriodRepository interface {
	// IsClosed reports whether closing already ran for the period.
	IsClosed(ctx context.Context, period string) (bool, error)

	// MarkClosed records that the period has been closed.
	MarkClosed(ctx context.Context, closed *models.ClosedPeriod) error

	// EnsureIndexes 确保索引存在
	EnsureIndexes(ctx context.Context) error
}
