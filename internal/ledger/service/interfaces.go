package service

import (
	"context"
	"time"

	"mizan/internal/ledger/models"
)

// ChartService owns the chart of accounts.
type ChartService interface {
	// Initialize seeds the default chart, overwriting the collection.
	Initialize(ctx context.Context) error

	// Accounts returns the chart, seeding the defaults first iff it is
	// empty. Once any account exists this is a pure read.
	Accounts(ctx context.Context) ([]*models.Account, error)
}

// EntryService validates and persists balanced accounting entries.
type EntryService interface {
	// CreateEntry validates the balance law, persists the entry and
	// returns the stored record. An unbalanced entry fails with a
	// validation error and nothing is written.
	CreateEntry(ctx context.Context, input CreateEntryInput) (*models.AccountingEntry, error)

	// Entries returns the full entry log in insertion order.
	Entries(ctx context.Context) ([]*models.AccountingEntry, error)

	// DeleteEntry hard-removes an entry and reports whether one was
	// actually removed. No compensating entry is created.
	DeleteEntry(ctx context.Context, id string) (bool, error)
}

// TrialBalanceService derives per-account positions by replaying the log.
type TrialBalanceService interface {
	// Generate replays all entries dated on or before asOf and returns
	// one line per account code with activity, ordered by code.
	Generate(ctx context.Context, asOf time.Time) ([]*models.TrialBalanceLine, error)

	// Validate checks the accounting identity over the trial balance.
	Validate(ctx context.Context, asOf time.Time) (*models.TrialBalanceSummary, error)
}

// ClosingService zeroes revenue and expense accounts into retained
// earnings at period end.
type ClosingService interface {
	// ClosePeriod creates up to two closing entries for the fiscal year
	// and marks it closed. A second call for the same period fails with
	// ErrPeriodAlreadyClosed.
	ClosePeriod(ctx context.Context, period string) ([]*models.AccountingEntry, error)
}

// BalanceService lists the materialized per-account balances.
type BalanceService interface {
	Balances(ctx context.Context) ([]*models.AccountBalance, error)
}

// CreateEntryInput holds the caller-supplied fields of a new entry.
// Totals, id, balance flag and timestamps are derived.
type CreateEntryInput struct {
	Date        time.Time
	Description string
	Reference   string
	ProjectID   string
	TenderID    string
	CreatedBy   string
	Debits      []models.AccountingLine
	Credits     []models.AccountingLine
}
