package service

import (
	"context"
	"fmt"
	"time"

	"mizan/internal/ledger/models"
	"mizan/internal/ledger/repository"
	"mizan/internal/logger"
)

// EntryServiceImpl 会计分录服务实现
type EntryServiceImpl struct {
	entryRepo   repository.AccountingEntryRepository
	balanceRepo repository.AccountBalanceRepository
}

// NewEntryService 创建分录服务
func NewEntryService(entryRepo repository.AccountingEntryRepository, balanceRepo repository.AccountBalanceRepository) EntryService {
	return &EntryServiceImpl{
		entryRepo:   entryRepo,
		balanceRepo: balanceRepo,
	}
}

// CreateEntry enforces the balance law: total debits must equal total
// credits within models.BalanceTolerance. A violating entry is rejected
// before anything touches storage.
func (s *EntryServiceImpl) CreateEntry(ctx context.Context, input CreateEntryInput) (*models.AccountingEntry, error) {
	if err := validateLines(input.Debits); err != nil {
		return nil, err
	}
	if err := validateLines(input.Credits); err != nil {
		return nil, err
	}

	totalDebit := models.SumLines(input.Debits)
	totalCredit := models.SumLines(input.Credits)

	if !models.Balanced(totalDebit, totalCredit) {
		return nil, &UnbalancedEntryError{TotalDebit: totalDebit, TotalCredit: totalCredit}
	}

	entry := &models.AccountingEntry{
		Date:        input.Date,
		Description: input.Description,
		Reference:   input.Reference,
		ProjectID:   input.ProjectID,
		TenderID:    input.TenderID,
		Debits:      input.Debits,
		Credits:     input.Credits,
		TotalDebit:  totalDebit,
		TotalCredit: totalCredit,
		IsBalanced:  true,
		CreatedBy:   input.CreatedBy,
	}

	if err := s.entryRepo.Insert(ctx, entry); err != nil {
		logger.L().Errorf("Failed to persist accounting entry (ref %s): %v", entry.Reference, err)
		return nil, fmt.Errorf("creating accounting entry: %w", err)
	}

	s.applyToBalances(ctx, entry, 1)

	logger.L().Infof("Accounting entry created: id=%s, ref=%s, total=%.2f", entry.ID.Hex(), entry.Reference, totalDebit)
	return entry, nil
}

// Entries returns the full entry log in insertion order. Storage read
// failures are surfaced to the caller, not silently mapped to "no data".
func (s *EntryServiceImpl) Entries(ctx context.Context) ([]*models.AccountingEntry, error) {
	entries, err := s.entryRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading accounting entries: %w", err)
	}
	return entries, nil
}

// DeleteEntry hard-removes the entry and reverses its contribution to the
// materialized balances. The next trial balance simply no longer sees it.
func (s *EntryServiceImpl) DeleteEntry(ctx context.Context, id string) (bool, error) {
	entry, err := s.entryRepo.Delete(ctx, id)
	if err != nil {
		return false, fmt.Errorf("deleting accounting entry: %w", err)
	}
	if entry == nil {
		return false, nil
	}

	s.applyToBalances(ctx, entry, -1)

	logger.L().Infof("Accounting entry deleted: id=%s, ref=%s", id, entry.Reference)
	return true, nil
}

// applyToBalances folds the entry into the materialized per-account nets,
// sign +1 on create and -1 on delete. The balances are a derived cache of
// the log, so failures here are logged and do not fail the operation.
func (s *EntryServiceImpl) applyToBalances(ctx context.Context, entry *models.AccountingEntry, sign float64) {
	txDate := entry.Date
	if sign < 0 {
		// Reversal must not advance the last transaction date.
		txDate = time.Time{}
	}

	for _, line := range entry.Debits {
		if err := s.balanceRepo.Apply(ctx, line.AccountCode, line.AccountName, sign*line.Amount, txDate); err != nil {
			logger.L().Errorf("Failed to update balance for account %s: %v", line.AccountCode, err)
		}
	}
	for _, line := range entry.Credits {
		if err := s.balanceRepo.Apply(ctx, line.AccountCode, line.AccountName, -sign*line.Amount, txDate); err != nil {
			logger.L().Errorf("Failed to update balance for account %s: %v", line.AccountCode, err)
		}
	}
}

func validateLines(lines []models.AccountingLine) error {
	for _, line := range lines {
		if line.AccountCode == "" {
			return &InvalidLineError{AccountCode: line.AccountCode, Amount: line.Amount, Reason: "account code is required"}
		}
		if line.Amount <= 0 {
			return &InvalidLineError{AccountCode: line.AccountCode, Amount: line.Amount, Reason: "amount must be positive"}
		}
	}
	return nil
}
