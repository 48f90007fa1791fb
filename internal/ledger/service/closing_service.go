package service

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"time"

	"mizan/internal/ledger/models"
	"mizan/internal/ledger/repository"
	"mizan/internal/logger"
)

var fiscalYearPattern = regexp.MustCompile(`^\d{4}$`)

// ClosingServiceImpl 期末结账服务实现
type ClosingServiceImpl struct {
	trialBalance TrialBalanceService
	entries      EntryService
	chart        ChartService
	periodRepo   repository.ClosedPeriodRepository
}

// NewClosingService 创建结账服务
func NewClosingService(
	trialBalance TrialBalanceService,
	entries EntryService,
	chart ChartService,
	periodRepo repository.ClosedPeriodRepository,
) ClosingService {
	return &ClosingServiceImpl{
		trialBalance: trialBalance,
		entries:      entries,
		chart:        chart,
		periodRepo:   periodRepo,
	}
}

// ClosePeriod zeroes revenue and expense balances into retained earnings
// as of December 31 of the fiscal year. Revenue accounts are debited for
// their net credit balances against one retained-earnings credit; expense
// accounts are credited against one retained-earnings debit. A category
// with no activity produces no entry, so the result holds zero, one or
// two entries. Both sides of each closing entry equal the category total,
// so closing entries always pass the balance validation.
func (s *ClosingServiceImpl) ClosePeriod(ctx context.Context, period string) ([]*models.AccountingEntry, error) {
	if !fiscalYearPattern.MatchString(period) {
		return nil, fmt.Errorf("%w: %q is not a four-digit fiscal year", ErrInvalidPeriod, period)
	}

	closed, err := s.periodRepo.IsClosed(ctx, period)
	if err != nil {
		return nil, fmt.Errorf("checking closed periods: %w", err)
	}
	if closed {
		return nil, fmt.Errorf("period %s: %w", period, ErrPeriodAlreadyClosed)
	}

	year, _ := strconv.Atoi(period)
	endDate := time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC)

	lines, err := s.trialBalance.Generate(ctx, endDate)
	if err != nil {
		return nil, err
	}

	accounts, err := s.chart.Accounts(ctx)
	if err != nil {
		return nil, err
	}
	types := make(map[string]models.AccountType, len(accounts))
	retainedEarningsName := retainedEarningsFallbackName
	for _, account := range accounts {
		types[account.Code] = account.Type
		if account.Code == RetainedEarningsCode {
			retainedEarningsName = account.Name
		}
	}

	var revenueLines, expenseLines []*models.TrialBalanceLine
	for _, line := range lines {
		// Zero-balance accounts have nothing left to close.
		if line.NetBalance < models.BalanceTolerance {
			continue
		}

		switch classify(line.AccountCode, types) {
		case models.AccountTypeRevenue:
			if line.BalanceType == models.SideCredit {
				revenueLines = append(revenueLines, line)
			}
		case models.AccountTypeExpense:
			if line.BalanceType == models.SideDebit {
				expenseLines = append(expenseLines, line)
			}
		}
	}

	var closingEntries []*models.AccountingEntry

	if len(revenueLines) > 0 {
		debits := make([]models.AccountingLine, len(revenueLines))
		var totalRevenue float64
		for i, line := range revenueLines {
			debits[i] = models.AccountingLine{
				AccountCode: line.AccountCode,
				AccountName: line.AccountName,
				Amount:      line.NetBalance,
			}
			totalRevenue += line.NetBalance
		}

		entry, err := s.entries.CreateEntry(ctx, CreateEntryInput{
			Date:        endDate,
			Description: fmt.Sprintf("Closing revenue accounts for period %s", period),
			Reference:   "CLOSE-REV-" + period,
			CreatedBy:   "system",
			Debits:      debits,
			Credits: []models.AccountingLine{{
				AccountCode: RetainedEarningsCode,
				AccountName: retainedEarningsName,
				Amount:      totalRevenue,
			}},
		})
		if err != nil {
			return nil, fmt.Errorf("closing revenue accounts: %w", err)
		}
		closingEntries = append(closingEntries, entry)
	}

	if len(expenseLines) > 0 {
		credits := make([]models.AccountingLine, len(expenseLines))
		var totalExpenses float64
		for i, line := range expenseLines {
			credits[i] = models.AccountingLine{
				AccountCode: line.AccountCode,
				AccountName: line.AccountName,
				Amount:      line.NetBalance,
			}
			totalExpenses += line.NetBalance
		}

		entry, err := s.entries.CreateEntry(ctx, CreateEntryInput{
			Date:        endDate,
			Description: fmt.Sprintf("Closing expense accounts for period %s", period),
			Reference:   "CLOSE-EXP-" + period,
			CreatedBy:   "system",
			Debits: []models.AccountingLine{{
				AccountCode: RetainedEarningsCode,
				AccountName: retainedEarningsName,
				Amount:      totalExpenses,
			}},
			Credits: credits,
		})
		if err != nil {
			return nil, fmt.Errorf("closing expense accounts: %w", err)
		}
		closingEntries = append(closingEntries, entry)
	}

	record := &models.ClosedPeriod{
		Period:   period,
		ClosedAt: time.Now(),
		ClosedBy: "system",
	}
	for _, entry := range closingEntries {
		record.EntryIDs = append(record.EntryIDs, entry.ID)
	}

	if err := s.periodRepo.MarkClosed(ctx, record); err != nil {
		// The closing entries are already in the log; surface the failure
		// so an operator can reconcile instead of silently allowing a
		// future duplicate close.
		logger.L().Errorf("Failed to record closed period %s: %v", period, err)
		return closingEntries, fmt.Errorf("recording closed period %s: %w", period, err)
	}

	logger.L().Infof("Period %s closed with %d closing entries", period, len(closingEntries))
	return closingEntries, nil
}

// classify resolves an account's statement type, preferring the declared
// type in the chart and falling back to the code banding convention for
// codes the chart does not know.
func classify(code string, types map[string]models.AccountType) models.AccountType {
	if typ, ok := types[code]; ok {
		return typ
	}
	if models.BandsToRevenue(code) {
		return models.AccountTypeRevenue
	}
	if models.BandsToExpense(code) {
		return models.AccountTypeExpense
	}
	return ""
}
