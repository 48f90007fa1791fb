package service

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"mizan/internal/ledger/models"
	"mizan/internal/ledger/repository"
)

// TrialBalanceServiceImpl 试算平衡表服务实现
type TrialBalanceServiceImpl struct {
	entryRepo repository.AccountingEntryRepository
	chart     ChartService
}

// NewTrialBalanceService 创建试算平衡表服务
func NewTrialBalanceService(entryRepo repository.AccountingEntryRepository, chart ChartService) TrialBalanceService {
	return &TrialBalanceServiceImpl{
		entryRepo: entryRepo,
		chart:     chart,
	}
}

// Generate replays every entry dated on or before asOf and accumulates
// debit and credit totals per account code. Cost is linear in the size of
// the entry log; the materialized balances exist for callers that cannot
// afford the replay.
func (s *TrialBalanceServiceImpl) Generate(ctx context.Context, asOf time.Time) ([]*models.TrialBalanceLine, error) {
	entries, err := s.entryRepo.ListThrough(ctx, asOf)
	if err != nil {
		return nil, fmt.Errorf("loading accounting entries: %w", err)
	}

	accounts, err := s.chart.Accounts(ctx)
	if err != nil {
		return nil, err
	}

	names := make(map[string]string, len(accounts))
	for _, account := range accounts {
		names[account.Code] = account.Name
	}

	type position struct {
		name   string
		debit  float64
		credit float64
	}
	positions := make(map[string]*position)

	touch := func(line models.AccountingLine) *position {
		pos, ok := positions[line.AccountCode]
		if !ok {
			pos = &position{}
			positions[line.AccountCode] = pos
		}
		// Entries may reference codes the chart does not know; those
		// aggregate under the name supplied on the line.
		if name, ok := names[line.AccountCode]; ok {
			pos.name = name
		} else if pos.name == "" {
			pos.name = line.AccountName
		}
		return pos
	}

	for _, entry := range entries {
		for _, line := range entry.Debits {
			touch(line).debit += line.Amount
		}
		for _, line := range entry.Credits {
			touch(line).credit += line.Amount
		}
	}

	lines := make([]*models.TrialBalanceLine, 0, len(positions))
	for code, pos := range positions {
		net := pos.debit - pos.credit
		side := models.SideDebit
		if net < 0 {
			side = models.SideCredit
		}

		lines = append(lines, &models.TrialBalanceLine{
			AccountCode:   code,
			AccountName:   pos.name,
			DebitBalance:  pos.debit,
			CreditBalance: pos.credit,
			NetBalance:    math.Abs(net),
			BalanceType:   side,
		})
	}

	sort.Slice(lines, func(i, j int) bool {
		return lines[i].AccountCode < lines[j].AccountCode
	})

	return lines, nil
}

// Validate sums net balances per side. Because every persisted entry is
// individually balanced, a difference beyond the tolerance signals a bug,
// not a business condition.
func (s *TrialBalanceServiceImpl) Validate(ctx context.Context, asOf time.Time) (*models.TrialBalanceSummary, error) {
	lines, err := s.Generate(ctx, asOf)
	if err != nil {
		return nil, err
	}

	var totalDebits, totalCredits float64
	for _, line := range lines {
		if line.BalanceType == models.SideDebit {
			totalDebits += line.NetBalance
		} else {
			totalCredits += line.NetBalance
		}
	}

	difference := math.Abs(totalDebits - totalCredits)

	return &models.TrialBalanceSummary{
		IsBalanced:   difference < models.BalanceTolerance,
		TotalDebits:  totalDebits,
		TotalCredits: totalCredits,
		Difference:   difference,
	}, nil
}
